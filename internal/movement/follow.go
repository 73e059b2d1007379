package movement

// FollowMovement keeps a fixed pixel offset from a followed entity,
// snapping to follow it every tick rather than traveling at a speed
// (spec.md §4.D "Follow movement"), used for carried entities such as a
// pot held above the hero's head.
type FollowMovement struct {
	base

	provider   TargetProvider
	offsetX, offsetY int
}

// NewFollowMovement creates a movement that tracks provider's position
// plus the given fixed offset.
func NewFollowMovement(target Target, provider TargetProvider, offsetX, offsetY int) *FollowMovement {
	return &FollowMovement{base: newBase(target), provider: provider, offsetX: offsetX, offsetY: offsetY}
}

// SetOffset changes the tracked offset, e.g. when the followed entity
// changes direction and the carried object should shift side.
func (m *FollowMovement) SetOffset(offsetX, offsetY int) {
	m.offsetX, m.offsetY = offsetX, offsetY
}

func (m *FollowMovement) Update(nowMS int64) {
	m.lastDX, m.lastDY = 0, 0
	if m.suspended {
		return
	}
	px, py := m.provider.XY()
	wantX, wantY := px+m.offsetX, py+m.offsetY
	x, y := m.target.XY()
	if wantX == x && wantY == y {
		return
	}
	m.target.SetXY(wantX, wantY)
	m.lastDX, m.lastDY = wantX-x, wantY-y
}
