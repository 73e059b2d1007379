package movement

import "github.com/solarium-engine/solarium/internal/geometry"

// JumpMovement moves in a straight 8-direction line over a fixed distance
// while reporting a parabolic height offset for the sprite's draw Y, used
// for the hero's jump over chasms and small obstacles (spec.md §4.D "Jump
// movement"). The underlying XY trajectory can optionally ignore
// collisions for the duration of the jump.
type JumpMovement struct {
	base

	direction geometry.Direction8
	distance  int // total pixels to travel along direction
	speedPxPerS float64

	width, height int
	checker       ObstacleChecker

	traveled float64

	lastUpdateMS int64
	hasLastUpdate bool

	currentHeight int
}

// NewJumpMovement creates a jump of the given direction and distance in
// pixels. If ignoreCollisions is true the jump's XY movement bypasses
// obstacle checks for its whole duration (used to hop over holes/lava).
func NewJumpMovement(target Target, direction geometry.Direction8, distance int, speedPxPerS float64, width, height int, checker ObstacleChecker, ignoreCollisions bool) *JumpMovement {
	m := &JumpMovement{
		base: newBase(target), direction: direction, distance: distance,
		speedPxPerS: speedPxPerS, width: width, height: height, checker: checker,
	}
	m.ignoreObstacles = ignoreCollisions
	if distance <= 0 {
		m.finished = true
	}
	return m
}

func (m *JumpMovement) SetSuspended(suspended bool, nowMS int64) {
	wasSuspended := m.suspended
	m.base.SetSuspended(suspended, nowMS)
	if wasSuspended && !suspended && m.hasLastUpdate {
		m.lastUpdateMS += m.resumeOffset(nowMS)
	}
}

// Height returns the current parabolic height offset in pixels, to be
// subtracted from the sprite's draw Y (the XY position itself stays on
// the ground plane throughout the jump).
func (m *JumpMovement) Height() int { return m.currentHeight }

func (m *JumpMovement) Update(nowMS int64) {
	m.lastDX, m.lastDY = 0, 0
	if m.finished || m.suspended {
		return
	}
	if !m.hasLastUpdate {
		m.hasLastUpdate = true
		m.lastUpdateMS = nowMS
		return
	}
	elapsedMS := nowMS - m.lastUpdateMS
	m.lastUpdateMS = nowMS
	if elapsedMS <= 0 {
		return
	}

	step := m.speedPxPerS * float64(elapsedMS) / 1000.0
	remaining := float64(m.distance) - m.traveled
	if step > remaining {
		step = remaining
	}

	dx, dy := m.direction.XY()
	x, y := m.target.XY()
	newX := x + int(float64(dx)*step+0.5)
	newY := y + int(float64(dy)*step+0.5)
	if !m.moveTo(newX, newY, m.width, m.height, m.checker) {
		// a blocked landing still ends the jump; the hero's state decides
		// what happens next (e.g. falls back to the ground it left from)
		m.finished = true
		m.currentHeight = 0
		return
	}
	m.traveled += step

	// Parabolic arc peaking at the jump's midpoint, matching the fixed
	// visual hop height Solarus uses regardless of jump distance.
	const peakHeight = 24
	progress := m.traveled / float64(m.distance)
	m.currentHeight = int(peakHeight * 4 * progress * (1 - progress))

	if m.traveled >= float64(m.distance) {
		m.currentHeight = 0
		m.finished = true
	}
}
