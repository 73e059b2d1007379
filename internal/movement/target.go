package movement

import (
	"math"

	"github.com/solarium-engine/solarium/internal/geometry"
)

// TargetProvider supplies the live (x, y) of whatever a TargetMovement is
// chasing, letting it track either a fixed point or a moving entity.
type TargetProvider interface {
	XY() (int, int)
}

type fixedPoint struct{ x, y int }

func (f fixedPoint) XY() (int, int) { return f.x, f.y }

// TargetMovement seeks a point or entity at constant speed, recomputing
// direction periodically to track a moving target (spec.md §4.D "Target
// movement", ~150ms recompute interval).
type TargetMovement struct {
	base

	provider    TargetProvider
	speedPxPerS float64
	width, height int
	checker     ObstacleChecker

	recomputeIntervalMS int64
	nextRecomputeMS      int64
	hasRecomputed        bool
	dirX, dirY           float64

	lastUpdateMS int64
	hasLastUpdate bool

	stopDistance int
}

// NewTargetMovement seeks a fixed point.
func NewTargetMovement(target Target, x, y int, speedPxPerS float64, width, height int, checker ObstacleChecker) *TargetMovement {
	return newTargetMovement(target, fixedPoint{x, y}, speedPxPerS, width, height, checker)
}

// NewTargetMovementFollowingEntity seeks a live entity's position.
func NewTargetMovementFollowingEntity(target Target, provider TargetProvider, speedPxPerS float64, width, height int, checker ObstacleChecker) *TargetMovement {
	return newTargetMovement(target, provider, speedPxPerS, width, height, checker)
}

func newTargetMovement(target Target, provider TargetProvider, speedPxPerS float64, width, height int, checker ObstacleChecker) *TargetMovement {
	return &TargetMovement{
		base: newBase(target), provider: provider, speedPxPerS: speedPxPerS,
		width: width, height: height, checker: checker,
		recomputeIntervalMS: 150,
	}
}

// SetStopDistance makes the movement finish once within this many pixels
// of the target, instead of requiring an exact hit.
func (m *TargetMovement) SetStopDistance(px int) { m.stopDistance = px }

func (m *TargetMovement) SetSuspended(suspended bool, nowMS int64) {
	wasSuspended := m.suspended
	m.base.SetSuspended(suspended, nowMS)
	if wasSuspended && !suspended {
		offset := m.resumeOffset(nowMS)
		m.nextRecomputeMS += offset
		if m.hasLastUpdate {
			m.lastUpdateMS += offset
		}
	}
}

func (m *TargetMovement) Update(nowMS int64) {
	m.lastDX, m.lastDY = 0, 0
	if m.finished || m.suspended {
		return
	}

	if !m.hasRecomputed || nowMS >= m.nextRecomputeMS {
		m.recompute(nowMS)
	}
	if !m.hasLastUpdate {
		m.hasLastUpdate = true
		m.lastUpdateMS = nowMS
		return
	}
	elapsedMS := nowMS - m.lastUpdateMS
	if elapsedMS <= 0 {
		return
	}

	distance := m.speedPxPerS * float64(elapsedMS) / 1000.0
	x, y := m.target.XY()
	tx, ty := m.provider.XY()
	remaining := math.Hypot(float64(tx-x), float64(ty-y))
	if remaining <= float64(m.stopDistance) {
		m.finished = true
		return
	}
	if distance > remaining {
		distance = remaining
	}
	newX := x + int(m.dirX*distance+0.5)
	newY := y + int(m.dirY*distance+0.5)
	if newX == x && newY == y {
		// less than a pixel so far: keep the elapsed time for the next update
		return
	}
	m.lastUpdateMS = nowMS
	if m.moveTo(newX, newY, m.width, m.height, m.checker) &&
		math.Hypot(float64(tx-newX), float64(ty-newY)) <= float64(m.stopDistance) {
		m.finished = true
	}
}

func (m *TargetMovement) recompute(nowMS int64) {
	x, y := m.target.XY()
	tx, ty := m.provider.XY()
	dx, dy := float64(tx-x), float64(ty-y)
	length := math.Hypot(dx, dy)
	if length > 0 {
		m.dirX, m.dirY = dx/length, dy/length
	} else {
		m.dirX, m.dirY = 0, 0
	}
	m.hasRecomputed = true
	m.nextRecomputeMS = nowMS + m.recomputeIntervalMS
}

// Direction8 returns the nearest 8-way direction the movement is currently
// heading, used by callers that need to orient a sprite.
func (m *TargetMovement) Direction8() geometry.Direction8 {
	if m.dirX == 0 && m.dirY == 0 {
		return geometry.Direction8None
	}
	angle := math.Atan2(-m.dirY, m.dirX)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	return geometry.Direction8(int(angle/(math.Pi/4)+0.5) % 8)
}
