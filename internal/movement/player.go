package movement

import "github.com/solarium-engine/solarium/internal/geometry"

// DirectionSource supplies the wanted direction from held keys as degrees
// (0-315 in 45-degree steps, or -1 when no direction is wanted), matching
// internal/controls.Controls.GetWantedDirection8's return convention
// without importing that package directly (avoiding an import cycle).
type DirectionSource interface {
	GetWantedDirection8() int
}

// PlayerMovement reads the four directional logical keys through a
// DirectionSource and moves the hero at a configurable speed (spec.md
// §4.D "Player 8-direction movement").
type PlayerMovement struct {
	base

	source DirectionSource
	speedPxPerS float64
	width, height int
	checker ObstacleChecker

	movingEnabled    bool
	directionEnabled bool

	lastUpdateMS  int64
	hasLastUpdate bool

	currentDirection geometry.Direction8
	moveTried        bool
	lastMoveSucceeded bool
}

// NewPlayerMovement creates a player movement at the given speed.
func NewPlayerMovement(target Target, source DirectionSource, speedPxPerS float64, width, height int, checker ObstacleChecker) *PlayerMovement {
	return &PlayerMovement{
		base: newBase(target), source: source, speedPxPerS: speedPxPerS,
		width: width, height: height, checker: checker,
		movingEnabled: true, directionEnabled: true,
		currentDirection: geometry.Direction8None,
	}
}

// SetMovingEnabled toggles whether held keys actually move the hero
// (direction is still tracked for animation if directionEnabled).
func (m *PlayerMovement) SetMovingEnabled(v bool) { m.movingEnabled = v }

// SetDirectionEnabled toggles whether held keys update the facing
// direction (used by states that lock facing, e.g. while pushing).
func (m *PlayerMovement) SetDirectionEnabled(v bool) { m.directionEnabled = v }

// WantedDirection8 returns the direction the held keys currently request,
// regardless of whether movement/direction are enabled.
func (m *PlayerMovement) WantedDirection8() geometry.Direction8 {
	return geometry.Direction8FromDegrees(m.source.GetWantedDirection8())
}

// MoveTried reports whether the hero attempted to move this tick (keys
// held) regardless of whether the attempt succeeded — used by FREE state
// to drive the "pushing" counter.
func (m *PlayerMovement) MoveTried() bool { return m.moveTried }

// LastMoveSucceeded reports whether the most recent move attempt actually
// displaced the entity.
func (m *PlayerMovement) LastMoveSucceeded() bool { return m.lastMoveSucceeded }

func (m *PlayerMovement) Update(nowMS int64) {
	m.lastDX, m.lastDY = 0, 0
	m.moveTried = false
	m.lastMoveSucceeded = false
	if m.suspended {
		return
	}

	wanted := geometry.Direction8FromDegrees(m.source.GetWantedDirection8())
	if m.directionEnabled && wanted != geometry.Direction8None {
		m.currentDirection = wanted
	}

	if !m.hasLastUpdate {
		m.hasLastUpdate = true
		m.lastUpdateMS = nowMS
		return
	}
	elapsedMS := nowMS - m.lastUpdateMS
	m.lastUpdateMS = nowMS

	if wanted == geometry.Direction8None || !m.movingEnabled || elapsedMS <= 0 {
		return
	}
	m.moveTried = true

	dx, dy := wanted.XY()
	distance := m.speedPxPerS * float64(elapsedMS) / 1000.0
	x, y := m.target.XY()
	newX := x + int(float64(dx)*distance+0.5)
	newY := y + int(float64(dy)*distance+0.5)

	if m.moveTo(newX, newY, m.width, m.height, m.checker) {
		m.lastMoveSucceeded = true
		return
	}

	// Sliding: try the two axis-aligned components independently so the
	// hero glides along an obstacle edge instead of stopping dead, per
	// spec.md §4.D "Smooth collision movement".
	if dx != 0 {
		if m.moveTo(x+int(float64(dx)*distance+0.5), y, m.width, m.height, m.checker) {
			m.lastMoveSucceeded = true
			return
		}
	}
	if dy != 0 {
		if m.moveTo(x, y+int(float64(dy)*distance+0.5), m.width, m.height, m.checker) {
			m.lastMoveSucceeded = true
			return
		}
	}
}
