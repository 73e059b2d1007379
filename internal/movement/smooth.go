package movement

import "math"

// SmoothMovement is a thin collision-aware base used by entity AIs that
// move toward a direction each tick and want to glide along obstacles
// rather than stop dead (spec.md §4.D "Smooth collision movement"). It
// exposes SetAngle/SetSpeed for callers (e.g. monster AI scripts)
// that drive it directly, in contrast to PlayerMovement which reads the
// direction from held keys.
type SmoothMovement struct {
	base

	speedPxPerS float64
	angleDeg    float64 // 0-359, continuous (not snapped to 8 directions)
	moving      bool

	width, height int
	checker       ObstacleChecker

	lastUpdateMS  int64
	hasLastUpdate bool
}

// NewSmoothMovement creates a smooth movement stopped at zero speed.
func NewSmoothMovement(target Target, width, height int, checker ObstacleChecker) *SmoothMovement {
	return &SmoothMovement{base: newBase(target), width: width, height: height, checker: checker}
}

// SetSpeed sets the movement's current travel speed in pixels per second;
// 0 stops movement without discarding the angle.
func (m *SmoothMovement) SetSpeed(speedPxPerS float64) {
	m.speedPxPerS = speedPxPerS
	m.moving = speedPxPerS > 0
}

// SetAngle sets the movement's travel angle in degrees (0 = east,
// increasing counter-clockwise), independent of the 8-way grid.
func (m *SmoothMovement) SetAngle(deg float64) { m.angleDeg = deg }

func (m *SmoothMovement) SetSuspended(suspended bool, nowMS int64) {
	wasSuspended := m.suspended
	m.base.SetSuspended(suspended, nowMS)
	if wasSuspended && !suspended && m.hasLastUpdate {
		m.lastUpdateMS += m.resumeOffset(nowMS)
	}
}

func (m *SmoothMovement) Update(nowMS int64) {
	m.lastDX, m.lastDY = 0, 0
	if m.suspended || !m.moving {
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

	distance := m.speedPxPerS * float64(elapsedMS) / 1000.0
	dx, dy := cosSin(m.angleDeg)
	x, y := m.target.XY()
	newX := x + int(dx*distance+0.5)
	newY := y + int(dy*distance+0.5)
	if m.moveTo(newX, newY, m.width, m.height, m.checker) {
		return
	}

	// Slide along the obstacle by trying the pure horizontal and pure
	// vertical components of the attempted move, same idea as
	// PlayerMovement's sliding fallback.
	if dx != 0 {
		if m.moveTo(x+int(dx*distance+0.5), y, m.width, m.height, m.checker) {
			return
		}
	}
	if dy != 0 {
		m.moveTo(x, y+int(dy*distance+0.5), m.width, m.height, m.checker)
	}
}

func cosSin(deg float64) (float64, float64) {
	rad := deg * math.Pi / 180.0
	return math.Cos(rad), -math.Sin(rad)
}
