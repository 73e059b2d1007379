package movement

import "github.com/solarium-engine/solarium/internal/geometry"

// RandomSource supplies direction randomness, letting tests substitute a
// deterministic sequence instead of math/rand.
type RandomSource interface {
	// Direction4 returns a uniformly random Direction4.
	Direction4() geometry.Direction4
}

// RandomWalkMovement repeatedly picks a random 4-direction and walks one
// grid cell (spec.md §4.D "Random-walk movement"), choosing a new
// direction whenever the current segment finishes or is blocked.
type RandomWalkMovement struct {
	base

	random      RandomSource
	speedPxPerS float64
	width, height int
	checker     ObstacleChecker

	direction geometry.Direction4
	hasDirection bool

	segmentRemaining float64

	lastUpdateMS  int64
	hasLastUpdate bool

	pauseRemainingMS int64
	pauseMS          int64
}

// NewRandomWalkMovement creates a random walk movement. pauseMS is the
// delay observed between segments (0 for continuous wandering).
func NewRandomWalkMovement(target Target, random RandomSource, speedPxPerS float64, width, height int, checker ObstacleChecker, pauseMS int64) *RandomWalkMovement {
	return &RandomWalkMovement{
		base: newBase(target), random: random, speedPxPerS: speedPxPerS,
		width: width, height: height, checker: checker, pauseMS: pauseMS,
	}
}

func (m *RandomWalkMovement) SetSuspended(suspended bool, nowMS int64) {
	wasSuspended := m.suspended
	m.base.SetSuspended(suspended, nowMS)
	if wasSuspended && !suspended && m.hasLastUpdate {
		m.lastUpdateMS += m.resumeOffset(nowMS)
	}
}

func (m *RandomWalkMovement) Update(nowMS int64) {
	m.lastDX, m.lastDY = 0, 0
	if m.suspended {
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

	if m.pauseRemainingMS > 0 {
		m.pauseRemainingMS -= elapsedMS
		return
	}

	distance := m.speedPxPerS * float64(elapsedMS) / 1000.0
	for distance > 0 {
		if !m.hasDirection || m.segmentRemaining <= 0 {
			m.direction = m.random.Direction4()
			m.hasDirection = true
			m.segmentRemaining = geometry.CellSize
		}
		step := distance
		if step > m.segmentRemaining {
			step = m.segmentRemaining
		}
		dx, dy := m.direction.XY()
		done := geometry.CellSize - m.segmentRemaining
		px := int(done+step+0.5) - int(done+0.5)
		x, y := m.target.XY()
		if px > 0 && !m.moveTo(x+dx*px, y+dy*px, m.width, m.height, m.checker) {
			// blocked: drop the segment and pick a fresh direction next tick
			m.segmentRemaining = 0
			m.hasDirection = false
			if m.pauseMS > 0 {
				m.pauseRemainingMS = m.pauseMS
			}
			return
		}
		m.segmentRemaining -= step
		distance -= step
		if m.segmentRemaining <= 0 && m.pauseMS > 0 {
			m.pauseRemainingMS = m.pauseMS
			return
		}
	}
}
