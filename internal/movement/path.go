package movement

import "github.com/solarium-engine/solarium/internal/geometry"

// PathMovement replays a trajectory string where each character '0'-'7' is
// an 8-direction, 8-pixel segment, at a configurable speed in pixels per
// second (spec.md §4.D "Path movement").
type PathMovement struct {
	base

	path        string
	index       int
	speedPxPerS float64
	loop        bool

	width, height int
	checker       ObstacleChecker

	snapToGrid     bool
	snapDeadlineMS int64
	snapped        bool

	segmentRemaining float64 // pixels left to travel in the current segment
	lastUpdateMS     int64
	hasLastUpdate    bool

	stoppedByObstacle bool
}

// NewPathMovement creates a path movement over the given direction-digit
// string. checker may be nil for a movement that never collides.
func NewPathMovement(target Target, path string, speedPxPerS float64, loop bool, width, height int, checker ObstacleChecker) *PathMovement {
	m := &PathMovement{
		base: newBase(target), path: path, speedPxPerS: speedPxPerS, loop: loop,
		width: width, height: height, checker: checker,
	}
	if len(path) == 0 {
		m.finished = true
	}
	return m
}

// SetSnapToGrid makes the movement wait until the entity is aligned to the
// 8x8 grid before starting. An entity that is already aligned starts at
// once; one still unaligned after timeoutMS is placed on the top-left
// corner of its cell and then starts. The movement does not move the
// entity toward the grid while it waits.
func (m *PathMovement) SetSnapToGrid(nowMS, timeoutMS int64) {
	m.snapToGrid = true
	m.snapDeadlineMS = nowMS + timeoutMS
}

// StoppedByObstacle reports whether the movement halted because the next
// segment was blocked (spec.md §4.D "Reports stopped-by-obstacle").
func (m *PathMovement) StoppedByObstacle() bool { return m.stoppedByObstacle }

func (m *PathMovement) SetSuspended(suspended bool, nowMS int64) {
	wasSuspended := m.suspended
	m.base.SetSuspended(suspended, nowMS)
	if wasSuspended && !suspended {
		offset := m.resumeOffset(nowMS)
		m.snapDeadlineMS += offset
		if m.hasLastUpdate {
			m.lastUpdateMS += offset
		}
	}
}

func (m *PathMovement) Update(nowMS int64) {
	m.lastDX, m.lastDY = 0, 0
	if m.finished || m.suspended {
		return
	}

	if m.snapToGrid && !m.snapped {
		x, y := m.target.XY()
		sx := (x / geometry.CellSize) * geometry.CellSize
		sy := (y / geometry.CellSize) * geometry.CellSize
		if sx == x && sy == y {
			m.snapped = true
		} else if nowMS >= m.snapDeadlineMS {
			// give up waiting and snap immediately
			m.target.SetXY(sx, sy)
			m.lastDX, m.lastDY = sx-x, sy-y
			m.snapped = true
			return
		} else {
			return
		}
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
	for distance > 0 {
		if m.segmentRemaining <= 0 {
			if !m.advanceSegment() {
				return
			}
		}
		step := distance
		if step > m.segmentRemaining {
			step = m.segmentRemaining
		}
		if !m.applySubStep(step) {
			m.stoppedByObstacle = true
			m.finished = true
			return
		}
		m.segmentRemaining -= step
		distance -= step
		if m.segmentRemaining <= 0 && m.index >= len(m.path) && !m.loop {
			m.finished = true
			return
		}
	}
}

func (m *PathMovement) currentDirection() (geometry.Direction8, bool) {
	if m.index >= len(m.path) {
		return 0, false
	}
	c := m.path[m.index]
	if c < '0' || c > '7' {
		return 0, false
	}
	return geometry.Direction8(c - '0'), true
}

func (m *PathMovement) advanceSegment() bool {
	if m.index >= len(m.path) {
		if m.loop {
			m.index = 0
		} else {
			m.finished = true
			return false
		}
	}
	m.segmentRemaining = geometry.CellSize
	return true
}

// applySubStep moves step pixels along the current 8px segment. The
// engine works in integer map pixels, so the segment's progress is
// rounded to whole pixels and each sub-step moves by the change in that
// rounded progress; across a whole segment exactly 8 pixels are covered.
func (m *PathMovement) applySubStep(step float64) bool {
	dir, ok := m.currentDirection()
	if !ok {
		return false
	}
	dx, dy := dir.XY()
	done := geometry.CellSize - m.segmentRemaining
	px := int(done+step+0.5) - int(done+0.5)
	if px > 0 {
		x, y := m.target.XY()
		if !m.moveTo(x+dx*px, y+dy*px, m.width, m.height, m.checker) {
			return false
		}
	}
	if m.segmentRemaining-step <= 0 {
		m.index++
	}
	return true
}
