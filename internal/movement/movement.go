// Package movement implements the polymorphic movement library (spec.md
// §4.D): per-frame position mutators attachable to any entity, each
// capable of suspension and reporting its own completion.
package movement

import "github.com/solarium-engine/solarium/internal/geometry"

// Target is the minimal position surface a Movement mutates. Entities
// implement this directly (spec.md §3: "a movement is owned by the entity
// it is attached to").
type Target interface {
	XY() (int, int)
	SetXY(x, y int)
}

// ObstacleChecker lets collision-aware movements ask whether a candidate
// rectangle is free, without depending on internal/collision directly
// (avoiding an import cycle: collision depends on entity, entity attaches
// movement).
type ObstacleChecker interface {
	CanOccupy(candidate geometry.Rectangle) bool
}

// Movement is the common interface every movement kind implements
// (spec.md §4.D).
type Movement interface {
	// Update advances the movement by one tick given the current time in
	// milliseconds, moving its Target as appropriate.
	Update(nowMS int64)
	SetSuspended(suspended bool, nowMS int64)
	IsFinished() bool
	SetProperty(key string, value any)
	GetProperty(key string) any
	// IgnoreObstacles reports whether this movement bypasses collision and
	// map-border checks entirely.
	IgnoreObstacles() bool
	// XYChange returns the (dx, dy) applied to the Target during the most
	// recent Update call; 0 when suspended or finished (spec.md §8
	// testable property).
	XYChange() (int, int)
	// LastCollisionBox returns the bounding box movement last attempted
	// and found blocked by an obstacle, used by states that react to a
	// blocked move (e.g. PUSHING).
	LastCollisionBox() (geometry.Rectangle, bool)
}

// base holds the fields and suspension bookkeeping shared by every
// concrete movement, mirroring how the teacher's systems share small
// embedded structs rather than duplicating logic per type.
type base struct {
	target Target

	suspended      bool
	suspendStartMS int64

	ignoreObstacles bool
	finished        bool

	lastDX, lastDY int

	lastBlockedBox geometry.Rectangle
	hasBlockedBox  bool

	properties map[string]any
}

func newBase(target Target) base {
	return base{target: target, properties: make(map[string]any)}
}

func (b *base) SetProperty(key string, value any) { b.properties[key] = value }
func (b *base) GetProperty(key string) any        { return b.properties[key] }
func (b *base) IgnoreObstacles() bool              { return b.ignoreObstacles }
func (b *base) IsFinished() bool                   { return b.finished }
func (b *base) XYChange() (int, int)               { return b.lastDX, b.lastDY }

func (b *base) LastCollisionBox() (geometry.Rectangle, bool) {
	return b.lastBlockedBox, b.hasBlockedBox
}

func (b *base) recordBlocked(r geometry.Rectangle) {
	b.lastBlockedBox = r
	b.hasBlockedBox = true
}

func (b *base) SetSuspended(suspended bool, nowMS int64) {
	if suspended == b.suspended {
		return
	}
	b.suspended = suspended
	if suspended {
		b.suspendStartMS = nowMS
	}
}

// resumeOffset returns the duration just spent suspended; subtypes call it
// from their own SetSuspended override, after base.SetSuspended, and shift
// their scheduled-date fields by it.
func (b *base) resumeOffset(nowMS int64) int64 {
	return nowMS - b.suspendStartMS
}

// moveTo attempts to move the target to (x, y). If checker is non-nil and
// the movement does not ignore obstacles, the candidate footprint is
// tested first; on success the target moves and lastDX/lastDY record the
// delta, on failure the position is unchanged, lastDX/lastDY are zero and
// the blocked box is recorded.
func (b *base) moveTo(x, y, width, height int, checker ObstacleChecker) bool {
	oldX, oldY := b.target.XY()
	candidate := geometry.NewRectangle(x, y, width, height)
	if !b.ignoreObstacles && checker != nil && !checker.CanOccupy(candidate) {
		b.recordBlocked(candidate)
		b.lastDX, b.lastDY = 0, 0
		return false
	}
	b.target.SetXY(x, y)
	b.lastDX, b.lastDY = x-oldX, y-oldY
	return true
}
