package entity

import (
	"github.com/solarium-engine/solarium/internal/geometry"
	"github.com/solarium-engine/solarium/internal/movement"
	"github.com/solarium-engine/solarium/internal/sprite"
)

// ObstacleFor lets a concrete entity override the default "always blocks"
// obstacle test, e.g. a block ignoring the hero that is currently pushing
// it, or a teletransporter transparent to a jumping movement (spec.md
// §4.F "the is_obstacle_for polymorphic test").
type ObstacleFor interface {
	IsObstacleFor(candidate *Entity) bool
}

// Entity is the base every concrete kind embeds (spec.md §3 "Entity").
type Entity struct {
	Kind Kind

	Layer geometry.Layer
	Box   geometry.Rectangle
	// Origin is the offset from the box's top-left corner to the entity's
	// logical anchor point (used for origin-point collision tests and
	// sprite placement).
	Origin geometry.Point

	Name      string
	Direction int // 0-3 or 0-7 depending on the entity; -1 if undirected

	sprites  map[string]*sprite.Sprite
	Movement movement.Movement

	Suspended        bool
	suspendedSinceMS int64

	BeingRemoved bool

	// PixelCollisionEnabled, when true together with a counterpart
	// entity's flag, makes sprite-mode detector dispatch test actual
	// opaque pixels rather than falling back to AABB (spec.md §4.E).
	PixelCollisionEnabled bool

	custom ObstacleFor

	detectorMode         CollisionMode
	detectorLayerIgnored bool
	onCollision          DetectorHandler

	properties map[string]any
}

// DetectorHandler is called when a detector entity registers a collision
// with another entity (spec.md §4.F "detector dispatch").
type DetectorHandler func(self, other *Entity, mode CollisionMode)

// SetDetector configures this entity as a detector: mode selects which
// overlap test the resolver runs, layerIgnored lets it test against
// entities on any layer, and handler is invoked on a hit.
func (e *Entity) SetDetector(mode CollisionMode, layerIgnored bool, handler DetectorHandler) {
	e.detectorMode = mode
	e.detectorLayerIgnored = layerIgnored
	e.onCollision = handler
}

// DetectorMode, DetectorLayerIgnored and NotifyCollision expose the
// detector configuration to the collision resolver.
func (e *Entity) DetectorMode() CollisionMode     { return e.detectorMode }
func (e *Entity) DetectorLayerIgnored() bool      { return e.detectorLayerIgnored }
func (e *Entity) NotifyCollision(other *Entity, mode CollisionMode) {
	if e.onCollision != nil {
		e.onCollision(e, other, mode)
	}
}

// New creates an entity of the given kind at the given box.
func New(kind Kind, layer geometry.Layer, box geometry.Rectangle) *Entity {
	return &Entity{
		Kind: kind, Layer: layer, Box: box, Direction: -1,
		sprites: make(map[string]*sprite.Sprite),
	}
}

// SetCustomObstacleTest installs a polymorphic is_obstacle_for override.
func (e *Entity) SetCustomObstacleTest(test ObstacleFor) { e.custom = test }

// SetProperty/GetProperty are a small side-channel key-value bag for the
// per-kind dynamic state script operations toggle (open/hidden/enabled/
// locked/moved), the same pattern internal/movement's base uses for its
// own SetProperty/GetProperty.
func (e *Entity) SetProperty(key string, value any) {
	if e.properties == nil {
		e.properties = make(map[string]any)
	}
	e.properties[key] = value
}

func (e *Entity) GetProperty(key string) any {
	if e.properties == nil {
		return nil
	}
	return e.properties[key]
}

// PropertyBool reads a boolean property, defaulting to def when unset.
func (e *Entity) PropertyBool(key string, def bool) bool {
	v := e.GetProperty(key)
	if b, ok := v.(bool); ok {
		return b
	}
	return def
}

// Features returns this entity's fixed feature tuple.
func (e *Entity) Features() Features { return FeaturesOf(e.Kind) }

// XY and SetXY implement movement.Target over the box's top-left corner.
func (e *Entity) XY() (int, int) { return e.Box.X, e.Box.Y }

func (e *Entity) SetXY(x, y int) { e.Box.X, e.Box.Y = x, y }

// OriginXY returns the entity's logical anchor point in map pixels.
func (e *Entity) OriginXY() (int, int) {
	return e.Box.X + e.Origin.X, e.Box.Y + e.Origin.Y
}

// FacingPoint returns the point one pixel beyond the entity's bounding
// box edge in its current facing direction, used for facing-point
// detector tests (e.g. "is the hero facing a liftable entity").
func (e *Entity) FacingPoint() geometry.Point {
	cx, cy := e.Box.Center().X, e.Box.Center().Y
	switch geometry.Direction8(e.Direction).ToDirection4() {
	case geometry.Direction4Right:
		return geometry.Point{X: e.Box.Right() + 1, Y: cy}
	case geometry.Direction4Up:
		return geometry.Point{X: cx, Y: e.Box.Top() - 1}
	case geometry.Direction4Left:
		return geometry.Point{X: e.Box.Left() - 1, Y: cy}
	default:
		return geometry.Point{X: cx, Y: e.Box.Bottom() + 1}
	}
}

// AddSprite attaches a named Sprite (spec.md §3 "a mapping from
// animation-set id to Sprite").
func (e *Entity) AddSprite(id string, s *sprite.Sprite) { e.sprites[id] = s }

// Sprite returns the named sprite, or nil if none is attached.
func (e *Entity) Sprite(id string) *sprite.Sprite { return e.sprites[id] }

// Sprites returns every attached sprite, for callers that draw/update all
// of them (e.g. the hero's tunic+sword+shield composite).
func (e *Entity) Sprites() map[string]*sprite.Sprite { return e.sprites }

// SetSuspended propagates suspension to the entity's movement and every
// attached sprite (spec.md §3 invariant (b)) and records the transition
// time so resume can compute elapsed suspension if needed later.
func (e *Entity) SetSuspended(suspended bool, nowMS int64) {
	if suspended == e.Suspended {
		return
	}
	e.Suspended = suspended
	if suspended {
		e.suspendedSinceMS = nowMS
	}
	if e.Movement != nil {
		e.Movement.SetSuspended(suspended, nowMS)
	}
	for _, s := range e.sprites {
		s.SetSuspended(suspended, nowMS)
	}
}

// Update advances this entity's movement and sprites by one tick. It does
// not move removed entities; callers should skip updating an entity once
// BeingRemoved is set, though Update itself is a no-op safety net.
func (e *Entity) Update(nowMS int64) {
	if e.BeingRemoved {
		return
	}
	if e.Movement != nil {
		e.Movement.Update(nowMS)
	}
	for _, s := range e.sprites {
		s.Update(nowMS)
	}
}

// IsObstacleFor implements the default "always blocks" obstacle test,
// deferring to a custom override when one was installed.
func (e *Entity) IsObstacleFor(candidate *Entity) bool {
	if !e.Features().CanBeObstacle || e.BeingRemoved {
		return false
	}
	if e.custom != nil {
		return e.custom.IsObstacleFor(candidate)
	}
	return true
}
