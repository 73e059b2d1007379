package hero

import (
	"github.com/solarium-engine/solarium/internal/controls"
	"github.com/solarium-engine/solarium/internal/entity"
	"github.com/solarium-engine/solarium/internal/equipment"
	"github.com/solarium-engine/solarium/internal/geometry"
	"github.com/solarium-engine/solarium/internal/movement"
)

// Hero extends entity.Entity with the hero-specific fields spec.md §3
// names: per-part sprites, lifted/thrown/treasure references, ground
// kind under foot, solid-ground recovery points, the facing entity, and
// the active state.
type Hero struct {
	*entity.Entity

	Controls  *controls.Controls
	Equipment *equipment.Equipment

	state        State
	stateStartMS int64

	GroundKind geometry.Obstacle

	LastSolidGround   geometry.Point
	TargetSolidGround geometry.Point

	FacingEntity *entity.Entity
	LiftedItem   *entity.Entity
	ThrownItem   *entity.Entity
	Treasure     *Treasure

	SwordLoaded bool

	// OnConveyorBelt is set by the collision detector dispatch while the
	// hero overlaps an active CONVEYOR_BELT entity.
	OnConveyorBelt bool

	lastTapMS int64
}

// Treasure is the hand-off payload for BRANDISHING_TREASURE (spec.md §3
// "treasure reference").
type Treasure struct {
	ItemName string
	Variant  int
	SavegameVariable string
}

// New creates a hero entity at the given box, starting in FREE.
func New(box geometry.Rectangle, c *controls.Controls, eq *equipment.Equipment) *Hero {
	h := &Hero{
		Entity:    entity.New(entity.KindHero, geometry.LayerLow, box),
		Controls:  c,
		Equipment: eq,
	}
	h.LastSolidGround = box.Center()
	h.SetState(&FreeState{}, 0)
	return h
}

// State returns the hero's current state.
func (h *Hero) State() State { return h.state }

// StateElapsedMS returns how long the current state has been active.
func (h *Hero) StateElapsedMS(nowMS int64) int64 { return nowMS - h.stateStartMS }

// SetState transitions to next: the outgoing state's Stop runs before
// the incoming state's Start (spec.md §3 Hero invariant).
func (h *Hero) SetState(next State, nowMS int64) {
	prev := h.state
	if prev != nil {
		prev.Stop(h, next)
	}
	h.state = next
	h.stateStartMS = nowMS
	if next != nil {
		next.Start(h, prev)
	}
}

// Update advances the current state, then the embedded entity (movement
// + sprites).
func (h *Hero) Update(nowMS int64) {
	if h.state != nil {
		h.state.Update(h, nowMS)
	}
	h.Entity.Update(nowMS)
}

// SetSuspended propagates to both the current state and the base entity.
func (h *Hero) SetSuspended(suspended bool, nowMS int64) {
	if h.state != nil {
		h.state.SetSuspended(h, suspended, nowMS)
	}
	h.Entity.SetSuspended(suspended, nowMS)
}

// PlayerMovement returns the hero's movement cast to *movement.PlayerMovement,
// or nil if a different movement is currently attached (e.g. during a jump).
func (h *Hero) PlayerMovement() *movement.PlayerMovement {
	pm, _ := h.Movement.(*movement.PlayerMovement)
	return pm
}

// The query-hook accessors below delegate to the active state, giving
// the rest of the engine (collision, HUD, scripts) one place to ask
// "can the hero currently do X" without knowing which state is active.

func (h *Hero) CanStartGameOverSequence() bool { return h.state.CanStartGameOverSequence() }
func (h *Hero) IsTouchingGround() bool         { return h.state.IsTouchingGround() }
func (h *Hero) CanAvoidDeepWater() bool        { return h.state.CanAvoidDeepWater() }
func (h *Hero) CanAvoidHole() bool             { return h.state.CanAvoidHole() }
func (h *Hero) CanAvoidTeletransporter() bool  { return h.state.CanAvoidTeletransporter() }
func (h *Hero) CanAvoidConveyorBelt() bool     { return h.state.CanAvoidConveyorBelt() }
func (h *Hero) IsSensorObstacle() bool         { return h.state.IsSensorObstacle() }
func (h *Hero) CanAvoidSensor() bool           { return h.state.CanAvoidSensor() }
func (h *Hero) CanBeHurt() bool                { return h.state.CanBeHurt() }
func (h *Hero) IsDirectionLocked() bool        { return h.state.IsDirectionLocked() }
func (h *Hero) IsGrabbingOrPulling() bool      { return h.state.IsGrabbingOrPulling() }
func (h *Hero) IsMovingGrabbedEntity() bool    { return h.state.IsMovingGrabbedEntity() }
func (h *Hero) CanStartSword() bool            { return h.state.CanStartSword() }
func (h *Hero) CanSwordHitCrystalSwitch() bool { return h.state.CanSwordHitCrystalSwitch() }
func (h *Hero) GetSwordDamageFactor() float64  { return h.state.GetSwordDamageFactor() }
func (h *Hero) GetHeightAboveShadow() int      { return h.state.GetHeightAboveShadow() }
func (h *Hero) IsHeroVisible() bool            { return h.state.IsHeroVisible() }

// NotifyMovementTried is called by the orchestrator after each movement
// attempt so states like FREE can count consecutive blocked pushes.
func (h *Hero) NotifyMovementTried(success bool) { h.state.NotifyMovementTried(h, success) }

// NotifyGrabbedEntityCollision is called when an entity the hero moves
// while grabbing collides with an obstacle.
func (h *Hero) NotifyGrabbedEntityCollision() { h.state.NotifyGrabbedEntityCollision(h) }

// OnActionPressed / OnSwordPressed / OnSwordReleased route logical key
// events to the current state (spec.md §4.L phase 2 "hero via the active
// state").
func (h *Hero) OnActionPressed(nowMS int64) { h.state.OnActionPressed(h, nowMS) }
func (h *Hero) OnSwordPressed(nowMS int64)  { h.state.OnSwordPressed(h, nowMS) }
func (h *Hero) OnSwordReleased(nowMS int64) { h.state.OnSwordReleased(h, nowMS) }
