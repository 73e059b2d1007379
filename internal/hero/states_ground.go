package hero

import (
	"github.com/solarium-engine/solarium/internal/equipment"
	"github.com/solarium-engine/solarium/internal/geometry"
	"github.com/solarium-engine/solarium/internal/movement"
)

// JumpingState is active for the duration of a jump movement; the hero
// is immune to ground effects and invisible to ground collision while
// airborne (spec.md §4.G invariant (a)).
type JumpingState struct{ Base }

func (JumpingState) Name() string           { return "JUMPING" }
func (JumpingState) IsTouchingGround() bool { return false }
func (JumpingState) CanAvoidHole() bool     { return true }
func (JumpingState) CanAvoidDeepWater() bool { return true }

func (s *JumpingState) GetHeightAboveShadow() int {
	if j, ok := JumpMovementProvider(); ok {
		return j.Height()
	}
	return 0
}

// JumpMovementProvider is set by the game orchestrator to expose the
// active jump's parabolic height to the state; defaults to "no jump in
// flight". Exported so package game can wire it at construction time,
// the same seam pattern as IsGrabbable/Blink/OnTreasureGranted.
var JumpMovementProvider = func() (*movement.JumpMovement, bool) { return nil, false }

func (s *JumpingState) Update(h *Hero, nowMS int64) {
	jm, ok := h.Movement.(*movement.JumpMovement)
	if !ok || !jm.IsFinished() {
		return
	}
	if h.GroundKind == geometry.ObstacleDeepWater {
		h.SetState(&PlungingState{}, nowMS)
	} else {
		h.SetState(&FreeState{}, nowMS)
	}
}

// PlungingState is entered on deep water; flippers grant swimming, else
// the hero returns to solid ground and loses one life (spec.md §4.G).
type PlungingState struct{ Base }

func (PlungingState) Name() string            { return "PLUNGING" }
func (PlungingState) CanAvoidTeletransporter() bool { return true }

func (s *PlungingState) Start(h *Hero, prev State) {
	if h.Equipment != nil && h.Equipment.HasAbility(equipment.AbilitySwim) {
		h.SetState(&SwimmingState{}, 0)
		return
	}
	h.SetXY(h.LastSolidGround.X, h.LastSolidGround.Y)
	h.Equipment.AddAmount(equipment.AmountLife, -1)
	h.SetState(&FreeState{}, 0)
}

// SwimmingState is the hero's deep-water locomotion once flippers are
// held (spec.md §4.G).
type SwimmingState struct{ Base }

func (SwimmingState) Name() string            { return "SWIMMING" }
func (SwimmingState) CanAvoidDeepWater() bool { return true }

func (s *SwimmingState) Update(h *Hero, nowMS int64) {
	if h.GroundKind != geometry.ObstacleDeepWater {
		h.SetState(&FreeState{}, nowMS)
	}
}

// FallingState is the brief animation played when the hero drifts more
// than 8px from solid ground over a hole, before recovery begins
// (spec.md §4.G).
type FallingState struct {
	Base
	durationMS int64
}

func (FallingState) Name() string           { return "FALLING" }
func (FallingState) IsTouchingGround() bool { return false }

func (s *FallingState) Start(h *Hero, prev State) { s.durationMS = 400 }

func (s *FallingState) Update(h *Hero, nowMS int64) {
	if h.StateElapsedMS(nowMS) >= s.durationMS {
		h.SetState(&ReturningToSolidGroundState{}, nowMS)
	}
}

// ReturningToSolidGroundState seeks the hero's last solid ground at a
// fixed speed, losing 2 life on arrival (spec.md §4.G).
type ReturningToSolidGroundState struct {
	Base
	seek *movement.TargetMovement
}

func (ReturningToSolidGroundState) Name() string           { return "RETURNING_TO_SOLID_GROUND" }
func (ReturningToSolidGroundState) IsTouchingGround() bool { return false }

func (s *ReturningToSolidGroundState) Start(h *Hero, prev State) {
	s.seek = movement.NewTargetMovement(h, h.LastSolidGround.X, h.LastSolidGround.Y, 12, h.Box.Width, h.Box.Height, nil)
	h.Movement = s.seek
}

func (s *ReturningToSolidGroundState) Update(h *Hero, nowMS int64) {
	if s.seek != nil && s.seek.IsFinished() {
		h.Equipment.AddAmount(equipment.AmountLife, -2)
		Blink(h, nowMS, 2000)
		h.SetState(&FreeState{}, nowMS)
	}
}

// ConveyorBeltState carries the hero in the belt's fixed direction while
// standing on it; the player cannot avoid it (spec.md §4.G).
type ConveyorBeltState struct{ Base }

func (ConveyorBeltState) Name() string               { return "CONVEYOR_BELT" }
func (ConveyorBeltState) CanAvoidConveyorBelt() bool { return false }
func (ConveyorBeltState) IsDirectionLocked() bool     { return true }

func (s *ConveyorBeltState) Update(h *Hero, nowMS int64) {
	if h.OnConveyorBelt {
		return
	}
	h.SetState(&FreeState{}, nowMS)
}
