package hero

import (
	"github.com/solarium-engine/solarium/internal/controls"
	"github.com/solarium-engine/solarium/internal/entity"
	"github.com/solarium-engine/solarium/internal/geometry"
)

// GrabbingState holds the hero facing a grabbable entity with ACTION
// held; a direction key toward the entity switches to PUSHING, away
// switches to PULLING (spec.md §4.G).
type GrabbingState struct{ Base }

func (GrabbingState) Name() string              { return "GRABBING" }
func (GrabbingState) IsGrabbingOrPulling() bool  { return true }
func (GrabbingState) IsDirectionLocked() bool    { return true }

func (s *GrabbingState) Start(h *Hero, prev State) {
	if pm := h.PlayerMovement(); pm != nil {
		pm.SetMovingEnabled(false)
	}
}

func (s *GrabbingState) Update(h *Hero, nowMS int64) {
	if !h.Controls.IsPressed(controls.KeyAction) {
		h.SetState(&FreeState{}, nowMS)
		return
	}
	dir := h.Controls.GetWantedDirection8()
	if dir < 0 {
		return
	}
	if dir == h.Direction*45 {
		h.SetState(&PushingState{}, nowMS)
	} else if dir == (h.Direction*45+180)%360 {
		h.SetState(&PullingState{}, nowMS)
	}
}

// PushingState moves the hero and the grabbed entity together toward the
// hero's facing direction.
type PushingState struct {
	Base
	block *entity.Entity
}

func (PushingState) Name() string             { return "PUSHING" }
func (PushingState) IsGrabbingOrPulling() bool { return true }
func (PushingState) IsMovingGrabbedEntity() bool { return true }
func (PushingState) IsDirectionLocked() bool  { return true }

// AttachBlockMovement is set by the game orchestrator to attach a
// fixed-distance path movement to a facing BLOCK entity, enforcing its
// maximum_moves budget (spec.md §8 scenario 5); it reports whether a
// movement was actually attached. The seam pattern IsGrabbable/Blink/
// OnTreasureGranted already use, since building the block's obstacle
// checker needs the current map's resolver.
var AttachBlockMovement = func(h *Hero, block *entity.Entity, dir geometry.Direction8) bool { return false }

func (s *PushingState) Start(h *Hero, prev State) {
	if pm := h.PlayerMovement(); pm != nil {
		pm.SetMovingEnabled(true)
	}
	s.block = h.FacingEntity
	AttachBlockMovement(h, s.block, geometry.Direction8(h.Direction))
}

func (s *PushingState) Update(h *Hero, nowMS int64) {
	if s.block != nil && s.block.Movement != nil && s.block.Movement.IsFinished() {
		h.SetState(&GrabbingState{}, nowMS)
		return
	}
	if !h.Controls.IsPressed(controls.KeyAction) {
		h.SetState(&GrabbingState{}, nowMS)
	}
}

func (s *PushingState) NotifyGrabbedEntityCollision(h *Hero) {
	// the grabbed entity could not move further; drop back to grabbing
}

// PullingState moves the grabbed entity toward the hero.
type PullingState struct{ Base }

func (PullingState) Name() string               { return "PULLING" }
func (PullingState) IsGrabbingOrPulling() bool   { return true }
func (PullingState) IsMovingGrabbedEntity() bool { return true }
func (PullingState) IsDirectionLocked() bool     { return true }

func (s *PullingState) Update(h *Hero, nowMS int64) {
	if !h.Controls.IsPressed(controls.KeyAction) {
		h.SetState(&GrabbingState{}, nowMS)
	}
}

// LiftingState plays the lifting animation on a destructible facing
// entity; on completion the hero starts carrying it (spec.md §4.G).
type LiftingState struct {
	Base
	durationMS int64
}

func (LiftingState) Name() string           { return "LIFTING" }
func (LiftingState) IsDirectionLocked() bool { return true }

func (s *LiftingState) Start(h *Hero, prev State) { s.durationMS = 400 }

func (s *LiftingState) Update(h *Hero, nowMS int64) {
	if h.StateElapsedMS(nowMS) >= s.durationMS {
		h.LiftedItem = h.FacingEntity
		h.SetState(&CarryingState{}, nowMS)
	}
}

// CarryingState follows the hero with the lifted item above its head;
// pressing SWORD throws it (spec.md §4.G).
type CarryingState struct{ Base }

func (CarryingState) Name() string { return "CARRYING" }

func (s *CarryingState) Start(h *Hero, prev State) {
	if pm := h.PlayerMovement(); pm != nil {
		pm.SetMovingEnabled(true)
	}
}

func (s *CarryingState) OnSwordPressed(h *Hero, nowMS int64) {
	h.ThrownItem = h.LiftedItem
	h.LiftedItem = nil
	h.SetState(&FreeState{}, nowMS)
}

// BrandishingTreasureState locks input while the hero holds a treasure
// picture aloft; on completion the treasure is added to equipment
// (spec.md §4.L "Treasure").
type BrandishingTreasureState struct {
	Base
	durationMS int64
}

func (BrandishingTreasureState) Name() string                     { return "BRANDISHING_TREASURE" }
func (BrandishingTreasureState) IsDirectionLocked() bool           { return true }
func (BrandishingTreasureState) CanStartGameOverSequence() bool    { return false }

func (s *BrandishingTreasureState) Start(h *Hero, prev State) { s.durationMS = 1500 }

// OnTreasureGranted is invoked by the game orchestrator when the
// brandish completes, before the hero returns to FREE.
var OnTreasureGranted = func(h *Hero, t *Treasure) {}

func (s *BrandishingTreasureState) Update(h *Hero, nowMS int64) {
	if h.StateElapsedMS(nowMS) >= s.durationMS {
		if h.Treasure != nil {
			OnTreasureGranted(h, h.Treasure)
			h.Treasure = nil
		}
		h.SetState(&FreeState{}, nowMS)
	}
}
