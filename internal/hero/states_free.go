package hero

import (
	"github.com/solarium-engine/solarium/internal/entity"
	"github.com/solarium-engine/solarium/internal/equipment"
)

// FreeState is the hero's default, player-controlled state (spec.md
// §4.G). From here every other state is reachable via a key press or a
// ground/sensor trigger.
type FreeState struct {
	Base

	pushing     bool
	pushStartMS int64
}

func (FreeState) Name() string { return "FREE" }

func (FreeState) CanStartSword() bool { return true }

func (s *FreeState) Start(h *Hero, prev State) {
	if pm := h.PlayerMovement(); pm != nil {
		pm.SetMovingEnabled(true)
		pm.SetDirectionEnabled(true)
	}
	s.pushing = false
}

// pushTriggerMS is how long a continuously blocked move must persist
// before the hero starts pushing its facing entity
// (original_source/src/entities/HeroState.cpp:599-634, Hero.h:84:
// "animation pushing is triggered at 800 ms").
const pushTriggerMS = 800

func (s *FreeState) Update(h *Hero, nowMS int64) {
	pm := h.PlayerMovement()
	if pm == nil {
		return
	}
	if pm.MoveTried() && !pm.LastMoveSucceeded() {
		if !s.pushing {
			s.pushing = true
			s.pushStartMS = nowMS
		}
		if h.FacingEntity != nil && nowMS-s.pushStartMS >= pushTriggerMS {
			h.SetState(&PushingState{}, nowMS)
		}
	} else {
		s.pushing = false
	}
}

func (s *FreeState) OnActionPressed(h *Hero, nowMS int64) {
	if h.FacingEntity == nil {
		return
	}
	if IsGrabbable(h.FacingEntity) {
		h.SetState(&GrabbingState{}, nowMS)
		return
	}
	if IsLiftable(h.FacingEntity) {
		h.SetState(&LiftingState{}, nowMS)
	}
}

func (s *FreeState) OnSwordPressed(h *Hero, nowMS int64) {
	if h.Equipment != nil && h.Equipment.HasAbility(equipment.AbilitySword) {
		h.SetState(&SwordSwingingState{}, nowMS)
	}
}

// IsGrabbable and IsLiftable classify whether the hero's facing entity
// can be grabbed/pulled-pushed or lifted. Both default to false; the game
// orchestrator overrides them once concrete entity kinds (blocks,
// destructibles) are wired, since that classification depends on
// per-kind data this package does not own.
var IsGrabbable = func(e *entity.Entity) bool { return false }
var IsLiftable = func(e *entity.Entity) bool { return false }
