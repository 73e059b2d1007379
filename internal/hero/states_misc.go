package hero

import (
	"github.com/solarium-engine/solarium/internal/equipment"
)

// HurtState pushes the hero away from whatever hurt it for a fixed
// duration while blinking, then returns to FREE (spec.md §4.G invariant
// "a straight movement pushes the hero opposite the attacker for 200ms,
// blinking is set").
type HurtState struct {
	Base
	durationMS int64
}

func (HurtState) Name() string      { return "HURT" }
func (HurtState) CanBeHurt() bool   { return false }
func (HurtState) IsDirectionLocked() bool { return true }

// Blink is called on Start so the game orchestrator can set the hero's
// sprite blink window; defaults to a no-op.
var Blink = func(h *Hero, nowMS, durationMS int64) {}

func (s *HurtState) Start(h *Hero, prev State) {
	s.durationMS = 200
	Blink(h, 0, s.durationMS)
}

func (s *HurtState) Update(h *Hero, nowMS int64) {
	if h.StateElapsedMS(nowMS) >= s.durationMS {
		if h.Equipment.GetAmount(equipment.AmountLife) <= 0 && h.CanStartGameOverSequence() {
			h.SetState(&GameOverState{}, nowMS)
		} else {
			h.SetState(&FreeState{}, nowMS)
		}
	}
}

// FreezedState halts the hero entirely until externally released (spec.md
// §4.G), used e.g. by scripts and cutscenes.
type FreezedState struct{ Base }

func (FreezedState) Name() string             { return "FREEZED" }
func (FreezedState) CanStartGameOverSequence() bool { return false }
func (FreezedState) IsDirectionLocked() bool  { return true }

func (s *FreezedState) Start(h *Hero, prev State) {
	if pm := h.PlayerMovement(); pm != nil {
		pm.SetMovingEnabled(false)
		pm.SetDirectionEnabled(false)
	}
}

// RunningState is the faster locomotion granted by the run ability
// (spec.md SUPPLEMENTED FEATURES, Equipment.Ability "run").
type RunningState struct{ Base }

func (RunningState) Name() string { return "RUNNING" }

func (s *RunningState) Update(h *Hero, nowMS int64) {
	pm := h.PlayerMovement()
	if pm == nil {
		h.SetState(&FreeState{}, nowMS)
		return
	}
	if pm.MoveTried() && !pm.LastMoveSucceeded() {
		h.SetState(&FreeState{}, nowMS)
		return
	}
	if pm.WantedDirection8() < 0 {
		h.SetState(&FreeState{}, nowMS)
	}
}

// VictoryState plays the end-of-dungeon-boss victory animation with
// input locked (spec.md §4.G).
type VictoryState struct {
	Base
	durationMS int64
}

func (VictoryState) Name() string                  { return "VICTORY" }
func (VictoryState) IsDirectionLocked() bool        { return true }
func (VictoryState) CanStartGameOverSequence() bool { return false }

func (s *VictoryState) Start(h *Hero, prev State) { s.durationMS = 1500 }

func (s *VictoryState) Update(h *Hero, nowMS int64) {
	if h.StateElapsedMS(nowMS) >= s.durationMS {
		h.SetState(&FreeState{}, nowMS)
	}
}

// UsingInventoryItemState delegates update/display to the current
// inventory item's script; it returns to FREE unless the item itself
// set a new state (spec.md §4.G invariant (d)).
type UsingInventoryItemState struct{ Base }

func (UsingInventoryItemState) Name() string { return "USING_INVENTORY_ITEM" }

// CurrentItemUpdate is invoked every tick while active; the game
// orchestrator assigns it once an item system exists. If it returns
// true the item is done and the hero falls back to FREE.
var CurrentItemUpdate = func(h *Hero, nowMS int64) bool { return true }

func (s *UsingInventoryItemState) Update(h *Hero, nowMS int64) {
	if CurrentItemUpdate(h, nowMS) {
		if h.State() == State(s) {
			h.SetState(&FreeState{}, nowMS)
		}
	}
}

// BowState fires an arrow projectile then returns to FREE.
type BowState struct {
	Base
	durationMS int64
}

func (BowState) Name() string           { return "BOW" }
func (BowState) IsDirectionLocked() bool { return true }

func (s *BowState) Start(h *Hero, prev State) { s.durationMS = 300 }

func (s *BowState) Update(h *Hero, nowMS int64) {
	if h.StateElapsedMS(nowMS) >= s.durationMS {
		h.SetState(&FreeState{}, nowMS)
	}
}

// BoomerangState throws a boomerang projectile then returns to FREE.
type BoomerangState struct {
	Base
	durationMS int64
}

func (BoomerangState) Name() string           { return "BOOMERANG" }
func (BoomerangState) IsDirectionLocked() bool { return true }

func (s *BoomerangState) Start(h *Hero, prev State) { s.durationMS = 600 }

func (s *BoomerangState) Update(h *Hero, nowMS int64) {
	if h.StateElapsedMS(nowMS) >= s.durationMS {
		h.SetState(&FreeState{}, nowMS)
	}
}

// GameOverState is the scripted death sequence; a fairy item restores
// life and blinks the hero back to FREE, otherwise the game orchestrator
// takes over once this state ends (spec.md §4.L "Game-over").
type GameOverState struct {
	Base
	durationMS int64
	hasFairy   bool
}

func (GameOverState) Name() string                  { return "GAMEOVER" }
func (GameOverState) CanStartGameOverSequence() bool { return false }
func (GameOverState) IsDirectionLocked() bool        { return true }

// HasFairy reports whether the player is carrying a revival fairy item;
// the game orchestrator overrides this once the item system exists.
var HasFairy = func(h *Hero) bool { return false }

func (s *GameOverState) Start(h *Hero, prev State) {
	s.durationMS = 2000
	s.hasFairy = HasFairy(h)
	if pm := h.PlayerMovement(); pm != nil {
		pm.SetMovingEnabled(false)
	}
}

func (s *GameOverState) Update(h *Hero, nowMS int64) {
	if h.StateElapsedMS(nowMS) < s.durationMS {
		return
	}
	if s.hasFairy {
		h.Equipment.SetAmount(equipment.AmountLife, h.Equipment.GetMaxAmount(equipment.AmountLife)/2)
		Blink(h, nowMS, 1000)
		h.SetState(&FreeState{}, nowMS)
	}
	// otherwise the game orchestrator observes GAMEOVER staying active
	// and drives the title-screen return itself.
}
