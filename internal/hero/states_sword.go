package hero

import "github.com/solarium-engine/solarium/internal/controls"

const swordKey = controls.KeySword

// SwordSwingingState plays the one-handed sword swing; at animation end
// it loops back into loading if SWORD is still held, else returns to
// FREE (spec.md §4.G key transitions).
type SwordSwingingState struct {
	Base
	durationMS int64
}

func (SwordSwingingState) Name() string { return "SWORD_SWINGING" }

func (s *SwordSwingingState) Start(h *Hero, prev State) { s.durationMS = 300 }

func (s *SwordSwingingState) Update(h *Hero, nowMS int64) {
	if h.StateElapsedMS(nowMS) < s.durationMS {
		return
	}
	if h.Controls.IsPressed(swordKey) {
		h.SetState(&SwordLoadingState{}, nowMS)
	} else {
		h.SetState(&FreeState{}, nowMS)
	}
}

// SwordLoadingState is held while SWORD stays pressed after a swing;
// past 1000ms it marks the sword loaded so releasing triggers a spin
// attack, while pushing against a sword-usable obstacle taps instead
// (spec.md §4.G).
type SwordLoadingState struct{ Base }

func (SwordLoadingState) Name() string { return "SWORD_LOADING" }

func (s *SwordLoadingState) Start(h *Hero, prev State) { h.SwordLoaded = false }

func (s *SwordLoadingState) Update(h *Hero, nowMS int64) {
	if h.StateElapsedMS(nowMS) >= 1000 {
		h.SwordLoaded = true
	}
	if pm := h.PlayerMovement(); pm != nil && pm.MoveTried() && !pm.LastMoveSucceeded() && h.FacingEntity != nil {
		h.SetState(&SwordTappingState{}, nowMS)
	}
}

func (s *SwordLoadingState) OnSwordReleased(h *Hero, nowMS int64) {
	if h.SwordLoaded {
		h.SetState(&SpinAttackState{}, nowMS)
	} else {
		h.SetState(&FreeState{}, nowMS)
	}
}

// SwordTappingState replays a tap sound on a fixed cadence while the
// sword stays pressed against a sword-usable obstacle aligned with the
// hero's facing direction (spec.md §4.G invariant (c)).
type SwordTappingState struct{ Base }

func (SwordTappingState) Name() string { return "SWORD_TAPPING" }

const swordTapCadenceMS = 100

// TapSound is called each time the tap cadence elapses; the game
// orchestrator assigns this to trigger the actual sound effect.
var TapSound = func(h *Hero) {}

func (s *SwordTappingState) Update(h *Hero, nowMS int64) {
	if !h.Controls.IsPressed(swordKey) {
		h.SetState(&FreeState{}, nowMS)
		return
	}
	if h.StateElapsedMS(nowMS)%swordTapCadenceMS < 16 {
		TapSound(h)
	}
}

// SpinAttackState is the loaded-sword release attack: its damage factor
// doubles the base sword damage (spec.md §4.G invariant (b)).
type SpinAttackState struct {
	Base
	durationMS int64
}

func (SpinAttackState) Name() string             { return "SPIN_ATTACK" }
func (SpinAttackState) GetSwordDamageFactor() float64 { return 2.0 }
func (SpinAttackState) IsDirectionLocked() bool   { return true }

func (s *SpinAttackState) Start(h *Hero, prev State) { s.durationMS = 500 }

func (s *SpinAttackState) Update(h *Hero, nowMS int64) {
	if h.StateElapsedMS(nowMS) >= s.durationMS {
		h.SetState(&FreeState{}, nowMS)
	}
}
