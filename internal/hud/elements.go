package hud

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/solarium-engine/solarium/internal/controls"
	"github.com/solarium-engine/solarium/internal/equipment"
)

// HeartsView draws the current/max life as a row of heart-quarter counts;
// drawing itself is grounded on the teacher's ui.go status panel, which
// renders gauges with vector.DrawFilledRect plus an ebitenutil label
// rather than sprite art.
type HeartsView struct {
	Base
	X, Y int
	eq   *equipment.Equipment
}

func NewHeartsView(eq *equipment.Equipment, x, y int) *HeartsView {
	b := NewBase()
	return &HeartsView{Base: b, X: x, Y: y, eq: eq}
}

func (h *HeartsView) Update(nowMS int64) {}

func (h *HeartsView) Display(dst *ebiten.Image) {
	if !h.IsVisible() {
		return
	}
	current, max := h.eq.GetAmount(equipment.AmountLife), h.eq.GetMaxAmount(equipment.AmountLife)
	const heartW, gap = 14, 2
	for i := 0; i < max; i++ {
		x := float32(h.X + i*(heartW+gap))
		col := color.RGBA{60, 20, 20, uint8(h.Opacity())}
		if i < current {
			col = color.RGBA{220, 40, 40, uint8(h.Opacity())}
		}
		vector.DrawFilledRect(dst, x, float32(h.Y), heartW, 12, col, false)
	}
}

// RupeesCounter draws the current rupee total.
type RupeesCounter struct {
	Base
	X, Y int
	eq   *equipment.Equipment
}

func NewRupeesCounter(eq *equipment.Equipment, x, y int) *RupeesCounter {
	return &RupeesCounter{Base: NewBase(), X: x, Y: y, eq: eq}
}

func (r *RupeesCounter) Update(nowMS int64) {}

func (r *RupeesCounter) Display(dst *ebiten.Image) {
	if !r.IsVisible() {
		return
	}
	ebitenutil.DebugPrintAt(dst, fmt.Sprintf("%d", r.eq.GetAmount(equipment.AmountRupees)), r.X, r.Y)
}

// MagicBar draws the current/max magic as a filled gauge.
type MagicBar struct {
	Base
	X, Y, Width int
	eq          *equipment.Equipment
}

func NewMagicBar(eq *equipment.Equipment, x, y, width int) *MagicBar {
	return &MagicBar{Base: NewBase(), X: x, Y: y, Width: width, eq: eq}
}

func (m *MagicBar) Update(nowMS int64) {}

func (m *MagicBar) Display(dst *ebiten.Image) {
	if !m.IsVisible() {
		return
	}
	max := m.eq.GetMaxAmount(equipment.AmountMagic)
	if max <= 0 {
		return
	}
	ratio := float32(m.eq.GetAmount(equipment.AmountMagic)) / float32(max)
	vector.StrokeRect(dst, float32(m.X), float32(m.Y), float32(m.Width), 6, 1, color.RGBA{200, 200, 200, uint8(m.Opacity())}, false)
	vector.DrawFilledRect(dst, float32(m.X), float32(m.Y), float32(m.Width)*ratio, 6, color.RGBA{80, 120, 220, uint8(m.Opacity())}, false)
}

// SwordIcon reflects the current SWORD key effect (spec.md §4.C
// KeysEffect).
type SwordIcon struct {
	Base
	X, Y int
	keys *controls.KeysEffect
}

func NewSwordIcon(keys *controls.KeysEffect, x, y int) *SwordIcon {
	return &SwordIcon{Base: NewBase(), X: x, Y: y, keys: keys}
}

func (s *SwordIcon) Update(nowMS int64) {}

func (s *SwordIcon) Display(dst *ebiten.Image) {
	if !s.IsVisible() || s.keys.SwordEffect() == controls.SwordHidden {
		return
	}
	ebitenutil.DebugPrintAt(dst, swordEffectLabel(s.keys.SwordEffect()), s.X, s.Y)
}

func swordEffectLabel(e controls.SwordEffect) string {
	switch e {
	case controls.SwordSave:
		return "SAVE"
	case controls.SwordSkip:
		return "SKIP"
	case controls.SwordSword:
		return "SWORD"
	default:
		return ""
	}
}

// ActionIcon reflects the current ACTION key effect.
type ActionIcon struct {
	Base
	X, Y int
	keys *controls.KeysEffect
}

func NewActionIcon(keys *controls.KeysEffect, x, y int) *ActionIcon {
	return &ActionIcon{Base: NewBase(), X: x, Y: y, keys: keys}
}

func (a *ActionIcon) Update(nowMS int64) {}

func (a *ActionIcon) Display(dst *ebiten.Image) {
	if !a.IsVisible() || a.keys.ActionEffect() == controls.ActionNone {
		return
	}
	ebitenutil.DebugPrintAt(dst, actionEffectLabel(a.keys.ActionEffect()), a.X, a.Y)
}

func actionEffectLabel(e controls.ActionEffect) string {
	switch e {
	case controls.ActionValidate:
		return "OK"
	case controls.ActionNext:
		return "NEXT"
	case controls.ActionLook:
		return "LOOK"
	case controls.ActionOpen:
		return "OPEN"
	case controls.ActionLift:
		return "LIFT"
	case controls.ActionThrow:
		return "THROW"
	case controls.ActionGrab:
		return "GRAB"
	case controls.ActionSpeak:
		return "SPEAK"
	case controls.ActionChange:
		return "CHANGE"
	case controls.ActionSwim:
		return "SWIM"
	default:
		return ""
	}
}

// PauseIcon is shown whenever pausing is currently enabled.
type PauseIcon struct {
	Base
	X, Y int
	keys *controls.KeysEffect
}

func NewPauseIcon(keys *controls.KeysEffect, x, y int) *PauseIcon {
	return &PauseIcon{Base: NewBase(), X: x, Y: y, keys: keys}
}

func (p *PauseIcon) Update(nowMS int64) {}

func (p *PauseIcon) Display(dst *ebiten.Image) {
	if !p.IsVisible() || !p.keys.IsPauseEnabled() {
		return
	}
	ebitenutil.DebugPrintAt(dst, "PAUSE", p.X, p.Y)
}

// SmallKeysCounter draws the current dungeon's small key count.
type SmallKeysCounter struct {
	Base
	X, Y  int
	count int
}

func NewSmallKeysCounter(x, y int) *SmallKeysCounter {
	return &SmallKeysCounter{Base: NewBase(), X: x, Y: y}
}

func (s *SmallKeysCounter) SetCount(n int) { s.count = n }
func (s *SmallKeysCounter) Update(nowMS int64) {}

func (s *SmallKeysCounter) Display(dst *ebiten.Image) {
	if !s.IsVisible() || s.count <= 0 {
		return
	}
	ebitenutil.DebugPrintAt(dst, fmt.Sprintf("KEYS x%d", s.count), s.X, s.Y)
}

// FloorView draws the current dungeon floor indicator.
type FloorView struct {
	Base
	X, Y  int
	floor int
}

func NewFloorView(x, y int) *FloorView { return &FloorView{Base: NewBase(), X: x, Y: y} }

func (f *FloorView) SetFloor(floor int) { f.floor = floor }
func (f *FloorView) Update(nowMS int64) {}

func (f *FloorView) Display(dst *ebiten.Image) {
	if !f.IsVisible() {
		return
	}
	label := fmt.Sprintf("%d", f.floor)
	if f.floor < 0 {
		label = fmt.Sprintf("B%d", -f.floor)
	}
	ebitenutil.DebugPrintAt(dst, label, f.X, f.Y)
}
