package hud

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/solarium-engine/solarium/internal/controls"
	"github.com/solarium-engine/solarium/internal/equipment"
	"github.com/solarium-engine/solarium/internal/geometry"
)

// CornerRegion is the screen-space rectangle that, when the hero's
// screen-space box overlaps it, triggers the opacity demotion (spec.md
// §4.J "the HUD demotes opacity to 96 when the hero overlaps the
// top-left corner region").
var CornerRegion = geometry.NewRectangle(0, 0, 64, 40)

// Hud is the fixed array of HUD elements spec.md §4.J names.
type Hud struct {
	Hearts    *HeartsView
	Rupees    *RupeesCounter
	Magic     *MagicBar
	Item1     *ItemIcon
	Item2     *ItemIcon
	Sword     *SwordIcon
	PauseIcon *PauseIcon
	Action    *ActionIcon
	SmallKeys *SmallKeysCounter
	Floor     *FloorView

	elements []Element

	dialogActive bool
}

// New builds the HUD's fixed element set at the engine's default
// screen-corner layout. counterOf maps item names to the Amount counter
// drawn beside their icon (passed through to the two ItemIcon elements).
func New(eq *equipment.Equipment, keys *controls.KeysEffect, counterOf map[string]equipment.Amount) *Hud {
	h := &Hud{
		Hearts:    NewHeartsView(eq, 8, 8),
		Rupees:    NewRupeesCounter(eq, 8, 24),
		Magic:     NewMagicBar(eq, 8, 40, 64),
		Item1:     NewItemIcon(eq, equipment.Slot1, 8, 52, counterOf),
		Item2:     NewItemIcon(eq, equipment.Slot2, 32, 52, counterOf),
		Sword:     NewSwordIcon(keys, 200, 8),
		PauseIcon: NewPauseIcon(keys, 200, 24),
		Action:    NewActionIcon(keys, 200, 40),
		SmallKeys: NewSmallKeysCounter(8, 68),
		Floor:     NewFloorView(8, 84),
	}
	h.elements = []Element{
		h.Hearts, h.Rupees, h.Magic, h.Item1, h.Item2,
		h.Sword, h.PauseIcon, h.Action, h.SmallKeys, h.Floor,
	}
	return h
}

// Update advances every element, then applies the corner-overlap opacity
// demotion and the dialog-driven hiding.
func (h *Hud) Update(nowMS int64, heroScreenBox geometry.Rectangle) {
	for _, e := range h.elements {
		e.Update(nowMS)
	}

	opacity := FullOpacity
	if heroScreenBox.Overlaps(CornerRegion) {
		opacity = CornerOpacity
	}
	for _, e := range h.elements {
		e.SetOpacity(opacity)
	}

	h.applyDialogVisibility()
}

// SetDialogActive hides the action icon, the small-keys counter and the
// floor view while a dialog is active (spec.md §4.J); no icon is
// repositioned.
func (h *Hud) SetDialogActive(active bool) {
	h.dialogActive = active
	h.applyDialogVisibility()
}

func (h *Hud) applyDialogVisibility() {
	h.Action.SetVisible(!h.dialogActive)
	h.SmallKeys.SetVisible(!h.dialogActive)
	h.Floor.SetVisible(!h.dialogActive)
}

// Display draws every visible element in its fixed order.
func (h *Hud) Display(dst *ebiten.Image) {
	h.Hearts.Display(dst)
	h.Rupees.Display(dst)
	h.Magic.Display(dst)
	h.Item1.Display(dst)
	h.Item2.Display(dst)
	h.Sword.Display(dst)
	h.PauseIcon.Display(dst)
	h.Action.Display(dst)
	h.SmallKeys.Display(dst)
	h.Floor.Display(dst)
}
