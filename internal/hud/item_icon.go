package hud

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/solarium-engine/solarium/internal/equipment"
)

// ItemIcon draws the item currently assigned to one of the two ITEM
// slots, plus its amount counter if the item definition names one
// (spec.md §4.J "ItemIcon×2").
type ItemIcon struct {
	Base
	X, Y int
	Slot equipment.ItemSlot

	eq        *equipment.Equipment
	counterOf map[string]equipment.Amount
}

// NewItemIcon creates an ItemIcon for the given slot. counterOf maps an
// item name to the Amount counter drawn alongside it (e.g. a magic item ->
// AmountMagic); items absent from the map draw no counter.
func NewItemIcon(eq *equipment.Equipment, slot equipment.ItemSlot, x, y int, counterOf map[string]equipment.Amount) *ItemIcon {
	return &ItemIcon{Base: NewBase(), X: x, Y: y, Slot: slot, eq: eq, counterOf: counterOf}
}

func (i *ItemIcon) Update(nowMS int64) {}

func (i *ItemIcon) Display(dst *ebiten.Image) {
	if !i.IsVisible() {
		return
	}
	name := i.eq.GetAssignedItem(i.Slot)
	if name == "" {
		return
	}
	ebitenutil.DebugPrintAt(dst, name, i.X, i.Y)
	if amount, ok := i.counterOf[name]; ok {
		ebitenutil.DebugPrintAt(dst, fmt.Sprintf("x%d", i.eq.GetAmount(amount)), i.X, i.Y+12)
	}
}
