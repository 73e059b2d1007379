package hud

import (
	"testing"

	"github.com/solarium-engine/solarium/internal/controls"
	"github.com/solarium-engine/solarium/internal/equipment"
	"github.com/solarium-engine/solarium/internal/geometry"
)

func testEquipment(t *testing.T) *equipment.Equipment {
	t.Helper()
	save := equipment.New(t.TempDir() + "/save.dat")
	eq := equipment.NewEquipment(save, nil)
	eq.SetMaxAmount(equipment.AmountLife, 6)
	eq.SetAmount(equipment.AmountLife, 6)
	eq.SetMaxAmount(equipment.AmountMagic, 100)
	eq.SetAmount(equipment.AmountMagic, 50)
	return eq
}

func TestHudDemotesOpacityOnCornerOverlap(t *testing.T) {
	h := New(testEquipment(t), controls.NewKeysEffect(), nil)

	h.Update(0, geometry.NewRectangle(200, 200, 16, 16))
	if got := h.Hearts.Opacity(); got != FullOpacity {
		t.Fatalf("opacity away from corner = %d, want %d", got, FullOpacity)
	}

	h.Update(0, geometry.NewRectangle(0, 0, 16, 16))
	if got := h.Hearts.Opacity(); got != CornerOpacity {
		t.Fatalf("opacity overlapping corner = %d, want %d", got, CornerOpacity)
	}
}

func TestHudHidesIconsWhileDialogActive(t *testing.T) {
	h := New(testEquipment(t), controls.NewKeysEffect(), nil)
	if !h.Action.IsVisible() {
		t.Fatal("action icon should start visible")
	}
	h.SetDialogActive(true)
	if h.Action.IsVisible() {
		t.Fatal("expected action icon hidden while dialog is active")
	}
	h.SetDialogActive(false)
	if !h.Action.IsVisible() {
		t.Fatal("expected action icon restored once dialog closes")
	}
}

func TestPauseSubmenuCyclesBothDirections(t *testing.T) {
	p := NewPause(testEquipment(t))
	if p.Submenu() != SubmenuInventory {
		t.Fatalf("initial submenu = %v, want Inventory", p.Submenu())
	}
	p.LeftPressed()
	if p.Submenu() != SubmenuOptions {
		t.Fatalf("submenu after wrap-left = %v, want Options", p.Submenu())
	}
	p.RightPressed()
	if p.Submenu() != SubmenuInventory {
		t.Fatalf("submenu after right = %v, want Inventory", p.Submenu())
	}
}

func TestPauseAssignItemSwapsSlots(t *testing.T) {
	eq := testEquipment(t)
	eq.SetAssignedItem(equipment.Slot1, "bow")
	p := NewPause(eq)

	p.StartAssign("bomb", equipment.Slot2, 0, 0, 100, 0)
	for i := 0; i < 10000; i++ {
		p.Update(int64(i))
		if _, _, flying := p.IsAssigning(); !flying {
			break
		}
	}
	if got := eq.GetAssignedItem(equipment.Slot2); got != "bomb" {
		t.Fatalf("slot2 = %q, want bomb", got)
	}

	// Now assign "bow" (currently in slot1) into slot2 too: it should
	// swap rather than duplicate.
	p.StartAssign("bow", equipment.Slot2, 0, 0, 100, 0)
	for i := 0; i < 10000; i++ {
		p.Update(int64(10000 + i))
		if _, _, flying := p.IsAssigning(); !flying {
			break
		}
	}
	if got := eq.GetAssignedItem(equipment.Slot2); got != "bow" {
		t.Fatalf("slot2 after swap = %q, want bow", got)
	}
	if got := eq.GetAssignedItem(equipment.Slot1); got != "bomb" {
		t.Fatalf("slot1 after swap = %q, want bomb", got)
	}
}

func TestSaveDialogTwoQuestionSequence(t *testing.T) {
	p := NewPause(testEquipment(t))
	p.StartSaveDialog()
	d := p.SaveDialog()
	if d.Step() != stepAskSave {
		t.Fatalf("initial step = %v, want stepAskSave", d.Step())
	}

	d.LeftPressed() // "yes" to save
	p.SwordPressed()
	if d.Step() != stepAskContinue {
		t.Fatalf("step after first answer = %v, want stepAskContinue", d.Step())
	}
	if !d.Saved() {
		t.Fatal("expected Saved() true after answering yes")
	}

	d.RightPressed() // "no" to continue
	p.SwordPressed()
	if p.SaveDialog() != nil {
		t.Fatal("expected save dialog cleared after second answer")
	}
}
