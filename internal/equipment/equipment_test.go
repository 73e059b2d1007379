package equipment

import "testing"

func TestAbilityReadWrite(t *testing.T) {
	sg := New("")
	eq := NewEquipment(sg, nil)

	if eq.HasAbility(AbilitySword) {
		t.Fatal("expected no sword ability by default")
	}
	eq.SetAbility(AbilitySword, 2)
	if !eq.HasAbility(AbilitySword) || eq.GetAbility(AbilitySword) != 2 {
		t.Fatalf("sword ability = %d, want 2", eq.GetAbility(AbilitySword))
	}
}

func TestAmountClampedToMax(t *testing.T) {
	sg := New("")
	eq := NewEquipment(sg, nil)

	eq.SetMaxAmount(AmountRupees, 99)
	eq.SetAmount(AmountRupees, 500)
	if got := eq.GetAmount(AmountRupees); got != 99 {
		t.Fatalf("GetAmount = %d, want 99", got)
	}

	eq.AddAmount(AmountRupees, -1000)
	if got := eq.GetAmount(AmountRupees); got != 0 {
		t.Fatalf("GetAmount = %d, want 0 (clamped)", got)
	}
}

func TestSetMaxAmountClampsCurrentDown(t *testing.T) {
	sg := New("")
	eq := NewEquipment(sg, nil)
	eq.SetMaxAmount(AmountMagic, 20)
	eq.SetAmount(AmountMagic, 20)
	eq.SetMaxAmount(AmountMagic, 10)
	if got := eq.GetAmount(AmountMagic); got != 10 {
		t.Fatalf("GetAmount = %d, want 10 after max lowered", got)
	}
}

func TestItemVariant(t *testing.T) {
	sg := New("")
	eq := NewEquipment(sg, []ItemDefinition{{Name: "bow", MaxVariant: 2, Savable: true}})

	if eq.HasItem("bow") {
		t.Fatal("expected bow not possessed initially")
	}
	if err := eq.SetItemVariant("bow", 5); err != nil {
		t.Fatalf("SetItemVariant: %v", err)
	}
	if got := eq.GetItemVariant("bow"); got != 2 {
		t.Fatalf("GetItemVariant = %d, want clamped to 2", got)
	}

	if err := eq.SetItemVariant("unknown-item", 1); err == nil {
		t.Fatal("expected error for unregistered item")
	}
}

func TestAssignedItemSlots(t *testing.T) {
	eq := NewEquipment(New(""), nil)
	eq.SetAssignedItem(Slot1, "bow")
	eq.SetAssignedItem(Slot2, "bombs")
	if eq.GetAssignedItem(Slot1) != "bow" || eq.GetAssignedItem(Slot2) != "bombs" {
		t.Fatalf("unexpected slot contents: %q %q", eq.GetAssignedItem(Slot1), eq.GetAssignedItem(Slot2))
	}
}
