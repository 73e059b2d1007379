package hero

import (
	"testing"

	"github.com/solarium-engine/solarium/internal/controls"
	"github.com/solarium-engine/solarium/internal/equipment"
	"github.com/solarium-engine/solarium/internal/geometry"
	"github.com/solarium-engine/solarium/internal/movement"
)

func testHero(t *testing.T) *Hero {
	t.Helper()
	save := equipment.New(t.TempDir() + "/save.dat")
	eq := equipment.NewEquipment(save, nil)
	c := controls.New(save)
	h := New(geometry.NewRectangle(0, 0, 16, 16), c, eq)
	h.Movement = movement.NewPlayerMovement(h, fakeDirSource{-1}, 80, 16, 16, noObstacles{})
	return h
}

type fakeDirSource struct{ deg int }

func (f fakeDirSource) GetWantedDirection8() int { return f.deg }

type noObstacles struct{}

func (noObstacles) CanOccupy(geometry.Rectangle) bool { return true }

func TestNewHeroStartsInFree(t *testing.T) {
	h := testHero(t)
	if h.State().Name() != "FREE" {
		t.Fatalf("initial state = %s, want FREE", h.State().Name())
	}
}

func TestSwordPressStartsSwingingWhenAbilityPresent(t *testing.T) {
	h := testHero(t)
	h.Equipment.SetAbility(equipment.AbilitySword, 1)

	h.OnSwordPressed(0)
	if h.State().Name() != "SWORD_SWINGING" {
		t.Fatalf("state = %s, want SWORD_SWINGING", h.State().Name())
	}
}

func TestSwordPressDoesNothingWithoutAbility(t *testing.T) {
	h := testHero(t)
	h.OnSwordPressed(0)
	if h.State().Name() != "FREE" {
		t.Fatalf("state = %s, want FREE (no sword ability)", h.State().Name())
	}
}

func TestSwingReturnsToFreeWhenSwordReleased(t *testing.T) {
	h := testHero(t)
	h.Equipment.SetAbility(equipment.AbilitySword, 1)
	h.OnSwordPressed(0)

	h.Update(300) // swing duration elapses; sword still considered released (no press tracked)
	if h.State().Name() != "FREE" {
		t.Fatalf("state after swing with sword released = %s, want FREE", h.State().Name())
	}
}

func TestHurtStateLocksDirectionAndExpires(t *testing.T) {
	h := testHero(t)
	h.Equipment.SetMaxAmount(equipment.AmountLife, 12)
	h.Equipment.SetAmount(equipment.AmountLife, 12)
	h.SetState(&HurtState{}, 0)
	if !h.IsDirectionLocked() {
		t.Fatal("expected HURT to lock direction")
	}
	if h.CanBeHurt() {
		t.Fatal("expected HURT to report CanBeHurt=false while already hurt")
	}
	h.Update(199)
	if h.State().Name() != "HURT" {
		t.Fatal("expected HURT to still be active before its duration elapses")
	}
	h.Update(200)
	if h.State().Name() != "FREE" {
		t.Fatalf("state after HURT duration = %s, want FREE", h.State().Name())
	}
}

func TestPlungingWithoutFlippersReturnsToSolidGroundAndLosesLife(t *testing.T) {
	h := testHero(t)
	h.Equipment.SetMaxAmount(equipment.AmountLife, 12)
	h.Equipment.SetAmount(equipment.AmountLife, 5)
	h.LastSolidGround = geometry.Point{X: 40, Y: 40}

	h.SetState(&PlungingState{}, 0)
	if h.State().Name() != "FREE" {
		t.Fatalf("state = %s, want FREE (no flippers, returns immediately)", h.State().Name())
	}
	if x, y := h.XY(); x != 40 || y != 40 {
		t.Fatalf("position = (%d,%d), want last solid ground (40,40)", x, y)
	}
	if got := h.Equipment.GetAmount(equipment.AmountLife); got != 4 {
		t.Fatalf("life = %d, want 4 after plunging without flippers", got)
	}
}

func TestPlungingWithFlippersSwims(t *testing.T) {
	h := testHero(t)
	h.Equipment.SetAbility(equipment.AbilitySwim, 1)

	h.SetState(&PlungingState{}, 0)
	if h.State().Name() != "SWIMMING" {
		t.Fatalf("state = %s, want SWIMMING", h.State().Name())
	}
}

func TestSpinAttackDamageFactor(t *testing.T) {
	h := testHero(t)
	h.SetState(&SpinAttackState{}, 0)
	if h.GetSwordDamageFactor() != 2.0 {
		t.Fatalf("damage factor = %v, want 2.0", h.GetSwordDamageFactor())
	}
}
