package controls

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

type fakeSave struct {
	keyboard map[int]ebiten.Key
	joypad   map[int]string
}

func newFakeSave() *fakeSave {
	return &fakeSave{keyboard: map[int]ebiten.Key{}, joypad: map[int]string{}}
}
func (f *fakeSave) GetKeyboardBinding(key int) ebiten.Key     { return f.keyboard[key] }
func (f *fakeSave) SetKeyboardBinding(key int, k ebiten.Key)  { f.keyboard[key] = k }
func (f *fakeSave) GetJoypadBinding(key int) string           { return f.joypad[key] }
func (f *fakeSave) SetJoypadBinding(key int, event string)    { f.joypad[key] = event }

func TestDirection8Cancellation(t *testing.T) {
	c := New(newFakeSave())

	c.OnKeyboardEvent(ebiten.KeyArrowLeft, KeyPressed)
	c.OnKeyboardEvent(ebiten.KeyArrowRight, KeyPressed)
	if got := c.GetWantedDirection8(); got != -1 {
		t.Errorf("left+right = %d, want -1", got)
	}

	c.OnKeyboardEvent(ebiten.KeyArrowLeft, KeyReleased)
	c.OnKeyboardEvent(ebiten.KeyArrowRight, KeyReleased)
	c.OnKeyboardEvent(ebiten.KeyArrowUp, KeyPressed)
	if got := c.GetWantedDirection8(); got != 90 {
		t.Errorf("up only = %d, want 90", got)
	}
}

func TestCustomizeRebindsAndSwallowsEvent(t *testing.T) {
	save := newFakeSave()
	c := New(save)
	c.StartCustomizing(KeyAction)

	_, dispatched := c.OnKeyboardEvent(ebiten.KeyQ, KeyPressed)
	if dispatched {
		t.Fatal("expected the rebind event to be swallowed")
	}
	if c.IsCustomizing() {
		t.Fatal("expected customize mode to end after capture")
	}
	if save.keyboard[int(KeyAction)] != ebiten.KeyQ {
		t.Fatalf("binding not persisted: %v", save.keyboard[int(KeyAction)])
	}

	ev, dispatched := c.OnKeyboardEvent(ebiten.KeyQ, KeyPressed)
	if !dispatched || ev.Key != KeyAction {
		t.Fatalf("expected KeyQ to now dispatch KeyAction, got %+v dispatched=%v", ev, dispatched)
	}
}

func TestKeysEffectSaveRestore(t *testing.T) {
	ke := NewKeysEffect()
	ke.SetActionEffect(ActionSpeak)
	ke.SetSwordEffect(SwordSword)
	ke.SaveActionAndSwordEffects()

	ke.SetActionEffect(ActionNext)
	ke.SetSwordEffect(SwordSkip)

	ke.RestoreActionAndSwordEffects()
	if ke.ActionEffect() != ActionSpeak || ke.SwordEffect() != SwordSword {
		t.Fatalf("restore failed: action=%v sword=%v", ke.ActionEffect(), ke.SwordEffect())
	}
}
