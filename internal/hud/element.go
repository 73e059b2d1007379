// Package hud implements the HUD element array and the Pause menu
// (spec.md §4.J): hearts/rupees/magic/item/sword/pause/action/small-keys/
// floor indicators, plus Inventory/Map/Quest Status/Options submenus.
package hud

// Element is the common surface every HUD element implements: visibility,
// opacity (for the top-left-corner demotion) and a blink window, on top
// of its own Update/Display (spec.md §4.J "each element exposes update(),
// display(dst), visibility, opacity 0-255, blink").
type Element interface {
	Update(nowMS int64)
	IsVisible() bool
	SetVisible(v bool)
	Opacity() int
	SetOpacity(o int)
	Blink(nowMS, durationMS int64)
	IsBlinking(nowMS int64) bool
}

// Base provides the shared visibility/opacity/blink bookkeeping every
// concrete element embeds, the same "small struct with sensible defaults,
// concrete types override only what differs" shape used by hero.Base
// (component G) and the teacher's monster wrapper structs.
type Base struct {
	visible      bool
	opacity      int
	blinkUntilMS int64
}

// NewBase returns a Base that is visible at full opacity.
func NewBase() Base { return Base{visible: true, opacity: 255} }

func (b *Base) IsVisible() bool  { return b.visible }
func (b *Base) SetVisible(v bool) { b.visible = v }

func (b *Base) Opacity() int { return b.opacity }

// SetOpacity clamps to the valid 0-255 range (spec.md §4.J "opacity
// 0-255").
func (b *Base) SetOpacity(o int) {
	if o < 0 {
		o = 0
	}
	if o > 255 {
		o = 255
	}
	b.opacity = o
}

func (b *Base) Blink(nowMS, durationMS int64) { b.blinkUntilMS = nowMS + durationMS }
func (b *Base) IsBlinking(nowMS int64) bool   { return nowMS < b.blinkUntilMS }

// FullOpacity and CornerOpacity are the two opacity levels the HUD
// switches elements between (spec.md §4.J "the HUD demotes opacity to 96
// when the hero overlaps the top-left corner region").
const (
	FullOpacity   = 255
	CornerOpacity = 96
)
