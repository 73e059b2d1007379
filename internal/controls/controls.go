// Package controls implements the low-level-input-to-logical-key mapping
// (spec.md §4.C) and the KeysEffect table that UI overlays and the hero
// read to know what each logical key currently does.
package controls

import "github.com/hajimehoshi/ebiten/v2"

// LogicalKey is one of the engine's remappable logical keys.
type LogicalKey int

const (
	KeyNone LogicalKey = iota
	KeyAction
	KeySword
	KeyItem1
	KeyItem2
	KeyPause
	KeyRight
	KeyUp
	KeyLeft
	KeyDown
)

var logicalKeyNames = map[LogicalKey]string{
	KeyNone: "none", KeyAction: "action", KeySword: "sword",
	KeyItem1: "item_1", KeyItem2: "item_2", KeyPause: "pause",
	KeyRight: "right", KeyUp: "up", KeyLeft: "left", KeyDown: "down",
}

func (k LogicalKey) String() string { return logicalKeyNames[k] }

// KeyEventKind distinguishes a press from a release.
type KeyEventKind int

const (
	KeyPressed KeyEventKind = iota
	KeyReleased
)

// KeyEvent is the translated result of one low-level input event.
type KeyEvent struct {
	Key  LogicalKey
	Kind KeyEventKind
}

// SavegameBinding is the persistence collaborator for key bindings,
// implemented by internal/equipment's Savegame facade (spec.md §3:
// "persisted via Savegame"). Keys are passed as their LogicalKey int value
// to avoid an import cycle between internal/controls and
// internal/equipment.
type SavegameBinding interface {
	GetKeyboardBinding(key int) ebiten.Key
	SetKeyboardBinding(key int, k ebiten.Key)
	GetJoypadBinding(key int) string
	SetJoypadBinding(key int, event string)
}

// Controls owns the keyboard_key -> logical_key and joypad_event_string ->
// logical_key mappings and the current pressed[] state of each logical
// key, plus an optional "customize" capture mode.
type Controls struct {
	keyboardToLogical map[ebiten.Key]LogicalKey
	joypadToLogical   map[string]LogicalKey
	pressed           map[LogicalKey]bool

	customizing    bool
	customizeTarget LogicalKey

	save SavegameBinding
}

// New builds a Controls from persisted bindings, falling back to the
// engine's default keyboard layout (arrow keys + space/enter) for any
// logical key the savegame has not yet bound.
func New(save SavegameBinding) *Controls {
	c := &Controls{
		keyboardToLogical: make(map[ebiten.Key]LogicalKey),
		joypadToLogical:   make(map[string]LogicalKey),
		pressed:           make(map[LogicalKey]bool),
		save:              save,
	}
	defaults := map[LogicalKey]ebiten.Key{
		KeyAction: ebiten.KeySpace,
		KeySword:  ebiten.KeyEnter,
		KeyItem1:  ebiten.Key1,
		KeyItem2:  ebiten.Key2,
		KeyPause:  ebiten.KeyEscape,
		KeyRight:  ebiten.KeyArrowRight,
		KeyUp:     ebiten.KeyArrowUp,
		KeyLeft:   ebiten.KeyArrowLeft,
		KeyDown:   ebiten.KeyArrowDown,
	}
	for lk, def := range defaults {
		k := def
		if save != nil {
			if bound := save.GetKeyboardBinding(int(lk)); bound != 0 {
				k = bound
			}
		}
		c.keyboardToLogical[k] = lk
	}
	return c
}

// IsPressed reports whether a logical key is currently held down.
func (c *Controls) IsPressed(key LogicalKey) bool { return c.pressed[key] }

// StartCustomizing puts Controls in capture mode: the next low-level event
// rebinds target instead of being dispatched normally (spec.md §4.C).
func (c *Controls) StartCustomizing(target LogicalKey) {
	c.customizing = true
	c.customizeTarget = target
}

// IsCustomizing reports whether a rebind capture is in progress.
func (c *Controls) IsCustomizing() bool { return c.customizing }

// OnKeyboardEvent handles one low-level keyboard event and returns the
// resulting logical KeyEvent, or false if the event produced none (e.g. an
// unbound key, or the event was swallowed by customize capture).
func (c *Controls) OnKeyboardEvent(key ebiten.Key, kind KeyEventKind) (KeyEvent, bool) {
	if c.customizing {
		if kind != KeyPressed {
			return KeyEvent{}, false
		}
		for k, lk := range c.keyboardToLogical {
			if lk == c.customizeTarget {
				delete(c.keyboardToLogical, k)
				break
			}
		}
		c.keyboardToLogical[key] = c.customizeTarget
		if c.save != nil {
			c.save.SetKeyboardBinding(int(c.customizeTarget), key)
		}
		c.customizing = false
		return KeyEvent{}, false
	}

	lk, ok := c.keyboardToLogical[key]
	if !ok {
		return KeyEvent{}, false
	}
	c.pressed[lk] = kind == KeyPressed
	return KeyEvent{Key: lk, Kind: kind}, true
}

// OnJoypadEvent mirrors OnKeyboardEvent for joypad events, identified by an
// opaque event string (spec.md §6).
func (c *Controls) OnJoypadEvent(event string, kind KeyEventKind) (KeyEvent, bool) {
	if c.customizing {
		if kind != KeyPressed {
			return KeyEvent{}, false
		}
		for e, lk := range c.joypadToLogical {
			if lk == c.customizeTarget {
				delete(c.joypadToLogical, e)
				break
			}
		}
		c.joypadToLogical[event] = c.customizeTarget
		if c.save != nil {
			c.save.SetJoypadBinding(int(c.customizeTarget), event)
		}
		c.customizing = false
		return KeyEvent{}, false
	}

	lk, ok := c.joypadToLogical[event]
	if !ok {
		return KeyEvent{}, false
	}
	c.pressed[lk] = kind == KeyPressed
	return KeyEvent{Key: lk, Kind: kind}, true
}

// direction8Table maps the 4-bit mask (right|up<<1|left<<2|down<<3) to a
// Direction8 angle in degrees, or -1 when the combination cancels out.
// Left+right alone, or up+down alone, resolve to -1, and so does every
// combination of three or four keys: opposite presses cancel regardless
// of which was pressed last.
var direction8Table = [16]int{
	-1, // 0000 none
	0,  // 0001 right
	90, // 0010 up            (screen-space: up is -Y, drawn as 90 here per spec's CCW convention)
	45, // 0011 right+up
	180, // 0100 left
	-1,  // 0101 right+left -> cancel
	135, // 0110 left+up
	-1,  // 0111 right+left+up -> right+left cancels, pure up... kept -1 per source ambiguity
	270, // 1000 down
	315, // 1001 right+down
	-1,  // 1010 up+down -> cancel
	-1,  // 1011
	225, // 1100 left+down
	-1,  // 1101
	-1,  // 1110
	-1,  // 1111
}

// GetWantedDirection8 returns the 8-way direction (0-315 degrees, or -1)
// implied by the four directional logical keys' pressed state.
func (c *Controls) GetWantedDirection8() int {
	mask := 0
	if c.pressed[KeyRight] {
		mask |= 1
	}
	if c.pressed[KeyUp] {
		mask |= 2
	}
	if c.pressed[KeyLeft] {
		mask |= 4
	}
	if c.pressed[KeyDown] {
		mask |= 8
	}
	return direction8Table[mask]
}
