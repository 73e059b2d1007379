// Package equipment implements the Savegame key-value store (component H)
// and the Equipment facade layered over it: ability levels, items, amounts
// and assignments. Savegame is the single source of truth for persistent
// state; Equipment is a view, never a shadow copy (spec.md §5).
package equipment

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

// Reserved index space, matching spec.md §6 (version-stable, do not
// renumber).
const (
	StringCount = 64
	IntCount    = 1024
	CustomIntCount = 1024
	BoolCount   = 32768

	IdxStartingMap      = 0
	IdxStartingEntrance = 1
	IdxPauseLastSubmenu = 2
	IdxInventoryLastRow = 3
	IdxInventoryLastCol = 4

	IdxCurrentLifeQuarters = 10
	IdxCurrentRupees       = 11
	IdxCurrentMagic        = 12

	IdxMaxHearts = 20
	IdxMaxRupees = 21
	IdxMaxMagic  = 22

	IdxTunic  = 31
	IdxShield = 32
	IdxSword  = 33

	IdxHeartPiecesStart = 100
	IdxHeartPiecesEnd   = 143
)

// onDiskSavegame is the YAML-serialized shape of a savegame file. Solarus's
// actual savegame is a fixed binary block (spec.md §6); this repo reads and
// writes a structurally-equivalent YAML document, since the raw byte
// layout is an explicit Non-goal ("savegame file I/O format bytes").
type onDiskSavegame struct {
	Strings    [StringCount]string `yaml:"strings"`
	Ints       [IntCount]int32     `yaml:"ints"`
	CustomInts map[int]int32       `yaml:"custom_ints"`
	CustomBools map[int]bool       `yaml:"custom_bools"`

	KeyboardBindings map[int]ebiten.Key `yaml:"keyboard_bindings"`
	JoypadBindings   map[int]string     `yaml:"joypad_bindings"`
}

// Savegame is the engine's persistent key-value store: reserved strings
// and ints, plus custom ints and booleans for scripts.
type Savegame struct {
	path string
	data onDiskSavegame
}

// New creates an empty, in-memory Savegame (used for "new game").
func New(path string) *Savegame {
	return &Savegame{
		path: path,
		data: onDiskSavegame{
			CustomInts:       make(map[int]int32),
			CustomBools:      make(map[int]bool),
			KeyboardBindings: make(map[int]ebiten.Key),
			JoypadBindings:   make(map[int]string),
		},
	}
}

// Load reads a savegame file from disk (spec.md §3 "loaded from a file at
// game creation"). A missing file is a SaveIOFailure, surfaced to the
// caller rather than treated as fatal (spec.md §7).
func Load(path string) (*Savegame, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("equipment: SaveIOFailure reading %q: %w", path, err)
	}
	sg := New(path)
	if err := yaml.Unmarshal(raw, &sg.data); err != nil {
		return nil, fmt.Errorf("equipment: SaveIOFailure decoding %q: %w", path, err)
	}
	if sg.data.CustomInts == nil {
		sg.data.CustomInts = make(map[int]int32)
	}
	if sg.data.CustomBools == nil {
		sg.data.CustomBools = make(map[int]bool)
	}
	if sg.data.KeyboardBindings == nil {
		sg.data.KeyboardBindings = make(map[int]ebiten.Key)
	}
	if sg.data.JoypadBindings == nil {
		sg.data.JoypadBindings = make(map[int]string)
	}
	return sg, nil
}

// Save writes the in-memory savegame to disk (explicit save, spec.md §3
// lifecycle). Failures are SaveIOFailure: surfaced to the caller, engine
// remains runnable (spec.md §7).
func (s *Savegame) Save() error {
	out, err := yaml.Marshal(s.data)
	if err != nil {
		return fmt.Errorf("equipment: SaveIOFailure encoding save: %w", err)
	}
	if err := os.WriteFile(s.path, out, 0o644); err != nil {
		return fmt.Errorf("equipment: SaveIOFailure writing %q: %w", s.path, err)
	}
	return nil
}

// GetString/SetString access the 64 reserved string slots (spec.md §6).
func (s *Savegame) GetString(index int) string {
	if index < 0 || index >= StringCount {
		return ""
	}
	return s.data.Strings[index]
}

func (s *Savegame) SetString(index int, value string) {
	if index < 0 || index >= StringCount {
		return
	}
	s.data.Strings[index] = value
}

// GetInt/SetInt access the 1024 reserved int slots.
func (s *Savegame) GetInt(index int) int {
	if index < 0 || index >= IntCount {
		return 0
	}
	return int(s.data.Ints[index])
}

func (s *Savegame) SetInt(index int, value int) {
	if index < 0 || index >= IntCount {
		return
	}
	s.data.Ints[index] = int32(value)
}

// GetCustomInt/SetCustomInt access the script-visible custom int slots.
// The slots are a map and the index is not range-checked: scripts use
// [0, CustomIntCount), and Equipment stores the lift/swim/run abilities
// at IntCount and just above it.
func (s *Savegame) GetCustomInt(index int) int {
	return int(s.data.CustomInts[index])
}

func (s *Savegame) SetCustomInt(index int, value int) {
	s.data.CustomInts[index] = int32(value)
}

// GetCustomBool/SetCustomBool access the 32768 script-visible custom
// boolean slots.
func (s *Savegame) GetCustomBool(index int) bool {
	return s.data.CustomBools[index]
}

func (s *Savegame) SetCustomBool(index int, value bool) {
	s.data.CustomBools[index] = value
}

// GetKeyboardBinding/SetKeyboardBinding persist the Controls keyboard
// layout, keyed by the controls.LogicalKey's int value (kept untyped here
// to avoid an import cycle with internal/controls).
func (s *Savegame) GetKeyboardBinding(logicalKey int) ebiten.Key {
	return s.data.KeyboardBindings[logicalKey]
}

func (s *Savegame) SetKeyboardBinding(logicalKey int, k ebiten.Key) {
	s.data.KeyboardBindings[logicalKey] = k
}

func (s *Savegame) GetJoypadBinding(logicalKey int) string {
	return s.data.JoypadBindings[logicalKey]
}

func (s *Savegame) SetJoypadBinding(logicalKey int, event string) {
	s.data.JoypadBindings[logicalKey] = event
}
