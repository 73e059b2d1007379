// Package dialog implements the dialog box and its Message sequencing
// (spec.md §4.I): char-by-char reveal, speed/pause/variable escape
// sequences, question answers, and skip modes.
package dialog

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// SkipMode controls what pressing SWORD does to the active dialog.
type SkipMode int

const (
	SkipNone SkipMode = iota
	SkipCurrent
	SkipAll
)

// Definition is one dialog entry as loaded from the language-keyed data
// file: up to three lines, an optional HUD icon, the next dialog id(s),
// whether it is a question, and its skip mode.
type Definition struct {
	Lines    [3]string `yaml:"lines"`
	Icon     int       `yaml:"icon"`
	Next     string    `yaml:"next"`
	Next2    string    `yaml:"next2"`
	Question bool      `yaml:"question"`
	Skip     string    `yaml:"skip"`
}

// skipMode resolves the raw "current"/"all"/"" skip text the same way
// Solarus's Message::parse does: "all" on a question degrades to
// "current" since a question always needs an explicit answer first.
func (d Definition) skipMode() (SkipMode, bool) {
	switch d.Skip {
	case "current":
		return SkipCurrent, true
	case "all":
		if d.Question {
			return SkipCurrent, true
		}
		return SkipAll, true
	default:
		return SkipNone, false
	}
}

// Store resolves dialog ids to Definitions for the currently selected
// language (spec.md §4.I "a dialog id resolves to a sequence of Messages
// from a language-keyed store").
type Store struct {
	lang   string
	byLang map[string]map[string]Definition
}

// NewStore creates an empty Store; call LoadLanguage before SetLanguage.
func NewStore() *Store {
	return &Store{byLang: make(map[string]map[string]Definition)}
}

// LoadLanguage decodes a YAML document of dialog id -> Definition and
// registers it under lang, mirroring the engine's own config.yaml
// decoding path (internal/config) rather than a bespoke ini parser.
func (s *Store) LoadLanguage(lang string, data []byte) error {
	var defs map[string]Definition
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return fmt.Errorf("dialog: decode language %q: %w", lang, err)
	}
	s.byLang[lang] = defs
	return nil
}

// SetLanguage selects the active language for Get.
func (s *Store) SetLanguage(lang string) { s.lang = lang }

// Language returns the currently selected language.
func (s *Store) Language() string { return s.lang }

// Get resolves a dialog id in the active language.
func (s *Store) Get(id string) (Definition, bool) {
	defs, ok := s.byLang[s.lang]
	if !ok {
		return Definition{}, false
	}
	d, ok := defs[id]
	return d, ok
}
