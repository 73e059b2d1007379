// Package config loads the engine's YAML configuration file, the same
// os.ReadFile + gopkg.in/yaml.v3 + panic-on-error "Must" idiom the teacher
// repo uses throughout its config/asset loaders.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds every tunable value the ambient engine needs outside of
// per-map data (screen/window setup, tick rate, default hero/dialog
// timings). Per-map content (tiles, entities, scripts) is not config; it
// is loaded by the game package's MapFactory.
type Config struct {
	Display  DisplayConfig  `yaml:"display"`
	Engine   EngineConfig   `yaml:"engine"`
	Hero     HeroConfig     `yaml:"hero"`
	Dialog   DialogConfig   `yaml:"dialog"`
	Transition TransitionConfig `yaml:"transition"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	WindowTitle  string `yaml:"window_title"`
	Resizable    bool   `yaml:"resizable"`
}

type EngineConfig struct {
	TPS int `yaml:"tps"`
}

// HeroConfig carries the default speeds and dimensions New's caller
// passes into internal/movement/internal/hero (spec.md §4.D "speed is
// configurable").
type HeroConfig struct {
	WidthPx          int     `yaml:"width_px"`
	HeightPx         int     `yaml:"height_px"`
	WalkSpeedPxPerS  float64 `yaml:"walk_speed_px_per_s"`
	RunSpeedPxPerS   float64 `yaml:"run_speed_px_per_s"`
	SwimSpeedPxPerS  float64 `yaml:"swim_speed_px_per_s"`
}

// DialogConfig carries the dialog box's default speed, named the way
// spec.md §4.I names the three speed tiers.
type DialogConfig struct {
	DefaultSpeed string `yaml:"default_speed"` // "slow" | "medium" | "fast"
}

// TransitionConfig carries the default map-transition kind and duration
// (spec.md §4.L "Map transitions").
type TransitionConfig struct {
	DefaultKind     string `yaml:"default_kind"` // "immediate" | "fade" | "scrolling"
	FadeDurationMS  int64  `yaml:"fade_duration_ms"`
	ScrollDurationMS int64 `yaml:"scroll_duration_ms"`
}

const defaultTPS = 60

// GetTPS returns the configured tick rate, or the engine's 60 Hz default
// (spec.md §4.L "a logical tick rate of 60 Hz").
func (c *Config) GetTPS() int {
	if c != nil && c.Engine.TPS > 0 {
		return c.Engine.TPS
	}
	return defaultTPS
}

func (c *Config) GetScreenWidth() int  { return c.Display.ScreenWidth }
func (c *Config) GetScreenHeight() int { return c.Display.ScreenHeight }

// GlobalConfig mirrors the teacher's package-global "last loaded config"
// convention, read by components (e.g. movement speed defaults) that
// would otherwise need the Config threaded through every constructor.
var GlobalConfig *Config

// LoadConfig loads the configuration from a YAML file.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	GlobalConfig = &cfg
	return &cfg, nil
}

// MustLoadConfig loads the configuration and panics on error, matching
// the teacher's main()'s "fail fast on bad startup config" convention.
func MustLoadConfig(filename string) *Config {
	cfg, err := LoadConfig(filename)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}
	return cfg
}
