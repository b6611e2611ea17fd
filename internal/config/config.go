// Package config loads demo-app settings for halo from .halo.yaml files.
// The widget library itself takes plain config structs; this package only
// serves the CLI.
package config

import (
	"fmt"
	"time"

	"github.com/halo-tui/halo/internal/errors"
)

// ConfigFileName is the default config file name.
const ConfigFileName = ".halo.yaml"

// GlobalConfigDir is the directory for global config, under the home dir.
const GlobalConfigDir = ".config/halo"

// GlobalConfigFile is the global config file name.
const GlobalConfigFile = "config.yaml"

// Config holds demo-app settings. All fields have working defaults; a
// config file overrides selectively.
type Config struct {
	FPS           int           `mapstructure:"fps" yaml:"fps"`
	Duration      time.Duration `mapstructure:"duration" yaml:"duration"`
	CycleDuration time.Duration `mapstructure:"cycle_duration" yaml:"cycle_duration"`
	RingSize      int           `mapstructure:"ring_size" yaml:"ring_size"`
	BarWidth      int           `mapstructure:"bar_width" yaml:"bar_width"`
	Color         string        `mapstructure:"color" yaml:"color"`
	TrackColor    string        `mapstructure:"track_color" yaml:"track_color"`
	NoColor       bool          `mapstructure:"no_color" yaml:"no_color"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		FPS:           30,
		Duration:      time.Second,
		CycleDuration: 2 * time.Second,
		RingSize:      36,
		BarWidth:      40,
		Color:         "4",
		TrackColor:    "8",
	}
}

// Validate checks field ranges and returns a structured error on the first
// violation.
func (c *Config) Validate() error {
	if c.FPS < 1 || c.FPS > 120 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("fps must be between 1 and 120, got %d", c.FPS),
			"Pick a frame rate your terminal can keep up with; 30 is a good default")
	}
	if c.Duration <= 0 {
		return errors.New(errors.ErrConfig,
			"duration must be positive",
			"Use a Go duration string like '1s' or '500ms'")
	}
	if c.CycleDuration <= 0 {
		return errors.New(errors.ErrConfig,
			"cycle_duration must be positive",
			"Use a Go duration string like '2s'")
	}
	if c.RingSize < 1 {
		return errors.New(errors.ErrConfig,
			"ring_size must be positive",
			"The ring enforces a 36-dot minimum; anything smaller is rounded up")
	}
	if c.BarWidth < 1 {
		return errors.New(errors.ErrConfig,
			"bar_width must be positive",
			"Widths of 20-60 cells render well in most terminals")
	}
	return nil
}
