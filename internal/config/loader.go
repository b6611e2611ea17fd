package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/halo-tui/halo/internal/errors"
)

// Load reads config from the specified path, overlaying the defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Config file not found",
				"Run 'halo init' to create one, or specify a path with --config")
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file",
			"Check the file exists and is valid YAML")
	}

	cfg := Default()
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to parse config file",
			"Check field names against 'halo init' output")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Find locates the config file using the search order:
// 1. Explicit path (from --config flag)
// 2. .halo.yaml in the current directory
// 3. ~/.config/halo/config.yaml (global defaults)
//
// Returns the path to the config file, or empty string if not found.
func Find(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	if _, err := os.Stat(ConfigFileName); err == nil {
		return ConfigFileName, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", nil
	}
	global := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
	if _, err := os.Stat(global); err == nil {
		return global, nil
	}

	return "", nil
}

// LoadOrDefault loads the located config file, or returns the defaults when
// none exists.
func LoadOrDefault(explicit string) (*Config, error) {
	path, err := Find(explicit)
	if err != nil {
		return nil, err
	}
	if path == "" {
		cfg := Default()
		return &cfg, nil
	}
	return Load(path)
}

// Write serializes cfg as YAML to path, creating parent directories.
func Write(path string, cfg Config) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot create config directory",
				"Check permissions on "+dir)
		}
	}

	// Durations go out as Go duration strings, not raw nanosecond counts.
	data, err := yaml.Marshal(fileConfig{
		FPS:           cfg.FPS,
		Duration:      cfg.Duration.String(),
		CycleDuration: cfg.CycleDuration.String(),
		RingSize:      cfg.RingSize,
		BarWidth:      cfg.BarWidth,
		Color:         cfg.Color,
		TrackColor:    cfg.TrackColor,
		NoColor:       cfg.NoColor,
	})
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to serialize config", "")
	}

	header := []byte("# halo demo configuration\n# Durations use Go syntax: 500ms, 1s, 2s.\n")
	if err := os.WriteFile(path, append(header, data...), 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to write config file",
			"Check permissions on "+path)
	}
	return nil
}

// fileConfig is the on-disk YAML shape written by Write.
type fileConfig struct {
	FPS           int    `yaml:"fps"`
	Duration      string `yaml:"duration"`
	CycleDuration string `yaml:"cycle_duration"`
	RingSize      int    `yaml:"ring_size"`
	BarWidth      int    `yaml:"bar_width"`
	Color         string `yaml:"color"`
	TrackColor    string `yaml:"track_color"`
	NoColor       bool   `yaml:"no_color"`
}

// setDefaults registers the built-in defaults with viper so partial files
// work.
func setDefaults(v *viper.Viper) {
	def := Default()
	v.SetDefault("fps", def.FPS)
	v.SetDefault("duration", def.Duration)
	v.SetDefault("cycle_duration", def.CycleDuration)
	v.SetDefault("ring_size", def.RingSize)
	v.SetDefault("bar_width", def.BarWidth)
	v.SetDefault("color", def.Color)
	v.SetDefault("track_color", def.TrackColor)
	v.SetDefault("no_color", def.NoColor)
}
