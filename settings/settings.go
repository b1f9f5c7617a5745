// Package settings handles configuration loading from files, defaults, and
// environment variables, and owns the process-wide accessibility
// preferences other packages read.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the application configuration.
type Config struct {
	UI       UIConfig       `toml:"ui"`
	Motion   MotionConfig   `toml:"motion"`
	Snapshot SnapshotConfig `toml:"snapshot"`
}

// UIConfig holds rendering settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "dark" or "light"
}

// MotionConfig holds animation settings.
type MotionConfig struct {
	ReducedMotion bool `toml:"reduced_motion"`
}

// SnapshotConfig holds bitmap rendering settings.
type SnapshotConfig struct {
	CellWidth  int `toml:"cell_width"`  // pixels per cell, horizontal
	CellHeight int `toml:"cell_height"` // pixels per cell, vertical
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			Theme: "dark",
		},
		Motion: MotionConfig{
			ReducedMotion: false,
		},
		Snapshot: SnapshotConfig{
			CellWidth:  8,
			CellHeight: 16,
		},
	}
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "sheen", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and
// env vars, and publishes the accessibility preferences.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the given path. It starts with
// defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	SetReducedMotion(cfg.Motion.ReducedMotion)
	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SHEEN_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	if v := os.Getenv("SHEEN_REDUCED_MOTION"); v != "" {
		cfg.Motion.ReducedMotion = isTruthy(v)
	}
}

func isTruthy(v string) bool {
	switch strings.ToLower(v) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch c.UI.Theme {
	case "dark", "light":
	default:
		return fmt.Errorf("unknown theme %q", c.UI.Theme)
	}
	if c.Snapshot.CellWidth <= 0 || c.Snapshot.CellHeight <= 0 {
		return errors.New("snapshot cell dimensions must be positive")
	}
	return nil
}
