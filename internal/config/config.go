// Package config loads habittrainer settings from ~/.config/habittrainer/config.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"habittrainer/internal/haptic"
	"habittrainer/internal/interval"
)

// ErrInvalid is returned when a loaded configuration fails validation.
var ErrInvalid = errors.New("invalid config")

// Environment overrides.
const (
	EnvTick   = "HABITTRAINER_TICK"
	EnvHaptic = "HABITTRAINER_HAPTIC"
)

// Config holds habittrainer settings.
type Config struct {
	// Tick is the countdown cadence. One second on a real device.
	Tick    time.Duration   `yaml:"tick"`
	Haptic  string          `yaml:"haptic"`
	LogFile string          `yaml:"log_file"`
	Tuning  interval.Tuning `yaml:"tuning"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Tick:    time.Second,
		Haptic:  haptic.ModeBell,
		LogFile: filepath.Join(Dir(), "habittrainer.log"),
		Tuning:  interval.DefaultTuning(),
	}
}

// Dir returns the habittrainer config directory.
func Dir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", ".habittrainer")
	}
	return filepath.Join(dir, "habittrainer")
}

// DefaultPath returns the path Load reads when given an empty path.
func DefaultPath() string {
	return filepath.Join(Dir(), "config.yaml")
}

// Load reads the config like Read and validates the result.
func Load(path string) (*Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Read reads the config file at path (DefaultPath if empty) and applies
// environment overrides without validating, so callers can layer flags on
// top first. A missing file is not an error; the defaults are used instead.
func Read(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvTick); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTick, err)
		}
		c.Tick = d
	}
	if v := os.Getenv(EnvHaptic); v != "" {
		c.Haptic = v
	}
	return nil
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.Tick <= 0 {
		return fmt.Errorf("%w: tick must be positive, got %s", ErrInvalid, c.Tick)
	}
	if !haptic.ValidMode(c.Haptic) {
		return fmt.Errorf("%w: haptic must be %q or %q, got %q", ErrInvalid, haptic.ModeBell, haptic.ModeNone, c.Haptic)
	}
	if err := c.Tuning.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}
