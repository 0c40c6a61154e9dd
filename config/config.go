// Package config holds session configuration loaded from defaults, an optional
// YAML file and EASYTERM_* environment variables, in that order of precedence.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variable names
const (
	EnvConfigFile    = "EASYTERM_CONFIG"
	EnvLogEnabled    = "EASYTERM_LOG"
	EnvLogFile       = "EASYTERM_LOG_FILE"
	EnvLogLevel      = "EASYTERM_LOG_LEVEL"
	EnvBellAudible   = "EASYTERM_BELL_AUDIBLE"
	EnvBellForce     = "EASYTERM_BELL_FORCE"
	EnvBellVolume    = "EASYTERM_BELL_VOLUME"
	EnvInputTimeout  = "EASYTERM_INPUT_TIMEOUT_MS"
	EnvRequireTTY    = "EASYTERM_REQUIRE_TTY"
	EnvPairSlots     = "EASYTERM_PAIR_SLOTS"
	EnvFlashDuration = "EASYTERM_FLASH_MS"
)

// Config is the complete session configuration
type Config struct {
	Log      Log      `yaml:"log"`
	Bell     Bell     `yaml:"bell"`
	Terminal Terminal `yaml:"terminal"`
	Input    Input    `yaml:"input"`
}

// Log configures the debug log sink
type Log struct {
	Enabled    bool   `yaml:"enabled"`
	File       string `yaml:"file"`
	Level      string `yaml:"level"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// Bell configures the synthesized fallback for the terminal bell
type Bell struct {
	Audible    bool          `yaml:"audible"`
	Force      bool          `yaml:"force"` // Play the tone even when the terminal bell succeeds
	Frequency  float64       `yaml:"frequency"`
	Duration   time.Duration `yaml:"duration"`
	Volume     float64       `yaml:"volume"` // 0-1 in both YAML and EASYTERM_BELL_VOLUME
	SampleRate int           `yaml:"sample_rate"`
}

// Terminal configures driver behavior
type Terminal struct {
	RequireTTY bool `yaml:"require_tty"`
	// PairSlots overrides the number of color pair slots the driver exposes, 0 means detect
	PairSlots     int           `yaml:"pair_slots"`
	FlashDuration time.Duration `yaml:"flash_duration"`
	// HighlyVisibleCursor reports whether the terminal honors the highly visible cursor mode
	HighlyVisibleCursor bool `yaml:"highly_visible_cursor"`
}

// Input configures the initial input wait mode
type Input struct {
	// Timeout < 0 blocks, 0 never waits, > 0 waits at most that long
	Timeout time.Duration `yaml:"timeout"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Log: Log{
			Enabled:    false,
			File:       "logs/easyterm.log",
			Level:      "debug",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 14,
		},
		Bell: Bell{
			Audible:    false,
			Frequency:  880.0,
			Duration:   120 * time.Millisecond,
			Volume:     0.5,
			SampleRate: 44100,
		},
		Terminal: Terminal{
			RequireTTY:          true,
			FlashDuration:       80 * time.Millisecond,
			HighlyVisibleCursor: true,
		},
		Input: Input{
			Timeout: -1,
		},
	}
}

// Load builds the configuration from defaults, the file named by
// EASYTERM_CONFIG if set, and environment overrides
func Load() (Config, error) {
	cfg := Default()
	if path := os.Getenv(EnvConfigFile); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return cfg, err
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

// LoadFile builds the configuration from defaults, the given YAML file and
// environment overrides
func LoadFile(path string) (Config, error) {
	cfg := Default()
	if err := cfg.mergeFile(path); err != nil {
		return cfg, err
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	// Decoding over the defaults keeps every key the file omits
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	c.Bell.Volume = clamp01(c.Bell.Volume)
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvLogEnabled); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Log.Enabled = b
		}
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		c.Log.File = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}

	if v := os.Getenv(EnvBellAudible); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Bell.Audible = b
		}
	}
	if v := os.Getenv(EnvBellForce); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Bell.Force = b
		}
	}
	if v := os.Getenv(EnvBellVolume); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.Bell.Volume = clamp01(f)
		}
	}

	if v := os.Getenv(EnvInputTimeout); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			if n < 0 {
				c.Input.Timeout = -1
			} else {
				c.Input.Timeout = time.Duration(n) * time.Millisecond
			}
		}
	}
	if v := os.Getenv(EnvRequireTTY); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Terminal.RequireTTY = b
		}
	}
	if v := os.Getenv(EnvPairSlots); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			c.Terminal.PairSlots = n
		}
	}
	if v := os.Getenv(EnvFlashDuration); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			c.Terminal.FlashDuration = time.Duration(n) * time.Millisecond
		}
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
