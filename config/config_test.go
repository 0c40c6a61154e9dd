package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestDefault verifies built-in values
func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Log.Enabled {
		t.Error("Expected logging disabled by default")
	}
	if cfg.Input.Timeout >= 0 {
		t.Errorf("Expected blocking input by default, got timeout %v", cfg.Input.Timeout)
	}
	if !cfg.Terminal.RequireTTY {
		t.Error("Expected RequireTTY=true by default")
	}
	if cfg.Terminal.PairSlots != 0 {
		t.Errorf("Expected pair slot detection by default, got %d", cfg.Terminal.PairSlots)
	}
	if cfg.Bell.Audible {
		t.Error("Expected audible bell fallback disabled by default")
	}
	if cfg.Bell.Frequency != 880.0 {
		t.Errorf("Expected bell frequency 880, got %f", cfg.Bell.Frequency)
	}
}

// TestLoadDefaults verifies loading with no env vars
func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{EnvConfigFile, EnvLogEnabled, EnvBellVolume, EnvInputTimeout, EnvPairSlots} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

// TestLoadEnvOverrides verifies each environment variable is applied
func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv(EnvConfigFile, "")
	t.Setenv(EnvLogEnabled, "true")
	t.Setenv(EnvLogFile, "/tmp/x.log")
	t.Setenv(EnvBellAudible, "1")
	t.Setenv(EnvBellVolume, "1.5")
	t.Setenv(EnvInputTimeout, "250")
	t.Setenv(EnvRequireTTY, "false")
	t.Setenv(EnvPairSlots, "64")
	t.Setenv(EnvFlashDuration, "10")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if !cfg.Log.Enabled || cfg.Log.File != "/tmp/x.log" {
		t.Errorf("Expected log overrides, got %+v", cfg.Log)
	}
	if !cfg.Bell.Audible {
		t.Error("Expected audible bell enabled")
	}
	if cfg.Bell.Volume != 1.0 {
		t.Errorf("Expected volume clamped to 1.0, got %f", cfg.Bell.Volume)
	}
	if cfg.Input.Timeout != 250*time.Millisecond {
		t.Errorf("Expected 250ms timeout, got %v", cfg.Input.Timeout)
	}
	if cfg.Terminal.RequireTTY {
		t.Error("Expected RequireTTY=false")
	}
	if cfg.Terminal.PairSlots != 64 {
		t.Errorf("Expected 64 pair slots, got %d", cfg.Terminal.PairSlots)
	}
	if cfg.Terminal.FlashDuration != 10*time.Millisecond {
		t.Errorf("Expected 10ms flash, got %v", cfg.Terminal.FlashDuration)
	}
}

// TestLoadInvalidEnv verifies malformed values are ignored
func TestLoadInvalidEnv(t *testing.T) {
	t.Setenv(EnvConfigFile, "")
	t.Setenv(EnvLogEnabled, "maybe")
	t.Setenv(EnvInputTimeout, "soon")
	t.Setenv(EnvPairSlots, "-4")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	def := Default()
	if cfg.Log.Enabled != def.Log.Enabled {
		t.Error("Expected invalid bool to be ignored")
	}
	if cfg.Input.Timeout != def.Input.Timeout {
		t.Errorf("Expected invalid timeout to be ignored, got %v", cfg.Input.Timeout)
	}
	if cfg.Terminal.PairSlots != def.Terminal.PairSlots {
		t.Errorf("Expected negative slots to be ignored, got %d", cfg.Terminal.PairSlots)
	}
}

// TestLoadFile verifies YAML values merge over defaults and env wins over file
func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "easyterm.yaml")
	data := []byte(`
log:
  enabled: true
  level: warn
bell:
  audible: true
  duration: 50ms
terminal:
  pair_slots: 32
input:
  timeout: 200ms
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(EnvLogLevel, "error")
	t.Setenv(EnvPairSlots, "")

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if !cfg.Log.Enabled {
		t.Error("Expected log enabled from file")
	}
	if cfg.Log.Level != "error" {
		t.Errorf("Expected env level to win, got %q", cfg.Log.Level)
	}
	if cfg.Log.File != Default().Log.File {
		t.Errorf("Expected default log file kept, got %q", cfg.Log.File)
	}
	if cfg.Bell.Duration != 50*time.Millisecond {
		t.Errorf("Expected 50ms bell, got %v", cfg.Bell.Duration)
	}
	if cfg.Bell.Frequency != Default().Bell.Frequency {
		t.Errorf("Expected default frequency kept, got %f", cfg.Bell.Frequency)
	}
	if cfg.Terminal.PairSlots != 32 {
		t.Errorf("Expected 32 pair slots, got %d", cfg.Terminal.PairSlots)
	}
	if cfg.Input.Timeout != 200*time.Millisecond {
		t.Errorf("Expected 200ms timeout, got %v", cfg.Input.Timeout)
	}
}

// TestLoadFileErrors verifies missing and malformed files are reported
func TestLoadFileErrors(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("log: [unclosed"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Error("Expected error for malformed file")
	}
}

// TestLoadFromEnvPath verifies EASYTERM_CONFIG selects the file
func TestLoadFromEnvPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.yaml")
	if err := os.WriteFile(path, []byte("terminal:\n  require_tty: false\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(EnvConfigFile, path)
	t.Setenv(EnvRequireTTY, "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Terminal.RequireTTY {
		t.Error("Expected RequireTTY=false from file")
	}
}

// TestBellVolumeScale verifies file and environment share the 0-1 scale
func TestBellVolumeScale(t *testing.T) {
	t.Setenv(EnvConfigFile, "")
	path := filepath.Join(t.TempDir(), "easyterm.yaml")

	tests := []struct {
		name string
		file string
		env  string
		want float64
	}{
		{"file only", "bell:\n  volume: 0.3\n", "", 0.3},
		{"env overrides file", "bell:\n  volume: 0.3\n", "0.25", 0.25},
		{"file clamped", "bell:\n  volume: 2\n", "", 1.0},
		{"env clamped", "bell:\n  volume: 0.3\n", "-0.5", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := os.WriteFile(path, []byte(tt.file), 0644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			t.Setenv(EnvBellVolume, tt.env)

			cfg, err := LoadFile(path)
			if err != nil {
				t.Fatalf("LoadFile failed: %v", err)
			}
			if cfg.Bell.Volume != tt.want {
				t.Errorf("Expected volume %v, got %v", tt.want, cfg.Bell.Volume)
			}
		})
	}
}
