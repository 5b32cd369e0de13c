package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/lanes/internal/config/colors"
)

func TestDefaultKeyMappings(t *testing.T) {
	defaults := DefaultKeyMappings()

	if defaults.Quit != "q" {
		t.Errorf("Default Quit key = %s, want q", defaults.Quit)
	}
	if defaults.AddTask != "a" {
		t.Errorf("Default AddTask key = %s, want a", defaults.AddTask)
	}
	if defaults.ViewTask != " " {
		t.Errorf("Default ViewTask key = %s, want space", defaults.ViewTask)
	}
	if defaults.MoveTaskLeft != "H" || defaults.MoveTaskRight != "L" {
		t.Errorf("Default move keys = %s/%s, want H/L", defaults.MoveTaskLeft, defaults.MoveTaskRight)
	}
}

func TestLoadConfigWithoutFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(ThemeFileEnv, "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() without config file failed: %v", err)
	}

	if cfg.KeyMappings.Quit != "q" {
		t.Errorf("Loaded config Quit key = %s, want q (default)", cfg.KeyMappings.Quit)
	}
	if cfg.Themes.Dark.Accent != colors.Dark().Accent {
		t.Errorf("Dark accent = %s, want preset %s", cfg.Themes.Dark.Accent, colors.Dark().Accent)
	}
	if cfg.Themes.Light.Background != colors.Light().Background {
		t.Errorf("Light background = %s, want preset %s", cfg.Themes.Light.Background, colors.Light().Background)
	}
	if cfg.RequireDescription {
		t.Error("RequireDescription should default to false")
	}
}

func TestLoadConfigWithFile(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	t.Setenv(ThemeFileEnv, "")

	configDir := filepath.Join(tempDir, "lanes")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}

	configContent := `data_path: /tmp/lanes-test.db
quota_bytes: -1
require_description: true
key_mappings:
  quit: "x"
  add_task: "n"
  view_task: "v"
themes:
  light:
    preset: monochrome
`
	configPath := filepath.Join(configDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with config file failed: %v", err)
	}

	if cfg.KeyMappings.Quit != "x" {
		t.Errorf("Loaded Quit key = %s, want x", cfg.KeyMappings.Quit)
	}
	if cfg.KeyMappings.AddTask != "n" {
		t.Errorf("Loaded AddTask key = %s, want n", cfg.KeyMappings.AddTask)
	}
	if cfg.KeyMappings.ViewTask != "v" {
		t.Errorf("Loaded ViewTask key = %s, want v", cfg.KeyMappings.ViewTask)
	}

	// Unspecified values should use defaults
	if cfg.KeyMappings.EditTask != "e" {
		t.Errorf("Loaded EditTask key = %s, want e (default)", cfg.KeyMappings.EditTask)
	}

	if cfg.DataPath != "/tmp/lanes-test.db" {
		t.Errorf("DataPath = %s", cfg.DataPath)
	}
	if cfg.QuotaBytes != -1 {
		t.Errorf("QuotaBytes = %d, want -1", cfg.QuotaBytes)
	}
	if !cfg.RequireDescription {
		t.Error("RequireDescription should be true")
	}
	if cfg.Themes.Light.Background != colors.Monochrome().Background {
		t.Errorf("Light theme should fill from the monochrome preset, got background %s", cfg.Themes.Light.Background)
	}
}

func TestLoadFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("key_mappings: [unclosed"), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := LoadFile(path); err == nil {
		t.Error("LoadFile() should fail on malformed YAML")
	}
}

func TestSaveConfig(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	t.Setenv(ThemeFileEnv, "")

	cfg := &Config{
		KeyMappings: KeyMappings{
			Quit:     "x",
			AddTask:  "n",
			ViewTask: "v",
		},
		SeedSampleTasks: true,
	}
	cfg.applyDefaults()

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	configPath := filepath.Join(tempDir, "lanes", "config.yaml")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatalf("Config file not created at %s", configPath)
	}

	cfg2, err := Load()
	if err != nil {
		t.Fatalf("Load() after Save() failed: %v", err)
	}

	if cfg2.KeyMappings.Quit != "x" {
		t.Errorf("Reloaded Quit key = %s, want x", cfg2.KeyMappings.Quit)
	}
	if cfg2.KeyMappings.AddTask != "n" {
		t.Errorf("Reloaded AddTask key = %s, want n", cfg2.KeyMappings.AddTask)
	}
	if !cfg2.SeedSampleTasks {
		t.Error("Reloaded SeedSampleTasks should be true")
	}
}

func TestScheme(t *testing.T) {
	cfg := Default()

	if cfg.Scheme(true).Preset != "light" {
		t.Errorf("Scheme(true).Preset = %s, want light", cfg.Scheme(true).Preset)
	}
	if cfg.Scheme(false).Preset != "dark" {
		t.Errorf("Scheme(false).Preset = %s, want dark", cfg.Scheme(false).Preset)
	}
}
