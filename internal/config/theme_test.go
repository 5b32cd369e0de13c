package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestThemeFileLoading(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	themeContent := []byte(`themes:
  dark:
    accent: "#FF0000"
    create: "#00FF00"
  light:
    edit: "#0000FF"
`)
	themePath := filepath.Join(t.TempDir(), "lanes-theme.yaml")
	if err := os.WriteFile(themePath, themeContent, 0o644); err != nil {
		t.Fatalf("Failed to write theme file: %v", err)
	}
	t.Setenv(ThemeFileEnv, themePath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Themes.Dark.Accent != "#FF0000" {
		t.Errorf("Expected dark accent to be #FF0000, got %s", cfg.Themes.Dark.Accent)
	}
	if cfg.Themes.Dark.Create != "#00FF00" {
		t.Errorf("Expected dark create to be #00FF00, got %s", cfg.Themes.Dark.Create)
	}
	if cfg.Themes.Light.Edit != "#0000FF" {
		t.Errorf("Expected light edit to be #0000FF, got %s", cfg.Themes.Light.Edit)
	}

	// Other colors keep their defaults
	if cfg.Themes.Dark.Delete == "" {
		t.Error("Expected delete to have default value")
	}
	if cfg.Themes.Light.Accent == "#FF0000" {
		t.Error("Dark overlay should not leak into the light theme")
	}
}

func TestThemeFileMissingIsIgnored(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(ThemeFileEnv, filepath.Join(t.TempDir(), "nope.yaml"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() should ignore a missing theme file: %v", err)
	}
	if cfg.Themes.Dark.Accent == "" {
		t.Error("Expected default accent")
	}
}
