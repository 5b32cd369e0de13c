// Package config loads the lanes YAML configuration
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/thenoetrevino/lanes/internal/config/colors"
	"gopkg.in/yaml.v3"
)

// ColorScheme is re-exported so callers don't import the colors package
type ColorScheme = colors.ColorScheme

// ThemeFileEnv names the environment variable holding a theme overlay file
const ThemeFileEnv = "LANES_THEME_FILE"

// Themes holds the dark and light color schemes the board toggles between
type Themes struct {
	Dark  ColorScheme `yaml:"dark"`
	Light ColorScheme `yaml:"light"`
}

// Config represents the application configuration
type Config struct {
	// DataPath is the SQLite file; empty means ~/.lanes/board.db
	DataPath string `yaml:"data_path"`

	// QuotaBytes caps the stored bytes; 0 uses the default, negative disables
	QuotaBytes int64 `yaml:"quota_bytes"`

	RequireDescription bool `yaml:"require_description"`
	SeedSampleTasks    bool `yaml:"seed_sample_tasks"`

	KeyMappings KeyMappings `yaml:"key_mappings"`
	Themes      Themes      `yaml:"themes"`
}

// Default returns a config with every default filled
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Scheme returns the light or dark color scheme
func (c *Config) Scheme(light bool) ColorScheme {
	if light {
		return c.Themes.Light
	}
	return c.Themes.Dark
}

// loadThemeFile merges the theme overlay named by LANES_THEME_FILE.
// A missing or malformed overlay is logged and ignored.
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(ThemeFileEnv)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		slog.Warn("failed to read theme file", "path", themeFile, "error", err)
		return
	}

	var overlay struct {
		Themes Themes `yaml:"themes"`
	}
	if err := yaml.Unmarshal(themeData, &overlay); err != nil {
		slog.Warn("failed to parse theme file", "path", themeFile, "error", err)
		return
	}

	config.Themes.Dark.MergeFrom(overlay.Themes.Dark)
	config.Themes.Light.MergeFrom(overlay.Themes.Light)
}

// Load loads config from the user's config directory.
// Returns the default config if the file doesn't exist.
func Load() (*Config, error) {
	configPath, err := Path()
	if err != nil {
		config := Default()
		loadThemeFile(config)
		return config, nil
	}
	return LoadFile(configPath)
}

// LoadFile loads config from path, falling back to defaults when it is absent
func LoadFile(path string) (*Config, error) {
	var config Config

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	config.applyDefaults()
	loadThemeFile(&config)

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := Path()
	if err != nil {
		return err
	}
	return c.SaveFile(configPath)
}

// SaveFile writes the config as YAML to path
func (c *Config) SaveFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// Path returns the path to the config file
func Path() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "lanes", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "lanes", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.KeyMappings.applyDefaults()
	c.Themes.Dark.ApplyDefaults("dark")
	c.Themes.Light.ApplyDefaults("light")
}
