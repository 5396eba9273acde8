// Package config loads and saves jwtui's settings file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/zhubert/jwtui/internal/errors"
	"github.com/zhubert/jwtui/internal/ui"
)

// EnvPath overrides the config file location when set.
const EnvPath = "JWTUI_CONFIG"

// Config holds the application configuration
type Config struct {
	Theme     string `json:"theme,omitempty"` // UI theme name (e.g., "dark-purple", "nord")
	Highlight bool   `json:"highlight"`       // JSON coloring in the header and payload panels

	mu       sync.RWMutex
	filePath string
}

// Default returns the settings used when no file exists.
func Default() *Config {
	return &Config{
		Theme:     string(ui.DefaultTheme),
		Highlight: true,
	}
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".jwtui"), nil
}

// Path returns the config file path, honoring JWTUI_CONFIG.
func Path() (string, error) {
	if p := os.Getenv(EnvPath); p != "" {
		return p, nil
	}
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or returns defaults if it doesn't exist
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, errors.ConfigLoadFailed("home directory", err)
	}
	return LoadFrom(path)
}

// LoadFrom reads the config at path. Keys missing from the file keep their
// default values.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()
	cfg.filePath = path

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}
	if cfg.Theme == "" {
		cfg.Theme = string(ui.DefaultTheme)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the config is internally consistent.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.Theme != "" && !ui.IsTheme(c.Theme) {
		return errors.ConfigInvalid(fmt.Sprintf("unknown theme %q", c.Theme))
	}
	return nil
}

// Save writes the config to disk. The file is replaced atomically so a
// crash never leaves half a config behind.
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	path := c.filePath
	if path == "" {
		p, err := Path()
		if err != nil {
			return errors.ConfigSaveFailed("home directory", err)
		}
		path = p
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.ConfigSaveFailed(path, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.ConfigSaveFailed(path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".config-*.json")
	if err != nil {
		return errors.ConfigSaveFailed(path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.ConfigSaveFailed(path, err)
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return errors.ConfigSaveFailed(path, err)
	}
	if err := tmp.Close(); err != nil {
		return errors.ConfigSaveFailed(path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return errors.ConfigSaveFailed(path, err)
	}
	return nil
}

// FilePath returns where Save writes.
func (c *Config) FilePath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// GetTheme returns the current theme name
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// SetTheme sets the current theme name
func (c *Config) SetTheme(theme string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = theme
}

// GetHighlight returns whether JSON highlighting is on
func (c *Config) GetHighlight() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Highlight
}

// SetHighlight turns JSON highlighting on or off
func (c *Config) SetHighlight(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Highlight = enabled
}
