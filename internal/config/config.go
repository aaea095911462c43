// Package config persists user preferences that outlive any single copy
// session: the color theme and the recorded clipboard permission state.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	configFileName = "config.yaml"

	keyTheme      = "theme"
	keyPermission = "clipboard_permission"
)

// Theme preference values.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Clipboard permission states. Empty means the priming flow never ran.
const (
	PermissionUnset   = ""
	PermissionGranted = "granted"
	PermissionDenied  = "denied"
)

// Config wraps a viper instance bound to a single yaml file. Reads and
// writes never fail the caller; a broken config file just means defaults.
type Config struct {
	v      *viper.Viper
	path   string
	logger *zap.Logger
}

// DefaultDir returns the preference directory, preferring XDG_CONFIG_HOME
// and falling back to ~/.config.
func DefaultDir(appName string) string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return appName
	}
	return filepath.Join(home, ".config", appName)
}

// Load reads the preference file from dir, tolerating a missing or
// malformed file.
func Load(dir string, logger *zap.Logger) *Config {
	if logger == nil {
		logger = zap.NewNop()
	}

	v := viper.New()
	v.SetDefault(keyTheme, ThemeDark)
	v.SetDefault(keyPermission, PermissionUnset)

	path := filepath.Join(dir, configFileName)
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("config read failed, using defaults", zap.Error(err))
		}
	}

	return &Config{v: v, path: path, logger: logger}
}

// Theme returns the persisted theme preference, normalized to a known
// value.
func (c *Config) Theme() string {
	if c.v.GetString(keyTheme) == ThemeLight {
		return ThemeLight
	}
	return ThemeDark
}

// SaveTheme persists the theme preference immediately.
func (c *Config) SaveTheme(theme string) {
	if theme != ThemeLight {
		theme = ThemeDark
	}
	c.v.Set(keyTheme, theme)
	c.flush()
}

// Permission returns the persisted clipboard permission state.
func (c *Config) Permission() string {
	switch c.v.GetString(keyPermission) {
	case PermissionGranted:
		return PermissionGranted
	case PermissionDenied:
		return PermissionDenied
	default:
		return PermissionUnset
	}
}

// SavePermission records the outcome of the priming flow.
func (c *Config) SavePermission(state string) {
	c.v.Set(keyPermission, state)
	c.flush()
}

func (c *Config) flush() {
	if err := os.MkdirAll(filepath.Dir(c.path), 0o750); err != nil {
		c.logger.Warn("config dir create failed", zap.Error(err))
		return
	}
	if err := c.v.WriteConfigAs(c.path); err != nil {
		c.logger.Warn("config write failed", zap.Error(err))
	}
}
