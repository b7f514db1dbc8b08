// Copyright (c) 2026 ToeiRei
// TabPal - Tableau color palette editor
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config persists TabPal's few settings: where the preferences
// file lives, the UI language, and whether debug logging is on. Reading
// happens through viper in the command layer; this package owns the file
// location and the write path.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/spf13/viper"
)

// FileName is the config file's base name without extension.
const FileName = "tabpal"

// Config is everything TabPal remembers between runs.
type Config struct {
	Preferences PreferencesConfig `yaml:"preferences"`
	Language    string            `yaml:"language"`
	Debug       bool              `yaml:"debug"`
}

// PreferencesConfig holds the stored location of the preferences file.
type PreferencesConfig struct {
	Path string `yaml:"path"`
}

// Path returns the full path of the user's config file
// (e.g. ~/.config/tabpal/tabpal.yaml).
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not get user config directory: %w", err)
	}
	return filepath.Join(dir, "tabpal", FileName+".yaml"), nil
}

// FromViper snapshots the current viper settings into a Config.
func FromViper() Config {
	return Config{
		Preferences: PreferencesConfig{Path: viper.GetString("preferences.path")},
		Language:    viper.GetString("language"),
		Debug:       viper.GetBool("debug"),
	}
}

// Save writes c to the user's config file, creating the directory when
// needed. The file is written 0600; it only holds paths and preferences,
// but there is no reason to share it.
func Save(c Config) error {
	path, err := Path()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", filepath.Dir(path), err)
	}
	return os.WriteFile(path, data, 0o600)
}

// SavePreferencesPath records path as the preferences file to use and
// persists the full current configuration.
func SavePreferencesPath(path string) error {
	viper.Set("preferences.path", path)
	return Save(FromViper())
}
