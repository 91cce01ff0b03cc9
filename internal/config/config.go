// Package config handles loading and saving the fillerclaw.json configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/roelfdiedericks/fillerclaw/internal/paths"
)

// Config represents the merged fillerclaw configuration
type Config struct {
	Store   StoreConfig   `json:"store"`
	Filter  FilterConfig  `json:"filter"`
	Logging LoggingConfig `json:"logging"`
}

// StoreConfig configures the filler word database.
type StoreConfig struct {
	Path string `json:"path"` // Override database path; empty = ~/.fillerclaw/filler_words.db
}

// FilterConfig configures transcript filtering behavior.
type FilterConfig struct {
	Enabled bool `json:"enabled"` // When false, every transcript passes through
}

// LoggingConfig configures log output.
type LoggingConfig struct {
	Debug bool `json:"debug"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Filter: FilterConfig{
			Enabled: true,
		},
	}
}

// Load reads configuration from fillerclaw.json.
// A missing config file is a valid state and yields defaults.
func Load() (*Config, error) {
	cfg := Default()

	path, err := paths.ConfigPath()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes the configuration to its active location, or the default
// location when no config file exists yet.
func Save(cfg *Config) error {
	path, err := paths.ConfigPath()
	if err != nil {
		return err
	}
	if path == "" {
		path, err = paths.DefaultConfigPath()
		if err != nil {
			return err
		}
	}

	return AtomicWriteJSON(path, cfg, 0600)
}
