// Package config loads the repostats configuration file.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/repostats/repostats-go/internal/classify"
)

// Config is the root configuration structure.
type Config struct {
	Authors    AuthorConfig `json:"authors"`
	Extensions []string     `json:"extensions"`
	Filters    FilterConfig `json:"filters"`
	Workers    int          `json:"workers"`
}

// AuthorConfig holds the default author filter patterns.
type AuthorConfig struct {
	Patterns []string `json:"patterns"` // Regex patterns matched against "Name <email>"
}

// FilterConfig holds file path filtering options.
type FilterConfig struct {
	Include []string `json:"include"`
	Exclude []string `json:"exclude"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Authors:    AuthorConfig{Patterns: []string{}},
		Extensions: classify.DefaultExtensions(),
		Filters: FilterConfig{
			Include: []string{},
			Exclude: []string{},
		},
		Workers: 1,
	}
}

// LoadConfig loads configuration from a file, merging with defaults. With an
// empty path the default locations are tried; a missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		candidates := []string{".repostats.json"}
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			candidates = append(candidates, filepath.Join(home, ".repostats.json"))
		} else if envHome := os.Getenv("HOME"); envHome != "" {
			candidates = append(candidates, filepath.Join(envHome, ".repostats.json"))
		}
		for _, p := range candidates {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveConfig saves configuration to a file.
func SaveConfig(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
