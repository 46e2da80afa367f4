// Package config loads formatting defaults from an optional
// .jsonfmt.yaml file. Command-line flags override config values,
// which override the built-in defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file looked up in the working directory
// when no explicit --config path is given.
const DefaultFile = ".jsonfmt.yaml"

// Config holds user-tunable defaults.
type Config struct {
	// Indent is the indentation width: "2", "4" or "tab".
	Indent string `yaml:"indent"`

	// SortKeys sorts object keys alphabetically when formatting.
	SortKeys bool `yaml:"sort_keys"`

	// Compact disables pretty-printing entirely.
	Compact bool `yaml:"compact"`

	// Color is "auto", "always" or "never".
	Color string `yaml:"color"`

	// TopKeys is how many of the most frequent keys the statistics
	// report lists.
	TopKeys int `yaml:"top_keys"`
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		Indent:  "2",
		Color:   "auto",
		TopKeys: 10,
	}
}

// Load reads the config file at path. When path is empty it falls
// back to DefaultFile if one exists in the working directory, and to
// the built-in defaults otherwise.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			path = DefaultFile
		}
	}
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("config file %s: %w", path, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config file %s: %w", path, err)
		}
		return cfg, nil
	}
	return cfg, cfg.Validate()
}

// Validate rejects values no command can honor.
func (c Config) Validate() error {
	switch c.Indent {
	case "2", "4", "tab":
	default:
		return fmt.Errorf("invalid indent %q: must be 2, 4, or 'tab'", c.Indent)
	}
	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color mode %q: must be 'auto', 'always', or 'never'", c.Color)
	}
	if c.TopKeys < 1 {
		return fmt.Errorf("invalid top_keys %d: must be at least 1", c.TopKeys)
	}
	return nil
}
