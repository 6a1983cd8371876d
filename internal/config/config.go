package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lucasvillarinho/testmap/testdb"
)

// Config holds the reset command settings. Flags and the positional path
// argument override values loaded from a file.
type Config struct {
	Path     string `yaml:"path"`     // Database file to reset
	Driver   string `yaml:"driver"`   // SQLite driver: mattn or modernc
	Refresh  string `yaml:"refresh"`  // Optional cron spec for periodic resets
	Timezone string `yaml:"timezone"` // Timezone for the refresh schedule
}

var errEmptyPath = errors.New("path cannot be empty")

// Default returns the built-in settings: db.sqlite in the working
// directory, mattn driver, UTC, no periodic refresh.
func Default() *Config {
	return &Config{
		Path:     testdb.DefaultPath,
		Driver:   "mattn",
		Timezone: "UTC",
	}
}

// Load reads a YAML config file and merges it over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the settings that can be verified without touching the
// filesystem.
func (c *Config) Validate() error {
	if c.Path == "" {
		return errEmptyPath
	}
	if c.Driver != "mattn" && c.Driver != "modernc" {
		return fmt.Errorf("unsupported driver: %s", c.Driver)
	}
	if c.Timezone == "" {
		return errors.New("timezone cannot be empty")
	}
	return nil
}
