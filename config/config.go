// Package config loads futurekit settings from standard locations.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	kiterrors "github.com/vinayprograms/futurekit/errors"
	"github.com/vinayprograms/futurekit/futures"
	"github.com/vinayprograms/futurekit/logging"
)

// Config holds settings loaded from futurekit.toml.
type Config struct {
	Registry RegistryConfig `toml:"registry"`
	Logging  LoggingConfig  `toml:"logging"`
}

// RegistryConfig configures the handle registry.
type RegistryConfig struct {
	// MaxEntries bounds the number of stored handles.
	MaxEntries int `toml:"max_entries"`

	// Unbounded disables eviction. MaxEntries is ignored when set.
	Unbounded bool `toml:"unbounded"`
}

// LoggingConfig configures console logging.
type LoggingConfig struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `toml:"level"`
}

// Default returns the configuration used when no file overrides it.
func Default() *Config {
	return &Config{
		Registry: RegistryConfig{MaxEntries: futures.DefaultMaxSize},
		Logging:  LoggingConfig{Level: "info"},
	}
}

// StandardPaths returns the standard config file locations in order of priority.
func StandardPaths() []string {
	paths := []string{}

	// 1. Current directory
	paths = append(paths, "futurekit.toml")

	// 2. ~/.config/futurekit/futurekit.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "futurekit", "futurekit.toml"))
	}

	// 3. ~/.futurekit/futurekit.toml (fallback)
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".futurekit", "futurekit.toml"))
	}

	return paths
}

// Load loads configuration from the first available standard location.
func Load() (*Config, string, error) {
	for _, path := range StandardPaths() {
		if _, err := os.Stat(path); err == nil {
			cfg, err := LoadFile(path)
			if err != nil {
				return nil, path, err
			}
			return cfg, path, nil
		}
	}
	return nil, "", nil // No config file found (not an error)
}

// LoadFile loads configuration from a specific file. Settings the file does
// not mention keep their defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the registry would reject.
func (c *Config) Validate() error {
	if c.Registry.MaxEntries < 0 {
		return kiterrors.InvalidInput("registry.max_entries must be non-negative")
	}
	return nil
}

// RegistryOptions translates the configuration into registry options.
func (c *Config) RegistryOptions() []futures.Option {
	if c.Registry.Unbounded {
		return []futures.Option{futures.Unbounded()}
	}
	return []futures.Option{futures.WithMaxSize(c.Registry.MaxEntries)}
}

// LogLevel returns the configured logging level. Unknown names map to info.
func (c *Config) LogLevel() logging.Level {
	return logging.ParseLevel(c.Logging.Level)
}
