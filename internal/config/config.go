package config

import (
	"os"
	"path/filepath"
)

// Config represents the complete semantic-rust configuration.
// It can be loaded from .semrust/config.yml with environment variable
// overrides.
type Config struct {
	Paths   PathsConfig   `yaml:"paths" mapstructure:"paths"`
	Cache   CacheConfig   `yaml:"cache" mapstructure:"cache"`
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
}

// PathsConfig defines which files batch and watch conversions cover.
type PathsConfig struct {
	Code   []string `yaml:"code" mapstructure:"code"`     // glob patterns for source files
	Ignore []string `yaml:"ignore" mapstructure:"ignore"` // glob patterns to skip
}

// CacheConfig defines the outline cache behavior.
type CacheConfig struct {
	Enabled       bool   `yaml:"enabled" mapstructure:"enabled"`               // consult/populate the cache
	Location      string `yaml:"location" mapstructure:"location"`             // override default ~/.semrust/cache
	MemoryEntries int    `yaml:"memory_entries" mapstructure:"memory_entries"` // in-memory cache capacity
}

// LoggingConfig controls diagnostic output. Logs go to stderr only;
// stdout belongs to the driver protocol.
type LoggingConfig struct {
	Level string `yaml:"level" mapstructure:"level"` // "debug", "info", "warn", "error"
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			Code: []string{
				"*.rs",
				"**/*.rs",
			},
			Ignore: []string{
				"target/**",
				".git/**",
			},
		},
		Cache: CacheConfig{
			Enabled:       true,
			Location:      "", // empty means use default ~/.semrust/cache
			MemoryEntries: 1024,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// CacheDatabasePath resolves the cache database location, falling back to
// ~/.semrust/cache/outlines.db.
func (c *Config) CacheDatabasePath() string {
	root := c.Cache.Location
	if root == "" {
		home, _ := os.UserHomeDir()
		root = filepath.Join(home, ".semrust", "cache")
	}
	return filepath.Join(root, "outlines.db")
}
