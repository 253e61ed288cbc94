package config

import (
	"fmt"
	"slices"
)

var validLogLevels = []string{"debug", "info", "warn", "error"}

// Validate checks a loaded configuration for values the rest of the
// program cannot work with.
func Validate(cfg *Config) error {
	if len(cfg.Paths.Code) == 0 {
		return fmt.Errorf("paths.code must list at least one glob pattern")
	}

	if cfg.Cache.MemoryEntries < 0 {
		return fmt.Errorf("cache.memory_entries must not be negative, got %d", cfg.Cache.MemoryEntries)
	}

	if !slices.Contains(validLogLevels, cfg.Logging.Level) {
		return fmt.Errorf("logging.level must be one of %v, got %q", validLogLevels, cfg.Logging.Level)
	}

	return nil
}
