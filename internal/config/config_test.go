package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.Contains(t, cfg.Paths.Code, "**/*.rs")
	assert.Contains(t, cfg.Paths.Ignore, "target/**")
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, "info", cfg.Logging.Level)
	require.NoError(t, Validate(cfg))
}

func TestCacheDatabasePath_Override(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Cache.Location = "/var/cache/semrust"
	assert.Equal(t, filepath.Join("/var/cache/semrust", "outlines.db"), cfg.CacheDatabasePath())
}

func TestLoader_DefaultsWithoutConfigFile(t *testing.T) {
	cfg, err := NewLoader(t.TempDir()).Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoader_ConfigFileOverridesDefaults(t *testing.T) {
	root := t.TempDir()
	configDir := filepath.Join(root, ".semrust")
	require.NoError(t, os.MkdirAll(configDir, 0o755))

	yaml := `
logging:
  level: debug
cache:
  enabled: false
`
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yml"), []byte(yaml), 0o644))

	cfg, err := NewLoader(root).Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.False(t, cfg.Cache.Enabled)
	// Untouched sections keep their defaults.
	assert.Equal(t, Default().Paths.Code, cfg.Paths.Code)
}

func TestLoader_EnvironmentOverridesFile(t *testing.T) {
	root := t.TempDir()
	configDir := filepath.Join(root, ".semrust")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yml"), []byte("logging:\n  level: warn\n"), 0o644))

	t.Setenv("SEMRUST_LOGGING_LEVEL", "error")

	cfg, err := NewLoader(root).Load()
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Logging.Level)
}

func TestValidate_Rejections(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Paths.Code = nil
	assert.Error(t, Validate(cfg))

	cfg = Default()
	cfg.Cache.MemoryEntries = -1
	assert.Error(t, Validate(cfg))

	cfg = Default()
	cfg.Logging.Level = "loud"
	assert.Error(t, Validate(cfg))
}
