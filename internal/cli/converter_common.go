package cli

import (
	"log/slog"

	"github.com/jihiggins/SemanticMergeRust/internal/config"
	"github.com/jihiggins/SemanticMergeRust/internal/converter"
	"github.com/jihiggins/SemanticMergeRust/internal/store"
)

// newConverter builds the conversion pipeline from config. A cache that
// fails to open is logged and skipped; conversion never depends on it.
func newConverter(cfg *config.Config, logger *slog.Logger) *converter.Converter {
	opts := []converter.Option{}

	if cfg.Cache.Enabled {
		if s, err := store.Open(cfg.CacheDatabasePath()); err != nil {
			logger.Warn("outline cache unavailable", "path", cfg.CacheDatabasePath(), "error", err)
		} else {
			opts = append(opts, converter.WithStore(s))
		}
		if cfg.Cache.MemoryEntries > 0 {
			opts = append(opts, converter.WithMemoCapacity(cfg.Cache.MemoryEntries))
		}
	}

	return converter.New(logger, opts...)
}
