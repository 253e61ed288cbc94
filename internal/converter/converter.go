// Package converter runs the full per-file pipeline: read, parse,
// normalize, serialize, with optional content-addressed caching in front.
package converter

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"

	"github.com/maypok86/otter"

	"github.com/jihiggins/SemanticMergeRust/internal/outline"
	"github.com/jihiggins/SemanticMergeRust/internal/parser"
	"github.com/jihiggins/SemanticMergeRust/internal/store"
)

// Converter converts Rust source files into serialized outline documents.
// One Converter is reused across requests; each conversion parses a fresh
// tree and releases it before returning.
type Converter struct {
	parser     *parser.RustParser
	normalizer *outline.Normalizer
	cache      *store.Store                // persistent tier, may be nil
	memo       otter.Cache[string, []byte] // in-process tier
	hasMemo    bool
	logger     *slog.Logger
}

// Option configures a Converter.
type Option func(*Converter)

// WithStore attaches a persistent outline cache.
func WithStore(s *store.Store) Option {
	return func(c *Converter) { c.cache = s }
}

// WithMemoCapacity enables the in-memory cache tier with the given entry
// capacity.
func WithMemoCapacity(capacity int) Option {
	return func(c *Converter) {
		memo, err := otter.MustBuilder[string, []byte](capacity).Build()
		if err != nil {
			c.logger.Warn("in-memory cache disabled", "error", err)
			return
		}
		c.memo = memo
		c.hasMemo = true
	}
}

// New creates a Converter with the heuristic namer. A nil logger
// discards.
func New(logger *slog.Logger, opts ...Option) *Converter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	c := &Converter{
		parser:     parser.NewRustParser(),
		normalizer: outline.NewNormalizer(nil),
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ConvertFile reads and converts one source file.
func (c *Converter) ConvertFile(ctx context.Context, inputPath string) ([]byte, error) {
	source, err := os.ReadFile(inputPath)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return c.Convert(ctx, inputPath, source)
}

// Convert converts source supplied by the caller. The path is recorded in
// the output document as given, so cache tiers are keyed by path and
// content hash together: identical bytes at two paths never share an
// entry. Cache failures degrade to a plain conversion, never to a
// request failure.
func (c *Converter) Convert(ctx context.Context, path string, source []byte) ([]byte, error) {
	hash := contentHash(source)

	if doc, ok := c.lookup(path, hash); ok {
		c.logger.Debug("cache hit", "path", path, "hash", hash)
		return doc, nil
	}

	tree, err := c.parser.Parse(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	defer tree.Close()

	file, err := c.normalizer.NormalizeTree(path, source, tree)
	if err != nil {
		return nil, fmt.Errorf("normalize %s: %w", path, err)
	}

	doc, err := outline.Encode(file)
	if err != nil {
		return nil, err
	}

	c.remember(path, hash, doc)
	return doc, nil
}

// lookup checks the memo tier, then the persistent tier.
func (c *Converter) lookup(path, hash string) ([]byte, bool) {
	key := memoKey(path, hash)
	if c.hasMemo {
		if doc, ok := c.memo.Get(key); ok {
			return doc, true
		}
	}
	if c.cache != nil {
		doc, found, err := c.cache.Get(path, hash)
		if err != nil {
			c.logger.Warn("outline cache read failed", "error", err)
			return nil, false
		}
		if found {
			if c.hasMemo {
				c.memo.Set(key, doc)
			}
			return doc, true
		}
	}
	return nil, false
}

func (c *Converter) remember(path, hash string, doc []byte) {
	if c.hasMemo {
		c.memo.Set(memoKey(path, hash), doc)
	}
	if c.cache != nil {
		if err := c.cache.Put(path, hash, doc); err != nil {
			c.logger.Warn("outline cache write failed", "error", err)
		}
	}
}

// memoKey joins path and hash with a byte no path can contain.
func memoKey(path, hash string) string {
	return path + "\x00" + hash
}

// Close releases the cache tiers.
func (c *Converter) Close() error {
	if c.hasMemo {
		c.memo.Close()
	}
	if c.cache != nil {
		return c.cache.Close()
	}
	return nil
}

func contentHash(source []byte) string {
	sum := sha256.Sum256(source)
	return hex.EncodeToString(sum[:])
}
