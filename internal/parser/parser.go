// Package parser wraps the tree-sitter Rust grammar behind a small,
// per-file parsing API. The grammar engine itself is an external
// capability; nothing here inspects node semantics.
package parser

import (
	"context"
	"errors"

	sitter "github.com/tree-sitter/go-tree-sitter"
	rust "github.com/tree-sitter/tree-sitter-rust/bindings/go"
)

// ErrUnparseable is returned when tree-sitter produces no tree at all.
var ErrUnparseable = errors.New("parser produced no syntax tree")

// RustParser parses Rust source files.
type RustParser struct {
	language *sitter.Language
}

// NewRustParser creates a parser bound to the Rust grammar.
func NewRustParser() *RustParser {
	return &RustParser{
		language: sitter.NewLanguage(rust.Language()),
	}
}

// Parse parses source into a fresh syntax tree. The caller owns the
// returned tree and must Close it after one traversal.
func (p *RustParser) Parse(ctx context.Context, source []byte) (*sitter.Tree, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sp := sitter.NewParser()
	defer sp.Close()

	if err := sp.SetLanguage(p.language); err != nil {
		return nil, err
	}

	tree := sp.Parse(source, nil)
	if tree == nil {
		return nil, ErrUnparseable
	}
	return tree, nil
}
