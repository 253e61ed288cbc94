package outline

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNameExtraction signals that no name token survived stripping, e.g.
// for anonymous or punctuation-only node text. Callers treat this as a
// soft, node-local failure.
var ErrNameExtraction = errors.New("no name token survived stripping")

// Namer derives a display name for a syntax node from its kind label and
// exact source text. It is injected into the Normalizer so a grammar-aware
// extractor can replace the heuristic without touching the traversal.
type Namer interface {
	NameFor(kind, text string) (string, error)
}

// Tokens removed before picking a name. Literal substring replacement, not
// tokenization: an identifier that embeds one of these (e.g. "fname") gets
// mangled. Known limitation of the heuristic.
var strippedTokens = []string{
	"{", "}", "(", ")", ":", "#", "[", "]",
	"fn", "struct", "enum", "pub",
}

// HeuristicNamer names declaration-like nodes (kinds containing
// "identifier" or "item") by stripping punctuation and keywords from their
// text and taking the first remaining token. Every other node is named
// after its grammatical role.
type HeuristicNamer struct{}

func (HeuristicNamer) NameFor(kind, text string) (string, error) {
	if !strings.Contains(kind, "identifier") && !strings.Contains(kind, "item") {
		return kind, nil
	}

	for _, tok := range strippedTokens {
		text = strings.ReplaceAll(text, tok, " ")
	}

	fields := strings.Fields(text)
	if len(fields) == 0 {
		return "", fmt.Errorf("%s node: %w", kind, ErrNameExtraction)
	}
	return fields[0], nil
}
