package outline

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// ErrEmptyContainer signals that every child of a would-be container
// failed extraction. The node is dropped by its parent instead of being
// kept as an empty container.
var ErrEmptyContainer = errors.New("no children survived normalization")

// Normalizer converts a raw tree-sitter tree into the outline data model.
// It walks named children only, classifies each node as Container or
// Terminal, and contains per-node extraction failures by dropping the
// offending subtree rather than failing the whole file.
type Normalizer struct {
	namer Namer
}

// NewNormalizer creates a Normalizer. A nil namer falls back to the
// heuristic extractor.
func NewNormalizer(namer Namer) *Normalizer {
	if namer == nil {
		namer = HeuristicNamer{}
	}
	return &Normalizer{namer: namer}
}

// NormalizeTree converts a parsed file into its outline record. The parse
// root is only a traversal anchor: its children are promoted to the file's
// top-level nodes, and the root itself is never emitted. A root whose own
// normalization fails fails the whole file, since there is no parent left
// to absorb the error.
func (n *Normalizer) NormalizeTree(path string, source []byte, tree *sitter.Tree) (*File, error) {
	root := tree.RootNode()

	node, err := n.NormalizeNode(root, source)
	if err != nil {
		return nil, fmt.Errorf("root extraction failed: %w", err)
	}

	children := Nodes{}
	if c, ok := node.(*Container); ok {
		children = c.Children
	}
	// A Terminal root means the file has no named nodes at all; the file
	// record just keeps an empty child list.

	lineCount, lastLen := measure(source)
	return &File{
		Type: "file",
		Name: path,
		LocationSpan: LocationSpan{
			Start: Point{1, 0},
			End:   Point{lineCount, lastLen},
		},
		FooterSpan:            SentinelSpan(),
		ParsingErrorsDetected: root.HasError(),
		Children:              children,
	}, nil
}

// NormalizeNode builds one outline node from a raw node. Failed children
// are filtered out of a container's child list; the failure never
// propagates past the immediate parent.
func (n *Normalizer) NormalizeNode(node *sitter.Node, source []byte) (Node, error) {
	kind := node.Kind()

	name, err := n.namer.NameFor(kind, nodeText(node, source))
	if err != nil {
		return nil, err
	}

	loc := LocationSpan{
		Start: ConvertPoint(node.StartPosition()),
		End:   ConvertPoint(node.EndPosition()),
	}

	childCount := node.NamedChildCount()
	if childCount == 0 {
		return &Terminal{
			Type:         kind,
			Name:         name,
			LocationSpan: loc,
			Span:         nodeSpan(node),
		}, nil
	}

	children := make(Nodes, 0, childCount)
	for i := uint(0); i < childCount; i++ {
		child, err := n.NormalizeNode(node.NamedChild(i), source)
		if err != nil {
			continue // drop the subtree, keep the siblings
		}
		children = append(children, child)
	}
	if len(children) == 0 {
		return nil, fmt.Errorf("%s container: %w", kind, ErrEmptyContainer)
	}

	return &Container{
		Type:         kind,
		Name:         name,
		LocationSpan: loc,
		HeaderSpan:   nodeSpan(node),
		FooterSpan:   SentinelSpan(),
		Children:     children,
	}, nil
}

// nodeText slices the node's byte range out of the source. A malformed
// range or invalid UTF-8 degrades to empty text instead of failing the
// node.
func nodeText(node *sitter.Node, source []byte) string {
	start, end := int(node.StartByte()), int(node.EndByte())
	if start < 0 || end < start || end > len(source) {
		return ""
	}
	slice := source[start:end]
	if !utf8.Valid(slice) {
		return ""
	}
	return string(slice)
}

// measure returns the line count and the byte length of the last line,
// used for the whole-file location span. An empty file measures as a
// single empty line.
func measure(source []byte) (lineCount, lastLen int) {
	lines := strings.Split(string(source), "\n")
	if len(lines) > 1 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1] // ignore the trailing newline
	}
	return len(lines), len(lines[len(lines)-1])
}
