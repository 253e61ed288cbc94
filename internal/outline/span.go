package outline

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// ConvertPoint maps a parser-reported position to the display coordinate
// system: tree-sitter rows are 0-based, locationSpan lines are 1-based.
// Columns stay 0-based byte offsets.
func ConvertPoint(p sitter.Point) Point {
	return Point{int(p.Row) + 1, int(p.Column)}
}

// nodeSpan returns the node's absolute byte range. Byte offsets are passed
// through unchanged.
func nodeSpan(node *sitter.Node) CharSpan {
	return CharSpan{int(node.StartByte()), int(node.EndByte())}
}
