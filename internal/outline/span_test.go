package outline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	sitter "github.com/tree-sitter/go-tree-sitter"
)

func TestConvertPoint(t *testing.T) {
	t.Parallel()

	// Rows become 1-based, columns stay 0-based byte offsets.
	assert.Equal(t, Point{1, 0}, ConvertPoint(sitter.Point{Row: 0, Column: 0}))
	assert.Equal(t, Point{1, 4}, ConvertPoint(sitter.Point{Row: 0, Column: 4}))
	assert.Equal(t, Point{42, 7}, ConvertPoint(sitter.Point{Row: 41, Column: 7}))
}

func TestSentinelSpan(t *testing.T) {
	t.Parallel()

	assert.Equal(t, CharSpan{0, -1}, SentinelSpan())
}
