package parser

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRustParser_ParseSimpleFile(t *testing.T) {
	t.Parallel()

	source, err := os.ReadFile("../../testdata/code/rust/simple.rs")
	require.NoError(t, err)

	tree, err := NewRustParser().Parse(context.Background(), source)
	require.NoError(t, err)
	defer tree.Close()

	root := tree.RootNode()
	assert.Equal(t, "source_file", root.Kind())
	assert.False(t, root.HasError())
	assert.Greater(t, root.NamedChildCount(), uint(0))
}

func TestRustParser_MalformedSourceStillYieldsTree(t *testing.T) {
	t.Parallel()

	tree, err := NewRustParser().Parse(context.Background(), []byte("fn main() {"))
	require.NoError(t, err)
	defer tree.Close()

	assert.True(t, tree.RootNode().HasError())
}

func TestRustParser_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRustParser().Parse(ctx, []byte("fn main() {}"))
	assert.ErrorIs(t, err, context.Canceled)
}
