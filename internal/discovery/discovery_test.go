package discovery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel string) string {
	t.Helper()

	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("fn main() {}\n"), 0o644))
	return path
}

func TestDiscover_MatchesCodeAndHonorsIgnore(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	wanted := writeFile(t, root, "src/lib.rs")
	topLevel := writeFile(t, root, "main.rs")
	writeFile(t, root, "target/debug/build.rs")
	writeFile(t, root, "README.md")

	fd, err := New(root, []string{"*.rs", "**/*.rs"}, []string{"target/**"})
	require.NoError(t, err)

	files, err := fd.Discover()
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{wanted, topLevel}, files)
}

func TestMatches_RelativePaths(t *testing.T) {
	t.Parallel()

	fd, err := New(t.TempDir(), []string{"*.rs", "**/*.rs"}, []string{"target/**"})
	require.NoError(t, err)

	assert.True(t, fd.Matches("src/lib.rs"))
	assert.True(t, fd.Matches("main.rs"))
	assert.False(t, fd.Matches("target/debug/build.rs"))
	assert.False(t, fd.Matches("notes.txt"))
}

func TestNew_RejectsBadPattern(t *testing.T) {
	t.Parallel()

	_, err := New(t.TempDir(), []string{"[invalid"}, nil)
	assert.Error(t, err)
}
