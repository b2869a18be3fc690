package repofile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteRead_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Write(dir, "groceries"))

	got, err := Read(dir)
	require.NoError(t, err)
	assert.Equal(t, "groceries", got)
}

func TestRead_Missing(t *testing.T) {
	got, err := Read(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRead_TrimsWhitespace(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, FileName), []byte("  work \n\n"), 0644)

	got, err := Read(dir)
	require.NoError(t, err)
	assert.Equal(t, "work", got)
}

func TestFind_WalksUp(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, Write(root, "work"))
	nested := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0755))

	key, dir, err := Find(nested)
	require.NoError(t, err)
	assert.Equal(t, "work", key)
	assert.Equal(t, root, dir)
}

func TestFind_NearestWins(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, Write(root, "outer"))
	inner := filepath.Join(root, "inner")
	require.NoError(t, os.MkdirAll(inner, 0755))
	require.NoError(t, Write(inner, "inner"))

	key, dir, err := Find(inner)
	require.NoError(t, err)
	assert.Equal(t, "inner", key)
	assert.Equal(t, inner, dir)
}

func TestRemove(t *testing.T) {
	dir := t.TempDir()
	removed, err := Remove(dir)
	require.NoError(t, err)
	assert.False(t, removed)

	require.NoError(t, Write(dir, "work"))
	removed, err = Remove(dir)
	require.NoError(t, err)
	assert.True(t, removed)

	got, _ := Read(dir)
	assert.Empty(t, got)
}
