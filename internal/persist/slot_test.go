package persist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slotContract(t *testing.T, slot Slot) {
	t.Helper()

	_, ok, err := slot.Get("todos")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, slot.Set("todos", []byte(`[1]`)))
	v, ok, err := slot.Get("todos")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[1]`, string(v))

	require.NoError(t, slot.Set("todos", []byte(`[2]`)))
	v, _, err = slot.Get("todos")
	require.NoError(t, err)
	assert.Equal(t, `[2]`, string(v))

	_, ok, err = slot.Get("other")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemorySlot(t *testing.T) {
	slotContract(t, NewMemorySlot())
}

func TestMemorySlot_CopiesValues(t *testing.T) {
	m := NewMemorySlot()
	buf := []byte("abc")
	require.NoError(t, m.Set("k", buf))
	buf[0] = 'z'
	v, _, _ := m.Get("k")
	assert.Equal(t, "abc", string(v))
}

func TestFileSlot(t *testing.T) {
	slotContract(t, NewFileSlot(t.TempDir()))
}

func TestFileSlot_CreatesDirAndLeavesNoTempFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	f := NewFileSlot(dir)
	require.NoError(t, f.Set("todos", []byte(`[]`)))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "todos.json", entries[0].Name())
}

func TestSQLiteSlot(t *testing.T) {
	s, err := OpenSQLiteSlot(filepath.Join(t.TempDir(), "tally.db"))
	require.NoError(t, err)
	defer s.Close()
	slotContract(t, s)
}

func TestSQLiteSlot_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tally.db")
	s, err := OpenSQLiteSlot(path)
	require.NoError(t, err)
	require.NoError(t, s.Set("todos", []byte(`[{"id":1}]`)))
	require.NoError(t, s.Close())

	s, err = OpenSQLiteSlot(path)
	require.NoError(t, err)
	defer s.Close()
	v, ok, err := s.Get("todos")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":1}]`, string(v))
}
