package persist

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/rogersnm/tally/internal/model"
	"github.com/rogersnm/tally/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingSlot struct{ err error }

func (f failingSlot) Get(string) ([]byte, bool, error) { return nil, false, f.err }
func (f failingSlot) Set(string, []byte) error         { return f.err }

func TestLoad_EmptySlot(t *testing.T) {
	a := NewAdapter(NewMemorySlot(), "")
	tasks, err := a.Load()
	require.NoError(t, err)
	assert.Empty(t, tasks)
	assert.Equal(t, DefaultKey, a.Key())
}

func TestSaveLoad_RoundTripStripsEditing(t *testing.T) {
	slot := NewMemorySlot()
	a := NewAdapter(slot, "todos")

	s := store.New(nil)
	first, _ := s.Create("buy milk")
	second, _ := s.Create("walk dog")
	second.Completed = true
	first.Editing = true

	require.NoError(t, a.Save(s))

	tasks, err := a.Load()
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, model.Task{ID: 1, Text: "buy milk"}, *tasks[0])
	assert.Equal(t, model.Task{ID: 2, Text: "walk dog", Completed: true}, *tasks[1])
}

func TestSave_WireFormat(t *testing.T) {
	slot := NewMemorySlot()
	a := NewAdapter(slot, "todos")
	s := store.New([]*model.Task{{ID: 4, Text: "x", Editing: true}})
	require.NoError(t, a.Save(s))

	raw, ok, err := slot.Get("todos")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `[{"id":4,"text":"x","completed":false}]`, string(raw))
}

func TestSave_ReplacesPreviousValue(t *testing.T) {
	slot := NewMemorySlot()
	a := NewAdapter(slot, "todos")
	s := store.New(nil)
	s.Create("a")
	require.NoError(t, a.Save(s))
	require.NoError(t, s.Destroy(1))
	require.NoError(t, a.Save(s))

	raw, _, _ := slot.Get("todos")
	assert.JSONEq(t, `[]`, string(raw))
	assert.Equal(t, 2, slot.Writes())
}

func TestLoad_IgnoresPersistedEditingField(t *testing.T) {
	slot := NewMemorySlot()
	slot.Set("todos", []byte(`[{"id":1,"text":"a","completed":true,"editing":true,"checked":true}]`))

	tasks, err := NewAdapter(slot, "todos").Load()
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.False(t, tasks[0].Editing)
	assert.True(t, tasks[0].Completed)
}

func TestLoad_MalformedIsDecodeError(t *testing.T) {
	slot := NewMemorySlot()
	slot.Set("todos", []byte(`[{"id":1,"text":`))

	tasks, err := NewAdapter(slot, "todos").Load()
	assert.Nil(t, tasks)
	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, "todos", decodeErr.Key)

	var syntaxErr *json.SyntaxError
	assert.True(t, errors.As(err, &syntaxErr))
}

func TestLoad_DuplicateIDs(t *testing.T) {
	slot := NewMemorySlot()
	slot.Set("todos", []byte(`[{"id":1,"text":"a"},{"id":1,"text":"b"}]`))

	tasks, err := NewAdapter(slot, "todos").Load()
	assert.Nil(t, tasks)
	var decodeErr *DecodeError
	assert.ErrorAs(t, err, &decodeErr)
	assert.Contains(t, err.Error(), "duplicate id 1")
}

func TestLoad_NonPositiveID(t *testing.T) {
	slot := NewMemorySlot()
	slot.Set("todos", []byte(`[{"id":0,"text":"a"}]`))

	_, err := NewAdapter(slot, "todos").Load()
	var decodeErr *DecodeError
	assert.ErrorAs(t, err, &decodeErr)
}

func TestLoad_BlankText(t *testing.T) {
	for _, data := range []string{
		`[{"id":1,"text":"a"},{"id":2,"text":"   "}]`,
		`[{"id":1,"completed":true}]`,
	} {
		slot := NewMemorySlot()
		slot.Set("todos", []byte(data))

		tasks, err := NewAdapter(slot, "todos").Load()
		assert.Nil(t, tasks, data)
		var decodeErr *DecodeError
		assert.ErrorAs(t, err, &decodeErr, data)
		assert.Contains(t, err.Error(), "task text is required", data)
	}
}

func TestLoad_SlotErrorIsNotDecodeError(t *testing.T) {
	boom := errors.New("disk on fire")
	_, err := NewAdapter(failingSlot{err: boom}, "todos").Load()
	assert.ErrorIs(t, err, boom)
	var decodeErr *DecodeError
	assert.False(t, errors.As(err, &decodeErr))
}

func TestSave_SlotError(t *testing.T) {
	boom := errors.New("read-only")
	err := NewAdapter(failingSlot{err: boom}, "todos").Save(store.New(nil))
	assert.ErrorIs(t, err, boom)
}

func TestValidateKey(t *testing.T) {
	for _, k := range []string{"todos", "work-2", "home_list"} {
		assert.NoError(t, ValidateKey(k), k)
	}
	for _, k := range []string{"", "../etc", "a b", "x.json"} {
		assert.Error(t, ValidateKey(k), k)
	}
}
