package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask_Defaults(t *testing.T) {
	task := NewTask(1, "buy milk")
	assert.Equal(t, 1, task.ID)
	assert.Equal(t, "buy milk", task.Text)
	assert.False(t, task.Completed)
	assert.False(t, task.Editing)
}

func TestRestoreTask_ForcesEditingOff(t *testing.T) {
	task := RestoreTask(Record{ID: 7, Text: "walk dog", Completed: true})
	assert.Equal(t, 7, task.ID)
	assert.Equal(t, "walk dog", task.Text)
	assert.True(t, task.Completed)
	assert.False(t, task.Editing)
}

func TestRestoreTask_IgnoresPersistedEditing(t *testing.T) {
	var r Record
	require.NoError(t, json.Unmarshal([]byte(`{"id":3,"text":"x","completed":false,"editing":true}`), &r))
	assert.False(t, RestoreTask(r).Editing)
}

func TestTask_Record_StripsEditing(t *testing.T) {
	task := &Task{ID: 2, Text: "read", Completed: true, Editing: true}
	data, err := json.Marshal(task.Record())
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":2,"text":"read","completed":true}`, string(data))
}

func TestTask_Validate_Valid(t *testing.T) {
	assert.NoError(t, NewTask(1, "ok").Validate())
}

func TestTask_Validate_BlankText(t *testing.T) {
	assert.Error(t, NewTask(1, "   ").Validate())
}

func TestTask_Validate_BadID(t *testing.T) {
	assert.Error(t, NewTask(0, "ok").Validate())
}
