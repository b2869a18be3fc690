package model

import (
	"fmt"
	"strings"
)

// Task is a single todo item. Editing is UI state and never leaves the process.
type Task struct {
	ID        int
	Text      string
	Completed bool
	Editing   bool
}

// Record is the persisted shape of a Task.
type Record struct {
	ID        int    `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

func NewTask(id int, text string) *Task {
	return &Task{ID: id, Text: text}
}

// RestoreTask rebuilds a Task from a persisted record. Editing is always
// reset, whatever the stored data claims.
func RestoreTask(r Record) *Task {
	return &Task{
		ID:        r.ID,
		Text:      r.Text,
		Completed: r.Completed,
		Editing:   false,
	}
}

func (t *Task) Record() Record {
	return Record{ID: t.ID, Text: t.Text, Completed: t.Completed}
}

func (t *Task) Validate() error {
	if t.ID < 1 {
		return fmt.Errorf("task id must be positive, got %d", t.ID)
	}
	if strings.TrimSpace(t.Text) == "" {
		return fmt.Errorf("task text is required")
	}
	return nil
}
