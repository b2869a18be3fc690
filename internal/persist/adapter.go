package persist

import (
	"encoding/json"
	"fmt"

	"github.com/rogersnm/tally/internal/model"
	"github.com/rogersnm/tally/internal/store"
)

// DefaultKey is the slot the task list lives under unless configured otherwise.
const DefaultKey = "todos"

// DecodeError reports a stored snapshot that exists but cannot be restored.
type DecodeError struct {
	Key string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding snapshot %q: %v", e.Key, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Adapter saves and restores the task list in one slot.
type Adapter struct {
	slot Slot
	key  string
}

func NewAdapter(slot Slot, key string) *Adapter {
	if key == "" {
		key = DefaultKey
	}
	return &Adapter{slot: slot, key: key}
}

func (a *Adapter) Key() string {
	return a.key
}

// Save writes the store's tasks, replacing the previous snapshot. Only the
// persisted fields of each task are encoded.
func (a *Adapter) Save(s *store.Store) error {
	tasks := s.Tasks()
	records := make([]model.Record, len(tasks))
	for i, t := range tasks {
		records[i] = t.Record()
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := a.slot.Set(a.key, data); err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}
	return nil
}

// Load restores the saved tasks. A missing slot yields no tasks and no error;
// a slot that cannot be decoded yields a *DecodeError and no tasks.
func (a *Adapter) Load() ([]*model.Task, error) {
	data, ok, err := a.slot.Get(a.key)
	if err != nil {
		return nil, fmt.Errorf("loading snapshot: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var records []model.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &DecodeError{Key: a.key, Err: err}
	}

	seen := make(map[int]bool, len(records))
	tasks := make([]*model.Task, 0, len(records))
	for _, r := range records {
		t := model.RestoreTask(r)
		if err := t.Validate(); err != nil {
			return nil, &DecodeError{Key: a.key, Err: err}
		}
		if seen[t.ID] {
			return nil, &DecodeError{Key: a.key, Err: fmt.Errorf("duplicate id %d", t.ID)}
		}
		seen[t.ID] = true
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// ValidateKey rejects keys that cannot be used as a slot name. Keys double
// as file names for FileSlot.
func ValidateKey(key string) error {
	if key == "" {
		return fmt.Errorf("slot key is required")
	}
	for _, r := range key {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '-' || r == '_') {
			return fmt.Errorf("invalid slot key %q: use letters, digits, '-' or '_'", key)
		}
	}
	return nil
}
