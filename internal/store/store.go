package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rogersnm/tally/internal/model"
)

var (
	ErrEmptyText = errors.New("text is empty")
	ErrNotFound  = errors.New("no such todo")
)

// Store owns the ordered task collection. Insertion order is display order.
type Store struct {
	tasks []*model.Task
}

// New builds a store over already restored tasks. The slice is copied.
func New(tasks []*model.Task) *Store {
	s := &Store{tasks: make([]*model.Task, 0, len(tasks))}
	s.tasks = append(s.tasks, tasks...)
	return s
}

// Tasks returns the tasks in order. The slice is a copy; the tasks are shared.
func (s *Store) Tasks() []*model.Task {
	out := make([]*model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

func (s *Store) Get(id int) (*model.Task, error) {
	if i := s.indexOf(id); i >= 0 {
		return s.tasks[i], nil
	}
	return nil, fmt.Errorf("%w: %d", ErrNotFound, id)
}

// NextID is max(id)+1, or 1 for an empty store. It is recomputed on every call,
// so destroying the highest task frees its id for the next create.
func (s *Store) NextID() int {
	highest := 0
	for _, t := range s.tasks {
		if t.ID > highest {
			highest = t.ID
		}
	}
	return highest + 1
}

func (s *Store) Create(text string) (*model.Task, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}
	t := model.NewTask(s.NextID(), text)
	s.tasks = append(s.tasks, t)
	return t, nil
}

func (s *Store) Destroy(id int) error {
	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	return nil
}

// ClearCompleted removes every completed task and reports how many went.
func (s *Store) ClearCompleted() (int, error) {
	done := Completed(s)
	for _, t := range done {
		if err := s.Destroy(t.ID); err != nil {
			return 0, err
		}
	}
	return len(done), nil
}

func (s *Store) indexOf(id int) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func Total(s *Store) int {
	return len(s.tasks)
}

// Completed returns the completed subsequence in store order.
func Completed(s *Store) []*model.Task {
	var out []*model.Task
	for _, t := range s.tasks {
		if t.Completed {
			out = append(out, t)
		}
	}
	return out
}

func Remaining(s *Store) int {
	return Total(s) - len(Completed(s))
}
