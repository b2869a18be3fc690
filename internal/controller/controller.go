package controller

import (
	"io"
	"log/slog"
	"strings"

	"github.com/rogersnm/tally/internal/filter"
	"github.com/rogersnm/tally/internal/model"
	"github.com/rogersnm/tally/internal/store"
)

// Controller is the only writer of the store. Every mutating action finishes
// by persisting and then rendering.
type Controller struct {
	store     *store.Store
	persister Persister
	renderer  Renderer
	logger    *slog.Logger

	filter filter.Selector
	// allChecked remembers the last toggle-all gesture. It is not derived
	// from the tasks and does not follow individual toggles.
	allChecked bool
}

func New(s *store.Store, p Persister, r Renderer, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Controller{
		store:     s,
		persister: p,
		renderer:  r,
		logger:    logger,
		filter:    filter.All,
	}
}

// SetRenderer swaps the renderer, for front ends that are built after the
// controller.
func (c *Controller) SetRenderer(r Renderer) {
	c.renderer = r
}

func (c *Controller) Filter() filter.Selector {
	return c.filter
}

func (c *Controller) AllChecked() bool {
	return c.allChecked
}

// Render draws the current state without persisting.
func (c *Controller) Render() {
	c.render()
}

// SetFilter changes the view filter. Filters are view state, so nothing is
// persisted.
func (c *Controller) SetFilter(sel filter.Selector) {
	c.filter = sel
	c.render()
}

// SubmitNewTask adds a task from raw input. Blank input is logged as a
// warning and returned as store.ErrEmptyText without touching the store, the
// slot or the view.
func (c *Controller) SubmitNewTask(raw string) (*model.Task, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		c.logger.Warn("text is empty", "text", raw)
		return nil, store.ErrEmptyText
	}
	t, err := c.store.Create(text)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("created task", "id", t.ID)
	if err := c.syncAndRender(); err != nil {
		return nil, err
	}
	return t, nil
}

// SubmitEdit saves new text for a task and leaves edit mode. Blank text is
// rejected the same way SubmitNewTask rejects it, and the task stays in edit
// mode.
func (c *Controller) SubmitEdit(id int, raw string) error {
	t, err := c.store.Get(id)
	if err != nil {
		return err
	}
	text := strings.TrimSpace(raw)
	if text == "" {
		c.logger.Warn("text is empty", "id", id, "text", raw)
		return store.ErrEmptyText
	}
	t.Text = text
	t.Editing = false
	return c.syncAndRender()
}

// CancelEdit leaves edit mode without changing the text.
func (c *Controller) CancelEdit(id int) error {
	t, err := c.store.Get(id)
	if err != nil {
		return err
	}
	t.Editing = false
	return c.syncAndRender()
}

// ToggleAll flips the toggle-all flag and sets every task to it, including
// tasks already in that state.
func (c *Controller) ToggleAll() error {
	c.allChecked = !c.allChecked
	for _, t := range c.store.Tasks() {
		t.Completed = c.allChecked
	}
	return c.syncAndRender()
}

func (c *Controller) SetCompleted(id int, completed bool) error {
	t, err := c.store.Get(id)
	if err != nil {
		return err
	}
	t.Completed = completed
	return c.syncAndRender()
}

// StartEdit puts one task into edit mode, taking every other task out of it.
// Focus is requested after rendering because rendering recreates the input.
func (c *Controller) StartEdit(id int) error {
	target, err := c.store.Get(id)
	if err != nil {
		return err
	}
	for _, t := range c.store.Tasks() {
		t.Editing = false
	}
	target.Editing = true
	if err := c.syncAndRender(); err != nil {
		return err
	}
	if f, ok := c.renderer.(Focuser); ok {
		f.Focus(id)
	}
	return nil
}

// ClearCompleted removes all completed tasks and returns how many it removed.
func (c *Controller) ClearCompleted() (int, error) {
	n, err := c.store.ClearCompleted()
	if err != nil {
		return 0, err
	}
	c.logger.Debug("cleared completed", "count", n)
	return n, c.syncAndRender()
}

// Destroy removes a task. A missing id means a caller holds a stale
// reference; the store.ErrNotFound is returned as is.
func (c *Controller) Destroy(id int) error {
	if err := c.store.Destroy(id); err != nil {
		c.logger.Error("destroy failed", "id", id, "err", err)
		return err
	}
	return c.syncAndRender()
}
