package controller

import (
	"github.com/rogersnm/tally/internal/filter"
	"github.com/rogersnm/tally/internal/model"
	"github.com/rogersnm/tally/internal/store"
)

// Snapshot is the read-only state handed to a renderer. Tasks are copies, so a
// renderer cannot reach back into the store.
type Snapshot struct {
	Tasks      []model.Task
	Visible    []model.Task
	Filter     filter.Selector
	Filters    []filter.Option
	Total      int
	Remaining  int
	Completed  int
	AllChecked bool
}

// Renderer draws a snapshot. Render must be safe to call repeatedly with the
// same snapshot.
type Renderer interface {
	Render(Snapshot)
}

type RenderFunc func(Snapshot)

func (f RenderFunc) Render(s Snapshot) { f(s) }

// Focuser is implemented by renderers that can move input focus to the edit
// field of a task once it has been drawn.
type Focuser interface {
	Focus(id int)
}

// Persister writes the store somewhere durable.
type Persister interface {
	Save(*store.Store) error
}

func (c *Controller) Snapshot() Snapshot {
	all := c.store.Tasks()
	visible := filter.Visible(c.store, c.filter)
	return Snapshot{
		Tasks:      copyTasks(all),
		Visible:    copyTasks(visible),
		Filter:     c.filter,
		Filters:    filter.Options(c.filter),
		Total:      store.Total(c.store),
		Remaining:  store.Remaining(c.store),
		Completed:  len(store.Completed(c.store)),
		AllChecked: c.allChecked,
	}
}

// syncAndRender persists the store and then renders. When the save fails the
// render is skipped, so the view never shows state the slot does not hold.
func (c *Controller) syncAndRender() error {
	if err := c.persister.Save(c.store); err != nil {
		c.logger.Error("persist failed", "err", err)
		return err
	}
	c.render()
	return nil
}

func (c *Controller) render() {
	if c.renderer == nil {
		return
	}
	c.renderer.Render(c.Snapshot())
}

func copyTasks(tasks []*model.Task) []model.Task {
	out := make([]model.Task, len(tasks))
	for i, t := range tasks {
		out[i] = *t
	}
	return out
}
