// Package app is the composition root: it owns the store, the controller and
// the route listener for one session.
package app

import (
	"fmt"
	"log/slog"

	"github.com/rogersnm/tally/internal/controller"
	"github.com/rogersnm/tally/internal/persist"
	"github.com/rogersnm/tally/internal/route"
	"github.com/rogersnm/tally/internal/store"
)

type App struct {
	Store      *store.Store
	Adapter    *persist.Adapter
	Controller *controller.Controller
	Routes     *route.Listener
}

// New hydrates a store from the slot and wires the controller to it. A
// corrupt snapshot is returned as a *persist.DecodeError and no App is built.
func New(slot persist.Slot, key string, r controller.Renderer, logger *slog.Logger) (*App, error) {
	adapter := persist.NewAdapter(slot, key)
	tasks, err := adapter.Load()
	if err != nil {
		return nil, fmt.Errorf("hydrating store: %w", err)
	}
	s := store.New(tasks)
	c := controller.New(s, adapter, r, logger)
	return &App{
		Store:      s,
		Adapter:    adapter,
		Controller: c,
		Routes:     route.NewListener(c),
	}, nil
}
