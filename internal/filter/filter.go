package filter

import (
	"strings"

	"github.com/rogersnm/tally/internal/model"
	"github.com/rogersnm/tally/internal/store"
)

// Selector names one of the fixed view filters.
type Selector string

const (
	All       Selector = "all"
	Active    Selector = "active"
	Completed Selector = "completed"
)

type Predicate func(*model.Task) bool

// Option describes a filter for display, with Selected marking the current one.
type Option struct {
	Selector Selector
	Slug     string
	Label    string
	Selected bool
}

var options = []Option{
	{Selector: All, Slug: "", Label: "All"},
	{Selector: Active, Slug: "active", Label: "Active"},
	{Selector: Completed, Slug: "completed", Label: "Completed"},
}

var predicates = map[Selector]Predicate{
	All:       func(*model.Task) bool { return true },
	Active:    func(t *model.Task) bool { return !t.Completed },
	Completed: func(t *model.Task) bool { return t.Completed },
}

// Resolve returns the predicate for sel. Unknown selectors behave like All.
func Resolve(sel Selector) Predicate {
	if p, ok := predicates[sel]; ok {
		return p
	}
	return predicates[All]
}

// Visible returns the tasks matching sel in store order.
func Visible(s *store.Store, sel Selector) []*model.Task {
	pred := Resolve(sel)
	var out []*model.Task
	for _, t := range s.Tasks() {
		if pred(t) {
			out = append(out, t)
		}
	}
	return out
}

// Options lists every filter, tagging the one equal to current.
func Options(current Selector) []Option {
	out := make([]Option, len(options))
	for i, o := range options {
		o.Selected = o.Selector == current
		out[i] = o
	}
	return out
}

func (s Selector) Slug() string {
	return s.option().Slug
}

func (s Selector) Label() string {
	return s.option().Label
}

func (s Selector) option() Option {
	for _, o := range options {
		if o.Selector == s {
			return o
		}
	}
	return options[0]
}

// Fragment is the route fragment that selects s, e.g. "#/active".
func (s Selector) Fragment() string {
	return "#/" + s.Slug()
}

// FromSlug maps a route slug to its selector. Anything unrecognised is All.
func FromSlug(slug string) Selector {
	for _, o := range options {
		if o.Slug == slug {
			return o.Selector
		}
	}
	return All
}

// FromFragment accepts "", "#", "#/", "#/active", "/active" and "active" forms.
func FromFragment(fragment string) Selector {
	f := strings.TrimSpace(fragment)
	f = strings.TrimPrefix(f, "#")
	f = strings.TrimPrefix(f, "/")
	return FromSlug(f)
}

// Next cycles All -> Active -> Completed -> All.
func Next(s Selector) Selector {
	for i, o := range options {
		if o.Selector == s {
			return options[(i+1)%len(options)].Selector
		}
	}
	return All
}
