package route

import "github.com/rogersnm/tally/internal/filter"

// Target receives filter changes. controller.Controller satisfies it.
type Target interface {
	SetFilter(filter.Selector)
}

// Listener turns route fragments such as "#/active" into filter changes.
type Listener struct {
	target   Target
	fragment string
}

func NewListener(t Target) *Listener {
	return &Listener{target: t}
}

// Navigate records fragment and applies the filter it names. Unknown
// fragments select All. Filter changes re-render but are never persisted.
func (l *Listener) Navigate(fragment string) filter.Selector {
	l.fragment = fragment
	sel := filter.FromFragment(fragment)
	l.target.SetFilter(sel)
	return sel
}

// Start applies an initial fragment, if there is one.
func (l *Listener) Start(fragment string) {
	if fragment == "" {
		return
	}
	l.Navigate(fragment)
}

// Cycle moves to the next filter and returns its fragment.
func (l *Listener) Cycle() string {
	next := filter.Next(filter.FromFragment(l.fragment)).Fragment()
	l.Navigate(next)
	return next
}

func (l *Listener) Fragment() string {
	return l.fragment
}
