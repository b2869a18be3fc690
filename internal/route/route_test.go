package route

import (
	"testing"

	"github.com/rogersnm/tally/internal/filter"
	"github.com/stretchr/testify/assert"
)

type fakeTarget struct {
	calls []filter.Selector
}

func (f *fakeTarget) SetFilter(s filter.Selector) {
	f.calls = append(f.calls, s)
}

func TestNavigate(t *testing.T) {
	cases := []struct {
		fragment string
		want     filter.Selector
	}{
		{"", filter.All},
		{"#/", filter.All},
		{"#/active", filter.Active},
		{"#/completed", filter.Completed},
		{"#/bogus", filter.All},
	}
	for _, tc := range cases {
		target := &fakeTarget{}
		l := NewListener(target)
		got := l.Navigate(tc.fragment)
		assert.Equal(t, tc.want, got, tc.fragment)
		assert.Equal(t, []filter.Selector{tc.want}, target.calls)
		assert.Equal(t, tc.fragment, l.Fragment())
	}
}

func TestStart_EmptyFragmentDoesNothing(t *testing.T) {
	target := &fakeTarget{}
	NewListener(target).Start("")
	assert.Empty(t, target.calls)
}

func TestStart_WithFragment(t *testing.T) {
	target := &fakeTarget{}
	NewListener(target).Start("#/completed")
	assert.Equal(t, []filter.Selector{filter.Completed}, target.calls)
}

func TestCycle(t *testing.T) {
	target := &fakeTarget{}
	l := NewListener(target)
	assert.Equal(t, "#/active", l.Cycle())
	assert.Equal(t, "#/completed", l.Cycle())
	assert.Equal(t, "#/", l.Cycle())
	assert.Equal(t, []filter.Selector{filter.Active, filter.Completed, filter.All}, target.calls)
}
