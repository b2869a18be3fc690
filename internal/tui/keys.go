package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up             key.Binding
	Down           key.Binding
	New            key.Binding
	Edit           key.Binding
	Toggle         key.Binding
	ToggleAll      key.Binding
	Destroy        key.Binding
	ClearCompleted key.Binding
	CycleFilter    key.Binding
	All            key.Binding
	Active         key.Binding
	Completed      key.Binding
	Copy           key.Binding
	Help           key.Binding
	Quit           key.Binding

	Submit key.Binding
	Cancel key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:             key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑/k", "up")),
		Down:           key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↓/j", "down")),
		New:            key.NewBinding(key.WithKeys("n", "a"), key.WithHelp("n", "new")),
		Edit:           key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
		Toggle:         key.NewBinding(key.WithKeys("x", " "), key.WithHelp("x", "toggle")),
		ToggleAll:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toggle all")),
		Destroy:        key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		ClearCompleted: key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "clear completed")),
		CycleFilter:    key.NewBinding(key.WithKeys("f", "tab"), key.WithHelp("f", "next filter")),
		All:            key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "all")),
		Active:         key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "active")),
		Completed:      key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "completed")),
		Copy:           key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy")),
		Help:           key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:           key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.New, k.Edit, k.Toggle, k.Destroy, k.CycleFilter, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.New, k.Edit},
		{k.Toggle, k.ToggleAll, k.Destroy, k.ClearCompleted},
		{k.CycleFilter, k.All, k.Active, k.Completed},
		{k.Copy, k.Help, k.Quit},
	}
}
