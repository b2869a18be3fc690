// Package tui is the interactive front end. The Model decodes key presses
// into controller intents and doubles as the controller's renderer.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rogersnm/tally/internal/controller"
	"github.com/rogersnm/tally/internal/markdown"
	"github.com/rogersnm/tally/internal/model"
	"github.com/rogersnm/tally/internal/route"
	"github.com/rogersnm/tally/internal/store"
)

type mode int

const (
	modeList mode = iota
	modeNew
	modeEdit
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).MarginBottom(1)
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).MarginTop(1)
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

type Model struct {
	ctrl   *controller.Controller
	routes *route.Listener

	snap   controller.Snapshot
	cursor int
	mode   mode
	editID int

	input   textinput.Model
	keys    keyMap
	help    help.Model
	focused tea.Cmd

	status    string
	statusErr bool

	copyText func(string) error
}

var _ controller.Renderer = (*Model)(nil)
var _ controller.Focuser = (*Model)(nil)

// New builds the UI and registers it as the controller's renderer.
func New(c *controller.Controller, routes *route.Listener) *Model {
	ti := textinput.New()
	ti.Placeholder = "What needs to be done?"
	ti.CharLimit = 256
	ti.Width = 50

	m := &Model{
		ctrl:     c,
		routes:   routes,
		input:    ti,
		keys:     defaultKeyMap(),
		help:     help.New(),
		copyText: clipboard.WriteAll,
	}
	c.SetRenderer(m)
	c.Render()
	return m
}

func Run(c *controller.Controller, routes *route.Listener) error {
	_, err := tea.NewProgram(New(c, routes), tea.WithAltScreen()).Run()
	return err
}

// Render stores the snapshot for View. Bubbletea redraws after Update returns.
func (m *Model) Render(s controller.Snapshot) {
	m.snap = s
	if m.cursor >= len(s.Visible) {
		m.cursor = len(s.Visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Focus opens the edit field for id, pre-filled with the task's text.
func (m *Model) Focus(id int) {
	for _, t := range m.snap.Tasks {
		if t.ID == id {
			m.mode = modeEdit
			m.editID = id
			m.input.SetValue(t.Text)
			m.input.CursorEnd()
			m.focused = m.input.Focus()
			return
		}
	}
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.input.Width = max(20, msg.Width-8)
	case tea.KeyMsg:
		if m.mode != modeList {
			return m, m.updateInput(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m *Model) updateInput(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		if m.mode == modeEdit {
			m.dispatch(controller.CancelEdit(m.editID))
		}
		m.leaveInput()
		return nil
	case key.Matches(msg, m.keys.Submit):
		creating := m.mode == modeNew
		var err error
		if creating {
			err = m.dispatch(controller.SubmitNew(m.input.Value()))
		} else {
			err = m.dispatch(controller.SubmitEdit(m.editID, m.input.Value()))
		}
		if err != nil {
			return nil
		}
		m.leaveInput()
		m.editID = 0
		if creating && len(m.snap.Visible) > 0 {
			m.cursor = len(m.snap.Visible) - 1
		}
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.snap.Visible)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.New):
		m.mode = modeNew
		m.editID = 0
		m.input.Reset()
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.Edit):
		if t, ok := m.selected(); ok {
			m.dispatch(controller.StartEdit(t.ID))
			cmd := m.focused
			m.focused = nil
			return m, cmd
		}
	case key.Matches(msg, m.keys.Toggle):
		if t, ok := m.selected(); ok {
			m.dispatch(controller.SetCompleted(t.ID, !t.Completed))
		}
	case key.Matches(msg, m.keys.ToggleAll):
		m.dispatch(controller.ToggleAll())
	case key.Matches(msg, m.keys.Destroy):
		if t, ok := m.selected(); ok {
			m.dispatch(controller.Destroy(t.ID))
		}
	case key.Matches(msg, m.keys.ClearCompleted):
		m.dispatch(controller.ClearCompleted())
	case key.Matches(msg, m.keys.CycleFilter):
		m.routes.Cycle()
	case key.Matches(msg, m.keys.All):
		m.routes.Navigate("#/")
	case key.Matches(msg, m.keys.Active):
		m.routes.Navigate("#/active")
	case key.Matches(msg, m.keys.Completed):
		m.routes.Navigate("#/completed")
	case key.Matches(msg, m.keys.Copy):
		m.copyVisible()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m *Model) dispatch(in controller.Intent) error {
	err := m.ctrl.Dispatch(in)
	switch {
	case err == nil:
	case errors.Is(err, store.ErrEmptyText):
		m.setStatus("text is empty", false)
	default:
		m.setStatus(err.Error(), true)
	}
	return err
}

func (m *Model) leaveInput() {
	m.mode = modeList
	m.input.Blur()
	m.input.Reset()
}

func (m *Model) selected() (model.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(m.snap.Visible) {
		return model.Task{}, false
	}
	return m.snap.Visible[m.cursor], true
}

func (m *Model) copyVisible() {
	if len(m.snap.Visible) == 0 {
		m.setStatus("nothing to copy", false)
		return
	}
	lines := make([]string, len(m.snap.Visible))
	for i, t := range m.snap.Visible {
		lines[i] = t.Text
	}
	if err := m.copyText(strings.Join(lines, "\n")); err != nil {
		m.setStatus("clipboard unavailable: "+err.Error(), true)
		return
	}
	m.setStatus(fmt.Sprintf("copied %d todos", len(lines)), false)
}

func (m *Model) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
}

func (m *Model) View() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("todos"))
	sb.WriteString("\n")

	if m.mode == modeNew {
		sb.WriteString(m.input.View())
		sb.WriteString("\n\n")
	}

	if len(m.snap.Visible) == 0 {
		sb.WriteString("  No todos.\n")
	}
	for i, t := range m.snap.Visible {
		cursor := "  "
		if i == m.cursor && m.mode == modeList {
			cursor = cursorStyle.Render("> ")
		}
		check := "[ ]"
		if t.Completed {
			check = "[x]"
		}
		text := markdown.RenderText(t.Text, t.Completed, false)
		if m.mode == modeEdit && t.ID == m.editID {
			text = m.input.View()
		}
		fmt.Fprintf(&sb, "%s%s %s\n", cursor, check, text)
	}

	footer := []string{markdown.ItemsLeft(m.snap.Remaining), markdown.RenderFilters(m.snap.Filters)}
	if m.snap.Completed > 0 {
		footer = append(footer, fmt.Sprintf("C: clear completed (%d)", m.snap.Completed))
	}
	sb.WriteString(footerStyle.Render(strings.Join(footer, "   ")))
	sb.WriteString("\n")

	if m.status != "" {
		style := warnStyle
		if m.statusErr {
			style = errStyle
		}
		sb.WriteString(style.Render(m.status))
		sb.WriteString("\n")
	}
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}
