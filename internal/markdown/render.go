package markdown

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/rogersnm/tally/internal/controller"
	"github.com/rogersnm/tally/internal/filter"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	openStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	doneStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Strikethrough(true)
	editingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

func RenderMarkdown(content string) (string, error) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return "", fmt.Errorf("creating renderer: %w", err)
	}
	out, err := r.Render(content)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}

// RenderField draws a "Label: value" line with a dimmed label.
func RenderField(label, value string) string {
	return labelStyle.Render(label+":") + " " + value
}

// RenderText styles a task's text by its state.
func RenderText(text string, completed, editing bool) string {
	switch {
	case editing:
		return editingStyle.Render(text + " (editing)")
	case completed:
		return doneStyle.Render(text)
	default:
		return openStyle.Render(text)
	}
}

// RenderFilters draws the filter bar with the current filter highlighted.
func RenderFilters(opts []filter.Option) string {
	parts := make([]string, len(opts))
	for i, o := range opts {
		label := o.Label
		if o.Selected {
			label = selectedStyle.Render(label)
		}
		parts[i] = label
	}
	return strings.Join(parts, "  ")
}

// ItemsLeft is the footer count, e.g. "1 item left".
func ItemsLeft(n int) string {
	if n == 1 {
		return "1 item left"
	}
	return fmt.Sprintf("%d items left", n)
}

// RenderList draws the whole view for a snapshot: the visible tasks, the
// remaining count and the filter bar.
func RenderList(snap controller.Snapshot) string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render("todos"))
	sb.WriteString("\n")
	sb.WriteString(RenderTaskTable(snap.Visible))
	sb.WriteString("\n")
	footer := []string{ItemsLeft(snap.Remaining), RenderFilters(snap.Filters)}
	if snap.Completed > 0 {
		footer = append(footer, fmt.Sprintf("Clear completed (%d)", snap.Completed))
	}
	sb.WriteString(strings.Join(footer, "   "))
	sb.WriteString("\n")
	return sb.String()
}
