package markdown

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/rogersnm/tally/internal/id"
	"github.com/rogersnm/tally/internal/model"
)

var (
	headerRowStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	cellStyle      = lipgloss.NewStyle()
)

func RenderTaskTable(tasks []model.Task) string {
	if len(tasks) == 0 {
		return "No todos."
	}
	rows := make([][]string, len(tasks))
	for i, t := range tasks {
		check := "[ ]"
		if t.Completed {
			check = "[x]"
		}
		rows[i] = []string{id.Format(t.ID), check, RenderText(t.Text, t.Completed, t.Editing)}
	}
	return renderTable([]string{"ID", "Done", "Todo"}, rows)
}

func renderTable(headers []string, rows [][]string) string {
	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("8"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerRowStyle
			}
			return cellStyle
		})
	return t.Render()
}
