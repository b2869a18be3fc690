package markdown

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/rogersnm/tally/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecklistBody(t *testing.T) {
	body := ChecklistBody([]model.Task{
		{ID: 1, Text: "buy milk"},
		{ID: 2, Text: "walk\n dog", Completed: true},
	})
	assert.Equal(t, "- [ ] buy milk\n- [x] walk dog\n", body)
}

func TestExportParse_RoundTrip(t *testing.T) {
	exported := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	tasks := []model.Task{
		{ID: 1, Text: "buy milk"},
		{ID: 2, Text: "walk dog", Completed: true},
		{ID: 5, Text: "call mum"},
	}
	data, err := ExportChecklist(ChecklistMeta{Key: "todos", Total: 3, Remaining: 2, ExportedAt: exported}, tasks)
	require.NoError(t, err)

	meta, items, err := ParseChecklist(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "todos", meta.Key)
	assert.Equal(t, 3, meta.Total)
	assert.True(t, exported.Equal(meta.ExportedAt))
	assert.Equal(t, []Item{
		{Text: "buy milk"},
		{Text: "walk dog", Completed: true},
		{Text: "call mum"},
	}, items)
}

func TestParseChecklist_IgnoresOtherLines(t *testing.T) {
	input := `# Groceries

Some notes.

- [X] eggs
* [ ] bread
- plain bullet
- [?] unknown
- [ ]
  - [ ] nested counts too
`
	_, items, err := ParseChecklist(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []Item{
		{Text: "eggs", Completed: true},
		{Text: "bread"},
		{Text: "nested counts too"},
	}, items)
}
