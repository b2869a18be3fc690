package markdown

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rogersnm/tally/internal/model"
)

// ChecklistMeta is the frontmatter of an exported list.
type ChecklistMeta struct {
	Key        string    `yaml:"key"`
	Total      int       `yaml:"total"`
	Remaining  int       `yaml:"remaining"`
	ExportedAt time.Time `yaml:"exported_at"`
}

// Item is one checklist line read back from an export.
type Item struct {
	Text      string
	Completed bool
}

// ChecklistBody renders tasks as a markdown task list.
func ChecklistBody(tasks []model.Task) string {
	var sb strings.Builder
	for _, t := range tasks {
		box := "[ ]"
		if t.Completed {
			box = "[x]"
		}
		text := strings.Join(strings.Fields(t.Text), " ")
		fmt.Fprintf(&sb, "- %s %s\n", box, text)
	}
	return sb.String()
}

func ExportChecklist(meta ChecklistMeta, tasks []model.Task) ([]byte, error) {
	return encodeChecklist(meta, ChecklistBody(tasks))
}

// ParseChecklist reads an exported list. Lines that are not task list items
// are ignored, as are items with no text.
func ParseChecklist(r io.Reader) (ChecklistMeta, []Item, error) {
	meta, body, err := decodeChecklist(r)
	if err != nil {
		return meta, nil, err
	}

	var items []Item
	sc := bufio.NewScanner(strings.NewReader(body))
	for sc.Scan() {
		if it, ok := parseItem(sc.Text()); ok {
			items = append(items, it)
		}
	}
	if err := sc.Err(); err != nil {
		return meta, nil, fmt.Errorf("reading checklist: %w", err)
	}
	return meta, items, nil
}

func parseItem(line string) (Item, bool) {
	l := strings.TrimSpace(line)
	if !strings.HasPrefix(l, "- ") && !strings.HasPrefix(l, "* ") {
		return Item{}, false
	}
	l = strings.TrimSpace(l[2:])
	if len(l) < 3 || l[0] != '[' || l[2] != ']' {
		return Item{}, false
	}
	var done bool
	switch l[1] {
	case ' ':
	case 'x', 'X':
		done = true
	default:
		return Item{}, false
	}
	text := strings.TrimSpace(l[3:])
	if text == "" {
		return Item{}, false
	}
	return Item{Text: text, Completed: done}, true
}
