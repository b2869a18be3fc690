package markdown

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"
)

// Exports are always written with "---" fences, so imports only accept those
// and decode with the same yaml package that encoded them.
var yamlFence = frontmatter.NewFormat("---", "---", yaml.Unmarshal)

// decodeChecklist splits an export into its header and its markdown body. A
// file without a header is all body.
func decodeChecklist(r io.Reader) (ChecklistMeta, string, error) {
	var meta ChecklistMeta
	body, err := frontmatter.Parse(r, &meta, yamlFence)
	if err != nil {
		return meta, "", fmt.Errorf("parsing checklist header: %w", err)
	}
	return meta, strings.TrimSpace(string(body)), nil
}

// encodeChecklist writes meta as a fenced YAML header followed by body.
func encodeChecklist(meta ChecklistMeta, body string) ([]byte, error) {
	header, err := yaml.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("marshaling checklist header: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(header)
	buf.WriteString("---\n")
	if body != "" {
		buf.WriteString("\n")
		buf.WriteString(body)
		if !strings.HasSuffix(body, "\n") {
			buf.WriteString("\n")
		}
	}
	return buf.Bytes(), nil
}
