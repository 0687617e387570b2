// Package export renders a project one-way into formats meant for
// sharing outside this tool: a plain Markdown table and a Mermaid
// gantt diagram. Neither format round-trips back into a project — that
// is internal/markdown's job, not this package's.
package export

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/mdwbs/wbs/internal/model"
	"github.com/mdwbs/wbs/internal/view"
)

// MarkdownTable renders rows as a GitHub-flavored Markdown table with
// one column per entry in columns, indenting the title column to show
// hierarchy depth the way internal/render's terminal table does.
func MarkdownTable(rows []view.DisplayRow, columns []model.ColumnDef) string {
	var b strings.Builder

	headers := make([]string, len(columns))
	for i, c := range columns {
		headers[i] = c.Name
	}
	b.WriteString("| " + strings.Join(headers, " | ") + " |\n")
	b.WriteString("|" + strings.Repeat(" --- |", len(columns)) + "\n")

	for _, r := range rows {
		cells := make([]string, len(columns))
		for i, c := range columns {
			cells[i] = tableCell(r, c.ID)
		}
		b.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}

	return b.String()
}

func tableCell(r view.DisplayRow, column string) string {
	n := r.Node
	switch column {
	case "title":
		return strings.Repeat("&nbsp;&nbsp;", r.Depth) + escapePipe(n.Title)
	case "status":
		return string(n.Status)
	case "priority":
		return string(n.Priority)
	case "assignee":
		return n.Assignee
	case "duration":
		return n.Duration
	case "start":
		return n.Start
	case "end":
		return n.End
	case "progress":
		return strconv.Itoa(n.Progress) + "%"
	case "depends":
		return escapePipe(strings.Join(n.Depends, ", "))
	case "milestone":
		if n.Milestone {
			return "◆"
		}
		return ""
	case "memo":
		return escapePipe(firstLine(string(n.Memo)))
	case "file":
		return n.SourceFile
	default:
		v, _ := n.CustomValue(column)
		return escapePipe(v)
	}
}

func escapePipe(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// Mermaid renders rows as a Mermaid gantt diagram. dateFormat must
// match what every row's Start/End already use (spec's YYYY-MM-DD).
func Mermaid(title string, rows []view.DisplayRow) string {
	var b strings.Builder
	b.WriteString("gantt\n")
	b.WriteString(fmt.Sprintf("    title %s\n", title))
	b.WriteString("    dateFormat YYYY-MM-DD\n")

	section := ""
	for _, r := range rows {
		n := r.Node
		if r.Depth == 0 {
			if n.Title != section {
				section = n.Title
				b.WriteString(fmt.Sprintf("    section %s\n", mermaidEscape(section)))
			}
			continue
		}
		if n.Start == "" {
			continue
		}
		b.WriteString(fmt.Sprintf("    %s :", mermaidEscape(n.Title)))

		var tags []string
		if n.Status == model.StatusDone {
			tags = append(tags, "done")
		} else if n.Status == model.StatusInProgress {
			tags = append(tags, "active")
		}
		if n.Milestone {
			tags = append(tags, "milestone")
		}
		if len(tags) > 0 {
			b.WriteString(strings.Join(tags, ", ") + ", ")
		}

		end := n.End
		if end == "" {
			end = n.Start
		}
		b.WriteString(fmt.Sprintf("%s, %s\n", n.Start, end))
	}

	return b.String()
}

func mermaidEscape(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, ":", "-"), "\n", " ")
}

// MemoPreview renders a node's memo as styled terminal text via
// glamour, for `wbs export --preview`. It never touches the writer's
// structural grammar — this is a read-only, free-text rendering of a
// single memo.
func MemoPreview(memo []byte, wordWrap int) (string, error) {
	if len(memo) == 0 {
		return "", nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wordWrap),
	)
	if err != nil {
		return "", fmt.Errorf("build memo renderer: %w", err)
	}
	out, err := r.RenderBytes(memo)
	if err != nil {
		return "", fmt.Errorf("render memo: %w", err)
	}
	return string(out), nil
}
