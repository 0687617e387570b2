package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/mdwbs/wbs/internal/model"
	"github.com/mdwbs/wbs/internal/view"
)

// Table styles, grounded on the teacher's internal/ui table style set.
var (
	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorAccent).
				Align(lipgloss.Center)

	TableWarningStyle = lipgloss.NewStyle().Foreground(ColorWarn)
	TableSuccessStyle = lipgloss.NewStyle().Foreground(ColorPass)
	TableHintStyle    = lipgloss.NewStyle().Foreground(ColorMuted)
	TableBorderStyle  = lipgloss.NewStyle().Foreground(ColorMuted)

	delayedStyle = lipgloss.NewStyle().Foreground(ColorWarn).Bold(true)
)

// NewBorderedTable creates a table with the shared border/width
// styling every view in this package uses.
func NewBorderedTable(width int) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(TableBorderStyle).
		Width(width)
}

// Table renders rows as a lipgloss table with one column per entry in
// columns.
func Table(rows []view.DisplayRow, columns []model.ColumnDef, width int) string {
	t := NewBorderedTable(width)

	headers := make([]string, len(columns))
	for i, c := range columns {
		headers[i] = c.Name
	}
	t.Headers(headers...)

	for _, r := range rows {
		cells := make([]string, len(columns))
		for i, c := range columns {
			cells[i] = cellText(r, c.ID)
		}
		t.Row(cells...)
	}

	t.StyleFunc(func(row, col int) lipgloss.Style {
		if row == table.HeaderRow {
			return TableHeaderStyle
		}
		if row-1 < len(rows) && rows[row-1].DelayedStart {
			return delayedStyle
		}
		return lipgloss.NewStyle()
	})

	return t.Render()
}

func cellText(r view.DisplayRow, column string) string {
	n := r.Node
	switch column {
	case "title":
		return strings.Repeat("  ", r.Depth) + n.Title
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
		return fmt.Sprintf("%d%%", n.Progress)
	case "depends":
		return strings.Join(n.Depends, ", ")
	case "milestone":
		if n.Milestone {
			return "◆"
		}
		return ""
	case "memo":
		return firstLine(string(n.Memo))
	case "file":
		return n.SourceFile
	default:
		v, _ := n.CustomValue(column)
		return v
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
