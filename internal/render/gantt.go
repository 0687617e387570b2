package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mdwbs/wbs/internal/gantt"
)

// Gantt renders a gantt.Grid as a fixed-width header line followed by
// one line per row, each cell styled by the overlay flags Build
// computed (spec §4.6).
func Gantt(g gantt.Grid, titleWidth int) string {
	var b strings.Builder

	b.WriteString(strings.Repeat(" ", titleWidth))
	for _, h := range g.Headers {
		b.WriteString(padCenter(h, g.ColWidth))
	}
	b.WriteByte('\n')

	for i, row := range g.Rows {
		title := row.Source.Node.Title
		if len(title) > titleWidth {
			title = title[:titleWidth]
		}
		titleStyle := lipgloss.NewStyle()
		if row.Source.DelayedStart {
			titleStyle = titleStyle.Foreground(ColorWarn).Bold(true)
		}
		if row.Cursor {
			titleStyle = titleStyle.Background(ColorCursor)
		}
		b.WriteString(titleStyle.Render(padRight(title, titleWidth)))

		for _, c := range row.Cells {
			b.WriteString(renderCell(c, g.ColWidth, row.Cursor))
		}
		if i < len(g.Rows)-1 {
			b.WriteByte('\n')
		}
	}

	return b.String()
}

func renderCell(c gantt.Cell, width int, cursor bool) string {
	style := lipgloss.NewStyle()
	switch {
	case c.Today:
		style = style.Background(ColorToday)
	case c.Holiday:
		style = style.Background(ColorHoliday)
	case c.Weekend:
		style = style.Background(ColorWeekend)
	case c.Band == 1:
		style = style.Background(ColorMuted)
	}
	// Cursor-row highlight wins over the other background overlays
	// (spec §4.5 overlay pass 6 runs last).
	if cursor {
		style = style.Background(ColorCursor)
	}

	glyph := " "
	switch {
	case c.IsMilestone:
		glyph = "◆"
		style = style.Foreground(ColorMilestone).Bold(true)
	case c.IsBar:
		glyph = string(c.Glyph)
		style = style.Foreground(ColorAccent)
	}

	if c.DepHue != "" {
		style = style.Foreground(HueColor(string(c.DepHue)))
	}

	return style.Render(padCenter(glyph, width))
}

func padCenter(s string, width int) string {
	if width <= len(s) {
		return s
	}
	total := width - len(s)
	left := total / 2
	right := total - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// ScaleLabel returns a human label for a scale, used in a status bar
// ("Scale: Week").
func ScaleLabel(level int) string {
	if level <= 0 {
		return "unlimited"
	}
	return strconv.Itoa(level)
}
