// Package gantt implements the scale-dependent date-to-column layout
// and overlay passes behind the Table+Gantt view (spec §4.6, C7).
package gantt

import (
	"time"

	"github.com/mdwbs/wbs/internal/model"
	"github.com/mdwbs/wbs/internal/view"
)

// Cell is one (row, column) position in the grid: either empty, part
// of a bar, a milestone marker, or an overlay tint.
type Cell struct {
	Glyph   rune
	IsBar   bool
	IsMilestone bool
	Band    int // banding-overlay stripe index, for alternating row shading
	Weekend bool
	Holiday bool
	Today   bool

	// DepHue, when non-empty, names the predecessor node whose hue this
	// cell (the successor bar's left edge) should borrow (spec §4.5).
	DepHue model.NodeID
}

// Row is one DisplayRow's rendered grid cells, one per date column.
type Row struct {
	Source view.DisplayRow
	Cells  []Cell

	// Cursor marks the row whose node is the table's current cursor,
	// carrying a full-row highlight (spec §4.5 overlay pass 6).
	Cursor bool
}

// Grid is the full Table+Gantt layout for one view: a header of column
// labels plus one Row per display row, all sharing the same date axis.
type Grid struct {
	Scale      model.GanttScale
	ColWidth   int
	Headers    []string
	ColDates   []time.Time // the date each column's left edge represents
	Rows       []Row
	TodayCol   int // -1 if today falls outside the date range
}

// scaleParams describes how one GanttScale advances the date axis.
type scaleParams struct {
	step     func(time.Time) time.Time
	headerFn func(time.Time) string
}

var scaleTable = map[model.GanttScale]scaleParams{
	model.ScaleDay: {
		step:     func(t time.Time) time.Time { return t.AddDate(0, 0, 1) },
		headerFn: func(t time.Time) string { return t.Format("02") },
	},
	model.ScaleWeek: {
		step:     func(t time.Time) time.Time { return t.AddDate(0, 0, 7) },
		headerFn: func(t time.Time) string { return "W" + t.Format("02") },
	},
	model.ScaleMonth: {
		step:     func(t time.Time) time.Time { return t.AddDate(0, 1, 0) },
		headerFn: func(t time.Time) string { return t.Format("Jan") },
	},
	model.ScaleQuarter: {
		step: func(t time.Time) time.Time { return t.AddDate(0, 3, 0) },
		headerFn: func(t time.Time) string {
			q := (int(t.Month())-1)/3 + 1
			return "Q" + string(rune('0'+q))
		},
	},
	model.ScaleYear: {
		step:     func(t time.Time) time.Time { return t.AddDate(1, 0, 0) },
		headerFn: func(t time.Time) string { return t.Format("2006") },
	},
}

// Build lays out rows over a date axis spanning [start, end], at the
// given scale and per-column width, then runs every overlay pass in
// fixed order: banding, weekend, holiday, today-line, milestone-line,
// cursor-row (spec §4.5 "overlays are applied in this order"), plus the
// dependency-hue cue described alongside the bar-glyph rules. cursorRow
// is the index into rows of the table's current cursor, or -1 if none.
func Build(rows []view.DisplayRow, scale model.GanttScale, colWidth int, start, end time.Time, holidays map[string]bool, today time.Time, cursorRow int) Grid {
	params, ok := scaleTable[scale]
	if !ok {
		params = scaleTable[model.ScaleDay]
	}

	var colDates []time.Time
	for t := start; !t.After(end); t = params.step(t) {
		colDates = append(colDates, t)
	}
	if len(colDates) == 0 {
		colDates = []time.Time{start}
	}

	headers := make([]string, len(colDates))
	for i, d := range colDates {
		headers[i] = params.headerFn(d)
	}

	g := Grid{Scale: scale, ColWidth: colWidth, Headers: headers, ColDates: colDates, TodayCol: -1}

	for _, r := range rows {
		cells := make([]Cell, len(colDates))
		layoutBar(cells, colDates, r.Node)
		g.Rows = append(g.Rows, Row{Source: r, Cells: cells})
	}

	applyBanding(&g)
	applyWeekend(&g, scale)
	applyHoliday(&g, scale, holidays)
	applyTodayLine(&g, today)
	applyMilestoneLine(&g)
	applyDependencyHue(&g)
	applyCursorRow(&g, cursorRow)

	return g
}

// dateToCol maps a date to the index of the column whose span
// contains it, or -1 if it falls outside the axis.
func dateToCol(colDates []time.Time, t time.Time) int {
	for i := len(colDates) - 1; i >= 0; i-- {
		if !colDates[i].After(t) {
			return i
		}
	}
	return -1
}

func layoutBar(cells []Cell, colDates []time.Time, n model.Node) {
	if n.Start == "" {
		return
	}
	start, ok := model.ParseDate(n.Start)
	if !ok {
		return
	}
	end := start
	if n.End != "" {
		if e, ok := model.ParseDate(n.End); ok {
			end = e
		}
	}

	startCol := dateToCol(colDates, start)
	endCol := dateToCol(colDates, end)
	if startCol < 0 {
		startCol = 0
	}
	if endCol < 0 || endCol >= len(cells) {
		endCol = len(cells) - 1
	}

	if n.Milestone {
		col := startCol
		if col >= 0 && col < len(cells) {
			cells[col].IsMilestone = true
			cells[col].Glyph = '◆'
		}
		return
	}

	total := endCol - startCol + 1
	if total < 1 {
		total = 1
	}
	filled := (n.Progress*total + 50) / 100
	if filled > total {
		filled = total
	}
	if filled < 0 {
		filled = 0
	}
	for c := startCol; c <= endCol && c < len(cells) && c >= 0; c++ {
		cells[c].IsBar = true
		if c-startCol < filled {
			cells[c].Glyph = '█'
		} else {
			cells[c].Glyph = '░'
		}
	}
}

// applyBanding alternates a stripe index per row, for alternating-row
// shading in the renderer.
func applyBanding(g *Grid) {
	for i := range g.Rows {
		band := i % 2
		for c := range g.Rows[i].Cells {
			g.Rows[i].Cells[c].Band = band
		}
	}
}

func applyWeekend(g *Grid, scale model.GanttScale) {
	if scale != model.ScaleDay {
		return
	}
	for i, d := range g.ColDates {
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			for r := range g.Rows {
				g.Rows[r].Cells[i].Weekend = true
			}
		}
	}
}

func applyHoliday(g *Grid, scale model.GanttScale, holidays map[string]bool) {
	if scale != model.ScaleDay || len(holidays) == 0 {
		return
	}
	for i, d := range g.ColDates {
		if holidays[model.FormatDate(d)] {
			for r := range g.Rows {
				g.Rows[r].Cells[i].Holiday = true
			}
		}
	}
}

func applyTodayLine(g *Grid, today time.Time) {
	col := dateToCol(g.ColDates, today)
	g.TodayCol = col
	if col < 0 {
		return
	}
	for r := range g.Rows {
		g.Rows[r].Cells[col].Today = true
	}
}

// applyMilestoneLine re-asserts the ◆ glyph on every milestone cell.
// It touches only the milestone's own cell: no rule is drawn through
// the milestone's column in other rows, and weekend/holiday/today
// flags on the cell are left as they are.
func applyMilestoneLine(g *Grid) {
	for r := range g.Rows {
		for c := range g.Rows[r].Cells {
			if g.Rows[r].Cells[c].IsMilestone {
				g.Rows[r].Cells[c].Glyph = '◆'
			}
		}
	}
}

// applyDependencyHue colors the leftmost bar/milestone cell of each
// dependent node with the node id of a predecessor named in its
// Depends list, resolved by title the same way the parser resolves
// Depends entries (spec §4.5: "coloring the successor's left edge to
// match the predecessor's hue").
func applyDependencyHue(g *Grid) {
	rowByTitle := make(map[string]int, len(g.Rows))
	for i, r := range g.Rows {
		rowByTitle[r.Source.Node.Title] = i
	}

	for i := range g.Rows {
		for _, dep := range g.Rows[i].Source.Node.Depends {
			predIdx, ok := rowByTitle[dep]
			if !ok {
				continue
			}
			edge := leftmostBarCol(g.Rows[i].Cells)
			if edge < 0 {
				continue
			}
			g.Rows[i].Cells[edge].DepHue = g.Rows[predIdx].Source.Node.ID
		}
	}
}

func leftmostBarCol(cells []Cell) int {
	for i, c := range cells {
		if c.IsBar || c.IsMilestone {
			return i
		}
	}
	return -1
}

// applyCursorRow marks the row at cursorRow, if any, so the renderer
// can paint a full-row highlight (spec §4.5 overlay pass 6).
func applyCursorRow(g *Grid, cursorRow int) {
	if cursorRow < 0 || cursorRow >= len(g.Rows) {
		return
	}
	g.Rows[cursorRow].Cursor = true
}
