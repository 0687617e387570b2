package gantt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdwbs/wbs/internal/model"
	"github.com/mdwbs/wbs/internal/view"
)

func TestBuild_BarSpansStartToEnd(t *testing.T) {
	n := model.NewNode("Task", 1)
	n.Start = "2026-03-02"
	n.End = "2026-03-04"

	rows := []view.DisplayRow{{Node: n}}
	start, _ := model.ParseDate("2026-03-01")
	end, _ := model.ParseDate("2026-03-06")
	today, _ := model.ParseDate("2026-03-01")

	g := Build(rows, model.ScaleDay, 2, start, end, nil, today, -1)

	require.Len(t, g.Rows, 1)
	barCols := 0
	for _, c := range g.Rows[0].Cells {
		if c.IsBar {
			barCols++
		}
	}
	assert.Equal(t, 3, barCols)
}

func TestBuild_MilestoneSingleColumn(t *testing.T) {
	n := model.NewNode("Launch", 1)
	n.Milestone = true
	n.Start = "2026-03-03"
	n.End = "2026-03-03"

	rows := []view.DisplayRow{{Node: n}}
	start, _ := model.ParseDate("2026-03-01")
	end, _ := model.ParseDate("2026-03-06")

	g := Build(rows, model.ScaleDay, 2, start, end, nil, start, -1)

	milestoneCols := 0
	for _, c := range g.Rows[0].Cells {
		if c.IsMilestone {
			milestoneCols++
		}
	}
	assert.Equal(t, 1, milestoneCols)
}

func TestBuild_TodayLineMarksColumn(t *testing.T) {
	start, _ := model.ParseDate("2026-03-01")
	end, _ := model.ParseDate("2026-03-06")
	today, _ := model.ParseDate("2026-03-03")

	g := Build(nil, model.ScaleDay, 2, start, end, nil, today, -1)

	assert.Equal(t, 2, g.TodayCol)
}

func TestBuild_WeekendShadingOnlyAtDayScale(t *testing.T) {
	n := model.NewNode("Task", 1)
	n.Start = "2026-03-02"
	n.End = "2026-03-02"
	rows := []view.DisplayRow{{Node: n}}
	start, _ := model.ParseDate("2026-03-01") // Sunday
	end, _ := model.ParseDate("2026-03-07")

	g := Build(rows, model.ScaleDay, 2, start, end, nil, start, -1)

	assert.True(t, g.Rows[0].Cells[0].Weekend)
}

func TestBuild_HolidayShading(t *testing.T) {
	n := model.NewNode("Task", 1)
	rows := []view.DisplayRow{{Node: n}}
	start, _ := model.ParseDate("2026-12-24")
	end, _ := model.ParseDate("2026-12-26")
	holidays := map[string]bool{"2026-12-25": true}

	g := Build(rows, model.ScaleDay, 2, start, end, holidays, start, -1)

	assert.False(t, g.Rows[0].Cells[0].Holiday)
	assert.True(t, g.Rows[0].Cells[1].Holiday)
}

func TestLayoutBar_ProgressFillsFromLeftEdge(t *testing.T) {
	n := model.NewNode("Task", 1)
	n.Start = "2026-03-01"
	n.End = "2026-03-04" // 4-day bar
	n.Progress = 50

	rows := []view.DisplayRow{{Node: n}}
	start, _ := model.ParseDate("2026-03-01")
	end, _ := model.ParseDate("2026-03-04")

	g := Build(rows, model.ScaleDay, 2, start, end, nil, start, -1)

	require.Len(t, g.Rows[0].Cells, 4)
	assert.Equal(t, '█', g.Rows[0].Cells[0].Glyph)
	assert.Equal(t, '█', g.Rows[0].Cells[1].Glyph)
	assert.Equal(t, '░', g.Rows[0].Cells[2].Glyph)
	assert.Equal(t, '░', g.Rows[0].Cells[3].Glyph)
}

func TestLayoutBar_ZeroProgressIsEntirelyUnfilled(t *testing.T) {
	n := model.NewNode("Task", 1)
	n.Start = "2026-03-01"
	n.End = "2026-03-02"

	rows := []view.DisplayRow{{Node: n}}
	start, _ := model.ParseDate("2026-03-01")
	end, _ := model.ParseDate("2026-03-02")

	g := Build(rows, model.ScaleDay, 2, start, end, nil, start, -1)

	for _, c := range g.Rows[0].Cells {
		assert.Equal(t, '░', c.Glyph)
	}
}

func TestBuild_CursorRowMarksOnlyThatRow(t *testing.T) {
	a := model.NewNode("A", 1)
	b := model.NewNode("B", 1)
	rows := []view.DisplayRow{{Node: a}, {Node: b}}
	start, _ := model.ParseDate("2026-03-01")
	end, _ := model.ParseDate("2026-03-02")

	g := Build(rows, model.ScaleDay, 2, start, end, nil, start, 1)

	assert.False(t, g.Rows[0].Cursor)
	assert.True(t, g.Rows[1].Cursor)
}

func TestBuild_CursorRowNegativeOneMeansNoHighlight(t *testing.T) {
	a := model.NewNode("A", 1)
	rows := []view.DisplayRow{{Node: a}}
	start, _ := model.ParseDate("2026-03-01")
	end, _ := model.ParseDate("2026-03-02")

	g := Build(rows, model.ScaleDay, 2, start, end, nil, start, -1)

	assert.False(t, g.Rows[0].Cursor)
}

func TestBuild_DependencyHueCuesSuccessorsLeftEdge(t *testing.T) {
	pred := model.NewNode("Design", 1)
	pred.Start = "2026-03-01"
	pred.End = "2026-03-02"

	succ := model.NewNode("Build", 1)
	succ.Start = "2026-03-03"
	succ.End = "2026-03-04"
	succ.Depends = []string{"Design"}

	rows := []view.DisplayRow{{Node: pred}, {Node: succ}}
	start, _ := model.ParseDate("2026-03-01")
	end, _ := model.ParseDate("2026-03-04")

	g := Build(rows, model.ScaleDay, 2, start, end, nil, start, -1)

	require.Equal(t, pred.ID, g.Rows[1].Cells[2].DepHue) // col 2 = 2026-03-03, succ's left edge
	assert.Empty(t, g.Rows[0].Cells[0].DepHue)
}
