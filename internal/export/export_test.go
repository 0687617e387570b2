package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdwbs/wbs/internal/model"
	"github.com/mdwbs/wbs/internal/view"
)

func row(n model.Node, depth int) view.DisplayRow {
	return view.DisplayRow{Node: n, Depth: depth, Group: string(n.Status)}
}

func TestMarkdownTable_RendersHeaderAndIndentedRows(t *testing.T) {
	phase := model.NewNode("Phase 1", 1)
	task := model.NewNode("Task A", 2)
	task.Assignee = "grace"
	task.Progress = 50

	columns := []model.ColumnDef{{ID: "title", Name: "Title"}, {ID: "progress", Name: "Progress"}}
	out := MarkdownTable([]view.DisplayRow{row(phase, 0), row(task, 1)}, columns)

	require.Contains(t, out, "| Title | Progress |")
	assert.Contains(t, out, "Phase 1")
	assert.Contains(t, out, "&nbsp;&nbsp;Task A")
	assert.Contains(t, out, "50%")
}

func TestMarkdownTable_EscapesPipesInTitle(t *testing.T) {
	n := model.NewNode("A | B", 1)
	out := MarkdownTable([]view.DisplayRow{row(n, 0)}, []model.ColumnDef{{ID: "title", Name: "Title"}})
	assert.Contains(t, out, "A \\| B")
}

func TestMermaid_SectionsFromRootsTasksFromChildren(t *testing.T) {
	phase := model.NewNode("Build", 1)
	task := model.NewNode("Write code", 2)
	task.Start = "2026-01-01"
	task.End = "2026-01-10"
	task.Status = model.StatusInProgress

	out := Mermaid("Release plan", []view.DisplayRow{row(phase, 0), row(task, 1)})

	assert.Contains(t, out, "gantt\n")
	assert.Contains(t, out, "section Build")
	assert.Contains(t, out, "Write code :active, 2026-01-01, 2026-01-10")
}

func TestMermaid_MilestoneUsesSameStartEnd(t *testing.T) {
	phase := model.NewNode("Launch", 1)
	milestone := model.NewNode("Ship it", 2)
	milestone.Milestone = true
	milestone.Start = "2026-03-01"

	out := Mermaid("Plan", []view.DisplayRow{row(phase, 0), row(milestone, 1)})
	assert.Contains(t, out, "Ship it :milestone, 2026-03-01, 2026-03-01")
}

func TestMemoPreview_EmptyMemoReturnsEmptyString(t *testing.T) {
	out, err := MemoPreview(nil, 80)
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestMemoPreview_RendersNonEmptyMemo(t *testing.T) {
	out, err := MemoPreview([]byte("# Notes\n\nSome memo text."), 80)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
