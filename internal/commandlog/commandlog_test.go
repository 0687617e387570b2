package commandlog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdwbs/wbs/internal/model"
)

func newProject() model.Project {
	root := model.NewNode("Root", 1)
	root.SourceFile = "x.wbs.md"
	return model.Project{Documents: []model.Document{{Path: "x.wbs.md", Roots: []model.Node{root}}}}
}

func TestAddChild_ThenUndo(t *testing.T) {
	proj := newProject()
	log := New()
	rootID := proj.Documents[0].Roots[0].ID

	next, err := log.Do(proj, &AddChild{ParentID: rootID, Title: "Child"})
	require.NoError(t, err)
	require.Len(t, next.Documents[0].Roots[0].Children, 1)
	assert.Equal(t, "Child", next.Documents[0].Roots[0].Children[0].Title)

	back, err := log.Undo(next)
	require.NoError(t, err)
	assert.Len(t, back.Documents[0].Roots[0].Children, 0)
}

func TestSetField_StatusThenUndo(t *testing.T) {
	proj := newProject()
	log := New()
	rootID := proj.Documents[0].Roots[0].ID

	next, err := log.Do(proj, &SetField{ID: rootID, Field: "status", Value: "DONE"})
	require.NoError(t, err)
	assert.Equal(t, model.StatusDone, next.Documents[0].Roots[0].Status)

	back, err := log.Undo(next)
	require.NoError(t, err)
	assert.Equal(t, model.StatusTodo, back.Documents[0].Roots[0].Status)
}

func TestSetField_ProgressRejectedOnParent(t *testing.T) {
	proj := newProject()
	rootID := proj.Documents[0].Roots[0].ID
	proj.Documents[0].Roots[0].Children = []model.Node{model.NewNode("Child", 2)}

	log := New()
	_, err := log.Do(proj, &SetField{ID: rootID, Field: "progress", Value: "50"})
	assert.ErrorIs(t, err, model.ErrComputedField)
}

func TestDelete_ThenUndoRestoresSubtree(t *testing.T) {
	proj := newProject()
	log := New()
	child := model.NewNode("Child", 2)
	proj.Documents[0].Roots[0].Children = []model.Node{child}

	next, err := log.Do(proj, &Delete{ID: child.ID})
	require.NoError(t, err)
	assert.Len(t, next.Documents[0].Roots[0].Children, 0)

	back, err := log.Undo(next)
	require.NoError(t, err)
	require.Len(t, back.Documents[0].Roots[0].Children, 1)
	assert.Equal(t, "Child", back.Documents[0].Roots[0].Children[0].Title)
}

func TestRenameTitle_RewritesDependents(t *testing.T) {
	a := model.NewNode("Design", 2)
	b := model.NewNode("Build", 2)
	b.Depends = []string{"Design"}
	root := model.NewNode("Root", 1)
	root.Children = []model.Node{a, b}
	proj := model.Project{Documents: []model.Document{{Path: "x.wbs.md", Roots: []model.Node{root}}}}

	log := New()
	next, err := log.Do(proj, &RenameTitle{ID: a.ID, NewTitle: "Design Phase"})
	require.NoError(t, err)

	var renamed model.Node
	for _, c := range next.Documents[0].Roots[0].Children {
		if c.ID == b.ID {
			renamed = c
		}
	}
	assert.Equal(t, []string{"Design Phase"}, renamed.Depends)

	back, err := log.Undo(next)
	require.NoError(t, err)
	for _, c := range back.Documents[0].Roots[0].Children {
		if c.ID == b.ID {
			assert.Equal(t, []string{"Design"}, c.Depends)
		}
	}
}

func TestIndentOutdent_RoundTrips(t *testing.T) {
	a := model.NewNode("A", 2)
	b := model.NewNode("B", 2)
	root := model.NewNode("Root", 1)
	root.Children = []model.Node{a, b}
	proj := model.Project{Documents: []model.Document{{Path: "x.wbs.md", Roots: []model.Node{root}}}}

	log := New()
	next, err := log.Do(proj, &Indent{ID: b.ID})
	require.NoError(t, err)

	aNow := next.Documents[0].Roots[0].Children[0]
	require.Len(t, aNow.Children, 1)
	assert.Equal(t, "B", aNow.Children[0].Title)
	assert.Equal(t, 3, aNow.Children[0].Depth)

	back, err := log.Undo(next)
	require.NoError(t, err)
	require.Len(t, back.Documents[0].Roots[0].Children, 2)
	assert.Equal(t, "B", back.Documents[0].Roots[0].Children[1].Title)
	assert.Equal(t, 2, back.Documents[0].Roots[0].Children[1].Depth)
}

func TestIndent_FirstChildHasNoAnchor(t *testing.T) {
	a := model.NewNode("A", 2)
	root := model.NewNode("Root", 1)
	root.Children = []model.Node{a}
	proj := model.Project{Documents: []model.Document{{Path: "x.wbs.md", Roots: []model.Node{root}}}}

	log := New()
	_, err := log.Do(proj, &Indent{ID: a.ID})
	assert.ErrorIs(t, err, model.ErrNoAnchor)
}

func TestDo_ClearsRedoStack(t *testing.T) {
	proj := newProject()
	rootID := proj.Documents[0].Roots[0].ID
	log := New()

	next, err := log.Do(proj, &SetField{ID: rootID, Field: "assignee", Value: "sam"})
	require.NoError(t, err)
	next, err = log.Undo(next)
	require.NoError(t, err)
	require.True(t, log.CanRedo())

	_, err = log.Do(next, &SetField{ID: rootID, Field: "assignee", Value: "alex"})
	require.NoError(t, err)
	assert.False(t, log.CanRedo())
}
