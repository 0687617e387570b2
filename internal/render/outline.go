package render

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"

	"github.com/mdwbs/wbs/internal/model"
)

// Outline renders a project's forest as an indented tree, used for a
// quick structural view independent of any ViewConfig's column list.
func Outline(roots []model.Node) string {
	t := tree.Root(".")
	for _, n := range roots {
		t.Child(outlineNode(n))
	}
	return t.String()
}

func outlineNode(n model.Node) *tree.Tree {
	label := statusGlyph(n.Status) + " " + n.Title
	t := tree.Root(label)
	for _, c := range n.Children {
		t.Child(outlineNode(c))
	}
	return t
}

func statusGlyph(s model.Status) string {
	switch s {
	case model.StatusDone:
		return lipgloss.NewStyle().Foreground(ColorDone).Render("✓")
	case model.StatusInProgress:
		return lipgloss.NewStyle().Foreground(ColorDoing).Render("●")
	default:
		return lipgloss.NewStyle().Foreground(ColorTodo).Render("○")
	}
}
