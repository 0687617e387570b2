package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdwbs/wbs/internal/model"
)

func TestParseBytes_SingleNodeWithMetadata(t *testing.T) {
	raw := []byte("# Build API\n<!-- status: IN_PROGRESS | assignee: sam | progress: 40 -->\nSome notes here.\n")

	doc := parseBytes("x.wbs.md", raw)

	require.Len(t, doc.Roots, 1)
	n := doc.Roots[0]
	assert.Equal(t, "Build API", n.Title)
	assert.Equal(t, model.StatusInProgress, n.Status)
	assert.Equal(t, "sam", n.Assignee)
	assert.Equal(t, 40, n.Progress)
	assert.Equal(t, "Some notes here.\n", string(n.Memo))
	assert.False(t, n.Edited)
}

func TestParseBytes_NestedHeadings(t *testing.T) {
	raw := []byte("# Parent\n## Child A\n## Child B\n### Grandchild\n")

	doc := parseBytes("x.wbs.md", raw)

	require.Len(t, doc.Roots, 1)
	parent := doc.Roots[0]
	require.Len(t, parent.Children, 2)
	assert.Equal(t, "Child A", parent.Children[0].Title)
	assert.Equal(t, "Child B", parent.Children[1].Title)
	require.Len(t, parent.Children[1].Children, 1)
	assert.Equal(t, "Grandchild", parent.Children[1].Children[0].Title)
}

func TestParseBytes_HeadingLevelJumpWarns(t *testing.T) {
	raw := []byte("# Parent\n### Skips A Level\n")

	doc := parseBytes("x.wbs.md", raw)

	require.Len(t, doc.Warnings, 1)
	assert.Equal(t, "HeadingLevelJump", doc.Warnings[0].Kind)
}

func TestParseBytes_UnknownKeyBecomesCustomField(t *testing.T) {
	raw := []byte("# Task\n<!-- team: platform -->\n")

	doc := parseBytes("x.wbs.md", raw)

	v, ok := doc.Roots[0].CustomValue("team")
	require.True(t, ok)
	assert.Equal(t, "platform", v)
}

func TestParseBytes_InvalidEnumWarnsAndDefaults(t *testing.T) {
	raw := []byte("# Task\n<!-- status: BOGUS -->\n")

	doc := parseBytes("x.wbs.md", raw)

	assert.Equal(t, model.StatusTodo, doc.Roots[0].Status)
	require.Len(t, doc.Warnings, 1)
	assert.Equal(t, "InvalidEnum", doc.Warnings[0].Kind)
}

func TestParseBytes_DependsSplitAndTrimmed(t *testing.T) {
	raw := []byte("# Task\n<!-- depends: Foo ; Bar ;  -->\n")

	doc := parseBytes("x.wbs.md", raw)

	assert.Equal(t, []string{"Foo", "Bar"}, doc.Roots[0].Depends)
}

func TestResolveDepends_UnmatchedIsWarningNotError(t *testing.T) {
	proj := model.Project{Documents: []model.Document{
		parseBytes("x.wbs.md", []byte("# Task\n<!-- depends: Nonexistent -->\n")),
	}}

	proj = resolveDepends(proj)

	require.Len(t, proj.Documents[0].Warnings, 1)
	assert.Equal(t, "UnresolvedDepends", proj.Documents[0].Warnings[0].Kind)
}
