package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_UnmodifiedDocumentRoundTrips(t *testing.T) {
	raw := []byte("# Build API\n<!-- status: IN_PROGRESS | assignee: sam -->\nSome notes here.\n\n## Sub task\n")

	doc := parseBytes("x.wbs.md", raw)
	out := Render(doc)

	assert.Equal(t, string(raw), string(out))
}

func TestRender_EditedNodeOmitsDefaultFields(t *testing.T) {
	raw := []byte("# Task\n")
	doc := parseBytes("x.wbs.md", raw)
	n := doc.Roots[0].WithTitle("Renamed Task")
	doc.Roots[0] = n

	out := Render(doc)

	require.Contains(t, string(out), "# Renamed Task\n")
	assert.NotContains(t, string(out), "<!--")
}

func TestRender_EditedNodeEmitsFieldsInFixedOrder(t *testing.T) {
	raw := []byte("# Task\n")
	doc := parseBytes("x.wbs.md", raw)
	n := doc.Roots[0]
	n.Status = "DONE"
	n.Assignee = "sam"
	n.Priority = "HIGH"
	n.Progress = 100
	n.Edited = true
	doc.Roots[0] = n

	out := Render(doc)

	assert.Contains(t, string(out), "<!-- status: DONE | assignee: sam | priority: HIGH | progress: 100 -->")
}
