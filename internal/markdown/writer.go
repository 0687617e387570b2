package markdown

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"

	"github.com/mdwbs/wbs/internal/model"
)

// fieldOrder is the fixed emission order for known metadata keys (spec
// §4.2): unset/default-valued fields are omitted, everything present
// appears in this order, followed by custom fields in first-appearance
// order.
var fieldOrder = []string{
	"status", "assignee", "duration", "priority", "depends", "start", "end", "milestone", "progress",
}

// Render serializes a document's forest to bytes. Unedited nodes are
// copied verbatim from their recorded raw span; edited nodes (or nodes
// with no raw span, i.e. newly created ones) are re-rendered
// canonically (spec §4.2).
func Render(d model.Document) []byte {
	var buf bytes.Buffer
	renderNodes(&buf, d.Roots)
	return buf.Bytes()
}

func renderNodes(buf *bytes.Buffer, nodes []model.Node) {
	for _, n := range nodes {
		renderNode(buf, n)
	}
}

func renderNode(buf *bytes.Buffer, n model.Node) {
	if !n.Edited && n.RawSpan() != nil {
		buf.Write(n.RawSpan())
		if buf.Len() > 0 && buf.Bytes()[buf.Len()-1] != '\n' {
			buf.WriteByte('\n')
		}
		return
	}

	fmt.Fprintf(buf, "%s %s\n", headingMarker(n.Depth), n.Title)

	if meta := renderMetadata(n); meta != "" {
		fmt.Fprintf(buf, "<!-- %s -->\n", meta)
	}

	if len(n.Memo) > 0 {
		buf.Write(n.Memo)
		if n.Memo[len(n.Memo)-1] != '\n' {
			buf.WriteByte('\n')
		}
	} else {
		buf.WriteByte('\n')
	}

	renderNodes(buf, n.Children)
}

func headingMarker(depth int) string {
	if depth < 1 {
		depth = 1
	}
	if depth > 6 {
		depth = 6
	}
	b := make([]byte, depth)
	for i := range b {
		b[i] = '#'
	}
	return string(b)
}

// renderMetadata builds the "key: value | key: value" inner payload
// for a node's metadata comment, omitting fields at their zero/default
// value, per spec §4.2.
func renderMetadata(n model.Node) string {
	var parts []string
	add := func(k, v string) {
		if v != "" {
			parts = append(parts, k+": "+v)
		}
	}

	if n.Status != model.StatusTodo {
		add("status", string(n.Status))
	}
	add("assignee", n.Assignee)
	add("duration", n.Duration)
	if n.Priority != model.PriorityMedium {
		add("priority", string(n.Priority))
	}
	if len(n.Depends) > 0 {
		add("depends", joinSemi(n.Depends))
	}
	add("start", n.Start)
	add("end", n.End)
	if n.Milestone {
		add("milestone", "true")
	}
	if n.Progress != 0 {
		add("progress", strconv.Itoa(n.Progress))
	}
	for _, c := range n.Custom {
		add(c.Name, c.Value)
	}

	return joinPipe(parts)
}

func joinSemi(items []string) string {
	out := ""
	for i, s := range items {
		if i > 0 {
			out += "; "
		}
		out += s
	}
	return out
}

func joinPipe(items []string) string {
	out := ""
	for i, s := range items {
		if i > 0 {
			out += " | "
		}
		out += s
	}
	return out
}

// Save atomically writes every modified document in proj to disk:
// the previous contents are copied to a ".bak" sibling, the new
// contents are written to a temp file and fsynced, then renamed into
// place (spec §4.2, grounded on the project's registry write pattern).
func Save(proj model.Project) error {
	for _, d := range proj.ModifiedDocuments() {
		if err := saveDocument(d); err != nil {
			return errors.Wrapf(err, "save %s", d.Path)
		}
	}
	return nil
}

func saveDocument(d model.Document) error {
	out := Render(d)

	if len(d.Raw) > 0 {
		if err := os.WriteFile(d.Path+".bak", d.Raw, 0o644); err != nil {
			return errors.Wrap(err, "backup previous contents")
		}
	}

	dir := filepath.Dir(d.Path)
	tmp, err := os.CreateTemp(dir, filepath.Base(d.Path)+".*.tmp")
	if err != nil {
		return errors.Wrap(err, "create temp file")
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(out); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return errors.Wrap(err, "write temp file")
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return errors.Wrap(err, "sync temp file")
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return errors.Wrap(err, "close temp file")
	}
	if err := os.Rename(tmpPath, d.Path); err != nil {
		_ = os.Remove(tmpPath)
		return errors.Wrap(err, "rename temp file into place")
	}
	return nil
}
