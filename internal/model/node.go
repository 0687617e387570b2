// Package model defines the immutable value types the WBS core operates
// on: Node, Document, Project, ViewConfig, ColumnDef and ProjectConfig.
// Nothing in this package reads or writes a file — that is the job of
// internal/markdown and internal/projectconfig. Nodes here are value
// objects: every "edit" produces a new Node, built with the With*
// methods below, never a mutation in place.
package model

import "fmt"

// CustomField is one entry of a Node's ordered custom-field mapping.
type CustomField struct {
	Name  string
	Value string
}

// Node is a single unit of work in the WBS tree. See spec §3.1.
type Node struct {
	ID       NodeID
	Title    string
	Depth    int // heading depth, 1-6
	Status   Status
	Priority Priority
	Assignee string
	Duration string
	Start    string // YYYY-MM-DD or ""
	End      string
	Milestone bool
	Progress  int // 0-100
	Depends   []string
	Memo      []byte
	Custom    []CustomField
	Children  []Node

	// SourceFile is the absolute path of the document that contributed
	// this node.
	SourceFile string

	// Edited marks that a Command mutated this node's own fields, title
	// or child list, or any node below it (the command log marks every
	// ancestor on an edited node's path, since the raw span of an
	// ancestor covers its descendants). The writer (C3) uses this bit to
	// decide whether to re-slice the raw bytes or re-render the node's
	// own heading+metadata+memo.
	Edited bool

	// StartExplicit/EndExplicit record that the user (not ancestor
	// aggregation) set this node's start/end. Scoped to the in-memory
	// session only — see DESIGN.md's Open Question decision.
	StartExplicit bool
	EndExplicit   bool

	// raw is the exact source byte span (heading line through the byte
	// before the next sibling/parent heading) this node occupied when
	// parsed, used by the writer to reproduce unedited nodes verbatim.
	raw []byte
}

// NewNode constructs a Node with defaults applied (spec §3.1 defaults:
// status TODO, priority MEDIUM) and a fresh identity.
func NewNode(title string, depth int) Node {
	return Node{
		ID:       NewNodeID(),
		Title:    title,
		Depth:    depth,
		Status:   StatusTodo,
		Priority: PriorityMedium,
		Edited:   true,
	}
}

// RawSpan returns the node's original source bytes if it was parsed
// from a document (nil for a node created in memory), whether or not
// it has since been edited.
func (n Node) RawSpan() []byte { return n.raw }

// WithRawSpan attaches the original source byte span to a parsed node.
func (n Node) WithRawSpan(b []byte) Node {
	n.raw = b
	return n
}

// WithTitle returns a copy of n with a new title, marked edited.
func (n Node) WithTitle(title string) Node {
	n.Title = title
	n.Edited = true
	return n
}

// WithChildren returns a copy of n with a new child list, marked edited
// (a child insertion/removal/reorder touches the parent's own span).
func (n Node) WithChildren(children []Node) Node {
	n.Children = children
	n.Edited = true
	return n
}

// IsLeaf reports whether n has no children.
func (n Node) IsLeaf() bool { return len(n.Children) == 0 }

// CustomValue returns the value of a custom field by name, and whether
// it was present.
func (n Node) CustomValue(name string) (string, bool) {
	for _, f := range n.Custom {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// WithCustomValue returns a copy of n with the named custom field set
// (appended if new, in-place replaced if already present — order of
// first appearance is preserved).
func (n Node) WithCustomValue(name, value string) Node {
	out := make([]CustomField, len(n.Custom))
	copy(out, n.Custom)
	for i := range out {
		if out[i].Name == name {
			out[i].Value = value
			n.Custom = out
			n.Edited = true
			return n
		}
	}
	out = append(out, CustomField{Name: name, Value: value})
	n.Custom = out
	n.Edited = true
	return n
}

// Validate checks the field-level invariants spec §3.1/§4.7 place on a
// Node in isolation (not invariants that depend on siblings or the
// tree, which are the command log's job).
func (n Node) Validate() error {
	if n.Title == "" {
		return fmt.Errorf("%w: node title must not be empty", ErrFieldTypeMismatch)
	}
	if n.Depth < 1 || n.Depth > 6 {
		return fmt.Errorf("%w: heading depth %d out of range 1-6", ErrFieldTypeMismatch, n.Depth)
	}
	if !n.Status.IsValid() {
		return fmt.Errorf("%w: invalid status %q", ErrFieldTypeMismatch, n.Status)
	}
	if !n.Priority.IsValid() {
		return fmt.Errorf("%w: invalid priority %q", ErrFieldTypeMismatch, n.Priority)
	}
	if n.Progress < 0 || n.Progress > 100 {
		return fmt.Errorf("%w: progress %d out of range 0-100", ErrFieldTypeMismatch, n.Progress)
	}
	if n.Start != "" && !isValidDate(n.Start) {
		return fmt.Errorf("%w: invalid start date %q", ErrFieldTypeMismatch, n.Start)
	}
	if n.End != "" && !isValidDate(n.End) {
		return fmt.Errorf("%w: invalid end date %q", ErrFieldTypeMismatch, n.End)
	}
	if n.Milestone && n.Start != "" && n.End != "" && n.End != n.Start {
		return fmt.Errorf("%w: milestone end %q must equal start %q", ErrFieldTypeMismatch, n.End, n.Start)
	}
	return nil
}
