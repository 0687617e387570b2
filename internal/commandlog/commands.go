package commandlog

import (
	"fmt"

	"github.com/mdwbs/wbs/internal/model"
)

var errNotFound = fmt.Errorf("%w: no such node", model.ErrOutOfRange)

func mustLocate(proj model.Project, id model.NodeID) (nodePath, error) {
	p, ok := locate(proj, id)
	if !ok {
		return nodePath{}, errNotFound
	}
	return p, nil
}

// AddChild appends a new node as the last child of ParentID (or, if
// ParentID is empty, as a new root appended to the project's last
// document). Title defaults to "Untitled" when empty.
type AddChild struct {
	ParentID model.NodeID
	Title    string

	newID model.NodeID // filled in by Apply, for the inverse Delete
}

func (c *AddChild) Apply(proj model.Project) (model.Project, Command, error) {
	title := c.Title
	if title == "" {
		title = "Untitled"
	}

	if c.ParentID == "" {
		if len(proj.Documents) == 0 {
			return proj, nil, errNotFound
		}
		di := len(proj.Documents) - 1
		doc := proj.Documents[di]
		n := model.NewNode(title, 1)
		n.SourceFile = doc.Path
		doc.Roots = append(append([]model.Node{}, doc.Roots...), n)
		doc.Modified = true
		proj = proj.WithDocument(di, doc)
		c.newID = n.ID
		return proj, &Delete{ID: n.ID}, nil
	}

	loc, err := mustLocate(proj, c.ParentID)
	if err != nil {
		return proj, nil, err
	}
	doc := proj.Documents[loc.doc]
	parent := getAt(doc.Roots, loc.path)
	if parent.Depth >= 6 {
		return proj, nil, fmt.Errorf("%w: parent already at max depth", model.ErrInvalidLevel)
	}

	n := model.NewNode(title, parent.Depth+1)
	n.SourceFile = doc.Path
	doc.Roots = withNodeAt(doc.Roots, loc.path, func(p model.Node) model.Node {
		return p.WithChildren(append(append([]model.Node{}, p.Children...), n))
	})
	doc.Modified = true
	proj = proj.WithDocument(loc.doc, doc)
	c.newID = n.ID
	return proj, &Delete{ID: n.ID}, nil
}

// AddSibling inserts a new node immediately after AnchorID, at
// AnchorID's own depth and under its own parent.
type AddSibling struct {
	AnchorID model.NodeID
	Title    string

	newID model.NodeID
}

func (c *AddSibling) Apply(proj model.Project) (model.Project, Command, error) {
	loc, err := mustLocate(proj, c.AnchorID)
	if err != nil {
		return proj, nil, fmt.Errorf("%w: %v", model.ErrNoAnchor, err)
	}
	doc := proj.Documents[loc.doc]
	anchor := getAt(doc.Roots, loc.path)

	title := c.Title
	if title == "" {
		title = "Untitled"
	}
	n := model.NewNode(title, anchor.Depth)
	n.SourceFile = doc.Path

	parentPath := loc.path[:len(loc.path)-1]
	idx := loc.path[len(loc.path)-1] + 1
	doc.Roots = insertAt(doc.Roots, parentPath, idx, n)
	doc.Modified = true
	proj = proj.WithDocument(loc.doc, doc)
	c.newID = n.ID
	return proj, &Delete{ID: n.ID}, nil
}

// Delete removes the subtree rooted at ID.
type Delete struct {
	ID model.NodeID
}

func (c *Delete) Apply(proj model.Project) (model.Project, Command, error) {
	loc, err := mustLocate(proj, c.ID)
	if err != nil {
		return proj, nil, err
	}
	doc := proj.Documents[loc.doc]
	removed := getAt(doc.Roots, loc.path)
	parentPath := loc.path[:len(loc.path)-1]
	idx := loc.path[len(loc.path)-1]

	doc.Roots = removeAt(doc.Roots, loc.path)
	doc.Modified = true
	proj = proj.WithDocument(loc.doc, doc)

	inverse := &RestoreNode{Doc: loc.doc, ParentPath: parentPath, Idx: idx, Node: removed}
	return proj, inverse, nil
}

// RestoreNode is Delete's inverse. It is exported (and its fields
// with it) so a journal can round-trip it across process boundaries;
// callers otherwise never construct one directly, only receive it
// from Delete.Apply.
type RestoreNode struct {
	Doc        int
	ParentPath []int
	Idx        int
	Node       model.Node
}

func (c *RestoreNode) Apply(proj model.Project) (model.Project, Command, error) {
	doc := proj.Documents[c.Doc]
	doc.Roots = insertAt(doc.Roots, c.ParentPath, c.Idx, c.Node)
	doc.Modified = true
	proj = proj.WithDocument(c.Doc, doc)
	return proj, &Delete{ID: c.Node.ID}, nil
}

// RenameTitle renames a node's title and rewrites every `depends`
// entry elsewhere in the project that referenced its old title, since
// dependencies resolve by title (spec §3.2).
type RenameTitle struct {
	ID       model.NodeID
	NewTitle string
}

func (c *RenameTitle) Apply(proj model.Project) (model.Project, Command, error) {
	loc, err := mustLocate(proj, c.ID)
	if err != nil {
		return proj, nil, err
	}
	doc := proj.Documents[loc.doc]
	node := getAt(doc.Roots, loc.path)
	oldTitle := node.Title
	if oldTitle == c.NewTitle {
		return proj, &RenameTitle{ID: c.ID, NewTitle: oldTitle}, nil
	}

	doc.Roots = withNodeAt(doc.Roots, loc.path, func(n model.Node) model.Node {
		return n.WithTitle(c.NewTitle)
	})
	doc.Modified = true
	proj = proj.WithDocument(loc.doc, doc)

	proj = renameDependents(proj, oldTitle, c.NewTitle)

	return proj, &RenameTitle{ID: c.ID, NewTitle: oldTitle}, nil
}

// renameDependents rewrites every node's Depends entry equal to
// oldTitle to newTitle, anywhere in the project.
func renameDependents(proj model.Project, oldTitle, newTitle string) model.Project {
	var ids []model.NodeID
	proj.Walk(func(n model.Node) {
		for _, dep := range n.Depends {
			if dep == oldTitle {
				ids = append(ids, n.ID)
				return
			}
		}
	})

	for _, id := range ids {
		loc, ok := locate(proj, id)
		if !ok {
			continue
		}
		doc := proj.Documents[loc.doc]
		doc.Roots = withNodeAt(doc.Roots, loc.path, func(n model.Node) model.Node {
			depends := make([]string, len(n.Depends))
			for i, d := range n.Depends {
				if d == oldTitle {
					d = newTitle
				}
				depends[i] = d
			}
			n.Depends = depends
			n.Edited = true
			return n
		})
		doc.Modified = true
		proj = proj.WithDocument(loc.doc, doc)
	}
	return proj
}

// SetField assigns one field of a node by column id. Progress cannot
// be set directly — it is computed from descendant status (spec
// §3.2, §4.4) — except on a leaf, where it is the explicit value.
type SetField struct {
	ID    model.NodeID
	Field string
	Value string
}

func (c *SetField) Apply(proj model.Project) (model.Project, Command, error) {
	loc, err := mustLocate(proj, c.ID)
	if err != nil {
		return proj, nil, err
	}
	doc := proj.Documents[loc.doc]
	node := getAt(doc.Roots, loc.path)

	if c.Field == "progress" && !node.IsLeaf() {
		return proj, nil, fmt.Errorf("%w: progress", model.ErrComputedField)
	}

	oldValue, err := fieldValue(node, c.Field)
	if err != nil {
		return proj, nil, err
	}

	updated, err := withField(node, c.Field, c.Value)
	if err != nil {
		return proj, nil, err
	}
	updated.Edited = true

	doc.Roots = setAt(doc.Roots, loc.path, updated)
	doc.Modified = true
	proj = proj.WithDocument(loc.doc, doc)

	return proj, &SetField{ID: c.ID, Field: c.Field, Value: oldValue}, nil
}

// MoveUp swaps a node with its preceding sibling.
type MoveUp struct{ ID model.NodeID }

func (c *MoveUp) Apply(proj model.Project) (model.Project, Command, error) {
	return moveBySibling(proj, c.ID, -1, func(id model.NodeID) Command { return &MoveDown{ID: id} })
}

// MoveDown swaps a node with its following sibling.
type MoveDown struct{ ID model.NodeID }

func (c *MoveDown) Apply(proj model.Project) (model.Project, Command, error) {
	return moveBySibling(proj, c.ID, 1, func(id model.NodeID) Command { return &MoveUp{ID: id} })
}

func moveBySibling(proj model.Project, id model.NodeID, delta int, inverse func(model.NodeID) Command) (model.Project, Command, error) {
	loc, err := mustLocate(proj, id)
	if err != nil {
		return proj, nil, err
	}
	doc := proj.Documents[loc.doc]
	idx := loc.path[len(loc.path)-1]
	parentPath := loc.path[:len(loc.path)-1]
	siblings := parentChildren(doc.Roots, loc.path)

	other := idx + delta
	if other < 0 || other >= len(siblings) {
		return proj, nil, fmt.Errorf("%w: no sibling to swap with", model.ErrOutOfRange)
	}

	doc.Roots = swapAt(doc.Roots, parentPath, idx, other)
	doc.Modified = true
	proj = proj.WithDocument(loc.doc, doc)

	return proj, inverse(id), nil
}

// swapAt exchanges the children at indices i and j within the slice
// addressed by parentPath.
func swapAt(nodes []model.Node, parentPath []int, i, j int) []model.Node {
	if len(parentPath) == 0 {
		out := make([]model.Node, len(nodes))
		copy(out, nodes)
		out[i], out[j] = out[j], out[i]
		return out
	}
	out := make([]model.Node, len(nodes))
	copy(out, nodes)
	parent := out[parentPath[0]]
	parent = parent.WithChildren(swapAt(parent.Children, parentPath[1:], i, j))
	out[parentPath[0]] = parent
	return out
}

// Indent makes a node the last child of its preceding sibling. The
// first child under any parent has no anchor to indent under.
type Indent struct{ ID model.NodeID }

func (c *Indent) Apply(proj model.Project) (model.Project, Command, error) {
	loc, err := mustLocate(proj, c.ID)
	if err != nil {
		return proj, nil, err
	}
	doc := proj.Documents[loc.doc]
	idx := loc.path[len(loc.path)-1]
	if idx == 0 {
		return proj, nil, model.ErrNoAnchor
	}
	parentPath := loc.path[:len(loc.path)-1]
	siblings := parentChildren(doc.Roots, loc.path)
	node := siblings[idx]
	newParent := siblings[idx-1]
	if newParent.Depth >= 6 {
		return proj, nil, fmt.Errorf("%w: new parent already at max depth", model.ErrInvalidLevel)
	}

	doc.Roots = removeAt(doc.Roots, loc.path)
	newParentPath := append(append([]int{}, parentPath...), idx-1)
	reparented := reDepth(node, newParent.Depth+1)
	doc.Roots = insertAt(doc.Roots, newParentPath, len(newParent.Children), reparented)
	doc.Modified = true
	proj = proj.WithDocument(loc.doc, doc)

	return proj, &Outdent{ID: c.ID}, nil
}

// Outdent moves a node to become its parent's own following sibling.
// A document root has no parent to outdent past and is refused.
type Outdent struct{ ID model.NodeID }

func (c *Outdent) Apply(proj model.Project) (model.Project, Command, error) {
	loc, err := mustLocate(proj, c.ID)
	if err != nil {
		return proj, nil, err
	}
	if len(loc.path) < 2 {
		return proj, nil, fmt.Errorf("%w: a document root cannot be outdented", model.ErrInvalidLevel)
	}
	doc := proj.Documents[loc.doc]
	idx := loc.path[len(loc.path)-1]
	parentPath := loc.path[:len(loc.path)-1]
	parent := getAt(doc.Roots, parentPath)

	siblings := parentChildren(doc.Roots, loc.path)
	node := siblings[idx]

	doc.Roots = removeAt(doc.Roots, loc.path)
	grandparentPath := parentPath[:len(parentPath)-1]
	newIdx := parentPath[len(parentPath)-1] + 1
	reparented := reDepth(node, parent.Depth)
	doc.Roots = insertAt(doc.Roots, grandparentPath, newIdx, reparented)
	doc.Modified = true
	proj = proj.WithDocument(loc.doc, doc)

	return proj, &Indent{ID: c.ID}, nil
}

// reDepth returns a copy of n with Depth set to depth and every
// descendant's Depth shifted by the same delta, marked edited.
func reDepth(n model.Node, depth int) model.Node {
	delta := depth - n.Depth
	return shiftDepth(n, delta)
}

func shiftDepth(n model.Node, delta int) model.Node {
	n.Depth += delta
	n.Edited = true
	children := make([]model.Node, len(n.Children))
	for i, c := range n.Children {
		children[i] = shiftDepth(c, delta)
	}
	n.Children = children
	return n
}

// ReorderInColumn moves a node to a specific index among its siblings,
// used by interactive drag/drop reordering within one column.
type ReorderInColumn struct {
	ID    model.NodeID
	Index int
}

func (c *ReorderInColumn) Apply(proj model.Project) (model.Project, Command, error) {
	loc, err := mustLocate(proj, c.ID)
	if err != nil {
		return proj, nil, err
	}
	doc := proj.Documents[loc.doc]
	idx := loc.path[len(loc.path)-1]
	parentPath := loc.path[:len(loc.path)-1]
	siblings := parentChildren(doc.Roots, loc.path)

	if c.Index < 0 || c.Index >= len(siblings) {
		return proj, nil, fmt.Errorf("%w: reorder index", model.ErrOutOfRange)
	}

	node := siblings[idx]
	doc.Roots = removeAt(doc.Roots, loc.path)
	doc.Roots = insertAt(doc.Roots, parentPath, c.Index, node)
	doc.Modified = true
	proj = proj.WithDocument(loc.doc, doc)

	return proj, &ReorderInColumn{ID: c.ID, Index: idx}, nil
}

// SetStatus is a convenience wrapper over SetField("status", ...).
type SetStatus struct {
	ID     model.NodeID
	Status model.Status
}

func (c *SetStatus) Apply(proj model.Project) (model.Project, Command, error) {
	inner := &SetField{ID: c.ID, Field: "status", Value: string(c.Status)}
	next, inverse, err := inner.Apply(proj)
	if err != nil {
		return proj, nil, err
	}
	innerInverse := inverse.(*SetField)
	return next, &SetStatus{ID: c.ID, Status: model.Status(innerInverse.Value)}, nil
}
