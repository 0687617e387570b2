package commandlog

import "github.com/mdwbs/wbs/internal/model"

// nodePath locates one node by a document index plus a sequence of
// child indices from that document's roots down to the node itself.
type nodePath struct {
	doc  int
	path []int
}

// locate finds the document index and child-index path to the node
// with the given id, depth-first in project document order.
func locate(proj model.Project, id model.NodeID) (nodePath, bool) {
	for di, doc := range proj.Documents {
		if p, ok := findPath(doc.Roots, id, nil); ok {
			return nodePath{doc: di, path: p}, true
		}
	}
	return nodePath{}, false
}

func findPath(nodes []model.Node, id model.NodeID, prefix []int) ([]int, bool) {
	for i, n := range nodes {
		p := append(append([]int{}, prefix...), i)
		if n.ID == id {
			return p, true
		}
		if cp, ok := findPath(n.Children, id, p); ok {
			return cp, true
		}
	}
	return nil, false
}

// getAt returns the node at path within nodes.
func getAt(nodes []model.Node, path []int) model.Node {
	n := nodes[path[0]]
	for _, idx := range path[1:] {
		n = n.Children[idx]
	}
	return n
}

// parentChildren returns the slice path's node lives in, so siblings
// and insertion points can be computed: nodes itself if path has
// length 1, or the Children of the node at path[:len-1].
func parentChildren(nodes []model.Node, path []int) []model.Node {
	if len(path) == 1 {
		return nodes
	}
	return getAt(nodes, path[:len(path)-1]).Children
}

// setAt returns a copy of nodes with the node at path replaced,
// marking every ancestor on the path Edited (its Children list
// changed), per Node.WithChildren's contract.
func setAt(nodes []model.Node, path []int, replacement model.Node) []model.Node {
	out := make([]model.Node, len(nodes))
	copy(out, nodes)
	if len(path) == 1 {
		out[path[0]] = replacement
		return out
	}
	child := out[path[0]]
	child = child.WithChildren(setAt(child.Children, path[1:], replacement))
	out[path[0]] = child
	return out
}

// removeAt returns a copy of nodes with the node at path removed.
func removeAt(nodes []model.Node, path []int) []model.Node {
	if len(path) == 1 {
		out := make([]model.Node, 0, len(nodes)-1)
		out = append(out, nodes[:path[0]]...)
		out = append(out, nodes[path[0]+1:]...)
		return out
	}
	out := make([]model.Node, len(nodes))
	copy(out, nodes)
	child := out[path[0]]
	child = child.WithChildren(removeAt(child.Children, path[1:]))
	out[path[0]] = child
	return out
}

// insertAt returns a copy of nodes with n inserted at index idx within
// the slice addressed by parentPath (nil means the top-level nodes
// slice itself).
func insertAt(nodes []model.Node, parentPath []int, idx int, n model.Node) []model.Node {
	if len(parentPath) == 0 {
		out := make([]model.Node, 0, len(nodes)+1)
		out = append(out, nodes[:idx]...)
		out = append(out, n)
		out = append(out, nodes[idx:]...)
		return out
	}
	out := make([]model.Node, len(nodes))
	copy(out, nodes)
	child := out[parentPath[0]]
	child = child.WithChildren(insertAt(child.Children, parentPath[1:], idx, n))
	out[parentPath[0]] = child
	return out
}

// withNodeAt applies fn to the node at path and writes the result
// back, marking ancestors edited the same way setAt does.
func withNodeAt(nodes []model.Node, path []int, fn func(model.Node) model.Node) []model.Node {
	return setAt(nodes, path, fn(getAt(nodes, path)))
}
