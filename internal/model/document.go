package model

// Warning is a recoverable parse problem, scoped to the document (and,
// via the project's merged list, to the whole project). Warnings are
// data, never errors — spec §7 policy: "parsing never fails a
// file-load."
type Warning struct {
	File    string
	Kind    string // e.g. "HeadingLevelJump", "InvalidEnum", "UnresolvedDepends"
	Message string
}

// Document is one Markdown file on disk.
type Document struct {
	Path     string
	Raw      []byte // exact bytes last read from disk
	Roots    []Node // one per top-level heading
	Modified bool
	Warnings []Warning
}

// WithRoots returns a copy of d with a new root forest, marked modified.
func (d Document) WithRoots(roots []Node) Document {
	d.Roots = roots
	d.Modified = true
	return d
}

// Walk calls fn for every node in the document's forest, depth-first,
// in document order.
func (d Document) Walk(fn func(Node)) {
	var walk func([]Node)
	walk = func(nodes []Node) {
		for _, n := range nodes {
			fn(n)
			walk(n.Children)
		}
	}
	walk(d.Roots)
}
