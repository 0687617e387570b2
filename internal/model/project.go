package model

import (
	"path/filepath"
	"sort"
)

// Project is a directory of WBS Markdown documents plus its resolved
// configuration, per spec §3.1.
type Project struct {
	Dir      string
	Documents []Document
	Config   ProjectConfig
	Warnings []Warning // merged across all documents
}

// SortDocuments orders Documents by their path, lexicographically
// relative to Dir — the "no orphaned roots" invariant's deterministic
// cross-file ordering (spec §3.2).
func (p Project) SortDocuments() Project {
	docs := make([]Document, len(p.Documents))
	copy(docs, p.Documents)
	sort.Slice(docs, func(i, j int) bool {
		return relPath(p.Dir, docs[i].Path) < relPath(p.Dir, docs[j].Path)
	})
	p.Documents = docs
	return p
}

func relPath(dir, path string) string {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return path
	}
	return rel
}

// Roots returns the project's full forest: every document's roots
// concatenated in document order (spec §3.2).
func (p Project) Roots() []Node {
	var roots []Node
	for _, d := range p.Documents {
		roots = append(roots, d.Roots...)
	}
	return roots
}

// Walk calls fn for every node in the project, depth-first, in the
// project's canonical document order.
func (p Project) Walk(fn func(Node)) {
	for _, d := range p.Documents {
		d.Walk(fn)
	}
}

// FindByID returns the node with the given id, or ok=false if not
// found.
func (p Project) FindByID(id NodeID) (Node, bool) {
	var found Node
	ok := false
	p.Walk(func(n Node) {
		if !ok && n.ID == id {
			found = n
			ok = true
		}
	})
	return found, ok
}

// FindByTitle returns the first node (in project document order) whose
// title equals title — the resolution rule spec §3.2 gives for
// `depends` entries.
func (p Project) FindByTitle(title string) (Node, bool) {
	var found Node
	ok := false
	p.Walk(func(n Node) {
		if !ok && n.Title == title {
			found = n
			ok = true
		}
	})
	return found, ok
}

// DocumentIndex returns the index of the Document at path, or -1.
func (p Project) DocumentIndex(path string) int {
	for i, d := range p.Documents {
		if d.Path == path {
			return i
		}
	}
	return -1
}

// WithDocument returns a copy of p with the document at the given
// index replaced.
func (p Project) WithDocument(i int, d Document) Project {
	docs := make([]Document, len(p.Documents))
	copy(docs, p.Documents)
	docs[i] = d
	p.Documents = docs
	return p
}

// MergeWarnings recomputes p.Warnings from its documents' warnings.
func (p Project) MergeWarnings() Project {
	var all []Warning
	for _, d := range p.Documents {
		all = append(all, d.Warnings...)
	}
	p.Warnings = all
	return p
}

// ModifiedDocuments returns the documents with Modified set, the set
// that Save (C3) must write.
func (p Project) ModifiedDocuments() []Document {
	var out []Document
	for _, d := range p.Documents {
		if d.Modified {
			out = append(out, d)
		}
	}
	return out
}
