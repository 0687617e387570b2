package markdown

import "github.com/mdwbs/wbs/internal/model"

// resolveDepends checks each node's Depends entries against the
// project's titles. An entry that matches no node anywhere in the
// project is never fatal: it produces a warning and is left as-is so
// the raw text survives a round-trip (spec §3.2, §4.1).
func resolveDepends(proj model.Project) model.Project {
	for di, doc := range proj.Documents {
		doc.Roots = resolveNodeDepends(proj, doc.Path, doc.Roots, &doc.Warnings)
		proj.Documents[di] = doc
	}
	return proj
}

func resolveNodeDepends(proj model.Project, file string, nodes []model.Node, warnings *[]model.Warning) []model.Node {
	for i, n := range nodes {
		for _, dep := range n.Depends {
			if _, ok := proj.FindByTitle(dep); !ok {
				*warnings = append(*warnings, model.Warning{
					File: file, Kind: "UnresolvedDepends",
					Message: "depends entry '" + dep + "' on node '" + n.Title + "' matches no node",
				})
			}
		}
		n.Children = resolveNodeDepends(proj, file, n.Children, warnings)
		nodes[i] = n
	}
	return nodes
}
