// Package view projects a model.Project through one ViewConfig's
// filter/sort/group-by/depth-cap pipeline into a flat sequence of
// DisplayRows ready for rendering (spec §4.5, C6).
package view

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/mdwbs/wbs/internal/model"
)

// DisplayRow is one rendered line: a node plus the context the
// renderer needs that isn't on Node itself (its depth in THIS view,
// its group-by value, a delayed-start flag).
type DisplayRow struct {
	Node          model.Node
	Depth         int
	Group         string // GroupBy value, for kanban columns
	DelayedStart  bool   // start date has passed but status is still TODO
}

// Predicate is a compiled filter term.
type Predicate func(model.Node) bool

// Project runs cfg's filter, sort, group-by and depth-cap pipeline
// over proj and returns the resulting rows in display order.
func Project(proj model.Project, cfg model.ViewConfig, today time.Time) []DisplayRow {
	pred := Chain(compilePredicates(cfg.Filters)...)

	var rows []DisplayRow
	var walk func(nodes []model.Node, depth int)
	walk = func(nodes []model.Node, depth int) {
		ordered := nodes
		if cfg.Sort != nil {
			ordered = sortedSiblings(nodes, *cfg.Sort)
		}
		for _, n := range ordered {
			if cfg.Gantt.Level > 0 && n.Depth > cfg.Gantt.Level {
				continue
			}
			if pred(n) {
				rows = append(rows, DisplayRow{
					Node:         n,
					Depth:        depth,
					Group:        groupValue(n, cfg.GroupBy),
					DelayedStart: isDelayedStart(n, today),
				})
			}
			walk(n.Children, depth+1)
		}
	}
	walk(proj.Roots(), 0)

	return rows
}

// isDelayedStart reports whether a node's start date is in the past
// while it is still TODO (spec §4.5's highlight rule).
func isDelayedStart(n model.Node, today time.Time) bool {
	if n.Status != model.StatusTodo || n.Start == "" {
		return false
	}
	start, ok := model.ParseDate(n.Start)
	if !ok {
		return false
	}
	return start.Before(today)
}

func groupValue(n model.Node, groupBy string) string {
	switch groupBy {
	case "", "status":
		return string(n.Status)
	case "priority":
		return string(n.Priority)
	case "assignee":
		return n.Assignee
	default:
		v, _ := n.CustomValue(groupBy)
		return v
	}
}

// Chain composes predicates with logical AND, the same composition
// idiom internal/model uses for field validators.
func Chain(preds ...Predicate) Predicate {
	return func(n model.Node) bool {
		for _, p := range preds {
			if !p(n) {
				return false
			}
		}
		return true
	}
}

func compilePredicates(filters []model.FilterPredicate) []Predicate {
	out := make([]Predicate, 0, len(filters))
	for _, f := range filters {
		out = append(out, compilePredicate(f))
	}
	return out
}

func compilePredicate(f model.FilterPredicate) Predicate {
	return func(n model.Node) bool {
		actual, ok := columnValue(n, f.Column)
		switch f.Op {
		case model.OpEq:
			return len(f.Literal) > 0 && actual == f.Literal[0]
		case model.OpNe:
			return len(f.Literal) == 0 || actual != f.Literal[0]
		}

		// Every other op excludes a row outright when the column has no
		// value to compare against (spec §4.4).
		if !ok {
			return false
		}
		switch f.Op {
		case model.OpIn:
			return containsStr(f.Literal, actual)
		case model.OpNotIn:
			return !containsStr(f.Literal, actual)
		case model.OpContains:
			return len(f.Literal) > 0 && strings.Contains(actual, f.Literal[0])
		case model.OpLt, model.OpLe, model.OpGt, model.OpGe:
			return compareNumericOrDate(actual, f)
		case model.OpBetween:
			return len(f.Literal) == 2 && actual >= f.Literal[0] && actual <= f.Literal[1]
		default:
			return true
		}
	}
}

func columnValue(n model.Node, column string) (string, bool) {
	switch column {
	case "title":
		return n.Title, true
	case "status":
		return string(n.Status), true
	case "priority":
		return string(n.Priority), true
	case "assignee":
		return emptyAsMissing(n.Assignee)
	case "start":
		return emptyAsMissing(n.Start)
	case "end":
		return emptyAsMissing(n.End)
	case "progress":
		return strconv.Itoa(n.Progress), true
	case "duration":
		return emptyAsMissing(n.Duration)
	case "file":
		return n.SourceFile, true
	default:
		return n.CustomValue(column)
	}
}

// emptyAsMissing reports an unset built-in column (empty string) as
// absent rather than present-but-empty, so a blank start/end/assignee/
// duration is excluded by non-eq/ne filters instead of silently
// sorting or comparing as "".
func emptyAsMissing(v string) (string, bool) {
	if v == "" {
		return "", false
	}
	return v, true
}

func compareNumericOrDate(actual string, f model.FilterPredicate) bool {
	if len(f.Literal) == 0 {
		return true
	}
	lit := f.Literal[0]

	if an, aerr := strconv.Atoi(actual); aerr == nil {
		if ln, lerr := strconv.Atoi(lit); lerr == nil {
			return compareInt(an, ln, f.Op)
		}
	}
	if at, aok := model.ParseDate(actual); aok {
		if lt, lok := model.ParseDate(lit); lok {
			return compareTime(at, lt, f.Op)
		}
	}
	return compareString(actual, lit, f.Op)
}

func compareInt(a, b int, op model.FilterOp) bool {
	switch op {
	case model.OpLt:
		return a < b
	case model.OpLe:
		return a <= b
	case model.OpGt:
		return a > b
	case model.OpGe:
		return a >= b
	}
	return false
}

func compareTime(a, b time.Time, op model.FilterOp) bool {
	switch op {
	case model.OpLt:
		return a.Before(b)
	case model.OpLe:
		return a.Before(b) || a.Equal(b)
	case model.OpGt:
		return a.After(b)
	case model.OpGe:
		return a.After(b) || a.Equal(b)
	}
	return false
}

func compareString(a, b string, op model.FilterOp) bool {
	switch op {
	case model.OpLt:
		return a < b
	case model.OpLe:
		return a <= b
	case model.OpGt:
		return a > b
	case model.OpGe:
		return a >= b
	}
	return false
}

func containsStr(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// sortedSiblings returns a copy of nodes (one parent's child list, or
// the root list) sorted by spec's column, preserving the tree: it
// never reaches into a node's Children, so a sorted child can never
// land ahead of its own parent. Ties keep their original document
// order via SliceStable (spec §4.4).
func sortedSiblings(nodes []model.Node, spec model.SortSpec) []model.Node {
	out := make([]model.Node, len(nodes))
	copy(out, nodes)
	sort.SliceStable(out, func(i, j int) bool {
		c := compareColumn(spec.Column, out[i], out[j])
		if spec.Direction == model.SortDescending {
			return c > 0
		}
		return c < 0
	})
	return out
}

// compareColumn returns -1/0/1 comparing a and b on column, using the
// spec-mandated status/priority rank order rather than a lexicographic
// string compare (TODO < IN_PROGRESS < DONE; HIGH < MEDIUM < LOW).
func compareColumn(column string, a, b model.Node) int {
	switch column {
	case "status":
		switch {
		case a.Status == b.Status:
			return 0
		case a.Status.Less(b.Status):
			return -1
		default:
			return 1
		}
	case "priority":
		switch {
		case a.Priority == b.Priority:
			return 0
		case a.Priority.Less(b.Priority):
			return -1
		default:
			return 1
		}
	default:
		av, _ := columnValue(a, column)
		bv, _ := columnValue(b, column)
		switch {
		case av == bv:
			return 0
		case av < bv:
			return -1
		default:
			return 1
		}
	}
}
