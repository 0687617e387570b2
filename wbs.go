// Package wbs provides a minimal public API for embedding the WBS core
// into other Go programs.
//
// Most callers should just run the wbs binary. This package exports
// only the types and functions needed for Go code that wants to parse,
// mutate, and render a work-breakdown-structure project
// programmatically — the same surface cmd/wbs itself is built on.
package wbs

import (
	"time"

	"github.com/mdwbs/wbs/internal/commandlog"
	"github.com/mdwbs/wbs/internal/gantt"
	"github.com/mdwbs/wbs/internal/markdown"
	"github.com/mdwbs/wbs/internal/model"
	"github.com/mdwbs/wbs/internal/projectconfig"
	"github.com/mdwbs/wbs/internal/view"
)

// Core value types from internal/model.
type (
	NodeID          = model.NodeID
	Node            = model.Node
	CustomField     = model.CustomField
	Status          = model.Status
	Project         = model.Project
	Document        = model.Document
	Warning         = model.Warning
	ColumnDef       = model.ColumnDef
	ColumnType      = model.ColumnType
	ProjectConfig   = model.ProjectConfig
	ViewConfig      = model.ViewConfig
	ViewType        = model.ViewType
	GanttScale      = model.GanttScale
	GanttOptions    = model.GanttOptions
	FilterPredicate = model.FilterPredicate
	FilterOp        = model.FilterOp
	SortSpec        = model.SortSpec
	SortDirection   = model.SortDirection
)

// Status constants.
const (
	StatusTodo       = model.StatusTodo
	StatusInProgress = model.StatusInProgress
	StatusDone       = model.StatusDone
)

// Gantt scale constants.
const (
	ScaleDay     = model.ScaleDay
	ScaleWeek    = model.ScaleWeek
	ScaleMonth   = model.ScaleMonth
	ScaleQuarter = model.ScaleQuarter
	ScaleYear    = model.ScaleYear
)

// View type constants.
const (
	ViewTable      = model.ViewTable
	ViewTableGantt = model.ViewTableGantt
	ViewKanban     = model.ViewKanban
)

// NewNode builds a fresh node at depth with status TODO.
func NewNode(title string, depth int) Node {
	return model.NewNode(title, depth)
}

// DefaultProjectConfig returns the config a new project is seeded with.
func DefaultProjectConfig(name string) ProjectConfig {
	return model.DefaultProjectConfig(name)
}

// ParseDir scans dir for *.wbs.md files and returns their Project.
func ParseDir(dir string) (Project, error) {
	return markdown.ParseDir(dir)
}

// Save writes every modified document in proj back to its file.
func Save(proj Project) error {
	return markdown.Save(proj)
}

// LoadProjectConfig reads a project's .tui-wbs/config.toml, if present.
func LoadProjectConfig(dir string) (ProjectConfig, error) {
	loc, err := projectconfig.Load(dir)
	if err != nil {
		return ProjectConfig{}, err
	}
	return loc.Config, nil
}

// Log is the undoable command history behind every mutation.
type Log = commandlog.Log

// NewLog returns an empty command log.
func NewLog() *Log {
	return commandlog.New()
}

// Command is anything that can be applied to and undone from a Project.
type Command = commandlog.Command

// Command constructors, re-exported so callers never need to import
// internal/commandlog directly to build one.
type (
	AddChild        = commandlog.AddChild
	AddSibling      = commandlog.AddSibling
	Delete          = commandlog.Delete
	RenameTitle     = commandlog.RenameTitle
	SetField        = commandlog.SetField
	MoveUp          = commandlog.MoveUp
	MoveDown        = commandlog.MoveDown
	Indent          = commandlog.Indent
	Outdent         = commandlog.Outdent
	ReorderInColumn = commandlog.ReorderInColumn
	SetStatus       = commandlog.SetStatus
)

// DisplayRow is one row of a projected, filtered, sorted view.
type DisplayRow = view.DisplayRow

// ProjectView runs a ViewConfig's filter/sort/grouping pipeline over proj.
func ProjectView(proj Project, cfg ViewConfig, today time.Time) []DisplayRow {
	return view.Project(proj, cfg, today)
}

// Grid is a laid-out Gantt chart ready for rendering.
type Grid = gantt.Grid
