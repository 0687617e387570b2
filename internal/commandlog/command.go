// Package commandlog implements the undo/redo command log (spec §4.4,
// C5): every mutation to a Project is expressed as a Command whose
// Apply returns both the new Project and the inverse Command needed to
// undo it, modeled on the all-or-nothing transaction convention the
// storage layer documents for database writes, here translated to
// immutable in-memory snapshots.
package commandlog

import "github.com/mdwbs/wbs/internal/model"

// Command mutates a Project and returns the new Project plus the
// Command that would undo this one. Apply never mutates proj in
// place — Project and Node are value types throughout.
type Command interface {
	Apply(proj model.Project) (model.Project, Command, error)
}

// Log holds the undo/redo stacks for one open project session.
// Applying any command through Do clears the redo stack — the usual
// "new edit invalidates future history" rule.
type Log struct {
	undo []Command
	redo []Command
}

// New returns an empty command log.
func New() *Log {
	return &Log{}
}

// Do applies cmd, pushes its inverse onto the undo stack, and clears
// the redo stack.
func (l *Log) Do(proj model.Project, cmd Command) (model.Project, error) {
	next, inverse, err := cmd.Apply(proj)
	if err != nil {
		return proj, err
	}
	l.undo = append(l.undo, inverse)
	l.redo = nil
	return model.ReconcileProject(next), nil
}

// CanUndo reports whether Undo has a command to apply.
func (l *Log) CanUndo() bool { return len(l.undo) > 0 }

// CanRedo reports whether Redo has a command to apply.
func (l *Log) CanRedo() bool { return len(l.redo) > 0 }

// Undo applies the most recently pushed inverse command, moving its
// own inverse onto the redo stack. Undo/redo applications never clear
// either stack themselves — only Do does that.
func (l *Log) Undo(proj model.Project) (model.Project, error) {
	if !l.CanUndo() {
		return proj, nil
	}
	cmd := l.undo[len(l.undo)-1]
	l.undo = l.undo[:len(l.undo)-1]

	next, inverse, err := cmd.Apply(proj)
	if err != nil {
		l.undo = append(l.undo, cmd)
		return proj, err
	}
	l.redo = append(l.redo, inverse)
	return model.ReconcileProject(next), nil
}

// Redo re-applies the most recently undone command.
func (l *Log) Redo(proj model.Project) (model.Project, error) {
	if !l.CanRedo() {
		return proj, nil
	}
	cmd := l.redo[len(l.redo)-1]
	l.redo = l.redo[:len(l.redo)-1]

	next, inverse, err := cmd.Apply(proj)
	if err != nil {
		l.redo = append(l.redo, cmd)
		return proj, err
	}
	l.undo = append(l.undo, inverse)
	return model.ReconcileProject(next), nil
}
