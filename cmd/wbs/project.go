package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mdwbs/wbs/internal/commandlog"
	"github.com/mdwbs/wbs/internal/lock"
	"github.com/mdwbs/wbs/internal/markdown"
	"github.com/mdwbs/wbs/internal/model"
	"github.com/mdwbs/wbs/internal/projectconfig"
)

func journalPath(dir string) string {
	return filepath.Join(dir, ".tui-wbs", ".journal.json")
}

// acquireLock takes dir's project lock and prints a warning to stderr
// if doing so required evicting a dead holder's stale lock file.
func acquireLock(dir string) (*lock.Lock, error) {
	l, err := lock.Acquire(dir)
	if err != nil {
		return nil, err
	}
	if l.Warning != "" {
		fmt.Fprintln(os.Stderr, "warning:", l.Warning)
	}
	return l, nil
}

// loadProject parses a project's documents and resolves its
// .tui-wbs/config.toml, merging it onto the documents' project view.
func loadProject(dir string) (model.Project, error) {
	proj, err := markdown.ParseDir(dir)
	if err != nil {
		return model.Project{}, fmt.Errorf("parse %s: %w", dir, err)
	}

	loc, err := projectconfig.Load(dir)
	if err != nil {
		return model.Project{}, fmt.Errorf("load project config: %w", err)
	}
	proj.Config = loc.Config

	return proj, nil
}

// loadJournal reads the persisted undo/redo stacks for dir, returning
// an empty log if none exists yet.
func loadJournal(dir string) (*commandlog.Log, error) {
	raw, err := os.ReadFile(journalPath(dir))
	if err != nil {
		if os.IsNotExist(err) {
			return commandlog.New(), nil
		}
		return nil, fmt.Errorf("read journal: %w", err)
	}

	var j commandlog.Journal
	if err := json.Unmarshal(raw, &j); err != nil {
		return nil, fmt.Errorf("decode journal: %w", err)
	}
	return commandlog.FromJournal(j)
}

// saveJournal persists log's undo/redo stacks for dir.
func saveJournal(dir string, log *commandlog.Log) error {
	j, err := log.ToJournal()
	if err != nil {
		return fmt.Errorf("encode journal: %w", err)
	}
	raw, err := json.MarshalIndent(j, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal journal: %w", err)
	}

	path := journalPath(dir)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create .tui-wbs directory: %w", err)
	}
	return os.WriteFile(path, raw, 0o644)
}

// findNodeByTitleOrID resolves a user-supplied reference to a node,
// trying an exact NodeID match first (an interactive session would
// pass one) and falling back to title lookup (what a CLI user types).
func findNodeByTitleOrID(proj model.Project, ref string) (model.Node, bool) {
	if n, ok := proj.FindByID(model.NodeID(ref)); ok {
		return n, ok
	}
	return proj.FindByTitle(ref)
}
