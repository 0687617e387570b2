package wbs_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mdwbs/wbs"
)

func TestParseDirAndSave_RoundTrips(t *testing.T) {
	dir := t.TempDir()
	raw := "# Ship beta\n<!-- status: TODO -->\n"
	if err := os.WriteFile(filepath.Join(dir, "plan.wbs.md"), []byte(raw), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	proj, err := wbs.ParseDir(dir)
	if err != nil {
		t.Fatalf("ParseDir: %v", err)
	}
	if len(proj.Roots()) != 1 {
		t.Fatalf("expected 1 root, got %d", len(proj.Roots()))
	}

	log := wbs.NewLog()
	proj, err = log.Do(proj, &wbs.AddChild{Title: "Write changelog"})
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if len(proj.Roots()) != 2 {
		t.Fatalf("expected 2 roots after AddChild, got %d", len(proj.Roots()))
	}

	if err := wbs.Save(proj); err != nil {
		t.Fatalf("Save: %v", err)
	}
}

func TestDefaultProjectConfig_SeedsATableView(t *testing.T) {
	cfg := wbs.DefaultProjectConfig("demo")
	if cfg.DefaultViewID != "table" {
		t.Errorf("DefaultViewID = %q, want %q", cfg.DefaultViewID, "table")
	}
	if _, ok := cfg.ViewByID("table"); !ok {
		t.Error("expected a seeded table view")
	}
}

func TestProjectView_AppliesConfiguredColumns(t *testing.T) {
	dir := t.TempDir()
	raw := "# Ship beta\n<!-- status: TODO -->\n"
	if err := os.WriteFile(filepath.Join(dir, "plan.wbs.md"), []byte(raw), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	proj, err := wbs.ParseDir(dir)
	if err != nil {
		t.Fatalf("ParseDir: %v", err)
	}
	cfg := wbs.DefaultProjectConfig("demo")
	view, _ := cfg.ViewByID(cfg.DefaultViewID)

	rows := wbs.ProjectView(proj, view, time.Now())
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
}
