package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, dir string) {
	t.Helper()
	raw := "# Ship beta\n<!-- status: TODO | assignee: sam -->\nLaunch notes.\n## Write docs\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "plan.wbs.md"), []byte(raw), 0o644))
}

// runCmd executes rootCmd with args against dir, capturing stdout.
func runCmd(t *testing.T, dir string, args ...string) string {
	t.Helper()
	t.Chdir(dir)

	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() { os.Stdout = old }()

	rootCmd.SetArgs(append(args, "--dir", dir))
	err = rootCmd.Execute()

	w.Close()
	var buf bytes.Buffer
	buf.ReadFrom(r)
	os.Stdout = old

	require.NoError(t, err)
	return buf.String()
}

func TestOpenCommand_PrintsOutline(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir)

	out := runCmd(t, dir, "open")

	assert.Contains(t, out, "Ship beta")
	assert.Contains(t, out, "Write docs")
}

func TestAddCommand_AppendsRootAndPersists(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir)

	runCmd(t, dir, "add", "Cut release notes")

	out := runCmd(t, dir, "open")
	assert.Contains(t, out, "Cut release notes")
}

func TestSetCommand_WhenResolvesNaturalLanguageDate(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir)

	out := runCmd(t, dir, "set", "Ship beta", "start", "--when", "tomorrow")

	assert.Contains(t, out, "set Ship beta.start =")
}

func TestUndoRedoCommands_RoundTripThroughJournal(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir)

	runCmd(t, dir, "add", "Cut release notes")
	require.Contains(t, runCmd(t, dir, "open"), "Cut release notes")

	out := runCmd(t, dir, "undo")
	assert.Equal(t, "undone\n", out)
	assert.NotContains(t, runCmd(t, dir, "open"), "Cut release notes")

	out = runCmd(t, dir, "redo")
	assert.Equal(t, "redone\n", out)
	assert.Contains(t, runCmd(t, dir, "open"), "Cut release notes")
}

func TestUndoCommand_NothingToUndoIsNotAnError(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir)

	out := runCmd(t, dir, "undo")
	assert.Equal(t, "nothing to undo\n", out)
}

func TestLockStatusCommand_ReportsNotLockedAfterSave(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir)

	runCmd(t, dir, "save")
	out := runCmd(t, dir, "lock", "status")
	assert.True(t, strings.Contains(out, "not locked"))
}

func TestConfigShowCommand_ListsKnownKeys(t *testing.T) {
	dir := t.TempDir()

	out := runCmd(t, dir, "config", "show")
	assert.Contains(t, out, "default-scale")
}
