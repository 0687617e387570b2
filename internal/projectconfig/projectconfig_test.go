package projectconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdwbs/wbs/internal/model"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()

	loc, err := Load(dir)

	require.NoError(t, err)
	assert.Equal(t, "table", loc.Config.DefaultViewID)
	assert.NotEmpty(t, loc.Config.Views)
}

func TestLoad_DecodesNestedConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".tui-wbs"), 0o755))
	raw := `name = "Launch Plan"
default_view_id = "gantt"

[[views]]
id = "gantt"
name = "Gantt"
type = "table+gantt"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".tui-wbs", "config.toml"), []byte(raw), 0o644))

	loc, err := Load(dir)

	require.NoError(t, err)
	assert.Equal(t, "Launch Plan", loc.Config.Name)
	assert.Equal(t, "gantt", loc.Config.DefaultViewID)
	require.Len(t, loc.Config.Views, 1)
	assert.Equal(t, model.ViewTableGantt, loc.Config.Views[0].Type)
}

func TestSave_NewFileThenReload(t *testing.T) {
	dir := t.TempDir()
	cfg := model.DefaultProjectConfig("My Project")
	cfg.Holidays = []string{"2026-12-25"}

	loc, err := Load(dir)
	require.NoError(t, err)

	require.NoError(t, Save(loc, cfg))

	reloaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "My Project", reloaded.Config.Name)
	assert.Equal(t, []string{"2026-12-25"}, reloaded.Config.Holidays)
}
