package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize_DefaultsWithNoConfigFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	require.NoError(t, Initialize())
	assert.Equal(t, "week", GetString("default-scale"))
	assert.False(t, GetBool("verbose"))
}

func TestInitialize_EnvVarOverridesDefault(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("WBS_VERBOSE", "true")

	require.NoError(t, Initialize())
	assert.True(t, GetBool("verbose"))
	assert.Equal(t, SourceEnvVar, GetValueSource("verbose"))
}

func TestInitialize_ReadsConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	configDir := filepath.Join(home, ".config")
	t.Setenv("XDG_CONFIG_HOME", configDir)

	require.NoError(t, os.MkdirAll(filepath.Join(configDir, "wbs"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(configDir, "wbs", "config.yaml"),
		[]byte("default-scale: month\nactor: grace\n"),
		0o644,
	))

	require.NoError(t, Initialize())
	assert.Equal(t, "month", GetString("default-scale"))
	assert.Equal(t, "grace", GetString("actor"))
	assert.Equal(t, SourceConfigFile, GetValueSource("actor"))
}

func TestGetActor_PrefersFlagThenConfigThenEnv(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("USER", "fallback-user")
	require.NoError(t, Initialize())

	assert.Equal(t, "flag-actor", GetActor("flag-actor"))
	assert.Equal(t, "fallback-user", GetActor(""))
}
