package debug

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogf_DisabledIsSilent(t *testing.T) {
	SetEnabled(false)
	defer SetEnabled(false)

	assert.NotPanics(t, func() {
		Logf("unreachable %d", 1)
	})
}

func TestSetLogFile_MirrorsWhenEnabled(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wbs.log")

	SetEnabled(true)
	SetLogFile(path)
	defer func() {
		SetEnabled(false)
		SetLogFile("")
	}()

	Logf("hello %s", "world")

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "hello world")
}

func TestEnabled_ReflectsSetEnabled(t *testing.T) {
	SetEnabled(true)
	assert.True(t, Enabled())
	SetEnabled(false)
	assert.False(t, Enabled())
}
