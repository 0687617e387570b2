package lock

import (
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdwbs/wbs/internal/model"
)

func TestAcquire_ThenSecondCallerLocked(t *testing.T) {
	dir := t.TempDir()

	l, err := Acquire(dir)
	require.NoError(t, err)
	defer l.Release()

	_, err = Acquire(dir)
	assert.ErrorIs(t, err, model.ErrLocked)
}

func TestAcquire_ReleaseThenReacquire(t *testing.T) {
	dir := t.TempDir()

	l, err := Acquire(dir)
	require.NoError(t, err)
	require.NoError(t, l.Release())

	l2, err := Acquire(dir)
	require.NoError(t, err)
	defer l2.Release()
}

func TestInspect_DeadPidIsStale(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(dir+"/.tui-wbs", 0o755))
	require.NoError(t, os.WriteFile(dir+"/.tui-wbs/.lock", []byte("999999\n"+time.Now().UTC().Format(time.RFC3339)+"\n"), 0o644))

	st, err := Inspect(dir)
	require.NoError(t, err)
	assert.True(t, st.Held)
	assert.True(t, st.Stale)
}

func TestAcquire_StaleLockIsTakenOverWithWarning(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(dir+"/.tui-wbs", 0o755))
	require.NoError(t, os.WriteFile(dir+"/.tui-wbs/.lock", []byte("999999\n"+time.Now().UTC().Format(time.RFC3339)+"\n"), 0o644))

	l, err := Acquire(dir)
	require.NoError(t, err)
	defer l.Release()

	assert.Equal(t, StaleLockTakenOver, l.Warning)

	held, err := l.Held()
	require.NoError(t, err)
	assert.True(t, held)
}

func TestAcquire_FreshLockCarriesNoWarning(t *testing.T) {
	dir := t.TempDir()

	l, err := Acquire(dir)
	require.NoError(t, err)
	defer l.Release()

	assert.Empty(t, l.Warning)
}

func TestInspect_RecentLivePidNotStale(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(dir+"/.tui-wbs", 0o755))
	contents := []byte(strconv.Itoa(os.Getpid()) + "\n" + time.Now().UTC().Format(time.RFC3339) + "\n")
	require.NoError(t, os.WriteFile(dir+"/.tui-wbs/.lock", contents, 0o644))

	st, err := Inspect(dir)
	require.NoError(t, err)
	assert.False(t, st.Stale)
}
