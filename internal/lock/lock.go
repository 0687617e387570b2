// Package lock implements the project's advisory file lock (spec
// §4.3, C8): a ".tui-wbs/.lock" file holding the holder's PID and
// acquisition time, used to prevent two interactive sessions from
// editing the same project concurrently.
package lock

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/gofrs/flock"
	"github.com/pkg/errors"

	"github.com/mdwbs/wbs/internal/model"
)

const staleAfter = time.Hour

// StaleLockTakenOver is the warning token Acquire reports when it had
// to remove and recreate a stale lock file rather than acquiring a
// fresh one outright (spec §4.3, scenario 6).
const StaleLockTakenOver = "StaleLockTakenOver"

// Lock is an acquired advisory lock on one project directory.
type Lock struct {
	path string
	fl   *flock.Flock

	// Warning is StaleLockTakenOver if Acquire had to evict a dead
	// holder's lock file to get this one, or "" otherwise.
	Warning string
}

// Status describes a lock file's contents without acquiring it.
type Status struct {
	Held      bool
	PID       int
	AcquiredAt time.Time
	Stale     bool
}

func lockPath(dir string) string {
	return filepath.Join(dir, ".tui-wbs", ".lock")
}

// Acquire attempts to take the project's lock. If an existing lock
// looks stale (holder process is dead, or it is over an hour old), it
// is taken over rather than blocking — spec §4.3's "a crashed session
// must not permanently wedge the project." Otherwise a live lock
// yields model.ErrLocked.
func Acquire(dir string) (*Lock, error) {
	path := lockPath(dir)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrap(err, "create lock directory")
	}

	// A lock file whose holder never took (or no longer holds) the OS
	// flock is judged by its PID/timestamp contents alone.
	prior, _ := Inspect(dir)

	fl := flock.New(path)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, errors.Wrap(err, "acquire lock")
	}

	var warning string
	if ok && prior.Held {
		if !prior.Stale {
			_ = fl.Unlock()
			return nil, model.ErrLocked
		}
		warning = StaleLockTakenOver
	}
	if !ok {
		st, _ := Inspect(dir)
		if !st.Stale {
			return nil, model.ErrLocked
		}

		// Stale: remove the old lock file and lock a fresh one at the
		// same path. A flock is held against an inode, not a path, so
		// the dead holder's handle (if any) no longer applies to the
		// new file.
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return nil, errors.Wrap(err, "remove stale lock file")
		}
		fl = flock.New(path)
		ok, err = fl.TryLock()
		if err != nil {
			return nil, errors.Wrap(err, "acquire lock after stale takeover")
		}
		if !ok {
			return nil, model.ErrLocked
		}
		warning = StaleLockTakenOver
	}

	if err := writeLockFile(path); err != nil {
		_ = fl.Unlock()
		return nil, errors.Wrap(err, "write lock file")
	}

	return &Lock{path: path, fl: fl, Warning: warning}, nil
}

// Release removes the lock file and drops the OS-level flock.
func (l *Lock) Release() error {
	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "remove lock file")
	}
	return l.fl.Unlock()
}

// Held reports whether this process still holds the lock file it
// wrote (another process taking over a stale lock replaces its
// contents, which Held detects as lock loss — spec §4.3, ErrLockLost).
func (l *Lock) Held() (bool, error) {
	st, err := inspectPath(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return st.PID == os.Getpid(), nil
}

// Inspect reads a project's lock file, if any, without acquiring it.
func Inspect(dir string) (Status, error) {
	return inspectPath(lockPath(dir))
}

func inspectPath(path string) (Status, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Status{}, nil
		}
		return Status{}, errors.Wrap(err, "read lock file")
	}

	pid, acquired, ok := parseLockFile(string(raw))
	if !ok {
		return Status{Held: true, Stale: true}, nil
	}

	stale := !isProcessAlive(pid) || time.Since(acquired) > staleAfter
	return Status{Held: true, PID: pid, AcquiredAt: acquired, Stale: stale}, nil
}

func writeLockFile(path string) error {
	contents := fmt.Sprintf("%d\n%s\n", os.Getpid(), time.Now().UTC().Format(time.RFC3339))
	return os.WriteFile(path, []byte(contents), 0o644)
}

func parseLockFile(contents string) (pid int, acquiredAt time.Time, ok bool) {
	lines := strings.Split(strings.TrimSpace(contents), "\n")
	if len(lines) < 2 {
		return 0, time.Time{}, false
	}
	pid, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil {
		return 0, time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, strings.TrimSpace(lines[1]))
	if err != nil {
		return 0, time.Time{}, false
	}
	return pid, t, true
}

// isProcessAlive reports whether pid names a running process, using
// the signal-0 convention: sending signal 0 never delivers anything
// but still errors if the process does not exist.
func isProcessAlive(pid int) bool {
	if pid <= 0 {
		return false
	}
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	return process.Signal(syscall.Signal(0)) == nil
}
