// Package watch wraps fsnotify to detect out-of-band edits to a WBS
// project's *.wbs.md files while it is open in an interactive session,
// surfacing a debounced re-scan hint rather than changed bytes — the
// caller always re-parses through internal/markdown.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounceDelay = 300 * time.Millisecond

// Watcher monitors a project directory for changes to its Markdown
// documents and calls OnChange (debounced) when one is modified,
// created, or removed out-of-band.
type Watcher struct {
	fsw       *fsnotify.Watcher
	dir       string
	debouncer *debouncer
	cancel    context.CancelFunc
	wg        sync.WaitGroup
}

// New creates a watcher for dir. Call Start to begin watching and
// Close to release resources.
func New(dir string, onChange func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	return &Watcher{
		fsw:       fsw,
		dir:       dir,
		debouncer: newDebouncer(debounceDelay, onChange),
	}, nil
}

// Start begins monitoring in a background goroutine until ctx is
// canceled or Close is called.
func (w *Watcher) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		for {
			select {
			case event, ok := <-w.fsw.Events:
				if !ok {
					return
				}
				if isRelevant(event) {
					w.debouncer.trigger()
				}
			case _, ok := <-w.fsw.Errors:
				if !ok {
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()
}

func isRelevant(event fsnotify.Event) bool {
	if !strings.HasSuffix(event.Name, ".wbs.md") {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0
}

// Close stops monitoring and releases the underlying fsnotify watcher.
func (w *Watcher) Close() error {
	if w.cancel != nil {
		w.cancel()
	}
	w.wg.Wait()
	w.debouncer.cancel()
	return w.fsw.Close()
}

// debouncer collapses a burst of rapid triggers into a single delayed
// call, the same pattern the teacher's daemon file watcher uses to
// avoid re-scanning mid-write.
type debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	fn    func()
	timer *time.Timer
}

func newDebouncer(delay time.Duration, fn func()) *debouncer {
	return &debouncer{delay: delay, fn: fn}
}

func (d *debouncer) trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.fn)
}

func (d *debouncer) cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
}

// ProjectDir returns the directory being watched, for diagnostics.
func (w *Watcher) ProjectDir() string {
	return filepath.Clean(w.dir)
}
