// Package debug provides the tracer used throughout this module: a
// single Logf call gated on an env var / --verbose flag, colorized
// when attached to a terminal, optionally mirrored to a rotating log
// file.
package debug

import (
	"fmt"
	"os"
	"sync"

	"github.com/muesli/termenv"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	mu      sync.Mutex
	enabled = os.Getenv("WBS_DEBUG") != ""
	file    *lumberjack.Logger
	profile = termenv.ColorProfile()
	prefix  = termenv.String("[wbs] ").Foreground(profile.Color("243")).String()
)

// SetEnabled turns the tracer on or off, overriding WBS_DEBUG. Used by
// the CLI's --verbose flag.
func SetEnabled(v bool) {
	mu.Lock()
	defer mu.Unlock()
	enabled = v
}

// Enabled reports whether Logf currently emits anything.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return enabled
}

// SetLogFile mirrors every Logf call to a rotating file in addition to
// stderr. Passing an empty path disables file mirroring.
func SetLogFile(path string) {
	mu.Lock()
	defer mu.Unlock()
	if path == "" {
		file = nil
		return
	}
	file = &lumberjack.Logger{
		Filename:   path,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}
}

// Logf prints a formatted trace line to stderr when the tracer is
// enabled, and to the rotating log file if one has been configured.
// Calls are free when the tracer is off: the format string is never
// evaluated.
func Logf(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if !enabled {
		return
	}
	line := fmt.Sprintf(format, args...)
	fmt.Fprintln(os.Stderr, prefix+line)
	if file != nil {
		fmt.Fprintln(file, line)
	}
}
