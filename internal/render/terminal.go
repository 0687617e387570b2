// Package render turns a view.DisplayRow sequence (or a gantt.Grid)
// into terminal output: an outline/table for Table and Kanban views,
// an overlaid date grid for Table+Gantt (spec §4.5, §4.6, C7).
package render

import (
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// IsTerminal returns true if stdout is connected to a terminal (TTY).
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// ShouldUseColor determines if ANSI color codes should be used.
// Respects standard conventions:
//   - NO_COLOR: https://no-color.org/ - disables color if set
//   - CLICOLOR=0: disables color
//   - CLICOLOR_FORCE: forces color even in non-TTY
//   - Falls back to TTY detection
func ShouldUseColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("CLICOLOR") == "0" {
		return false
	}
	if os.Getenv("CLICOLOR_FORCE") != "" {
		return true
	}
	return IsTerminal()
}

// ShouldUseEmoji determines if emoji decorations (status glyphs,
// milestone diamonds) should be used. Disabled in non-TTY mode to keep
// output machine-readable; can be forced off with WBS_NO_EMOJI.
func ShouldUseEmoji() bool {
	if os.Getenv("WBS_NO_EMOJI") != "" {
		return false
	}
	return IsTerminal()
}

// ColorProfile reports the terminal's color capability, honoring the
// same NO_COLOR/CLICOLOR_FORCE rules ShouldUseColor does.
func ColorProfile() termenv.Profile {
	if !ShouldUseColor() {
		return termenv.Ascii
	}
	return termenv.ColorProfile()
}

// Width returns the width of the terminal or a default value.
func Width() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}
