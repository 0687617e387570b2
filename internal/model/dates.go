package model

import (
	"strconv"
	"time"
)

const dateLayout = "2006-01-02"

// isValidDate reports whether s parses as a YYYY-MM-DD calendar date.
func isValidDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

// ParseDate parses a YYYY-MM-DD string. Empty string is treated as the
// zero time with ok=false — callers that need to distinguish "empty"
// from "invalid" should check the input string themselves first.
func ParseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatDate renders t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// AddDuration applies a free-form short duration ("5d", "2w", "1m") to
// start and returns the resulting end date. ok is false if dur does not
// parse as <int><unit> with unit in {d,w,m}.
func AddDuration(start time.Time, dur string) (time.Time, bool) {
	if dur == "" {
		return time.Time{}, false
	}
	unit := dur[len(dur)-1]
	numPart := dur[:len(dur)-1]
	n, err := strconv.Atoi(numPart)
	if err != nil || n < 0 {
		return time.Time{}, false
	}
	switch unit {
	case 'd':
		return start.AddDate(0, 0, n), true
	case 'w':
		return start.AddDate(0, 0, n*7), true
	case 'm':
		return start.AddDate(0, n, 0), true
	default:
		return time.Time{}, false
	}
}

// DurationBetween derives a free-form duration string ("Nd") from two
// dates. Always expressed in whole days — the shortest unambiguous
// form this tool emits on auto-fill.
func DurationBetween(start, end time.Time) string {
	days := int(end.Sub(start).Hours() / 24)
	if days < 0 {
		days = 0
	}
	return formatDays(days)
}

func formatDays(days int) string {
	if days%7 == 0 && days > 0 {
		return strconv.Itoa(days/7) + "w"
	}
	return strconv.Itoa(days) + "d"
}
