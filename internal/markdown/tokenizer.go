// Package markdown implements the Markdown parser (C2) and writer (C3):
// converting a directory of *.wbs.md files to an in-memory model.Project
// and back again with byte-preserving fidelity for any region the user
// did not touch (spec §4.1, §4.2).
package markdown

import "regexp"

var (
	headingRE = regexp.MustCompile(`^(#{1,6}) (.+)$`)
	metaRE    = regexp.MustCompile(`^<!--\s*(.*?)\s*-->\s*$`)
)

// lineSpan is a half-open byte range [Start, End) within a document's
// raw content, End exclusive of the line's own trailing newline.
type lineSpan struct {
	Start, End       int // text only, newline excluded
	LineEnd          int // offset just past the newline (or len(raw) at EOF)
}

// splitLines indexes raw into line spans without copying, so the
// parser and writer can both address exact byte ranges of the original
// file.
func splitLines(raw []byte) []lineSpan {
	var lines []lineSpan
	start := 0
	for i := 0; i < len(raw); i++ {
		if raw[i] == '\n' {
			end := i
			if end > start && raw[end-1] == '\r' {
				end--
			}
			lines = append(lines, lineSpan{Start: start, End: end, LineEnd: i + 1})
			start = i + 1
		}
	}
	if start < len(raw) {
		lines = append(lines, lineSpan{Start: start, End: len(raw), LineEnd: len(raw)})
	}
	return lines
}

// tokenKind classifies one line for the forest builder.
type tokenKind int

const (
	tokHeading tokenKind = iota
	tokMeta
	tokBlank
	tokBody
)

type token struct {
	kind  tokenKind
	span  lineSpan
	level int    // tokHeading only
	title string // tokHeading only
	meta  string // tokMeta only: the trimmed inner payload
}

// isBlank reports whether raw[s.Start:s.End] is empty or all whitespace.
func isBlank(raw []byte, s lineSpan) bool {
	for i := s.Start; i < s.End; i++ {
		switch raw[i] {
		case ' ', '\t':
		default:
			return false
		}
	}
	return true
}
