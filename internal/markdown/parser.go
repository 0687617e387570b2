package markdown

import (
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/mdwbs/wbs/internal/model"
)

// knownMetaKeys are the metadata-comment keys this tool understands by
// name; anything else decodes to a custom field (spec §4.1 step 3).
var knownMetaKeys = map[string]bool{
	"status": true, "assignee": true, "duration": true, "priority": true,
	"depends": true, "start": true, "end": true, "milestone": true, "progress": true,
}

// ParseDir scans dir for *.wbs.md files and returns a Project. Per-file
// failures never abort the load: an unreadable or headless file yields
// a file-level warning and an empty Document (spec §4.1).
func ParseDir(dir string) (model.Project, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil // an entry the walk cannot read is skipped, not a fatal walk error
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(path, ".wbs.md") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return model.Project{}, err
	}
	sort.Strings(paths)

	proj := model.Project{Dir: dir}
	for _, p := range paths {
		proj.Documents = append(proj.Documents, ParseFile(p))
	}
	proj = proj.SortDocuments()
	proj = resolveDepends(proj)
	proj = proj.MergeWarnings()
	return proj, nil
}

// ParseFile parses a single *.wbs.md file into a Document. Read or
// decode failures produce an empty Document carrying a file-level
// warning rather than an error (spec §4.1, §7).
func ParseFile(path string) model.Document {
	raw, err := os.ReadFile(path)
	if err != nil {
		return model.Document{
			Path:     path,
			Warnings: []model.Warning{{File: path, Kind: "IoError", Message: err.Error()}},
		}
	}
	return parseBytes(path, raw)
}

// builder is the mutable, in-progress state of one open Node while the
// forest walk has not yet seen its closing boundary. Node itself stays
// a pure value type; builder is the scratch space the parser needs to
// assemble one before freezing it.
type builder struct {
	level        int
	headingStart int
	memoStart    int
	decoded      model.Node // title/status/.../custom already decoded; Children/Memo/raw still pending
	children     []model.Node
	warnings     []model.Warning
}

// finalize freezes b into a model.Node now that its closing boundary
// (end, exclusive) is known.
func (b *builder) finalize(raw []byte, end int) model.Node {
	n := b.decoded
	n.Children = b.children
	if b.memoStart >= 0 && b.memoStart <= end {
		n.Memo = raw[b.memoStart:end]
	}
	if b.headingStart <= end {
		n = n.WithRawSpan(raw[b.headingStart:end])
	}
	return n
}

func parseBytes(path string, raw []byte) model.Document {
	lines := splitLines(raw)
	doc := model.Document{Path: path, Raw: raw}

	var stack []*builder
	var roots []model.Node

	attach := func(n model.Node) {
		if len(stack) > 0 {
			top := stack[len(stack)-1]
			top.children = append(top.children, n)
		} else {
			roots = append(roots, n)
		}
	}

	closeTo := func(level int, end int) {
		for len(stack) > 0 && stack[len(stack)-1].level >= level {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			attach(top.finalize(raw, end))
		}
	}

	lineIdx := 0
	for lineIdx < len(lines) {
		line := lines[lineIdx]
		text := string(raw[line.Start:line.End])
		m := headingRE.FindStringSubmatch(text)
		if m == nil {
			lineIdx++
			continue
		}
		level := len(m[1])
		title := m[2]
		headingStart := line.Start

		closeTo(level, headingStart)

		// A parent's memo ends where its first child heading begins.
		if len(stack) > 0 {
			if top := stack[len(stack)-1]; top.memoStart >= 0 && top.memoStart <= headingStart {
				top.decoded.Memo = raw[top.memoStart:headingStart]
				top.memoStart = -1
			}
		}

		var parentLevel int
		hasParent := len(stack) > 0
		if hasParent {
			parentLevel = stack[len(stack)-1].level
		}
		if hasParent && level != parentLevel+1 {
			doc.Warnings = append(doc.Warnings, model.Warning{
				File: path, Kind: "HeadingLevelJump",
				Message: "heading '" + title + "' at level " + strconv.Itoa(level) +
					" is not a direct child of its nearest open ancestor (level " + strconv.Itoa(parentLevel) + ")",
			})
		}

		n := model.NewNode(title, level)
		n.Edited = false
		n.SourceFile = path

		lineIdx++

		// Metadata comment: first non-blank line after the heading.
		metaLineIdx := lineIdx
		for metaLineIdx < len(lines) && isBlank(raw, lines[metaLineIdx]) {
			metaLineIdx++
		}
		var fieldWarnings []model.Warning
		if metaLineIdx < len(lines) {
			mm := metaRE.FindStringSubmatch(string(raw[lines[metaLineIdx].Start:lines[metaLineIdx].End]))
			if mm != nil {
				n, fieldWarnings = applyMetadata(n, mm[1])
				lineIdx = metaLineIdx + 1
			}
		}
		for _, w := range fieldWarnings {
			w.File = path
			doc.Warnings = append(doc.Warnings, w)
		}

		memoStart := len(raw)
		if lineIdx < len(lines) {
			memoStart = lines[lineIdx].Start
		}

		b := &builder{
			level:        level,
			headingStart: headingStart,
			memoStart:    memoStart,
			decoded:      n,
		}
		stack = append(stack, b)
	}

	closeTo(0, len(raw))
	if len(roots) == 0 {
		doc.Warnings = append(doc.Warnings, model.Warning{
			File: path, Kind: "NoHeadings", Message: "file contains no headings",
		})
	}
	doc.Roots = roots
	return doc
}
