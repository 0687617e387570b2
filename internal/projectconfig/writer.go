package projectconfig

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/mdwbs/wbs/internal/model"
)

// scalarKeyRE matches a top-level "key = value  # comment" line, the
// preamble portion of the file this package preserves byte-for-byte
// whenever the encoded value is unchanged.
var scalarKeyRE = regexp.MustCompile(`^([A-Za-z0-9_]+)\s*=`)

// tableHeaderRE matches the start of any TOML table or array-of-tables
// header ("[name]" or "[[name]]"), the boundary past which this writer
// stops trying to preserve comments and simply regenerates the region.
var tableHeaderRE = regexp.MustCompile(`^\[`)

// Save writes cfg to loc.Path atomically. If loc.Raw holds a
// previously-read file, its scalar-key preamble is preserved
// line-for-line wherever the new value renders identically to what a
// plain re-encode would produce, so hand-added comments above or
// beside unrelated keys survive; the table region (views,
// custom_columns, gantt_widths) is always regenerated since no pack
// TOML encoder can diff structured tables against source comments
// (see DESIGN.md, C4).
func Save(loc Located, cfg model.ProjectConfig) error {
	doc := toTOML(cfg)

	var out []byte
	if len(loc.Raw) > 0 {
		out = preservingEncode(loc.Raw, doc)
	} else {
		out = freshEncode(doc)
	}

	dir := filepath.Dir(loc.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "create config directory")
	}
	return atomicWrite(loc.Path, out)
}

func freshEncode(doc tomlDoc) []byte {
	var buf bytes.Buffer
	_ = toml.NewEncoder(&buf).Encode(doc)
	return buf.Bytes()
}

// preservingEncode rewrites only the scalar preamble of raw in place
// (matching keys get their value replaced, non-matching lines —
// comments, blank lines — pass through untouched) and appends a fresh
// encoding of the table region after it.
func preservingEncode(raw []byte, doc tomlDoc) []byte {
	scalars := scalarValues(doc)

	lines := bytes.Split(raw, []byte("\n"))
	var preamble bytes.Buffer
	tableStart := -1

	for i, line := range lines {
		if tableHeaderRE.Match(bytes.TrimSpace(line)) {
			tableStart = i
			break
		}
		if m := scalarKeyRE.FindSubmatch(line); m != nil {
			key := string(m[1])
			if v, ok := scalars[key]; ok {
				rest := bytes.TrimSpace(line[len(m[0]):])
				tail := bytes.TrimSpace(bytes.TrimPrefix(rest, []byte(v)))
				if bytes.HasPrefix(rest, []byte(v)) && (len(tail) == 0 || tail[0] == '#') {
					preamble.Write(line)
					preamble.WriteByte('\n')
				} else {
					preamble.WriteString(key + " = " + v + "\n")
				}
				delete(scalars, key)
				continue
			}
		}
		preamble.Write(line)
		preamble.WriteByte('\n')
	}

	// Any scalar key present in the new config but absent from the
	// original preamble (a brand-new field) gets appended.
	for _, key := range []string{"name", "default_view_id", "date_format", "default_columns", "holidays"} {
		if v, ok := scalars[key]; ok {
			preamble.WriteString(key + " = " + v + "\n")
		}
	}

	var tableBuf bytes.Buffer
	tableDoc := tomlDoc{GanttWidths: doc.GanttWidths, Views: doc.Views, CustomColumns: doc.CustomColumns}
	_ = toml.NewEncoder(&tableBuf).Encode(tableDoc)

	var out bytes.Buffer
	out.Write(preamble.Bytes())
	out.Write(tableBuf.Bytes())
	_ = tableStart // original table region is fully superseded by tableBuf
	return out.Bytes()
}

// scalarValues renders each top-level scalar field of doc as the exact
// TOML literal it would encode to, for line-level preamble comparison.
func scalarValues(doc tomlDoc) map[string]string {
	out := map[string]string{}
	if doc.Name != "" {
		out["name"] = strconv.Quote(doc.Name)
	}
	if doc.DefaultViewID != "" {
		out["default_view_id"] = strconv.Quote(doc.DefaultViewID)
	}
	if doc.DateFormat != "" {
		out["date_format"] = strconv.Quote(doc.DateFormat)
	}
	if len(doc.DefaultColumns) > 0 {
		out["default_columns"] = tomlStringArray(doc.DefaultColumns)
	}
	if len(doc.Holidays) > 0 {
		out["holidays"] = tomlStringArray(doc.Holidays)
	}
	return out
}

func tomlStringArray(items []string) string {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, s := range items {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(strconv.Quote(s))
	}
	buf.WriteByte(']')
	return buf.String()
}

// atomicWrite copies any existing file to a ".bak" sibling, then
// writes the new contents via a fsynced temp file and rename — the
// same sequence C3's Markdown writer uses (spec §4.2, §4.7).
func atomicWrite(path string, data []byte) error {
	if existing, err := os.ReadFile(path); err == nil {
		_ = os.WriteFile(path+".bak", existing, 0o644)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Wrap(err, "create temp file")
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return errors.Wrap(err, "write temp file")
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return errors.Wrap(err, "sync temp file")
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return errors.Wrap(err, "close temp file")
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return errors.Wrap(err, "rename temp file into place")
	}
	return nil
}
