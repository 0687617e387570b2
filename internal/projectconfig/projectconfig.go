// Package projectconfig loads and saves a project's .tui-wbs/config.toml
// (or its .tui-wbs.toml fallback): the view catalog, custom column
// definitions, holiday calendar, and per-scale Gantt column widths
// (spec §3.1, §4.7).
package projectconfig

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/mdwbs/wbs/internal/model"
)

const (
	dirConfigName  = ".tui-wbs/config.toml"
	flatConfigName = ".tui-wbs.toml"
)

// tomlColumn mirrors model.ColumnDef for TOML (un)marshaling.
type tomlColumn struct {
	ID       string   `toml:"id"`
	Name     string   `toml:"name"`
	Type     string   `toml:"type"`
	Enum     []string `toml:"enum,omitempty"`
	Required bool     `toml:"required,omitempty"`
}

type tomlSort struct {
	Column    string `toml:"column"`
	Direction string `toml:"direction"`
}

type tomlGantt struct {
	Scale string `toml:"scale,omitempty"`
	Level int    `toml:"level,omitempty"`
}

type tomlView struct {
	ID      string     `toml:"id"`
	Name    string     `toml:"name"`
	Type    string     `toml:"type"`
	Columns []string   `toml:"columns,omitempty"`
	Sort    *tomlSort  `toml:"sort,omitempty"`
	GroupBy string     `toml:"group_by,omitempty"`
	Gantt   *tomlGantt `toml:"gantt,omitempty"`
}

type tomlDoc struct {
	Name          string            `toml:"name"`
	DefaultViewID string            `toml:"default_view_id"`
	DefaultColumns []string         `toml:"default_columns,omitempty"`
	DateFormat    string            `toml:"date_format,omitempty"`
	Holidays      []string          `toml:"holidays,omitempty"`
	GanttWidths   map[string]int    `toml:"gantt_widths,omitempty"`
	Views         []tomlView        `toml:"views,omitempty"`
	CustomColumns []tomlColumn      `toml:"custom_columns,omitempty"`
}

// Located is a loaded config plus the exact path and raw bytes it came
// from, so Save can preserve untouched byte spans and choose the same
// file over its sibling fallback name.
type Located struct {
	Path   string
	Raw    []byte
	Config model.ProjectConfig
}

// Locate finds a project's config file under dir, preferring
// .tui-wbs/config.toml over the flat .tui-wbs.toml fallback, following
// the project-then-fallback search order internal/config uses for
// global preferences (spec §4.7).
func Locate(dir string) (string, bool) {
	nested := filepath.Join(dir, dirConfigName)
	if _, err := os.Stat(nested); err == nil {
		return nested, true
	}
	flat := filepath.Join(dir, flatConfigName)
	if _, err := os.Stat(flat); err == nil {
		return flat, true
	}
	return nested, false
}

// Load reads and decodes a project's config, or returns
// DefaultProjectConfig(name) if no config file exists yet.
func Load(dir string) (Located, error) {
	path, found := Locate(dir)
	name := filepath.Base(dir)
	if !found {
		return Located{Path: path, Config: model.DefaultProjectConfig(name)}, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Located{}, errors.Wrap(err, "read project config")
	}

	var doc tomlDoc
	if _, err := toml.Decode(string(raw), &doc); err != nil {
		return Located{}, errors.Wrap(err, "decode project config")
	}

	return Located{Path: path, Raw: raw, Config: fromTOML(doc, name)}, nil
}

func fromTOML(doc tomlDoc, fallbackName string) model.ProjectConfig {
	cfg := model.DefaultProjectConfig(fallbackName)
	if doc.Name != "" {
		cfg.Name = doc.Name
	}
	if doc.DefaultViewID != "" {
		cfg.DefaultViewID = doc.DefaultViewID
	}
	if len(doc.DefaultColumns) > 0 {
		cfg.DefaultColumns = doc.DefaultColumns
	}
	if doc.DateFormat != "" {
		cfg.DateFormat = doc.DateFormat
	}
	cfg.Holidays = doc.Holidays

	if len(doc.GanttWidths) > 0 {
		widths := model.DefaultGanttColumnWidths()
		for scale, w := range doc.GanttWidths {
			widths[model.GanttScale(scale)] = w
		}
		cfg.GanttWidths = widths
	}

	if len(doc.Views) > 0 {
		var views []model.ViewConfig
		for _, v := range doc.Views {
			vc := model.ViewConfig{
				ID: v.ID, Name: v.Name, Type: model.ViewType(v.Type),
				Columns: v.Columns, GroupBy: v.GroupBy,
			}
			if v.Sort != nil {
				vc.Sort = &model.SortSpec{Column: v.Sort.Column, Direction: model.SortDirection(v.Sort.Direction)}
			}
			if v.Gantt != nil {
				vc.Gantt = model.GanttOptions{Scale: model.GanttScale(v.Gantt.Scale), Level: v.Gantt.Level}
			}
			views = append(views, vc)
		}
		cfg.Views = views
	}

	if len(doc.CustomColumns) > 0 {
		var cols []model.ColumnDef
		for _, c := range doc.CustomColumns {
			cols = append(cols, model.ColumnDef{
				ID: c.ID, Name: c.Name, Type: model.ColumnType(c.Type),
				Enum: c.Enum, Required: c.Required,
			})
		}
		cfg.CustomColumns = cols
	}

	return cfg
}

func toTOML(cfg model.ProjectConfig) tomlDoc {
	doc := tomlDoc{
		Name: cfg.Name, DefaultViewID: cfg.DefaultViewID,
		DefaultColumns: cfg.DefaultColumns, DateFormat: cfg.DateFormat,
		Holidays: cfg.Holidays,
	}
	if len(cfg.GanttWidths) > 0 {
		doc.GanttWidths = map[string]int{}
		for scale, w := range cfg.GanttWidths {
			doc.GanttWidths[string(scale)] = w
		}
	}
	for _, v := range cfg.Views {
		tv := tomlView{ID: v.ID, Name: v.Name, Type: string(v.Type), Columns: v.Columns, GroupBy: v.GroupBy}
		if v.Sort != nil {
			tv.Sort = &tomlSort{Column: v.Sort.Column, Direction: string(v.Sort.Direction)}
		}
		if v.Gantt.Scale != "" || v.Gantt.Level != 0 {
			tv.Gantt = &tomlGantt{Scale: string(v.Gantt.Scale), Level: v.Gantt.Level}
		}
		doc.Views = append(doc.Views, tv)
	}
	for _, c := range cfg.CustomColumns {
		doc.CustomColumns = append(doc.CustomColumns, tomlColumn{
			ID: c.ID, Name: c.Name, Type: string(c.Type), Enum: c.Enum, Required: c.Required,
		})
	}
	return doc
}
