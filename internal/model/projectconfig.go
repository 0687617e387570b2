package model

// GanttColumnWidths maps a GanttScale to its cell width in characters.
// Defaults per spec §3.1: day=2, week=4, month=6, quarter=6, year=6.
type GanttColumnWidths map[GanttScale]int

// DefaultGanttColumnWidths returns the spec-mandated defaults.
func DefaultGanttColumnWidths() GanttColumnWidths {
	return GanttColumnWidths{
		ScaleDay:     2,
		ScaleWeek:    4,
		ScaleMonth:   6,
		ScaleQuarter: 6,
		ScaleYear:    6,
	}
}

// ProjectConfig is the per-project settings value (spec §3.1/§4.7),
// persisted as .tui-wbs/config.toml.
type ProjectConfig struct {
	Name            string
	DefaultViewID   string
	DefaultColumns  []string
	Views           []ViewConfig
	CustomColumns   []ColumnDef
	Holidays        []string // YYYY-MM-DD
	DateFormat      string   // a preset name, e.g. "iso"
	GanttWidths     GanttColumnWidths
}

// DefaultProjectConfig returns the config created on first run (spec
// §4.7: "a default Table view and the default column list").
func DefaultProjectConfig(name string) ProjectConfig {
	cols := []string{"title", "status", "assignee", "start", "end", "progress"}
	return ProjectConfig{
		Name:           name,
		DefaultViewID:  "table",
		DefaultColumns: cols,
		Views: []ViewConfig{
			{ID: "table", Name: "Table", Type: ViewTable, Columns: cols},
		},
		GanttWidths: DefaultGanttColumnWidths(),
		DateFormat:  "iso",
	}
}

// ViewByID returns the view with the given id, if present.
func (c ProjectConfig) ViewByID(id string) (ViewConfig, bool) {
	for _, v := range c.Views {
		if v.ID == id {
			return v, true
		}
	}
	return ViewConfig{}, false
}

// AllColumns returns the built-in columns followed by the project's
// custom columns. The Markdown writer does not use this order: it
// emits a node's custom fields in their first-appearance order on
// that node.
func (c ProjectConfig) AllColumns() []ColumnDef {
	all := BuiltinColumns()
	all = append(all, c.CustomColumns...)
	return all
}
