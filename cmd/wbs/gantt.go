package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mdwbs/wbs/internal/gantt"
	"github.com/mdwbs/wbs/internal/model"
	"github.com/mdwbs/wbs/internal/render"
	"github.com/mdwbs/wbs/internal/view"
)

var (
	ganttScale      string
	ganttView       string
	ganttTitleWidth int
)

var ganttCmd = &cobra.Command{
	Use:   "gantt",
	Short: "Print a Table+Gantt view to the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		proj, err := loadProject(projectDir(cmd))
		if err != nil {
			return err
		}

		cfg, err := resolveViewConfig(proj.Config, ganttView)
		if err != nil {
			return err
		}
		scale := model.GanttScale(ganttScale)
		if ganttScale == "" {
			scale = cfg.Gantt.Scale
		}
		if scale == "" {
			scale = model.ScaleWeek
		}

		today := time.Now()
		rows := view.Project(proj, cfg, today)

		start, end := dateRange(rows, today)
		holidays := holidaySet(proj.Config.Holidays)
		colWidth := proj.Config.GanttWidths[scale]
		if colWidth == 0 {
			colWidth = 4
		}

		grid := gantt.Build(rows, scale, colWidth, start, end, holidays, today, -1)
		fmt.Println(render.Gantt(grid, ganttTitleWidth))
		return nil
	},
}

func init() {
	ganttCmd.Flags().StringVar(&ganttScale, "scale", "", "day|week|month|quarter|year (default: the view's configured scale, else week)")
	ganttCmd.Flags().StringVar(&ganttView, "view", "", "view id to project through (default: project's default view)")
	ganttCmd.Flags().IntVar(&ganttTitleWidth, "title-width", 28, "width in characters reserved for the title column")
	rootCmd.AddCommand(ganttCmd)
}

func resolveViewConfig(cfg model.ProjectConfig, viewID string) (model.ViewConfig, error) {
	if viewID == "" {
		viewID = cfg.DefaultViewID
	}
	vc, ok := cfg.ViewByID(viewID)
	if !ok {
		return model.ViewConfig{}, fmt.Errorf("no view %q in project config", viewID)
	}
	return vc, nil
}

// dateRange finds the earliest start and latest end among rows'
// nodes, falling back to a 30-day window from today when no node sets
// a date — an empty project still gets a sensible grid.
func dateRange(rows []view.DisplayRow, today time.Time) (time.Time, time.Time) {
	var start, end time.Time
	for _, r := range rows {
		if t, ok := model.ParseDate(r.Node.Start); ok {
			if start.IsZero() || t.Before(start) {
				start = t
			}
		}
		if t, ok := model.ParseDate(r.Node.End); ok {
			if end.IsZero() || t.After(end) {
				end = t
			}
		}
	}
	if start.IsZero() {
		start = today
	}
	if end.IsZero() || end.Before(start) {
		end = start.AddDate(0, 0, 30)
	}
	return start, end
}

func holidaySet(holidays []string) map[string]bool {
	out := make(map[string]bool, len(holidays))
	for _, h := range holidays {
		out[h] = true
	}
	return out
}
