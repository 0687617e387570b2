package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/mdwbs/wbs/internal/render"
	"github.com/mdwbs/wbs/internal/view"
)

var kanbanView string

var kanbanCmd = &cobra.Command{
	Use:   "kanban",
	Short: "Print a kanban board grouped by the view's group-by column",
	RunE: func(cmd *cobra.Command, args []string) error {
		proj, err := loadProject(projectDir(cmd))
		if err != nil {
			return err
		}

		cfg, err := resolveViewConfig(proj.Config, kanbanView)
		if err != nil {
			return err
		}

		rows := view.Project(proj, cfg, time.Now())
		columns := proj.Config.AllColumns()

		groups := groupRows(rows)
		for _, g := range groups {
			fmt.Printf("## %s (%d)\n", g.name, len(g.rows))
			fmt.Println(render.Table(g.rows, columns, 100))
			fmt.Println()
		}
		return nil
	},
}

func init() {
	kanbanCmd.Flags().StringVar(&kanbanView, "view", "", "view id to project through (default: project's default view)")
	rootCmd.AddCommand(kanbanCmd)
}

type rowGroup struct {
	name string
	rows []view.DisplayRow
}

func groupRows(rows []view.DisplayRow) []rowGroup {
	index := map[string]int{}
	var groups []rowGroup
	for _, r := range rows {
		i, ok := index[r.Group]
		if !ok {
			i = len(groups)
			index[r.Group] = i
			groups = append(groups, rowGroup{name: r.Group})
		}
		groups[i].rows = append(groups[i].rows, r)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].name < groups[j].name })
	return groups
}
