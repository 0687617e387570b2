package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mdwbs/wbs/internal/export"
	"github.com/mdwbs/wbs/internal/view"
)

var (
	exportFormat  string
	exportView    string
	exportPreview bool
	exportOut     string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render a project as Markdown table or Mermaid gantt",
	RunE: func(cmd *cobra.Command, args []string) error {
		proj, err := loadProject(projectDir(cmd))
		if err != nil {
			return err
		}

		cfg, err := resolveViewConfig(proj.Config, exportView)
		if err != nil {
			return err
		}
		rows := view.Project(proj, cfg, time.Now())

		var out string
		switch exportFormat {
		case "", "table":
			out = export.MarkdownTable(rows, proj.Config.AllColumns())
		case "mermaid":
			out = export.Mermaid(proj.Config.Name, rows)
		default:
			return fmt.Errorf("unknown export format %q (want table or mermaid)", exportFormat)
		}

		if exportPreview {
			for _, r := range rows {
				if len(r.Node.Memo) == 0 {
					continue
				}
				preview, err := export.MemoPreview(r.Node.Memo, 80)
				if err != nil {
					return fmt.Errorf("preview memo for %q: %w", r.Node.Title, err)
				}
				out += fmt.Sprintf("\n--- %s ---\n%s\n", r.Node.Title, preview)
			}
		}

		if exportOut == "" || exportOut == "-" {
			fmt.Print(out)
			return nil
		}
		return os.WriteFile(exportOut, []byte(out), 0o644)
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "table", "table|mermaid")
	exportCmd.Flags().StringVar(&exportView, "view", "", "view id to project through (default: project's default view)")
	exportCmd.Flags().BoolVar(&exportPreview, "preview", false, "append a glamour-rendered memo preview per node")
	exportCmd.Flags().StringVar(&exportOut, "out", "-", "output path, or - for stdout")
	rootCmd.AddCommand(exportCmd)
}
