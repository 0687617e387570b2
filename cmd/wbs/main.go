// Command wbs is the CLI surface over the WBS core: each subcommand is
// a thin caller into internal/markdown, internal/commandlog,
// internal/view, internal/gantt and internal/render — flag parsing
// itself is not this program's subject matter.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mdwbs/wbs/internal/config"
	"github.com/mdwbs/wbs/internal/debug"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "wbs",
	Short: "A terminal work-breakdown-structure tool backed by plain Markdown",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			debug.SetEnabled(true)
		}
		if err := config.Initialize(); err != nil {
			return fmt.Errorf("initialize config: %w", err)
		}
		if logFile := config.GetString("log-file"); logFile != "" {
			debug.SetLogFile(logFile)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "trace internal operations to stderr")
	rootCmd.PersistentFlags().String("dir", ".", "project directory")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func projectDir(cmd *cobra.Command) string {
	dir, _ := cmd.Flags().GetString("dir")
	if dir == "" {
		dir = "."
	}
	return dir
}
