package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mdwbs/wbs/internal/render"
	"github.com/mdwbs/wbs/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-render the outline whenever a *.wbs.md file in the project changes",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := projectDir(cmd)

		redraw := func() {
			proj, err := loadProject(dir)
			if err != nil {
				fmt.Fprintln(os.Stderr, "reload:", err)
				return
			}
			fmt.Println(render.Outline(proj.Roots()))
		}
		redraw()

		w, err := watch.New(dir, redraw)
		if err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		defer w.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		w.Start(ctx)

		fmt.Fprintf(os.Stderr, "watching %s, press ctrl-c to stop\n", w.ProjectDir())
		<-ctx.Done()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
