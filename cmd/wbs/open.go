package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mdwbs/wbs/internal/render"
)

var openCmd = &cobra.Command{
	Use:   "open",
	Short: "Load a project directory and print its outline",
	RunE: func(cmd *cobra.Command, args []string) error {
		proj, err := loadProject(projectDir(cmd))
		if err != nil {
			return err
		}

		for _, w := range proj.Warnings {
			fmt.Printf("warning: %s: %s\n", w.File, w.Message)
		}

		fmt.Println(render.Outline(proj.Roots()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(openCmd)
}
