package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mdwbs/wbs/internal/markdown"
)

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Write every modified document back to disk",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := projectDir(cmd)

		l, err := acquireLock(dir)
		if err != nil {
			return err
		}
		defer l.Release()

		proj, err := loadProject(dir)
		if err != nil {
			return err
		}

		if err := markdown.Save(proj); err != nil {
			return fmt.Errorf("save project: %w", err)
		}

		fmt.Printf("saved %d document(s)\n", len(proj.ModifiedDocuments()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(saveCmd)
}
