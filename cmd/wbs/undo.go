package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mdwbs/wbs/internal/markdown"
)

var undoCmd = &cobra.Command{
	Use:   "undo",
	Short: "Undo the most recent command",
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

		log, err := loadJournal(dir)
		if err != nil {
			return err
		}
		if !log.CanUndo() {
			fmt.Println("nothing to undo")
			return nil
		}

		proj, err = log.Undo(proj)
		if err != nil {
			return fmt.Errorf("undo: %w", err)
		}

		if err := markdown.Save(proj); err != nil {
			return fmt.Errorf("save project: %w", err)
		}
		if err := saveJournal(dir, log); err != nil {
			return err
		}

		fmt.Println("undone")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(undoCmd)
}
