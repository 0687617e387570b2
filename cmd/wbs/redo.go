package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mdwbs/wbs/internal/markdown"
)

var redoCmd = &cobra.Command{
	Use:   "redo",
	Short: "Redo the most recently undone command",
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
		if !log.CanRedo() {
			fmt.Println("nothing to redo")
			return nil
		}

		proj, err = log.Redo(proj)
		if err != nil {
			return fmt.Errorf("redo: %w", err)
		}

		if err := markdown.Save(proj); err != nil {
			return fmt.Errorf("save project: %w", err)
		}
		if err := saveJournal(dir, log); err != nil {
			return err
		}

		fmt.Println("redone")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(redoCmd)
}
