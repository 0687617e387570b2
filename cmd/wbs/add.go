package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mdwbs/wbs/internal/commandlog"
	"github.com/mdwbs/wbs/internal/markdown"
)

var (
	addParent  string
	addSibling string
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a node as a child (--parent) or sibling (--sibling)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := args[0]
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

		var c commandlog.Command
		switch {
		case addSibling != "":
			anchor, ok := findNodeByTitleOrID(proj, addSibling)
			if !ok {
				return fmt.Errorf("no node matches --sibling %q", addSibling)
			}
			c = &commandlog.AddSibling{AnchorID: anchor.ID, Title: title}
		case addParent != "":
			parent, ok := findNodeByTitleOrID(proj, addParent)
			if !ok {
				return fmt.Errorf("no node matches --parent %q", addParent)
			}
			c = &commandlog.AddChild{ParentID: parent.ID, Title: title}
		default:
			c = &commandlog.AddChild{Title: title}
		}

		log, err := loadJournal(dir)
		if err != nil {
			return err
		}

		proj, err = log.Do(proj, c)
		if err != nil {
			return fmt.Errorf("add: %w", err)
		}

		if err := markdown.Save(proj); err != nil {
			return fmt.Errorf("save project: %w", err)
		}
		if err := saveJournal(dir, log); err != nil {
			return err
		}

		fmt.Printf("added %q\n", title)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&addParent, "parent", "", "parent node (id or title) to add under")
	addCmd.Flags().StringVar(&addSibling, "sibling", "", "sibling node (id or title) to add after")
	rootCmd.AddCommand(addCmd)
}
