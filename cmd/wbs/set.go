package main

import (
	"fmt"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
	"github.com/spf13/cobra"

	"github.com/mdwbs/wbs/internal/commandlog"
	"github.com/mdwbs/wbs/internal/markdown"
)

var setWhen string

var setCmd = &cobra.Command{
	Use:   "set <node> <field> <value>",
	Short: "Set a field on a node",
	Long: `Set a field on a node, identified by id or title.

Use --when instead of a literal date value for start/end to parse a
phrase like "next friday" into a YYYY-MM-DD date before it reaches the
command log:

  wbs set "Ship beta" start --when "next friday"`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		ref, field := args[0], args[1]
		dir := projectDir(cmd)

		var value string
		switch {
		case setWhen != "":
			resolved, err := resolveWhen(setWhen)
			if err != nil {
				return fmt.Errorf("--when %q: %w", setWhen, err)
			}
			value = resolved
		case len(args) == 3:
			value = args[2]
		default:
			return fmt.Errorf("set requires a value or --when")
		}

		l, err := acquireLock(dir)
		if err != nil {
			return err
		}
		defer l.Release()

		proj, err := loadProject(dir)
		if err != nil {
			return err
		}

		n, ok := findNodeByTitleOrID(proj, ref)
		if !ok {
			return fmt.Errorf("no node matches %q", ref)
		}

		log, err := loadJournal(dir)
		if err != nil {
			return err
		}

		proj, err = log.Do(proj, &commandlog.SetField{ID: n.ID, Field: field, Value: value})
		if err != nil {
			return fmt.Errorf("set: %w", err)
		}

		if err := markdown.Save(proj); err != nil {
			return fmt.Errorf("save project: %w", err)
		}
		if err := saveJournal(dir, log); err != nil {
			return err
		}

		fmt.Printf("set %s.%s = %q\n", ref, field, value)
		return nil
	},
}

func init() {
	setCmd.Flags().StringVar(&setWhen, "when", "", `natural-language date, e.g. "next friday"`)
	rootCmd.AddCommand(setCmd)
}

// resolveWhen parses a natural-language date phrase into the
// YYYY-MM-DD format every date field in the model expects — the
// command log and model only ever see a validated ISO date, never the
// free-text phrase.
func resolveWhen(phrase string) (string, error) {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)

	r, err := w.Parse(phrase, time.Now())
	if err != nil {
		return "", err
	}
	if r == nil {
		return "", fmt.Errorf("could not parse a date from %q", phrase)
	}
	return r.Time.Format("2006-01-02"), nil
}
