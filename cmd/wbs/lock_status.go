package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mdwbs/wbs/internal/lock"
)

var lockCmd = &cobra.Command{
	Use:   "lock",
	Short: "Inspect or manage the project lock",
}

var lockStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report whether the project lock is held, by whom, and since when",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := lock.Inspect(projectDir(cmd))
		if err != nil {
			return err
		}

		if !st.Held {
			fmt.Println("not locked")
			return nil
		}

		fmt.Printf("held by pid %d since %s", st.PID, st.AcquiredAt.Format("2006-01-02 15:04:05 MST"))
		if st.Stale {
			fmt.Print(" (stale — a new session will take over)")
		}
		fmt.Println()
		return nil
	},
}

func init() {
	lockCmd.AddCommand(lockStatusCmd)
	rootCmd.AddCommand(lockCmd)
}
