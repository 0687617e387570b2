package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mdwbs/wbs/internal/config"
)

var configShowFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect this program's global preferences",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print every resolved configuration value and its source",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := config.AllSettings()
		keys := make([]string, 0, len(settings))
		for k := range settings {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		if configShowFormat == "yaml" {
			raw, err := yaml.Marshal(settings)
			if err != nil {
				return fmt.Errorf("marshal config as yaml: %w", err)
			}
			fmt.Print(string(raw))
			return nil
		}

		for _, k := range keys {
			fmt.Printf("%-20s %-12v (%s)\n", k, settings[k], config.GetValueSource(k))
		}
		return nil
	},
}

func init() {
	configShowCmd.Flags().StringVar(&configShowFormat, "format", "text", "text|yaml")
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}
