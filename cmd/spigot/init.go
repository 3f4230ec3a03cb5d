package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the plan database",
	Long:  `Init creates the data directory and an empty plan database.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, err := attachEngine()
		if err != nil {
			return err
		}
		defer store.Detach()

		dataDir, err := resolveDataDir()
		if err != nil {
			return err
		}
		fmt.Printf("Initialized plan database in %s\n", dataDir)
		return nil
	},
}
