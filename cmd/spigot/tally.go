// Tally commands: the standalone demonstration counter.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tallyCmd = &cobra.Command{
	Use:   "tally",
	Short: "Print the demonstration counter",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, store, err := attachEngine()
		if err != nil {
			return err
		}
		defer store.Detach()

		value, err := eng.Tally()
		if err != nil {
			return fmt.Errorf("tally: %w", err)
		}

		fmt.Println(value)
		return nil
	},
}

var tallyUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Increment the demonstration counter",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, store, err := attachEngine()
		if err != nil {
			return err
		}
		defer store.Detach()

		value, err := eng.TallyUp()
		if err != nil {
			return fmt.Errorf("tally up: %w", err)
		}

		fmt.Println(value)
		return nil
	},
}

func init() {
	tallyCmd.AddCommand(tallyUpCmd)
}
