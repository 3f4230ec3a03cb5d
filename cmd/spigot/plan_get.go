// Plan get and list commands.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Manage recurring-purchase plans",
}

var planGetCmd = &cobra.Command{
	Use:   "get <plan-id>",
	Short: "Show a plan record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseUint(args[0], "plan id")
		if err != nil {
			return err
		}

		eng, store, err := attachEngine()
		if err != nil {
			return err
		}
		defer store.Detach()

		plan, err := eng.Plan(id)
		if err != nil {
			return fmt.Errorf("get plan %d: %w", id, err)
		}
		return printPlan(plan)
	},
}

var planListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all plans",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, store, err := attachEngine()
		if err != nil {
			return err
		}
		defer store.Detach()

		plans, err := eng.Plans()
		if err != nil {
			return fmt.Errorf("list plans: %w", err)
		}

		if flagJSON {
			return printJSON(plans)
		}
		if len(plans) == 0 {
			fmt.Println("No plans.")
			return nil
		}
		for _, plan := range plans {
			if err := printPlan(plan); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	planCmd.AddCommand(planCreateCmd)
	planCmd.AddCommand(planGetCmd)
	planCmd.AddCommand(planListCmd)
	planCmd.AddCommand(planPurchasesCmd)
}
