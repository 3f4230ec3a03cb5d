// Plan purchases command lists a plan's settlement receipts.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var planPurchasesCmd = &cobra.Command{
	Use:   "purchases <plan-id>",
	Short: "List a plan's settlement receipts",
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

		purchases, err := eng.Purchases(id)
		if err != nil {
			return fmt.Errorf("list purchases for plan %d: %w", id, err)
		}

		if flagJSON {
			return printJSON(purchases)
		}
		if len(purchases) == 0 {
			fmt.Println("No purchases.")
			return nil
		}
		for _, p := range purchases {
			fmt.Printf("Purchase %d  plan=%d spent=%d acquired=%d height=%d receipt=%s\n",
				p.ID, p.PlanID, p.Spent, p.Acquired, p.Height, p.ReceiptID)
		}
		return nil
	},
}
