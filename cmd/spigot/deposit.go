// Deposit command moves funding asset from the owner into plan custody.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var depositFrom string

var depositCmd = &cobra.Command{
	Use:   "deposit <plan-id> <amount>",
	Short: "Deposit funding asset into a plan's custody",
	Long: `Deposit moves funding-asset balance from the plan owner into custody.
Only the owner may deposit; the caller's ledger balance must cover the amount.

Example:
  spigot deposit 1 100000000 --from wallet1`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		planID, err := parseUint(args[0], "plan id")
		if err != nil {
			return err
		}
		amount, err := parseUint(args[1], "amount")
		if err != nil {
			return err
		}

		eng, store, err := attachEngine()
		if err != nil {
			return err
		}
		defer store.Detach()

		if err := eng.Deposit(depositFrom, planID, amount); err != nil {
			return fmt.Errorf("deposit into plan %d: %w", planID, err)
		}

		fmt.Printf("Deposited %d into plan %d\n", amount, planID)
		return nil
	},
}

func init() {
	depositCmd.Flags().StringVar(&depositFrom, "from", "", "depositing principal (required, must be the plan owner)")
	_ = depositCmd.MarkFlagRequired("from")
}
