// Execute command triggers one purchase cycle for a plan.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var executeCaller string

var executeCmd = &cobra.Command{
	Use:   "execute <plan-id>",
	Short: "Execute a plan's due purchase",
	Long: `Execute settles one purchase cycle: the per-purchase funding amount
leaves custody and the target asset is credited to the plan owner at the
fixed exchange rate. Anyone may trigger a due plan; the call fails without
side effects when the plan is not yet due or custody is short.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		planID, err := parseUint(args[0], "plan id")
		if err != nil {
			return err
		}

		eng, store, err := attachEngine()
		if err != nil {
			return err
		}
		defer store.Detach()

		purchaseID, err := eng.Execute(executeCaller, planID)
		if err != nil {
			return fmt.Errorf("execute plan %d: %w", planID, err)
		}

		fmt.Printf("Executed plan %d: purchase %d\n", planID, purchaseID)
		return nil
	},
}

func init() {
	executeCmd.Flags().StringVar(&executeCaller, "caller", "automation", "principal triggering the purchase")
}
