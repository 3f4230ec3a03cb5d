// Mint and balance commands: out-of-band ledger management.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dripworks/dripstand/pkg/types"
)

var (
	mintAsset    string
	balanceAsset string
)

var mintCmd = &cobra.Command{
	Use:   "mint <principal> <amount>",
	Short: "Credit asset balance to a principal",
	Long: `Mint credits ledger balance out of band of any plan. Owners mint
funding asset to themselves before depositing.

Example:
  spigot mint wallet1 100000000`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := parseUint(args[1], "amount")
		if err != nil {
			return err
		}

		eng, store, err := attachEngine()
		if err != nil {
			return err
		}
		defer store.Detach()

		if err := eng.Mint(mintAsset, args[0], amount); err != nil {
			return fmt.Errorf("mint: %w", err)
		}

		fmt.Printf("Minted %d %s to %s\n", amount, mintAsset, args[0])
		return nil
	},
}

var balanceCmd = &cobra.Command{
	Use:   "balance <principal>",
	Short: "Print a principal's asset balance",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, store, err := attachEngine()
		if err != nil {
			return err
		}
		defer store.Detach()

		amount, err := eng.Balance(balanceAsset, args[0])
		if err != nil {
			return fmt.Errorf("balance: %w", err)
		}

		fmt.Println(amount)
		return nil
	},
}

func init() {
	mintCmd.Flags().StringVar(&mintAsset, "asset", types.AssetFunding, "asset to mint (funding or target)")
	balanceCmd.Flags().StringVar(&balanceAsset, "asset", types.AssetFunding, "asset to read (funding or target)")
}
