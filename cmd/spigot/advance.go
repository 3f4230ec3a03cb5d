// Advance and height commands: the observed block clock.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var advanceCmd = &cobra.Command{
	Use:   "advance [blocks]",
	Short: "Record externally observed blocks",
	Long: `Advance moves the observed block height forward. The height only
ever grows; plans become due as it passes their next purchase block.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		blocks := uint64(1)
		if len(args) == 1 {
			var err error
			blocks, err = parseUint(args[0], "block count")
			if err != nil {
				return err
			}
		}

		eng, store, err := attachEngine()
		if err != nil {
			return err
		}
		defer store.Detach()

		height, err := eng.ObserveBlocks(blocks)
		if err != nil {
			return fmt.Errorf("advance: %w", err)
		}

		fmt.Printf("Height is now %d\n", height)
		return nil
	},
}

var heightCmd = &cobra.Command{
	Use:   "height",
	Short: "Print the observed block height",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, store, err := attachEngine()
		if err != nil {
			return err
		}
		defer store.Detach()

		height, err := eng.Height()
		if err != nil {
			return fmt.Errorf("height: %w", err)
		}

		fmt.Println(height)
		return nil
	},
}
