// Export command writes JSONL snapshots of plans and purchases.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write plans.jsonl and purchases.jsonl snapshots",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, err := attachEngine()
		if err != nil {
			return err
		}
		defer store.Detach()

		dir := exportOut
		if dir == "" {
			dir, err = resolveDataDir()
			if err != nil {
				return err
			}
		}

		if err := store.Export(dir); err != nil {
			return fmt.Errorf("export: %w", err)
		}

		fmt.Printf("Exported snapshots to %s\n", dir)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output directory (default: data dir)")
}
