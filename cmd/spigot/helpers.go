// Shared helpers for spigot CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/dripworks/dripstand/internal/engine"
	"github.com/dripworks/dripstand/pkg/sqlite"
	"github.com/dripworks/dripstand/pkg/types"
)

// attachEngine resolves the data directory, attaches a SQLite store, and
// wraps it in an engine. The caller must defer store.Detach().
func attachEngine() (*engine.Engine, types.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend:      types.BackendSQLite,
		DataDir:      dataDir,
		ExchangeRate: configExchangeRate,
	}

	store := sqlite.NewStore()
	if err := store.Attach(cfg); err != nil {
		return nil, nil, fmt.Errorf("attach store: %w", err)
	}

	return engine.New(store, cfg.Rate()), store, nil
}

// parseUint parses a positional argument as an unsigned integer.
func parseUint(arg, name string) (uint64, error) {
	v, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, arg, err)
	}
	return v, nil
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// printPlan writes a plan in the active output mode.
func printPlan(plan *types.Plan) error {
	if flagJSON {
		return printJSON(plan)
	}
	fmt.Printf("Plan %d  owner=%s  status=%s\n", plan.ID, plan.Owner, plan.Status)
	fmt.Printf("  every %d blocks, %d funding units per purchase\n", plan.FrequencyBlocks, plan.AmountPerPurchase)
	fmt.Printf("  deposited=%d spent=%d custody=%d acquired=%d\n",
		plan.TotalDeposited, plan.TotalSpent, plan.CustodyBalance(), plan.TargetAcquired)
	fmt.Printf("  purchases=%d next at block %d (created at %d)\n",
		plan.PurchasesCompleted, plan.NextPurchaseBlock, plan.CreatedAt)
	return nil
}
