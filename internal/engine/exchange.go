package engine

import "github.com/dripworks/dripstand/pkg/types"

// settle performs the asset legs of one purchase: the funding amount moves
// from custody to the exchange account, and the target asset is credited to
// the plan owner at the fixed rate. Returns the target amount credited.
// Must run inside the caller's transaction.
func (e *Engine) settle(tx types.Tx, plan *types.Plan) (uint64, error) {
	if err := tx.Ledger().Transfer(
		types.AssetFunding, types.AccountCustody, types.AccountExchange, plan.AmountPerPurchase,
	); err != nil {
		return 0, err
	}

	acquired := plan.AmountPerPurchase * e.rate
	if err := tx.Ledger().Mint(types.AssetTarget, plan.Owner, acquired); err != nil {
		return 0, err
	}
	return acquired, nil
}
