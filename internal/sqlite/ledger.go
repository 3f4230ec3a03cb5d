// This file implements the balances table accessor: the (asset, principal)
// balance book for the funding and target assets.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/dripworks/dripstand/pkg/types"
)

// Compile-time interface check: ledgerTable must implement Ledger.
var _ types.Ledger = (*ledgerTable)(nil)

type ledgerTable struct {
	src source
}

// validAssets is the set of assets the ledger tracks.
var validAssets = map[string]bool{
	types.AssetFunding: true,
	types.AssetTarget:  true,
}

// Mint credits amount of asset to principal.
func (t *ledgerTable) Mint(asset, principal string, amount uint64) error {
	if !validAssets[asset] {
		return types.ErrUnknownAsset
	}
	if principal == "" || amount == 0 {
		return types.ErrInvalidParameter
	}

	q, err := t.src.querier()
	if err != nil {
		return err
	}

	return credit(q, asset, principal, amount)
}

// Balance returns principal's balance of asset. Principals without a row
// hold zero.
func (t *ledgerTable) Balance(asset, principal string) (uint64, error) {
	if !validAssets[asset] {
		return 0, types.ErrUnknownAsset
	}

	q, err := t.src.querier()
	if err != nil {
		return 0, err
	}

	var amount uint64
	err = q.QueryRow(
		"SELECT amount FROM balances WHERE asset = ? AND principal = ?",
		asset, principal,
	).Scan(&amount)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("reading balance %s/%s: %w", asset, principal, err)
	}
	return amount, nil
}

// Transfer moves amount of asset from one principal to another. The debit is
// checked first; a short balance fails the whole call with
// ErrInsufficientBalance and no row changes. Multi-statement atomicity comes
// from the enclosing Store.Transact.
func (t *ledgerTable) Transfer(asset, from, to string, amount uint64) error {
	if !validAssets[asset] {
		return types.ErrUnknownAsset
	}
	if from == "" || to == "" || amount == 0 {
		return types.ErrInvalidParameter
	}

	q, err := t.src.querier()
	if err != nil {
		return err
	}

	var held uint64
	err = q.QueryRow(
		"SELECT amount FROM balances WHERE asset = ? AND principal = ?",
		asset, from,
	).Scan(&held)
	if err == sql.ErrNoRows {
		return types.ErrInsufficientBalance
	}
	if err != nil {
		return fmt.Errorf("reading balance %s/%s: %w", asset, from, err)
	}
	if held < amount {
		return types.ErrInsufficientBalance
	}

	_, err = q.Exec(
		"UPDATE balances SET amount = amount - ? WHERE asset = ? AND principal = ?",
		amount, asset, from,
	)
	if err != nil {
		return fmt.Errorf("debiting %s/%s: %w", asset, from, err)
	}

	return credit(q, asset, to, amount)
}

// credit upserts amount onto (asset, principal).
func credit(q querier, asset, principal string, amount uint64) error {
	_, err := q.Exec(
		`INSERT INTO balances (asset, principal, amount) VALUES (?, ?, ?)
         ON CONFLICT(asset, principal) DO UPDATE SET amount = amount + excluded.amount`,
		asset, principal, amount,
	)
	if err != nil {
		return fmt.Errorf("crediting %s/%s: %w", asset, principal, err)
	}
	return nil
}
