package sqlite

import (
	"testing"

	"github.com/dripworks/dripstand/pkg/types"
)

func TestLedger_MintAndBalance(t *testing.T) {
	b := newAttachedBackend(t)

	if err := b.Ledger().Mint(types.AssetFunding, "wallet1", 100); err != nil {
		t.Fatalf("Mint failed: %v", err)
	}
	if err := b.Ledger().Mint(types.AssetFunding, "wallet1", 50); err != nil {
		t.Fatalf("Mint failed: %v", err)
	}

	amount, err := b.Ledger().Balance(types.AssetFunding, "wallet1")
	if err != nil {
		t.Fatalf("Balance failed: %v", err)
	}
	if amount != 150 {
		t.Errorf("expected 150, got %d", amount)
	}
}

func TestLedger_BalanceUnknownPrincipal(t *testing.T) {
	b := newAttachedBackend(t)

	amount, err := b.Ledger().Balance(types.AssetTarget, "nobody")
	if err != nil {
		t.Fatalf("Balance failed: %v", err)
	}
	if amount != 0 {
		t.Errorf("unknown principal must hold zero, got %d", amount)
	}
}

func TestLedger_Transfer(t *testing.T) {
	b := newAttachedBackend(t)

	if err := b.Ledger().Mint(types.AssetFunding, "wallet1", 100); err != nil {
		t.Fatalf("Mint failed: %v", err)
	}
	if err := b.Ledger().Transfer(types.AssetFunding, "wallet1", types.AccountCustody, 60); err != nil {
		t.Fatalf("Transfer failed: %v", err)
	}

	from, _ := b.Ledger().Balance(types.AssetFunding, "wallet1")
	to, _ := b.Ledger().Balance(types.AssetFunding, types.AccountCustody)
	if from != 40 || to != 60 {
		t.Errorf("expected 40/60, got %d/%d", from, to)
	}
}

func TestLedger_TransferInsufficient(t *testing.T) {
	b := newAttachedBackend(t)

	if err := b.Ledger().Mint(types.AssetFunding, "wallet1", 10); err != nil {
		t.Fatalf("Mint failed: %v", err)
	}

	err := b.Ledger().Transfer(types.AssetFunding, "wallet1", types.AccountCustody, 11)
	if err != types.ErrInsufficientBalance {
		t.Fatalf("expected ErrInsufficientBalance, got %v", err)
	}

	// No partial debit.
	amount, _ := b.Ledger().Balance(types.AssetFunding, "wallet1")
	if amount != 10 {
		t.Errorf("failed transfer must not move balance, got %d", amount)
	}

	// A principal with no row at all is also short.
	err = b.Ledger().Transfer(types.AssetFunding, "ghost", types.AccountCustody, 1)
	if err != types.ErrInsufficientBalance {
		t.Errorf("expected ErrInsufficientBalance for unknown principal, got %v", err)
	}
}

func TestLedger_UnknownAsset(t *testing.T) {
	b := newAttachedBackend(t)

	if err := b.Ledger().Mint("gold", "wallet1", 1); err != types.ErrUnknownAsset {
		t.Errorf("expected ErrUnknownAsset from Mint, got %v", err)
	}
	if _, err := b.Ledger().Balance("gold", "wallet1"); err != types.ErrUnknownAsset {
		t.Errorf("expected ErrUnknownAsset from Balance, got %v", err)
	}
	if err := b.Ledger().Transfer("gold", "a", "b", 1); err != types.ErrUnknownAsset {
		t.Errorf("expected ErrUnknownAsset from Transfer, got %v", err)
	}
}

func TestLedger_AssetsAreSeparate(t *testing.T) {
	b := newAttachedBackend(t)

	if err := b.Ledger().Mint(types.AssetFunding, "wallet1", 100); err != nil {
		t.Fatalf("Mint failed: %v", err)
	}

	target, err := b.Ledger().Balance(types.AssetTarget, "wallet1")
	if err != nil {
		t.Fatalf("Balance failed: %v", err)
	}
	if target != 0 {
		t.Errorf("funding mint must not touch target balance, got %d", target)
	}
}
