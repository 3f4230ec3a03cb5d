package types

import "testing"

func TestPlanCustodyBalance(t *testing.T) {
	p := &Plan{TotalDeposited: 100_000_000, TotalSpent: 50_000_000}
	if got := p.CustodyBalance(); got != 50_000_000 {
		t.Errorf("expected 50000000, got %d", got)
	}

	p = &Plan{}
	if got := p.CustodyBalance(); got != 0 {
		t.Errorf("expected 0 for fresh plan, got %d", got)
	}
}

func TestPlanDueAt(t *testing.T) {
	p := &Plan{NextPurchaseBlock: 12}

	if p.DueAt(11) {
		t.Error("plan must not be due before its next purchase block")
	}
	if !p.DueAt(12) {
		t.Error("plan must be due exactly at its next purchase block")
	}
	if !p.DueAt(500) {
		t.Error("plan must stay due after its next purchase block")
	}
}
