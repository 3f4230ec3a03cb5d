package types

import "errors"

// Plan statuses. Only "active" is ever produced today; the column stays a
// string so terminal states can be added without a schema change.
const (
	PlanStatusActive = "active"
)

// Plan is one recurring-purchase program. All amounts are integer asset
// units; all times are observed block heights. Accumulators only grow, and
// ID, Owner, FrequencyBlocks, AmountPerPurchase, and CreatedAt never change
// after creation.
type Plan struct {
	ID                 uint64 // Sequence-issued, never reused.
	Owner              string // Principal that created and funds the plan.
	FrequencyBlocks    uint64 // Blocks between purchases (> 0).
	AmountPerPurchase  uint64 // Funding units spent per cycle (> 0).
	TotalDeposited     uint64 // Cumulative funding moved into custody.
	TotalSpent         uint64 // Cumulative funding consumed by purchases.
	TargetAcquired     uint64 // Cumulative target units credited to Owner.
	PurchasesCompleted uint64
	NextPurchaseBlock  uint64 // Height at or after which execution is allowed.
	Status             string
	CreatedAt          uint64 // Height at creation.
}

// CustodyBalance returns the funding-asset amount still held for this plan.
// TotalSpent never exceeds TotalDeposited, so the subtraction is safe.
func (p *Plan) CustodyBalance() uint64 {
	return p.TotalDeposited - p.TotalSpent
}

// DueAt reports whether the plan is eligible for execution at the given
// height.
func (p *Plan) DueAt(height uint64) bool {
	return height >= p.NextPurchaseBlock
}

// Engine operation errors. Every failure is detected before any state
// mutation and surfaces to the caller unchanged.
var (
	ErrInvalidParameter    = errors.New("invalid parameter")
	ErrPlanNotFound        = errors.New("plan not found")
	ErrUnauthorized        = errors.New("caller is not the plan owner")
	ErrTooEarly            = errors.New("purchase not due yet")
	ErrPlanInactive        = errors.New("plan is not active")
	ErrInsufficientFunds   = errors.New("custody balance below purchase amount")
	ErrInsufficientBalance = errors.New("insufficient ledger balance")
)
