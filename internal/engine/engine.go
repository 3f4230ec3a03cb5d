// Package engine implements the plan lifecycle: creation, funding, and
// due-time-gated execution against the external block clock.
//
// Every state-changing call runs under one mutex and inside one store
// transaction, so each call either fully takes effect or leaves every plan
// field, counter, and balance untouched. The engine never advances the
// clock and never retries: each precondition is a pure function of current
// state, so a failed call returns its error verbatim.
package engine

import (
	"sync"

	"github.com/dripworks/dripstand/pkg/types"
)

// Engine orchestrates plans over a types.Store. It is the only writer of
// plan records; reads go straight to the store.
type Engine struct {
	mu    sync.Mutex
	store types.Store
	rate  uint64
}

// New creates an Engine over store. rate is the fixed exchange rate; zero
// selects types.DefaultExchangeRate.
func New(store types.Store, rate uint64) *Engine {
	if rate == 0 {
		rate = types.DefaultExchangeRate
	}
	return &Engine{store: store, rate: rate}
}

// Rate returns the fixed exchange rate in effect.
func (e *Engine) Rate() uint64 {
	return e.rate
}

// CreatePlan registers a new recurring-purchase plan for caller and returns
// its ID. The first purchase becomes eligible delayBlocks after the current
// height; delayBlocks may be zero. Returns ErrInvalidParameter if caller is
// empty or frequencyBlocks or amountPerPurchase is zero.
func (e *Engine) CreatePlan(caller string, frequencyBlocks, amountPerPurchase, delayBlocks uint64) (uint64, error) {
	if caller == "" || frequencyBlocks == 0 || amountPerPurchase == 0 {
		return 0, types.ErrInvalidParameter
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	var id uint64
	err := e.store.Transact(func(tx types.Tx) error {
		height, err := tx.Chain().Height()
		if err != nil {
			return err
		}

		id, err = tx.Sequences().Next(types.SeqPlans)
		if err != nil {
			return err
		}

		return tx.Plans().Insert(&types.Plan{
			ID:                id,
			Owner:             caller,
			FrequencyBlocks:   frequencyBlocks,
			AmountPerPurchase: amountPerPurchase,
			NextPurchaseBlock: height + delayBlocks,
			Status:            types.PlanStatusActive,
			CreatedAt:         height,
		})
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Deposit moves amount of funding asset from caller into custody and adds it
// to the plan's deposited total. Owner-only: callers other than the plan
// owner get ErrUnauthorized. A short caller balance surfaces as
// ErrInsufficientBalance from the ledger, unchanged. Depositing never moves
// the due height.
//
// Checks run in order: the plan exists (ErrPlanNotFound), the amount and
// caller are well-formed (ErrInvalidParameter), the caller owns the plan
// (ErrUnauthorized).
func (e *Engine) Deposit(caller string, planID, amount uint64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.store.Transact(func(tx types.Tx) error {
		plan, err := tx.Plans().Get(planID)
		if err != nil {
			return err
		}
		if caller == "" || amount == 0 {
			return types.ErrInvalidParameter
		}
		if plan.Owner != caller {
			return types.ErrUnauthorized
		}

		if err := tx.Ledger().Transfer(types.AssetFunding, caller, types.AccountCustody, amount); err != nil {
			return err
		}

		_, err = tx.Plans().Update(planID, func(p *types.Plan) error {
			p.TotalDeposited += amount
			return nil
		})
		return err
	})
}

// Execute settles one purchase cycle and returns the purchase ID. Any caller
// may trigger it; authorization binds to fund movement, not to automation.
//
// Preconditions, first failure wins: the plan exists (ErrPlanNotFound), the
// height has reached the due block (ErrTooEarly), the plan is active
// (ErrPlanInactive), and custody covers one purchase (ErrInsufficientFunds).
//
// On success the next due block is recomputed from the height observed now,
// not from the previous due block: cadence is "at least FrequencyBlocks
// apart", so a late trigger shifts all later cycles by the same lateness.
func (e *Engine) Execute(caller string, planID uint64) (uint64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	var purchaseID uint64
	err := e.store.Transact(func(tx types.Tx) error {
		plan, err := tx.Plans().Get(planID)
		if err != nil {
			return err
		}

		height, err := tx.Chain().Height()
		if err != nil {
			return err
		}
		if !plan.DueAt(height) {
			return types.ErrTooEarly
		}
		if plan.Status != types.PlanStatusActive {
			return types.ErrPlanInactive
		}
		if plan.CustodyBalance() < plan.AmountPerPurchase {
			return types.ErrInsufficientFunds
		}

		acquired, err := e.settle(tx, plan)
		if err != nil {
			return err
		}

		purchaseID, err = tx.Sequences().Next(types.SeqPurchases)
		if err != nil {
			return err
		}

		if _, err := tx.Plans().Update(planID, func(p *types.Plan) error {
			p.TotalSpent += p.AmountPerPurchase
			p.TargetAcquired += acquired
			p.PurchasesCompleted++
			p.NextPurchaseBlock = height + p.FrequencyBlocks
			return nil
		}); err != nil {
			return err
		}

		return tx.Purchases().Append(&types.Purchase{
			ID:       purchaseID,
			PlanID:   planID,
			Spent:    plan.AmountPerPurchase,
			Acquired: acquired,
			Height:   height,
		})
	})
	if err != nil {
		return 0, err
	}
	return purchaseID, nil
}

// Plan returns the plan record, or ErrPlanNotFound.
func (e *Engine) Plan(planID uint64) (*types.Plan, error) {
	return e.store.Plans().Get(planID)
}

// Plans returns all plan records ordered by ID.
func (e *Engine) Plans() ([]*types.Plan, error) {
	return e.store.Plans().List()
}

// Purchases returns a plan's settlement receipts ordered by purchase ID.
func (e *Engine) Purchases(planID uint64) ([]*types.Purchase, error) {
	return e.store.Purchases().ListByPlan(planID)
}

// Tally returns the demonstration counter's current value.
func (e *Engine) Tally() (uint64, error) {
	return e.store.Sequences().Current(types.SeqTally)
}

// TallyUp increments the demonstration counter and returns the new value.
// The tally shares nothing with plan or purchase numbering.
func (e *Engine) TallyUp() (uint64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	var value uint64
	err := e.store.Transact(func(tx types.Tx) error {
		var err error
		value, err = tx.Sequences().Next(types.SeqTally)
		return err
	})
	if err != nil {
		return 0, err
	}
	return value, nil
}

// Mint credits amount of asset to principal, out of band of any plan.
func (e *Engine) Mint(asset, principal string, amount uint64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.store.Transact(func(tx types.Tx) error {
		return tx.Ledger().Mint(asset, principal, amount)
	})
}

// Balance returns principal's ledger balance of asset.
func (e *Engine) Balance(asset, principal string) (uint64, error) {
	return e.store.Ledger().Balance(asset, principal)
}

// Height returns the current observed block height.
func (e *Engine) Height() (uint64, error) {
	return e.store.Chain().Height()
}

// ObserveBlocks records externally observed blocks and returns the new
// height. The engine itself never calls this; it exists for the process
// watching the chain (and for deterministic tests).
func (e *Engine) ObserveBlocks(blocks uint64) (uint64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	var height uint64
	err := e.store.Transact(func(tx types.Tx) error {
		var err error
		height, err = tx.Chain().Advance(blocks)
		return err
	})
	if err != nil {
		return 0, err
	}
	return height, nil
}
