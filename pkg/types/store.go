package types

import "errors"

// Asset names tracked by the ledger.
const (
	AssetFunding = "funding"
	AssetTarget  = "target"
)

// Well-known ledger accounts. Custody holds deposited funding until it is
// spent; Exchange receives the funding side of every settlement.
const (
	AccountCustody  = "custody"
	AccountExchange = "exchange"
)

// Sequence names. Plans and purchases number independently; tally is the
// standalone demonstration counter and shares nothing with the other two.
const (
	SeqPlans     = "plans"
	SeqPurchases = "purchases"
	SeqTally     = "tally"
)

// Tx groups the table accessors. Accessors obtained from a Store operate in
// autocommit mode; accessors obtained inside Store.Transact share one
// transaction and commit or roll back together.
type Tx interface {
	Plans() PlanStore
	Purchases() PurchaseLog
	Ledger() Ledger
	Chain() Chain
	Sequences() Sequences
}

// Store is the durable state behind the engine. Callers attach to a backend,
// operate on the accessors, and detach when done.
type Store interface {
	Tx

	// Attach connects the Store to the backend described by config.
	// Creates the DataDir if it does not exist. Returns ErrAlreadyAttached
	// if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls
	// succeed. After Detach, accessor operations return ErrStoreDetached.
	Detach() error

	// Transact runs fn against a transaction-scoped Tx. If fn returns an
	// error every write inside it is rolled back and the error is
	// returned unchanged; otherwise the transaction commits.
	Transact(fn func(tx Tx) error) error

	// Export writes a JSONL snapshot of plans and purchases into dir.
	Export(dir string) error
}

// PlanStore is the single source of truth for Plan records. The engine is
// the only writer; reads are unrestricted.
type PlanStore interface {
	// Insert stores a new plan keyed by plan.ID.
	// Returns ErrDuplicateID if the ID is already present.
	Insert(plan *Plan) error

	// Get returns the plan with the given ID, or ErrPlanNotFound.
	Get(id uint64) (*Plan, error)

	// Update loads the plan, applies mutate, and persists the result.
	// Returns ErrPlanNotFound if the ID is absent; an error from mutate
	// aborts the update and is returned unchanged.
	Update(id uint64, mutate func(*Plan) error) (*Plan, error)

	// List returns all plans ordered by ID.
	List() ([]*Plan, error)
}

// PurchaseLog records settlement receipts.
type PurchaseLog interface {
	// Append stores a receipt and assigns its ReceiptID and CreatedAt.
	Append(p *Purchase) error

	// Get returns the receipt with the given purchase ID, or ErrPurchaseNotFound.
	Get(id uint64) (*Purchase, error)

	// ListByPlan returns a plan's receipts ordered by purchase ID.
	ListByPlan(planID uint64) ([]*Purchase, error)
}

// Ledger is the (asset, principal) balance book for the funding and target
// assets. Balances never go negative.
type Ledger interface {
	// Mint credits amount of asset to principal out of thin air. Used for
	// out-of-band balance management and for the target side of a
	// settlement.
	Mint(asset, principal string, amount uint64) error

	// Balance returns principal's balance of asset. Unknown principals
	// hold zero.
	Balance(asset, principal string) (uint64, error)

	// Transfer moves amount of asset between principals. Returns
	// ErrInsufficientBalance if from holds less than amount.
	Transfer(asset, from, to string, amount uint64) error
}

// Chain is the read-mostly view of the external block clock. Height is
// strictly non-decreasing; the engine only ever reads it. Advance exists so
// the process can record externally observed blocks (and so tests can set
// time deterministically).
type Chain interface {
	Height() (uint64, error)
	Advance(blocks uint64) (uint64, error)
}

// Sequences issues values from named monotonic counters. Each Next call
// durably advances the counter by exactly one; counters are never reset.
type Sequences interface {
	Next(name string) (uint64, error)
	Current(name string) (uint64, error)
}

// Store lifecycle and accessor errors.
var (
	ErrStoreDetached    = errors.New("store is detached")
	ErrAlreadyAttached  = errors.New("store is already attached")
	ErrDuplicateID      = errors.New("duplicate plan id")
	ErrPurchaseNotFound = errors.New("purchase not found")
	ErrUnknownAsset     = errors.New("unknown asset")
	ErrUnknownSequence  = errors.New("unknown sequence")
)
