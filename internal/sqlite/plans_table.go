// This file implements the plans table accessor: insert, get, update, list,
// and row hydration for Plan records.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/dripworks/dripstand/pkg/types"
)

// Compile-time interface check: plansTable must implement PlanStore.
var _ types.PlanStore = (*plansTable)(nil)

type plansTable struct {
	src source
}

const planColumns = `plan_id, owner, frequency_blocks, amount_per_purchase,
    total_deposited, total_spent, target_acquired, purchases_completed,
    next_purchase_block, status, created_at`

// Insert stores a new plan keyed by plan.ID. The ID comes from the plans
// sequence, so a duplicate means the caller misused the store.
func (t *plansTable) Insert(plan *types.Plan) error {
	q, err := t.src.querier()
	if err != nil {
		return err
	}

	var one int
	err = q.QueryRow("SELECT 1 FROM plans WHERE plan_id = ?", plan.ID).Scan(&one)
	if err == nil {
		return types.ErrDuplicateID
	}
	if err != sql.ErrNoRows {
		return fmt.Errorf("checking plan existence: %w", err)
	}

	_, err = q.Exec(
		`INSERT INTO plans (`+planColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		plan.ID, plan.Owner, plan.FrequencyBlocks, plan.AmountPerPurchase,
		plan.TotalDeposited, plan.TotalSpent, plan.TargetAcquired,
		plan.PurchasesCompleted, plan.NextPurchaseBlock, plan.Status,
		plan.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting plan %d: %w", plan.ID, err)
	}
	return nil
}

// Get retrieves a plan by ID and hydrates the row to *types.Plan.
func (t *plansTable) Get(id uint64) (*types.Plan, error) {
	q, err := t.src.querier()
	if err != nil {
		return nil, err
	}

	row := q.QueryRow("SELECT "+planColumns+" FROM plans WHERE plan_id = ?", id)
	plan, err := hydratePlan(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrPlanNotFound
		}
		return nil, fmt.Errorf("getting plan %d: %w", id, err)
	}
	return plan, nil
}

// Update loads the plan, applies mutate in memory, and writes the mutable
// columns back. Identity columns (owner, frequency, amount, created_at) are
// deliberately not in the UPDATE: they are immutable after creation.
func (t *plansTable) Update(id uint64, mutate func(*types.Plan) error) (*types.Plan, error) {
	plan, err := t.Get(id)
	if err != nil {
		return nil, err
	}

	if err := mutate(plan); err != nil {
		return nil, err
	}

	q, err := t.src.querier()
	if err != nil {
		return nil, err
	}

	_, err = q.Exec(
		`UPDATE plans SET total_deposited = ?, total_spent = ?,
            target_acquired = ?, purchases_completed = ?,
            next_purchase_block = ?, status = ?
         WHERE plan_id = ?`,
		plan.TotalDeposited, plan.TotalSpent, plan.TargetAcquired,
		plan.PurchasesCompleted, plan.NextPurchaseBlock, plan.Status, id,
	)
	if err != nil {
		return nil, fmt.Errorf("updating plan %d: %w", id, err)
	}
	return plan, nil
}

// List returns all plans ordered by ID.
func (t *plansTable) List() ([]*types.Plan, error) {
	q, err := t.src.querier()
	if err != nil {
		return nil, err
	}

	rows, err := q.Query("SELECT " + planColumns + " FROM plans ORDER BY plan_id ASC")
	if err != nil {
		return nil, fmt.Errorf("listing plans: %w", err)
	}
	defer rows.Close()

	var plans []*types.Plan
	for rows.Next() {
		plan, err := hydratePlan(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating plan: %w", err)
		}
		plans = append(plans, plan)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating plans: %w", err)
	}
	return plans, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// hydratePlan converts a SQLite row into a *types.Plan.
func hydratePlan(row rowScanner) (*types.Plan, error) {
	var p types.Plan
	err := row.Scan(
		&p.ID, &p.Owner, &p.FrequencyBlocks, &p.AmountPerPurchase,
		&p.TotalDeposited, &p.TotalSpent, &p.TargetAcquired,
		&p.PurchasesCompleted, &p.NextPurchaseBlock, &p.Status, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
