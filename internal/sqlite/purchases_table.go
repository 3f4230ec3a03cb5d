// This file implements the purchases table accessor: settlement receipts
// keyed by the sequence-issued purchase ID.
package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dripworks/dripstand/pkg/types"
)

// Compile-time interface check: purchasesTable must implement PurchaseLog.
var _ types.PurchaseLog = (*purchasesTable)(nil)

type purchasesTable struct {
	src source
}

const purchaseColumns = `purchase_id, receipt_id, plan_id, spent, acquired, height, created_at`

// Append stores a receipt, assigning its ReceiptID (UUID v7) and CreatedAt.
func (t *purchasesTable) Append(p *types.Purchase) error {
	q, err := t.src.querier()
	if err != nil {
		return err
	}

	p.ReceiptID = generateUUID()
	p.CreatedAt = time.Now().UTC()

	_, err = q.Exec(
		`INSERT INTO purchases (`+purchaseColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.ReceiptID, p.PlanID, p.Spent, p.Acquired, p.Height,
		p.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("appending purchase %d: %w", p.ID, err)
	}
	return nil
}

// Get retrieves a receipt by purchase ID.
func (t *purchasesTable) Get(id uint64) (*types.Purchase, error) {
	q, err := t.src.querier()
	if err != nil {
		return nil, err
	}

	row := q.QueryRow("SELECT "+purchaseColumns+" FROM purchases WHERE purchase_id = ?", id)
	p, err := hydratePurchase(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrPurchaseNotFound
		}
		return nil, fmt.Errorf("getting purchase %d: %w", id, err)
	}
	return p, nil
}

// ListByPlan returns a plan's receipts ordered by purchase ID.
func (t *purchasesTable) ListByPlan(planID uint64) ([]*types.Purchase, error) {
	q, err := t.src.querier()
	if err != nil {
		return nil, err
	}

	rows, err := q.Query(
		"SELECT "+purchaseColumns+" FROM purchases WHERE plan_id = ? ORDER BY purchase_id ASC",
		planID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing purchases for plan %d: %w", planID, err)
	}
	defer rows.Close()

	var purchases []*types.Purchase
	for rows.Next() {
		p, err := hydratePurchase(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating purchase: %w", err)
		}
		purchases = append(purchases, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating purchases: %w", err)
	}
	return purchases, nil
}

// hydratePurchase converts a SQLite row into a *types.Purchase.
func hydratePurchase(row rowScanner) (*types.Purchase, error) {
	var p types.Purchase
	var createdAt string
	err := row.Scan(&p.ID, &p.ReceiptID, &p.PlanID, &p.Spent, &p.Acquired, &p.Height, &createdAt)
	if err != nil {
		return nil, err
	}
	p.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &p, nil
}

// generateUUID generates a new UUID v7 for receipt IDs.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}
