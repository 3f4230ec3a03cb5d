// This file provides the JSONL snapshot export: plans.jsonl and
// purchases.jsonl written with the atomic temp-file, fsync, rename pattern.
package sqlite

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// planJSONLRecord is the JSONL shape for one plan row.
type planJSONLRecord struct {
	PlanID             uint64 `json:"plan_id"`
	Owner              string `json:"owner"`
	FrequencyBlocks    uint64 `json:"frequency_blocks"`
	AmountPerPurchase  uint64 `json:"amount_per_purchase"`
	TotalDeposited     uint64 `json:"total_deposited"`
	TotalSpent         uint64 `json:"total_spent"`
	TargetAcquired     uint64 `json:"target_acquired"`
	PurchasesCompleted uint64 `json:"purchases_completed"`
	NextPurchaseBlock  uint64 `json:"next_purchase_block"`
	Status             string `json:"status"`
	CreatedAt          uint64 `json:"created_at"`
}

// purchaseJSONLRecord is the JSONL shape for one purchase row.
type purchaseJSONLRecord struct {
	PurchaseID uint64 `json:"purchase_id"`
	ReceiptID  string `json:"receipt_id"`
	PlanID     uint64 `json:"plan_id"`
	Spent      uint64 `json:"spent"`
	Acquired   uint64 `json:"acquired"`
	Height     uint64 `json:"height"`
	CreatedAt  string `json:"created_at"`
}

// Export writes plans.jsonl and purchases.jsonl snapshots into dir.
func (b *Backend) Export(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	if err := b.exportPlans(dir); err != nil {
		return err
	}
	return b.exportPurchases(dir)
}

func (b *Backend) exportPlans(dir string) error {
	plans, err := b.Plans().List()
	if err != nil {
		return err
	}

	records := make([]json.RawMessage, 0, len(plans))
	for _, p := range plans {
		rec := planJSONLRecord{
			PlanID:             p.ID,
			Owner:              p.Owner,
			FrequencyBlocks:    p.FrequencyBlocks,
			AmountPerPurchase:  p.AmountPerPurchase,
			TotalDeposited:     p.TotalDeposited,
			TotalSpent:         p.TotalSpent,
			TargetAcquired:     p.TargetAcquired,
			PurchasesCompleted: p.PurchasesCompleted,
			NextPurchaseBlock:  p.NextPurchaseBlock,
			Status:             p.Status,
			CreatedAt:          p.CreatedAt,
		}
		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("marshaling plan %d: %w", p.ID, err)
		}
		records = append(records, data)
	}
	return writeJSONL(filepath.Join(dir, "plans.jsonl"), records)
}

func (b *Backend) exportPurchases(dir string) error {
	q, err := b.querier()
	if err != nil {
		return err
	}

	rows, err := q.Query("SELECT " + purchaseColumns + " FROM purchases ORDER BY purchase_id ASC")
	if err != nil {
		return fmt.Errorf("querying purchases for JSONL: %w", err)
	}
	defer rows.Close()

	var records []json.RawMessage
	for rows.Next() {
		p, err := hydratePurchase(rows)
		if err != nil {
			return fmt.Errorf("hydrating purchase for JSONL: %w", err)
		}
		rec := purchaseJSONLRecord{
			PurchaseID: p.ID,
			ReceiptID:  p.ReceiptID,
			PlanID:     p.PlanID,
			Spent:      p.Spent,
			Acquired:   p.Acquired,
			Height:     p.Height,
			CreatedAt:  p.CreatedAt.Format(time.RFC3339),
		}
		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("marshaling purchase %d: %w", p.ID, err)
		}
		records = append(records, data)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating purchases for JSONL: %w", err)
	}
	return writeJSONL(filepath.Join(dir, "purchases.jsonl"), records)
}

// writeJSONL atomically writes records to a JSONL file using the temp-file,
// fsync, rename pattern.
func writeJSONL(path string, records []json.RawMessage) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".jsonl-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	w := bufio.NewWriter(tmp)
	for _, rec := range records {
		if _, err := w.Write(rec); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("writing record: %w", err)
		}
		if err := w.WriteByte('\n'); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("writing newline: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("flushing buffer: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
