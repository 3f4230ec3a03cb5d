package types

import "time"

// Purchase is the receipt for one successful settlement: Spent funding units
// left custody and Acquired target units were credited to the plan owner at
// the recorded height. ID is the sequence value returned to the caller of
// execute; ReceiptID is a UUID v7 assigned by the store.
type Purchase struct {
	ID        uint64
	ReceiptID string
	PlanID    uint64
	Spent     uint64
	Acquired  uint64
	Height    uint64
	CreatedAt time.Time
}
