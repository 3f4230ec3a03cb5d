// This file implements the counters table accessor: named monotonic
// sequences (plans, purchases, tally). Each Next durably advances its
// counter by exactly one; counters are never reset.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/dripworks/dripstand/pkg/types"
)

// Compile-time interface check: countersTable must implement Sequences.
var _ types.Sequences = (*countersTable)(nil)

type countersTable struct {
	src source
}

// Next increments the named counter and returns the new value. Callers that
// need the increment and its use to be atomic run inside Store.Transact.
func (t *countersTable) Next(name string) (uint64, error) {
	q, err := t.src.querier()
	if err != nil {
		return 0, err
	}

	res, err := q.Exec("UPDATE counters SET value = value + 1 WHERE name = ?", name)
	if err != nil {
		return 0, fmt.Errorf("advancing counter %s: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("advancing counter %s: %w", name, err)
	}
	if n == 0 {
		return 0, types.ErrUnknownSequence
	}

	var value uint64
	if err := q.QueryRow("SELECT value FROM counters WHERE name = ?", name).Scan(&value); err != nil {
		return 0, fmt.Errorf("reading counter %s: %w", name, err)
	}
	return value, nil
}

// Current returns the counter's value without advancing it.
func (t *countersTable) Current(name string) (uint64, error) {
	q, err := t.src.querier()
	if err != nil {
		return 0, err
	}

	var value uint64
	err = q.QueryRow("SELECT value FROM counters WHERE name = ?", name).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, types.ErrUnknownSequence
		}
		return 0, fmt.Errorf("reading counter %s: %w", name, err)
	}
	return value, nil
}
