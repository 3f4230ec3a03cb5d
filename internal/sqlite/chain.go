// This file implements the chain table accessor: the observed block height.
// The engine only reads the height; Advance records externally observed
// blocks and never moves backwards.
package sqlite

import (
	"fmt"

	"github.com/dripworks/dripstand/pkg/types"
)

// Compile-time interface check: chainTable must implement Chain.
var _ types.Chain = (*chainTable)(nil)

type chainTable struct {
	src source
}

// Height returns the current observed block height.
func (t *chainTable) Height() (uint64, error) {
	q, err := t.src.querier()
	if err != nil {
		return 0, err
	}

	var height uint64
	if err := q.QueryRow("SELECT height FROM chain WHERE chain_id = 1").Scan(&height); err != nil {
		return 0, fmt.Errorf("reading chain height: %w", err)
	}
	return height, nil
}

// Advance records blocks newly observed blocks and returns the new height.
// Advance(0) is a plain read.
func (t *chainTable) Advance(blocks uint64) (uint64, error) {
	if blocks == 0 {
		return t.Height()
	}

	q, err := t.src.querier()
	if err != nil {
		return 0, err
	}

	if _, err := q.Exec("UPDATE chain SET height = height + ? WHERE chain_id = 1", blocks); err != nil {
		return 0, fmt.Errorf("advancing chain height: %w", err)
	}

	var height uint64
	if err := q.QueryRow("SELECT height FROM chain WHERE chain_id = 1").Scan(&height); err != nil {
		return 0, fmt.Errorf("reading chain height: %w", err)
	}
	return height, nil
}
