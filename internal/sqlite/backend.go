package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/dripworks/dripstand/pkg/types"
)

// dbFileName is the SQLite database file inside the data dir.
const dbFileName = "dripstand.db"

// querier is the subset of database/sql shared by *sql.DB and *sql.Tx.
// Table accessors run against a querier so the same code serves both
// autocommit calls and Transact bodies.
type querier interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

// Backend implements types.Store using a single SQLite database as the
// source of truth for plans, purchases, counters, balances, and the observed
// chain height.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
}

// Compile-time interface check.
var _ types.Store = (*Backend)(nil)

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend() *Backend {
	return &Backend{}
}

// Attach initializes the backend with the given configuration. Creates
// DataDir if it does not exist, opens the database, and applies the schema.
// Existing data is preserved. Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, dbFileName))
	if err != nil {
		return err
	}

	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return fmt.Errorf("applying schema: %w", err)
		}
	}

	b.db = db
	b.config = config
	b.attached = true

	return nil
}

// Detach closes the database. Idempotent; after Detach all accessor
// operations return ErrStoreDetached.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil // idempotent
	}

	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return err
		}
		b.db = nil
	}

	b.attached = false
	return nil
}

// querier returns the live database handle, or ErrStoreDetached.
func (b *Backend) querier() (querier, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}
	return b.db, nil
}

// source resolves a querier for an accessor: the transaction when inside
// Transact, the attached database otherwise.
type source struct {
	b  *Backend // autocommit mode
	tx *sql.Tx  // transaction mode
}

func (s source) querier() (querier, error) {
	if s.tx != nil {
		return s.tx, nil
	}
	return s.b.querier()
}

// Accessors in autocommit mode.

func (b *Backend) Plans() types.PlanStore       { return &plansTable{source{b: b}} }
func (b *Backend) Purchases() types.PurchaseLog { return &purchasesTable{source{b: b}} }
func (b *Backend) Ledger() types.Ledger         { return &ledgerTable{source{b: b}} }
func (b *Backend) Chain() types.Chain           { return &chainTable{source{b: b}} }
func (b *Backend) Sequences() types.Sequences   { return &countersTable{source{b: b}} }

// txAccessors implements types.Tx over one open transaction.
type txAccessors struct {
	tx *sql.Tx
}

func (t txAccessors) Plans() types.PlanStore       { return &plansTable{source{tx: t.tx}} }
func (t txAccessors) Purchases() types.PurchaseLog { return &purchasesTable{source{tx: t.tx}} }
func (t txAccessors) Ledger() types.Ledger         { return &ledgerTable{source{tx: t.tx}} }
func (t txAccessors) Chain() types.Chain           { return &chainTable{source{tx: t.tx}} }
func (t txAccessors) Sequences() types.Sequences   { return &countersTable{source{tx: t.tx}} }

// Transact runs fn inside one transaction. An error from fn rolls back every
// write and is returned unchanged; otherwise the transaction commits. This
// is the all-or-nothing boundary the engine wraps around each state-changing
// call.
func (b *Backend) Transact(fn func(tx types.Tx) error) error {
	b.mu.RLock()
	attached, db := b.attached, b.db
	b.mu.RUnlock()

	if !attached {
		return types.ErrStoreDetached
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	if err := fn(txAccessors{tx: tx}); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}
