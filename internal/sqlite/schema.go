// Package sqlite implements the SQLite backend for the dripstand store.
package sqlite

// Schema DDL. Attach executes every statement; the IF NOT EXISTS guards make
// reattaching to an existing data dir a no-op.
const (
	createPlans = `CREATE TABLE IF NOT EXISTS plans (
    plan_id INTEGER PRIMARY KEY,
    owner TEXT NOT NULL,
    frequency_blocks INTEGER NOT NULL,
    amount_per_purchase INTEGER NOT NULL,
    total_deposited INTEGER NOT NULL,
    total_spent INTEGER NOT NULL,
    target_acquired INTEGER NOT NULL,
    purchases_completed INTEGER NOT NULL,
    next_purchase_block INTEGER NOT NULL,
    status TEXT NOT NULL,
    created_at INTEGER NOT NULL
);`

	createPurchases = `CREATE TABLE IF NOT EXISTS purchases (
    purchase_id INTEGER PRIMARY KEY,
    receipt_id TEXT NOT NULL,
    plan_id INTEGER NOT NULL,
    spent INTEGER NOT NULL,
    acquired INTEGER NOT NULL,
    height INTEGER NOT NULL,
    created_at TEXT NOT NULL
);`

	createCounters = `CREATE TABLE IF NOT EXISTS counters (
    name TEXT PRIMARY KEY,
    value INTEGER NOT NULL
);`

	createBalances = `CREATE TABLE IF NOT EXISTS balances (
    asset TEXT NOT NULL,
    principal TEXT NOT NULL,
    amount INTEGER NOT NULL,
    PRIMARY KEY (asset, principal)
);`

	createChain = `CREATE TABLE IF NOT EXISTS chain (
    chain_id INTEGER PRIMARY KEY CHECK (chain_id = 1),
    height INTEGER NOT NULL
);`

	// Seed rows. Counters start at 0 and the observed height starts at 0;
	// both survive reattachment untouched.
	seedCounters = `INSERT OR IGNORE INTO counters (name, value) VALUES
    ('plans', 0),
    ('purchases', 0),
    ('tally', 0);`

	seedChain = `INSERT OR IGNORE INTO chain (chain_id, height) VALUES (1, 0);`
)

// schemaStatements is the ordered list Attach executes.
var schemaStatements = []string{
	createPlans,
	createPurchases,
	createCounters,
	createBalances,
	createChain,
	seedCounters,
	seedChain,
}
