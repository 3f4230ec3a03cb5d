// Package types defines the entities, store interfaces, and standard errors
// for the dripstand recurring-purchase engine.
//
// A Plan is a standing order: a fixed funding-asset amount converted into the
// target asset every N observed blocks. The engine in internal/engine drives
// plans against the Store interface; internal/sqlite provides the SQLite
// implementation.
package types
