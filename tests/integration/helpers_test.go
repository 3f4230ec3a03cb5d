// Shared helpers for engine-level integration tests.
package integration

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dripworks/dripstand/internal/engine"
	"github.com/dripworks/dripstand/pkg/sqlite"
	"github.com/dripworks/dripstand/pkg/types"
)

// newAttachedStore creates a store attached to a temp directory. Detach is
// registered as a cleanup.
func newAttachedStore(t *testing.T) (types.Store, string) {
	t.Helper()

	dir := t.TempDir()
	store := sqlite.NewStore()
	require.NoError(t, store.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dir}))
	t.Cleanup(func() { store.Detach() })
	return store, dir
}

// newEngine creates an engine over a fresh attached store with the default
// exchange rate.
func newEngine(t *testing.T) *engine.Engine {
	t.Helper()

	store, _ := newAttachedStore(t)
	return engine.New(store, 0)
}
