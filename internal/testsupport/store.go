package testsupport

import (
	"testing"

	"chksum/internal/config"
	"chksum/internal/sumdb"
)

// MustOpenStore opens a sumdb.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *sumdb.Store {
	t.Helper()

	store, err := sumdb.Open(cfg)
	if err != nil {
		t.Fatalf("sumdb.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}
