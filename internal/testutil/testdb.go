package testutil

import (
	"database/sql"
	"testing"

	"github.com/ninaorlova/lingua/internal/db"
)

// NewTestDB opens a migrated in-memory event store scoped to the test.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	store, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// NewTestUoW wraps the test store in a real transactional UnitOfWork.
func NewTestUoW(store *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(store)
}
