package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	pkgdb "github.com/Skotchmaster/todo_books/pkg/db"
	"github.com/Skotchmaster/todo_books/services/todo/internal/repo"
)

// NewRepo returns a migrated repository over a private in-memory SQLite database.
func NewRepo(t *testing.T) *repo.GormRepo {
	t.Helper()

	db, err := pkgdb.Open(context.Background(), pkgdb.DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = pkgdb.Close(db) })

	r := &repo.GormRepo{DB: db}
	require.NoError(t, r.Migrate(context.Background()))
	return r
}
