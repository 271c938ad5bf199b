// Package testdb opens in-memory SQLite databases carrying the packing schema
// for repository, query and end-to-end command tests.
package testdb

import (
	"testing"
	"time"

	"packing/internal/adapters/out/postgres"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Open returns a fresh schema in a private in-memory database. The pool is
// limited to one connection because every SQLite memory connection is a
// separate database.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := postgres.OpenDialector(sqlite.Open(":memory:"), postgres.Config{
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		LogLevel:     "silent",
	}, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, postgres.AutoMigrate(db))

	t.Cleanup(func() {
		_ = postgres.Close(db)
	})
	return db
}

// Now is the reference time used by fixtures.
func Now() time.Time {
	return time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)
}
