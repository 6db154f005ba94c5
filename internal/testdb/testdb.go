// Package testdb provides migrated in-memory SQLite databases for tests.
package testdb

import (
	"context"
	"fmt"
	"testing"

	"loja/internal/database"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// DSN returns a private shared-cache in-memory database with foreign keys on.
func DSN() string {
	return fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
}

// Open returns a freshly migrated database that is closed when the test ends.
func Open(tb testing.TB) *gorm.DB {
	tb.Helper()

	db, err := database.Open(database.DriverSQLite, DSN(), zerolog.Nop())
	if err != nil {
		tb.Fatalf("open test database: %v", err)
	}
	if err := database.Migrate(context.Background(), db, database.DriverSQLite, zerolog.Nop()); err != nil {
		tb.Fatalf("migrate test database: %v", err)
	}
	tb.Cleanup(func() {
		_ = database.Close(db)
	})
	return db
}
