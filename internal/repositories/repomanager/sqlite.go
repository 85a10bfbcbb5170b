package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/piiguard/internal/dbx"
	"github.com/dmitrijs2005/piiguard/internal/filex"
	"github.com/dmitrijs2005/piiguard/internal/migrations"
	"github.com/dmitrijs2005/piiguard/internal/repositories/users"

	_ "modernc.org/sqlite" // pure-Go SQLite driver
)

const sqliteDriver = "sqlite"

// SQLiteRepositoryManager vends SQLite-backed repositories.
type SQLiteRepositoryManager struct{}

func NewSQLiteRepositoryManager() *SQLiteRepositoryManager {
	return &SQLiteRepositoryManager{}
}

// Users returns a users.Repository bound to the provided DBTX.
func (m *SQLiteRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewSQLiteRepository(db)
}

// RunMigrations applies the embedded SQLite schema.
func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return runGoose(ctx, db, "sqlite3", migrations.SQLiteDir)
}

// prepare creates the directory holding the database file.
func (m *SQLiteRepositoryManager) prepare(location string) error {
	if location == ":memory:" {
		return nil
	}
	return filex.EnsureParentDir(location, 0o770)
}

// configure limits the pool to one connection: SQLite serializes writers,
// and an in-memory database exists per connection.
func (m *SQLiteRepositoryManager) configure(db *sql.DB) {
	db.SetMaxOpenConns(1)
}
