// Package repomanager picks the record store implementation for a configured
// location, opens it, and applies the embedded schema with goose.
//
// A location starting with postgres:// or postgresql:// selects PostgreSQL
// (pgx stdlib driver); anything else is treated as a SQLite file path, or
// ":memory:".
package repomanager

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/piiguard/internal/common"
	"github.com/dmitrijs2005/piiguard/internal/dbx"
	"github.com/dmitrijs2005/piiguard/internal/repositories/users"
)

// RepositoryManager vends repositories for one SQL dialect and knows how to
// bring that dialect's schema up to date.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
}

// ForLocation returns the driver name and manager matching location.
func ForLocation(location string) (driver string, m RepositoryManager) {
	if IsPostgres(location) {
		return postgresDriver, NewPostgresRepositoryManager()
	}
	return sqliteDriver, NewSQLiteRepositoryManager()
}

// IsPostgres reports whether location is a PostgreSQL DSN.
func IsPostgres(location string) bool {
	return strings.HasPrefix(location, "postgres://") || strings.HasPrefix(location, "postgresql://")
}

// sqlOpen is a seam for tests.
var sqlOpen = sql.Open

// Open connects to the store at location, verifies the connection and
// creates the schema if it is absent. The caller owns the returned *sql.DB.
func Open(ctx context.Context, location string) (*sql.DB, RepositoryManager, error) {
	driver, m := ForLocation(location)

	if p, ok := m.(preparer); ok {
		if err := p.prepare(location); err != nil {
			return nil, nil, fmt.Errorf("%w: %w", common.ErrStore, err)
		}
	}

	db, err := sqlOpen(driver, location)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: open %s: %w", common.ErrStore, driver, err)
	}

	if c, ok := m.(configurer); ok {
		c.configure(db)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("%w: ping %s: %w", common.ErrStore, driver, err)
	}

	if err := m.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("%w: migrate: %w", common.ErrStore, err)
	}

	return db, m, nil
}

// preparer is implemented by managers that need filesystem setup before the
// database is opened.
type preparer interface {
	prepare(location string) error
}

// configurer is implemented by managers that tune the connection pool.
type configurer interface {
	configure(db *sql.DB)
}
