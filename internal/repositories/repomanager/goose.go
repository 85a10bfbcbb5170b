package repomanager

import (
	"context"
	"database/sql"
	"io"
	"log"
	"sync"

	"github.com/dmitrijs2005/piiguard/internal/migrations"
	"github.com/pressly/goose/v3"
)

// goose keeps its dialect and base FS in package globals.
var gooseMu sync.Mutex

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

func runGoose(ctx context.Context, db *sql.DB, dialect, dir string) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(log.New(io.Discard, "", 0))
	if err := goose.SetDialect(dialect); err != nil {
		return err
	}

	return gooseUpContext(ctx, db, dir)
}
