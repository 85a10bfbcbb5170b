// Package migrations embeds the schema for every supported record store
// dialect. Goose applies the files at startup; each dialect has its own
// directory inside the embedded filesystem.
package migrations

import "embed"

//go:embed sqlite/*.sql postgres/*.sql
var Migrations embed.FS

const (
	SQLiteDir   = "sqlite"
	PostgresDir = "postgres"
)
