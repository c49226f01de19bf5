// Package migrations embeds the goose migrations for every SQL backend.
package migrations

import "embed"

// FS holds one directory of migrations per dialect.
//
//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS

// Dialect directories inside FS
const (
	PostgresDir = "postgres"
	SQLiteDir   = "sqlite"
)
