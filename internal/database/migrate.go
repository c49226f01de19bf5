package database

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"

	"github.com/osse101/placecraft/internal/database/migrations"
	"github.com/osse101/placecraft/internal/logger"
)

// Dialects supported by Migrate
const (
	DialectPostgres = goose.DialectPostgres
	DialectSQLite   = goose.DialectSQLite3
)

var dialectDirs = map[goose.Dialect]string{
	DialectPostgres: migrations.PostgresDir,
	DialectSQLite:   migrations.SQLiteDir,
}

// Migrate applies every pending embedded migration for dialect. It does not
// close db.
func Migrate(ctx context.Context, db *sql.DB, dialect goose.Dialect) error {
	dir, ok := dialectDirs[dialect]
	if !ok {
		return fmt.Errorf("%s: unsupported dialect %q", ErrMsgFailedToMigrate, dialect)
	}
	sub, err := fs.Sub(migrations.FS, dir)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
	}

	provider, err := goose.NewProvider(dialect, db, sub)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
	}

	log := logger.FromContext(ctx)
	if len(results) == 0 {
		log.Debug(LogMsgSchemaUpToDate, "dialect", string(dialect))
	}
	for _, r := range results {
		log.Info(LogMsgAppliedMigration,
			"dialect", string(dialect),
			"version", r.Source.Version,
			"file", r.Source.Path,
			"duration", r.Duration)
	}
	return nil
}
