package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/bnema/hoverpane/internal/logging"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// recentMigrations returns the schema of the recent list store.
func recentMigrations() fs.FS {
	sub, err := fs.Sub(embedMigrations, "migrations")
	if err != nil {
		panic(fmt.Sprintf("recent migrations: %v", err))
	}
	return sub
}

// Migrate applies the pending goose migrations found in fsys and returns the
// resulting schema version.
func Migrate(ctx context.Context, db *sql.DB, fsys fs.FS) (int64, error) {
	log := logging.FromContext(ctx)

	provider, err := goose.NewProvider(goose.DialectSQLite3, db, fsys)
	if err != nil {
		return 0, fmt.Errorf("failed to load migrations: %w", err)
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to run migrations: %w", err)
	}
	version, err := provider.GetDBVersion(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get db version after migration: %w", err)
	}

	for _, res := range results {
		log.Info().
			Str("file", res.Source.Path).
			Int64("version", res.Source.Version).
			Dur("took", res.Duration).
			Msg("database migration applied")
	}
	if len(results) == 0 {
		log.Debug().Int64("version", version).Msg("database schema up to date")
	}
	return version, nil
}

// RecentSchemaVersion returns the applied version of the recent list schema.
func RecentSchemaVersion(ctx context.Context, db *sql.DB) (int64, error) {
	provider, err := goose.NewProvider(goose.DialectSQLite3, db, recentMigrations())
	if err != nil {
		return 0, err
	}
	return provider.GetDBVersion(ctx)
}
