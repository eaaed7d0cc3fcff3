package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bnema/hoverpane/internal/logging"
	_ "github.com/ncruces/go-sqlite3/driver" // SQLite driver (pure Go)
	_ "github.com/ncruces/go-sqlite3/embed"  // Embed SQLite WASM binary
)

// StoreOptions describes a database file: the pragmas applied on open and
// the goose migrations that build its schema.
type StoreOptions struct {
	Pragmas []string
	// Migrations holds goose SQL files at its root. Nil skips migrating.
	Migrations fs.FS
}

// recentPragmas tune the recent list store. A running demo writes while
// `hoverpane recent` reads, so WAL and a busy timeout matter more than
// cache size for a single small table.
var recentPragmas = []string{
	"PRAGMA journal_mode = WAL",
	"PRAGMA synchronous = NORMAL",
	"PRAGMA busy_timeout = 5000",
	"PRAGMA cache_size = -2000", // 2MB
	"PRAGMA temp_store = MEMORY",
}

// RecentStoreOptions returns the settings of the recent list database.
func RecentStoreOptions() StoreOptions {
	return StoreOptions{
		Pragmas:    recentPragmas,
		Migrations: recentMigrations(),
	}
}

// OpenStore opens the SQLite file at dbPath, creating its directory, and
// applies opts.
func OpenStore(ctx context.Context, dbPath string, opts StoreOptions) (*sql.DB, error) {
	const dbDirPerm = 0o750
	log := logging.FromContext(ctx)

	if dbPath == "" {
		return nil, fmt.Errorf("database path cannot be empty")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), dbDirPerm); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Must be done before any queries.
	configurePool(db)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := applyPragmas(ctx, db, opts.Pragmas); err != nil {
		_ = db.Close()
		return nil, err
	}
	if opts.Migrations != nil {
		if _, err := Migrate(ctx, db, opts.Migrations); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	log.Info().Str("path", dbPath).Int("pragmas", len(opts.Pragmas)).Msg("database connection established")
	return db, nil
}

func applyPragmas(ctx context.Context, db *sql.DB, pragmas []string) error {
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			return fmt.Errorf("failed to set pragma %q: %w", pragma, err)
		}
	}
	return nil
}

// configurePool keeps a single long-lived connection. SQLite has one writer,
// and the pool lives exactly as long as the process.
func configurePool(db *sql.DB) {
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)
}
