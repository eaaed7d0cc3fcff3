package sqlite_test

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/bnema/hoverpane/internal/infrastructure/persistence/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tableExists(t *testing.T, ctx context.Context, db *sql.DB, name string) bool {
	t.Helper()
	var n int
	err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", name).Scan(&n)
	require.NoError(t, err)
	return n == 1
}

func TestRecentStore_OpensOnFirstUse(t *testing.T) {
	ctx := testCtx()
	store := sqlite.NewRecentStore(filepath.Join(t.TempDir(), "state", "hoverpane.sqlite"))
	t.Cleanup(func() { _ = store.Close() })
	assert.False(t, store.IsInitialized())

	repo, err := store.Recent(ctx)
	require.NoError(t, err)
	require.NoError(t, repo.Record(ctx, "a.md", "A"))
	assert.True(t, store.IsInitialized())

	db, err := store.DB(ctx)
	require.NoError(t, err)
	assert.True(t, tableExists(t, ctx, db, "recent"))
	version, err := sqlite.RecentSchemaVersion(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
}

func TestRecentStore_AppliesPragmas(t *testing.T) {
	ctx := testCtx()
	store := sqlite.NewRecentStore(filepath.Join(t.TempDir(), "hoverpane.sqlite"))
	t.Cleanup(func() { _ = store.Close() })

	db, err := store.DB(ctx)
	require.NoError(t, err)

	var mode string
	require.NoError(t, db.QueryRowContext(ctx, "PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)
	var timeout int
	require.NoError(t, db.QueryRowContext(ctx, "PRAGMA busy_timeout").Scan(&timeout))
	assert.Equal(t, 5000, timeout)
}

func TestRecentStore_ConcurrentFirstUse(t *testing.T) {
	ctx := testCtx()
	store := sqlite.NewRecentStore(filepath.Join(t.TempDir(), "hoverpane.sqlite"))
	t.Cleanup(func() { _ = store.Close() })

	const goroutines = 10
	var wg sync.WaitGroup
	dbs := make([]*sql.DB, goroutines)
	errs := make([]error, goroutines)
	for i := range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			dbs[i], errs[i] = store.DB(ctx)
			if errs[i] == nil {
				errs[i] = sqlite.NewRecentRepository(dbs[i]).Record(ctx, filepath.Join("notes", string(rune('a'+i))+".md"), "")
			}
		}()
	}
	wg.Wait()

	for i := range goroutines {
		require.NoError(t, errs[i])
		assert.Same(t, dbs[0], dbs[i])
	}
	repo, err := store.Recent(ctx)
	require.NoError(t, err)
	entries, err := repo.Recent(ctx, 20)
	require.NoError(t, err)
	assert.Len(t, entries, goroutines)
}

func TestRecentStore_ReopenKeepsEntries(t *testing.T) {
	ctx := testCtx()
	path := filepath.Join(t.TempDir(), "hoverpane.sqlite")

	first := sqlite.NewRecentStore(path)
	repo, err := first.Recent(ctx)
	require.NoError(t, err)
	require.NoError(t, repo.Record(ctx, "kept.md", "Kept"))
	require.NoError(t, first.Close())

	_, err = first.DB(ctx)
	require.ErrorIs(t, err, sqlite.ErrClosed)

	second := sqlite.NewRecentStore(path)
	t.Cleanup(func() { _ = second.Close() })
	repo, err = second.Recent(ctx)
	require.NoError(t, err)
	entries, err := repo.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Kept", entries[0].Title)
}

func TestRecentStore_FailedOpenIsSticky(t *testing.T) {
	ctx := testCtx()
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))
	store := sqlite.NewRecentStore(filepath.Join(blocker, "hoverpane.sqlite"))

	_, err := store.Recent(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database directory")

	_, err = store.DB(ctx)
	require.Error(t, err)
	assert.False(t, store.IsInitialized())
	assert.NoError(t, store.Close())
}

func TestLazyDB_UsesGivenMigrations(t *testing.T) {
	ctx := testCtx()
	migrations := fstest.MapFS{
		"00001_pins.sql": &fstest.MapFile{Data: []byte(`-- +goose Up
CREATE TABLE pins (path TEXT PRIMARY KEY);

-- +goose Down
DROP TABLE pins;
`)},
	}
	store := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "other.sqlite"), sqlite.StoreOptions{Migrations: migrations})
	t.Cleanup(func() { _ = store.Close() })

	db, err := store.DB(ctx)
	require.NoError(t, err)
	assert.True(t, tableExists(t, ctx, db, "pins"))
	assert.False(t, tableExists(t, ctx, db, "recent"))
}
