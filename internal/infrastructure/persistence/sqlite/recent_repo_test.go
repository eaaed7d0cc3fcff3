package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/bnema/hoverpane/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/hoverpane/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func newRecentRepo(t *testing.T) (context.Context, *sqlite.LazyDB) {
	t.Helper()
	ctx := testCtx()
	lazy := sqlite.NewRecentStore(filepath.Join(t.TempDir(), "hoverpane.sqlite"))
	t.Cleanup(func() { _ = lazy.Close() })
	return ctx, lazy
}

func TestRecentRepository_RecordAndList(t *testing.T) {
	ctx, lazy := newRecentRepo(t)
	db, err := lazy.DB(ctx)
	require.NoError(t, err)
	repo := sqlite.NewRecentRepository(db)

	require.NoError(t, repo.Record(ctx, "a.md", "A"))
	require.NoError(t, repo.Record(ctx, "b.md", "B"))
	require.NoError(t, repo.Record(ctx, "a.md", ""))

	entries, err := repo.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "a.md", entries[0].Path, "reopened entry moves to the front")
	assert.Equal(t, "A", entries[0].Title, "empty title keeps the stored one")
	assert.Equal(t, int64(2), entries[0].OpenCount)
	assert.Equal(t, "b.md", entries[1].Path)
	assert.False(t, entries[0].LastOpened.Before(entries[1].LastOpened))
}

func TestRecentRepository_Limit(t *testing.T) {
	ctx, lazy := newRecentRepo(t)
	db, err := lazy.DB(ctx)
	require.NoError(t, err)
	repo := sqlite.NewRecentRepository(db)

	for _, p := range []string{"1.md", "2.md", "3.md"} {
		require.NoError(t, repo.Record(ctx, p, ""))
	}

	entries, err := repo.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "3.md", entries[0].Path)
}

func TestRecentRepository_DeleteAndPrune(t *testing.T) {
	ctx, lazy := newRecentRepo(t)
	db, err := lazy.DB(ctx)
	require.NoError(t, err)
	repo := sqlite.NewRecentRepository(db)

	for _, p := range []string{"1.md", "2.md", "3.md", "4.md"} {
		require.NoError(t, repo.Record(ctx, p, ""))
	}
	require.NoError(t, repo.Delete(ctx, "4.md"))
	require.NoError(t, repo.Prune(ctx, 2))

	entries, err := repo.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "3.md", entries[0].Path)
	assert.Equal(t, "2.md", entries[1].Path)
}

func TestMigrate_Idempotent(t *testing.T) {
	ctx, lazy := newRecentRepo(t)
	db, err := lazy.DB(ctx)
	require.NoError(t, err)

	version, err := sqlite.Migrate(ctx, db, sqlite.RecentStoreOptions().Migrations)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
	version, err = sqlite.RecentSchemaVersion(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
}
