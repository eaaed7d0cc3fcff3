package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/bnema/hoverpane/internal/domain/entity"
	"github.com/bnema/hoverpane/internal/domain/repository"
	"github.com/bnema/hoverpane/internal/logging"
)

const (
	upsertRecentSQL = `
INSERT INTO recent (path, title, open_count, last_opened)
VALUES (?, ?, 1, ?)
ON CONFLICT(path) DO UPDATE SET
    title = CASE WHEN excluded.title != '' THEN excluded.title ELSE recent.title END,
    open_count = recent.open_count + 1,
    last_opened = excluded.last_opened`

	selectRecentSQL = `
SELECT id, path, title, open_count, last_opened
FROM recent
ORDER BY last_opened DESC, id DESC
LIMIT ?`

	deleteRecentSQL = `DELETE FROM recent WHERE path = ?`

	pruneRecentSQL = `
DELETE FROM recent WHERE id NOT IN (
    SELECT id FROM recent ORDER BY last_opened DESC, id DESC LIMIT ?
)`
)

type recentRepo struct {
	db  *sql.DB
	now func() time.Time
}

// NewRecentRepository creates a new SQLite-backed recent list.
func NewRecentRepository(db *sql.DB) repository.RecentRepository {
	return &recentRepo{db: db, now: time.Now}
}

func (r *recentRepo) Record(ctx context.Context, path, title string) error {
	logging.FromContext(ctx).Debug().Str("path", path).Msg("recording recent content")

	if _, err := r.db.ExecContext(ctx, upsertRecentSQL, path, title, r.now().UnixNano()); err != nil {
		return fmt.Errorf("record recent %q: %w", path, err)
	}
	return nil
}

func (r *recentRepo) Recent(ctx context.Context, limit int) ([]*entity.RecentEntry, error) {
	rows, err := r.db.QueryContext(ctx, selectRecentSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			logging.FromContext(ctx).Debug().Err(cerr).Msg("failed to close recent rows")
		}
	}()

	entries := make([]*entity.RecentEntry, 0, limit)
	for rows.Next() {
		var (
			e      entity.RecentEntry
			opened int64
		)
		if err := rows.Scan(&e.ID, &e.Path, &e.Title, &e.OpenCount, &opened); err != nil {
			return nil, fmt.Errorf("scan recent: %w", err)
		}
		e.LastOpened = time.Unix(0, opened)
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recent: %w", err)
	}
	return entries, nil
}

func (r *recentRepo) Delete(ctx context.Context, path string) error {
	if _, err := r.db.ExecContext(ctx, deleteRecentSQL, path); err != nil {
		return fmt.Errorf("delete recent %q: %w", path, err)
	}
	return nil
}

func (r *recentRepo) Prune(ctx context.Context, keep int) error {
	res, err := r.db.ExecContext(ctx, pruneRecentSQL, keep)
	if err != nil {
		return fmt.Errorf("prune recent: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n > 0 {
		logging.FromContext(ctx).Debug().Int64("removed", n).Msg("pruned recent list")
	}
	return nil
}
