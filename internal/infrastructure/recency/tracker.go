// Package recency maintains the recently opened content list and the set
// of paths temporarily excluded from it.
package recency

import (
	"context"
	"sync"

	"github.com/bnema/hoverpane/internal/application/port"
	"github.com/bnema/hoverpane/internal/domain/entity"
	"github.com/bnema/hoverpane/internal/domain/repository"
	"github.com/bnema/hoverpane/internal/logging"
)

// Tracker records opened content unless the path is ignored. Ignores nest:
// a path stays excluded until every release function has run.
type Tracker struct {
	repo  repository.RecentRepository
	limit int

	mu      sync.Mutex
	ignored map[string]int
}

var _ port.RecencyTracker = (*Tracker)(nil)

// NewTracker creates a tracker keeping at most limit entries.
func NewTracker(repo repository.RecentRepository, limit int) *Tracker {
	return &Tracker{
		repo:    repo,
		limit:   limit,
		ignored: make(map[string]int),
	}
}

// Ignore excludes path from recording until release runs. release is safe
// to call more than once.
func (t *Tracker) Ignore(path string) func() {
	t.mu.Lock()
	t.ignored[path]++
	t.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			t.mu.Lock()
			defer t.mu.Unlock()
			if t.ignored[path] <= 1 {
				delete(t.ignored, path)
				return
			}
			t.ignored[path]--
		})
	}
}

// Ignored reports whether path is currently excluded.
func (t *Tracker) Ignored(path string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ignored[path] > 0
}

// Record adds path to the recent list. Ignored paths are skipped and
// reported as not recorded.
func (t *Tracker) Record(ctx context.Context, path, title string) (bool, error) {
	if t.Ignored(path) {
		logging.FromContext(ctx).Debug().Str("path", path).Msg("recent entry suppressed")
		return false, nil
	}
	if err := t.repo.Record(ctx, path, title); err != nil {
		return false, err
	}
	if t.limit > 0 {
		if err := t.repo.Prune(ctx, t.limit); err != nil {
			logging.FromContext(ctx).Warn().Err(err).Msg("failed to prune recent list")
		}
	}
	return true, nil
}

// Recent returns the recent list, newest first.
func (t *Tracker) Recent(ctx context.Context) ([]*entity.RecentEntry, error) {
	limit := t.limit
	if limit <= 0 {
		limit = 50
	}
	return t.repo.Recent(ctx, limit)
}

// Forget removes path from the recent list.
func (t *Tracker) Forget(ctx context.Context, path string) error {
	return t.repo.Delete(ctx, path)
}
