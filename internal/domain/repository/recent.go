package repository

import (
	"context"

	"github.com/bnema/hoverpane/internal/domain/entity"
)

// RecentRepository defines operations for the recently opened content list.
type RecentRepository interface {
	// Record creates the entry for path or bumps its open count and time.
	Record(ctx context.Context, path, title string) error

	// Recent returns the most recently opened entries, newest first.
	Recent(ctx context.Context, limit int) ([]*entity.RecentEntry, error)

	// Delete removes the entry for path.
	Delete(ctx context.Context, path string) error

	// Prune keeps only the keep most recent entries.
	Prune(ctx context.Context, keep int) error
}
