package port

import (
	"context"

	"github.com/bnema/hoverpane/internal/domain/entity"
)

// ContentResolver maps link text to stored content.
type ContentResolver interface {
	// FirstLinkpathDest resolves a link path relative to sourcePath.
	FirstLinkpathDest(ctx context.Context, linkpath, sourcePath string) (*entity.ContentRef, bool)

	// ResolveSubpath maps "#heading" or "#^block" to a line range.
	// Returns nil when the subpath does not exist.
	ResolveSubpath(ctx context.Context, ref entity.ContentRef, subpath string) (*entity.SubpathRange, error)

	// NewContentPath picks where a missing link target should be created.
	NewContentPath(ctx context.Context, linkpath, sourcePath string) (string, error)

	// Create makes an empty document at path.
	Create(ctx context.Context, path string) (*entity.ContentRef, error)
}

// RecencyTracker records recently opened content. Ignore suppresses
// recording for path until the returned release function runs.
type RecencyTracker interface {
	Ignore(path string) (release func())
}

// ExternalOpener hands content the panel cannot display to the desktop.
type ExternalOpener interface {
	OpenExternal(ctx context.Context, path string) error
}
