// Package vault stores panel content as plain files under one root
// directory and resolves links between them.
package vault

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/bnema/hoverpane/internal/application/port"
	"github.com/bnema/hoverpane/internal/domain/entity"
)

var (
	// ErrNotFound is returned when a path does not name stored content.
	ErrNotFound = errors.New("vault: content not found")
	// ErrExists is returned by Create when the target is already taken.
	ErrExists = errors.New("vault: content already exists")
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Placement of content created from a missing link.
const (
	PlaceBesideSource = "source"
	PlaceAtRoot       = "root"
)

// Options configures a Vault.
type Options struct {
	// NewFilePlacement is PlaceBesideSource or PlaceAtRoot.
	NewFilePlacement string
}

// Vault is a directory of content addressed by slash separated paths
// relative to its root.
type Vault struct {
	root string
	opts Options

	group singleflight.Group

	mu       sync.RWMutex
	meta     map[string]*cachedMetadata
	index    []string // nil until built; only kept while watching
	watching bool
}

var _ port.ContentResolver = (*Vault)(nil)

// New opens the vault rooted at root. The directory must exist.
func New(root string, opts Options) (*Vault, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve vault root: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("open vault %s: %w", abs, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("open vault %s: not a directory", abs)
	}
	if opts.NewFilePlacement == "" {
		opts.NewFilePlacement = PlaceBesideSource
	}
	return &Vault{
		root: abs,
		opts: opts,
		meta: make(map[string]*cachedMetadata),
	}, nil
}

// Root returns the absolute vault directory.
func (v *Vault) Root() string {
	return v.root
}

// Abs converts a vault path to a filesystem path.
func (v *Vault) Abs(rel string) string {
	return filepath.Join(v.root, filepath.FromSlash(rel))
}

// Rel converts a filesystem path inside the vault to a vault path.
func (v *Vault) Rel(abs string) (string, bool) {
	rel, err := filepath.Rel(v.root, abs)
	if err != nil {
		return "", false
	}
	rel = filepath.ToSlash(rel)
	if rel == "." || strings.HasPrefix(rel, "../") || rel == ".." {
		return "", false
	}
	return rel, true
}

// Read returns the bytes of the content at rel.
func (v *Vault) Read(_ context.Context, rel string) ([]byte, error) {
	clean, ok := cleanRel(rel)
	if !ok {
		return nil, fmt.Errorf("read %q: %w", rel, ErrNotFound)
	}
	data, err := os.ReadFile(v.Abs(clean))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read %q: %w", rel, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", rel, err)
	}
	return data, nil
}

// Ref returns a handle for existing content.
func (v *Vault) Ref(rel string) (*entity.ContentRef, error) {
	clean, ok := cleanRel(rel)
	if !ok || !v.isFile(clean) {
		return nil, fmt.Errorf("%q: %w", rel, ErrNotFound)
	}
	return &entity.ContentRef{Path: clean, Kind: DetectKind(clean)}, nil
}

func (v *Vault) isFile(rel string) bool {
	info, err := os.Stat(v.Abs(rel))
	return err == nil && info.Mode().IsRegular()
}

// cleanRel normalizes a vault path and rejects paths leaving the root.
func cleanRel(rel string) (string, bool) {
	rel = strings.TrimSpace(filepath.ToSlash(rel))
	if rel == "" {
		return "", false
	}
	clean := strings.TrimPrefix(path.Clean("/"+rel), "/")
	if clean == "" || strings.HasPrefix(path.Clean(rel), "..") {
		return "", false
	}
	return clean, true
}
