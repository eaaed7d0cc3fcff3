package vault

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bnema/hoverpane/internal/domain/entity"
	"github.com/bnema/hoverpane/internal/logging"
)

const defaultExt = ".md"

// FirstLinkpathDest resolves linkpath as written in sourcePath. Lookup order:
// relative to the source for "./" and "../" links, the exact vault path, the
// path with ".md" appended, then any file with the same name, closest to
// the source folder first. An empty linkpath refers to the source itself.
func (v *Vault) FirstLinkpathDest(ctx context.Context, linkpath, sourcePath string) (*entity.ContentRef, bool) {
	linkpath = strings.TrimSpace(filepath.ToSlash(linkpath))
	if linkpath == "" {
		if ref, err := v.Ref(sourcePath); err == nil {
			return ref, true
		}
		return nil, false
	}

	for _, candidate := range v.directCandidates(linkpath, sourcePath) {
		if v.isFile(candidate) {
			return &entity.ContentRef{Path: candidate, Kind: DetectKind(candidate)}, true
		}
	}

	if strings.HasPrefix(linkpath, "./") || strings.HasPrefix(linkpath, "../") {
		return nil, false
	}

	files, err := v.files(ctx)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("vault index failed")
		return nil, false
	}
	if match, ok := closestMatch(files, withDefaultExt(linkpath), sourcePath); ok {
		return &entity.ContentRef{Path: match, Kind: DetectKind(match)}, true
	}
	return nil, false
}

func (v *Vault) directCandidates(linkpath, sourcePath string) []string {
	var bases []string
	if strings.HasPrefix(linkpath, "./") || strings.HasPrefix(linkpath, "../") {
		bases = append(bases, path.Join(path.Dir(sourcePath), linkpath))
	} else {
		bases = append(bases, linkpath)
	}

	var out []string
	for _, b := range bases {
		clean, ok := cleanRel(b)
		if !ok {
			continue
		}
		out = append(out, clean)
		if path.Ext(clean) == "" {
			out = append(out, clean+defaultExt)
		}
	}
	return out
}

func withDefaultExt(p string) string {
	if path.Ext(p) == "" {
		return p + defaultExt
	}
	return p
}

// closestMatch picks the file whose path ends with want, preferring the one
// sharing the most folders with source, then the shallowest, then the
// lexically smallest.
func closestMatch(files []string, want, source string) (string, bool) {
	want = strings.ToLower(strings.TrimPrefix(want, "/"))
	srcDir := strings.Split(path.Dir(source), "/")

	var best string
	bestShared, bestDepth := -1, 0
	for _, f := range files {
		lf := strings.ToLower(f)
		if lf != want && !strings.HasSuffix(lf, "/"+want) {
			continue
		}
		parts := strings.Split(path.Dir(f), "/")
		shared := sharedPrefix(parts, srcDir)
		depth := strings.Count(f, "/")
		switch {
		case shared > bestShared,
			shared == bestShared && depth < bestDepth,
			shared == bestShared && depth == bestDepth && f < best:
			best, bestShared, bestDepth = f, shared, depth
		}
	}
	return best, bestShared >= 0
}

func sharedPrefix(a, b []string) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] && a[n] != "." {
		n++
	}
	return n
}

// files lists every file in the vault. The listing is cached while the vault
// is watched and rebuilt on every call otherwise.
func (v *Vault) files(ctx context.Context) ([]string, error) {
	v.mu.RLock()
	cached, watching := v.index, v.watching
	v.mu.RUnlock()
	if cached != nil {
		return cached, nil
	}

	res, err, _ := v.group.Do("index", func() (any, error) {
		return v.walk(ctx)
	})
	if err != nil {
		return nil, err
	}
	files := res.([]string)
	if watching {
		v.mu.Lock()
		if v.watching {
			v.index = files
		}
		v.mu.Unlock()
	}
	return files, nil
}

func (v *Vault) walk(ctx context.Context) ([]string, error) {
	var files []string
	err := filepath.WalkDir(v.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() {
			if p != v.root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if rel, ok := v.Rel(p); ok && d.Type().IsRegular() {
			files = append(files, rel)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk vault: %w", err)
	}
	sort.Strings(files)
	return files, nil
}

// NewContentPath picks the vault path for content created from a link that
// did not resolve. Links naming a folder are placed from the root.
func (v *Vault) NewContentPath(_ context.Context, linkpath, sourcePath string) (string, error) {
	linkpath = strings.TrimSpace(filepath.ToSlash(linkpath))
	if linkpath == "" {
		return "", fmt.Errorf("new content path: empty link")
	}
	name := withDefaultExt(linkpath)

	relative := strings.HasPrefix(name, "./") || strings.HasPrefix(name, "../")

	var target string
	switch {
	case relative:
		target = path.Join(path.Dir(sourcePath), name)
	case strings.Contains(name, "/"):
		target = name
	case v.opts.NewFilePlacement == PlaceAtRoot:
		target = path.Base(name)
	default:
		target = path.Join(path.Dir(sourcePath), name)
	}

	clean, ok := cleanRel(target)
	if !ok {
		return "", fmt.Errorf("new content path %q: outside the vault", linkpath)
	}
	return clean, nil
}

// Create makes an empty document at rel, creating parent folders.
func (v *Vault) Create(ctx context.Context, rel string) (*entity.ContentRef, error) {
	clean, ok := cleanRel(rel)
	if !ok {
		return nil, fmt.Errorf("create %q: outside the vault", rel)
	}
	abs := v.Abs(clean)
	if err := os.MkdirAll(filepath.Dir(abs), dirPerm); err != nil {
		return nil, fmt.Errorf("create %q: %w", clean, err)
	}
	f, err := os.OpenFile(abs, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm)
	if errors.Is(err, fs.ErrExist) {
		return nil, fmt.Errorf("create %q: %w", clean, ErrExists)
	}
	if err != nil {
		return nil, fmt.Errorf("create %q: %w", clean, err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("create %q: %w", clean, err)
	}

	v.Invalidate(clean)
	logging.FromContext(ctx).Info().Str("path", clean).Msg("content created")
	return &entity.ContentRef{Path: clean, Kind: DetectKind(clean)}, nil
}

// Invalidate drops cached data for rel and the file listing.
func (v *Vault) Invalidate(rel string) {
	v.mu.Lock()
	delete(v.meta, rel)
	v.index = nil
	v.mu.Unlock()
}
