package vault_test

import (
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bnema/hoverpane/internal/domain/entity"
	"github.com/bnema/hoverpane/internal/infrastructure/vault"
	"github.com/bnema/hoverpane/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vaultTestCtx() context.Context {
	return logging.WithContext(context.Background(), logging.NewFromConfigValues("debug", "console"))
}

// newVault creates a vault holding files (path -> content).
func newVault(t *testing.T, opts vault.Options, files map[string]string) *vault.Vault {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		abs := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(abs), 0o755))
		require.NoError(t, os.WriteFile(abs, []byte(content), 0o644))
	}
	v, err := vault.New(root, opts)
	require.NoError(t, err)
	return v
}

func TestNew_RejectsMissingRoot(t *testing.T) {
	_, err := vault.New(filepath.Join(t.TempDir(), "nope"), vault.Options{})
	require.Error(t, err)
}

func TestFirstLinkpathDest(t *testing.T) {
	v := newVault(t, vault.Options{}, map[string]string{
		"index.md":            "",
		"projects/plan.md":    "",
		"projects/deep/x.md":  "",
		"archive/plan.md":     "",
		"archive/old/plan.md": "",
		"assets/diagram.png":  "",
		"projects/notes.txt":  "",
		".hidden/secret.md":   "",
		"projects/sibling.md": "",
		"projects/deep/up.md": "",
	})
	ctx := vaultTestCtx()

	tests := []struct {
		name     string
		link     string
		source   string
		wantPath string
		wantKind entity.ContentKind
		wantOK   bool
	}{
		{name: "exact path", link: "projects/plan.md", source: "index.md", wantPath: "projects/plan.md", wantKind: entity.KindMarkdown, wantOK: true},
		{name: "extension appended", link: "projects/plan", source: "index.md", wantPath: "projects/plan.md", wantKind: entity.KindMarkdown, wantOK: true},
		{name: "closest to source wins", link: "plan", source: "archive/old/today.md", wantPath: "archive/old/plan.md", wantKind: entity.KindMarkdown, wantOK: true},
		{name: "shallowest on tie", link: "plan", source: "index.md", wantPath: "archive/plan.md", wantKind: entity.KindMarkdown, wantOK: true},
		{name: "case insensitive name", link: "Diagram.PNG", source: "index.md", wantPath: "assets/diagram.png", wantKind: entity.KindImage, wantOK: true},
		{name: "folder suffix", link: "deep/x", source: "index.md", wantPath: "projects/deep/x.md", wantKind: entity.KindMarkdown, wantOK: true},
		{name: "relative sibling", link: "./sibling", source: "projects/plan.md", wantPath: "projects/sibling.md", wantKind: entity.KindMarkdown, wantOK: true},
		{name: "relative parent", link: "../plan", source: "projects/deep/up.md", wantPath: "projects/plan.md", wantKind: entity.KindMarkdown, wantOK: true},
		{name: "empty link is the source", link: "", source: "projects/plan.md", wantPath: "projects/plan.md", wantKind: entity.KindMarkdown, wantOK: true},
		{name: "prose text file", link: "notes.txt", source: "index.md", wantPath: "projects/notes.txt", wantKind: entity.KindMarkdown, wantOK: true},
		{name: "hidden folders skipped", link: "secret", source: "index.md"},
		{name: "missing", link: "nowhere", source: "index.md"},
		{name: "escape rejected", link: "../../etc/passwd", source: "index.md"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, ok := v.FirstLinkpathDest(ctx, tt.link, tt.source)
			require.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				assert.Nil(t, ref)
				return
			}
			assert.Equal(t, tt.wantPath, ref.Path)
			assert.Equal(t, tt.wantKind, ref.Kind)
		})
	}
}

func TestDetectKind(t *testing.T) {
	tests := map[string]entity.ContentKind{
		"a.md":                entity.KindMarkdown,
		"a.markdown":          entity.KindMarkdown,
		"a.txt":               entity.KindMarkdown,
		"a.png":               entity.KindImage,
		"a.JPG":               entity.KindImage,
		"photos/IMG_0001.JPG": entity.KindImage,
		"Scan.PDF":            entity.KindPaged,
		"README.MD":           entity.KindMarkdown,
		"a.gif":               entity.KindImage,
		"a.pdf":               entity.KindPaged,
		"a.go":                entity.KindUnsupported,
		"a.zip":               entity.KindUnsupported,
		"noext":               entity.KindUnsupported,
	}
	for name, want := range tests {
		assert.Equal(t, want, vault.DetectKind(name), name)
	}
}

func TestNewContentPath(t *testing.T) {
	ctx := vaultTestCtx()
	beside := newVault(t, vault.Options{}, nil)
	atRoot := newVault(t, vault.Options{NewFilePlacement: vault.PlaceAtRoot}, nil)

	tests := []struct {
		name   string
		v      *vault.Vault
		link   string
		source string
		want   string
	}{
		{name: "beside source", v: beside, link: "idea", source: "daily/today.md", want: "daily/idea.md"},
		{name: "beside root source", v: beside, link: "idea", source: "today.md", want: "idea.md"},
		{name: "at root", v: atRoot, link: "idea", source: "daily/today.md", want: "idea.md"},
		{name: "folder link from root", v: beside, link: "topics/idea", source: "daily/today.md", want: "topics/idea.md"},
		{name: "relative link", v: atRoot, link: "../idea", source: "daily/sub/today.md", want: "daily/idea.md"},
		{name: "dot relative link", v: atRoot, link: "./idea", source: "daily/today.md", want: "daily/idea.md"},
		{name: "explicit extension", v: beside, link: "data.txt", source: "today.md", want: "data.txt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.v.NewContentPath(ctx, tt.link, tt.source)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := beside.NewContentPath(ctx, "", "today.md")
	assert.Error(t, err)
	_, err = beside.NewContentPath(ctx, "../../out", "today.md")
	assert.Error(t, err)
}

func TestCreate(t *testing.T) {
	ctx := vaultTestCtx()
	v := newVault(t, vault.Options{}, nil)

	ref, err := v.Create(ctx, "daily/idea.md")
	require.NoError(t, err)
	assert.Equal(t, "daily/idea.md", ref.Path)
	assert.Equal(t, entity.KindMarkdown, ref.Kind)
	assert.FileExists(t, filepath.Join(v.Root(), "daily", "idea.md"))

	_, err = v.Create(ctx, "daily/idea.md")
	require.ErrorIs(t, err, vault.ErrExists)

	got, ok := v.FirstLinkpathDest(ctx, "idea", "index.md")
	require.True(t, ok)
	assert.Equal(t, "daily/idea.md", got.Path)
}

func TestRead(t *testing.T) {
	ctx := vaultTestCtx()
	v := newVault(t, vault.Options{}, map[string]string{"a.md": "hello"})

	data, err := v.Read(ctx, "a.md")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	_, err = v.Read(ctx, "b.md")
	require.ErrorIs(t, err, vault.ErrNotFound)
}

func TestNaturalSize(t *testing.T) {
	ctx := vaultTestCtx()
	v := newVault(t, vault.Options{}, map[string]string{"broken.png": "not an image"})

	f, err := os.Create(filepath.Join(v.Root(), "pic.png"))
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, image.NewRGBA(image.Rect(0, 0, 800, 600))))
	require.NoError(t, f.Close())

	size, err := v.NaturalSize(ctx, "pic.png")
	require.NoError(t, err)
	assert.Equal(t, entity.Size{W: 800, H: 600}, size)

	_, err = v.NaturalSize(ctx, "broken.png")
	assert.Error(t, err)
	_, err = v.NaturalSize(ctx, "missing.png")
	assert.ErrorIs(t, err, vault.ErrNotFound)
}

func TestWatch_InvalidatesListing(t *testing.T) {
	ctx, cancel := context.WithCancel(vaultTestCtx())
	defer cancel()
	v := newVault(t, vault.Options{}, map[string]string{"index.md": ""})

	var changes atomic.Int32
	require.NoError(t, v.Watch(ctx, func(string) { changes.Add(1) }))

	_, ok := v.FirstLinkpathDest(ctx, "later", "index.md")
	require.False(t, ok)

	require.NoError(t, os.MkdirAll(filepath.Join(v.Root(), "new"), 0o755))
	require.Eventually(t, func() bool { return changes.Load() > 0 }, 5*time.Second, 10*time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(v.Root(), "new", "later.md"), []byte("x"), 0o644))

	require.Eventually(t, func() bool {
		ref, ok := v.FirstLinkpathDest(ctx, "later", "index.md")
		return ok && ref.Path == "new/later.md"
	}, 5*time.Second, 10*time.Millisecond)
}
