package vault_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/hoverpane/internal/domain/entity"
	"github.com/bnema/hoverpane/internal/infrastructure/vault"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleNote = `# Title

Intro paragraph.

## Setup

Install it.
Then run it. ^run-step

### Details

Fine print.

## Usage

` + "```" + `
code ^not-a-block
` + "```" + `

- item one
- item two ^list-item
`

func TestParseMetadata_Headings(t *testing.T) {
	meta := vault.ParseMetadata([]byte(sampleNote))

	require.Len(t, meta.Headings, 4)
	assert.Equal(t, "Title", meta.Headings[0].Text)
	assert.Equal(t, 1, meta.Headings[0].Level)
	assert.Equal(t, "Details", meta.Headings[2].Text)
	assert.Equal(t, 3, meta.Headings[2].Level)

	setup := meta.Headings[1].Range
	assert.Equal(t, 4, setup.Start.Line)
	assert.Equal(t, 0, setup.Start.Col)
	require.NotNil(t, setup.End)
	assert.Equal(t, 12, setup.End.Line, "section ends before the next level-2 heading")

	assert.Nil(t, meta.Headings[0].Range.End, "top heading runs to the end")
	assert.Nil(t, meta.Headings[3].Range.End)
}

func TestParseMetadata_Blocks(t *testing.T) {
	meta := vault.ParseMetadata([]byte(sampleNote))

	run, ok := meta.Blocks["run-step"]
	require.True(t, ok)
	assert.Equal(t, 6, run.Start.Line, "block starts at its paragraph")
	require.NotNil(t, run.End)
	assert.Equal(t, 7, run.End.Line)
	assert.Equal(t, len("Then run it. ^run-step"), run.End.Col)

	item, ok := meta.Blocks["list-item"]
	require.True(t, ok)
	assert.Equal(t, 20, item.Start.Line)

	_, ok = meta.Blocks["not-a-block"]
	assert.False(t, ok, "ids inside code are ignored")
}

func TestMetadata_Resolve(t *testing.T) {
	meta := vault.ParseMetadata([]byte(sampleNote))

	tests := []struct {
		subpath  string
		wantLine int
		wantOK   bool
	}{
		{subpath: "#Setup", wantLine: 4, wantOK: true},
		{subpath: "#setup", wantLine: 4, wantOK: true},
		{subpath: "#Title#Usage", wantLine: 13, wantOK: true},
		{subpath: "#Setup#Details", wantLine: 9, wantOK: true},
		{subpath: "#Usage#Details"},
		{subpath: "#^run-step", wantLine: 6, wantOK: true},
		{subpath: "#^RUN-STEP", wantLine: 6, wantOK: true},
		{subpath: "#^missing"},
		{subpath: "#Nope"},
		{subpath: "#"},
	}
	for _, tt := range tests {
		t.Run(tt.subpath, func(t *testing.T) {
			rng, ok := meta.Resolve(tt.subpath)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.wantLine, rng.Start.Line)
			}
		})
	}
}

func TestVault_ResolveSubpath(t *testing.T) {
	ctx := vaultTestCtx()
	v := newVault(t, vault.Options{}, map[string]string{"note.md": sampleNote, "pic.png": ""})
	ref := entity.ContentRef{Path: "note.md", Kind: entity.KindMarkdown}

	rng, err := v.ResolveSubpath(ctx, ref, "#Usage")
	require.NoError(t, err)
	require.NotNil(t, rng)
	assert.Equal(t, 13, rng.Start.Line)

	rng, err = v.ResolveSubpath(ctx, ref, "#Unknown")
	require.NoError(t, err)
	assert.Nil(t, rng)

	rng, err = v.ResolveSubpath(ctx, entity.ContentRef{Path: "pic.png", Kind: entity.KindImage}, "#Usage")
	require.NoError(t, err)
	assert.Nil(t, rng)

	_, err = v.ResolveSubpath(ctx, entity.ContentRef{Path: "gone.md", Kind: entity.KindMarkdown}, "#Usage")
	assert.ErrorIs(t, err, vault.ErrNotFound)
}

func TestVault_MetadataFollowsEdits(t *testing.T) {
	ctx := vaultTestCtx()
	v := newVault(t, vault.Options{}, map[string]string{"note.md": "# One\n"})

	first, err := v.Metadata(ctx, "note.md")
	require.NoError(t, err)
	again, err := v.Metadata(ctx, "note.md")
	require.NoError(t, err)
	assert.Same(t, first, again, "unchanged file is served from cache")

	abs := filepath.Join(v.Root(), "note.md")
	require.NoError(t, os.WriteFile(abs, []byte("# One\n\n# Two\n"), 0o644))
	later := time.Now().Add(time.Minute)
	require.NoError(t, os.Chtimes(abs, later, later))

	updated, err := v.Metadata(ctx, "note.md")
	require.NoError(t, err)
	assert.Len(t, updated.Headings, 2)
}
