package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/hoverpane/internal/domain/entity"
	"github.com/bnema/hoverpane/internal/infrastructure/vault"
)

func TestResolveLinks(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "index.md"), []byte("[[plan]]\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "plan.md"),
		[]byte("# Plan\n\nintro\n\n## Goals\n\nship it\n"), 0o644))

	v, err := vault.New(root, vault.Options{})
	require.NoError(t, err)

	results, err := resolveLinks(context.Background(), v, "index.md",
		[]string{"plan", "plan#Goals", "missing", "plan#Nope"})
	require.NoError(t, err)
	require.Len(t, results, 4)

	assert.Equal(t, resolution{Link: "plan", Target: "sub/plan.md", Kind: "markdown", Subpath: "-"}, results[0])
	assert.Equal(t, "sub/plan.md", results[1].Target)
	assert.Equal(t, "5-", results[1].Subpath)
	assert.Equal(t, resolution{Link: "missing", Target: "-", Kind: "missing", Subpath: "-"}, results[2])
	assert.Equal(t, "-", results[3].Subpath)
}

func TestFormatRange(t *testing.T) {
	end := entity.Loc{Line: 9}
	assert.Equal(t, "3-10", formatRange(entity.SubpathRange{Start: entity.Loc{Line: 2}, End: &end}))
	assert.Equal(t, "1-", formatRange(entity.SubpathRange{Start: entity.Loc{Line: 0}}))
}
