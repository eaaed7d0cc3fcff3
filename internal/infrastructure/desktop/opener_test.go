package desktop_test

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/hoverpane/internal/infrastructure/desktop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpener_NoCommand(t *testing.T) {
	err := desktop.NewOpenerWithCommand(t.TempDir()).OpenExternal(context.Background(), "a.zip")
	assert.ErrorIs(t, err, desktop.ErrNoOpener)
}

func TestOpener_MissingFile(t *testing.T) {
	err := desktop.NewOpenerWithCommand(t.TempDir(), "true").OpenExternal(context.Background(), "a.zip")
	assert.Error(t, err)
}

func TestOpener_SpawnsCommandWithAbsolutePath(t *testing.T) {
	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not available")
	}
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.zip"), []byte("x"), 0o644))
	out := filepath.Join(root, "opened.txt")

	opener := desktop.NewOpenerWithCommand(root, sh, "-c", `printf '%s' "$1" > "$0"`, out)
	require.NoError(t, opener.OpenExternal(context.Background(), "a.zip"))

	require.Eventually(t, func() bool {
		data, err := os.ReadFile(out)
		return err == nil && string(data) == filepath.Join(root, "a.zip")
	}, 5*time.Second, 20*time.Millisecond)
}
