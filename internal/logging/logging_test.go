package logging

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("warning"))
	assert.Equal(t, zerolog.Disabled, ParseLevel("off"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("chatty"))
}

func TestWithComponentAddsField(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithOutput("debug", "json", &buf)
	ctx := WithPanelID(WithComponent(WithContext(context.Background(), logger), "popover"), "p1")

	FromContext(ctx).Info().Msg("shown")

	line := buf.String()
	assert.Contains(t, line, `"component":"popover"`)
	assert.Contains(t, line, `"panel_id":"p1"`)
}

func TestFromContextWithoutLoggerIsSilent(t *testing.T) {
	logger := FromContext(context.Background())
	require.NotNil(t, logger)
	logger.Info().Msg("dropped")
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("HOVERPANE_LOG_LEVEL", "error")
	t.Setenv("HOVERPANE_LOG_FORMAT", "json")

	logger := NewFromEnv()
	assert.Equal(t, zerolog.ErrorLevel, logger.GetLevel())
}

func TestLogRotator_RotatesAndPrunes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "hoverpane.log")
	r, err := NewLogRotator(path, RotatorOptions{MaxSizeMB: 1, MaxBackups: 1})
	require.NoError(t, err)
	defer r.Close()

	chunk := []byte(strings.Repeat("x", 700*1024))
	for i := 0; i < 3; i++ {
		_, err := r.Write(chunk)
		require.NoError(t, err)
	}

	assert.Len(t, r.Backups(), 1)
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, int64(len(chunk)), info.Size())
}
