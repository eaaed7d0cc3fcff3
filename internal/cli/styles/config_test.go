package styles_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bnema/hoverpane/internal/cli/styles"
)

func TestConfigRenderer_RenderConfigInfo(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())

	out := r.RenderConfigInfo("/tmp/hoverpane/config.toml")
	require.Contains(t, out, "Config")
	require.Contains(t, out, "config.toml")
}

func TestConfigRenderer_RenderError(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())

	out := r.RenderError(errors.New("popover.min_width must be positive"))
	require.Contains(t, out, "Config error")
	require.Contains(t, out, "popover.min_width")
}
