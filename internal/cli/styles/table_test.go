package styles_test

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/hoverpane/internal/cli/styles"
	"github.com/bnema/hoverpane/internal/domain/entity"
)

func TestRecentRow_ToRow(t *testing.T) {
	row := styles.RecentRow{Title: "Plan", Path: "notes/plan.md", Opens: 1500, LastOpened: "2h ago"}.ToRow()
	assert.Equal(t, table.Row{"Plan", "notes/plan.md", "1.5K", "2h ago"}, row)

	row = styles.RecentRow{Title: "Plan", Path: "plan.md", Opens: 7}.ToRow()
	assert.Equal(t, "7", row[2])
}

func TestRelativeTime(t *testing.T) {
	now := time.Now()
	tests := []struct {
		in   time.Time
		want string
	}{
		{now, "just now"},
		{now.Add(-5 * time.Minute), "5m ago"},
		{now.Add(-3 * time.Hour), "3h ago"},
		{now.Add(-26 * time.Hour), "1d ago"},
		{now.Add(-15 * 24 * time.Hour), "2w ago"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, styles.RelativeTime(tt.in))
	}
}

func TestConfigSchemaRenderer_GroupsSections(t *testing.T) {
	r := styles.NewConfigSchemaRenderer(styles.NewTheme())
	out := r.Render([]entity.ConfigKeyInfo{
		{Key: "tui.cell_width", Type: "int", Default: "8", Description: "Pixels per column", Range: ">=1", Section: "TUI"},
		{Key: "popover.default_mode", Type: "string", Default: "preview", Description: "Mode", Values: []string{"match", "preview", "source"}, Section: "Popover", Env: "HOVERPANE_POPOVER_DEFAULT_MODE", Live: true},
	})

	require.Contains(t, out, "popover.default_mode")
	require.Contains(t, out, "Values: match, preview, source")
	require.Contains(t, out, "Range: >=1")
	require.Contains(t, out, "Env: HOVERPANE_POPOVER_DEFAULT_MODE")
	assert.Equal(t, 1, strings.Count(out, "live"))
	assert.Less(t, strings.Index(out, "Popover"), strings.Index(out, "TUI"))
}

func TestConfigSchemaRenderer_Empty(t *testing.T) {
	r := styles.NewConfigSchemaRenderer(styles.NewTheme())
	assert.Contains(t, r.Render(nil), "No configuration keys found")
}
