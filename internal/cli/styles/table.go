package styles

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// NewStyledTable creates a themed table model.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row, width, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
		table.WithWidth(width),
	)

	// Apply theme styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(theme.Text).
		Background(theme.SurfaceVariant).
		Bold(true)
	s.Cell = s.Cell.
		Foreground(theme.Text)

	t.SetStyles(s)
	return t
}

// RecentTableColumns returns columns for the recent list table.
func RecentTableColumns() []table.Column {
	return []table.Column{
		{Title: "Title", Width: 30},
		{Title: "Path", Width: 40},
		{Title: "Opens", Width: 8},
		{Title: "Last Opened", Width: 12},
	}
}

// ResolveTableColumns returns columns for link resolution results.
func ResolveTableColumns() []table.Column {
	return []table.Column{
		{Title: "Link", Width: 30},
		{Title: "Target", Width: 40},
		{Title: "Kind", Width: 10},
		{Title: "Subpath", Width: 12},
	}
}

// RecentRow converts a recent entry to a table row.
type RecentRow struct {
	Title      string
	Path       string
	Opens      int
	LastOpened string
}

// ToRow converts to table.Row.
func (r RecentRow) ToRow() table.Row {
	return table.Row{r.Title, r.Path, formatInt(r.Opens), r.LastOpened}
}

// formatInt formats an integer for display.
func formatInt(n int) string {
	switch {
	case n >= 1000000:
		return formatFloat(float64(n)/1000000) + "M"
	case n >= 1000:
		return formatFloat(float64(n)/1000) + "K"
	default:
		return intToString(n)
	}
}

// formatFloat formats a float with one decimal.
func formatFloat(f float64) string {
	i := int(f * 10)
	whole := i / 10
	dec := i % 10
	if dec == 0 {
		return intToString(whole)
	}
	return intToString(whole) + "." + intToString(dec)
}

// intToString converts int to string without fmt.
func intToString(n int) string {
	if n == 0 {
		return "0"
	}
	if n < 0 {
		return "-" + intToString(-n)
	}

	digits := make([]byte, 0, 10)
	for n > 0 {
		digits = append(digits, byte('0'+n%10))
		n /= 10
	}

	// Reverse
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits)
}
