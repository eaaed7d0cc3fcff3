package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// padRight pads s with spaces to width cells.
func padRight(s string, width int) string {
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// fit truncates or pads s to exactly width cells.
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return padRight(ansi.Truncate(s, width, ""), width)
}

// overlay draws box onto screen with its top-left cell at (col, row). Lines
// falling outside the screen are clipped.
func overlay(screen, box []string, col, row, width int) {
	for i, line := range box {
		y := row + i
		if y < 0 || y >= len(screen) {
			continue
		}
		lw := ansi.StringWidth(line)
		start, end := col, col+lw
		if start < 0 {
			line = ansi.Cut(line, -start, lw)
			start = 0
		}
		if end > width {
			line = ansi.Truncate(line, width-start, "")
			end = width
		}
		if start >= end {
			continue
		}
		base := padRight(screen[y], width)
		screen[y] = ansi.Truncate(base, start, "") + ansi.ResetStyle +
			line + ansi.ResetStyle + ansi.TruncateLeft(base, end, "")
	}
}

// splitRows divides total rows between n sections separated by one divider
// row each. Earlier sections get the remainder.
func splitRows(total, n int) []int {
	if n <= 0 {
		return nil
	}
	avail := max(total-(n-1), 0)
	out := make([]int, n)
	for i := range out {
		out[i] = avail / n
		if i < avail%n {
			out[i]++
		}
	}
	return out
}
