package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/bnema/hoverpane/internal/application/port"
	"github.com/bnema/hoverpane/internal/domain/entity"
	"github.com/bnema/hoverpane/internal/infrastructure/workspace"
)

const (
	pinOff   = " ◇ "
	pinOn    = " ◆ "
	closeBtn = " ✕ "
)

// frame draws the document, the panels in stacking order and footer.
func (h *host) frame(footer string) string {
	if h.width <= 0 || h.height <= 0 {
		return ""
	}
	screen := make([]string, h.height)
	screen[0] = h.statusBar()
	for row := docFirstRow; row < h.height; row++ {
		screen[row] = h.docLine(row - docFirstRow + h.docTop)
	}

	for _, id := range h.order {
		ps := h.panels[id]
		if ps == nil || !ps.surface.drawn() {
			continue
		}
		box := h.grid.cells(ps.surface.panel.Rect)
		overlay(screen, h.renderPanel(ps, box), box.Col, box.Row, h.width)
	}

	footerLines := strings.Split(footer, "\n")
	for i, line := range footerLines {
		row := h.height - len(footerLines) + i
		if row >= docFirstRow {
			screen[row] = fit(line, h.width)
		}
	}
	return strings.Join(screen, "\n")
}

func (h *host) statusBar() string {
	pinned := 0
	for _, ps := range h.panels {
		if ps.p.Pinned() {
			pinned++
		}
	}
	text := fmt.Sprintf(" %s  %d panels, %d pinned", h.doc.Path, h.registry.Len(), pinned)
	return h.theme.StatusBar.Render(fit(text, h.width))
}

// docLine renders one document line with its links styled.
func (h *host) docLine(i int) string {
	if i < 0 || i >= len(h.doc.Lines) {
		return ""
	}
	line := h.doc.Lines[i]
	links := h.doc.linksOn(i)
	if len(links) == 0 {
		return ansi.Truncate(line, h.width, "")
	}

	var b strings.Builder
	col := 0
	for _, l := range links {
		b.WriteString(ansi.Cut(line, col, l.Col))
		style := h.theme.Link
		if h.hoverLink >= 0 && h.doc.Links[h.hoverLink] == l {
			style = h.theme.LinkHover
		}
		b.WriteString(style.Render(ansi.Cut(line, l.Col, l.Col+l.Width)))
		col = l.Col + l.Width
	}
	b.WriteString(ansi.Cut(line, col, ansi.StringWidth(line)))
	return ansi.Truncate(b.String(), h.width, "")
}

// renderPanel draws a panel box: a header row, bordered body rows and a
// bottom border. A minimized panel is its header only.
func (h *host) renderPanel(ps *panelState, box cellRect) []string {
	panel := ps.surface.panel
	lines := make([]string, 0, box.Rows)
	lines = append(lines, h.header(ps, panel, box.Cols))
	ps.sections = ps.sections[:0]
	if box.Rows == 1 {
		return lines
	}

	border := lipgloss.RoundedBorder()
	inner := max(box.Cols-2, 0)
	body := h.body(ps, box, inner, max(box.Rows-2, 0))
	for _, l := range body {
		lines = append(lines, h.theme.PanelBorder.Render(border.Left)+fit(l, inner)+h.theme.PanelBorder.Render(border.Right))
	}
	lines = append(lines, h.theme.PanelBorder.Render(border.BottomLeft+strings.Repeat(border.Bottom, inner)+border.BottomRight))
	return lines
}

func (h *host) header(ps *panelState, panel entity.Panel, cols int) string {
	title := panel.Title
	if title == "" {
		if views := ps.p.Views(); len(views) > 0 {
			title = views[0].DisplayName()
		}
	}
	if panel.Snap != entity.SnapNone {
		title += " [" + panel.Snap.String() + "]"
	}

	pin := pinOff
	style := h.theme.PanelHeader
	if panel.Pinned {
		pin = pinOn
		style = h.theme.PanelHeaderPin
	}
	titleCols := max(cols-pinButtonCols-closeButtonCols, 0)
	text := fit(ansi.Truncate(" "+title, titleCols, "…"), titleCols) + pin + closeBtn
	return style.Render(ansi.Truncate(text, cols, ""))
}

// body lays out the hosted views top to bottom and remembers where each
// one landed for clicks.
func (h *host) body(ps *panelState, box cellRect, width, rows int) []string {
	views := ps.p.Views()
	if len(views) == 0 {
		return padLines([]string{h.theme.Subtle.Render("Loading…")}, rows)
	}

	out := make([]string, 0, rows)
	top := box.Row + 1
	for i, n := range splitRows(rows, len(views)) {
		if i > 0 {
			out = append(out, h.theme.PanelBorder.Render(strings.Repeat("─", width)))
			top++
		}
		ps.sections = append(ps.sections, viewSection{view: views[i], top: top, rows: n})
		out = append(out, padLines(h.viewLines(views[i], width, n), n)...)
		top += n
	}
	return out
}

func (h *host) viewLines(v port.View, width, rows int) []string {
	wv, _ := v.(*workspace.View)
	if wv != nil {
		if action, ok := wv.Action(); ok {
			label := lipgloss.NewStyle().Width(max(width, 1)).Render(action.Label)
			return strings.Split(h.theme.PanelAction.Render(label), "\n")
		}
	}

	ref := v.Content()
	if ref == nil {
		return []string{h.theme.Subtle.Render("Loading…")}
	}

	switch v.Kind() {
	case entity.KindMarkdown:
		if wv == nil {
			return []string{ref.Name()}
		}
		if v.Mode() == entity.ModeSource {
			lines := sourceLines(wv.Text(), width)
			if st := v.EphemeralState(); st.Line != nil {
				start := max(0, min(*st.Line, len(lines)-1))
				lines = lines[start:]
			}
			return lines
		}
		return h.md.Render(string(v.ID()), wv.Text(), width)
	case entity.KindImage:
		size := v.NaturalSize()
		return centered([]string{
			h.theme.Highlight.Render("[image]"),
			ref.Name(),
			h.theme.Subtle.Render(fmt.Sprintf("%d×%d", size.W, size.H)),
		}, width, rows)
	case entity.KindPaged:
		return centered([]string{h.theme.Highlight.Render("[document]"), ref.Name()}, width, rows)
	default:
		return []string{ref.Name()}
	}
}

// padLines cuts or pads lines to exactly rows entries.
func padLines(lines []string, rows int) []string {
	if len(lines) >= rows {
		return lines[:rows]
	}
	return append(lines, make([]string, rows-len(lines))...)
}

func centered(lines []string, width, rows int) []string {
	out := make([]string, 0, rows)
	for range max((rows-len(lines))/2, 0) {
		out = append(out, "")
	}
	for _, l := range lines {
		pad := max((width-ansi.StringWidth(l))/2, 0)
		out = append(out, strings.Repeat(" ", pad)+l)
	}
	return out
}
