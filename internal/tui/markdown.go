package tui

import (
	"bytes"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/hoverpane/internal/infrastructure/cache"
)

const (
	rendererCacheSize = 8
	noteCacheSize     = 64
	// noteCacheLines bounds the rendered lines kept across all panels.
	noteCacheLines = 20000
)

// markdownRenderer caches glamour renderers per width and the last output
// per view, so pointer motion does not re-render unchanged notes.
type markdownRenderer struct {
	style     string
	renderers *cache.LRU[int, *glamour.TermRenderer]
	notes     *cache.LRU[string, renderedNote]
}

type renderedNote struct {
	src   []byte
	width int
	lines []string
}

func newMarkdownRenderer(style string) *markdownRenderer {
	if style == "" {
		style = "auto"
	}
	return &markdownRenderer{
		style:     style,
		renderers: cache.NewLRU[int, *glamour.TermRenderer](rendererCacheSize),
		notes: cache.New[string, renderedNote](cache.Options[renderedNote]{
			MaxEntries: noteCacheSize,
			MaxWeight:  noteCacheLines,
			Weigh:      func(n renderedNote) int { return len(n.lines) },
		}),
	}
}

// Render returns src rendered to lines at most width cells wide. It falls
// back to the plain source when glamour fails.
func (mr *markdownRenderer) Render(key string, src []byte, width int) []string {
	width = max(width, 1)
	if c, ok := mr.notes.Get(key); ok && c.width == width && bytes.Equal(c.src, src) {
		return c.lines
	}

	out := string(src)
	if r := mr.renderer(width); r != nil {
		if rendered, err := r.Render(out); err == nil {
			out = strings.Trim(rendered, "\n")
		}
	}
	lines := strings.Split(out, "\n")
	mr.notes.Set(key, renderedNote{src: src, width: width, lines: lines})
	return lines
}

// ForgetPrefix drops the cached output of every view whose id starts with
// prefix.
func (mr *markdownRenderer) ForgetPrefix(prefix string) {
	mr.notes.RemoveIf(func(key string) bool { return strings.HasPrefix(key, prefix) })
}

// Stats reports how well rendered notes are reused.
func (mr *markdownRenderer) Stats() cache.Stats {
	return mr.notes.Stats()
}

func (mr *markdownRenderer) renderer(width int) *glamour.TermRenderer {
	if r, ok := mr.renderers.Get(width); ok {
		return r
	}
	style := glamour.WithStandardStyle(mr.style)
	if mr.style == "auto" {
		style = glamour.WithAutoStyle()
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		return nil
	}
	mr.renderers.Set(width, r)
	return r
}

// sourceLines wraps raw note text to width for source mode.
func sourceLines(src []byte, width int) []string {
	style := lipgloss.NewStyle().Width(max(width, 1))
	return strings.Split(style.Render(string(src)), "\n")
}
