package vault

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/bnema/hoverpane/internal/domain/entity"
)

// blockIDPattern matches a trailing block reference such as "text ^abc-1".
var blockIDPattern = regexp.MustCompile(`(?:^|\s)\^([A-Za-z0-9-]+)\s*$`)

// Heading is a markdown heading and the section it opens.
type Heading struct {
	Text  string
	Level int
	Range entity.SubpathRange
}

// Metadata is the linkable structure of one markdown document.
type Metadata struct {
	Headings []Heading
	// Blocks maps lower-case block ids to the block they label.
	Blocks map[string]entity.SubpathRange
}

type cachedMetadata struct {
	modTime time.Time
	size    int64
	meta    *Metadata
}

// Metadata returns the parsed structure of rel. Results are cached until the
// file changes; concurrent callers share one parse.
func (v *Vault) Metadata(ctx context.Context, rel string) (*Metadata, error) {
	clean, ok := cleanRel(rel)
	if !ok {
		return nil, fmt.Errorf("metadata %q: %w", rel, ErrNotFound)
	}
	info, err := os.Stat(v.Abs(clean))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("metadata %q: %w", rel, ErrNotFound)
		}
		return nil, fmt.Errorf("metadata %q: %w", rel, err)
	}

	v.mu.RLock()
	cached := v.meta[clean]
	v.mu.RUnlock()
	if cached != nil && cached.modTime.Equal(info.ModTime()) && cached.size == info.Size() {
		return cached.meta, nil
	}

	res, err, _ := v.group.Do("meta:"+clean, func() (any, error) {
		data, err := v.Read(ctx, clean)
		if err != nil {
			return nil, err
		}
		meta := ParseMetadata(data)
		v.mu.Lock()
		v.meta[clean] = &cachedMetadata{modTime: info.ModTime(), size: info.Size(), meta: meta}
		v.mu.Unlock()
		return meta, nil
	})
	if err != nil {
		return nil, err
	}
	return res.(*Metadata), nil
}

// ResolveSubpath maps "#Heading", "#Outer#Inner" or "#^block" inside ref to
// a line range. Non-markdown content and unknown subpaths yield nil.
func (v *Vault) ResolveSubpath(ctx context.Context, ref entity.ContentRef, subpath string) (*entity.SubpathRange, error) {
	if ref.Kind != entity.KindMarkdown || strings.Trim(subpath, "# ") == "" {
		return nil, nil
	}
	meta, err := v.Metadata(ctx, ref.Path)
	if err != nil {
		return nil, err
	}
	rng, ok := meta.Resolve(subpath)
	if !ok {
		return nil, nil
	}
	return &rng, nil
}

// Resolve looks up a subpath. Heading parts are matched in document order,
// each inside the section of the previous one.
func (m *Metadata) Resolve(subpath string) (entity.SubpathRange, bool) {
	sub := strings.TrimPrefix(strings.TrimSpace(subpath), "#")
	if id, ok := strings.CutPrefix(sub, "^"); ok {
		rng, found := m.Blocks[strings.ToLower(id)]
		return rng, found
	}

	var parts []string
	for _, p := range strings.Split(sub, "#") {
		if p = normalizeHeading(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return entity.SubpathRange{}, false
	}

	from, limit, found := 0, len(m.Headings), -1
	for _, part := range parts {
		found = -1
		for i := from; i < limit; i++ {
			if normalizeHeading(m.Headings[i].Text) == part {
				found = i
				break
			}
		}
		if found < 0 {
			return entity.SubpathRange{}, false
		}
		from, limit = found+1, m.sectionEnd(found)
	}
	return m.Headings[found].Range, true
}

// sectionEnd returns the index of the first heading after i that closes its
// section.
func (m *Metadata) sectionEnd(i int) int {
	for j := i + 1; j < len(m.Headings); j++ {
		if m.Headings[j].Level <= m.Headings[i].Level {
			return j
		}
	}
	return len(m.Headings)
}

func normalizeHeading(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

type lineSpan struct {
	first, last int
}

// ParseMetadata extracts headings and block ids from markdown source.
func ParseMetadata(src []byte) *Metadata {
	lines := newLineIndex(src)
	doc := goldmark.DefaultParser().Parse(text.NewReader(src))

	meta := &Metadata{Blocks: make(map[string]entity.SubpathRange)}
	var headingLines []int
	var blocks, code []lineSpan

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || n.Type() != ast.TypeBlock || n.Lines().Len() == 0 {
			return ast.WalkContinue, nil
		}
		segs := n.Lines()
		span := lineSpan{
			first: lines.lineOf(segs.At(0).Start),
			last:  lines.lineOf(max(segs.At(segs.Len()-1).Stop-1, segs.At(segs.Len()-1).Start)),
		}
		switch node := n.(type) {
		case *ast.Heading:
			meta.Headings = append(meta.Headings, Heading{
				Text:  strings.TrimSpace(nodeText(node, src)),
				Level: node.Level,
			})
			headingLines = append(headingLines, span.first)
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			code = append(code, span)
			return ast.WalkSkipChildren, nil
		default:
			blocks = append(blocks, span)
		}
		return ast.WalkContinue, nil
	})

	for i := range meta.Headings {
		meta.Headings[i].Range.Start = lines.startLoc(headingLines[i])
		if end := meta.sectionEnd(i); end < len(meta.Headings) {
			loc := lines.endLoc(headingLines[end] - 1)
			meta.Headings[i].Range.End = &loc
		}
	}

	for line := 0; line < lines.count(); line++ {
		if inSpans(code, line) {
			continue
		}
		m := blockIDPattern.FindSubmatch(lines.text(line))
		if m == nil {
			continue
		}
		start := line
		for _, b := range blocks {
			if b.first <= line && line <= b.last && b.first <= start {
				start = b.first
			}
		}
		end := lines.endLoc(line)
		meta.Blocks[strings.ToLower(string(m[1]))] = entity.SubpathRange{
			Start: lines.startLoc(start),
			End:   &end,
		}
	}
	return meta
}

func inSpans(spans []lineSpan, line int) bool {
	for _, s := range spans {
		if s.first <= line && line <= s.last {
			return true
		}
	}
	return false
}

// nodeText concatenates the literal text below n.
func nodeText(n ast.Node, src []byte) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		default:
			b.WriteString(nodeText(c, src))
		}
	}
	return b.String()
}

// lineIndex maps byte offsets to zero-based lines.
type lineIndex struct {
	src    []byte
	starts []int
}

func newLineIndex(src []byte) lineIndex {
	starts := []int{0}
	for i, c := range src {
		if c == '\n' && i+1 < len(src) {
			starts = append(starts, i+1)
		}
	}
	return lineIndex{src: src, starts: starts}
}

func (l lineIndex) count() int {
	return len(l.starts)
}

func (l lineIndex) lineOf(offset int) int {
	return sort.Search(len(l.starts), func(i int) bool { return l.starts[i] > offset }) - 1
}

// bounds returns the offsets of the line content without its line break.
func (l lineIndex) bounds(line int) (int, int) {
	start, end := l.starts[line], len(l.src)
	if line+1 < len(l.starts) {
		end = l.starts[line+1]
	}
	for end > start && (l.src[end-1] == '\n' || l.src[end-1] == '\r') {
		end--
	}
	return start, end
}

func (l lineIndex) text(line int) []byte {
	start, end := l.bounds(line)
	return l.src[start:end]
}

func (l lineIndex) startLoc(line int) entity.Loc {
	return entity.Loc{Line: line, Offset: l.starts[line]}
}

func (l lineIndex) endLoc(line int) entity.Loc {
	start, end := l.bounds(line)
	return entity.Loc{Line: line, Col: end - start, Offset: end}
}
