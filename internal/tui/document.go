// Package tui is the terminal host for floating panels: a bubbletea program
// that shows a vault document, opens a panel when a wiki link is hovered and
// drives the panel with mouse drags and resizes.
package tui

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const tabWidth = 4

var wikiLink = regexp.MustCompile(`\[\[([^\[\]|]+)(?:\|([^\[\]]+))?\]\]`)

// Link is a wiki link found in the host document.
type Link struct {
	Target string // Link text including any #subpath
	Label  string
	Row    int // Document line
	Col    int // Display column of the opening brackets
	Width  int
}

// Contains reports whether the document cell is part of the link.
func (l Link) Contains(col, row int) bool {
	return row == l.Row && col >= l.Col && col < l.Col+l.Width
}

// Document is the host content panels are opened from. Gen increases every
// time the document is replaced, detaching anchors of older links.
type Document struct {
	Path  string
	Lines []string
	Links []Link
	Gen   int
}

// ParseDocument splits src into display lines and finds its wiki links.
func ParseDocument(path string, src []byte, gen int) *Document {
	text := strings.ReplaceAll(string(src), "\r\n", "\n")
	text = strings.ReplaceAll(text, "\t", strings.Repeat(" ", tabWidth))

	doc := &Document{Path: path, Lines: strings.Split(text, "\n"), Gen: gen}
	for row, line := range doc.Lines {
		for _, m := range wikiLink.FindAllStringSubmatchIndex(line, -1) {
			link := Link{
				Target: strings.TrimSpace(line[m[2]:m[3]]),
				Row:    row,
				Col:    ansi.StringWidth(line[:m[0]]),
				Width:  ansi.StringWidth(line[m[0]:m[1]]),
			}
			if m[4] >= 0 {
				link.Label = strings.TrimSpace(line[m[4]:m[5]])
			}
			if link.Label == "" {
				link.Label = link.Target
			}
			doc.Links = append(doc.Links, link)
		}
	}
	return doc
}

// LinkAt returns the index of the link under the document cell, -1 if none.
func (d *Document) LinkAt(col, row int) int {
	if d == nil {
		return -1
	}
	for i, l := range d.Links {
		if l.Contains(col, row) {
			return i
		}
	}
	return -1
}

// linksOn returns the links of one line in column order.
func (d *Document) linksOn(row int) []Link {
	var out []Link
	for _, l := range d.Links {
		if l.Row == row {
			out = append(out, l)
		}
	}
	return out
}
