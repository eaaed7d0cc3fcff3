package entity

import (
	"path"
	"strings"
)

// ContentKind selects how a hosted view renders content.
type ContentKind int

const (
	KindUnsupported ContentKind = iota // No viewer registered
	KindMarkdown                       // Editable text note
	KindImage                          // Raster image with a natural size
	KindPaged                          // Fixed-layout documents (PDF)
)

func (k ContentKind) String() string {
	switch k {
	case KindMarkdown:
		return "markdown"
	case KindImage:
		return "image"
	case KindPaged:
		return "paged"
	default:
		return "unsupported"
	}
}

// ContentRef is a resolved handle to content in the host store.
type ContentRef struct {
	Path string // Store-relative, slash separated
	Kind ContentKind
}

// Name returns the base name without extension.
func (c ContentRef) Name() string {
	base := path.Base(c.Path)
	return strings.TrimSuffix(base, path.Ext(base))
}

// Ext returns the lower-case extension without the dot.
func (c ContentRef) Ext() string {
	return strings.ToLower(strings.TrimPrefix(path.Ext(c.Path), "."))
}

// Link is a parsed textual reference: "note#Heading" or "note#^block".
type Link struct {
	Path    string
	Subpath string // Includes the leading '#', empty when absent
}

// ParseLinktext splits link text into path and subpath.
func ParseLinktext(text string) Link {
	text = strings.TrimSpace(text)
	if i := strings.IndexByte(text, '#'); i >= 0 {
		return Link{Path: strings.TrimSpace(text[:i]), Subpath: text[i:]}
	}
	return Link{Path: text}
}

// ViewMode is the display mode of a hosted view.
type ViewMode string

const (
	ModePreview ViewMode = "preview" // Rendered, read only
	ModeSource  ViewMode = "source"  // Editable text
)

// Loc is a position inside text content.
type Loc struct {
	Line   int
	Col    int
	Offset int
}

// EphemeralState is transient per-view state that is never saved with content.
type EphemeralState struct {
	Subpath  string
	Line     *int
	StartLoc *Loc
	EndLoc   *Loc
	Cursor   *Loc
	Scroll   *int
	Focus    bool
}

// Merge returns s overlaid with every field set in override.
func (s EphemeralState) Merge(override EphemeralState) EphemeralState {
	out := s
	if override.Subpath != "" {
		out.Subpath = override.Subpath
	}
	if override.Line != nil {
		out.Line = override.Line
	}
	if override.StartLoc != nil {
		out.StartLoc = override.StartLoc
	}
	if override.EndLoc != nil {
		out.EndLoc = override.EndLoc
	}
	if override.Cursor != nil {
		out.Cursor = override.Cursor
	}
	if override.Scroll != nil {
		out.Scroll = override.Scroll
	}
	if override.Focus {
		out.Focus = true
	}
	return out
}

// IsEmpty reports whether nothing is set.
func (s EphemeralState) IsEmpty() bool {
	return s.Subpath == "" && s.Line == nil && s.StartLoc == nil && s.EndLoc == nil &&
		s.Cursor == nil && s.Scroll == nil && !s.Focus
}

// OpenState is passed to a hosted view when loading content.
type OpenState struct {
	Mode   ViewMode
	Active bool
	EState EphemeralState
}

// SubpathRange is a resolved heading or block location.
type SubpathRange struct {
	Start Loc
	End   *Loc // nil when the section runs to the end of the content
}
