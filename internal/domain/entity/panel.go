package entity

import "math"

// PanelID uniquely identifies a floating panel.
type PanelID string

// SnapState records which screen edge a panel is aligned to.
type SnapState int

const (
	SnapNone     SnapState = iota // Free floating
	SnapLeft                      // Left column
	SnapRight                     // Right column
	SnapViewport                  // Whole workspace area
)

func (s SnapState) String() string {
	switch s {
	case SnapNone:
		return "none"
	case SnapLeft:
		return "left"
	case SnapRight:
		return "right"
	case SnapViewport:
		return "viewport"
	default:
		return "unknown"
	}
}

// PanelPhase is the coarse lifecycle position of a panel.
type PanelPhase int

const (
	PhaseCreated   PanelPhase = iota // Constructed, waiting for the first show
	PhaseShown                       // Displayed and interactive
	PhaseClosing                     // Committed to closing, views detaching
	PhaseDestroyed                   // Torn down
)

func (p PanelPhase) String() string {
	switch p {
	case PhaseCreated:
		return "created"
	case PhaseShown:
		return "shown"
	case PhaseClosing:
		return "closing"
	case PhaseDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// Panel is the floating surface state. The rendering layer projects it and
// never stores geometry of its own.
type Panel struct {
	ID      PanelID
	Phase   PanelPhase
	Visible bool

	Pinned    bool
	Dragging  bool
	Resizing  bool
	Detaching bool // Monotonic: once set it never reverts
	Opening   bool // A content load is in flight

	Rect Rect

	// Minimize bookkeeping. RestoreHeight > 0 while minimized.
	RestoreHeight int
	MinHeight     int // 0 means no override
	MaxHeight     int // 0 means no override

	Snap SnapState

	AspectLocked bool
	AspectRatio  float64
	Image        Size // Natural size of hosted image content

	Title     string
	TitlePath string
	LeafCount int
}

// NewPanel creates a panel with the configured initial dimensions.
func NewPanel(id PanelID, initial Size) *Panel {
	return &Panel{
		ID:    id,
		Phase: PhaseCreated,
		Rect:  Rect{W: initial.W, H: initial.H},
	}
}

// IsMinimized reports whether the panel is collapsed to its header.
func (p Panel) IsMinimized() bool {
	return p.RestoreHeight > 0
}

// IsSnapped reports whether the panel carries a snap marker.
func (p Panel) IsSnapped() bool {
	return p.Snap != SnapNone
}

// ContentHeight returns the height the aspect ratio applies to.
func (p Panel) ContentHeight(chrome int) int {
	h := p.Rect.H - chrome
	if h < 0 {
		return 0
	}
	return h
}

// WidthForHeight derives a width from a content height using the locked ratio.
func WidthForHeight(h int, ratio float64) int {
	return int(math.Round(float64(h) * ratio))
}

// HeightForWidth derives a content height from a width using the locked ratio.
func HeightForWidth(w int, ratio float64) int {
	if ratio <= 0 {
		return 0
	}
	return int(math.Round(float64(w) / ratio))
}
