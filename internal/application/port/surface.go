package port

import "github.com/bnema/hoverpane/internal/domain/entity"

// Viewport describes the host workspace area panels float over.
type Viewport interface {
	// Bounds is the workspace rectangle in client coordinates.
	Bounds() entity.Rect
	Chrome() entity.Chrome
}

// Surface renders a panel. It holds no geometry of its own: every Render
// call carries the full panel state.
type Surface interface {
	Show()
	Hide()
	Render(panel entity.Panel)
	Remove()
	HeaderHeight() int
}

// Menu is a context menu opened from a panel.
type Menu interface {
	Hide()
}

// Anchor is the element a panel was opened from.
type Anchor interface {
	// Attached reports whether the anchor is still part of the host UI.
	Attached() bool
}
