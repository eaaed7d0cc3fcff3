// Package constraint implements the geometry modifiers applied while a panel
// is dragged or resized: boundary restriction, size limits and aspect lock.
package constraint

import (
	"github.com/bnema/hoverpane/internal/domain/entity"
	"github.com/bnema/hoverpane/internal/domain/geometry"
)

// DefaultGrip is how much of the panel width must stay reachable on screen
// when it is dragged past a side of the viewport.
const DefaultGrip = 40

// DragOptions tunes RestrictDrag.
type DragOptions struct {
	HeaderHeight int
	// TopMargin lets the panel top go above the viewport so the top snap
	// zone is reachable. Zero when snapping is disabled.
	TopMargin int
	Grip      int
	// Reflow restricts the whole panel to the viewport instead of keeping
	// only the header reachable.
	Reflow bool
}

// RestrictDrag moves r so it stays within the region allowed for vp.
// Size is never changed.
func RestrictDrag(r entity.Rect, vp entity.Rect, opts DragOptions) entity.Rect {
	if opts.Reflow {
		r.X = geometry.Clamp(r.X, vp.X, vp.Right()-r.W)
		r.Y = geometry.Clamp(r.Y, vp.Y, vp.Bottom()-r.H)
		return r
	}

	grip := opts.Grip
	if grip <= 0 {
		grip = DefaultGrip
	}
	if grip > r.W {
		grip = r.W
	}
	r.X = geometry.Clamp(r.X, vp.X-r.W+grip, vp.Right()-grip)
	r.Y = geometry.Clamp(r.Y, vp.Y-opts.TopMargin, vp.Bottom()-opts.HeaderHeight)
	return r
}
