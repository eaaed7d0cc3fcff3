package constraint

import (
	"github.com/bnema/hoverpane/internal/domain/entity"
	"github.com/bnema/hoverpane/internal/domain/geometry"
)

const (
	DefaultMinWidth     = 40
	DefaultReflowShrink = 1.5
)

// Limits bounds the size of a panel during a resize.
type Limits struct {
	Min entity.Size
	Max entity.Size
}

// LimitOptions feeds NewLimits.
type LimitOptions struct {
	Viewport     entity.Size
	HeaderHeight int
	MinWidth     int
	// MinHeight and MaxHeight are per-panel overrides, 0 when unset.
	MinHeight int
	MaxHeight int
	// Reflow caps the size at Viewport/Shrink instead of the full viewport.
	Reflow bool
	Shrink float64
}

// NewLimits computes resize limits. The header height is the height floor;
// the max is the viewport for user gestures and a fraction of it on reflow.
func NewLimits(opts LimitOptions) Limits {
	minW := opts.MinWidth
	if minW <= 0 {
		minW = DefaultMinWidth
	}
	minH := opts.HeaderHeight
	if opts.MinHeight > 0 {
		minH = opts.MinHeight
	}

	maxSize := opts.Viewport
	if opts.Reflow {
		shrink := opts.Shrink
		if shrink <= 1 {
			shrink = DefaultReflowShrink
		}
		maxSize = geometry.ScaleSize(opts.Viewport, shrink)
	}
	if opts.MaxHeight > 0 && opts.MaxHeight < maxSize.H {
		maxSize.H = opts.MaxHeight
	}

	return Limits{
		Min: entity.Size{W: minW, H: minH},
		Max: maxSize,
	}
}

// Shrink returns limits with d subtracted from both height bounds, floored at
// zero. Used to express limits against the content box.
func (l Limits) Shrink(d int) Limits {
	l.Min.H = max(0, l.Min.H-d)
	l.Max.H = max(0, l.Max.H-d)
	return l
}

func (l Limits) clampW(w int) int {
	return geometry.Clamp(w, l.Min.W, l.Max.W)
}

func (l Limits) clampH(h int) int {
	return geometry.Clamp(h, l.Min.H, l.Max.H)
}

// RestrictEdges keeps the moving edges of r inside vp. Edges that are not
// being dragged stay where they are.
func RestrictEdges(r entity.Rect, vp entity.Rect, edges entity.Edges) entity.Rect {
	if edges.Left && r.X < vp.X {
		r.W -= vp.X - r.X
		r.X = vp.X
	}
	if edges.Top && r.Y < vp.Y {
		r.H -= vp.Y - r.Y
		r.Y = vp.Y
	}
	if edges.Right && r.Right() > vp.Right() {
		r.W = vp.Right() - r.X
	}
	if edges.Bottom && r.Bottom() > vp.Bottom() {
		r.H = vp.Bottom() - r.Y
	}
	return r
}

// RestrictSize clamps r to the limits, anchoring the edge opposite to the
// one being dragged.
func RestrictSize(r entity.Rect, edges entity.Edges, lim Limits) entity.Rect {
	right, bottom := r.Right(), r.Bottom()
	r.W = lim.clampW(r.W)
	r.H = lim.clampH(r.H)
	if edges.Left {
		r.X = right - r.W
	}
	if edges.Top {
		r.Y = bottom - r.H
	}
	return r
}
