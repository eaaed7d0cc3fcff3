package constraint

import "github.com/bnema/hoverpane/internal/domain/entity"

// Aspect forces r to the given width/height ratio. A vertical edge in the
// gesture (top or bottom) makes the height drive the width; a purely
// horizontal gesture makes the width drive the height. The result respects
// lim and the edge opposite to the dragged one stays anchored.
func Aspect(r entity.Rect, edges entity.Edges, ratio float64, lim Limits) entity.Rect {
	if ratio <= 0 {
		return r
	}
	right, bottom := r.Right(), r.Bottom()

	w, h := r.W, r.H
	if edges.Vertical() || !edges.Any() {
		h = lim.clampH(h)
		w = entity.WidthForHeight(h, ratio)
		if cw := lim.clampW(w); cw != w {
			w = cw
			h = entity.HeightForWidth(w, ratio)
		}
	} else {
		w = lim.clampW(w)
		h = entity.HeightForWidth(w, ratio)
		if ch := lim.clampH(h); ch != h {
			h = ch
			w = entity.WidthForHeight(h, ratio)
		}
	}

	r.W, r.H = w, h
	if edges.Left {
		r.X = right - r.W
	}
	if edges.Top {
		r.Y = bottom - r.H
	}
	return r
}
