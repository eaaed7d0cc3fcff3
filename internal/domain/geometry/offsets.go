// Package geometry holds the pure measurement helpers shared by the snap
// engine, the constraint modifiers and the panel controller.
package geometry

import (
	"math"

	"github.com/bnema/hoverpane/internal/domain/entity"
)

// CalculateOffsets returns the top-left corner of the usable workspace area:
// below the host title bar and right of the ribbon unless it is hidden.
func CalculateOffsets(chrome entity.Chrome) entity.Offsets {
	left := chrome.Ribbon
	if chrome.RibbonHidden || left < 0 {
		left = 0
	}
	top := chrome.TitleBar
	if top < 0 {
		top = 0
	}
	return entity.Offsets{Top: top, Left: left}
}

// ScaleSize divides a viewport size by factor. Factors <= 1 return the size unchanged.
func ScaleSize(size entity.Size, factor float64) entity.Size {
	if factor <= 1 {
		return size
	}
	return entity.Size{
		W: int(math.Floor(float64(size.W) / factor)),
		H: int(math.Floor(float64(size.H) / factor)),
	}
}

// UnsnapPosition places a panel that is being restored from a snapped layout
// so the pointer keeps the same horizontal percentage inside the panel.
// The pointer ends on the top edge of the restored panel.
func UnsnapPosition(pointer entity.Point, snapped entity.Rect, restoredWidth int) entity.Point {
	if snapped.W <= 0 {
		return entity.Point{X: pointer.X - restoredWidth/2, Y: pointer.Y}
	}
	pct := float64(pointer.X-snapped.X) / float64(snapped.W)
	pct = math.Max(0, math.Min(1, pct))
	x := float64(pointer.X) - pct*float64(restoredWidth)
	return entity.Point{X: int(math.Round(x)), Y: pointer.Y}
}

// Clamp bounds v to [lo, hi]. When hi < lo, lo wins.
func Clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
