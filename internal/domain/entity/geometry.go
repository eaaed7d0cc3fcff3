// Package entity defines domain entities for floating panels.
package entity

import "fmt"

// Point is a position in viewport pixels.
type Point struct {
	X, Y int
}

// Size is a width/height pair in pixels.
type Size struct {
	W, H int
}

// IsZero reports whether either dimension is unset.
func (s Size) IsZero() bool {
	return s.W <= 0 || s.H <= 0
}

// Ratio returns W/H, or 0 when the size is empty.
func (s Size) Ratio() float64 {
	if s.IsZero() {
		return 0
	}
	return float64(s.W) / float64(s.H)
}

// Rect represents a panel's screen position and size.
type Rect struct {
	X, Y int // Top-left position relative to the viewport
	W, H int // Width and height
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// Center returns the center point of the rectangle.
func (r Rect) Center() (cx, cy int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Size returns the rectangle dimensions.
func (r Rect) Size() Size {
	return Size{W: r.W, H: r.H}
}

// Translate returns the rectangle moved by dx, dy.
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Contains reports whether p lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// IsZero reports whether the rectangle has no area.
func (r Rect) IsZero() bool {
	return r.W <= 0 || r.H <= 0
}

func (r Rect) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.W, r.H, r.X, r.Y)
}

// Edges selects the sides of a rectangle taking part in a resize.
type Edges struct {
	Top, Left, Bottom, Right bool
}

// Any reports whether at least one edge is set.
func (e Edges) Any() bool {
	return e.Top || e.Left || e.Bottom || e.Right
}

// Vertical reports whether a horizontal side (top or bottom) is active,
// meaning the gesture changes the height directly.
func (e Edges) Vertical() bool {
	return e.Top || e.Bottom
}

func (e Edges) String() string {
	s := ""
	if e.Top {
		s += "top"
	}
	if e.Bottom {
		s += "bottom"
	}
	if e.Left {
		s += "left"
	}
	if e.Right {
		s += "right"
	}
	if s == "" {
		return "none"
	}
	return s
}

// Chrome describes the host window decorations surrounding the workspace.
type Chrome struct {
	TitleBar     int  // Height of the host title bar
	Ribbon       int  // Width of the left ribbon
	RibbonHidden bool // Ribbon collapsed by the user
}

// Offsets is the top-left corner of the usable workspace area.
type Offsets struct {
	Top, Left int
}
