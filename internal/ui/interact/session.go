package interact

import "github.com/bnema/hoverpane/internal/domain/entity"

// Action is the kind of pointer interaction.
type Action int

const (
	ActionNone Action = iota
	ActionDrag
	ActionResize
)

func (a Action) String() string {
	switch a {
	case ActionDrag:
		return "drag"
	case ActionResize:
		return "resize"
	default:
		return "none"
	}
}

// Session is the state of one pointer interaction, from pointer-down to
// pointer-up, or of one reflow.
type Session struct {
	Action Action
	Edges  entity.Edges

	StartRect entity.Rect
	PrevRect  entity.Rect
	// Rect is the modified rectangle for the current tick. Listeners may
	// overwrite it.
	Rect entity.Rect

	StartPointer entity.Point
	Pointer      entity.Point

	// Buttons is the pressed pointer button mask; 0 for reflows.
	Buttons   int
	Reflow    bool
	Ticks     int
	Modifiers []Modifier
}

// UserDriven reports whether a pressed pointer drives the session.
func (s *Session) UserDriven() bool {
	return !s.Reflow && s.Buttons != 0
}

// Delta is the pointer travel since the session anchor.
func (s *Session) Delta() entity.Point {
	return entity.Point{X: s.Pointer.X - s.StartPointer.X, Y: s.Pointer.Y - s.StartPointer.Y}
}

// RebaseStart replaces the start rectangle and keeps the pointer anchor, so
// the accumulated delta applies to r from the next tick on.
func (s *Session) RebaseStart(r entity.Rect) {
	s.StartRect = r
}

// Restart anchors the session at the current pointer with r as the new
// start rectangle.
func (s *Session) Restart(r entity.Rect) {
	s.StartRect = r
	s.Rect = r
	s.StartPointer = s.Pointer
}

// raw applies the pointer delta to the start rectangle.
func (s *Session) raw() entity.Rect {
	d := s.Delta()
	r := s.StartRect
	if s.Action == ActionDrag {
		return r.Translate(d.X, d.Y)
	}
	if s.Edges.Left {
		r.X += d.X
		r.W -= d.X
	}
	if s.Edges.Right {
		r.W += d.X
	}
	if s.Edges.Top {
		r.Y += d.Y
		r.H -= d.Y
	}
	if s.Edges.Bottom {
		r.H += d.Y
	}
	return r
}
