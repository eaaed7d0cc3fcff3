package interact

import "github.com/bnema/hoverpane/internal/domain/entity"

// Modifier rewrites the rectangle of a tick. Modifiers run in order, each
// receiving the output of the previous one.
type Modifier interface {
	Modify(s *Session, r entity.Rect) entity.Rect
}

// ModifierFunc adapts a function to Modifier.
type ModifierFunc func(s *Session, r entity.Rect) entity.Rect

func (f ModifierFunc) Modify(s *Session, r entity.Rect) entity.Rect {
	return f(s, r)
}

// Toggle wraps a modifier that can be switched on and off at runtime.
type Toggle struct {
	Modifier
	Enabled bool
}

func (t *Toggle) Modify(s *Session, r entity.Rect) entity.Rect {
	if !t.Enabled || t.Modifier == nil {
		return r
	}
	return t.Modifier.Modify(s, r)
}

func applyModifiers(s *Session, r entity.Rect) entity.Rect {
	for _, m := range s.Modifiers {
		r = m.Modify(s, r)
	}
	return r
}
