package geometry

import "github.com/bnema/hoverpane/internal/domain/entity"

// Store keeps the rectangle a panel had before a snap so it can be restored
// exactly. Only the first capture is kept until Restore or Clear.
type Store struct {
	original *entity.Rect
}

// Capture records r unless a capture is already pending.
// Returns true when r was recorded.
func (s *Store) Capture(r entity.Rect) bool {
	if s.original != nil {
		return false
	}
	rc := r
	s.original = &rc
	return true
}

// Pending reports whether an original rectangle is stored.
func (s *Store) Pending() bool {
	return s.original != nil
}

// Original returns the stored rectangle without clearing it.
func (s *Store) Original() (entity.Rect, bool) {
	if s.original == nil {
		return entity.Rect{}, false
	}
	return *s.original, true
}

// Restore returns the stored rectangle and clears it. The top edge is pushed
// down to minTop so a restored panel never hides under the host title bar.
func (s *Store) Restore(minTop int) (entity.Rect, bool) {
	if s.original == nil {
		return entity.Rect{}, false
	}
	r := *s.original
	s.original = nil
	if r.Y < minTop {
		r.Y = minTop
	}
	return r, true
}

// Clear drops any pending capture.
func (s *Store) Clear() {
	s.original = nil
}
