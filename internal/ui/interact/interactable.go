// Package interact turns pointer events into drag and resize sessions with
// composable geometry modifiers, plus a programmatic reflow.
package interact

import (
	"errors"
	"time"

	"github.com/bnema/hoverpane/internal/domain/entity"
)

// ErrReleased is returned by every operation after Unset.
var ErrReleased = errors.New("interact: interactable released")

// DefaultDoubleTapWindow is the maximum delay between two title bar taps.
const DefaultDoubleTapWindow = 300 * time.Millisecond

// Listeners receive session lifecycle events. Nil entries are skipped.
type Listeners struct {
	Start func(s *Session)
	Move  func(s *Session)
	End   func(s *Session)
}

// DragOptions configures dragging.
type DragOptions struct {
	Modifiers []Modifier
	Listeners Listeners
}

// ResizeOptions configures resizing.
type ResizeOptions struct {
	Modifiers []Modifier
	Listeners Listeners
}

// TargetKind is the part of a panel under the pointer.
type TargetKind int

const (
	TargetNone TargetKind = iota
	TargetTitleBar
	TargetEdge
	TargetContent
)

// Target identifies what a pointer-down landed on.
type Target struct {
	Kind  TargetKind
	Edges entity.Edges
}

// Interactable binds drag and resize behaviour to one rectangle source.
type Interactable struct {
	rect      func() entity.Rect
	drag      *DragOptions
	resize    *ResizeOptions
	doubleTap func()
	session   *Session
	released  bool

	now      func() time.Time
	window   time.Duration
	lastTap  time.Time
	tapArmed bool
}

// New creates an interactable reading its current geometry from rect.
func New(rect func() entity.Rect) *Interactable {
	return &Interactable{
		rect:   rect,
		now:    time.Now,
		window: DefaultDoubleTapWindow,
	}
}

// WithClock replaces the clock used for double-tap detection.
func (i *Interactable) WithClock(now func() time.Time) *Interactable {
	i.now = now
	return i
}

func (i *Interactable) Draggable(opts DragOptions) *Interactable {
	i.drag = &opts
	return i
}

func (i *Interactable) Resizable(opts ResizeOptions) *Interactable {
	i.resize = &opts
	return i
}

func (i *Interactable) OnDoubleTap(fn func()) *Interactable {
	i.doubleTap = fn
	return i
}

// Interacting reports whether a pointer session is active.
func (i *Interactable) Interacting() bool {
	return i.session != nil
}

// Session returns the active session, nil when idle.
func (i *Interactable) Session() *Session {
	return i.session
}

// PointerDown starts a drag on the title bar or a resize on an edge handle.
// Content and unknown targets never start a session.
func (i *Interactable) PointerDown(target Target, p entity.Point, buttons int) error {
	if i.released {
		return ErrReleased
	}
	if i.session != nil {
		return nil
	}

	switch target.Kind {
	case TargetTitleBar:
		if i.detectDoubleTap() {
			return nil
		}
		if i.drag == nil {
			return nil
		}
		i.begin(ActionDrag, entity.Edges{}, p, buttons, false)
	case TargetEdge:
		if i.resize == nil || !target.Edges.Any() {
			return nil
		}
		i.begin(ActionResize, target.Edges, p, buttons, false)
	}
	return nil
}

// PointerMove advances the active session.
func (i *Interactable) PointerMove(p entity.Point) error {
	if i.released {
		return ErrReleased
	}
	if i.session == nil {
		return nil
	}
	i.session.Pointer = p
	i.tick()
	return nil
}

// PointerUp ends the active session.
func (i *Interactable) PointerUp(p entity.Point) error {
	if i.released {
		return ErrReleased
	}
	if i.session == nil {
		return nil
	}
	i.session.Pointer = p
	i.end()
	return nil
}

// Reflow re-applies the modifiers of action to the current geometry without
// pointer input. Listeners see a session with Reflow set and no buttons.
func (i *Interactable) Reflow(action Action, edges entity.Edges) error {
	if i.released {
		return ErrReleased
	}
	if i.session != nil {
		return nil
	}
	switch action {
	case ActionDrag:
		if i.drag == nil {
			return nil
		}
	case ActionResize:
		if i.resize == nil {
			return nil
		}
	default:
		return nil
	}

	r := i.rect()
	i.begin(action, edges, entity.Point{X: r.X, Y: r.Y}, 0, true)
	i.tick()
	i.end()
	return nil
}

// Unset releases the interactable. Further calls return ErrReleased.
func (i *Interactable) Unset() error {
	if i.released {
		return ErrReleased
	}
	i.released = true
	i.session = nil
	i.drag = nil
	i.resize = nil
	i.doubleTap = nil
	return nil
}

func (i *Interactable) listeners(a Action) (Listeners, []Modifier) {
	if a == ActionDrag && i.drag != nil {
		return i.drag.Listeners, i.drag.Modifiers
	}
	if a == ActionResize && i.resize != nil {
		return i.resize.Listeners, i.resize.Modifiers
	}
	return Listeners{}, nil
}

func (i *Interactable) begin(a Action, edges entity.Edges, p entity.Point, buttons int, reflow bool) {
	l, mods := i.listeners(a)
	r := i.rect()
	i.session = &Session{
		Action:       a,
		Edges:        edges,
		StartRect:    r,
		PrevRect:     r,
		Rect:         r,
		StartPointer: p,
		Pointer:      p,
		Buttons:      buttons,
		Reflow:       reflow,
		Modifiers:    mods,
	}
	if l.Start != nil {
		l.Start(i.session)
	}
}

func (i *Interactable) tick() {
	s := i.session
	if s == nil {
		return
	}
	l, _ := i.listeners(s.Action)
	s.Ticks++
	s.PrevRect = s.Rect
	s.Rect = applyModifiers(s, s.raw())
	if l.Move != nil {
		l.Move(s)
	}
}

func (i *Interactable) end() {
	s := i.session
	if s == nil {
		return
	}
	l, _ := i.listeners(s.Action)
	i.session = nil
	if l.End != nil {
		l.End(s)
	}
}

func (i *Interactable) detectDoubleTap() bool {
	now := i.now()
	if i.tapArmed && now.Sub(i.lastTap) <= i.window {
		i.tapArmed = false
		if i.doubleTap != nil {
			i.doubleTap()
			return true
		}
		return false
	}
	i.tapArmed = true
	i.lastTap = now
	return false
}
