package component

import (
	"fmt"

	"github.com/bnema/hoverpane/internal/domain/constraint"
	"github.com/bnema/hoverpane/internal/domain/entity"
	"github.com/bnema/hoverpane/internal/domain/geometry"
	"github.com/bnema/hoverpane/internal/domain/snap"
	"github.com/bnema/hoverpane/internal/logging"
	"github.com/bnema/hoverpane/internal/ui/interact"
)

// binder wires pointer drag and resize to a popover's panel through the
// constraint modifiers and the snap engine.
type binder struct {
	p      *Popover
	inter  *interact.Interactable
	engine *snap.Engine
	aspect *interact.Toggle

	// contentBox is set once the current resize session has been rebased
	// from the panel box to the content box for the aspect lock.
	contentBox bool
}

func newBinder(p *Popover) *binder {
	b := &binder{
		p:      p,
		engine: snap.NewEngine(p.opts.Snap),
	}
	b.aspect = &interact.Toggle{Modifier: interact.ModifierFunc(b.applyAspect)}
	return b
}

// attach (re)creates the interactable. Any previous one is released.
func (b *binder) attach() {
	if b.inter != nil {
		if err := b.inter.Unset(); err != nil {
			logging.FromContext(b.p.ctx).Debug().Err(err).Msg("previous interactable already released")
		}
	}
	b.aspect.Enabled = b.p.panel.AspectLocked && b.p.panel.AspectRatio > 0
	b.inter = interact.New(func() entity.Rect { return b.p.panel.Rect }).
		Draggable(interact.DragOptions{
			Modifiers: []interact.Modifier{interact.ModifierFunc(b.restrictDrag)},
			Listeners: interact.Listeners{
				Start: b.dragStart,
				Move:  b.dragMove,
				End:   b.dragEnd,
			},
		}).
		Resizable(interact.ResizeOptions{
			Modifiers: []interact.Modifier{
				interact.ModifierFunc(b.compensateChrome),
				interact.ModifierFunc(b.restrictEdges),
				interact.ModifierFunc(b.restrictSize),
				b.aspect,
			},
			Listeners: interact.Listeners{
				Start: b.resizeStart,
				Move:  b.resizeMove,
				End:   b.resizeEnd,
			},
		}).
		OnDoubleTap(b.p.DoubleTap)
}

// release unsets the interactable. The reference is cleared even on error.
func (b *binder) release() error {
	if b.inter == nil {
		return nil
	}
	err := b.inter.Unset()
	b.inter = nil
	b.engine.Reset()
	if err != nil {
		return fmt.Errorf("release interactable: %w", err)
	}
	return nil
}

func (b *binder) reflow(action interact.Action, edges entity.Edges) {
	if b.inter == nil {
		return
	}
	if err := b.inter.Reflow(action, edges); err != nil {
		logging.FromContext(b.p.ctx).Debug().Err(err).Str("action", action.String()).Msg("reflow skipped")
	}
}

func (b *binder) setAspect(enabled bool) {
	b.aspect.Enabled = enabled
}

func (b *binder) header() int {
	return b.p.surface.HeaderHeight()
}

func (b *binder) bounds() entity.Rect {
	return b.p.viewport.Bounds()
}

// Drag

func (b *binder) restrictDrag(s *interact.Session, r entity.Rect) entity.Rect {
	opts := constraint.DragOptions{
		HeaderHeight: b.header(),
		Grip:         b.p.opts.Grip,
		Reflow:       s.Reflow,
	}
	if b.p.opts.SnapToEdges {
		opts.TopMargin = b.engine.Config().TopDistance
	}
	return constraint.RestrictDrag(r, b.bounds(), opts)
}

func (b *binder) dragStart(s *interact.Session) {
	b.p.panel.Dragging = true
}

func (b *binder) dragMove(s *interact.Session) {
	panel := b.p.panel
	if b.p.opts.SnapToEdges {
		vp := b.bounds()
		res := b.engine.Move(snap.MoveInput{
			Pointer:    s.Pointer,
			Viewport:   entity.Size{W: vp.Right(), H: vp.Bottom()},
			Offsets:    geometry.CalculateOffsets(b.p.viewport.Chrome()),
			Current:    panel.Rect,
			Snap:       panel.Snap,
			UserDriven: s.UserDriven(),
		})
		switch res.Decision {
		case snap.DecisionSnap:
			if panel.Snap != res.Edge {
				logging.FromContext(b.p.ctx).Debug().Str("edge", res.Edge.String()).Msg("panel snapped")
			}
			panel.Snap = res.Edge
			panel.Rect = res.Rect
			s.Rect = res.Rect
			b.p.render()
			return
		case snap.DecisionHold:
			return
		case snap.DecisionUnsnap:
			// Restored size, placed under the pointer on this same tick.
			anchored := entity.Rect{X: res.Anchor.X, Y: res.Anchor.Y, W: res.Rect.W, H: res.Rect.H}
			panel.Snap = entity.SnapNone
			panel.Rect = b.restrictDrag(s, anchored)
			s.Restart(anchored)
			b.p.render()
			return
		}
	}
	panel.Rect = s.Rect
	b.p.render()
}

func (b *binder) dragEnd(s *interact.Session) {
	b.p.panel.Dragging = false
	b.p.render()
}

// Resize

func (b *binder) limits(s *interact.Session) constraint.Limits {
	vp := b.bounds()
	return constraint.NewLimits(constraint.LimitOptions{
		Viewport:     vp.Size(),
		HeaderHeight: b.header(),
		MinWidth:     b.p.opts.MinWidth,
		MinHeight:    b.p.panel.MinHeight,
		MaxHeight:    b.p.panel.MaxHeight,
		Reflow:       s.Reflow,
		Shrink:       b.p.opts.ReflowShrink,
	})
}

// toContent converts a panel rectangle into its content box.
func toContent(r entity.Rect, chrome int) entity.Rect {
	r.Y += chrome
	r.H -= chrome
	return r
}

// toPanel converts a content box back into the panel rectangle.
func toPanel(r entity.Rect, chrome int) entity.Rect {
	r.Y -= chrome
	r.H += chrome
	return r
}

// compensateChrome rebases an aspect-locked session onto the content box on
// its first movement tick. The ratio applies to content, not to the header.
func (b *binder) compensateChrome(s *interact.Session, r entity.Rect) entity.Rect {
	if !b.aspect.Enabled || b.contentBox {
		return r
	}
	b.contentBox = true
	c := b.header()
	s.RebaseStart(toContent(s.StartRect, c))
	return toContent(r, c)
}

func (b *binder) restrictEdges(s *interact.Session, r entity.Rect) entity.Rect {
	vp := b.bounds()
	if b.contentBox {
		vp = toContent(vp, b.header())
	}
	return constraint.RestrictEdges(r, vp, s.Edges)
}

func (b *binder) restrictSize(s *interact.Session, r entity.Rect) entity.Rect {
	lim := b.limits(s)
	if b.contentBox {
		lim = lim.Shrink(b.header())
	}
	return constraint.RestrictSize(r, s.Edges, lim)
}

func (b *binder) applyAspect(s *interact.Session, r entity.Rect) entity.Rect {
	lim := b.limits(s)
	if b.contentBox {
		lim = lim.Shrink(b.header())
	}
	return constraint.Aspect(r, s.Edges, b.p.panel.AspectRatio, lim)
}

func (b *binder) resizeStart(s *interact.Session) {
	if s.UserDriven() {
		b.p.SetPinned(true)
	}
	b.p.hideMenu()
	b.contentBox = false
	b.p.panel.MaxHeight = 0
	b.p.panel.Resizing = true
}

func (b *binder) resizeMove(s *interact.Session) {
	r := s.Rect
	// User ticks project the header back on every tick. Reflows keep the
	// content box until the end of the session.
	if b.contentBox && s.UserDriven() {
		r = toPanel(r, b.header())
	}
	b.p.panel.Rect = r
	b.p.render()
}

func (b *binder) resizeEnd(s *interact.Session) {
	panel := b.p.panel
	header := b.header()
	if b.contentBox && !s.UserDriven() && s.Ticks > 0 {
		panel.Rect = toPanel(panel.Rect, header)
	}
	b.contentBox = false
	panel.Resizing = false
	if panel.Rect.H > header {
		panel.RestoreHeight = 0
		panel.MinHeight = 0
	}
	b.p.render()
	b.reflow(interact.ActionDrag, entity.Edges{})
}
