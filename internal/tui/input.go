package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/hoverpane/internal/domain/entity"
	"github.com/bnema/hoverpane/internal/infrastructure/workspace"
	"github.com/bnema/hoverpane/internal/logging"
)

const primaryButton = 1

func (h *host) mouse(msg tea.MouseMsg) {
	col, row := msg.X, msg.Y
	pt := h.grid.point(col, row)

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			h.scroll(-1)
		case tea.MouseButtonWheelDown:
			h.scroll(1)
		case tea.MouseButtonLeft:
			h.press(col, row, pt)
		}
	case tea.MouseActionMotion:
		if ps, ok := h.panels[h.pressed]; ok {
			ps.p.PointerMove(pt)
			return
		}
		h.hover(col, row)
	case tea.MouseActionRelease:
		if ps, ok := h.panels[h.pressed]; ok {
			ps.p.PointerUp(pt)
		}
		h.pressed = ""
		h.hover(col, row)
	}
}

// hover updates panel and link hover state. A panel covering a link hides
// the link.
func (h *host) hover(col, row int) {
	id := h.panelAt(col, row)
	h.setHoverPanel(id)
	link := -1
	if id == "" {
		link = h.linkAt(col, row)
	}
	h.setHoverLink(link)
}

func (h *host) setHoverPanel(id entity.PanelID) {
	if id == h.hoverPanel {
		return
	}
	if ps, ok := h.panels[h.hoverPanel]; ok && ps.trigger != nil {
		ps.trigger.HoverLeave()
	}
	h.hoverPanel = id
	if ps, ok := h.panels[id]; ok && ps.trigger != nil {
		ps.trigger.HoverEnter()
	}
}

func (h *host) setHoverLink(i int) {
	if i == h.hoverLink {
		return
	}
	if h.linkTrigger != nil {
		h.linkTrigger.TargetLeave()
		h.linkTrigger = nil
	}
	h.hoverLink = i
	if i < 0 {
		return
	}
	for _, ps := range h.panels {
		if ps.link == i && ps.gen == h.doc.Gen && !ps.p.Detaching() && ps.trigger != nil {
			ps.trigger.TargetEnter()
			h.linkTrigger = ps.trigger
			return
		}
	}
	h.linkTrigger = h.open(i)
}

// press routes a primary button press to the panel part under the pointer.
func (h *host) press(col, row int, pt entity.Point) {
	id := h.panelAt(col, row)
	ps, ok := h.panels[id]
	if !ok {
		return
	}
	h.raise(id)
	h.focus = id

	part, edges := hitTest(h.grid.cells(ps.surface.panel.Rect), col, row)
	switch part {
	case hitClose:
		ps.p.ExplicitHide()
	case hitPin:
		ps.p.TogglePin()
	case hitTitle, hitEdge:
		ps.p.PointerDown(target(part, edges), pt, primaryButton)
		h.pressed = id
	case hitBody:
		h.click(ps, row)
	}
}

// click runs the action of the view under row, or focuses it.
func (h *host) click(ps *panelState, row int) {
	for _, sec := range ps.sections {
		if row < sec.top || row >= sec.top+sec.rows {
			continue
		}
		v, ok := sec.view.(*workspace.View)
		if !ok {
			return
		}
		if action, ok := v.Action(); ok {
			logging.FromContext(h.ctx).Debug().Str("view_id", string(v.ID())).Msg("running panel action")
			action.Run()
			return
		}
		v.Focus()
		return
	}
}

// split opens the first view of the focused panel a second time below it.
func (h *host) split(ps *panelState) {
	views := ps.p.Views()
	if len(views) == 0 {
		return
	}
	first := views[0]
	ref := first.Content()
	if ref == nil {
		return
	}
	view, err := ps.ws.Split(h.ctx, first.ID(), entity.SplitVertical)
	if err != nil {
		logging.FromContext(h.ctx).Warn().Err(err).Msg("failed to split panel")
		return
	}
	state := entity.OpenState{Mode: first.Mode(), EState: first.EphemeralState()}
	if err := ps.p.OpenFile(h.ctx, *ref, state, view); err != nil {
		logging.FromContext(h.ctx).Warn().Err(err).Str("path", ref.Path).Msg("failed to open split view")
	}
}

// detachLast closes the last hosted view. Closing the only one closes the
// panel.
func (h *host) detachLast(ps *panelState) {
	views := ps.p.Views()
	if len(views) == 0 {
		return
	}
	if err := ps.ws.Detach(h.ctx, views[len(views)-1].ID()); err != nil {
		logging.FromContext(h.ctx).Warn().Err(err).Msg("failed to detach view")
	}
}
