package tui

import (
	"github.com/bnema/hoverpane/internal/application/port"
	"github.com/bnema/hoverpane/internal/domain/entity"
)

// panelSurface records what the popover asks to display; the host draws it
// on the next frame.
type panelSurface struct {
	h        *host
	id       entity.PanelID
	visible  bool
	rendered bool
	panel    entity.Panel
}

var _ port.Surface = (*panelSurface)(nil)

func (s *panelSurface) Show() {
	s.visible = true
	s.h.raise(s.id)
}

func (s *panelSurface) Hide() {
	s.visible = false
}

func (s *panelSurface) Render(panel entity.Panel) {
	s.panel = panel
	s.rendered = true
}

func (s *panelSurface) Remove() {
	s.visible = false
	s.h.remove(s.id)
}

// HeaderHeight is one terminal row.
func (s *panelSurface) HeaderHeight() int {
	return s.h.grid.ch
}

func (s *panelSurface) drawn() bool {
	return s.visible && s.rendered
}
