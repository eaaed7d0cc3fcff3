package component

import (
	"sync"

	"github.com/bnema/hoverpane/internal/domain/entity"
)

// Registry tracks live popovers. It is injected into every popover instead
// of living in a global. Reads are safe from any goroutine; popover methods
// reached through it must still run on the UI loop.
type Registry struct {
	mu     sync.RWMutex
	panels map[entity.PanelID]*Popover
	order  []entity.PanelID
}

func NewRegistry() *Registry {
	return &Registry{panels: make(map[entity.PanelID]*Popover)}
}

// Register adds p. Registering the same ID twice keeps the newest popover.
func (r *Registry) Register(p *Popover) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.panels[p.ID()]; !ok {
		r.order = append(r.order, p.ID())
	}
	r.panels[p.ID()] = p
}

// Unregister removes p. A popover that was replaced under its ID leaves the
// newer registration alone.
func (r *Registry) Unregister(p *Popover) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := p.ID()
	if cur, ok := r.panels[id]; !ok || cur != p {
		return
	}
	delete(r.panels, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

func (r *Registry) Lookup(id entity.PanelID) (*Popover, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.panels[id]
	return p, ok
}

// ForView returns the popover hosting the view with the given ID.
func (r *Registry) ForView(id entity.ViewID) (*Popover, bool) {
	for _, p := range r.Active() {
		if p.HasView(id) {
			return p, true
		}
	}
	return nil, false
}

// Active returns the registered popovers in registration order.
func (r *Registry) Active() []*Popover {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Popover, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.panels[id])
	}
	return out
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.panels)
}

// CloseAll explicitly hides every popover, pinned ones included.
func (r *Registry) CloseAll() {
	for _, p := range r.Active() {
		p.ExplicitHide()
	}
}
