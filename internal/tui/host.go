package tui

import (
	"context"
	"fmt"
	"slices"

	"github.com/bnema/hoverpane/internal/application/port"
	"github.com/bnema/hoverpane/internal/cli/styles"
	"github.com/bnema/hoverpane/internal/domain/entity"
	"github.com/bnema/hoverpane/internal/infrastructure/vault"
	"github.com/bnema/hoverpane/internal/infrastructure/workspace"
	"github.com/bnema/hoverpane/internal/logging"
	"github.com/bnema/hoverpane/internal/ui/component"
)

// docFirstRow is the screen row of the first document line; row 0 is the
// status bar.
const docFirstRow = 1

// Recorder tracks recently opened content.
type Recorder interface {
	port.RecencyTracker
	Record(ctx context.Context, path, title string) (bool, error)
}

// Deps wires the terminal host.
type Deps struct {
	Vault   *vault.Vault
	Recency Recorder
	Opener  port.ExternalOpener
	Theme   *styles.Theme

	Options component.PopoverOptions
	Trigger component.HoverTriggerOptions

	CellWidth     int
	CellHeight    int
	MarkdownStyle string

	// Document is the vault-relative note shown behind the panels.
	Document string
	// Watch reloads the document and open previews when files change.
	Watch bool
	// Reconfigure, when set, is handed a function that swaps the options
	// used by panels opened from then on. It may be called from any goroutine.
	Reconfigure func(apply func(component.PopoverOptions, component.HoverTriggerOptions))
}

// panelState is everything the host keeps per popover.
type panelState struct {
	p        *component.Popover
	trigger  *component.HoverTrigger
	ws       *workspace.Workspace
	surface  *panelSurface
	link     int
	gen      int
	sections []viewSection
}

// viewSection is the body area a hosted view was last drawn in.
type viewSection struct {
	view port.View
	top  int // Screen row
	rows int
}

// host owns the document, the panels and the pointer state. All methods run
// on the bubbletea goroutine, which drains the loop.
type host struct {
	ctx      context.Context
	deps     Deps
	loop     port.Scheduler
	drain    func()
	registry *component.Registry
	grid     grid
	md       *markdownRenderer
	theme    *styles.Theme

	doc    *Document
	docTop int
	owner  *docOwner

	panels map[entity.PanelID]*panelState
	order  []entity.PanelID // Bottom to top
	seq    int

	width, height int

	hoverLink   int
	linkTrigger *component.HoverTrigger
	hoverPanel  entity.PanelID
	pressed     entity.PanelID
	focus       entity.PanelID
}

var _ port.Viewport = (*host)(nil)

func newHost(ctx context.Context, loop port.Scheduler, drain func(), deps Deps) (*host, error) {
	src, err := deps.Vault.Read(ctx, deps.Document)
	if err != nil {
		return nil, fmt.Errorf("read document %s: %w", deps.Document, err)
	}
	theme := deps.Theme
	if theme == nil {
		theme = styles.NewTheme()
	}
	return &host{
		ctx:       logging.WithComponent(ctx, "tui"),
		deps:      deps,
		loop:      loop,
		drain:     drain,
		registry:  component.NewRegistry(),
		grid:      newGrid(deps.CellWidth, deps.CellHeight),
		md:        newMarkdownRenderer(deps.MarkdownStyle),
		theme:     theme,
		doc:       ParseDocument(deps.Document, src, 1),
		owner:     &docOwner{},
		panels:    make(map[entity.PanelID]*panelState),
		hoverLink: -1,
		width:     80,
		height:    24,
	}, nil
}

// Bounds is the screen minus the footer row, in pixels.
func (h *host) Bounds() entity.Rect {
	return entity.Rect{W: h.width * h.grid.cw, H: max(h.height-1, 1) * h.grid.ch}
}

// Chrome reports the status bar as the host title bar.
func (h *host) Chrome() entity.Chrome {
	return entity.Chrome{TitleBar: docFirstRow * h.grid.ch, RibbonHidden: true}
}

// applyOptions changes the options of panels opened later. Open panels keep
// the options they were created with.
func (h *host) applyOptions(opts component.PopoverOptions, trigger component.HoverTriggerOptions) {
	h.deps.Options = opts
	h.deps.Trigger = trigger
	logging.FromContext(h.ctx).Debug().
		Dur("wait", trigger.WaitTime).
		Dur("close_delay", trigger.CloseDelay).
		Msg("panel options updated")
}

func (h *host) resize(width, height int) {
	h.width, h.height = width, height
}

// open creates a popover for link i and arms its hover trigger.
func (h *host) open(i int) *component.HoverTrigger {
	link := h.doc.Links[i]
	h.seq++
	id := entity.PanelID(fmt.Sprintf("panel-%d", h.seq))

	ws := workspace.New(h.deps.Vault, h.loop.Post, h.onFocus)
	surface := &panelSurface{h: h, id: id}
	screenRow := link.Row - h.docTop + docFirstRow
	p := component.NewPopover(h.ctx, component.PopoverConfig{
		ID:       id,
		Owner:    h.owner,
		Anchor:   &linkAnchor{h: h, gen: h.doc.Gen},
		Position: entity.Point{X: link.Col * h.grid.cw, Y: (screenRow + 1) * h.grid.ch},
		Options:  h.deps.Options,
		Deps: component.PopoverDeps{
			Workspace: ws,
			Surface:   surface,
			Viewport:  h,
			Scheduler: h.loop,
			Resolver:  h.deps.Vault,
			Recency:   h.deps.Recency,
			Opener:    h.deps.Opener,
			Registry:  h.registry,
		},
	})
	ps := &panelState{p: p, ws: ws, surface: surface, link: i, gen: h.doc.Gen}
	h.panels[id] = ps

	err := p.OpenLink(h.ctx, component.OpenLinkRequest{
		Text:       link.Target,
		SourcePath: h.doc.Path,
		ParentMode: entity.ModeSource,
	})
	if err != nil {
		logging.FromContext(h.ctx).Warn().Err(err).Str("link", link.Target).Msg("failed to open link")
	}
	ps.trigger = component.NewHoverTrigger(p, h.loop, h.deps.Trigger)
	return ps.trigger
}

// remove forgets a torn down panel.
func (h *host) remove(id entity.PanelID) {
	ps, ok := h.panels[id]
	if !ok {
		return
	}
	delete(h.panels, id)
	h.order = slices.DeleteFunc(h.order, func(o entity.PanelID) bool { return o == id })
	ps.ws.Close()

	h.md.ForgetPrefix(string(ps.ws.ID()) + "-")

	if h.linkTrigger == ps.trigger {
		h.linkTrigger = nil
		h.hoverLink = -1
	}
	if h.hoverPanel == id {
		h.hoverPanel = ""
	}
	if h.pressed == id {
		h.pressed = ""
	}
	if h.focus == id {
		h.focus = ""
	}
}

// raise moves a panel to the top of the stacking order.
func (h *host) raise(id entity.PanelID) {
	h.order = slices.DeleteFunc(h.order, func(o entity.PanelID) bool { return o == id })
	h.order = append(h.order, id)
}

// panelAt returns the topmost visible panel under the cell.
func (h *host) panelAt(col, row int) entity.PanelID {
	for i := len(h.order) - 1; i >= 0; i-- {
		ps := h.panels[h.order[i]]
		if ps == nil || !ps.surface.drawn() {
			continue
		}
		if h.grid.cells(ps.surface.panel.Rect).contains(col, row) {
			return h.order[i]
		}
	}
	return ""
}

// linkAt returns the document link under a screen cell, -1 if none.
func (h *host) linkAt(col, row int) int {
	if row < docFirstRow || row >= h.height-1 {
		return -1
	}
	return h.doc.LinkAt(col, row-docFirstRow+h.docTop)
}

// focused returns the panel keyboard commands act on.
func (h *host) focused() *panelState {
	if ps, ok := h.panels[h.focus]; ok && !ps.p.Detaching() {
		return ps
	}
	for i := len(h.order) - 1; i >= 0; i-- {
		if ps := h.panels[h.order[i]]; ps != nil && ps.surface.drawn() {
			return ps
		}
	}
	return nil
}

// onFocus records focused content in the recent list. Auto-focused previews
// are suppressed by the tracker's ignore set.
func (h *host) onFocus(ref entity.ContentRef, title string) {
	if h.deps.Recency == nil {
		return
	}
	h.loop.Go(h.ctx, func(ctx context.Context) error {
		_, err := h.deps.Recency.Record(ctx, ref.Path, title)
		return err
	}, func(err error) {
		if err != nil {
			logging.FromContext(h.ctx).Warn().Err(err).Str("path", ref.Path).Msg("failed to record recent")
		}
	})
}

// fileChanged reloads the document and refreshes previews of rel.
func (h *host) fileChanged(rel string) {
	if rel == h.doc.Path {
		path := h.doc.Path
		var src []byte
		h.loop.Go(h.ctx, func(ctx context.Context) error {
			var err error
			src, err = h.deps.Vault.Read(ctx, path)
			return err
		}, func(err error) {
			if err != nil {
				logging.FromContext(h.ctx).Warn().Err(err).Str("path", path).Msg("failed to reload document")
				return
			}
			h.setDocument(ParseDocument(path, src, h.doc.Gen+1))
		})
	}

	for _, ps := range h.panels {
		if ps.p.Detaching() {
			continue
		}
		for _, v := range ps.p.Views() {
			ref := v.Content()
			if ref == nil || ref.Path != rel || ref.Kind != entity.KindMarkdown {
				continue
			}
			state := entity.OpenState{Mode: v.Mode(), EState: v.EphemeralState()}
			if err := ps.p.OpenFile(h.ctx, *ref, state, v); err != nil {
				logging.FromContext(h.ctx).Warn().Err(err).Str("path", rel).Msg("failed to refresh preview")
			}
		}
	}
}

// setDocument swaps the document. Anchors into the old one detach.
func (h *host) setDocument(doc *Document) {
	if h.linkTrigger != nil {
		h.linkTrigger.TargetLeave()
		h.linkTrigger = nil
	}
	h.hoverLink = -1
	h.doc = doc
	h.docTop = min(h.docTop, max(len(doc.Lines)-1, 0))
	for _, p := range h.registry.Active() {
		p.UpdateLeaves()
	}
}

func (h *host) scroll(delta int) {
	h.docTop = max(0, min(h.docTop+delta, len(h.doc.Lines)-1))
}

// shutdown closes every panel.
func (h *host) shutdown() {
	h.registry.CloseAll()
}

// docOwner is the host document as the owner of hover popovers: it links
// one unpinned popover at a time.
type docOwner struct {
	p *component.Popover
}

func (o *docOwner) HoverPopover() *component.Popover { return o.p }

func (o *docOwner) SetHoverPopover(p *component.Popover) { o.p = p }

// linkAnchor stays attached while the document it was found in is shown.
type linkAnchor struct {
	h   *host
	gen int
}

func (a *linkAnchor) Attached() bool {
	return a.h.doc.Gen == a.gen
}
