package component

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/hoverpane/internal/application/port"
	"github.com/bnema/hoverpane/internal/domain/constraint"
	"github.com/bnema/hoverpane/internal/domain/entity"
	"github.com/bnema/hoverpane/internal/domain/snap"
	"github.com/bnema/hoverpane/internal/logging"
	"github.com/bnema/hoverpane/internal/ui/interact"
)

// Default mode names accepted by PopoverOptions.DefaultMode.
const (
	DefaultModeMatch   = "match"
	DefaultModePreview = "preview"
	DefaultModeSource  = "source"
)

// PopoverOptions controls popover behavior.
type PopoverOptions struct {
	InitialSize  entity.Size
	DefaultMode  string // match, preview or source
	AutoFocus    bool
	SnapToEdges  bool
	MinWidth     int
	Grip         int
	ReflowShrink float64
	Snap         snap.Config
	PagedSize    entity.Size

	// SettleDelay postpones applying editor state until the view has laid out.
	SettleDelay time.Duration
	// RecencyGrace keeps an auto-focused file out of the recent list.
	RecencyGrace time.Duration
	// CreateFocusDelay postpones focusing the create affordance.
	CreateFocusDelay time.Duration
}

// DefaultPopoverOptions returns the stock popover options.
func DefaultPopoverOptions() PopoverOptions {
	return PopoverOptions{
		InitialSize:      entity.Size{W: 400, H: 300},
		DefaultMode:      DefaultModePreview,
		AutoFocus:        true,
		SnapToEdges:      true,
		MinWidth:         constraint.DefaultMinWidth,
		Grip:             constraint.DefaultGrip,
		ReflowShrink:     constraint.DefaultReflowShrink,
		Snap:             snap.DefaultConfig(),
		PagedSize:        entity.Size{W: 600, H: 800},
		SettleDelay:      100 * time.Millisecond,
		RecencyGrace:     time.Second,
		CreateFocusDelay: 200 * time.Millisecond,
	}
}

func (o PopoverOptions) withDefaults() PopoverOptions {
	def := DefaultPopoverOptions()
	if o.InitialSize.W <= 0 || o.InitialSize.H <= 0 {
		o.InitialSize = def.InitialSize
	}
	if o.DefaultMode == "" {
		o.DefaultMode = def.DefaultMode
	}
	if o.MinWidth <= 0 {
		o.MinWidth = def.MinWidth
	}
	if o.Grip <= 0 {
		o.Grip = def.Grip
	}
	if o.ReflowShrink <= 1 {
		o.ReflowShrink = def.ReflowShrink
	}
	if o.PagedSize.IsZero() {
		o.PagedSize = def.PagedSize
	}
	if o.SettleDelay <= 0 {
		o.SettleDelay = def.SettleDelay
	}
	if o.RecencyGrace <= 0 {
		o.RecencyGrace = def.RecencyGrace
	}
	if o.CreateFocusDelay <= 0 {
		o.CreateFocusDelay = def.CreateFocusDelay
	}
	return o
}

// Owner is the host element a popover was opened from. An owner links at
// most one hover popover at a time.
type Owner interface {
	HoverPopover() *Popover
	SetHoverPopover(p *Popover)
}

// PopoverDeps are the collaborators of a popover.
type PopoverDeps struct {
	Workspace port.Workspace
	Surface   port.Surface
	Viewport  port.Viewport
	Scheduler port.Scheduler
	Resolver  port.ContentResolver
	Recency   port.RecencyTracker
	Opener    port.ExternalOpener
	Registry  *Registry
}

// PopoverConfig configures NewPopover.
type PopoverConfig struct {
	ID       entity.PanelID
	Owner    Owner
	Anchor   port.Anchor
	Position entity.Point
	Options  PopoverOptions
	Deps     PopoverDeps
}

// Popover controls one floating panel. Every method must be called on the
// UI loop.
type Popover struct {
	ctx  context.Context
	opts PopoverOptions

	ws       port.Workspace
	surface  port.Surface
	viewport port.Viewport
	sched    port.Scheduler
	resolver port.ContentResolver
	recency  port.RecencyTracker
	opener   port.ExternalOpener
	registry *Registry

	owner  Owner
	anchor port.Anchor
	panel  *entity.Panel
	binder *binder
	menu   port.Menu

	onTarget bool
	onHover  bool

	// abortCtx is cancelled on pin and on close; hover-tied work watches it.
	abortCtx context.Context
	abort    context.CancelFunc

	showCancel        func()
	whenShown         []func()
	unsubscribeLayout func()
}

// NewPopover creates a popover, registers it and subscribes to the layout
// of its private workspace. It is not shown until Show.
func NewPopover(ctx context.Context, cfg PopoverConfig) *Popover {
	opts := cfg.Options.withDefaults()
	ctx = logging.WithPanelID(logging.WithComponent(ctx, "popover"), string(cfg.ID))

	p := &Popover{
		ctx:      ctx,
		opts:     opts,
		ws:       cfg.Deps.Workspace,
		surface:  cfg.Deps.Surface,
		viewport: cfg.Deps.Viewport,
		sched:    cfg.Deps.Scheduler,
		resolver: cfg.Deps.Resolver,
		recency:  cfg.Deps.Recency,
		opener:   cfg.Deps.Opener,
		registry: cfg.Deps.Registry,
		owner:    cfg.Owner,
		anchor:   cfg.Anchor,
		panel:    entity.NewPanel(cfg.ID, opts.InitialSize),
		onTarget: true,
	}
	p.panel.Rect.X = cfg.Position.X
	p.panel.Rect.Y = cfg.Position.Y
	p.abortCtx, p.abort = context.WithCancel(context.Background())
	p.binder = newBinder(p)

	if p.registry != nil {
		p.registry.Register(p)
	}
	p.unsubscribeLayout = p.ws.OnLayoutChange(p.UpdateLeaves)

	logging.FromContext(ctx).Debug().Msg("popover created")
	return p
}

func (p *Popover) ID() entity.PanelID {
	return p.panel.ID
}

// Panel returns a snapshot of the panel state.
func (p *Popover) Panel() entity.Panel {
	return *p.panel
}

func (p *Popover) Pinned() bool {
	return p.panel.Pinned
}

func (p *Popover) Detaching() bool {
	return p.panel.Detaching
}

// Interactable exposes the pointer binding for the host, nil when detached.
func (p *Popover) Interactable() *interact.Interactable {
	return p.binder.inter
}

// HasView reports whether the popover hosts the view.
func (p *Popover) HasView(id entity.ViewID) bool {
	if p.panel.Phase == entity.PhaseDestroyed {
		return false
	}
	for _, v := range p.ws.Views() {
		if v.ID() == id {
			return true
		}
	}
	return false
}

// Views returns the hosted views.
func (p *Popover) Views() []port.View {
	if p.panel.Phase == entity.PhaseDestroyed {
		return nil
	}
	return p.ws.Views()
}

// ScheduleShow arms the first-show timer. When it fires the popover shows
// itself if it still wants to, and hides otherwise.
func (p *Popover) ScheduleShow(d time.Duration) {
	if p.panel.Detaching {
		return
	}
	p.cancelShowTimer()
	p.showCancel = p.sched.AfterFunc(d, func() {
		p.showCancel = nil
		if p.ShouldShowSelf() {
			p.Show()
			return
		}
		p.Hide()
	})
}

func (p *Popover) cancelShowTimer() {
	if p.showCancel != nil {
		p.showCancel()
		p.showCancel = nil
	}
}

// Show displays the panel. It has no effect once the popover is detaching.
func (p *Popover) Show() {
	if p.panel.Detaching {
		return
	}
	p.cancelShowTimer()
	p.linkOwner()

	p.panel.Visible = true
	if p.panel.Phase == entity.PhaseCreated {
		p.panel.Phase = entity.PhaseShown
	}
	p.surface.Show()

	if img := p.panel.Image; !img.IsZero() {
		p.panel.Rect.W = img.W
		p.panel.Rect.H = img.H + p.surface.HeaderHeight()
	}
	p.binder.attach()
	p.binder.reflow(interact.ActionResize, entity.Edges{Right: true, Bottom: true})
	p.binder.reflow(interact.ActionDrag, entity.Edges{})
	p.render()

	logging.FromContext(p.ctx).Debug().Stringer("rect", p.panel.Rect).Msg("popover shown")

	callbacks := p.whenShown
	p.whenShown = nil
	for _, fn := range callbacks {
		fn()
	}
}

// linkOwner makes p the owner's popover, closing a stale unpinned one.
func (p *Popover) linkOwner() {
	if p.owner == nil {
		return
	}
	if stale := p.owner.HoverPopover(); stale != nil && stale != p && !stale.Pinned() {
		logging.FromContext(p.ctx).Debug().Str("stale_id", string(stale.ID())).Msg("closing stale popover")
		stale.ExplicitHide()
	}
	p.owner.SetHoverPopover(p)
}

// WhenShown runs fn once the panel is shown, immediately if it already is.
func (p *Popover) WhenShown(fn func()) {
	if fn == nil || p.panel.Detaching {
		return
	}
	if p.panel.Visible {
		fn()
		return
	}
	p.whenShown = append(p.whenShown, fn)
}

// ShouldShowSelf reports whether anything still wants the panel on screen.
func (p *Popover) ShouldShowSelf() bool {
	if p.panel.Detaching {
		return false
	}
	shown := p.panel.Visible
	return p.onTarget || p.onHover || (shown && p.panel.Pinned) || p.menu != nil
}

// Hide closes the panel unless it is pinned, has a menu open or is hovered.
// Once committed the panel detaches every hosted view; teardown finishes
// when the hosted view count reaches zero. A hide during a content load is
// resumed by the load completion.
func (p *Popover) Hide() {
	if p.panel.Phase == entity.PhaseDestroyed {
		return
	}
	if !p.panel.Detaching && (p.panel.Pinned || p.menu != nil || p.onHover) {
		return
	}

	log := logging.FromContext(p.ctx)
	if !p.panel.Detaching {
		log.Debug().Msg("popover closing")
	}
	p.panel.Detaching = true
	p.panel.Phase = entity.PhaseClosing
	p.abort()
	p.cancelShowTimer()
	p.whenShown = nil
	p.panel.Visible = false
	p.surface.Hide()

	if p.panel.Opening {
		log.Debug().Msg("close deferred until content load settles")
		return
	}

	views := p.ws.Views()
	if len(views) == 0 {
		p.finalize()
		return
	}
	for _, v := range views {
		if err := p.ws.Detach(p.ctx, v.ID()); err != nil {
			log.Warn().Err(err).Str("view_id", string(v.ID())).Msg("failed to detach view")
		}
	}
	if len(p.ws.Views()) == 0 {
		p.finalize()
	}
}

func (p *Popover) finalize() {
	if p.panel.Phase == entity.PhaseDestroyed {
		return
	}
	log := logging.FromContext(p.ctx)

	if err := p.binder.release(); err != nil {
		log.Warn().Err(err).Msg("failed to release interaction binding")
	}
	if p.unsubscribeLayout != nil {
		p.unsubscribeLayout()
		p.unsubscribeLayout = nil
	}
	if p.registry != nil {
		p.registry.Unregister(p)
	}
	if p.owner != nil && p.owner.HoverPopover() == p {
		p.owner.SetHoverPopover(nil)
	}
	p.surface.Remove()
	p.panel.Phase = entity.PhaseDestroyed
	log.Debug().Msg("popover destroyed")
}

// ExplicitHide closes the panel regardless of pin, menu and hover state.
func (p *Popover) ExplicitHide() {
	p.hideMenu()
	p.onTarget = false
	p.onHover = false
	p.panel.Pinned = false
	p.Hide()
}

// TogglePin flips the pinned state.
func (p *Popover) TogglePin() {
	p.SetPinned(!p.panel.Pinned)
}

// SetPinned pins or unpins the panel and closes the active menu. Pinning
// aborts hover-tied work.
func (p *Popover) SetPinned(pinned bool) {
	if p.panel.Detaching || p.panel.Pinned == pinned {
		return
	}
	p.hideMenu()
	p.panel.Pinned = pinned
	if pinned {
		p.abort()
		p.abortCtx, p.abort = context.WithCancel(context.Background())
	}
	p.render()
}

// ToggleMinimized collapses the panel to its header or restores it.
func (p *Popover) ToggleMinimized() {
	p.SetMinimized(!p.panel.IsMinimized())
}

// SetMinimized collapses the panel to header-only height, storing the
// height to restore, or restores it and drops the max-height override.
func (p *Popover) SetMinimized(minimized bool) {
	if p.panel.Detaching || p.panel.IsMinimized() == minimized {
		return
	}
	header := p.surface.HeaderHeight()
	if minimized {
		p.panel.RestoreHeight = p.panel.Rect.H
		p.panel.Rect.H = header
		p.panel.MinHeight = header
		p.panel.MaxHeight = header
	} else {
		p.panel.Rect.H = p.panel.RestoreHeight
		p.panel.RestoreHeight = 0
		p.panel.MinHeight = 0
		p.panel.MaxHeight = 0
	}
	p.binder.reflow(interact.ActionDrag, entity.Edges{})
	p.render()
}

// DoubleTap pins the panel and toggles minimize.
func (p *Popover) DoubleTap() {
	p.SetPinned(true)
	p.ToggleMinimized()
}

// ToggleConstrainAspectRatio flips the aspect lock when a ratio is known.
func (p *Popover) ToggleConstrainAspectRatio() {
	p.setAspectLocked(!p.panel.AspectLocked)
}

func (p *Popover) setAspectLocked(locked bool) {
	if locked && p.panel.AspectRatio <= 0 {
		return
	}
	p.panel.AspectLocked = locked
	p.binder.setAspect(locked)
	p.render()
}

// UpdateLeaves recounts hosted views after a layout change.
func (p *Popover) UpdateLeaves() {
	if p.panel.Phase == entity.PhaseDestroyed {
		return
	}
	n := len(p.ws.Views())
	p.panel.LeafCount = n

	if n == 0 {
		p.ExplicitHide()
		return
	}
	if n > 1 && p.panel.AspectLocked {
		p.setAspectLocked(false)
	}
	if p.anchor != nil && !p.anchor.Attached() {
		p.onTarget = false
	}
	p.render()
}

// SetActiveMenu records the open context menu, closing a previous one.
func (p *Popover) SetActiveMenu(menu port.Menu) {
	if p.menu != nil && p.menu != menu {
		p.menu.Hide()
	}
	p.menu = menu
}

// MenuClosed clears the active menu after the host closed it.
func (p *Popover) MenuClosed() {
	p.menu = nil
}

func (p *Popover) hideMenu() {
	if p.menu == nil {
		return
	}
	m := p.menu
	p.menu = nil
	m.Hide()
}

// SetOnHover records whether the pointer is over the panel.
func (p *Popover) SetOnHover(v bool) {
	if p.panel.Detaching {
		return
	}
	p.onHover = v
}

// SetOnTarget records whether the pointer is over the anchor.
func (p *Popover) SetOnTarget(v bool) {
	if p.panel.Detaching {
		return
	}
	p.onTarget = v
}

// PointerDown forwards a pointer-down to the interaction binding.
func (p *Popover) PointerDown(target interact.Target, pt entity.Point, buttons int) {
	p.forward(func(i *interact.Interactable) error { return i.PointerDown(target, pt, buttons) })
}

func (p *Popover) PointerMove(pt entity.Point) {
	p.forward(func(i *interact.Interactable) error { return i.PointerMove(pt) })
}

func (p *Popover) PointerUp(pt entity.Point) {
	p.forward(func(i *interact.Interactable) error { return i.PointerUp(pt) })
}

func (p *Popover) forward(fn func(i *interact.Interactable) error) {
	i := p.binder.inter
	if i == nil {
		return
	}
	if err := fn(i); err != nil {
		logging.FromContext(p.ctx).Debug().Err(err).Msg("pointer event dropped")
	}
}

// afterHover runs fn after d or as soon as the abort signal fires,
// whichever comes first, exactly once.
func (p *Popover) afterHover(d time.Duration, fn func()) {
	var once sync.Once
	var stop func() bool
	run := func() {
		once.Do(func() {
			if stop != nil {
				stop()
			}
			fn()
		})
	}
	cancel := p.sched.AfterFunc(d, run)
	stop = context.AfterFunc(p.abortCtx, func() {
		p.sched.Post(func() {
			cancel()
			run()
		})
	})
}

func (p *Popover) render() {
	if p.panel.Phase == entity.PhaseDestroyed {
		return
	}
	p.surface.Render(*p.panel)
}
