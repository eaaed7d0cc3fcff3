package component

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/bnema/hoverpane/internal/application/port"
	"github.com/bnema/hoverpane/internal/application/port/mocks"
	"github.com/bnema/hoverpane/internal/domain/entity"
	"github.com/bnema/hoverpane/internal/logging"
	"github.com/bnema/hoverpane/internal/ui/mainloop"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testHeader = 30

func testContext() context.Context {
	return logging.WithContext(context.Background(), zerolog.Nop())
}

// fakeView records what the popover does to it.
type fakeView struct {
	id       entity.ViewID
	name     string
	content  *entity.ContentRef
	mode     entity.ViewMode
	natural  entity.Size
	openErr  error
	opened   []entity.OpenState
	focused  int
	eState   entity.EphemeralState
	applied  []entity.EphemeralState
	action   *port.Action
	actFocus int
}

func (v *fakeView) ID() entity.ViewID           { return v.id }
func (v *fakeView) DisplayName() string         { return v.name }
func (v *fakeView) Content() *entity.ContentRef { return v.content }
func (v *fakeView) Mode() entity.ViewMode       { return v.mode }
func (v *fakeView) NaturalSize() entity.Size    { return v.natural }
func (v *fakeView) Focus()                      { v.focused++ }
func (v *fakeView) FocusAction()                { v.actFocus++ }
func (v *fakeView) ShowAction(a port.Action)    { v.action = &a }

func (v *fakeView) Kind() entity.ContentKind {
	if v.content == nil {
		return entity.KindUnsupported
	}
	return v.content.Kind
}

func (v *fakeView) Open(_ context.Context, ref entity.ContentRef, st entity.OpenState) error {
	v.opened = append(v.opened, st)
	if v.openErr != nil {
		return v.openErr
	}
	r := ref
	v.content = &r
	v.mode = st.Mode
	v.name = ref.Name()
	return nil
}

func (v *fakeView) EphemeralState() entity.EphemeralState { return v.eState }

func (v *fakeView) SetEphemeralState(st entity.EphemeralState) {
	v.eState = st
	v.applied = append(v.applied, st)
}

// fakeWorkspace notifies layout listeners through the scheduler, like the
// coalesced notifications of the real workspace.
type fakeWorkspace struct {
	sched     *mainloop.Manual
	views     []port.View
	listeners map[int]func()
	nextID    int
	nextView  func(id entity.ViewID) *fakeView
	detachErr error
}

func newFakeWorkspace(sched *mainloop.Manual) *fakeWorkspace {
	return &fakeWorkspace{sched: sched, listeners: map[int]func(){}}
}

func (w *fakeWorkspace) CreateView(context.Context) (port.View, error) {
	w.nextID++
	id := entity.ViewID(fmt.Sprintf("v%d", w.nextID))
	v := &fakeView{id: id}
	if w.nextView != nil {
		v = w.nextView(id)
	}
	w.views = append(w.views, v)
	w.notify()
	return v, nil
}

func (w *fakeWorkspace) Views() []port.View {
	return append([]port.View(nil), w.views...)
}

func (w *fakeWorkspace) Detach(_ context.Context, id entity.ViewID) error {
	if w.detachErr != nil {
		return w.detachErr
	}
	for i, v := range w.views {
		if v.ID() == id {
			w.views = append(w.views[:i], w.views[i+1:]...)
			break
		}
	}
	w.notify()
	return nil
}

func (w *fakeWorkspace) OnLayoutChange(fn func()) func() {
	key := len(w.listeners) + 1
	for w.listeners[key] != nil {
		key++
	}
	w.listeners[key] = fn
	return func() { delete(w.listeners, key) }
}

func (w *fakeWorkspace) notify() {
	for _, fn := range w.listeners {
		w.sched.Post(fn)
	}
}

func (w *fakeWorkspace) addView(v *fakeView) {
	w.views = append(w.views, v)
	w.notify()
}

type fakeOwner struct {
	popover *Popover
}

func (o *fakeOwner) HoverPopover() *Popover     { return o.popover }
func (o *fakeOwner) SetHoverPopover(p *Popover) { o.popover = p }

type harness struct {
	t        *testing.T
	sched    *mainloop.Manual
	ws       *fakeWorkspace
	surface  *mocks.MockSurface
	viewport *mocks.MockViewport
	resolver *mocks.MockContentResolver
	recency  *mocks.MockRecencyTracker
	opener   *mocks.MockExternalOpener
	registry *Registry
	owner    *fakeOwner

	renders int
	removed int
	last    entity.Panel
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		t:        t,
		sched:    mainloop.NewManual(),
		surface:  mocks.NewMockSurface(t),
		viewport: mocks.NewMockViewport(t),
		resolver: mocks.NewMockContentResolver(t),
		recency:  mocks.NewMockRecencyTracker(t),
		opener:   mocks.NewMockExternalOpener(t),
		registry: NewRegistry(),
		owner:    &fakeOwner{},
	}
	h.ws = newFakeWorkspace(h.sched)

	h.surface.EXPECT().HeaderHeight().Return(testHeader).Maybe()
	h.surface.EXPECT().Show().Maybe()
	h.surface.EXPECT().Hide().Maybe()
	h.surface.EXPECT().Render(mock.Anything).Run(func(p entity.Panel) {
		h.renders++
		h.last = p
	}).Maybe()
	h.surface.EXPECT().Remove().Run(func() { h.removed++ }).Maybe()
	h.viewport.EXPECT().Bounds().Return(entity.Rect{W: 1920, H: 1080}).Maybe()
	h.viewport.EXPECT().Chrome().Return(entity.Chrome{}).Maybe()
	return h
}

// newPopover creates a popover with its own private workspace, which
// becomes h.ws.
func (h *harness) newPopover(id string, opts PopoverOptions) *Popover {
	h.ws = newFakeWorkspace(h.sched)
	return NewPopover(testContext(), PopoverConfig{
		ID:       entity.PanelID(id),
		Owner:    h.owner,
		Position: entity.Point{X: 200, Y: 150},
		Options:  opts,
		Deps: PopoverDeps{
			Workspace: h.ws,
			Surface:   h.surface,
			Viewport:  h.viewport,
			Scheduler: h.sched,
			Resolver:  h.resolver,
			Recency:   h.recency,
			Opener:    h.opener,
			Registry:  h.registry,
		},
	})
}

func testOptions() PopoverOptions {
	opts := DefaultPopoverOptions()
	opts.AutoFocus = false
	return opts
}

// shownWithView returns a shown popover hosting one empty view.
func (h *harness) shownWithView(id string) (*Popover, *fakeView) {
	p := h.newPopover(id, testOptions())
	v := &fakeView{id: entity.ViewID(id + "-view")}
	h.ws.addView(v)
	h.sched.Flush()
	p.Show()
	return p, v
}

func TestPopover_DetachingIsMonotonic(t *testing.T) {
	h := newHarness(t)
	p, _ := h.shownWithView("p1")

	p.SetOnTarget(false)
	p.Hide()
	require.True(t, p.Panel().Detaching)

	p.Show()
	p.SetPinned(true)
	p.SetOnHover(true)
	h.sched.Flush()

	panel := p.Panel()
	assert.True(t, panel.Detaching)
	assert.False(t, panel.Visible)
	assert.False(t, panel.Pinned)
	assert.False(t, p.ShouldShowSelf())
}

func TestPopover_HideGates(t *testing.T) {
	tests := []struct {
		name  string
		setup func(p *Popover, menu *mocks.MockMenu)
	}{
		{name: "pinned", setup: func(p *Popover, _ *mocks.MockMenu) { p.SetPinned(true) }},
		{name: "menu open", setup: func(p *Popover, menu *mocks.MockMenu) { p.SetActiveMenu(menu) }},
		{name: "hovered", setup: func(p *Popover, _ *mocks.MockMenu) { p.SetOnHover(true) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			p, _ := h.shownWithView("p1")
			menu := mocks.NewMockMenu(t)
			menu.EXPECT().Hide().Maybe()
			tt.setup(p, menu)

			p.Hide()
			assert.False(t, p.Panel().Detaching)
			assert.True(t, p.Panel().Visible)
		})
	}
}

func TestPopover_ClearingGatesCommitsToClose(t *testing.T) {
	h := newHarness(t)
	p, _ := h.shownWithView("p1")
	menu := mocks.NewMockMenu(t)

	p.SetPinned(true)
	p.SetActiveMenu(menu)
	p.SetOnHover(true)

	p.SetPinned(false)
	p.MenuClosed()
	p.SetOnHover(false)
	p.Hide()
	h.sched.Flush()

	assert.True(t, p.Panel().Detaching)
	assert.Equal(t, entity.PhaseDestroyed, p.Panel().Phase)
	assert.Equal(t, 1, h.removed)
}

func TestPopover_PinThenHideStaysOpen(t *testing.T) {
	h := newHarness(t)
	p, _ := h.shownWithView("p1")
	p.SetOnTarget(false)

	p.TogglePin()
	p.Hide()
	assert.True(t, p.Panel().Visible)
	assert.False(t, p.Panel().Detaching)

	p.TogglePin()
	p.Hide()
	assert.True(t, p.Panel().Detaching)
}

func TestPopover_DetachCascadeFinalizesAtZeroViews(t *testing.T) {
	h := newHarness(t)
	p := h.newPopover("p1", testOptions())
	h.ws.addView(&fakeView{id: "a"})
	h.ws.addView(&fakeView{id: "b"})
	h.sched.Flush()
	p.Show()
	require.Equal(t, 2, p.Panel().LeafCount)

	p.ExplicitHide()
	assert.Equal(t, entity.PhaseDestroyed, p.Panel().Phase)
	assert.Empty(t, h.ws.Views())

	h.sched.Flush()
	assert.Equal(t, 1, h.removed, "teardown must happen exactly once")
	_, ok := h.registry.Lookup("p1")
	assert.False(t, ok)
	assert.Empty(t, h.ws.listeners)
	assert.Nil(t, p.Interactable())
}

func TestPopover_DetachErrorWaitsForLayoutChange(t *testing.T) {
	h := newHarness(t)
	p, _ := h.shownWithView("p1")
	h.ws.detachErr = errors.New("view busy")

	p.ExplicitHide()
	assert.Equal(t, entity.PhaseClosing, p.Panel().Phase)

	// The host eventually drops the view on its own.
	h.ws.detachErr = nil
	h.ws.views = nil
	h.ws.notify()
	h.sched.Flush()
	assert.Equal(t, entity.PhaseDestroyed, p.Panel().Phase)
}

func TestPopover_UpdateLeavesZeroTearsDownEvenAfterPin(t *testing.T) {
	h := newHarness(t)
	p, v := h.shownWithView("p1")

	p.SetPinned(true)
	p.SetPinned(false)
	p.SetPinned(true)
	require.NoError(t, h.ws.Detach(testContext(), v.ID()))
	h.sched.Flush()

	assert.True(t, p.Panel().Detaching)
	assert.Equal(t, entity.PhaseDestroyed, p.Panel().Phase)
}

func TestPopover_UpdateLeavesMultipleViewsDropsAspectLock(t *testing.T) {
	h := newHarness(t)
	p, _ := h.shownWithView("p1")
	p.panel.AspectRatio = 2
	p.ToggleConstrainAspectRatio()
	require.True(t, p.Panel().AspectLocked)

	h.ws.addView(&fakeView{id: "second"})
	h.sched.Flush()

	assert.False(t, p.Panel().AspectLocked)
	assert.Equal(t, 2, p.Panel().LeafCount)
}

func TestPopover_UpdateLeavesDetachedAnchorClearsTarget(t *testing.T) {
	h := newHarness(t)
	anchor := mocks.NewMockAnchor(t)
	anchor.EXPECT().Attached().Return(false)

	p := NewPopover(testContext(), PopoverConfig{
		ID:     "p1",
		Anchor: anchor,
		Deps: PopoverDeps{
			Workspace: h.ws, Surface: h.surface, Viewport: h.viewport,
			Scheduler: h.sched, Resolver: h.resolver, Recency: h.recency,
		},
	})
	h.ws.addView(&fakeView{id: "a"})
	h.sched.Flush()

	assert.False(t, p.ShouldShowSelf())
}

func TestPopover_ShouldShowSelf(t *testing.T) {
	h := newHarness(t)
	p := h.newPopover("p1", testOptions())
	assert.True(t, p.ShouldShowSelf(), "a new popover is on its target")

	p.SetOnTarget(false)
	assert.False(t, p.ShouldShowSelf())

	p.SetPinned(true)
	assert.False(t, p.ShouldShowSelf(), "pin only counts once shown")

	h.ws.addView(&fakeView{id: "a"})
	h.sched.Flush()
	p.Show()
	assert.True(t, p.ShouldShowSelf())
}

func TestPopover_MinimizeRoundTrip(t *testing.T) {
	h := newHarness(t)
	p, _ := h.shownWithView("p1")
	before := p.Panel().Rect.H

	p.ToggleMinimized()
	min := p.Panel()
	assert.True(t, min.IsMinimized())
	assert.Equal(t, testHeader, min.Rect.H)
	assert.Equal(t, before, min.RestoreHeight)
	assert.Equal(t, testHeader, min.MaxHeight)

	p.ToggleMinimized()
	restored := p.Panel()
	assert.False(t, restored.IsMinimized())
	assert.Equal(t, before, restored.Rect.H)
	assert.Zero(t, restored.MaxHeight)
}

func TestPopover_DoubleTapPinsAndMinimizes(t *testing.T) {
	h := newHarness(t)
	p, _ := h.shownWithView("p1")

	p.DoubleTap()
	assert.True(t, p.Panel().Pinned)
	assert.True(t, p.Panel().IsMinimized())

	p.DoubleTap()
	assert.True(t, p.Panel().Pinned)
	assert.False(t, p.Panel().IsMinimized())
}

func TestPopover_ShowClosesStaleUnpinnedSibling(t *testing.T) {
	h := newHarness(t)
	stale, _ := h.shownWithView("old")
	require.Same(t, stale, h.owner.popover)

	fresh, _ := h.shownWithView("new")
	h.sched.Flush()

	assert.True(t, stale.Panel().Detaching)
	assert.Same(t, fresh, h.owner.popover)
}

func TestPopover_ShowKeepsPinnedSibling(t *testing.T) {
	h := newHarness(t)
	pinned, _ := h.shownWithView("old")
	pinned.SetPinned(true)

	h.shownWithView("new")
	assert.False(t, pinned.Panel().Detaching)
}

func TestPopover_FinalizeUnlinksOwner(t *testing.T) {
	h := newHarness(t)
	p, _ := h.shownWithView("p1")

	p.ExplicitHide()
	h.sched.Flush()
	assert.Nil(t, h.owner.popover)
}

func TestPopover_ScheduleShowRespectsIntent(t *testing.T) {
	h := newHarness(t)
	p := h.newPopover("p1", testOptions())
	p.ScheduleShow(DefaultTriggerWait)

	h.sched.Advance(DefaultTriggerWait)
	assert.True(t, p.Panel().Visible)

	q := h.newPopover("p2", testOptions())
	q.ScheduleShow(DefaultTriggerWait)
	q.SetOnTarget(false)
	h.sched.Advance(DefaultTriggerWait)
	assert.True(t, q.Panel().Detaching)
}

func TestPopover_HideCancelsPendingShow(t *testing.T) {
	h := newHarness(t)
	p := h.newPopover("p1", testOptions())
	p.ScheduleShow(DefaultTriggerWait)

	p.ExplicitHide()
	h.sched.Advance(DefaultTriggerWait)
	assert.False(t, p.Panel().Visible)
	assert.Zero(t, h.sched.PendingTimers())
}

func TestPopover_ExplicitHideClosesMenu(t *testing.T) {
	h := newHarness(t)
	p, _ := h.shownWithView("p1")
	menu := mocks.NewMockMenu(t)
	menu.EXPECT().Hide().Once()
	p.SetActiveMenu(menu)

	p.ExplicitHide()
	assert.True(t, p.Panel().Detaching)
}

func TestPopover_TogglePinClosesMenu(t *testing.T) {
	h := newHarness(t)
	p, _ := h.shownWithView("p1")
	menu := mocks.NewMockMenu(t)
	menu.EXPECT().Hide().Once()
	p.SetActiveMenu(menu)

	p.TogglePin()
	assert.True(t, p.Panel().Pinned)

	// The menu gate is gone, so unpinning lets a hide through.
	p.TogglePin()
	p.Hide()
	assert.True(t, p.Panel().Detaching)
}

func TestPopover_SetActiveMenuReplacesPrevious(t *testing.T) {
	h := newHarness(t)
	p, _ := h.shownWithView("p1")
	first := mocks.NewMockMenu(t)
	first.EXPECT().Hide().Once()
	second := mocks.NewMockMenu(t)

	p.SetActiveMenu(first)
	p.SetActiveMenu(second)
	p.Hide()
	assert.False(t, p.Panel().Detaching)
}

func TestPopover_WhenShownRunsOnce(t *testing.T) {
	h := newHarness(t)
	p := h.newPopover("p1", testOptions())
	calls := 0
	p.WhenShown(func() { calls++ })

	h.ws.addView(&fakeView{id: "a"})
	h.sched.Flush()
	p.Show()
	p.Show()
	assert.Equal(t, 1, calls)

	p.WhenShown(func() { calls++ })
	assert.Equal(t, 2, calls, "already shown runs immediately")
}
