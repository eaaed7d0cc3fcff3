package component

import (
	"testing"

	"github.com/bnema/hoverpane/internal/application/port/mocks"
	"github.com/bnema/hoverpane/internal/domain/entity"
	"github.com/bnema/hoverpane/internal/ui/interact"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var titleBar = interact.Target{Kind: interact.TargetTitleBar}

func edge(e entity.Edges) interact.Target {
	return interact.Target{Kind: interact.TargetEdge, Edges: e}
}

// newMenu returns a menu that expects to be closed exactly once.
func newMenu(t *testing.T) *mocks.MockMenu {
	m := mocks.NewMockMenu(t)
	m.EXPECT().Hide().Once()
	return m
}

func TestBinder_SnapLeftThenUnsnapRestoresOriginal(t *testing.T) {
	h := newHarness(t)
	p, _ := h.shownWithView("p1")
	original := p.Panel().Rect
	require.Equal(t, entity.Rect{X: 200, Y: 150, W: 400, H: 300}, original)

	p.PointerDown(titleBar, entity.Point{X: 300, Y: 160}, 1)
	p.PointerMove(entity.Point{X: 5, Y: 300})

	snapped := p.Panel()
	assert.Equal(t, entity.SnapLeft, snapped.Snap)
	assert.Equal(t, entity.Rect{X: 0, Y: 0, W: 960, H: 1080}, snapped.Rect)

	p.PointerMove(entity.Point{X: 500, Y: 400})
	restored := p.Panel()
	assert.Equal(t, entity.SnapNone, restored.Snap)
	assert.Equal(t, original.Size(), restored.Rect.Size())
	// The pointer keeps its relative spot on the title bar: 500/960 of the
	// snapped width maps to 208 of the restored 400.
	assert.Equal(t, entity.Rect{X: 292, Y: 400, W: 400, H: 300}, restored.Rect)

	// Later ticks continue from the pointer anchor without a jump.
	p.PointerMove(entity.Point{X: 510, Y: 410})
	assert.Equal(t, entity.Rect{X: 302, Y: 410, W: 400, H: 300}, p.Panel().Rect)

	p.PointerUp(entity.Point{X: 510, Y: 410})
	assert.False(t, p.Panel().Dragging)
}

func TestBinder_SnappedPanelHoldsNearTop(t *testing.T) {
	h := newHarness(t)
	p, _ := h.shownWithView("p1")

	p.PointerDown(titleBar, entity.Point{X: 300, Y: 160}, 1)
	p.PointerMove(entity.Point{X: 1915, Y: 300})
	require.Equal(t, entity.SnapRight, p.Panel().Snap)
	snapped := p.Panel().Rect
	assert.Equal(t, entity.Rect{X: 960, Y: 0, W: 960, H: 1080}, snapped)

	p.PointerMove(entity.Point{X: 1200, Y: 50})
	assert.Equal(t, entity.SnapRight, p.Panel().Snap)
	assert.Equal(t, snapped, p.Panel().Rect)
}

func TestBinder_TopZoneFillsViewport(t *testing.T) {
	h := newHarness(t)
	p, _ := h.shownWithView("p1")

	p.PointerDown(titleBar, entity.Point{X: 300, Y: 160}, 1)
	p.PointerMove(entity.Point{X: 800, Y: 10})

	assert.Equal(t, entity.SnapViewport, p.Panel().Snap)
	assert.Equal(t, entity.Rect{W: 1920, H: 1080}, p.Panel().Rect)
}

func TestBinder_SnapDisabled(t *testing.T) {
	h := newHarness(t)
	opts := testOptions()
	opts.SnapToEdges = false
	p := h.newPopover("p1", opts)
	h.ws.addView(&fakeView{id: "a"})
	h.sched.Flush()
	p.Show()

	p.PointerDown(titleBar, entity.Point{X: 300, Y: 160}, 1)
	p.PointerMove(entity.Point{X: 5, Y: 300})

	assert.Equal(t, entity.SnapNone, p.Panel().Snap)
	assert.Equal(t, entity.Rect{X: -95, Y: 290, W: 400, H: 300}, p.Panel().Rect)
}

func TestBinder_DragKeepsGripOnScreen(t *testing.T) {
	h := newHarness(t)
	opts := testOptions()
	opts.SnapToEdges = false
	p := h.newPopover("p1", opts)
	h.ws.addView(&fakeView{id: "a"})
	h.sched.Flush()
	p.Show()

	p.PointerDown(titleBar, entity.Point{X: 300, Y: 160}, 1)
	p.PointerMove(entity.Point{X: -1000, Y: 5000})

	r := p.Panel().Rect
	assert.Equal(t, -400+DefaultPopoverOptions().Grip, r.X)
	assert.Equal(t, 1080-testHeader, r.Y)
}

func TestBinder_UserResizePins(t *testing.T) {
	h := newHarness(t)
	p, _ := h.shownWithView("p1")
	require.False(t, p.Pinned(), "the show reflow must not pin")

	p.PointerDown(edge(entity.Edges{Right: true, Bottom: true}), entity.Point{X: 600, Y: 450}, 1)
	assert.True(t, p.Pinned())
	assert.True(t, p.Panel().Resizing)

	p.PointerMove(entity.Point{X: 700, Y: 500})
	assert.Equal(t, entity.Rect{X: 200, Y: 150, W: 500, H: 350}, p.Panel().Rect)

	p.PointerUp(entity.Point{X: 700, Y: 500})
	assert.False(t, p.Panel().Resizing)
}

func TestBinder_UserResizeClosesMenu(t *testing.T) {
	h := newHarness(t)
	p, _ := h.shownWithView("p1")
	menu := newMenu(t)
	p.SetActiveMenu(menu)

	p.PointerDown(edge(entity.Edges{Bottom: true}), entity.Point{X: 400, Y: 450}, 1)
	p.PointerUp(entity.Point{X: 400, Y: 450})
	p.SetPinned(false)
	p.Hide()
	assert.True(t, p.Panel().Detaching, "menu must be gone after the resize started")
}

func TestBinder_ResizeRespectsMinimumSize(t *testing.T) {
	h := newHarness(t)
	p, _ := h.shownWithView("p1")

	p.PointerDown(edge(entity.Edges{Left: true, Top: true}), entity.Point{X: 200, Y: 150}, 1)
	p.PointerMove(entity.Point{X: 1000, Y: 1000})

	r := p.Panel().Rect
	assert.Equal(t, DefaultPopoverOptions().MinWidth, r.W)
	assert.Equal(t, testHeader, r.H)
	assert.Equal(t, 600, r.Right(), "right edge stays anchored")
	assert.Equal(t, 450, r.Bottom(), "bottom edge stays anchored")
}

func TestBinder_ResizeAboveHeaderClearsMinimize(t *testing.T) {
	h := newHarness(t)
	p, _ := h.shownWithView("p1")
	p.SetMinimized(true)
	require.True(t, p.Panel().IsMinimized())

	p.PointerDown(edge(entity.Edges{Bottom: true}), entity.Point{X: 400, Y: 180}, 1)
	p.PointerMove(entity.Point{X: 400, Y: 380})
	p.PointerUp(entity.Point{X: 400, Y: 380})

	panel := p.Panel()
	assert.False(t, panel.IsMinimized())
	assert.Equal(t, 230, panel.Rect.H)
	assert.Zero(t, panel.MinHeight)
}

func openImage(t *testing.T, h *harness, p *Popover, v *fakeView) {
	t.Helper()
	v.natural = entity.Size{W: 800, H: 600}
	ref := entity.ContentRef{Path: "assets/diagram.png", Kind: entity.KindImage}
	require.NoError(t, p.OpenFile(testContext(), ref, entity.OpenState{Mode: entity.ModePreview}, v))
	h.sched.CompleteJobs()
}

func TestBinder_ImageSizesToNaturalSizePlusHeader(t *testing.T) {
	h := newHarness(t)
	p, v := h.shownWithView("p1")
	openImage(t, h, p, v)

	panel := p.Panel()
	assert.Equal(t, 800, panel.Rect.W)
	assert.Equal(t, 630, panel.Rect.H)
	assert.InDelta(t, 4.0/3.0, panel.AspectRatio, 0.001)
	assert.True(t, panel.AspectLocked)
}

func TestBinder_AspectLockAppliesToContentBox(t *testing.T) {
	tests := []struct {
		name  string
		edges entity.Edges
		from  entity.Point
		to    entity.Point
	}{
		{name: "right edge", edges: entity.Edges{Right: true}, from: entity.Point{X: 1000, Y: 400}, to: entity.Point{X: 900, Y: 400}},
		{name: "bottom edge", edges: entity.Edges{Bottom: true}, from: entity.Point{X: 600, Y: 780}, to: entity.Point{X: 600, Y: 660}},
		{name: "top left corner", edges: entity.Edges{Top: true, Left: true}, from: entity.Point{X: 200, Y: 150}, to: entity.Point{X: 260, Y: 240}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			p, v := h.shownWithView("p1")
			openImage(t, h, p, v)
			before := p.Panel().Rect

			p.PointerDown(edge(tt.edges), tt.from, 1)
			p.PointerMove(tt.to)
			mid := p.Panel().Rect
			p.PointerUp(tt.to)
			after := p.Panel().Rect

			assert.NotEqual(t, before, mid)
			ratio := p.Panel().AspectRatio
			for _, r := range []entity.Rect{mid, after} {
				assert.InDelta(t, float64(r.W), float64(r.H-testHeader)*ratio, 1.0, "rect %s", r)
			}
			if tt.edges.Left {
				assert.Equal(t, before.Right(), after.Right())
			}
			if tt.edges.Top {
				assert.Equal(t, before.Bottom(), after.Bottom())
			}
		})
	}
}

func TestBinder_AspectLockWidthDrivenExact(t *testing.T) {
	h := newHarness(t)
	p, v := h.shownWithView("p1")
	openImage(t, h, p, v)

	p.PointerDown(edge(entity.Edges{Right: true}), entity.Point{X: 1000, Y: 400}, 1)
	p.PointerMove(entity.Point{X: 900, Y: 400})

	assert.Equal(t, entity.Rect{X: 200, Y: 150, W: 700, H: 555}, p.Panel().Rect)
}

func TestBinder_AspectToggleOff(t *testing.T) {
	h := newHarness(t)
	p, v := h.shownWithView("p1")
	openImage(t, h, p, v)
	p.ToggleConstrainAspectRatio()
	require.False(t, p.Panel().AspectLocked)

	p.PointerDown(edge(entity.Edges{Right: true}), entity.Point{X: 1000, Y: 400}, 1)
	p.PointerMove(entity.Point{X: 900, Y: 400})

	assert.Equal(t, entity.Rect{X: 200, Y: 150, W: 700, H: 630}, p.Panel().Rect)
}

func TestBinder_ToggleAspectWithoutRatioIsNoop(t *testing.T) {
	h := newHarness(t)
	p, _ := h.shownWithView("p1")

	p.ToggleConstrainAspectRatio()
	assert.False(t, p.Panel().AspectLocked)
}

func TestBinder_ReleasedOnClose(t *testing.T) {
	h := newHarness(t)
	p, _ := h.shownWithView("p1")
	inter := p.Interactable()
	require.NotNil(t, inter)

	p.ExplicitHide()
	assert.Nil(t, p.Interactable())
	assert.ErrorIs(t, inter.Reflow(interact.ActionDrag, entity.Edges{}), interact.ErrReleased)

	// Pointer events after close are dropped.
	p.PointerDown(titleBar, entity.Point{X: 300, Y: 160}, 1)
	p.PointerMove(entity.Point{X: 5, Y: 300})
	assert.Equal(t, entity.SnapNone, p.Panel().Snap)
}
