package interact

import (
	"errors"
	"testing"
	"time"

	"github.com/bnema/hoverpane/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type box struct {
	r entity.Rect
}

func (b *box) get() entity.Rect { return b.r }

func TestInteractable_DragFromTitleBar(t *testing.T) {
	b := &box{r: entity.Rect{X: 100, Y: 100, W: 300, H: 200}}
	var events []string
	i := New(b.get).Draggable(DragOptions{
		Listeners: Listeners{
			Start: func(s *Session) { events = append(events, "start") },
			Move: func(s *Session) {
				events = append(events, "move")
				b.r = s.Rect
			},
			End: func(s *Session) { events = append(events, "end") },
		},
	})

	require.NoError(t, i.PointerDown(Target{Kind: TargetTitleBar}, entity.Point{X: 150, Y: 110}, 1))
	require.True(t, i.Interacting())
	require.NoError(t, i.PointerMove(entity.Point{X: 170, Y: 140}))
	require.NoError(t, i.PointerUp(entity.Point{X: 170, Y: 140}))

	assert.Equal(t, entity.Rect{X: 120, Y: 130, W: 300, H: 200}, b.r)
	assert.Equal(t, []string{"start", "move", "end"}, events)
	assert.False(t, i.Interacting())
}

func TestInteractable_ContentDoesNotDrag(t *testing.T) {
	b := &box{r: entity.Rect{W: 100, H: 100}}
	started := false
	i := New(b.get).Draggable(DragOptions{Listeners: Listeners{Start: func(*Session) { started = true }}})

	require.NoError(t, i.PointerDown(Target{Kind: TargetContent}, entity.Point{X: 10, Y: 50}, 1))
	assert.False(t, started)
	assert.False(t, i.Interacting())
}

func TestInteractable_ResizeEdges(t *testing.T) {
	tests := []struct {
		name  string
		edges entity.Edges
		move  entity.Point
		want  entity.Rect
	}{
		{name: "bottom right", edges: entity.Edges{Bottom: true, Right: true}, move: entity.Point{X: 20, Y: 10}, want: entity.Rect{X: 100, Y: 100, W: 320, H: 210}},
		{name: "top left", edges: entity.Edges{Top: true, Left: true}, move: entity.Point{X: 20, Y: 10}, want: entity.Rect{X: 120, Y: 110, W: 280, H: 190}},
		{name: "left only", edges: entity.Edges{Left: true}, move: entity.Point{X: -30, Y: 99}, want: entity.Rect{X: 70, Y: 100, W: 330, H: 200}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &box{r: entity.Rect{X: 100, Y: 100, W: 300, H: 200}}
			i := New(b.get).Resizable(ResizeOptions{
				Listeners: Listeners{Move: func(s *Session) { b.r = s.Rect }},
			})
			require.NoError(t, i.PointerDown(Target{Kind: TargetEdge, Edges: tt.edges}, entity.Point{}, 1))
			require.NoError(t, i.PointerMove(tt.move))
			assert.Equal(t, tt.want, b.r)
		})
	}
}

func TestInteractable_ModifiersRunInOrder(t *testing.T) {
	b := &box{r: entity.Rect{W: 100, H: 100}}
	var order []string
	first := ModifierFunc(func(s *Session, r entity.Rect) entity.Rect {
		order = append(order, "first")
		r.X = 5
		return r
	})
	second := ModifierFunc(func(s *Session, r entity.Rect) entity.Rect {
		order = append(order, "second")
		r.X *= 2
		return r
	})
	i := New(b.get).Draggable(DragOptions{
		Modifiers: []Modifier{first, second},
		Listeners: Listeners{Move: func(s *Session) { b.r = s.Rect }},
	})

	require.NoError(t, i.PointerDown(Target{Kind: TargetTitleBar}, entity.Point{}, 1))
	require.NoError(t, i.PointerMove(entity.Point{X: 50}))
	assert.Equal(t, 10, b.r.X)
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestToggle_Disabled(t *testing.T) {
	tg := &Toggle{Modifier: ModifierFunc(func(s *Session, r entity.Rect) entity.Rect {
		r.W = 1
		return r
	})}
	r := entity.Rect{W: 50}
	assert.Equal(t, 50, tg.Modify(&Session{}, r).W)
	tg.Enabled = true
	assert.Equal(t, 1, tg.Modify(&Session{}, r).W)
}

func TestInteractable_ReflowHasNoButtons(t *testing.T) {
	b := &box{r: entity.Rect{X: 900, Y: 10, W: 300, H: 200}}
	var seen *Session
	i := New(b.get).Draggable(DragOptions{
		Modifiers: []Modifier{ModifierFunc(func(s *Session, r entity.Rect) entity.Rect {
			if s.Reflow {
				r.X = 800 - r.W
			}
			return r
		})},
		Listeners: Listeners{
			Start: func(s *Session) { seen = s },
			Move:  func(s *Session) { b.r = s.Rect },
		},
	})

	require.NoError(t, i.Reflow(ActionDrag, entity.Edges{}))
	require.NotNil(t, seen)
	assert.True(t, seen.Reflow)
	assert.Equal(t, 0, seen.Buttons)
	assert.False(t, seen.UserDriven())
	assert.Equal(t, 500, b.r.X)
	assert.False(t, i.Interacting())
}

func TestInteractable_ReflowFromEndListener(t *testing.T) {
	b := &box{r: entity.Rect{W: 100, H: 100}}
	dragReflows := 0
	var i *Interactable
	i = New(b.get).
		Draggable(DragOptions{Listeners: Listeners{Start: func(*Session) { dragReflows++ }}}).
		Resizable(ResizeOptions{Listeners: Listeners{End: func(*Session) {
			require.NoError(t, i.Reflow(ActionDrag, entity.Edges{}))
		}}})

	require.NoError(t, i.Reflow(ActionResize, entity.Edges{Right: true, Bottom: true}))
	assert.Equal(t, 1, dragReflows)
}

func TestSession_RestartAnchorsAtPointer(t *testing.T) {
	b := &box{r: entity.Rect{X: 0, Y: 0, W: 500, H: 500}}
	var i *Interactable
	restarted := false
	i = New(b.get).Draggable(DragOptions{Listeners: Listeners{Move: func(s *Session) {
		if !restarted {
			restarted = true
			s.Restart(entity.Rect{X: 40, Y: 70, W: 200, H: 100})
			b.r = s.Rect
			return
		}
		b.r = s.Rect
	}}})

	require.NoError(t, i.PointerDown(Target{Kind: TargetTitleBar}, entity.Point{X: 10, Y: 10}, 1))
	require.NoError(t, i.PointerMove(entity.Point{X: 100, Y: 80}))
	require.NoError(t, i.PointerMove(entity.Point{X: 110, Y: 85}))
	assert.Equal(t, entity.Rect{X: 50, Y: 75, W: 200, H: 100}, b.r)
}

func TestInteractable_DoubleTap(t *testing.T) {
	now := time.Unix(0, 0)
	b := &box{r: entity.Rect{W: 100, H: 100}}
	taps := 0
	i := New(b.get).
		WithClock(func() time.Time { return now }).
		Draggable(DragOptions{}).
		OnDoubleTap(func() { taps++ })

	title := Target{Kind: TargetTitleBar}
	require.NoError(t, i.PointerDown(title, entity.Point{}, 1))
	require.NoError(t, i.PointerUp(entity.Point{}))
	now = now.Add(100 * time.Millisecond)
	require.NoError(t, i.PointerDown(title, entity.Point{}, 1))
	assert.Equal(t, 1, taps)
	assert.False(t, i.Interacting())

	// Slow taps are two separate drags.
	now = now.Add(time.Second)
	require.NoError(t, i.PointerDown(title, entity.Point{}, 1))
	require.NoError(t, i.PointerUp(entity.Point{}))
	now = now.Add(time.Second)
	require.NoError(t, i.PointerDown(title, entity.Point{}, 1))
	assert.Equal(t, 1, taps)
}

func TestInteractable_UnsetReleases(t *testing.T) {
	i := New(func() entity.Rect { return entity.Rect{} }).Draggable(DragOptions{})

	require.NoError(t, i.Unset())
	assert.True(t, errors.Is(i.Unset(), ErrReleased))
	assert.ErrorIs(t, i.PointerDown(Target{Kind: TargetTitleBar}, entity.Point{}, 1), ErrReleased)
	assert.ErrorIs(t, i.Reflow(ActionDrag, entity.Edges{}), ErrReleased)
}
