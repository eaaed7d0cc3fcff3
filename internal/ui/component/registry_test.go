package component

import (
	"testing"

	"github.com/bnema/hoverpane/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_TracksLifecycle(t *testing.T) {
	h := newHarness(t)
	a, va := h.shownWithView("a")
	a.SetPinned(true)
	b, _ := h.shownWithView("b")

	require.Equal(t, 2, h.registry.Len())
	got, ok := h.registry.Lookup("a")
	require.True(t, ok)
	assert.Same(t, a, got)
	assert.Equal(t, []*Popover{a, b}, h.registry.Active())

	owner, ok := h.registry.ForView(va.ID())
	require.True(t, ok)
	assert.Same(t, a, owner)
	_, ok = h.registry.ForView("unknown")
	assert.False(t, ok)

	a.ExplicitHide()
	h.sched.Flush()
	_, ok = h.registry.Lookup("a")
	assert.False(t, ok)
	_, ok = h.registry.ForView(va.ID())
	assert.False(t, ok)
	assert.Equal(t, 1, h.registry.Len())
}

func TestRegistry_CloseAllIncludesPinned(t *testing.T) {
	h := newHarness(t)
	a, _ := h.shownWithView("a")
	a.SetPinned(true)
	b, _ := h.shownWithView("b")
	b.SetPinned(true)

	h.registry.CloseAll()
	h.sched.Flush()

	assert.Zero(t, h.registry.Len())
	assert.Equal(t, entity.PhaseDestroyed, a.Panel().Phase)
	assert.Equal(t, entity.PhaseDestroyed, b.Panel().Phase)
}

func TestRegistry_RegisterReplacesSameID(t *testing.T) {
	h := newHarness(t)
	first := h.newPopover("dup", testOptions())
	second := h.newPopover("dup", testOptions())

	got, ok := h.registry.Lookup("dup")
	require.True(t, ok)
	assert.Same(t, second, got)
	assert.NotSame(t, first, got)
	assert.Equal(t, 1, h.registry.Len())

	h.registry.Unregister(first)
	got, ok = h.registry.Lookup("dup")
	require.True(t, ok, "a replaced popover must not remove its successor")
	assert.Same(t, second, got)

	h.registry.Unregister(second)
	h.registry.Unregister(second)
	assert.Zero(t, h.registry.Len())
	assert.Empty(t, h.registry.Active())
}
