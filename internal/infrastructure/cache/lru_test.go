package cache

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lines(n int) []string { return make([]string, n) }

func newLineCache(entries, maxLines int) *LRU[string, []string] {
	return New[string, []string](Options[[]string]{
		MaxEntries: entries,
		MaxWeight:  maxLines,
		Weigh:      func(v []string) int { return len(v) },
	})
}

func TestLRU_EvictsLeastRecentlyUsed(t *testing.T) {
	c := NewLRU[string, int](2)
	c.Set("a", 1)
	c.Set("b", 2)

	_, ok := c.Get("a")
	require.True(t, ok)
	c.Set("c", 3)

	_, ok = c.Get("b")
	assert.False(t, ok, "b was least recently used")
	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, 2, c.Len())
}

func TestLRU_WeightBoundEvictsUntilUnderLimit(t *testing.T) {
	c := newLineCache(10, 100)
	c.Set("ws-1-view", lines(40))
	c.Set("ws-2-view", lines(40))
	c.Set("ws-3-view", lines(50))

	_, ok := c.Get("ws-1-view")
	assert.False(t, ok)
	_, ok = c.Get("ws-2-view")
	assert.True(t, ok)
	s := c.Stats()
	assert.Equal(t, 90, s.Weight)
	assert.Equal(t, 2, s.Entries)
	assert.Equal(t, 1, s.Evictions)
}

func TestLRU_OversizedValueIsNotKept(t *testing.T) {
	c := newLineCache(10, 100)
	require.True(t, c.Set("note", lines(10)))

	assert.False(t, c.Set("note", lines(101)))
	_, ok := c.Get("note")
	assert.False(t, ok, "the stale smaller render must not survive")
	assert.Zero(t, c.Stats().Weight)
}

func TestLRU_ReplaceUpdatesWeight(t *testing.T) {
	c := newLineCache(10, 100)
	c.Set("note", lines(30))
	c.Set("note", lines(10))

	assert.Equal(t, 10, c.Stats().Weight)
	assert.Equal(t, 1, c.Len())
}

func TestLRU_RemoveIf(t *testing.T) {
	c := newLineCache(10, 0)
	c.Set("ws-1-a", lines(1))
	c.Set("ws-1-b", lines(1))
	c.Set("ws-2-a", lines(1))

	removed := c.RemoveIf(func(k string) bool { return strings.HasPrefix(k, "ws-1-") })
	assert.Equal(t, 2, removed)
	assert.Equal(t, 1, c.Len())
	_, ok := c.Get("ws-2-a")
	assert.True(t, ok)

	c.Remove("ws-2-a")
	assert.Zero(t, c.Len())
}

func TestLRU_StatsCountHitsAndMisses(t *testing.T) {
	c := NewLRU[int, string](4)
	c.Set(80, "renderer")
	c.Get(80)
	c.Get(80)
	c.Get(120)

	s := c.Stats()
	assert.Equal(t, 2, s.Hits)
	assert.Equal(t, 1, s.Misses)
	assert.Zero(t, s.Weight, "no weigher configured")
}

func TestLRU_ZeroCapacityKeepsOne(t *testing.T) {
	c := NewLRU[string, int](0)
	c.Set("a", 1)
	c.Set("b", 2)
	assert.Equal(t, 1, c.Len())
}

func TestLRU_ConcurrentAccess(t *testing.T) {
	c := newLineCache(16, 200)
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 100 {
				key := string(rune('a' + (i+j)%20))
				c.Set(key, lines(j%15))
				c.Get(key)
			}
		}()
	}
	wg.Wait()

	s := c.Stats()
	assert.LessOrEqual(t, s.Entries, 16)
	assert.LessOrEqual(t, s.Weight, 200)
}
