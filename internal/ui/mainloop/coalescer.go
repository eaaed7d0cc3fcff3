// Package mainloop provides the single UI loop scheduling primitives: a
// coalescer for bursts of same-key work, a goroutine-backed Loop for the
// terminal host and a deterministic Manual scheduler.
package mainloop

import "sync"

// Coalescer merges bursts of same-key loop tasks. Only the most recent
// callback for a key runs, once, on the next loop iteration.
type Coalescer struct {
	mu        sync.Mutex
	pending   map[string]bool
	callbacks map[string]func()
	post      func(func())
	destroyed bool
}

func NewCoalescer(post func(func())) *Coalescer {
	if post == nil {
		panic("mainloop.NewCoalescer: post function cannot be nil")
	}

	return &Coalescer{
		pending:   make(map[string]bool),
		callbacks: make(map[string]func()),
		post:      post,
	}
}

func (c *Coalescer) Post(key string, fn func()) {
	if fn == nil || key == "" {
		return
	}

	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return
	}
	c.callbacks[key] = fn
	if c.pending[key] {
		c.mu.Unlock()
		return
	}
	c.pending[key] = true
	post := c.post
	c.mu.Unlock()

	post(func() { c.run(key) })
}

func (c *Coalescer) run(key string) {
	c.mu.Lock()
	if c.destroyed || !c.pending[key] {
		delete(c.pending, key)
		delete(c.callbacks, key)
		c.mu.Unlock()
		return
	}
	fn := c.callbacks[key]
	delete(c.pending, key)
	delete(c.callbacks, key)
	c.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// Pending reports whether a callback for key is waiting to run.
func (c *Coalescer) Pending(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending[key]
}

// Cancel drops the waiting callback for key, if any.
func (c *Coalescer) Cancel(key string) {
	c.mu.Lock()
	delete(c.pending, key)
	delete(c.callbacks, key)
	c.mu.Unlock()
}

func (c *Coalescer) Destroy() {
	c.mu.Lock()
	c.destroyed = true
	c.pending = map[string]bool{}
	c.callbacks = map[string]func(){}
	c.mu.Unlock()
}
