package mainloop

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// WakeMsg asks the host to call Loop.Drain on its UI goroutine.
type WakeMsg struct{}

// Loop queues callbacks for the UI goroutine. The host calls Drain whenever
// the wake function fires; with bubbletea that is a Program.Send(WakeMsg{}).
type Loop struct {
	mu        sync.Mutex
	queue     []func()
	scheduled bool
	wake      func()
	closed    atomic.Bool
}

// NewLoop creates a loop. wake is called from a separate goroutine and must
// not block on the UI goroutine.
func NewLoop(wake func()) *Loop {
	if wake == nil {
		panic("mainloop.NewLoop: wake function cannot be nil")
	}
	return &Loop{wake: wake}
}

func (l *Loop) Post(fn func()) {
	if fn == nil || l.closed.Load() {
		return
	}
	l.mu.Lock()
	l.queue = append(l.queue, fn)
	if l.scheduled {
		l.mu.Unlock()
		return
	}
	l.scheduled = true
	l.mu.Unlock()

	go l.wake()
}

// Drain runs every queued callback, including ones queued while draining.
// Must be called on the UI goroutine.
func (l *Loop) Drain() {
	for {
		l.mu.Lock()
		q := l.queue
		l.queue = nil
		if len(q) == 0 {
			l.scheduled = false
			l.mu.Unlock()
			return
		}
		l.mu.Unlock()

		for _, fn := range q {
			fn()
		}
	}
}

func (l *Loop) AfterFunc(d time.Duration, fn func()) func() {
	var cancelled atomic.Bool
	t := time.AfterFunc(d, func() {
		l.Post(func() {
			if !cancelled.Load() {
				fn()
			}
		})
	})
	return func() {
		cancelled.Store(true)
		t.Stop()
	}
}

func (l *Loop) Go(ctx context.Context, work func(context.Context) error, done func(error)) {
	go func() {
		err := runWork(ctx, work)
		if done != nil {
			l.Post(func() { done(err) })
		}
	}()
}

// Close stops accepting callbacks.
func (l *Loop) Close() {
	l.closed.Store(true)
	l.mu.Lock()
	l.queue = nil
	l.mu.Unlock()
}

func runWork(ctx context.Context, work func(context.Context) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("mainloop: task panicked: %v", r)
		}
	}()
	return work(ctx)
}
