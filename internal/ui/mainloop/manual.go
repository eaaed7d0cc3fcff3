package mainloop

import (
	"context"
	"sort"
	"sync"
	"time"
)

type manualTimer struct {
	at        time.Duration
	seq       int
	fn        func()
	cancelled bool
}

type manualJob struct {
	ctx  context.Context
	work func(context.Context) error
	done func(error)
}

// Manual is a deterministic scheduler. Nothing runs until the caller
// drives it with Flush, Advance or CompleteJobs.
type Manual struct {
	mu     sync.Mutex
	now    time.Duration
	seq    int
	queue  []func()
	timers []*manualTimer
	jobs   []manualJob
}

func NewManual() *Manual {
	return &Manual{}
}

func (m *Manual) Post(fn func()) {
	if fn == nil {
		return
	}
	m.mu.Lock()
	m.queue = append(m.queue, fn)
	m.mu.Unlock()
}

func (m *Manual) AfterFunc(d time.Duration, fn func()) func() {
	m.mu.Lock()
	m.seq++
	t := &manualTimer{at: m.now + d, seq: m.seq, fn: fn}
	m.timers = append(m.timers, t)
	m.mu.Unlock()
	return func() {
		m.mu.Lock()
		t.cancelled = true
		m.mu.Unlock()
	}
}

func (m *Manual) Go(ctx context.Context, work func(context.Context) error, done func(error)) {
	m.mu.Lock()
	m.jobs = append(m.jobs, manualJob{ctx: ctx, work: work, done: done})
	m.mu.Unlock()
}

// Flush runs posted callbacks until the queue is empty.
func (m *Manual) Flush() {
	for {
		m.mu.Lock()
		q := m.queue
		m.queue = nil
		m.mu.Unlock()
		if len(q) == 0 {
			return
		}
		for _, fn := range q {
			fn()
		}
	}
}

// CompleteJobs runs the work of every pending job, posts the completions
// and flushes.
func (m *Manual) CompleteJobs() {
	m.mu.Lock()
	jobs := m.jobs
	m.jobs = nil
	m.mu.Unlock()

	for _, j := range jobs {
		err := runWork(j.ctx, j.work)
		if j.done != nil {
			done := j.done
			m.Post(func() { done(err) })
		}
	}
	m.Flush()
}

// Advance moves the clock forward by d, firing due timers in order.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now + d
	m.mu.Unlock()

	for {
		m.Flush()
		m.mu.Lock()
		due := m.nextDueLocked(target)
		if due == nil {
			m.now = target
			m.mu.Unlock()
			return
		}
		m.now = due.at
		due.cancelled = true
		fn := due.fn
		m.mu.Unlock()
		fn()
	}
}

func (m *Manual) nextDueLocked(target time.Duration) *manualTimer {
	live := m.timers[:0]
	for _, t := range m.timers {
		if !t.cancelled {
			live = append(live, t)
		}
	}
	m.timers = live
	sort.Slice(m.timers, func(i, j int) bool {
		if m.timers[i].at == m.timers[j].at {
			return m.timers[i].seq < m.timers[j].seq
		}
		return m.timers[i].at < m.timers[j].at
	})
	if len(m.timers) == 0 || m.timers[0].at > target {
		return nil
	}
	return m.timers[0]
}

// PendingJobs returns the number of Go jobs waiting for CompleteJobs.
func (m *Manual) PendingJobs() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.jobs)
}

// PendingTimers returns the number of armed timers.
func (m *Manual) PendingTimers() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, t := range m.timers {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// Now returns the virtual elapsed time.
func (m *Manual) Now() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}
