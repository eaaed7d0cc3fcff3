package component

import (
	"time"

	"github.com/bnema/hoverpane/internal/application/port"
)

const (
	DefaultTriggerWait = 300 * time.Millisecond
	DefaultCloseDelay  = 600 * time.Millisecond
)

// HoverTriggerOptions tunes a HoverTrigger.
type HoverTriggerOptions struct {
	// WaitTime is the delay before the first show and, until the panel is
	// shown, before a hide.
	WaitTime time.Duration
	// CloseDelay replaces WaitTime as the hide delay once the panel is shown.
	CloseDelay time.Duration
}

// HoverTrigger drives a popover from pointer enter and leave events on its
// anchor and on the panel itself.
type HoverTrigger struct {
	p     *Popover
	sched port.Scheduler
	wait  time.Duration
	hide  func()
}

// NewHoverTrigger arms the first-show timer of p.
func NewHoverTrigger(p *Popover, sched port.Scheduler, opts HoverTriggerOptions) *HoverTrigger {
	if opts.WaitTime <= 0 {
		opts.WaitTime = DefaultTriggerWait
	}
	if opts.CloseDelay <= 0 {
		opts.CloseDelay = DefaultCloseDelay
	}
	t := &HoverTrigger{p: p, sched: sched, wait: opts.WaitTime}
	p.WhenShown(func() { t.wait = opts.CloseDelay })
	p.SetOnTarget(true)
	p.ScheduleShow(opts.WaitTime)
	return t
}

// Popover returns the driven popover.
func (t *HoverTrigger) Popover() *Popover {
	return t.p
}

// Delay returns the current hide delay.
func (t *HoverTrigger) Delay() time.Duration {
	return t.wait
}

func (t *HoverTrigger) TargetEnter() {
	t.p.SetOnTarget(true)
	t.cancelHide()
}

func (t *HoverTrigger) TargetLeave() {
	t.p.SetOnTarget(false)
	t.scheduleHide()
}

func (t *HoverTrigger) HoverEnter() {
	t.p.SetOnHover(true)
	t.cancelHide()
}

func (t *HoverTrigger) HoverLeave() {
	t.p.SetOnHover(false)
	t.scheduleHide()
}

func (t *HoverTrigger) cancelHide() {
	if t.hide != nil {
		t.hide()
		t.hide = nil
	}
}

// scheduleHide hides the popover after the current delay unless something
// wants it again. Pinning aborts the pending hide.
func (t *HoverTrigger) scheduleHide() {
	t.cancelHide()
	if t.p.Detaching() || t.p.Pinned() {
		return
	}
	abort := t.p.abortCtx
	t.hide = t.sched.AfterFunc(t.wait, func() {
		t.hide = nil
		if abort.Err() != nil {
			return
		}
		if !t.p.ShouldShowSelf() {
			t.p.Hide()
		}
	})
}
