// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package loop

import "time"

// DebounceOption configures a Debouncer.
type DebounceOption func(*Debouncer)

// Leading makes the debouncer call fn on the first call of a burst instead
// of after it. Calls during the quiet window only extend the window.
func Leading() DebounceOption {
	return func(d *Debouncer) {
		d.leading = true
	}
}

// Debouncer collapses bursts of calls into a single call of fn.
type Debouncer struct {
	sched   Scheduler
	wait    time.Duration
	fn      func()
	leading bool
	pending Timer
}

// Debounce returns a Debouncer that calls fn once a burst of Call
// invocations has been quiet for wait.
func Debounce(sched Scheduler, wait time.Duration, fn func(), opts ...DebounceOption) *Debouncer {
	d := &Debouncer{sched: sched, wait: wait, fn: fn}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Call records one event of a burst.
func (d *Debouncer) Call() {
	callNow := d.leading && d.pending == nil
	if d.pending != nil {
		d.pending.Stop()
	}
	d.pending = d.sched.AfterFunc(d.wait, d.later)
	if callNow {
		d.fn()
	}
}

func (d *Debouncer) later() {
	d.pending = nil
	if !d.leading {
		d.fn()
	}
}

// Pending reports whether a quiet window is running.
func (d *Debouncer) Pending() bool {
	return d.pending != nil
}

// Cancel drops a pending trailing call.
func (d *Debouncer) Cancel() {
	if d.pending != nil {
		d.pending.Stop()
		d.pending = nil
	}
}
