// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package loop implements the single-threaded event loop that owns the test
// card: one-shot and repeating timers, functions posted from other
// goroutines, and debouncing.
//
// Callbacks run only inside RunDue or Run, on the goroutine that calls them,
// so state touched by callbacks needs no locking.
package loop

import (
	"container/heap"
	"context"
	"time"
)

// Scheduler creates timers whose callbacks run on the loop goroutine.
type Scheduler interface {
	Now() time.Time
	AfterFunc(d time.Duration, fn func()) Timer
	Every(d time.Duration, fn func()) Timer
}

// Timer is a pending one-shot or repeating callback.
type Timer interface {
	// Stop cancels the timer. It reports whether the timer was still
	// pending. Stopping twice is harmless.
	Stop() bool
}

// minInterval bounds repeating timers so RunDue always terminates.
const minInterval = time.Millisecond

type timer struct {
	loop     *Loop
	deadline time.Time
	interval time.Duration
	fn       func()
	seq      uint64
	index    int
	stopped  bool
}

func (t *timer) Stop() bool {
	if t.stopped {
		return false
	}
	t.stopped = true
	if t.index >= 0 {
		heap.Remove(&t.loop.timers, t.index)
	}
	return true
}

type timerHeap []*timer

func (h timerHeap) Len() int { return len(h) }
func (h timerHeap) Less(i, j int) bool {
	if h[i].deadline.Equal(h[j].deadline) {
		return h[i].seq < h[j].seq
	}
	return h[i].deadline.Before(h[j].deadline)
}
func (h timerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *timerHeap) Push(x any) {
	t := x.(*timer)
	t.index = len(*h)
	*h = append(*h, t)
}
func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*h = old[:n-1]
	return t
}

// Loop is a cooperative timer loop. All methods except Post must be called
// from the goroutine that runs the loop.
type Loop struct {
	clock   Clock
	timers  timerHeap
	seq     uint64
	service chan func()
}

// New creates a loop reading time from clock. A nil clock means the wall
// clock.
func New(clock Clock) *Loop {
	if clock == nil {
		clock = SystemClock()
	}
	return &Loop{
		clock:   clock,
		service: make(chan func(), 64),
	}
}

// Now implements Scheduler.
func (l *Loop) Now() time.Time {
	return l.clock.Now()
}

// AfterFunc implements Scheduler: fn runs once, d after now.
func (l *Loop) AfterFunc(d time.Duration, fn func()) Timer {
	return l.schedule(d, 0, fn)
}

// Every implements Scheduler: fn runs every d, starting d after now.
// Ticks missed while the loop was busy are coalesced into one.
func (l *Loop) Every(d time.Duration, fn func()) Timer {
	d = max(d, minInterval)
	return l.schedule(d, d, fn)
}

func (l *Loop) schedule(d, interval time.Duration, fn func()) *timer {
	l.seq++
	t := &timer{
		loop:     l,
		deadline: l.clock.Now().Add(d),
		interval: interval,
		fn:       fn,
		seq:      l.seq,
		index:    -1,
	}
	heap.Push(&l.timers, t)
	return t
}

// Post queues fn to run on the loop goroutine. It is safe to call from any
// goroutine.
func (l *Loop) Post(fn func()) {
	l.service <- fn
}

// NextDeadline returns the deadline of the earliest pending timer.
func (l *Loop) NextDeadline() (time.Time, bool) {
	if len(l.timers) == 0 {
		return time.Time{}, false
	}
	return l.timers[0].deadline, true
}

// Pending returns the number of pending timers.
func (l *Loop) Pending() int {
	return len(l.timers)
}

// RunDue runs posted functions and every timer whose deadline has passed.
// It returns the number of callbacks run.
func (l *Loop) RunDue() int {
	n := l.drain()
	now := l.clock.Now()
	for len(l.timers) > 0 && !l.timers[0].deadline.After(now) {
		t := l.timers[0]
		if t.interval > 0 {
			next := t.deadline.Add(t.interval)
			if !next.After(now) {
				next = now.Add(t.interval)
			}
			t.deadline = next
			heap.Fix(&l.timers, 0)
		} else {
			heap.Pop(&l.timers)
			t.stopped = true
		}
		t.fn()
		n++
	}
	return n
}

func (l *Loop) drain() int {
	n := 0
	for {
		select {
		case fn := <-l.service:
			fn()
			n++
		default:
			return n
		}
	}
}

// Run services the loop until ctx is done. It sleeps on the wall clock
// between deadlines and wakes early for posted functions.
func (l *Loop) Run(ctx context.Context) error {
	wait := time.NewTimer(time.Hour)
	defer wait.Stop()
	for {
		l.RunDue()

		d := time.Hour
		if deadline, ok := l.NextDeadline(); ok {
			d = max(deadline.Sub(l.clock.Now()), 0)
		}
		wait.Reset(d)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-l.service:
			fn()
		case <-wait.C:
		}
	}
}
