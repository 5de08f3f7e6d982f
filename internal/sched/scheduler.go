// Package sched is a single-threaded cooperative scheduler standing in for a
// host's animation-frame and interval timers. Every callback runs on the
// goroutine that calls Run (or RunDue), one at a time, so callbacks never need
// locks to share state with each other.
package sched

import (
	"context"
	"sync"
	"time"
)

// Func is a scheduled callback. now is the time the scheduler fired it.
type Func func(now time.Time)

type interval struct {
	every time.Duration
	next  time.Time
	fn    Func
}

// Scheduler runs one-shot frame callbacks at a fixed frame interval and any
// number of periodic tasks.
type Scheduler struct {
	frameInterval time.Duration
	nextFrame     time.Time
	frame         Func
	intervals     []*interval

	posted   chan func()
	stop     chan struct{}
	stopOnce sync.Once
}

// New creates a scheduler whose frames are at least frameInterval apart.
func New(frameInterval time.Duration) *Scheduler {
	return &Scheduler{
		frameInterval: frameInterval,
		posted:        make(chan func(), 64),
		stop:          make(chan struct{}),
	}
}

// RequestFrame schedules fn for the next frame. Only one frame callback is
// pending at a time; a later request replaces an earlier one. A callback
// requests the following frame by calling RequestFrame again.
func (s *Scheduler) RequestFrame(fn Func) { s.frame = fn }

// Every runs fn every d, first d after the scheduler starts stepping.
func (s *Scheduler) Every(d time.Duration, fn Func) {
	s.intervals = append(s.intervals, &interval{every: d, fn: fn})
}

// Post queues fn to run on the scheduler goroutine. Safe for concurrent use.
func (s *Scheduler) Post(fn func()) {
	select {
	case s.posted <- fn:
	case <-s.stop:
	}
}

// Stop makes Run return nil. Safe to call more than once and from callbacks.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
}

// RunDue runs the frame callback and periodic tasks that are due at now and
// returns how many callbacks ran.
func (s *Scheduler) RunDue(now time.Time) int {
	ran := 0
	if s.frame != nil && !now.Before(s.nextFrame) {
		fn := s.frame
		s.frame = nil
		s.nextFrame = now.Add(s.frameInterval)
		fn(now)
		ran++
	}
	for _, iv := range s.intervals {
		if iv.next.IsZero() {
			iv.next = now.Add(iv.every)
			continue
		}
		if now.Before(iv.next) {
			continue
		}
		iv.next = iv.next.Add(iv.every)
		if iv.next.Before(now) {
			// Fell behind; don't fire a burst to catch up.
			iv.next = now.Add(iv.every)
		}
		iv.fn(now)
		ran++
	}
	return ran
}

// untilNext returns how long to sleep before something may be due.
func (s *Scheduler) untilNext(now time.Time) time.Duration {
	wait := time.Hour
	if s.frame != nil {
		wait = min(wait, s.nextFrame.Sub(now))
	}
	for _, iv := range s.intervals {
		if iv.next.IsZero() {
			return 0
		}
		wait = min(wait, iv.next.Sub(now))
	}
	return max(wait, 0)
}

// Run steps the scheduler on the calling goroutine until ctx is done or Stop
// is called. Posted functions run between scheduled callbacks; once Run has
// returned, Post drops its argument.
func (s *Scheduler) Run(ctx context.Context) error {
	defer s.Stop()
	timer := time.NewTimer(time.Hour)
	defer timer.Stop()

	for {
		now := time.Now()
		s.RunDue(now)
		timer.Reset(s.untilNext(now))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.stop:
			return nil
		case fn := <-s.posted:
			fn()
		case <-timer.C:
		}
	}
}
