// Package debounce implements a timer-reset-on-input coalescing policy:
// every call cancels any pending evaluation and schedules a new one, so only
// the timer that survives an uninterrupted idle gap fires.
package debounce

import (
	"sync"
	"time"
)

// Debouncer coalesces rapid calls into at most one invocation per idle gap.
// Safe for concurrent use.
type Debouncer struct {
	mu     sync.Mutex
	delay  time.Duration
	timer  *time.Timer
	closed bool
}

// New creates a Debouncer with the given idle delay.
func New(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Do schedules fn to run after the idle delay, cancelling any pending run.
func (d *Debouncer) Do(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop cancels any pending run and rejects further scheduling.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
