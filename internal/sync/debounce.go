package sync

import (
	gosync "sync"
	"time"

	"github.com/fieldlog/fieldlog/constants"
)

// Debouncer coalesces autosave bursts: each Schedule resets the timer, so the
// save fires once typing pauses. Flush cancels the pending timer and saves
// immediately, the blur safety net that keeps the final keystrokes from
// riding a debounce window into a closed session.
type Debouncer struct {
	delay time.Duration

	mu    gosync.Mutex
	timer *time.Timer
	fn    func()
}

// NewDebouncer uses the given delay, clamped to the autosave floor.
func NewDebouncer(delay time.Duration) *Debouncer {
	if delay < constants.AutosaveMinDebounce {
		delay = constants.AutosaveMinDebounce
	}
	return &Debouncer{delay: delay}
}

// Schedule arms (or re-arms) the timer with fn. Only the most recent fn runs.
func (d *Debouncer) Schedule(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.fn = fn
	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		run := d.fn
		d.fn = nil
		d.timer = nil
		d.mu.Unlock()
		if run != nil {
			run()
		}
	})
}

// Flush cancels any pending timer and runs the scheduled save now.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	run := d.fn
	d.fn = nil
	d.mu.Unlock()
	if run != nil {
		run()
	}
}

// Stop cancels any pending save without running it.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.fn = nil
}
