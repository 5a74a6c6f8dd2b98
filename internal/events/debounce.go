package events

import (
	"sync"
	"time"
)

// Debouncer runs fn once after a burst of Trigger calls has been quiet for the window.
type Debouncer struct {
	window  time.Duration
	fn      func()
	mu      sync.Mutex
	timer   *time.Timer
	stopped bool
}

func NewDebouncer(window time.Duration, fn func()) *Debouncer {
	return &Debouncer{window: window, fn: fn}
}

func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	if d.timer != nil {
		d.timer.Stop()
	}

	d.timer = time.AfterFunc(d.window, d.fire)
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	stopped := d.stopped
	d.mu.Unlock()

	if !stopped {
		d.fn()
	}
}

// Stop cancels a pending call. Later triggers are ignored.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
	}
}
