package query

import (
	"sync"
	"time"
)

// DefaultQuietPeriod is how long the search box must stay quiet before the
// debounced value settles. Matches the interval observed in the admin UI.
const DefaultQuietPeriod = 3000 * time.Millisecond

// Debouncer delays adoption of a value until input has been quiet for a
// fixed period. Every Trigger cancels and restarts the pending timer, so
// the settled value is always the last one triggered and no settle fires
// earlier than quiet-period after the final trigger.
type Debouncer struct {
	mu      sync.Mutex
	quiet   time.Duration
	timer   *time.Timer
	pending string
	armed   bool
	settled func(value string)
}

// NewDebouncer creates a Debouncer firing settled after quiet. A
// non-positive quiet falls back to DefaultQuietPeriod.
func NewDebouncer(quiet time.Duration, settled func(value string)) *Debouncer {
	if quiet <= 0 {
		quiet = DefaultQuietPeriod
	}
	return &Debouncer{quiet: quiet, settled: settled}
}

// Trigger restarts the quiet-period timer with a new pending value.
func (d *Debouncer) Trigger(value string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.pending = value
	d.armed = true
	d.timer = time.AfterFunc(d.quiet, d.fire)
}

// Flush settles the pending value immediately, if any.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.mu.Unlock()
	d.fire()
}

// Stop cancels any pending settle. Used on view teardown.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.armed = false
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	if !d.armed {
		d.mu.Unlock()
		return
	}
	value := d.pending
	d.armed = false
	d.timer = nil
	d.mu.Unlock()

	d.settled(value)
}
