package query

import (
	"sync"
	"testing"
	"time"
)

type settleRecorder struct {
	mu     sync.Mutex
	values []string
}

func (r *settleRecorder) settle(v string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = append(r.values, v)
}

func (r *settleRecorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.values...)
}

func TestDebouncerSettlesLastValue(t *testing.T) {
	rec := &settleRecorder{}
	d := NewDebouncer(20*time.Millisecond, rec.settle)

	// Simulated keystrokes, each within the quiet period.
	for _, v := range []string{"b", "ba", "ban", "bann", "banner"} {
		d.Trigger(v)
		time.Sleep(2 * time.Millisecond)
	}

	time.Sleep(60 * time.Millisecond)

	got := rec.snapshot()
	if len(got) != 1 {
		t.Fatalf("settled %d times (%v), want exactly once", len(got), got)
	}
	if got[0] != "banner" {
		t.Errorf("settled value = %q, want %q", got[0], "banner")
	}
}

func TestDebouncerFlush(t *testing.T) {
	rec := &settleRecorder{}
	d := NewDebouncer(time.Hour, rec.settle)

	d.Trigger("now")
	d.Flush()

	got := rec.snapshot()
	if len(got) != 1 || got[0] != "now" {
		t.Fatalf("after Flush: settled = %v, want [now]", got)
	}

	// Flush with nothing pending is a no-op.
	d.Flush()
	if got := rec.snapshot(); len(got) != 1 {
		t.Errorf("idle Flush settled again: %v", got)
	}
}

func TestDebouncerStopCancelsPending(t *testing.T) {
	rec := &settleRecorder{}
	d := NewDebouncer(10*time.Millisecond, rec.settle)

	d.Trigger("doomed")
	d.Stop()

	time.Sleep(40 * time.Millisecond)
	if got := rec.snapshot(); len(got) != 0 {
		t.Errorf("settled after Stop: %v", got)
	}
}
