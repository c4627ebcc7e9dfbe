package gesture

import "time"

// DefaultDebounceDelay coalesces bursts of pinch moves to at most one
// delivery per display frame at 120Hz.
const DefaultDebounceDelay = 8 * time.Millisecond

// Debouncer keeps at most one pending payload. Each Trigger replaces the
// pending payload and pushes its due time out, so only the most recent
// payload of a burst is delivered. Time is supplied by the caller, which
// polls once per tick.
type Debouncer[T any] struct {
	delay   time.Duration
	deliver func(T)

	pending bool
	due     time.Time
	payload T
}

// NewDebouncer returns a debouncer that hands payloads to deliver. A
// non-positive delay delivers on the first Poll after Trigger.
func NewDebouncer[T any](delay time.Duration, deliver func(T)) *Debouncer[T] {
	return &Debouncer[T]{delay: delay, deliver: deliver}
}

// Trigger cancels any pending payload and schedules payload at now+delay.
func (d *Debouncer[T]) Trigger(now time.Time, payload T) {
	d.payload = payload
	d.due = now.Add(d.delay)
	d.pending = true
}

// Poll delivers the pending payload if it is due and reports whether it did.
func (d *Debouncer[T]) Poll(now time.Time) bool {
	if !d.pending || now.Before(d.due) {
		return false
	}
	return d.Flush()
}

// Flush delivers the pending payload immediately.
func (d *Debouncer[T]) Flush() bool {
	if !d.pending {
		return false
	}
	payload := d.payload
	d.Cancel()
	if d.deliver != nil {
		d.deliver(payload)
	}
	return true
}

// Cancel drops the pending payload.
func (d *Debouncer[T]) Cancel() {
	var zero T
	d.payload = zero
	d.pending = false
}

// Pending reports whether a payload is waiting.
func (d *Debouncer[T]) Pending() bool {
	return d.pending
}
