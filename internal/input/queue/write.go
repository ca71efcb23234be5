package queue

import (
	"fmt"

	"github.com/dshills/termhost/internal/input/record"
)

// Write appends records to the buffer, coalescing where possible and
// growing the backing store on demand. It returns the number of records
// accepted (a coalesced record counts as written).
//
// When growth fails the buffer keeps everything already accepted, the
// remaining records are dropped, and the growth error is returned
// alongside the partial count.
//
// Every successful write wakes blocked readers; the wait signal is set
// when the buffer transitions from empty to non-empty.
func (b *Buffer) Write(src []record.Record) (int, error) {
	if b.closed {
		return 0, ErrClosed
	}
	if len(src) == 0 {
		return 0, nil
	}

	wasEmpty := b.isEmpty()
	written, err := b.append(src)
	if written > 0 {
		if wasEmpty {
			b.signaled = true
		}
		b.notifyAll()
	}
	return written, err
}

// append implements coalescing and the ring append loop.
func (b *Buffer) append(src []record.Record) (int, error) {
	// Coalescing applies only to a single incoming record with at least
	// one record already queued to merge into.
	if len(src) == 1 && !b.isEmpty() {
		last := &b.records[b.lastIndex()]

		if record.CanCoalesceMouseMove(*last, src[0]) {
			last.Mouse.X = src[0].Mouse.X
			last.Mouse.Y = src[0].Mouse.Y
			return 1, nil
		}

		if record.CanCoalesceKeyRepeat(*last, src[0]) {
			last.Key.RepeatCount += src[0].Key.RepeatCount
			return 1, nil
		}
	}

	written := 0
	for _, rec := range src {
		if b.isFull() {
			if err := b.Resize(b.Capacity() + len(src) + b.growthIncrement); err != nil {
				return written, fmt.Errorf("growing input buffer: %w", err)
			}
		}
		b.records[b.in] = rec
		b.in = (b.in + 1) % len(b.records)
		written++
	}
	return written, nil
}
