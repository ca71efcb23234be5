package queue

import (
	"fmt"
	"math"

	"github.com/dshills/termhost/internal/input/record"
)

const (
	// DefaultCapacity is used when the caller supplies no capacity hint
	// or the hint is unusable.
	DefaultCapacity = 50

	// DefaultGrowthIncrement is the slack added on top of the pending
	// write when the buffer grows.
	DefaultGrowthIncrement = 10

	// DefaultMaxCapacity bounds growth. Exceeding it is reported as a
	// resource failure; the process has no way to trap a real allocation
	// failure, so the limit stands in for one.
	DefaultMaxCapacity = 1 << 16
)

// Options tunes buffer growth behavior.
type Options struct {
	// MaxCapacity bounds the record count the buffer may grow to.
	// Zero means DefaultMaxCapacity.
	MaxCapacity int

	// GrowthIncrement is the slack added when growing. Zero or negative
	// means DefaultGrowthIncrement.
	GrowthIncrement int
}

// Buffer is a circular buffer of input event records.
//
// The backing store holds capacity+1 slots; one slot is always kept free
// so that out == in unambiguously means "empty". The buffer grows on
// demand and never shrinks.
//
// Buffer is not safe for unsynchronized concurrent use. Every method must
// be called with the owning host's console lock held. NotifyChan is the
// single exception: the returned channel may be waited on after the lock
// is released.
type Buffer struct {
	records []record.Record
	out     int // next slot to read
	in      int // next slot to write

	maxCapacity     int
	growthIncrement int

	// signaled mirrors the "data is ready" wait event: set on the
	// empty-to-non-empty transition, cleared when a read drains the
	// buffer.
	signaled bool

	// notify is closed and replaced on every write, waking all blocked
	// readers. Level-triggered: wakers must re-check emptiness.
	notify chan struct{}

	closed bool
}

// New creates a buffer with room for capacityHint records, falling back to
// DefaultCapacity when the hint is zero or its slot arithmetic would
// overflow. Hints above the capacity limit are a resource error.
func New(capacityHint int) (*Buffer, error) {
	return NewWithOptions(capacityHint, Options{})
}

// NewWithOptions creates a buffer with explicit growth tuning.
func NewWithOptions(capacityHint int, opts Options) (*Buffer, error) {
	if opts.MaxCapacity <= 0 {
		opts.MaxCapacity = DefaultMaxCapacity
	}
	if opts.GrowthIncrement <= 0 {
		opts.GrowthIncrement = DefaultGrowthIncrement
	}

	if capacityHint <= 0 || capacityHint >= math.MaxInt {
		capacityHint = DefaultCapacity
	}
	if capacityHint > opts.MaxCapacity {
		return nil, fmt.Errorf("allocating %d records: %w", capacityHint, ErrResource)
	}

	return &Buffer{
		records:         make([]record.Record, capacityHint+1),
		maxCapacity:     opts.MaxCapacity,
		growthIncrement: opts.GrowthIncrement,
		notify:          make(chan struct{}),
	}, nil
}

// Capacity returns the number of records the buffer can hold before
// growing.
func (b *Buffer) Capacity() int {
	return len(b.records) - 1
}

// CountReady returns the number of buffered records.
func (b *Buffer) CountReady() int {
	n := len(b.records)
	return (b.in - b.out + n) % n
}

// Clear resets the buffer to empty and clears the wait signal. O(1); no
// data is moved.
func (b *Buffer) Clear() {
	b.out = 0
	b.in = 0
	b.signaled = false
}

// Signaled reports whether the "data is ready" signal is set.
func (b *Buffer) Signaled() bool {
	return b.signaled
}

// NotifyChan returns the channel closed by the next write. Callers grab it
// while holding the console lock, release the lock, then wait.
func (b *Buffer) NotifyChan() <-chan struct{} {
	return b.notify
}

// Close shuts the buffer down, dropping queued records and waking any
// blocked readers so they can observe the closed state.
func (b *Buffer) Close() {
	if b.closed {
		return
	}
	b.closed = true
	b.Clear()
	b.notifyAll()
}

// Closed reports whether Close has been called.
func (b *Buffer) Closed() bool {
	return b.closed
}

// Resize grows the backing store to hold newCapacity records, compacting
// any unread records into a contiguous prefix of the new store. The new
// capacity must exceed the current one. On failure the buffer is left
// unchanged.
func (b *Buffer) Resize(newCapacity int) error {
	if newCapacity <= b.Capacity() {
		return fmt.Errorf("resize to %d from %d: %w", newCapacity, b.Capacity(), ErrInvalidCapacity)
	}
	if err := checkCapacity(newCapacity, b.maxCapacity); err != nil {
		return fmt.Errorf("resize to %d: %w", newCapacity, err)
	}

	fresh := make([]record.Record, newCapacity+1)
	n := b.read(fresh[:b.CountReady()], ReadOptions{})

	b.records = fresh
	b.out = 0
	b.in = n
	return nil
}

// FlushAllButKeys rebuilds the buffer keeping only key records, in their
// original order. The wait signal is cleared if nothing remains.
func (b *Buffer) FlushAllButKeys() error {
	if b.isEmpty() {
		return nil
	}
	if err := checkCapacity(b.Capacity(), b.maxCapacity); err != nil {
		return fmt.Errorf("flushing non-key events: %w", err)
	}

	scratch := make([]record.Record, b.CountReady())
	n := b.read(scratch, ReadOptions{})

	b.out = 0
	b.in = 0
	for i := 0; i < n; i++ {
		// Keep the sentinel slot free.
		if b.in >= b.Capacity() {
			break
		}
		if scratch[i].Kind == record.KindKey {
			b.records[b.in] = scratch[i]
			b.in++
		}
	}

	if b.isEmpty() {
		b.signaled = false
	}
	return nil
}

// isEmpty reports whether no records are buffered.
func (b *Buffer) isEmpty() bool {
	return b.out == b.in
}

// isFull reports whether a write would consume the sentinel slot.
func (b *Buffer) isFull() bool {
	return (b.in+1)%len(b.records) == b.out
}

// lastIndex returns the slot of the most recently written record.
// Only meaningful when the buffer is non-empty.
func (b *Buffer) lastIndex() int {
	n := len(b.records)
	return (b.in - 1 + n) % n
}

// notifyAll wakes every reader blocked on the notify channel.
func (b *Buffer) notifyAll() {
	close(b.notify)
	b.notify = make(chan struct{})
}

// checkCapacity validates capacity arithmetic before any allocation.
func checkCapacity(n, maxCapacity int) error {
	if n >= math.MaxInt {
		return ErrIntegerOverflow
	}
	if n > maxCapacity {
		return fmt.Errorf("%d records over limit %d: %w", n, maxCapacity, ErrResource)
	}
	return nil
}
