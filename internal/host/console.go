package host

import (
	"context"
	"sync"

	"github.com/dshills/termhost/internal/input/queue"
	"github.com/dshills/termhost/internal/input/record"
	"github.com/dshills/termhost/internal/renderer/invalid"
)

// Mode is the set of console input mode flags.
type Mode uint8

const (
	// ModeLineInput enables line-oriented input. Pause-key interception
	// only applies in this mode.
	ModeLineInput Mode = 1 << iota

	// ModeProcessedInput enables control-key processing.
	ModeProcessedInput

	// ModeEchoInput enables input echo.
	ModeEchoInput

	// ModeMouseInput enables mouse event reporting.
	ModeMouseInput
)

// DefaultMode is the mode a fresh or reinitialized console starts in.
const DefaultMode = ModeLineInput | ModeProcessedInput | ModeEchoInput | ModeMouseInput

// Has returns true if m contains all of the given flags.
func (m Mode) Has(flags Mode) bool {
	return m&flags == flags
}

// Options configures a Console.
type Options struct {
	// InitialCapacity is the starting record capacity of the input
	// buffer. Zero selects the queue default.
	InitialCapacity int

	// MaxCapacity bounds buffer growth. Zero selects the queue default.
	MaxCapacity int

	// GrowthIncrement is the slack added when the buffer grows. Zero
	// selects the queue default.
	GrowthIncrement int

	// ViewportWidth and ViewportHeight size the invalidation tracker's
	// viewport. Zero selects 80x24.
	ViewportWidth  int
	ViewportHeight int

	// Logger receives pipeline diagnostics. Nil discards them.
	Logger *Logger
}

// Console is the input pipeline context. It owns the console lock
// serializing all buffer mutation, the event buffer itself, the
// invalidation tracker, and the console-wide flags.
type Console struct {
	mu sync.Mutex

	buf     *queue.Buffer
	tracker *invalid.Tracker

	mode            Mode
	outputSuspended bool

	log *Logger
}

// New creates a console with the given options.
func New(opts Options) (*Console, error) {
	if opts.Logger == nil {
		opts.Logger = NewNopLogger()
	}
	if opts.ViewportWidth <= 0 {
		opts.ViewportWidth = 80
	}
	if opts.ViewportHeight <= 0 {
		opts.ViewportHeight = 24
	}

	buf, err := queue.NewWithOptions(opts.InitialCapacity, queue.Options{
		MaxCapacity:     opts.MaxCapacity,
		GrowthIncrement: opts.GrowthIncrement,
	})
	if err != nil {
		return nil, err
	}

	return &Console{
		buf:     buf,
		tracker: invalid.NewTracker(invalid.FromSize(opts.ViewportWidth, opts.ViewportHeight)),
		mode:    DefaultMode,
		log:     opts.Logger.WithComponent("host"),
	}, nil
}

// Tracker returns the invalidation tracker. The tracker carries its own
// synchronization; the console lock is not required.
func (c *Console) Tracker() *invalid.Tracker {
	return c.tracker
}

// Mode returns the current input mode flags.
func (c *Console) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.mode
}

// SetMode replaces the input mode flags.
func (c *Console) SetMode(mode Mode) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.mode = mode
}

// OutputSuspended reports whether a pause key has suspended output.
func (c *Console) OutputSuspended() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.outputSuspended
}

// Reinitialize resets the console to its initial state: empty buffer,
// cleared wait signal, default mode. Capacity is preserved.
func (c *Console) Reinitialize() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.mode = DefaultMode
	c.outputSuspended = false
	c.buf.Clear()
}

// CountReady returns the number of buffered records.
func (c *Console) CountReady() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.buf.CountReady()
}

// Capacity returns the current buffer capacity in records.
func (c *Console) Capacity() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.buf.Capacity()
}

// Signaled reports whether the buffer's "data is ready" signal is set.
func (c *Console) Signaled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.buf.Signaled()
}

// Flush empties the input buffer.
func (c *Console) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.buf.Clear()
}

// FlushAllButKeys discards everything except key records.
func (c *Console) FlushAllButKeys() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.buf.FlushAllButKeys()
}

// Resize grows the input buffer to hold newCapacity records.
func (c *Console) Resize(newCapacity int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.buf.Resize(newCapacity)
}

// Close shuts down the input buffer, waking any blocked readers with
// ErrClosed, and requests a final paint from the tracker.
func (c *Console) Close() {
	c.mu.Lock()
	c.buf.Close()
	c.mu.Unlock()

	c.tracker.PrepareForTeardown()
}

// WriteInput preprocesses and appends records to the input buffer. It
// returns the number of records accepted. Growth failures are non-fatal:
// whatever fit stays queued and the shortfall is reported.
func (c *Console) WriteInput(recs []record.Record) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	recs = c.preprocess(recs)
	if len(recs) == 0 {
		return 0, nil
	}

	n, err := c.buf.Write(recs)
	if err != nil {
		c.log.Warn("input buffer write accepted %d of %d records: %v", n, len(recs), err)
	}
	return n, err
}

// PrependInput inserts records ahead of everything already queued. The
// pre-existing records are read out and rewritten together with the new
// ones as a single write, so a growth failure can no longer lose records
// that a later sub-write would have restored. Returns the number of new
// records accepted.
func (c *Console) PrependInput(recs []record.Record) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	recs = c.preprocess(recs)
	if len(recs) == 0 {
		return 0, nil
	}

	existing := make([]record.Record, c.buf.CountReady())
	nExisting := c.buf.Read(existing, queue.ReadOptions{})

	combined := make([]record.Record, 0, len(recs)+nExisting)
	combined = append(combined, recs...)
	combined = append(combined, existing[:nExisting]...)

	written, err := c.buf.Write(combined)
	if err != nil {
		c.log.Warn("input buffer prepend accepted %d of %d records: %v", written, len(combined), err)
	}
	if written > len(recs) {
		written = len(recs)
	}
	return written, err
}

// ReadInputOptions controls a ReadInput call.
type ReadInputOptions struct {
	// Peek copies records without removing them.
	Peek bool

	// Stream returns one record per call for key events.
	Stream bool

	// Narrow counts the destination budget in character cells instead of
	// records; full-width characters cost two.
	Narrow bool

	// Wait suspends the caller until records arrive when the buffer is
	// empty. Without it an empty buffer returns zero records immediately.
	Wait bool
}

// ReadInput transfers up to len(dst) records into dst. When the buffer is
// empty and opts.Wait is set, the caller suspends — releasing the console
// lock — until a write arrives, the context is canceled, or the console is
// closed. Wakeups are level-triggered; the buffer state is re-checked
// every time.
//
// The handle, when non-nil, tracks the caller's outstanding suspension.
func (c *Console) ReadInput(ctx context.Context, dst []record.Record, opts ReadInputOptions, h *queue.ReadHandle) (int, error) {
	for {
		c.mu.Lock()

		if c.buf.Closed() {
			c.mu.Unlock()
			return 0, queue.ErrClosed
		}

		if c.buf.CountReady() > 0 {
			n := c.buf.Read(dst, queue.ReadOptions{
				Peek:   opts.Peek,
				Stream: opts.Stream,
				Narrow: opts.Narrow,
			})
			c.mu.Unlock()
			return n, nil
		}

		if !opts.Wait {
			c.mu.Unlock()
			return 0, nil
		}

		if h != nil {
			h.IncrementReadCount()
		}
		ready := c.buf.NotifyChan()
		c.mu.Unlock()

		select {
		case <-ready:
			if h != nil {
				h.DecrementReadCount()
			}
		case <-ctx.Done():
			if h != nil {
				h.DecrementReadCount()
			}
			return 0, ctx.Err()
		}
	}
}
