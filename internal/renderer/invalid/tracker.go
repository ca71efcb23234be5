package invalid

import "sync"

// Tracker accumulates damage notifications into one pending rectangle.
// Each mutation unions the new damage with what is already pending and
// clips the result to the current viewport, so a paint step never sees
// bounds outside the visible area. The paint step calls Consume to take
// the rectangle and reset the tracker.
type Tracker struct {
	mu sync.RWMutex

	// viewport is the visible area in buffer coordinates. Damage is
	// tracked relative to its origin.
	viewport Rect

	// invalid is the pending damage, meaningful only when used is true.
	invalid Rect
	used    bool

	// cursorMoved is set when the cursor position changed since the last
	// paint.
	cursorMoved bool

	// skipCursor suppresses virtual-top adjustment for the next cursor
	// notification, used when a cursor position is inherited rather than
	// moved.
	skipCursor bool

	// virtualTop is the highest row the cursor has reached, tracked so
	// scrolled-out rows above it need no repaint.
	virtualTop int

	// circled is set when the buffer is about to wrap and its contents
	// must be painted before they are lost.
	circled bool
}

// NewTracker creates a tracker for the given viewport.
func NewTracker(viewport Rect) *Tracker {
	return &Tracker{
		viewport:   viewport,
		virtualTop: viewport.Top,
	}
}

// SetViewport updates the visible area and re-clips any pending damage to
// it.
func (t *Tracker) SetViewport(viewport Rect) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.viewport = viewport
	t.restrict()
}

// Viewport returns the current visible area.
func (t *Tracker) Viewport() Rect {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.viewport
}

// Invalidate adds a damaged region to the pending rectangle.
func (t *Tracker) Invalidate(region Rect) error {
	if region.IsEmpty() {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.combine(region)
	return nil
}

// InvalidateAll marks the entire viewport as damaged.
func (t *Tracker) InvalidateAll() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.combine(t.viewport.ToOrigin())
	return nil
}

// InvalidateSelection handles selection-change notifications. Selection
// drawing is the client's concern, not the host's, so nothing is marked.
func (t *Tracker) InvalidateSelection(regions []Rect) error {
	return nil
}

// InvalidateCursor records a cursor move at (x, y). The cursor cell itself
// is repainted by the cursor pass, so no region is marked, but the move is
// flagged and the virtual top follows the cursor upward.
func (t *Tracker) InvalidateCursor(x, y int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.skipCursor && t.virtualTop > y {
		t.virtualTop = y
	}
	t.skipCursor = false
	t.cursorMoved = true
	return nil
}

// SkipNextCursor suppresses virtual-top tracking for the next cursor
// notification. Used when the cursor position is inherited at startup and
// the first notification does not represent a real move.
func (t *Tracker) SkipNextCursor() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.skipCursor = true
}

// InvalidateCircling notifies that the buffer is about to wrap. Returns
// true: everything must be painted before the contents are lost.
func (t *Tracker) InvalidateCircling() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.circled = true
	return true
}

// PrepareForTeardown notifies that the host is shutting down. Returns
// true: a final paint must happen before the buffer goes away.
func (t *Tracker) PrepareForTeardown() bool {
	return true
}

// OffsetBy slides the pending damage by (dx, dy) on scroll. The slid
// rectangle is unioned with the pre-offset one so the vacated area is
// repainted too, then clipped to the viewport.
func (t *Tracker) OffsetBy(dx, dy int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.used {
		return nil
	}

	moved, err := t.invalid.Offset(dx, dy)
	if err != nil {
		return err
	}
	t.invalid = t.invalid.Union(moved)
	t.restrict()
	return nil
}

// CursorMoved reports whether the cursor changed position since the last
// Consume.
func (t *Tracker) CursorMoved() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.cursorMoved
}

// Circled reports whether the buffer wrapped since the last Consume.
func (t *Tracker) Circled() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.circled
}

// VirtualTop returns the highest row the cursor has reached.
func (t *Tracker) VirtualTop() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.virtualTop
}

// HasDamage reports whether any region is pending.
func (t *Tracker) HasDamage() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.used
}

// Consume returns the pending damage rectangle and resets the tracker to
// the no-damage state. The second result is false when nothing was
// pending.
func (t *Tracker) Consume() (Rect, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	region, ok := t.invalid, t.used
	t.invalid = Rect{}
	t.used = false
	t.cursorMoved = false
	t.circled = false
	return region, ok
}

// combine unions a region into the pending rectangle and re-clips.
// Caller holds the lock.
func (t *Tracker) combine(region Rect) {
	if !t.used {
		t.invalid = region
		t.used = true
	} else {
		t.invalid = t.invalid.Union(region)
	}
	t.restrict()
}

// restrict clips the pending rectangle to the origin-translated viewport.
// Caller holds the lock.
func (t *Tracker) restrict() {
	if !t.used {
		return
	}
	t.invalid = t.invalid.Intersect(t.viewport.ToOrigin())
}
