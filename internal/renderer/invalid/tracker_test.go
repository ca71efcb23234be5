package invalid

import "testing"

func newTestTracker() *Tracker {
	return NewTracker(FromSize(80, 24))
}

func TestTrackerInvalidate(t *testing.T) {
	t.Run("first region stored as is", func(t *testing.T) {
		tr := newTestTracker()
		if err := tr.Invalidate(NewRect(2, 3, 10, 6)); err != nil {
			t.Fatalf("Invalidate: %v", err)
		}

		got, ok := tr.Consume()
		if !ok {
			t.Fatal("Consume() ok = false, want true")
		}
		if !got.Equals(NewRect(2, 3, 10, 6)) {
			t.Errorf("Consume() = %v, want [2,10)x[3,6)", got)
		}
	})

	t.Run("second region unions into bounding box", func(t *testing.T) {
		tr := newTestTracker()
		tr.Invalidate(NewRect(0, 0, 2, 2))
		tr.Invalidate(NewRect(10, 10, 12, 12))

		got, ok := tr.Consume()
		if !ok {
			t.Fatal("Consume() ok = false, want true")
		}
		if !got.Equals(NewRect(0, 0, 12, 12)) {
			t.Errorf("Consume() = %v, want bounding box [0,12)x[0,12)", got)
		}
	})

	t.Run("clipped to viewport", func(t *testing.T) {
		tr := newTestTracker()
		tr.Invalidate(NewRect(70, 20, 200, 100))

		got, _ := tr.Consume()
		if !got.Equals(NewRect(70, 20, 80, 24)) {
			t.Errorf("Consume() = %v, want region truncated to viewport", got)
		}
	})

	t.Run("empty region ignored", func(t *testing.T) {
		tr := newTestTracker()
		tr.Invalidate(Rect{})
		if tr.HasDamage() {
			t.Error("empty region should not mark damage")
		}
	})
}

func TestTrackerInvalidateAll(t *testing.T) {
	tr := NewTracker(NewRect(0, 100, 80, 124)) // scrolled viewport
	tr.Invalidate(NewRect(1, 1, 2, 2))
	tr.InvalidateAll()

	got, ok := tr.Consume()
	if !ok {
		t.Fatal("Consume() ok = false, want true")
	}
	// The whole viewport, origin-relative.
	if !got.Equals(FromSize(80, 24)) {
		t.Errorf("Consume() = %v, want [0,80)x[0,24)", got)
	}
}

func TestTrackerConsume(t *testing.T) {
	tr := newTestTracker()
	tr.Invalidate(NewRect(1, 1, 5, 5))

	if _, ok := tr.Consume(); !ok {
		t.Fatal("first Consume() ok = false, want true")
	}

	// Consume after Consume with no intervening damage yields empty.
	got, ok := tr.Consume()
	if ok {
		t.Error("second Consume() ok = true, want false")
	}
	if !got.IsEmpty() {
		t.Errorf("second Consume() = %v, want empty", got)
	}
}

func TestTrackerOffsetBy(t *testing.T) {
	t.Run("covers vacated area", func(t *testing.T) {
		tr := newTestTracker()
		tr.Invalidate(NewRect(0, 10, 80, 12))

		// Scroll up by two rows: the slid region and the original are
		// both pending.
		if err := tr.OffsetBy(0, -2); err != nil {
			t.Fatalf("OffsetBy: %v", err)
		}
		got, _ := tr.Consume()
		if !got.Equals(NewRect(0, 8, 80, 12)) {
			t.Errorf("Consume() = %v, want [0,80)x[8,12)", got)
		}
	})

	t.Run("re-clips to viewport", func(t *testing.T) {
		tr := newTestTracker()
		tr.Invalidate(NewRect(0, 22, 80, 24))
		if err := tr.OffsetBy(0, 5); err != nil {
			t.Fatalf("OffsetBy: %v", err)
		}
		got, _ := tr.Consume()
		if got.Bottom > 24 {
			t.Errorf("Consume() = %v, exceeds viewport", got)
		}
	})

	t.Run("no damage is a no-op", func(t *testing.T) {
		tr := newTestTracker()
		if err := tr.OffsetBy(3, 3); err != nil {
			t.Fatalf("OffsetBy: %v", err)
		}
		if tr.HasDamage() {
			t.Error("OffsetBy on empty tracker should not create damage")
		}
	})
}

func TestTrackerCursor(t *testing.T) {
	t.Run("tracks virtual top", func(t *testing.T) {
		tr := NewTracker(FromSize(80, 24))
		tr.InvalidateCursor(5, 10)
		if got := tr.VirtualTop(); got != 0 {
			t.Errorf("VirtualTop() = %d, want 0 (cursor below top)", got)
		}

		tr2 := NewTracker(NewRect(0, 50, 80, 74))
		tr2.InvalidateCursor(5, 40)
		if got := tr2.VirtualTop(); got != 40 {
			t.Errorf("VirtualTop() = %d, want 40", got)
		}
	})

	t.Run("skip suppresses one notification", func(t *testing.T) {
		tr := NewTracker(NewRect(0, 50, 80, 74))
		tr.SkipNextCursor()
		tr.InvalidateCursor(5, 10)
		if got := tr.VirtualTop(); got != 50 {
			t.Errorf("VirtualTop() = %d, want 50 (skipped)", got)
		}

		tr.InvalidateCursor(5, 10)
		if got := tr.VirtualTop(); got != 10 {
			t.Errorf("VirtualTop() = %d, want 10 after skip expires", got)
		}
	})

	t.Run("flags a move until consumed", func(t *testing.T) {
		tr := newTestTracker()
		if tr.CursorMoved() {
			t.Error("CursorMoved() = true before any move")
		}
		tr.InvalidateCursor(1, 1)
		if !tr.CursorMoved() {
			t.Error("CursorMoved() = false after a move")
		}
		tr.Consume()
		if tr.CursorMoved() {
			t.Error("CursorMoved() = true after Consume")
		}
	})
}

func TestTrackerCircling(t *testing.T) {
	tr := newTestTracker()
	if !tr.InvalidateCircling() {
		t.Error("InvalidateCircling() = false, want forced paint")
	}
	if !tr.Circled() {
		t.Error("Circled() = false after circling notification")
	}
	tr.Consume()
	if tr.Circled() {
		t.Error("Circled() = true after Consume")
	}
}

func TestTrackerTeardown(t *testing.T) {
	tr := newTestTracker()
	if !tr.PrepareForTeardown() {
		t.Error("PrepareForTeardown() = false, want forced paint")
	}
}

func TestTrackerSetViewport(t *testing.T) {
	tr := newTestTracker()
	tr.Invalidate(NewRect(0, 0, 80, 24))

	// Shrinking the viewport re-clips pending damage.
	tr.SetViewport(FromSize(40, 12))
	got, _ := tr.Consume()
	if !got.Equals(FromSize(40, 12)) {
		t.Errorf("Consume() = %v, want [0,40)x[0,12)", got)
	}
}

func TestTrackerSelection(t *testing.T) {
	tr := newTestTracker()
	if err := tr.InvalidateSelection([]Rect{NewRect(0, 0, 5, 1)}); err != nil {
		t.Fatalf("InvalidateSelection: %v", err)
	}
	if tr.HasDamage() {
		t.Error("selection notifications should not mark damage")
	}
}
