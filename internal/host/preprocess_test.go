package host

import (
	"context"
	"testing"

	"github.com/dshills/termhost/internal/input/record"
)

func pauseRec() record.Record {
	return record.NewKeyDown(record.VKPause, 0, 0, 0)
}

func ctrlS() record.Record {
	return record.NewKeyDown(0x53, 31, 's', record.LeftCtrl)
}

func TestPreprocessPauseSuspends(t *testing.T) {
	tests := []struct {
		name    string
		rec     record.Record
		suspend bool
	}{
		{"pause key", pauseRec(), true},
		{"ctrl-s", ctrlS(), true},
		{"plain key", keyRec(1, 'a'), false},
		{"ctrl-s with alt", record.NewKeyDown(0x53, 31, 's', record.LeftCtrl|record.LeftAlt), false},
		{"key up", record.NewKey(false, record.VKPause, 0, 0, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestConsole(t)
			n, err := c.WriteInput([]record.Record{tt.rec})
			if err != nil {
				t.Fatalf("WriteInput: %v", err)
			}
			if got := c.OutputSuspended(); got != tt.suspend {
				t.Errorf("OutputSuspended() = %v, want %v", got, tt.suspend)
			}
			if tt.suspend {
				if n != 0 {
					t.Errorf("WriteInput = %d, want 0 (pause stroke swallowed)", n)
				}
				if got := c.CountReady(); got != 0 {
					t.Errorf("CountReady() = %d, want 0", got)
				}
			} else if n != 1 {
				t.Errorf("WriteInput = %d, want 1", n)
			}
		})
	}
}

func TestPreprocessResume(t *testing.T) {
	c := newTestConsole(t)
	c.WriteInput([]record.Record{pauseRec()})
	if !c.OutputSuspended() {
		t.Fatal("pause key did not suspend output")
	}

	// The resuming key press is swallowed too.
	n, err := c.WriteInput([]record.Record{keyRec(1, 'a')})
	if err != nil {
		t.Fatalf("WriteInput: %v", err)
	}
	if n != 0 {
		t.Errorf("WriteInput = %d, want 0 (resume stroke swallowed)", n)
	}
	if c.OutputSuspended() {
		t.Error("OutputSuspended() = true after resume key")
	}
	if got := c.CountReady(); got != 0 {
		t.Errorf("CountReady() = %d, want 0", got)
	}
}

func TestPreprocessSystemKeysWhileSuspended(t *testing.T) {
	// Modifier and lock keys neither resume output nor get swallowed.
	systemKeys := []struct {
		name string
		vk   uint16
	}{
		{"shift", record.VKShift},
		{"control", record.VKControl},
		{"alt", record.VKMenu},
		{"caps lock", record.VKCapsLock},
		{"num lock", record.VKNumLock},
		{"scroll lock", record.VKScrollLock},
	}

	for _, tt := range systemKeys {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestConsole(t)
			c.WriteInput([]record.Record{pauseRec()})

			n, err := c.WriteInput([]record.Record{record.NewKeyDown(tt.vk, 0, 0, 0)})
			if err != nil {
				t.Fatalf("WriteInput: %v", err)
			}
			if n != 1 {
				t.Errorf("WriteInput = %d, want 1 (system key passes through)", n)
			}
			if !c.OutputSuspended() {
				t.Error("OutputSuspended() = false; system key should not resume")
			}
		})
	}
}

func TestPreprocessPauseIgnoredWithoutLineInput(t *testing.T) {
	c := newTestConsole(t)
	c.SetMode(DefaultMode &^ ModeLineInput)

	n, err := c.WriteInput([]record.Record{pauseRec()})
	if err != nil {
		t.Fatalf("WriteInput: %v", err)
	}
	if n != 1 {
		t.Errorf("WriteInput = %d, want 1 (pause key queued as data)", n)
	}
	if c.OutputSuspended() {
		t.Error("OutputSuspended() = true without line-input mode")
	}
}

func TestPreprocessNonKeyEventsPassThrough(t *testing.T) {
	c := newTestConsole(t)
	c.WriteInput([]record.Record{pauseRec()})

	recs := []record.Record{
		record.NewMouseMove(3, 4),
		record.NewBufferSize(80, 24),
		record.NewFocus(true),
	}
	n, err := c.WriteInput(recs)
	if err != nil {
		t.Fatalf("WriteInput: %v", err)
	}
	if n != len(recs) {
		t.Errorf("WriteInput = %d, want %d", n, len(recs))
	}
	if !c.OutputSuspended() {
		t.Error("non-key events should not resume output")
	}
}

func TestPreprocessMixedBatch(t *testing.T) {
	// A batch carrying a pause stroke keeps everything before it and
	// swallows only the stroke itself.
	c := newTestConsole(t)

	n, err := c.WriteInput([]record.Record{keyRec(1, 'a'), pauseRec(), keyRec(2, 'b')})
	if err != nil {
		t.Fatalf("WriteInput: %v", err)
	}
	// 'a' queued, pause swallowed+suspends, 'b' resumes and is swallowed.
	if n != 1 {
		t.Errorf("WriteInput = %d, want 1", n)
	}
	if c.OutputSuspended() {
		t.Error("OutputSuspended() = true; trailing key should have resumed")
	}

	dst := make([]record.Record, 4)
	rn, err := c.ReadInput(context.Background(), dst, ReadInputOptions{}, nil)
	if err != nil || rn != 1 {
		t.Fatalf("ReadInput = (%d, %v), want (1, nil)", rn, err)
	}
	if dst[0].Key.Rune != 'a' {
		t.Errorf("queued rune = %q, want 'a'", dst[0].Key.Rune)
	}
}
