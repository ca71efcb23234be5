package record

import "strings"

// ControlKeyState is a bitmask of modifier and toggle keys active when a
// key event was generated.
type ControlKeyState uint32

const (
	// RightAlt indicates the right Alt key is held.
	RightAlt ControlKeyState = 1 << iota

	// LeftAlt indicates the left Alt key is held.
	LeftAlt

	// RightCtrl indicates the right Control key is held.
	RightCtrl

	// LeftCtrl indicates the left Control key is held.
	LeftCtrl

	// Shift indicates a Shift key is held.
	Shift

	// NumLock indicates Num Lock is on.
	NumLock

	// ScrollLock indicates Scroll Lock is on.
	ScrollLock

	// CapsLock indicates Caps Lock is on.
	CapsLock

	// Enhanced indicates an enhanced key (arrows, Ins, Del, numpad /).
	Enhanced

	// ImeConversion indicates the event was produced during IME
	// composition. Key-repeat coalescing uses a relaxed match for these
	// events because the scan code is not stable across a composition.
	ImeConversion
)

// Has returns true if s contains all of the given flags.
func (s ControlKeyState) Has(flags ControlKeyState) bool {
	return s&flags == flags
}

// HasCtrl returns true if either Control key is held.
func (s ControlKeyState) HasCtrl() bool {
	return s&(LeftCtrl|RightCtrl) != 0
}

// HasAlt returns true if either Alt key is held.
func (s ControlKeyState) HasAlt() bool {
	return s&(LeftAlt|RightAlt) != 0
}

// HasShift returns true if Shift is held.
func (s ControlKeyState) HasShift() bool {
	return s.Has(Shift)
}

// With returns a new state with the given flags added.
func (s ControlKeyState) With(flags ControlKeyState) ControlKeyState {
	return s | flags
}

// Without returns a new state with the given flags removed.
func (s ControlKeyState) Without(flags ControlKeyState) ControlKeyState {
	return s &^ flags
}

// String returns a compact representation like "Ctrl+Shift".
func (s ControlKeyState) String() string {
	if s == 0 {
		return "none"
	}

	var parts []string
	if s.HasCtrl() {
		parts = append(parts, "Ctrl")
	}
	if s.HasAlt() {
		parts = append(parts, "Alt")
	}
	if s.HasShift() {
		parts = append(parts, "Shift")
	}
	if s.Has(NumLock) {
		parts = append(parts, "NumLock")
	}
	if s.Has(ScrollLock) {
		parts = append(parts, "ScrollLock")
	}
	if s.Has(CapsLock) {
		parts = append(parts, "CapsLock")
	}
	if s.Has(Enhanced) {
		parts = append(parts, "Enhanced")
	}
	if s.Has(ImeConversion) {
		parts = append(parts, "IME")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "+")
}
