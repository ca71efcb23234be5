package record

// Virtual key identifiers for the keys the pipeline itself inspects.
// Translation of the full keyboard is the input layer's concern; the
// pipeline only needs to recognize pause/resume and pure modifier keys.
const (
	// VKPause is the Pause/Break key.
	VKPause uint16 = 0x13

	// VKShift, VKControl, and VKMenu are the generic modifier keys.
	VKShift   uint16 = 0x10
	VKControl uint16 = 0x11
	VKMenu    uint16 = 0x12

	// VKCapsLock, VKNumLock, and VKScrollLock are the toggle keys.
	VKCapsLock   uint16 = 0x14
	VKNumLock    uint16 = 0x90
	VKScrollLock uint16 = 0x91
)

// IsSystemKey returns true for keys that never carry input of their own:
// modifiers and lock toggles. Pressing one while output is suspended does
// not resume output.
func IsSystemKey(virtualKey uint16) bool {
	switch virtualKey {
	case VKShift, VKControl, VKMenu, VKCapsLock, VKNumLock, VKScrollLock, VKPause:
		return true
	default:
		return false
	}
}

// IsPauseKey returns true if the key event requests output suspension:
// the Pause key, or Ctrl+S with no other modifiers held.
func IsPauseKey(ev KeyEvent) bool {
	if ev.VirtualKey == VKPause {
		return true
	}
	// Ctrl+S may arrive as the letter or as the translated control rune.
	isS := ev.Rune == 's' || ev.Rune == 0x13
	return isS && ev.ControlKeyState.HasCtrl() &&
		!ev.ControlKeyState.HasAlt() && !ev.ControlKeyState.HasShift()
}
