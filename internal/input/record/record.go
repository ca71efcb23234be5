package record

import "fmt"

// Kind identifies the payload carried by a Record.
type Kind uint8

const (
	// KindKey is a keyboard event.
	KindKey Kind = iota

	// KindMouse is a mouse event.
	KindMouse

	// KindBufferSize is a screen buffer resize event.
	KindBufferSize

	// KindFocus is a window focus change event.
	KindFocus

	// KindMenu is a menu command event.
	KindMenu
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindKey:
		return "key"
	case KindMouse:
		return "mouse"
	case KindBufferSize:
		return "buffer-size"
	case KindFocus:
		return "focus"
	case KindMenu:
		return "menu"
	default:
		return "unknown"
	}
}

// KeyEvent describes a single key press or release.
type KeyEvent struct {
	// Down is true for a key press, false for a release.
	Down bool

	// RepeatCount is the number of times the key stroke is repeated.
	// Adjacent identical key-down records are merged by summing this.
	RepeatCount uint16

	// VirtualKey is the device-independent key identifier.
	VirtualKey uint16

	// ScanCode is the device-dependent key identifier.
	ScanCode uint16

	// Rune is the translated character, or 0 for non-character keys.
	Rune rune

	// ControlKeyState holds the modifier and toggle key flags.
	ControlKeyState ControlKeyState
}

// MouseFlags describes what a mouse event represents.
type MouseFlags uint16

const (
	// MouseMoved indicates a position change.
	MouseMoved MouseFlags = 1 << iota

	// MouseDoubleClick indicates the second click of a double click.
	MouseDoubleClick

	// MouseWheeled indicates a vertical wheel rotation.
	MouseWheeled

	// MouseHWheeled indicates a horizontal wheel rotation.
	MouseHWheeled
)

// ButtonState is a bitmask of pressed mouse buttons.
type ButtonState uint16

const (
	// ButtonLeft is the primary (left) mouse button.
	ButtonLeft ButtonState = 1 << iota

	// ButtonRight is the secondary (right) mouse button.
	ButtonRight

	// ButtonMiddle is the middle mouse button.
	ButtonMiddle
)

// MouseEvent describes a mouse movement, click, or wheel rotation.
type MouseEvent struct {
	// X and Y are the cell coordinates of the pointer.
	X int
	Y int

	// Buttons is the set of buttons held at the time of the event.
	Buttons ButtonState

	// Flags describes the event (moved, double click, wheel).
	Flags MouseFlags
}

// BufferSizeEvent describes a change in the screen buffer dimensions.
type BufferSizeEvent struct {
	Width  int
	Height int
}

// FocusEvent describes a window focus change.
type FocusEvent struct {
	// Gained is true when focus was acquired, false when lost.
	Gained bool
}

// MenuEvent describes a menu command.
type MenuEvent struct {
	CommandID uint32
}

// Record is a tagged union of input event payloads. Only the payload
// selected by Kind is meaningful; the rest are zero values. Records are
// fixed size and copied by value throughout the pipeline.
type Record struct {
	Kind Kind

	Key   KeyEvent
	Mouse MouseEvent
	Size  BufferSizeEvent
	Focus FocusEvent
	Menu  MenuEvent
}

// NewKey creates a key record with a repeat count of one.
func NewKey(down bool, virtualKey, scanCode uint16, r rune, state ControlKeyState) Record {
	return Record{
		Kind: KindKey,
		Key: KeyEvent{
			Down:            down,
			RepeatCount:     1,
			VirtualKey:      virtualKey,
			ScanCode:        scanCode,
			Rune:            r,
			ControlKeyState: state,
		},
	}
}

// NewKeyDown creates a key-down record for a character key.
func NewKeyDown(virtualKey, scanCode uint16, r rune, state ControlKeyState) Record {
	return NewKey(true, virtualKey, scanCode, r, state)
}

// NewMouse creates a mouse record.
func NewMouse(x, y int, buttons ButtonState, flags MouseFlags) Record {
	return Record{
		Kind:  KindMouse,
		Mouse: MouseEvent{X: x, Y: y, Buttons: buttons, Flags: flags},
	}
}

// NewMouseMove creates a mouse record carrying only a position change.
func NewMouseMove(x, y int) Record {
	return NewMouse(x, y, 0, MouseMoved)
}

// NewBufferSize creates a buffer resize record.
func NewBufferSize(width, height int) Record {
	return Record{
		Kind: KindBufferSize,
		Size: BufferSizeEvent{Width: width, Height: height},
	}
}

// NewFocus creates a focus change record.
func NewFocus(gained bool) Record {
	return Record{Kind: KindFocus, Focus: FocusEvent{Gained: gained}}
}

// NewMenu creates a menu command record.
func NewMenu(commandID uint32) Record {
	return Record{Kind: KindMenu, Menu: MenuEvent{CommandID: commandID}}
}

// IsKeyDown returns true if this is a key press record.
func (r Record) IsKeyDown() bool {
	return r.Kind == KindKey && r.Key.Down
}

// IsMouseMove returns true if this is a pure mouse movement record
// (position change with no click or wheel component).
func (r Record) IsMouseMove() bool {
	return r.Kind == KindMouse && r.Mouse.Flags == MouseMoved
}

// String returns a human-readable representation for logs and debugging.
func (r Record) String() string {
	switch r.Kind {
	case KindKey:
		action := "up"
		if r.Key.Down {
			action = "down"
		}
		return fmt.Sprintf("key %s vk=%d sc=%d rune=%q repeat=%d state=%s",
			action, r.Key.VirtualKey, r.Key.ScanCode, r.Key.Rune,
			r.Key.RepeatCount, r.Key.ControlKeyState)
	case KindMouse:
		return fmt.Sprintf("mouse (%d,%d) buttons=%b flags=%b",
			r.Mouse.X, r.Mouse.Y, r.Mouse.Buttons, r.Mouse.Flags)
	case KindBufferSize:
		return fmt.Sprintf("buffer-size %dx%d", r.Size.Width, r.Size.Height)
	case KindFocus:
		if r.Focus.Gained {
			return "focus gained"
		}
		return "focus lost"
	case KindMenu:
		return fmt.Sprintf("menu command=%d", r.Menu.CommandID)
	default:
		return "unknown record"
	}
}
