package source

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/termhost/internal/input/record"
)

// Translator converts tcell events into input records. It keeps the last
// observed pointer position and button state so it can distinguish motion
// from clicks and releases. Not safe for concurrent use; drive it from a
// single event pump.
type Translator struct {
	lastX       int
	lastY       int
	lastButtons record.ButtonState
}

// NewTranslator creates a translator with no pointer history.
func NewTranslator() *Translator {
	return &Translator{lastX: -1, lastY: -1}
}

// Translate converts one tcell event into zero or more records. Events
// with no record representation (paste markers, interrupts) yield nil.
func (t *Translator) Translate(ev tcell.Event) []record.Record {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return []record.Record{t.translateKey(e)}

	case *tcell.EventMouse:
		return t.translateMouse(e)

	case *tcell.EventResize:
		w, h := e.Size()
		return []record.Record{record.NewBufferSize(w, h)}

	case *tcell.EventFocus:
		return []record.Record{record.NewFocus(e.Focused)}

	default:
		return nil
	}
}

func (t *Translator) translateKey(e *tcell.EventKey) record.Record {
	state := translateModifiers(e.Modifiers())

	r := e.Rune()
	vk, ok := virtualKeyFor(e.Key())
	if !ok {
		vk = virtualKeyForRune(r)
	}

	return record.NewKeyDown(vk, 0, r, state)
}

func (t *Translator) translateMouse(e *tcell.EventMouse) []record.Record {
	x, y := e.Position()
	buttons, wheel := translateButtons(e.Buttons())

	var recs []record.Record

	if wheel != 0 {
		recs = append(recs, record.NewMouse(x, y, buttons, wheel))
	}

	if buttons != t.lastButtons {
		recs = append(recs, record.NewMouse(x, y, buttons, 0))
	} else if wheel == 0 && (x != t.lastX || y != t.lastY) {
		recs = append(recs, record.NewMouse(x, y, buttons, record.MouseMoved))
	}

	t.lastX, t.lastY = x, y
	t.lastButtons = buttons
	return recs
}

// translateModifiers maps the tcell modifier mask onto control key flags.
// tcell cannot tell left from right, so the left-side flags stand in.
func translateModifiers(mod tcell.ModMask) record.ControlKeyState {
	var state record.ControlKeyState
	if mod&tcell.ModCtrl != 0 {
		state |= record.LeftCtrl
	}
	if mod&tcell.ModAlt != 0 {
		state |= record.LeftAlt
	}
	if mod&tcell.ModShift != 0 {
		state |= record.Shift
	}
	return state
}

// translateButtons splits the tcell button mask into held buttons and
// wheel flags.
func translateButtons(b tcell.ButtonMask) (record.ButtonState, record.MouseFlags) {
	var buttons record.ButtonState
	if b&tcell.Button1 != 0 {
		buttons |= record.ButtonLeft
	}
	if b&tcell.Button2 != 0 {
		buttons |= record.ButtonRight
	}
	if b&tcell.Button3 != 0 {
		buttons |= record.ButtonMiddle
	}

	var wheel record.MouseFlags
	if b&(tcell.WheelUp|tcell.WheelDown) != 0 {
		wheel |= record.MouseWheeled
	}
	if b&(tcell.WheelLeft|tcell.WheelRight) != 0 {
		wheel |= record.MouseHWheeled
	}
	return buttons, wheel
}

// virtualKeyFor maps named tcell keys to virtual key identifiers. Rune
// keys fall through to virtualKeyForRune.
func virtualKeyFor(k tcell.Key) (uint16, bool) {
	switch k {
	case tcell.KeyEscape:
		return 0x1B, true
	case tcell.KeyEnter:
		return 0x0D, true
	case tcell.KeyTab:
		return 0x09, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return 0x08, true
	case tcell.KeyDelete:
		return 0x2E, true
	case tcell.KeyInsert:
		return 0x2D, true
	case tcell.KeyHome:
		return 0x24, true
	case tcell.KeyEnd:
		return 0x23, true
	case tcell.KeyPgUp:
		return 0x21, true
	case tcell.KeyPgDn:
		return 0x22, true
	case tcell.KeyUp:
		return 0x26, true
	case tcell.KeyDown:
		return 0x28, true
	case tcell.KeyLeft:
		return 0x25, true
	case tcell.KeyRight:
		return 0x27, true
	case tcell.KeyPause:
		return record.VKPause, true
	default:
		if k >= tcell.KeyF1 && k <= tcell.KeyF12 {
			return 0x70 + uint16(k-tcell.KeyF1), true
		}
		return 0, false
	}
}

// virtualKeyForRune derives a virtual key for printable input. Letters
// map to their uppercase identifier, digits to themselves; anything else
// carries no virtual key and is identified by its rune alone.
func virtualKeyForRune(r rune) uint16 {
	switch {
	case r >= 'a' && r <= 'z':
		return uint16(unicode.ToUpper(r))
	case r >= 'A' && r <= 'Z':
		return uint16(r)
	case r >= '0' && r <= '9':
		return uint16(r)
	default:
		return 0
	}
}
