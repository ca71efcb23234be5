package record

// CanCoalesceMouseMove returns true if next is a pure mouse movement that
// may be folded into last by updating last's position in place. Window
// systems generate a movement event on every pointer update; folding them
// keeps the queue from filling with stale positions.
func CanCoalesceMouseMove(last, next Record) bool {
	return next.IsMouseMove() && last.IsMouseMove()
}

// CanCoalesceKeyRepeat returns true if next is a repeated key press that
// may be folded into last by summing repeat counts. Full-width characters
// are never coalesced. Events produced under IME composition match on
// character and control state only; all other events additionally require
// an identical scan code.
func CanCoalesceKeyRepeat(last, next Record) bool {
	if !next.IsKeyDown() || !last.IsKeyDown() {
		return false
	}
	if IsFullWidth(next.Key.Rune) {
		return false
	}

	if next.Key.ControlKeyState.Has(ImeConversion) {
		return last.Key.Rune == next.Key.Rune &&
			last.Key.ControlKeyState == next.Key.ControlKeyState
	}

	return last.Key.ScanCode == next.Key.ScanCode &&
		last.Key.Rune == next.Key.Rune &&
		last.Key.ControlKeyState == next.Key.ControlKeyState
}
