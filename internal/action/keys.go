package action

import "github.com/micro-editor/tcell/v2"

// Keycode identifies one logical keypress. Control letters keep their
// terminal byte values (0x01..0x1A) and printable ASCII keys are their own
// byte, so a keycode below 0x80 can be written to a buffer directly.
// Everything the terminal encodes as an escape sequence sits above 0x100.
type Keycode int

const (
	KeyNone Keycode = 0

	KeyTab   Keycode = 0x09
	KeyEnter Keycode = 0x0A

	KeyCtrlB Keycode = 0x02
	KeyCtrlC Keycode = 0x03
	KeyCtrlF Keycode = 0x06
	KeyCtrlG Keycode = 0x07
	KeyCtrlN Keycode = 0x0E
	KeyCtrlQ Keycode = 0x11
	KeyCtrlR Keycode = 0x12
	KeyCtrlS Keycode = 0x13
	KeyCtrlV Keycode = 0x16
	KeyCtrlX Keycode = 0x18
)

const (
	KeyDelete Keycode = 0x100 + iota
	KeyCtrlDelete
	KeyEscape
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyShiftUp
	KeyShiftDown
	KeyShiftLeft
	KeyShiftRight
	KeyCtrlUp
	KeyCtrlDown
	KeyCtrlLeft
	KeyCtrlRight
	KeyHome
	KeyEnd
	KeyShiftHome
	KeyShiftEnd
)

// Printable reports whether the keycode is a printable ASCII cell.
func (k Keycode) Printable() bool {
	return k >= 0x20 && k <= 0x7E
}

// KeyFromEvent translates a tcell key event into a keycode. Events outside
// the editor's key surface come back as KeyNone and are absorbed.
func KeyFromEvent(ev *tcell.EventKey) Keycode {
	shift := ev.Modifiers()&tcell.ModShift != 0
	ctrl := ev.Modifiers()&tcell.ModCtrl != 0

	switch ev.Key() {
	case tcell.KeyTab:
		return KeyTab
	case tcell.KeyEnter:
		return KeyEnter
	case tcell.KeyBackspace2:
		return KeyDelete
	case tcell.KeyBackspace:
		return KeyCtrlDelete
	case tcell.KeyEscape:
		return KeyEscape
	case tcell.KeyUp:
		if shift {
			return KeyShiftUp
		}
		if ctrl {
			return KeyCtrlUp
		}
		return KeyUp
	case tcell.KeyDown:
		if shift {
			return KeyShiftDown
		}
		if ctrl {
			return KeyCtrlDown
		}
		return KeyDown
	case tcell.KeyLeft:
		if shift {
			return KeyShiftLeft
		}
		if ctrl {
			return KeyCtrlLeft
		}
		return KeyLeft
	case tcell.KeyRight:
		if shift {
			return KeyShiftRight
		}
		if ctrl {
			return KeyCtrlRight
		}
		return KeyRight
	case tcell.KeyHome:
		if shift {
			return KeyShiftHome
		}
		return KeyHome
	case tcell.KeyEnd:
		if shift {
			return KeyShiftEnd
		}
		return KeyEnd
	case tcell.KeyRune:
		r := ev.Rune()
		if r >= 0x20 && r <= 0x7E {
			return Keycode(r)
		}
		// Multi-byte input has no cell representation in this editor.
		return KeyNone
	}

	// Control letters arrive as their byte values.
	if k := ev.Key(); k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return Keycode(k)
	}
	return KeyNone
}
