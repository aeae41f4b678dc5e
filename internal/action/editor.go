// Package action routes keystrokes to the focused window and implements
// the editing primitives, the minibar mode machine, and the command set.
package action

import (
	"github.com/ellery/tilde/internal/layout"
)

// Editor is the dispatcher: it owns the region tree and decides whether a
// keystroke belongs to the focused window's minibar or its editor handler.
type Editor struct {
	Tree *layout.Tree

	// Pending reports whether terminal input is waiting. A running search
	// polls it so a newer keystroke can abort a stale scan.
	Pending func() bool

	quit bool
}

// NewEditor makes a dispatcher over the given tree.
func NewEditor(t *layout.Tree) *Editor {
	return &Editor{Tree: t}
}

// Quitting reports whether Ctrl-Q was seen.
func (e *Editor) Quitting() bool {
	return e.quit
}

// HandleKey dispatches one keystroke. Ctrl-Q is intercepted globally; every
// other key goes to the focused window's minibar handler when the minibar
// is active, else to its editor handler. The window's previous keycode is
// updated after the dispatch.
func (e *Editor) HandleKey(k Keycode) {
	if k == KeyNone {
		return
	}
	if k == KeyCtrlQ {
		e.quit = true
		return
	}

	w := e.Tree.Active
	if w.Bar.Active() {
		e.minibarKey(w, k)
	} else {
		e.editorKey(w, k)
	}
	w.PrevKey = int(k)
}

func (e *Editor) editorKey(w *layout.Window, k Keycode) {
	switch k {
	case KeyShiftRight:
		e.Tree.FocusNext()
	case KeyShiftLeft:
		e.Tree.FocusPrev()
	case KeyShiftUp:
		w.PageUp()
	case KeyShiftDown:
		w.PageDown()

	case KeyCtrlUp, KeyCtrlLeft:
		e.Tree.Resize(w, -1)
	case KeyCtrlDown, KeyCtrlRight:
		e.Tree.Resize(w, 1)

	case KeyUp:
		w.MoveUp()
	case KeyDown:
		w.MoveDown()
	case KeyLeft:
		w.MoveLeft()
	case KeyRight:
		w.MoveRight()
	case KeyHome:
		w.MoveHome()
	case KeyEnd:
		w.MoveEnd()
	case KeyShiftHome:
		w.MoveFileStart()
	case KeyShiftEnd:
		w.MoveFileEnd()

	case KeyCtrlG:
		openBar(w, layout.BarOpen)
	case KeyCtrlN:
		openBar(w, layout.BarNew)
	case KeyCtrlR:
		openBar(w, layout.BarCommand)
	case KeyCtrlF:
		openBar(w, layout.BarFind)

	case KeyCtrlS:
		saveBuffer(w)
	case KeyCtrlB:
		w.Mark = layout.Mark{Loc: w.Cursor, Valid: true}
	case KeyCtrlC:
		copyBlock(w)
	case KeyCtrlX:
		cutBlock(w)
	case KeyCtrlV:
		paste(w)

	case KeyEscape:
		w.ClearError()

	case KeyEnter:
		insertNewline(w)
	case KeyDelete:
		deleteUnit(w, false)
	case KeyCtrlDelete:
		deleteUnit(w, true)
	case KeyTab:
		insertIndent(w)

	default:
		if k.Printable() {
			insertChar(w, byte(k))
		}
	}
}

func saveBuffer(w *layout.Window) {
	if w.Buf == nil {
		return
	}
	if err := w.Buf.Save(); err != nil {
		w.SetError("can not save file " + w.Buf.Path)
	}
}
