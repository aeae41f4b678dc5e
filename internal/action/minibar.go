package action

import (
	"github.com/ellery/tilde/internal/buffer"
	"github.com/ellery/tilde/internal/layout"
	"github.com/ellery/tilde/internal/search"
)

// Prompt is the status-bar prefix for an active minibar mode.
func Prompt(mode layout.BarMode) string {
	switch mode {
	case layout.BarOpen:
		return "open: "
	case layout.BarNew:
		return "new: "
	case layout.BarCommand:
		return "command: "
	case layout.BarFind:
		return "find: "
	}
	return ""
}

func openBar(w *layout.Window, mode layout.BarMode) {
	w.Bar = layout.Minibar{Mode: mode}
	w.ClearError()
	if mode == layout.BarFind {
		w.Search.Clear()
		w.Search.Saved = w.Cursor
	}
}

func closeBar(w *layout.Window) {
	w.Bar = layout.Minibar{}
}

func (e *Editor) minibarKey(w *layout.Window, k Keycode) {
	bar := &w.Bar
	find := bar.Mode == layout.BarFind

	switch k {
	case KeyEscape:
		if find {
			w.Cursor = w.Search.Saved
			w.CursorXIdeal = w.Cursor.X
			w.Search.Clear()
			w.Redraw = true
			w.Relocate()
		}
		closeBar(w)

	case KeyEnter:
		e.commitBar(w)

	case KeyLeft:
		if bar.Cursor > 0 {
			bar.Cursor--
		}
	case KeyRight:
		if bar.Cursor < len(bar.Data) {
			bar.Cursor++
		}
	case KeyHome, KeyShiftHome:
		bar.Cursor = 0
	case KeyEnd, KeyShiftEnd:
		bar.Cursor = len(bar.Data)

	case KeyUp:
		if find {
			w.Search.Advance(-1)
			moveToMatch(w)
		}
	case KeyDown:
		if find {
			w.Search.Advance(1)
			moveToMatch(w)
		}
	case KeyCtrlUp:
		if find {
			w.Search.Advance(-w.Search.JumpStride())
			moveToMatch(w)
		}
	case KeyCtrlDown:
		if find {
			w.Search.Advance(w.Search.JumpStride())
			moveToMatch(w)
		}

	case KeyDelete, KeyCtrlDelete:
		n := deleteCount(bar.Data[:bar.Cursor], k == KeyCtrlDelete)
		if n > bar.Cursor {
			n = bar.Cursor
		}
		if n > 0 {
			bar.Data = append(bar.Data[:bar.Cursor-n], bar.Data[bar.Cursor:]...)
			bar.Cursor -= n
			if find {
				e.runFind(w)
			}
		}

	default:
		if k.Printable() {
			bar.Data = append(bar.Data, 0)
			copy(bar.Data[bar.Cursor+1:], bar.Data[bar.Cursor:])
			bar.Data[bar.Cursor] = byte(k)
			bar.Cursor++
			if find {
				e.runFind(w)
			}
		}
	}
}

func (e *Editor) commitBar(w *layout.Window) {
	mode := w.Bar.Mode
	text := string(w.Bar.Data)
	closeBar(w)

	switch mode {
	case layout.BarOpen:
		b, err := buffer.Open(text)
		if err != nil {
			w.SetError("can not open file " + text)
			return
		}
		w.SetBuffer(b)

	case layout.BarNew:
		w.SetBuffer(buffer.Create(text))

	case layout.BarCommand:
		e.runCommand(w, text)

	case layout.BarFind:
		// The cursor already sits on the selected match; committing just
		// drops the overlay.
		w.Search.Clear()
		w.Redraw = true
	}
}

// runFind re-scans the whole buffer for the minibar pattern. The scan polls
// for pending input and gives up when a newer keystroke is waiting; the
// window stays dirty so the next completed scan repaints.
func (e *Editor) runFind(w *layout.Window) {
	w.Search.Clear()
	w.Redraw = true
	if w.Buf == nil || len(w.Bar.Data) == 0 {
		return
	}
	matches, ok := search.FindAll(w.Buf, w.Bar.Data, e.Pending)
	if !ok {
		return
	}
	w.Search.Matches = matches
	w.Search.Length = len(w.Bar.Data)
	w.Search.SelectFromSaved()
	moveToMatch(w)
}

func moveToMatch(w *layout.Window) {
	m, ok := w.Search.Current()
	if !ok {
		return
	}
	w.Cursor = m
	w.CursorXIdeal = m.X
	w.Redraw = true
	w.Relocate()
}
