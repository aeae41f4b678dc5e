package layout

import (
	"strconv"

	"github.com/ellery/tilde/internal/buffer"
	"github.com/ellery/tilde/internal/config"
	"github.com/ellery/tilde/internal/search"
)

// Mark is the second cursor delimiting a block for copy and cut.
type Mark struct {
	Loc   buffer.Loc
	Valid bool
}

// BarMode is the minibar state.
type BarMode int

const (
	BarInactive BarMode = iota
	BarOpen
	BarNew
	BarCommand
	BarFind
)

// Minibar is the per-window prompt line state: the text being typed, the
// cursor inside it, and the horizontal scroll offset.
type Minibar struct {
	Mode   BarMode
	Data   []byte
	Cursor int
	Offset int
}

// Active reports whether the minibar owns the keyboard.
func (m *Minibar) Active() bool {
	return m.Mode != BarInactive
}

// Scroll adjusts the bar offset so the bar cursor stays at least the bar
// margin away from either edge of the given width.
func (m *Minibar) Scroll(width int) {
	if width < 1 {
		return
	}
	margin := config.BarScrollMargin
	if margin > (width-1)/2 {
		margin = (width - 1) / 2
	}
	if m.Cursor < m.Offset+margin {
		m.Offset = m.Cursor - margin
	}
	if m.Cursor > m.Offset+width-1-margin {
		m.Offset = m.Cursor - width + 1 + margin
	}
	if m.Offset < 0 {
		m.Offset = 0
	}
}

// ErrorState is a status-bar error message. Escape clears it.
type ErrorState struct {
	Message string
	Present bool
}

// viewState is the snapshot a window keeps per buffer it has shown, so
// switching back restores the old position.
type viewState struct {
	cursor buffer.Loc
	ideal  int
	offset buffer.Loc
	mark   Mark
	prev   int
}

// Window is a view onto at most one buffer, plus all per-view state: the
// cursor, scroll offset, mark, minibar, error and search substates, and the
// saved view state for every buffer it has previously shown.
type Window struct {
	Buf    *buffer.Buffer
	Region *Region

	Cursor       buffer.Loc
	CursorXIdeal int
	Offset       buffer.Loc
	Mark         Mark

	Bar    Minibar
	Err    ErrorState
	Search search.State

	// PrevKey is the last keycode dispatched to this window.
	PrevKey int

	Redraw bool

	states map[*buffer.Buffer]viewState
}

// NewWindow makes an empty window with no buffer.
func NewWindow() *Window {
	return &Window{
		Redraw: true,
		states: make(map[*buffer.Buffer]viewState),
	}
}

// SetBuffer switches the window to b, snapshotting the current view state
// and restoring the saved state for b if the window has shown it before.
func (w *Window) SetBuffer(b *buffer.Buffer) {
	if w.Buf != nil {
		w.states[w.Buf] = viewState{
			cursor: w.Cursor,
			ideal:  w.CursorXIdeal,
			offset: w.Offset,
			mark:   w.Mark,
			prev:   w.PrevKey,
		}
	}

	w.Buf = b
	if st, ok := w.states[b]; ok {
		w.Cursor = st.cursor
		w.CursorXIdeal = st.ideal
		w.Offset = st.offset
		w.Mark = st.mark
		w.PrevKey = st.prev
	} else {
		w.Cursor = buffer.Loc{}
		w.CursorXIdeal = 0
		w.Offset = buffer.Loc{}
		w.Mark = Mark{}
		w.PrevKey = 0
	}
	w.Search.Clear()
	w.ClampCursor()
	w.Redraw = true
}

// numberWidth is the digit count of the highest displayed line number.
func numberWidth(lines int) int {
	return len(strconv.Itoa(lines))
}

func (w *Window) borderWidth() int {
	if w.Region != nil && w.Region.X > 0 {
		return 2
	}
	return 0
}

// GutterWidth is the width of the left border plus the line-number column.
func (w *Window) GutterWidth() int {
	if w.Buf == nil {
		return w.borderWidth()
	}
	return w.borderWidth() + numberWidth(w.Buf.LineCount()) + config.GutterMargin
}

// TextX is the screen column where line content starts.
func (w *Window) TextX() int {
	return w.Region.X + w.GutterWidth()
}

// TextWidth is the number of content cells per row.
func (w *Window) TextWidth() int {
	tw := w.Region.Width - w.GutterWidth()
	if tw < 1 {
		tw = 1
	}
	return tw
}

// TextHeight is the number of content rows; the bottom row of every region
// is its status bar.
func (w *Window) TextHeight() int {
	h := w.Region.Height - 1
	if h < 1 {
		h = 1
	}
	return h
}

func (w *Window) curLine() *buffer.Line {
	return w.Buf.Line(w.Cursor.Y)
}

// ClampCursor forces the cursor back into the buffer bounds.
func (w *Window) ClampCursor() {
	if w.Buf == nil {
		return
	}
	if w.Cursor.Y < 0 {
		w.Cursor.Y = 0
	}
	if w.Cursor.Y >= w.Buf.LineCount() {
		w.Cursor.Y = w.Buf.LineCount() - 1
	}
	if w.Cursor.X < 0 {
		w.Cursor.X = 0
	}
	if n := len(w.curLine().Chars); w.Cursor.X > n {
		w.Cursor.X = n
	}
}

// Relocate scrolls the window so the cursor sits at least the scroll margin
// away from every viewport edge. Small windows shrink the margin to half
// their extent.
func (w *Window) Relocate() {
	if w.Buf == nil {
		return
	}
	h := w.TextHeight()
	tw := w.TextWidth()

	vm := config.ScrollMargin()
	if vm > (h-1)/2 {
		vm = (h - 1) / 2
	}
	hm := config.ScrollMargin()
	if hm > (tw-1)/2 {
		hm = (tw - 1) / 2
	}

	prev := w.Offset
	if w.Cursor.Y < w.Offset.Y+vm {
		w.Offset.Y = w.Cursor.Y - vm
	}
	if w.Cursor.Y > w.Offset.Y+h-1-vm {
		w.Offset.Y = w.Cursor.Y - h + 1 + vm
	}
	if w.Offset.Y < 0 {
		w.Offset.Y = 0
	}

	if w.Cursor.X < w.Offset.X+hm {
		w.Offset.X = w.Cursor.X - hm
	}
	if w.Cursor.X > w.Offset.X+tw-1-hm {
		w.Offset.X = w.Cursor.X - tw + 1 + hm
	}
	if w.Offset.X < 0 {
		w.Offset.X = 0
	}

	if w.Offset != prev {
		w.Redraw = true
	}
}

// MoveLeft moves one cell left, wrapping to the end of the previous line.
func (w *Window) MoveLeft() {
	if w.Buf == nil {
		return
	}
	if w.Cursor.X > 0 {
		w.Cursor.X--
	} else if w.Cursor.Y > 0 {
		w.Cursor.Y--
		w.Cursor.X = len(w.curLine().Chars)
	}
	w.CursorXIdeal = w.Cursor.X
	w.Relocate()
}

// MoveRight moves one cell right, wrapping to the start of the next line.
func (w *Window) MoveRight() {
	if w.Buf == nil {
		return
	}
	if w.Cursor.X < len(w.curLine().Chars) {
		w.Cursor.X++
	} else if w.Cursor.Y < w.Buf.LineCount()-1 {
		w.Cursor.Y++
		w.Cursor.X = 0
	}
	w.CursorXIdeal = w.Cursor.X
	w.Relocate()
}

// MoveUp moves one line up, keeping the ideal column.
func (w *Window) MoveUp() {
	if w.Buf == nil || w.Cursor.Y == 0 {
		return
	}
	w.Cursor.Y--
	w.snapToIdeal()
	w.Relocate()
}

// MoveDown moves one line down, keeping the ideal column.
func (w *Window) MoveDown() {
	if w.Buf == nil || w.Cursor.Y >= w.Buf.LineCount()-1 {
		return
	}
	w.Cursor.Y++
	w.snapToIdeal()
	w.Relocate()
}

func (w *Window) snapToIdeal() {
	w.Cursor.X = w.CursorXIdeal
	if n := len(w.curLine().Chars); w.Cursor.X > n {
		w.Cursor.X = n
	}
}

// MoveHome moves to the first non-space column when the cursor is past it,
// and to column zero otherwise.
func (w *Window) MoveHome() {
	if w.Buf == nil {
		return
	}
	indent := w.curLine().LeadingSpaces()
	if w.Cursor.X > indent {
		w.Cursor.X = indent
	} else {
		w.Cursor.X = 0
	}
	w.CursorXIdeal = w.Cursor.X
	w.Relocate()
}

// MoveEnd moves to the end of the line.
func (w *Window) MoveEnd() {
	if w.Buf == nil {
		return
	}
	w.Cursor.X = len(w.curLine().Chars)
	w.CursorXIdeal = w.Cursor.X
	w.Relocate()
}

// PageUp moves cursor and offset up by half the region height.
func (w *Window) PageUp() {
	w.page(-1)
}

// PageDown moves cursor and offset down by half the region height.
func (w *Window) PageDown() {
	w.page(1)
}

func (w *Window) page(dir int) {
	if w.Buf == nil {
		return
	}
	d := dir * (w.Region.Height / 2)
	w.Cursor.Y += d
	w.Offset.Y += d
	if w.Offset.Y < 0 {
		w.Offset.Y = 0
	}
	w.ClampCursor()
	w.snapToIdeal()
	w.Redraw = true
	w.Relocate()
}

// MoveFileStart jumps to the start of the buffer.
func (w *Window) MoveFileStart() {
	if w.Buf == nil {
		return
	}
	w.Cursor = buffer.Loc{}
	w.CursorXIdeal = 0
	w.Relocate()
}

// MoveFileEnd jumps past the last character of the buffer.
func (w *Window) MoveFileEnd() {
	if w.Buf == nil {
		return
	}
	w.Cursor.Y = w.Buf.LineCount() - 1
	w.Cursor.X = len(w.curLine().Chars)
	w.CursorXIdeal = w.Cursor.X
	w.Relocate()
}

// SetError puts a message on the window's status bar.
func (w *Window) SetError(msg string) {
	w.Err = ErrorState{Message: msg, Present: true}
}

// ClearError removes the status bar message.
func (w *Window) ClearError() {
	w.Err = ErrorState{}
}
