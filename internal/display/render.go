// Package display reconciles the screen with the model. Only rows whose
// window, buffer, or line is marked dirty, plus each region's status row,
// are cleared and repainted, and every frame ends in a single flush.
package display

import (
	"fmt"
	"strconv"

	"github.com/micro-editor/tcell/v2"

	"github.com/ellery/tilde/internal/action"
	"github.com/ellery/tilde/internal/buffer"
	"github.com/ellery/tilde/internal/config"
	"github.com/ellery/tilde/internal/layout"
	"github.com/ellery/tilde/internal/syntax"
)

// Renderer paints the region tree onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	rows   []bool

	// Cleared is the number of rows cleared by the last frame. Status rows
	// are excluded from ClearedLines: they repaint every frame because the
	// scroll percentage and match counter track the cursor, while a frame
	// with no mutations clears no content rows at all.
	Cleared      int
	ClearedLines int
}

// NewRenderer makes a renderer for the given screen.
func NewRenderer(s tcell.Screen) *Renderer {
	return &Renderer{screen: s}
}

// Frame draws one frame: aggregate dirty rows, clear them, repaint every
// window's share of them, reset the dirty flags, place the cursor, flush.
func (r *Renderer) Frame(t *layout.Tree) {
	_, sh := r.screen.Size()
	if len(r.rows) != sh {
		r.rows = make([]bool, sh)
	} else {
		for i := range r.rows {
			r.rows[i] = false
		}
	}

	wins := t.Windows()
	for _, w := range wins {
		r.aggregate(w)
	}
	r.ClearedLines = 0
	for _, dirty := range r.rows {
		if dirty {
			r.ClearedLines++
		}
	}
	for _, w := range wins {
		r.mark(w.Region.Y + w.Region.Height - 1)
	}

	r.clearRows()

	for _, w := range wins {
		r.paintWindow(w, w == t.Active)
	}

	// Buffers are shared across windows, so flags are cleared only after
	// every window has been scanned.
	for _, w := range wins {
		w.Redraw = false
		if w.Buf == nil {
			continue
		}
		for j := 0; j < w.TextHeight(); j++ {
			y := w.Offset.Y + j
			if y >= w.Buf.LineCount() {
				break
			}
			w.Buf.Line(y).Redraw = false
		}
	}
	for _, w := range wins {
		if w.Buf != nil {
			w.Buf.Redraw = false
		}
	}

	r.placeCursor(t.Active)
	r.screen.Show()
}

func (r *Renderer) mark(y int) {
	if y >= 0 && y < len(r.rows) {
		r.rows[y] = true
	}
}

// aggregate folds one window's content dirt into the per-row accounting.
// Status rows are marked separately by Frame.
func (r *Renderer) aggregate(w *layout.Window) {
	reg := w.Region
	full := w.Redraw || (w.Buf != nil && w.Buf.Redraw)
	if full {
		for y := reg.Y; y < reg.Y+reg.Height; y++ {
			r.mark(y)
		}
	} else if w.Buf != nil {
		for j := 0; j < w.TextHeight(); j++ {
			y := w.Offset.Y + j
			if y >= w.Buf.LineCount() {
				break
			}
			if w.Buf.Line(y).Redraw {
				r.mark(reg.Y + j)
			}
		}
	}
}

func (r *Renderer) clearRows() {
	sw, _ := r.screen.Size()
	style := config.CurrentScheme.EditorStyle()
	r.Cleared = 0
	for y, dirty := range r.rows {
		if !dirty {
			continue
		}
		for x := 0; x < sw; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
		r.Cleared++
	}
}

func (r *Renderer) paintWindow(w *layout.Window, active bool) {
	reg := w.Region
	sc := config.CurrentScheme

	if w.Buf != nil {
		numW := len(strconv.Itoa(w.Buf.LineCount()))
		gutterStyle := sc.ClassStyle(syntax.ClassComment)
		border := reg.X > 0

		for j := 0; j < reg.Height-1; j++ {
			sy := reg.Y + j
			if sy >= len(r.rows) || !r.rows[sy] {
				continue
			}
			x := reg.X
			if border {
				r.screen.SetContent(x, sy, ' ', nil, sc.StatusStyle())
				r.screen.SetContent(x+1, sy, ' ', nil, sc.EditorStyle())
				x += 2
			}

			ly := w.Offset.Y + j
			if ly >= w.Buf.LineCount() {
				continue
			}

			num := strconv.Itoa(ly + 1)
			for i := 0; i < numW-len(num); i++ {
				r.screen.SetContent(x+i, sy, ' ', nil, gutterStyle)
			}
			for i, c := range []byte(num) {
				r.screen.SetContent(x+numW-len(num)+i, sy, rune(c), nil, gutterStyle)
			}

			r.paintLine(w, ly, sy)
		}
	}

	r.paintStatus(w, active)
}

func (r *Renderer) paintLine(w *layout.Window, ly, sy int) {
	sc := config.CurrentScheme
	line := w.Buf.Line(ly)
	tx := w.TextX()
	tw := w.TextWidth()

	// Matches are in document order; pull out this line's slice once.
	var rowMatches []buffer.Loc
	selected := -1
	if w.Search.Length > 0 {
		for i, m := range w.Search.Matches {
			if m.Y == ly {
				if i == w.Search.Index {
					selected = len(rowMatches)
				}
				rowMatches = append(rowMatches, m)
			}
		}
	}

	for i := 0; i < tw; i++ {
		cx := w.Offset.X + i
		if cx >= len(line.Chars) {
			break
		}
		style := sc.EditorStyle()
		if len(line.Colors) == len(line.Chars) {
			style = sc.ClassStyle(line.Colors[cx])
		}
		for mi, m := range rowMatches {
			if cx >= m.X && cx < m.X+w.Search.Length {
				style = sc.MatchStyle(mi == selected)
				break
			}
		}
		r.screen.SetContent(tx+i, sy, rune(line.Chars[cx]), nil, style)
	}
}

// paintStatus draws the bottom row of the region: prompt or error, the
// scrolled minibar text, the match counter, the mark indicator, the file
// path with unsaved asterisk, and the scroll percentage.
func (r *Renderer) paintStatus(w *layout.Window, active bool) {
	reg := w.Region
	sy := reg.Y + reg.Height - 1

	var s []byte
	if w.Bar.Active() {
		prompt := action.Prompt(w.Bar.Mode)
		avail := reg.Width - len(prompt)
		w.Bar.Scroll(avail)
		visible := w.Bar.Data[w.Bar.Offset:]
		if len(visible) > avail && avail > 0 {
			visible = visible[:avail]
		}
		s = append(s, prompt...)
		s = append(s, visible...)
	} else if w.Err.Present {
		s = append(s, w.Err.Message...)
	}

	if len(w.Search.Matches) > 0 {
		s = appendField(s, fmt.Sprintf("%d/%d", w.Search.Index+1, len(w.Search.Matches)))
	}
	if w.Mark.Valid {
		s = appendField(s, "[] ")
	}

	if w.Buf != nil {
		path := w.Buf.Path
		if len(path) > config.MinibarMaxPathWidth {
			path = "..." + path[len(path)-config.MinibarMaxPathWidth+3:]
		}
		if !w.Buf.Saved {
			path += "*"
		}
		s = appendField(s, path)
		s = appendField(s, fmt.Sprintf("%d%%", w.Cursor.Y*100/w.Buf.LineCount()))
	} else if !w.Bar.Active() && !w.Err.Present {
		s = appendField(s, "no file")
	}

	style := config.CurrentScheme.StatusStyle()
	if active {
		style = style.Bold(true)
	}
	for x := 0; x < reg.Width; x++ {
		c := byte(' ')
		if x < len(s) {
			c = s[x]
		}
		r.screen.SetContent(reg.X+x, sy, rune(c), nil, style)
	}
}

func appendField(s []byte, field string) []byte {
	if len(s) > 0 {
		s = append(s, ' ', ' ')
	}
	return append(s, field...)
}

// placeCursor positions the terminal cursor inside the focused window,
// using minibar coordinates when the minibar is active.
func (r *Renderer) placeCursor(w *layout.Window) {
	if w == nil {
		r.screen.HideCursor()
		return
	}
	reg := w.Region
	if w.Bar.Active() {
		x := reg.X + len(action.Prompt(w.Bar.Mode)) + w.Bar.Cursor - w.Bar.Offset
		if x >= reg.X+reg.Width {
			x = reg.X + reg.Width - 1
		}
		r.screen.ShowCursor(x, reg.Y+reg.Height-1)
		return
	}
	if w.Buf == nil {
		r.screen.HideCursor()
		return
	}
	x := w.TextX() + w.Cursor.X - w.Offset.X
	y := reg.Y + w.Cursor.Y - w.Offset.Y
	r.screen.ShowCursor(x, y)
}
