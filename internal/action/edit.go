package action

import (
	"bytes"

	"github.com/ellery/tilde/internal/buffer"
	"github.com/ellery/tilde/internal/clipboard"
	"github.com/ellery/tilde/internal/config"
	"github.com/ellery/tilde/internal/layout"
)

func insertChar(w *layout.Window, c byte) {
	if w.Buf == nil {
		return
	}
	w.Buf.InsertChar(w.Cursor, c)
	w.Cursor.X++
	w.CursorXIdeal = w.Cursor.X
	w.Relocate()
}

// insertIndent inserts one indent level of spaces.
func insertIndent(w *layout.Window) {
	if w.Buf == nil {
		return
	}
	for i := 0; i < config.TabSize(); i++ {
		insertChar(w, ' ')
	}
}

func spaces(n int) []byte {
	return bytes.Repeat([]byte{' '}, n)
}

// insertNewline splits the line at the cursor with smart indentation: the
// new line starts at the old line's indent, one level deeper after an open
// brace. When the brace was the previous keypress the closing brace line is
// inserted too, so typing `{` Enter yields the full pair.
func insertNewline(w *layout.Window) {
	if w.Buf == nil {
		return
	}
	b := w.Buf
	line := b.Line(w.Cursor.Y)
	indent := line.LeadingSpaces()
	braced := w.Cursor.X > 0 && line.Chars[w.Cursor.X-1] == '{'

	n := indent
	if braced {
		n += config.TabSize()
	}

	b.SplitLine(w.Cursor)
	newLine := b.Line(w.Cursor.Y + 1)
	newLine.Chars = append(spaces(n), newLine.Chars...)
	b.Rehighlight(w.Cursor.Y + 1)

	if braced && w.PrevKey == int(Keycode('{')) {
		b.InsertLine(w.Cursor.Y+2, append(spaces(indent), '}'))
	}

	w.Cursor = buffer.Loc{X: n, Y: w.Cursor.Y + 1}
	w.CursorXIdeal = n
	w.Relocate()
}

// deleteChar deletes the character left of the cursor, merging into the
// previous line at column zero. At the very start of the buffer it does
// nothing.
func deleteChar(w *layout.Window) {
	if w.Buf == nil {
		return
	}
	if w.Cursor.X > 0 {
		w.Cursor.X--
		w.Buf.RemoveChar(w.Cursor)
	} else if w.Cursor.Y > 0 {
		y := w.Cursor.Y
		w.Cursor.Y--
		w.Cursor.X = w.Buf.MergeLineUp(y)
	}
	w.CursorXIdeal = w.Cursor.X
	w.Relocate()
}

func isIdentByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_'
}

// deleteCount decides how many characters one delete keypress removes,
// looking at the text left of the cursor. With ctrl the trailing space,
// identifier and other runs are accumulated in that order and their sum is
// removed. Without ctrl a pure-space prefix that fills whole indent levels
// removes one level, anything else removes one character. The count never
// drops below one so a delete at column zero still merges lines.
func deleteCount(pre []byte, ctrl bool) int {
	tab := config.TabSize()
	if !ctrl {
		allSpace := len(pre) > 0
		for _, c := range pre {
			if c != ' ' {
				allSpace = false
				break
			}
		}
		if allSpace && len(pre)%tab == 0 {
			return tab
		}
		return 1
	}

	i := len(pre)
	count := 0
	for i > 0 && pre[i-1] == ' ' {
		i--
		count++
	}
	for i > 0 && isIdentByte(pre[i-1]) {
		i--
		count++
	}
	for i > 0 && pre[i-1] != ' ' && !isIdentByte(pre[i-1]) {
		i--
		count++
	}
	if count == 0 {
		count = 1
	}
	return count
}

func deleteUnit(w *layout.Window, ctrl bool) {
	if w.Buf == nil {
		return
	}
	pre := w.Buf.Line(w.Cursor.Y).Chars[:w.Cursor.X]
	n := deleteCount(pre, ctrl)
	for i := 0; i < n; i++ {
		deleteChar(w)
	}
}

// normalizeBlock orders two locations so the first comes no later than the
// second in document order.
func normalizeBlock(a, b buffer.Loc) (buffer.Loc, buffer.Loc) {
	if b.LessThan(a) {
		a, b = b, a
	}
	return a, b
}

// serializeBlock joins the block's lines with newlines: the start line's
// tail, the whole lines between, and the end line's head.
func serializeBlock(b *buffer.Buffer, start, end buffer.Loc) []byte {
	var out bytes.Buffer
	if start.Y == end.Y {
		out.Write(b.Line(start.Y).Chars[start.X:end.X])
		return out.Bytes()
	}
	out.Write(b.Line(start.Y).Chars[start.X:])
	for y := start.Y + 1; y < end.Y; y++ {
		out.WriteByte('\n')
		out.Write(b.Line(y).Chars)
	}
	out.WriteByte('\n')
	out.Write(b.Line(end.Y).Chars[:end.X])
	return out.Bytes()
}

func copyBlock(w *layout.Window) {
	if w.Buf == nil {
		return
	}
	if !w.Mark.Valid {
		w.SetError("no mark set")
		return
	}
	start, end := normalizeBlock(w.Mark.Loc, w.Cursor)
	clipboard.Write(serializeBlock(w.Buf, start, end))
}

// cutBlock copies the block and removes it: the lines strictly between the
// endpoints disappear, and the start line keeps its head joined to the end
// line's tail.
func cutBlock(w *layout.Window) {
	if w.Buf == nil {
		return
	}
	if !w.Mark.Valid {
		w.SetError("no mark set")
		return
	}
	b := w.Buf
	start, end := normalizeBlock(w.Mark.Loc, w.Cursor)
	clipboard.Write(serializeBlock(b, start, end))

	if start.Y == end.Y {
		line := b.Line(start.Y)
		line.Chars = append(line.Chars[:start.X], line.Chars[end.X:]...)
		b.Rehighlight(start.Y)
	} else {
		startLine := b.Line(start.Y)
		endLine := b.Line(end.Y)
		startLine.Chars = append(startLine.Chars[:start.X], endLine.Chars[end.X:]...)
		for y := end.Y; y > start.Y; y-- {
			b.RemoveLine(y)
		}
		b.Rehighlight(start.Y)
	}
	b.Saved = false

	w.Cursor = start
	w.CursorXIdeal = start.X
	w.Mark = layout.Mark{}
	w.Relocate()
}

// paste inserts the clipboard at the cursor. Newlines split the current
// line; the original tail stays after the pasted text. The mark is set to
// the pre-paste cursor so the pasted block is delimited.
func paste(w *layout.Window) {
	if w.Buf == nil {
		return
	}
	data := clipboard.Read()
	if len(data) == 0 {
		w.SetError("clipboard is empty")
		return
	}
	b := w.Buf
	origin := w.Cursor
	segs := bytes.Split(data, []byte{'\n'})
	line := b.Line(origin.Y)

	if len(segs) == 1 {
		ins := append([]byte(nil), data...)
		line.Chars = append(line.Chars[:origin.X], append(ins, line.Chars[origin.X:]...)...)
		b.Rehighlight(origin.Y)
		w.Cursor.X = origin.X + len(data)
	} else {
		tail := append([]byte(nil), line.Chars[origin.X:]...)
		line.Chars = append(line.Chars[:origin.X], segs[0]...)
		b.Rehighlight(origin.Y)
		for i := 1; i < len(segs); i++ {
			chunk := segs[i]
			if i == len(segs)-1 {
				chunk = append(append([]byte(nil), chunk...), tail...)
			}
			b.InsertLine(origin.Y+i, chunk)
		}
		w.Cursor = buffer.Loc{
			X: len(segs[len(segs)-1]),
			Y: origin.Y + len(segs) - 1,
		}
	}
	b.Saved = false

	w.CursorXIdeal = w.Cursor.X
	w.Mark = layout.Mark{Loc: origin, Valid: true}
	w.Relocate()
}
