// Package buffer holds open files as ordered sequences of lines. Buffers
// are shared: any number of windows may view the same buffer, and buffers
// outlive the windows that view them.
package buffer

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/ellery/tilde/internal/syntax"
)

// ErrInvalidLineEnding is returned by NewBufferFromFile (and so by Open)
// when a carriage return is not
// immediately followed by a line feed.
var ErrInvalidLineEnding = errors.New("invalid line ending")

// FileMode is the mode used for saved files.
const FileMode os.FileMode = 0644

// Buffer is an open file: a non-empty sequence of lines plus bookkeeping
// flags. Redraw means every window viewing the buffer must repaint.
type Buffer struct {
	Path   string
	Lines  []*Line
	Saved  bool
	Redraw bool
	Lang   *syntax.Language
}

// NewBufferFromFile reads the file at path. Line terminators may be LF or
// CRLF; a lone CR fails the load. A trailing unterminated line becomes the
// last line, and an empty file yields one empty line.
func NewBufferFromFile(path string) (*Buffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	b := &Buffer{
		Path:  path,
		Saved: true,
		Lang:  syntax.Detect(path),
	}

	start := 0
	for i := 0; i < len(data); i++ {
		switch data[i] {
		case '\n':
			end := i
			if end > start && data[end-1] == '\r' {
				end--
			}
			b.appendLine(data[start:end])
			start = i + 1
		case '\r':
			if i+1 >= len(data) || data[i+1] != '\n' {
				return nil, ErrInvalidLineEnding
			}
		}
	}
	b.appendLine(data[start:])

	b.Redraw = true
	return b, nil
}

// NewEmptyBuffer makes an unsaved buffer holding one empty line.
func NewEmptyBuffer(path string) *Buffer {
	b := &Buffer{
		Path:  path,
		Saved: false,
		Lang:  syntax.Detect(path),
	}
	b.appendLine(nil)
	b.Redraw = true
	return b
}

func (b *Buffer) appendLine(chars []byte) {
	line := NewLine(chars)
	if b.Lang != nil {
		line.Colors = b.Lang.Highlight(line.Chars)
	}
	b.Lines = append(b.Lines, line)
}

// LineCount returns the number of lines. It is never zero.
func (b *Buffer) LineCount() int {
	return len(b.Lines)
}

// Line returns the line at index y.
func (b *Buffer) Line(y int) *Line {
	return b.Lines[y]
}

// Serialize joins the lines with CRLF separators, with no terminator after
// the last line. This is the persisted representation.
func (b *Buffer) Serialize() []byte {
	var out bytes.Buffer
	for i, l := range b.Lines {
		if i > 0 {
			out.WriteString("\r\n")
		}
		out.Write(l.Chars)
	}
	return out.Bytes()
}

// Save writes the buffer to its path, truncating the target. On success the
// buffer is marked saved.
func (b *Buffer) Save() error {
	if err := os.WriteFile(b.Path, b.Serialize(), FileMode); err != nil {
		return fmt.Errorf("save %s: %w", b.Path, err)
	}
	b.Saved = true
	return nil
}

// Rehighlight recomputes the color classes of line y.
func (b *Buffer) Rehighlight(y int) {
	line := b.Lines[y]
	if b.Lang != nil {
		line.Colors = b.Lang.Highlight(line.Chars)
	}
	line.Redraw = true
}

// InsertChar inserts c at the given location and rehighlights the line.
func (b *Buffer) InsertChar(at Loc, c byte) {
	b.Lines[at.Y].insert(at.X, c)
	b.Rehighlight(at.Y)
	b.Saved = false
}

// RemoveChar removes the byte at the given location.
func (b *Buffer) RemoveChar(at Loc) {
	b.Lines[at.Y].remove(at.X)
	b.Rehighlight(at.Y)
	b.Saved = false
}

// SplitLine breaks line at.Y at column at.X. The tail becomes a new line
// following it. Structural changes repaint the whole buffer since every
// line below shifts.
func (b *Buffer) SplitLine(at Loc) {
	line := b.Lines[at.Y]
	tail := append([]byte(nil), line.Chars[at.X:]...)
	line.Chars = line.Chars[:at.X]

	b.InsertLine(at.Y+1, tail)
	b.Rehighlight(at.Y)
	b.Saved = false
}

// InsertLine inserts a new line holding chars at index y.
func (b *Buffer) InsertLine(y int, chars []byte) {
	line := NewLine(chars)
	if b.Lang != nil {
		line.Colors = b.Lang.Highlight(line.Chars)
	}
	b.Lines = append(b.Lines, nil)
	copy(b.Lines[y+1:], b.Lines[y:])
	b.Lines[y] = line
	b.Redraw = true
	b.Saved = false
}

// MergeLineUp appends line y to line y-1 and removes line y. It returns the
// length of line y-1 before the merge, which is where a cursor sitting at
// the start of line y lands.
func (b *Buffer) MergeLineUp(y int) int {
	prev := b.Lines[y-1]
	join := len(prev.Chars)
	prev.Chars = append(prev.Chars, b.Lines[y].Chars...)
	b.RemoveLine(y)
	b.Rehighlight(y - 1)
	return join
}

// RemoveLine deletes line y. A buffer never drops to zero lines: removing
// the last line leaves one empty line.
func (b *Buffer) RemoveLine(y int) {
	b.Lines = append(b.Lines[:y], b.Lines[y+1:]...)
	if len(b.Lines) == 0 {
		b.appendLine(nil)
	}
	b.Redraw = true
	b.Saved = false
}
