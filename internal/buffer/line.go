package buffer

import "github.com/ellery/tilde/internal/syntax"

// Loc is a position in a buffer: X is the byte column, Y the line index.
type Loc struct {
	X int
	Y int
}

// LessThan reports whether l comes before other in document order.
func (l Loc) LessThan(other Loc) bool {
	return l.Y < other.Y || (l.Y == other.Y && l.X < other.X)
}

// GreaterThan reports whether l comes after other in document order.
func (l Loc) GreaterThan(other Loc) bool {
	return other.LessThan(l)
}

// Line is one line of a buffer: its bytes, an optional parallel color class
// per byte, and a redraw flag consumed by the renderer.
type Line struct {
	Chars  []byte
	Colors []syntax.Class
	Redraw bool
}

// NewLine makes a line owning a copy of the given bytes.
func NewLine(chars []byte) *Line {
	l := &Line{Chars: append([]byte(nil), chars...), Redraw: true}
	return l
}

// LeadingSpaces counts the spaces at the start of the line.
func (l *Line) LeadingSpaces() int {
	n := 0
	for n < len(l.Chars) && l.Chars[n] == ' ' {
		n++
	}
	return n
}

func (l *Line) insert(x int, c byte) {
	l.Chars = append(l.Chars, 0)
	copy(l.Chars[x+1:], l.Chars[x:])
	l.Chars[x] = c
	l.Redraw = true
}

func (l *Line) remove(x int) {
	l.Chars = append(l.Chars[:x], l.Chars[x+1:]...)
	l.Redraw = true
}
