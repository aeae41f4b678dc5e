// Package syntax colors single lines of text. Highlighting is strictly
// per-line: a line's colors depend only on its own bytes, never on the
// lines around it.
package syntax

import (
	"path/filepath"

	"github.com/zyedidia/glob"
)

// Class is the color class assigned to one byte of a line.
type Class uint8

const (
	ClassDefault Class = iota
	ClassComment
	ClassKeyword
	ClassString
	ClassChar
	ClassNumber
)

// Language describes how to highlight one file type.
type Language struct {
	Name string

	// Filetypes are glob patterns matched against the file name.
	Filetypes []string

	LineComment []byte

	// Multi-line comment markers are declared for completeness but the
	// highlighter never tracks state across lines, so they are not applied.
	MultiCommentStart []byte
	MultiCommentEnd   []byte

	Strings  bool
	Chars    bool
	Numbers  bool
	Comments bool

	// Keywords are bucketed by length so a candidate identifier is only
	// compared against words of its own size.
	Keywords map[int][]string

	globs []*glob.Glob
}

// Languages is the set of built-in language profiles.
var Languages = []*Language{goLang, cLang}

var goLang = &Language{
	Name:        "go",
	Filetypes:   []string{"*.go"},
	LineComment: []byte("//"),

	MultiCommentStart: []byte("/*"),
	MultiCommentEnd:   []byte("*/"),

	Strings:  true,
	Chars:    true,
	Numbers:  true,
	Comments: true,

	Keywords: bucket(
		"break", "case", "chan", "const", "continue", "default", "defer",
		"else", "fallthrough", "for", "func", "go", "goto", "if", "import",
		"interface", "map", "package", "range", "return", "select", "struct",
		"switch", "type", "var",
		"bool", "byte", "error", "int", "rune", "string", "uint",
		"true", "false", "nil",
	),
}

var cLang = &Language{
	Name:        "c",
	Filetypes:   []string{"*.c", "*.h"},
	LineComment: []byte("//"),

	MultiCommentStart: []byte("/*"),
	MultiCommentEnd:   []byte("*/"),

	Strings:  true,
	Chars:    true,
	Numbers:  true,
	Comments: true,

	Keywords: bucket(
		"auto", "break", "case", "char", "const", "continue", "default",
		"do", "double", "else", "enum", "extern", "float", "for", "goto",
		"if", "inline", "int", "long", "register", "return", "short",
		"signed", "sizeof", "static", "struct", "switch", "typedef",
		"union", "unsigned", "void", "volatile", "while",
	),
}

func bucket(words ...string) map[int][]string {
	m := make(map[int][]string)
	for _, w := range words {
		m[len(w)] = append(m[len(w)], w)
	}
	return m
}

// Detect returns the language whose filetype globs match the given path,
// or nil if no profile matches.
func Detect(path string) *Language {
	name := filepath.Base(path)
	for _, l := range Languages {
		if l.globs == nil {
			for _, ft := range l.Filetypes {
				if g, err := glob.Compile(ft); err == nil {
					l.globs = append(l.globs, g)
				}
			}
		}
		for _, g := range l.globs {
			if g.MatchString(name) {
				return l
			}
		}
	}
	return nil
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdent(c byte) bool {
	return isLetter(c) || isDigit(c)
}

// isKeyword reports whether the identifier equals a keyword of the language.
func (l *Language) isKeyword(word []byte) bool {
	for _, kw := range l.Keywords[len(word)] {
		if string(word) == kw {
			return true
		}
	}
	return false
}

// hasPrefix reports whether s begins with the marker. A nil marker never
// matches.
func hasPrefix(s, marker []byte) bool {
	if len(marker) == 0 || len(s) < len(marker) {
		return false
	}
	for i := range marker {
		if s[i] != marker[i] {
			return false
		}
	}
	return true
}

// Highlight produces one color class per byte of the line, scanning left to
// right. A line comment colors the remainder of the line and terminates the
// scan.
func (l *Language) Highlight(chars []byte) []Class {
	colors := make([]Class, len(chars))

	i := 0
	for i < len(chars) {
		c := chars[i]

		if l.Comments && hasPrefix(chars[i:], l.LineComment) {
			for ; i < len(chars); i++ {
				colors[i] = ClassComment
			}
			return colors
		}

		if l.Strings && c == '"' {
			colors[i] = ClassString
			i++
			for i < len(chars) {
				colors[i] = ClassString
				i++
				if chars[i-1] == '"' {
					break
				}
			}
			continue
		}

		if l.Chars && c == '\'' {
			colors[i] = ClassChar
			i++
			for i < len(chars) {
				colors[i] = ClassChar
				i++
				if chars[i-1] == '\'' {
					break
				}
			}
			continue
		}

		if l.Numbers && isDigit(c) {
			for i < len(chars) && isDigit(chars[i]) {
				colors[i] = ClassNumber
				i++
			}
			continue
		}

		if isLetter(c) {
			start := i
			for i < len(chars) && isIdent(chars[i]) {
				i++
			}
			if l.isKeyword(chars[start:i]) {
				for j := start; j < i; j++ {
					colors[j] = ClassKeyword
				}
			}
			continue
		}

		i++
	}
	return colors
}
