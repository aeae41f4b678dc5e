package config

import (
	"strconv"

	"github.com/micro-editor/tcell/v2"

	"github.com/ellery/tilde/internal/syntax"
)

// Colorscheme is a complete assignment of colors to the renderer's semantic
// tokens. The renderer addresses colors only through these tokens.
type Colorscheme struct {
	Name string

	EditorFg tcell.Color
	EditorBg tcell.Color
	StatusFg tcell.Color
	StatusBg tcell.Color

	MatchFg    tcell.Color
	MatchBg    tcell.Color
	SelMatchFg tcell.Color
	SelMatchBg tcell.Color

	Comment tcell.Color
	Keyword tcell.Color
	String  tcell.Color
	Char    tcell.Color
	Number  tcell.Color
}

// Schemes is the built-in colorscheme table. Lookup is by case-sensitive
// name or by base-10 index into this slice.
var Schemes = []*Colorscheme{
	{
		Name:     "midnight",
		EditorFg: tcell.NewRGBColor(0xd4, 0xd4, 0xd4),
		EditorBg: tcell.NewRGBColor(0x0b, 0x06, 0x14),
		StatusFg: tcell.NewRGBColor(0x0b, 0x06, 0x14),
		StatusBg: tcell.NewRGBColor(0x9a, 0x86, 0xc8),

		MatchFg:    tcell.NewRGBColor(0x0b, 0x06, 0x14),
		MatchBg:    tcell.NewRGBColor(0x5f, 0x87, 0x87),
		SelMatchFg: tcell.NewRGBColor(0x0b, 0x06, 0x14),
		SelMatchBg: tcell.NewRGBColor(0xd7, 0xaf, 0x5f),

		Comment: tcell.NewRGBColor(0x6a, 0x99, 0x55),
		Keyword: tcell.NewRGBColor(0xc5, 0x86, 0xc0),
		String:  tcell.NewRGBColor(0xce, 0x91, 0x78),
		Char:    tcell.NewRGBColor(0xce, 0x91, 0x78),
		Number:  tcell.NewRGBColor(0xb5, 0xce, 0xa8),
	},
	{
		Name:     "slate",
		EditorFg: tcell.NewRGBColor(0xc0, 0xc5, 0xce),
		EditorBg: tcell.NewRGBColor(0x2b, 0x30, 0x3b),
		StatusFg: tcell.NewRGBColor(0x2b, 0x30, 0x3b),
		StatusBg: tcell.NewRGBColor(0x8f, 0xa1, 0xb3),

		MatchFg:    tcell.NewRGBColor(0x2b, 0x30, 0x3b),
		MatchBg:    tcell.NewRGBColor(0xa3, 0xbe, 0x8c),
		SelMatchFg: tcell.NewRGBColor(0x2b, 0x30, 0x3b),
		SelMatchBg: tcell.NewRGBColor(0xeb, 0xcb, 0x8b),

		Comment: tcell.NewRGBColor(0x65, 0x73, 0x7e),
		Keyword: tcell.NewRGBColor(0xb4, 0x8e, 0xad),
		String:  tcell.NewRGBColor(0xa3, 0xbe, 0x8c),
		Char:    tcell.NewRGBColor(0xa3, 0xbe, 0x8c),
		Number:  tcell.NewRGBColor(0xd0, 0x87, 0x70),
	},
	{
		Name:     "paper",
		EditorFg: tcell.NewRGBColor(0x38, 0x3a, 0x42),
		EditorBg: tcell.NewRGBColor(0xfa, 0xfa, 0xfa),
		StatusFg: tcell.NewRGBColor(0xfa, 0xfa, 0xfa),
		StatusBg: tcell.NewRGBColor(0x52, 0x6f, 0xff),

		MatchFg:    tcell.NewRGBColor(0x38, 0x3a, 0x42),
		MatchBg:    tcell.NewRGBColor(0xc2, 0xe7, 0xd9),
		SelMatchFg: tcell.NewRGBColor(0x38, 0x3a, 0x42),
		SelMatchBg: tcell.NewRGBColor(0xff, 0xd7, 0x87),

		Comment: tcell.NewRGBColor(0xa0, 0xa1, 0xa7),
		Keyword: tcell.NewRGBColor(0xa6, 0x26, 0xa4),
		String:  tcell.NewRGBColor(0x50, 0xa1, 0x4f),
		Char:    tcell.NewRGBColor(0x50, 0xa1, 0x4f),
		Number:  tcell.NewRGBColor(0x98, 0x66, 0x01),
	},
}

// CurrentScheme is the active colorscheme.
var CurrentScheme = Schemes[0]

// LookupScheme finds a scheme by case-sensitive name or by numeric index.
func LookupScheme(s string) (*Colorscheme, bool) {
	for _, sc := range Schemes {
		if sc.Name == s {
			return sc, true
		}
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 0 && n < len(Schemes) {
		return Schemes[n], true
	}
	return nil, false
}

// EditorStyle is the default text style.
func (c *Colorscheme) EditorStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(c.EditorFg).Background(c.EditorBg)
}

// StatusStyle is the status bar style.
func (c *Colorscheme) StatusStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(c.StatusFg).Background(c.StatusBg)
}

// MatchStyle is the search-match overlay style. The selected match is
// styled distinctly from the others.
func (c *Colorscheme) MatchStyle(selected bool) tcell.Style {
	if selected {
		return tcell.StyleDefault.Foreground(c.SelMatchFg).Background(c.SelMatchBg)
	}
	return tcell.StyleDefault.Foreground(c.MatchFg).Background(c.MatchBg)
}

// ClassStyle maps a syntax color class onto the editor background.
func (c *Colorscheme) ClassStyle(cl syntax.Class) tcell.Style {
	fg := c.EditorFg
	switch cl {
	case syntax.ClassComment:
		fg = c.Comment
	case syntax.ClassKeyword:
		fg = c.Keyword
	case syntax.ClassString:
		fg = c.String
	case syntax.ClassChar:
		fg = c.Char
	case syntax.ClassNumber:
		fg = c.Number
	}
	return tcell.StyleDefault.Foreground(fg).Background(c.EditorBg)
}
