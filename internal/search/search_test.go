package search

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ellery/tilde/internal/buffer"
)

func bufFromLines(lines ...string) *buffer.Buffer {
	b := buffer.NewEmptyBuffer("test.txt")
	b.Line(0).Chars = []byte(lines[0])
	for i := 1; i < len(lines); i++ {
		b.InsertLine(i, []byte(lines[i]))
	}
	return b
}

// nonOverlapCount counts non-overlapping occurrences the slow way.
func nonOverlapCount(text, pat string) int {
	count := 0
	for i := 0; ; {
		j := strings.Index(text[i:], pat)
		if j < 0 {
			return count
		}
		count++
		i += j + len(pat)
	}
}

// =============================================================================
// Pattern tables
// =============================================================================

func TestCompile_BadCharacterTable(t *testing.T) {
	p := Compile([]byte("foo"))

	assert.Equal(t, 2, p.bc['f'], "distance from last byte to 'f'")
	assert.Equal(t, 0, p.bc['o'], "last byte's own entry is zero; the scan clamps it")
	assert.Equal(t, 3, p.bc['x'], "absent bytes default to the pattern length")
}

func TestCompile_GoodSuffixDefaultsToOne(t *testing.T) {
	p := Compile([]byte("abc"))
	assert.Equal(t, 1, p.gs[1])
	assert.Equal(t, 1, p.gs[2])
}

func TestCompile_GoodSuffixAlignment(t *testing.T) {
	// Suffix "o" of "foo" re-occurs one position earlier.
	p := Compile([]byte("foo"))
	assert.Equal(t, 1, p.gs[1])
}

// =============================================================================
// Line scanning
// =============================================================================

func TestLine_Matches(t *testing.T) {
	tests := []struct {
		name string
		text string
		pat  string
		want []int
	}{
		{"three occurrences", "foo bar foo baz foo", "foo", []int{0, 8, 16}},
		{"none", "foo bar", "qux", nil},
		{"at end", "say foo", "foo", []int{4}},
		{"whole line", "foo", "foo", []int{0}},
		{"single byte", "abcabc", "b", []int{1, 4}},
		{"pattern longer than line", "ab", "abc", nil},
		// A self-overlapping pattern reports the overlapping hit too: after
		// a match the next candidate starts one past the match start, not
		// past the match end.
		{"self-overlapping pattern", "xooo", "oo", []int{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compile([]byte(tt.pat)).Line([]byte(tt.text))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLine_AlwaysTerminates(t *testing.T) {
	// Text made only of the pattern's last byte (whose bad-character entry
	// is zero) must still be scanned to the end without a match.
	got := Compile([]byte("ao")).Line([]byte("oooooooo"))
	assert.Empty(t, got)
}

func TestLine_ExhaustiveAgainstNaive(t *testing.T) {
	texts := []string{
		"the quick brown fox jumps over the lazy dog",
		"aaaaaaaaaaaa",
		"ab ab ab ab",
		"mississippi",
	}
	pats := []string{"the", "ab", "ss", "a", "dog"}

	for _, text := range texts {
		for _, pat := range pats {
			got := Compile([]byte(pat)).Line([]byte(text))
			want := nonOverlapCount(text, pat)
			assert.Equal(t, want, len(got), "text=%q pat=%q", text, pat)
		}
	}
}

// =============================================================================
// Buffer-wide search
// =============================================================================

func TestFindAll_DocumentOrder(t *testing.T) {
	b := bufFromLines("foo bar", "nothing", "bar foo foo")

	matches, ok := FindAll(b, []byte("foo"), nil)
	require.True(t, ok)
	assert.Equal(t, []buffer.Loc{{X: 0, Y: 0}, {X: 4, Y: 2}, {X: 8, Y: 2}}, matches)
}

func TestFindAll_EmptyPattern(t *testing.T) {
	b := bufFromLines("anything")
	matches, ok := FindAll(b, nil, nil)
	assert.True(t, ok)
	assert.Empty(t, matches)
}

func TestFindAll_AbortsOnPendingInput(t *testing.T) {
	b := bufFromLines("foo", "foo", "foo")

	calls := 0
	pending := func() bool {
		calls++
		return calls > 1 // input arrives mid-scan
	}
	matches, ok := FindAll(b, []byte("foo"), pending)
	assert.False(t, ok, "scan must abort when input is waiting")
	assert.Empty(t, matches, "aborted scan discards partial matches")
}

// =============================================================================
// Selection state
// =============================================================================

func TestState_SelectFromSaved(t *testing.T) {
	s := State{
		Matches: []buffer.Loc{{X: 0, Y: 0}, {X: 8, Y: 0}, {X: 16, Y: 0}},
		Saved:   buffer.Loc{X: 5, Y: 0},
	}
	s.SelectFromSaved()
	assert.Equal(t, 1, s.Index, "first match at or after the saved cursor")
}

func TestState_SelectFromSavedWraps(t *testing.T) {
	s := State{
		Matches: []buffer.Loc{{X: 0, Y: 0}},
		Saved:   buffer.Loc{X: 9, Y: 9},
	}
	s.SelectFromSaved()
	assert.Equal(t, 0, s.Index)
}

func TestState_AdvanceWraps(t *testing.T) {
	s := State{Matches: []buffer.Loc{{}, {}, {}}}

	s.Advance(1)
	s.Advance(1)
	assert.Equal(t, 2, s.Index)
	s.Advance(1)
	assert.Equal(t, 0, s.Index, "forward wraps")
	s.Advance(-1)
	assert.Equal(t, 2, s.Index, "backward wraps")
}

func TestState_JumpStride(t *testing.T) {
	s := State{Matches: make([]buffer.Loc, 120)}
	assert.Equal(t, 3, s.JumpStride())

	s.Matches = s.Matches[:10]
	assert.Equal(t, 1, s.JumpStride())
}
