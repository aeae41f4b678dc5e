// Package layout maintains the binary partition of the terminal into
// rectangular regions and the windows living in its leaves.
package layout

import "github.com/ellery/tilde/internal/config"

// Region is a node of the partition tree. A leaf holds a window; an
// internal node holds exactly two children separated by a split ratio.
// Side-by-side splits spend one column on a divider; stacked splits have no
// divider row.
type Region struct {
	X      int
	Y      int
	Width  int
	Height int

	Split   float64
	Stacked bool

	Parent   *Region
	Children [2]*Region
	Win      *Window
}

// IsLeaf reports whether the region holds a window.
func (r *Region) IsLeaf() bool {
	return r.Win != nil
}

// Tree is the whole partition: the root region fills the terminal, and
// Active is the focused window.
type Tree struct {
	Root   *Region
	Active *Window
	Width  int
	Height int
}

// NewTree makes a single-window tree covering the given terminal size.
func NewTree(width, height int) *Tree {
	w := NewWindow()
	t := &Tree{
		Root:   &Region{Win: w},
		Active: w,
		Width:  width,
		Height: height,
	}
	t.Layout()
	return t
}

// SetSize records a new terminal size and re-lays the tree.
func (t *Tree) SetSize(width, height int) {
	t.Width = width
	t.Height = height
	t.Layout()
}

// Layout recomputes every region's geometry from the root down. Split
// ratios are rewritten to the realized ratio after clamping, so later
// resizes operate on what is actually on screen.
func (t *Tree) Layout() {
	t.Root.X, t.Root.Y = 0, 0
	t.Root.Width, t.Root.Height = t.Width, t.Height
	t.Root.layout()
}

// clamp bounds v into [lo, hi], with lo winning when the range is
// degenerate. That bias gives the first child its minimum when a region is
// too small for two.
func clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

func (r *Region) layout() {
	if r.Win != nil {
		r.Win.Region = r
		r.Win.Redraw = true
		return
	}

	c0, c1 := r.Children[0], r.Children[1]
	if r.Stacked {
		top := clamp(int(float64(r.Height)*r.Split),
			config.WindowMinimumHeight, r.Height-config.WindowMinimumHeight)
		if r.Height > 0 {
			r.Split = float64(top) / float64(r.Height)
		}
		c0.X, c0.Y, c0.Width, c0.Height = r.X, r.Y, r.Width, top
		c1.X, c1.Y, c1.Width, c1.Height = r.X, r.Y+top, r.Width, r.Height-top
	} else {
		left := clamp(int(float64(r.Width)*r.Split),
			config.WindowMinimumWidth, r.Width-config.WindowMinimumWidth-1)
		if r.Width > 0 {
			r.Split = float64(left) / float64(r.Width)
		}
		c0.X, c0.Y, c0.Width, c0.Height = r.X, r.Y, left, r.Height
		c1.X, c1.Y, c1.Width, c1.Height = r.X+left+1, r.Y, r.Width-left-1, r.Height
	}

	c0.Parent, c1.Parent = r, r
	c0.layout()
	c1.layout()
}

// Split turns the window's leaf into an internal node holding the window
// and a fresh empty one, at ratio 0.5. Splitting a region too small for two
// minimum windows is permitted; clamping produces the minimum layout.
func (t *Tree) Split(w *Window, stacked bool) *Window {
	r := w.Region
	nw := NewWindow()
	r.Children[0] = &Region{Parent: r, Win: w}
	r.Children[1] = &Region{Parent: r, Win: nw}
	r.Win = nil
	r.Split = 0.5
	r.Stacked = stacked
	t.Layout()
	return nw
}

// Remove deletes the window's leaf, promoting its sibling into the parent.
// Focus moves to the next window first. Removing the root window is a
// no-op.
func (t *Tree) Remove(w *Window) {
	r := w.Region
	p := r.Parent
	if p == nil || r.Win == nil {
		return
	}

	t.Active = t.Next(w)

	sib := p.Children[0]
	if sib == r {
		sib = p.Children[1]
	}
	p.Win = sib.Win
	p.Children = sib.Children
	p.Split = sib.Split
	p.Stacked = sib.Stacked
	if p.Children[0] != nil {
		p.Children[0].Parent = p
		p.Children[1].Parent = p
	}
	t.Layout()
}

// Swap exchanges the window's sibling pair under its parent. No-op at the
// root.
func (t *Tree) Swap(w *Window) {
	p := w.Region.Parent
	if p == nil {
		return
	}
	p.Children[0], p.Children[1] = p.Children[1], p.Children[0]
	t.Layout()
}

// Resize moves the split ratio of the window's parent by amount steps.
// Side-by-side splits double the step so a keypress feels proportional in
// both orientations. The layout pass clamps both sides to the minimum and
// writes back the realized ratio.
func (t *Tree) Resize(w *Window, amount int) {
	p := w.Region.Parent
	if p == nil {
		return
	}
	step := float64(amount) * config.ResizeStep
	if !p.Stacked {
		step *= 2
	}
	p.Split += step
	if p.Split < 0 {
		p.Split = 0
	}
	if p.Split > 1 {
		p.Split = 1
	}
	t.Layout()
}

func leftmost(r *Region) *Region {
	for r.Win == nil {
		r = r.Children[0]
	}
	return r
}

func rightmost(r *Region) *Region {
	for r.Win == nil {
		r = r.Children[1]
	}
	return r
}

// Next returns the window after w in the in-order leaf traversal, wrapping
// past the last leaf to the first.
func (t *Tree) Next(w *Window) *Window {
	r := w.Region
	for r.Parent != nil && r.Parent.Children[1] == r {
		r = r.Parent
	}
	if r.Parent == nil {
		return leftmost(t.Root).Win
	}
	return leftmost(r.Parent.Children[1]).Win
}

// Prev is the mirror of Next.
func (t *Tree) Prev(w *Window) *Window {
	r := w.Region
	for r.Parent != nil && r.Parent.Children[0] == r {
		r = r.Parent
	}
	if r.Parent == nil {
		return rightmost(t.Root).Win
	}
	return rightmost(r.Parent.Children[0]).Win
}

// FocusNext moves focus to the next window.
func (t *Tree) FocusNext() {
	t.setActive(t.Next(t.Active))
}

// FocusPrev moves focus to the previous window.
func (t *Tree) FocusPrev() {
	t.setActive(t.Prev(t.Active))
}

func (t *Tree) setActive(w *Window) {
	if t.Active != nil {
		t.Active.Redraw = true
	}
	t.Active = w
	w.Redraw = true
}

// Windows returns the live windows in leaf order.
func (t *Tree) Windows() []*Window {
	var out []*Window
	var walk func(r *Region)
	walk = func(r *Region) {
		if r.Win != nil {
			out = append(out, r.Win)
			return
		}
		walk(r.Children[0])
		walk(r.Children[1])
	}
	walk(t.Root)
	return out
}
