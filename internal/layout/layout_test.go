package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkTree walks the region tree and asserts the structural invariants:
// leaves hold windows with matching back-references, internal nodes hold
// two children whose extents sum to the parent's on the split axis.
func checkTree(t *testing.T, tr *Tree) {
	t.Helper()
	var walk func(r *Region)
	walk = func(r *Region) {
		if r.Win != nil {
			assert.Nil(t, r.Children[0])
			assert.Nil(t, r.Children[1])
			assert.Same(t, r, r.Win.Region, "window back-reference")
			return
		}
		c0, c1 := r.Children[0], r.Children[1]
		require.NotNil(t, c0)
		require.NotNil(t, c1)
		if r.Stacked {
			assert.Equal(t, r.Height, c0.Height+c1.Height, "stacked heights sum")
			assert.Equal(t, r.Width, c0.Width)
			assert.Equal(t, r.Width, c1.Width)
		} else {
			assert.Equal(t, r.Width, c0.Width+c1.Width+1, "side widths sum minus divider")
			assert.Equal(t, r.Height, c0.Height)
			assert.Equal(t, r.Height, c1.Height)
		}
		walk(c0)
		walk(c1)
	}
	walk(tr.Root)
}

// =============================================================================
// Split and remove (scenario: 80x24 round trip)
// =============================================================================

func TestTree_SideSplitGeometry(t *testing.T) {
	tr := NewTree(80, 24)
	orig := tr.Active

	tr.Split(orig, false)

	left := tr.Root.Children[0]
	right := tr.Root.Children[1]
	assert.Equal(t, 40, left.Width, "divider consumes one column from the right child")
	assert.Equal(t, 39, right.Width)
	assert.Equal(t, 24, left.Height)
	assert.Equal(t, 24, right.Height)
	assert.Equal(t, 41, right.X)
	assert.Same(t, orig, left.Win, "existing window becomes child 0")
	checkTree(t, tr)
}

func TestTree_SplitRemoveRoundTrip(t *testing.T) {
	tr := NewTree(80, 24)
	orig := tr.Active

	nw := tr.Split(orig, false)
	tr.Remove(nw)

	assert.True(t, tr.Root.IsLeaf())
	assert.Same(t, orig, tr.Root.Win)
	assert.Equal(t, 80, tr.Root.Width)
	assert.Equal(t, 24, tr.Root.Height)
	checkTree(t, tr)
}

func TestTree_StackedSplitGeometry(t *testing.T) {
	tr := NewTree(80, 24)
	tr.Split(tr.Active, true)

	top := tr.Root.Children[0]
	bottom := tr.Root.Children[1]
	assert.Equal(t, 12, top.Height, "no divider row between stacked children")
	assert.Equal(t, 12, bottom.Height)
	assert.Equal(t, 80, top.Width)
	checkTree(t, tr)
}

func TestTree_RemoveRootIsNoop(t *testing.T) {
	tr := NewTree(80, 24)
	w := tr.Active

	tr.Remove(w)
	assert.Same(t, w, tr.Root.Win)
	assert.Same(t, w, tr.Active)
}

func TestTree_RemoveTransfersFocus(t *testing.T) {
	tr := NewTree(200, 60)
	a := tr.Active
	b := tr.Split(a, false)
	tr.Active = b

	tr.Remove(b)
	assert.Same(t, a, tr.Active)
}

func TestTree_SplitTooSmallClampsToMinimum(t *testing.T) {
	// Splitting a window whose region cannot fit two minimum children is
	// permitted; the first child gets its minimum.
	tr := NewTree(50, 24)
	tr.Split(tr.Active, false)

	left := tr.Root.Children[0]
	assert.Equal(t, 40, left.Width)
	assert.Equal(t, 9, tr.Root.Children[1].Width)
}

// =============================================================================
// Swap and resize
// =============================================================================

func TestTree_Swap(t *testing.T) {
	tr := NewTree(120, 40)
	a := tr.Active
	b := tr.Split(a, false)

	tr.Swap(a)
	assert.Same(t, b, tr.Root.Children[0].Win)
	assert.Same(t, a, tr.Root.Children[1].Win)
	checkTree(t, tr)
}

func TestTree_SwapAtRootIsNoop(t *testing.T) {
	tr := NewTree(80, 24)
	w := tr.Active
	tr.Swap(w)
	assert.Same(t, w, tr.Root.Win)
}

func TestTree_ResizeMovesDivider(t *testing.T) {
	tr := NewTree(200, 60)
	a := tr.Active
	tr.Split(a, false)

	before := tr.Root.Children[0].Width
	tr.Resize(a, 1)
	after := tr.Root.Children[0].Width
	assert.Greater(t, after, before)
	checkTree(t, tr)
}

func TestTree_ResizeClampsToMinimum(t *testing.T) {
	tr := NewTree(120, 40)
	a := tr.Active
	tr.Split(a, false)

	for i := 0; i < 50; i++ {
		tr.Resize(a, -1)
	}
	assert.Equal(t, 40, tr.Root.Children[0].Width, "left child never shrinks past the minimum")
	checkTree(t, tr)

	for i := 0; i < 50; i++ {
		tr.Resize(a, 1)
	}
	assert.GreaterOrEqual(t, tr.Root.Children[1].Width, 40)
	checkTree(t, tr)
}

func TestTree_ResizeRewritesRealizedRatio(t *testing.T) {
	tr := NewTree(120, 40)
	a := tr.Active
	tr.Split(a, false)

	for i := 0; i < 50; i++ {
		tr.Resize(a, -1)
	}
	// The stored ratio reflects the clamped layout, so a single opposite
	// step moves off the minimum instead of replaying the lost distance.
	tr.Resize(a, 1)
	assert.Greater(t, tr.Root.Children[0].Width, 40)
}

func TestTree_ResizeAtRootIsNoop(t *testing.T) {
	tr := NewTree(80, 24)
	tr.Resize(tr.Active, 1)
	assert.True(t, tr.Root.IsLeaf())
}

// =============================================================================
// Focus traversal
// =============================================================================

func TestTree_FocusTraversalOrder(t *testing.T) {
	tr := NewTree(300, 80)
	a := tr.Active
	b := tr.Split(a, false)
	c := tr.Split(b, true)

	assert.Same(t, b, tr.Next(a))
	assert.Same(t, c, tr.Next(b))
	assert.Same(t, a, tr.Next(c), "wraps to the leftmost leaf")

	assert.Same(t, c, tr.Prev(a), "wraps to the rightmost leaf")
	assert.Same(t, a, tr.Prev(b))
	assert.Same(t, b, tr.Prev(c))
}

func TestTree_NextPrevIdentity(t *testing.T) {
	tr := NewTree(300, 80)
	a := tr.Active
	b := tr.Split(a, false)
	tr.Split(b, true)
	tr.Split(a, true)

	for _, w := range tr.Windows() {
		assert.Same(t, w, tr.Prev(tr.Next(w)))
		assert.Same(t, w, tr.Next(tr.Prev(w)))
	}
}

func TestTree_LeafSetEqualsWindows(t *testing.T) {
	tr := NewTree(300, 80)
	a := tr.Active
	b := tr.Split(a, false)
	c := tr.Split(b, true)

	assert.Equal(t, []*Window{a, b, c}, tr.Windows())

	tr.Remove(b)
	assert.Equal(t, []*Window{a, c}, tr.Windows())
	checkTree(t, tr)
}
