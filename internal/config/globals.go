package config

// Layout and rendering constants. The editor operates on single-byte cells,
// so every width here is a cell count.
const (
	// WindowMinimumWidth and WindowMinimumHeight bound every leaf region.
	WindowMinimumWidth  = 40
	WindowMinimumHeight = 10

	// DefaultScrollMargin is how close the cursor may get to a viewport edge
	// before the window scrolls.
	DefaultScrollMargin = 6

	// DefaultTabSize is the number of spaces one indent level occupies.
	DefaultTabSize = 2

	// BarScrollMargin keeps the minibar cursor away from the bar edges.
	BarScrollMargin = 6

	// MinibarMaxPathWidth truncates the file path shown on the status bar.
	MinibarMaxPathWidth = 32

	// GutterMargin is the blank space between line numbers and text.
	GutterMargin = 2

	// ResizeStep is the split-ratio delta of one resize keypress. Side-by-side
	// splits double it for a proportional feel.
	ResizeStep = 0.05
)
