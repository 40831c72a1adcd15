// Package viewport maps a logical result list onto a fixed number of
// visible rows and tracks the selected index, reporting the cheapest redraw
// that covers each change. Indices are 1-based; a Selected of 0 means no
// selection (empty list).
package viewport

// RedrawKind classifies how much of the window a state change dirtied.
type RedrawKind int

const (
	// RedrawNone: nothing changed on screen.
	RedrawNone RedrawKind = iota
	// RedrawHighlight: same window, only the previous and new selected
	// rows need recoloring.
	RedrawHighlight
	// RedrawFull: the window scrolled or was reset; all rows need
	// redrawing.
	RedrawFull
)

// Redraw describes the minimal repaint for one viewport change. PrevRow and
// NewRow are meaningful only for RedrawHighlight.
type Redraw struct {
	Kind    RedrawKind
	PrevRow int
	NewRow  int
}

// Viewport tracks the visible window and selection over the active result
// list. The row count is fixed at construction; only First, Selected, and
// the list length evolve.
type Viewport struct {
	rows     int
	first    int
	selected int
	length   int
}

// New creates a viewport with the given fixed number of visible rows.
func New(rows int) *Viewport {
	if rows < 1 {
		rows = 1
	}
	return &Viewport{rows: rows, first: 1}
}

// Rows returns the fixed window size.
func (v *Viewport) Rows() int { return v.rows }

// First returns the 1-based index of the top visible result.
func (v *Viewport) First() int { return v.first }

// Selected returns the 1-based selected index, or 0 when the list is empty.
func (v *Viewport) Selected() int { return v.selected }

// Length returns the active result list length last passed to Reset.
func (v *Viewport) Length() int { return v.length }

// Reset rebinds the viewport to a result list of the given length, moving
// the window to the top and selecting the first entry when one exists.
// Always a full redraw.
func (v *Viewport) Reset(length int) Redraw {
	v.length = length
	v.first = 1
	if length > 0 {
		v.selected = 1
	} else {
		v.selected = 0
	}
	return Redraw{Kind: RedrawFull}
}

// MoveUp moves the selection one entry up. No-op at the top or with no
// selection; scrolls the window (full redraw) when the selection would
// leave it, otherwise only the highlight moves.
func (v *Viewport) MoveUp() Redraw {
	if v.selected <= 1 {
		return Redraw{Kind: RedrawNone}
	}
	prev := v.selected
	v.selected--
	if v.selected < v.first {
		v.first -= prev - v.selected
		return Redraw{Kind: RedrawFull}
	}
	return Redraw{Kind: RedrawHighlight, PrevRow: v.RowFor(prev), NewRow: v.RowFor(v.selected)}
}

// MoveDown moves the selection one entry down, scrolling when it crosses
// the bottom of the window.
func (v *Viewport) MoveDown() Redraw {
	if v.selected == 0 || v.selected >= v.length {
		return Redraw{Kind: RedrawNone}
	}
	prev := v.selected
	v.selected++
	if v.selected > v.first+v.rows-1 {
		v.first += v.selected - (v.first + v.rows - 1)
		return Redraw{Kind: RedrawFull}
	}
	return Redraw{Kind: RedrawHighlight, PrevRow: v.RowFor(prev), NewRow: v.RowFor(v.selected)}
}

// RowFor converts a logical result index to a 1-based visible row.
func (v *Viewport) RowFor(index int) int {
	return index - v.first + 1
}

// IndexFor converts a 1-based visible row back to a logical result index.
func (v *Viewport) IndexFor(row int) int {
	return row + v.first - 1
}
