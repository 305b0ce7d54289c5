package state

// Navigator tracks which slice of the filtered list is on screen and which
// row of that slice is highlighted. It only ever looks at lengths.
//
// The selected position in the filtered list is offset+cursor. Scrolling the
// window takes priority over moving the highlight, so moving down scrolls
// until the tail item is visible and only then walks the highlight to it.
type Navigator struct {
	offset int
	cursor int
	window int
}

// NewNavigator returns a navigator showing window rows at a time.
func NewNavigator(window int) Navigator {
	if window < 1 {
		window = 1
	}
	return Navigator{window: window}
}

// Offset is the index of the first visible item in the filtered list.
func (n Navigator) Offset() int { return n.offset }

// Cursor is the highlighted row within the visible window.
func (n Navigator) Cursor() int { return n.cursor }

// WindowSize is the number of rows rendered at once.
func (n Navigator) WindowSize() int { return n.window }

// Reconcile snaps the window and highlight back to the top. It runs after
// every filter change.
func (n *Navigator) Reconcile(filteredLen int) {
	n.offset = 0
	n.cursor = 0
}

// Place puts the highlight on row cursor of the top window, clamped to the
// rows actually shown.
func (n *Navigator) Place(filteredLen, cursor int) {
	n.offset = 0
	rows := n.rows(filteredLen)
	switch {
	case rows == 0 || cursor < 0:
		n.cursor = 0
	case cursor >= rows:
		n.cursor = rows - 1
	default:
		n.cursor = cursor
	}
}

// MoveDown scrolls the window one row, or moves the highlight one row once the
// window already shows the tail. It reports whether anything changed.
func (n *Navigator) MoveDown(filteredLen int) bool {
	if filteredLen <= 0 {
		return false
	}
	if n.offset < n.maxOffset(filteredLen) {
		n.offset++
		return true
	}
	if n.cursor < n.rows(filteredLen)-1 {
		n.cursor++
		return true
	}
	return false
}

// MoveUp scrolls the window up while it is not at the top, then moves the
// highlight up.
func (n *Navigator) MoveUp(filteredLen int) bool {
	if filteredLen <= 0 {
		return false
	}
	if n.offset > 0 {
		n.offset--
		return true
	}
	if n.cursor > 0 {
		n.cursor--
		return true
	}
	return false
}

// CurrentIndex returns the highlighted position in the filtered list, or
// false when nothing is selectable.
func (n Navigator) CurrentIndex(filteredLen int) (int, bool) {
	if filteredLen <= 0 {
		return 0, false
	}
	return n.offset + n.cursor, true
}

// Visible returns the half-open range of filtered positions on screen.
func (n Navigator) Visible(filteredLen int) (start, end int) {
	if filteredLen <= 0 {
		return 0, 0
	}
	start = n.offset
	end = start + n.window
	if end > filteredLen {
		end = filteredLen
	}
	return start, end
}

func (n Navigator) maxOffset(filteredLen int) int {
	if filteredLen <= n.window {
		return 0
	}
	return filteredLen - n.window
}

func (n Navigator) rows(filteredLen int) int {
	if filteredLen < n.window {
		return filteredLen
	}
	return n.window
}
