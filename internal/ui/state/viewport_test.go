package state

import (
	"math/rand"
	"testing"
)

// checkInvariants verifies the viewport rules that must hold after every
// navigation call.
func checkInvariants(t *testing.T, n Navigator, filteredLen int) {
	t.Helper()
	if n.offset < 0 {
		t.Fatalf("negative offset %d", n.offset)
	}
	maxOffset := filteredLen - n.window
	if maxOffset < 0 {
		maxOffset = 0
	}
	if n.offset > maxOffset {
		t.Fatalf("offset %d beyond max %d (len=%d window=%d)", n.offset, maxOffset, filteredLen, n.window)
	}
	if filteredLen == 0 {
		if n.cursor != 0 {
			t.Fatalf("cursor %d on empty list", n.cursor)
		}
		if _, ok := n.CurrentIndex(filteredLen); ok {
			t.Fatalf("expected no current index on empty list")
		}
		return
	}
	rows := n.window
	if filteredLen < rows {
		rows = filteredLen
	}
	if n.cursor < 0 || n.cursor >= rows {
		t.Fatalf("cursor %d outside [0,%d)", n.cursor, rows)
	}
	if n.offset+n.cursor >= filteredLen {
		t.Fatalf("selection %d past end of %d items", n.offset+n.cursor, filteredLen)
	}
}

func TestNavigatorScrollsBeforeMovingCursor(t *testing.T) {
	// ten items, six rows, highlight starting on the third row
	n := Navigator{window: 6, cursor: 2}
	const length = 10
	steps := []struct{ offset, cursor int }{
		{1, 2}, {2, 2}, {3, 2}, {4, 2},
		{4, 3}, {4, 4}, {4, 5},
	}
	for i, want := range steps {
		if !n.MoveDown(length) {
			t.Fatalf("call %d: expected movement", i+1)
		}
		if n.Offset() != want.offset || n.Cursor() != want.cursor {
			t.Fatalf("call %d: expected (%d,%d), got (%d,%d)", i+1, want.offset, want.cursor, n.Offset(), n.Cursor())
		}
		checkInvariants(t, n, length)
	}
	if idx, _ := n.CurrentIndex(length); idx != length-1 {
		t.Fatalf("expected tail item selected, got %d", idx)
	}
	if n.MoveDown(length) {
		t.Fatalf("expected no-op once the tail is highlighted")
	}
}

func TestNavigatorMoveUpScrollsBeforeMovingCursor(t *testing.T) {
	n := Navigator{window: 6, offset: 2, cursor: 3}
	const length = 10
	steps := []struct{ offset, cursor int }{
		{1, 3}, {0, 3}, {0, 2}, {0, 1}, {0, 0},
	}
	for i, want := range steps {
		if !n.MoveUp(length) {
			t.Fatalf("call %d: expected movement", i+1)
		}
		if n.Offset() != want.offset || n.Cursor() != want.cursor {
			t.Fatalf("call %d: expected (%d,%d), got (%d,%d)", i+1, want.offset, want.cursor, n.Offset(), n.Cursor())
		}
	}
	if n.MoveUp(length) {
		t.Fatalf("expected no-op at the top")
	}
}

func TestNavigatorShortListOnlyMovesCursor(t *testing.T) {
	n := NewNavigator(6)
	length := n.WindowSize() - 1
	n.Reconcile(length)
	for i := 0; i < 10; i++ {
		before := n.Cursor()
		moved := n.MoveDown(length)
		if n.Offset() != 0 {
			t.Fatalf("offset moved to %d on a short list", n.Offset())
		}
		if before < length-1 {
			if !moved || n.Cursor() != before+1 {
				t.Fatalf("expected cursor %d, got %d", before+1, n.Cursor())
			}
		} else if moved || n.Cursor() != length-1 {
			t.Fatalf("expected no-op at cursor %d, got %d (moved=%v)", length-1, n.Cursor(), moved)
		}
		checkInvariants(t, n, length)
	}
}

func TestNavigatorEmptyList(t *testing.T) {
	n := NewNavigator(6)
	n.Reconcile(0)
	for i := 0; i < 5; i++ {
		if n.MoveDown(0) || n.MoveUp(0) {
			t.Fatalf("expected moves to be no-ops on an empty list")
		}
	}
	if _, ok := n.CurrentIndex(0); ok {
		t.Fatalf("expected no current index")
	}
	if start, end := n.Visible(0); start != 0 || end != 0 {
		t.Fatalf("expected empty visible range, got [%d,%d)", start, end)
	}
	checkInvariants(t, n, 0)
}

func TestNavigatorReconcileResetsAndIsIdempotent(t *testing.T) {
	n := Navigator{window: 6, offset: 3, cursor: 4}
	n.Reconcile(10)
	once := n
	n.Reconcile(10)
	if n != once {
		t.Fatalf("expected reconcile to be idempotent: %+v vs %+v", once, n)
	}
	if n.Offset() != 0 || n.Cursor() != 0 {
		t.Fatalf("expected reset to (0,0), got (%d,%d)", n.Offset(), n.Cursor())
	}
}

func TestNavigatorInvariantsHoldForRandomWalks(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for window := 1; window <= 7; window++ {
		for length := 0; length <= 12; length++ {
			n := NewNavigator(window)
			n.Reconcile(length)
			checkInvariants(t, n, length)
			for step := 0; step < 200; step++ {
				if rng.Intn(2) == 0 {
					n.MoveDown(length)
				} else {
					n.MoveUp(length)
				}
				checkInvariants(t, n, length)
			}
		}
	}
}

func TestNavigatorEveryItemIsReachable(t *testing.T) {
	for length := 1; length <= 12; length++ {
		n := NewNavigator(6)
		n.Reconcile(length)
		seen := map[int]bool{}
		for {
			idx, _ := n.CurrentIndex(length)
			seen[idx] = true
			if !n.MoveDown(length) {
				break
			}
		}
		if len(seen) != length {
			t.Fatalf("len %d: expected every item reachable going down, saw %d", length, len(seen))
		}
		for n.MoveUp(length) {
		}
		if idx, _ := n.CurrentIndex(length); idx != 0 {
			t.Fatalf("len %d: expected to end at the top, got %d", length, idx)
		}
	}
}

func TestNavigatorVisibleRange(t *testing.T) {
	n := Navigator{window: 6, offset: 4, cursor: 1}
	if start, end := n.Visible(10); start != 4 || end != 10 {
		t.Fatalf("expected [4,10), got [%d,%d)", start, end)
	}
	short := NewNavigator(6)
	if start, end := short.Visible(3); start != 0 || end != 3 {
		t.Fatalf("expected [0,3), got [%d,%d)", start, end)
	}
}

func TestNewNavigatorCoercesWindow(t *testing.T) {
	if got := NewNavigator(0).WindowSize(); got != 1 {
		t.Fatalf("expected window coerced to 1, got %d", got)
	}
}

func TestNavigatorPlaceClampsToVisibleRows(t *testing.T) {
	cases := []struct {
		length, cursor, want int
	}{
		{10, 2, 2},
		{10, 9, 5},
		{2, 2, 1},
		{0, 2, 0},
		{10, -1, 0},
	}
	for _, tc := range cases {
		n := Navigator{window: 6, offset: 3, cursor: 4}
		n.Place(tc.length, tc.cursor)
		if n.Offset() != 0 || n.Cursor() != tc.want {
			t.Fatalf("Place(%d, %d): expected (0,%d), got (%d,%d)", tc.length, tc.cursor, tc.want, n.Offset(), n.Cursor())
		}
		checkInvariants(t, n, tc.length)
	}
}
