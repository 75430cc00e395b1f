package state

import "testing"

func TestMoveCursorHome(t *testing.T) {
	l := newTestList("a", "b", "c")
	l.Cursor = 2
	if !l.MoveCursorHome() {
		t.Fatalf("expected move when items exist")
	}
	if l.Cursor != 0 {
		t.Fatalf("expected cursor 0, got %d", l.Cursor)
	}

	empty := newTestList()
	empty.Cursor = 5
	if empty.MoveCursorHome() {
		t.Fatalf("expected no movement for empty list")
	}
	if empty.Cursor != 0 {
		t.Fatalf("expected cursor reset to 0, got %d", empty.Cursor)
	}
}

func TestMoveCursorEnd(t *testing.T) {
	l := newTestList("a", "b", "c")
	l.Cursor = 0
	if !l.MoveCursorEnd() {
		t.Fatalf("expected movement to end")
	}
	if l.Cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", l.Cursor)
	}

	empty := newTestList()
	if empty.MoveCursorEnd() {
		t.Fatalf("expected no movement for empty list")
	}
	if empty.Cursor != 0 {
		t.Fatalf("expected cursor reset to 0, got %d", empty.Cursor)
	}
}

func TestMoveCursorHorizontalWraps(t *testing.T) {
	l := newTestList("a", "b", "c")
	l.Cursor = 0
	if !l.MoveCursorLeft() {
		t.Fatalf("expected wrap to end")
	}
	if l.Cursor != 2 {
		t.Fatalf("expected cursor 2 after wrap, got %d", l.Cursor)
	}
	if !l.MoveCursorRight() {
		t.Fatalf("expected wrap to start")
	}
	if l.Cursor != 0 {
		t.Fatalf("expected cursor 0 after wrap, got %d", l.Cursor)
	}
}

func TestMoveCursorGridRows(t *testing.T) {
	l := newTestList("a", "b", "c", "d", "e")
	l.Cursor = 0
	if !l.MoveCursorDown(2) {
		t.Fatalf("expected movement on first row down")
	}
	if l.Cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", l.Cursor)
	}
	if !l.MoveCursorDown(2) {
		t.Fatalf("expected movement on second row down")
	}
	if l.Cursor != 4 {
		t.Fatalf("expected cursor 4, got %d", l.Cursor)
	}
	if l.MoveCursorDown(2) {
		t.Fatalf("expected no further movement past end")
	}
	if !l.MoveCursorUp(2) {
		t.Fatalf("expected movement on row up")
	}
	if l.Cursor != 2 {
		t.Fatalf("expected cursor 2 after row up, got %d", l.Cursor)
	}
	if !l.MoveCursorUp(10) {
		t.Fatalf("expected movement back to start")
	}
	if l.Cursor != 0 {
		t.Fatalf("expected cursor at start, got %d", l.Cursor)
	}
}

func TestEnsureCursorVisibleAdjustsViewport(t *testing.T) {
	l := newTestList("a", "b", "c", "d", "e", "f", "g", "h")
	l.Cursor = 7
	l.ViewportOffset = 0
	l.EnsureCursorVisible(2, 2)
	if l.ViewportOffset != 2 {
		t.Fatalf("expected offset 2, got %d", l.ViewportOffset)
	}

	l.Cursor = -1
	l.EnsureCursorVisible(2, 2)
	if l.Cursor != 0 {
		t.Fatalf("expected cursor normalized to 0, got %d", l.Cursor)
	}
	if l.ViewportOffset != 0 {
		t.Fatalf("expected viewport scrolled to first row, got %d", l.ViewportOffset)
	}

	l.ViewportOffset = 4
	l.EnsureCursorVisible(2, 0)
	if l.ViewportOffset != 0 {
		t.Fatalf("expected offset reset when no rows visible, got %d", l.ViewportOffset)
	}

	l.ViewportOffset = 3
	l.Cursor = 2
	l.EnsureCursorVisible(2, 2)
	if l.ViewportOffset != 1 {
		t.Fatalf("expected offset aligned with cursor row, got %d", l.ViewportOffset)
	}
}

func TestUpdateItemsReappliesFilter(t *testing.T) {
	l := newTestList("one", "two", "three")
	l.SetFilter("t", 1)
	if len(l.Items) != 2 {
		t.Fatalf("expected two matches, got %#v", l.Items)
	}
	l.UpdateItems([]Item{{Key: "ten", Label: "ten"}, {Key: "four", Label: "four"}})
	if len(l.Items) != 1 || l.Items[0].Key != "ten" {
		t.Fatalf("expected filter to survive item refresh, got %#v", l.Items)
	}
}

func TestCurrentItem(t *testing.T) {
	l := newTestList("a", "b")
	l.Cursor = 1
	item, ok := l.CurrentItem()
	if !ok || item.Key != "b" {
		t.Fatalf("expected current item b, got %#v ok=%v", item, ok)
	}
	l.Cursor = 5
	if _, ok := l.CurrentItem(); ok {
		t.Fatalf("expected no current item out of range")
	}
}
