package state

import (
	"reflect"
	"testing"
)

func newTestList(keys ...string) *List {
	items := make([]Item, 0, len(keys))
	for _, key := range keys {
		items = append(items, Item{Key: key, Label: key})
	}
	return NewList("test", "Test", items)
}

func TestSetFilterTracksCursorAndRestoresPosition(t *testing.T) {
	list := newTestList("one", "two", "three")
	list.Cursor = 2
	list.SetFilter("two", len("two"))

	if list.Filter != "two" {
		t.Fatalf("expected filter persisted, got %q", list.Filter)
	}
	if list.FilterCursor != len("two") {
		t.Fatalf("expected cursor at end, got %d", list.FilterCursor)
	}
	if list.Cursor != 0 {
		t.Fatalf("expected filtered cursor at 0, got %d", list.Cursor)
	}
	if len(list.Items) != 1 || list.Items[0].Key != "two" {
		t.Fatalf("expected filtered items to contain only 'two', got %#v", list.Items)
	}

	list.SetFilter("", 0)
	if list.Cursor != 2 {
		t.Fatalf("expected cursor restored to 2, got %d", list.Cursor)
	}
	if list.LastCursor != -1 {
		t.Fatalf("expected last cursor reset, got %d", list.LastCursor)
	}
}

func TestInsertAndDeleteFilterText(t *testing.T) {
	list := newTestList("alpha")

	if !list.InsertFilterText("ab") {
		t.Fatal("expected insert to succeed")
	}
	if list.Filter != "ab" || list.FilterCursor != 2 {
		t.Fatalf("unexpected filter state %q/%d", list.Filter, list.FilterCursor)
	}

	list.FilterCursor = 1
	if !list.InsertFilterText("z") {
		t.Fatal("expected insert in middle to succeed")
	}
	if list.Filter != "azb" {
		t.Fatalf("expected insert into middle, got %q", list.Filter)
	}
	if list.FilterCursor != 2 {
		t.Fatalf("expected cursor 2 after insert, got %d", list.FilterCursor)
	}

	if !list.DeleteFilterRuneBackward() {
		t.Fatal("expected rune deletion to succeed")
	}
	if list.Filter != "ab" || list.FilterCursor != 1 {
		t.Fatalf("unexpected filter state after delete %q/%d", list.Filter, list.FilterCursor)
	}

	list.SetFilter("abc def", len("abc def"))
	if !list.DeleteFilterWordBackward() {
		t.Fatal("expected word deletion to succeed")
	}
	if list.Filter != "abc " {
		t.Fatalf("expected trailing word removed, got %q", list.Filter)
	}

	list.SetFilter("abc", 0)
	if list.DeleteFilterRuneBackward() {
		t.Fatal("expected delete at start to fail")
	}
}

func TestFilterCursorNavigation(t *testing.T) {
	list := newTestList("one", "two")
	list.SetFilter("one two", len("one two"))

	if !list.MoveFilterCursorWordBackward() {
		t.Fatal("expected word backward movement")
	}
	if list.FilterCursor != 4 {
		t.Fatalf("expected cursor at 4, got %d", list.FilterCursor)
	}
	if !list.MoveFilterCursorWordForward() {
		t.Fatal("expected word forward movement")
	}
	if list.FilterCursor != len("one two") {
		t.Fatalf("expected cursor restored to end, got %d", list.FilterCursor)
	}

	if !list.MoveFilterCursorRuneBackward() {
		t.Fatal("expected rune backward movement")
	}
	if list.FilterCursor != len("one two")-1 {
		t.Fatalf("expected cursor len-1, got %d", list.FilterCursor)
	}
	if !list.MoveFilterCursorRuneForward() {
		t.Fatal("expected rune forward movement")
	}
	if list.FilterCursor != len("one two") {
		t.Fatalf("expected cursor at end, got %d", list.FilterCursor)
	}
	if !list.MoveFilterCursorStart() {
		t.Fatal("expected move to start")
	}
	if list.FilterCursor != 0 {
		t.Fatalf("expected cursor at 0, got %d", list.FilterCursor)
	}
	if !list.MoveFilterCursorEnd() {
		t.Fatal("expected move back to end")
	}
}

func TestFilterItemsAndClone(t *testing.T) {
	items := []Item{{Key: "(* ^ ω ^)", Label: "Alpha"}, {Key: "(╥_╥)", Label: "Beta"}}
	filtered := FilterItems(items, "alp")
	if len(filtered) != 1 || filtered[0].Label != "Alpha" {
		t.Fatalf("unexpected filtered results %#v", filtered)
	}
	filtered = FilterItems(items, "ta")
	if len(filtered) != 1 || filtered[0].Label != "Beta" {
		t.Fatalf("expected contains match for Beta, got %#v", filtered)
	}

	clone := CloneItems(items)
	if &clone[0] == &items[0] {
		t.Fatal("expected clone to allocate new backing array")
	}

	filtered[0].Label = "changed"
	if items[1].Label != "Beta" {
		t.Fatal("expected original slice to remain unchanged")
	}

	if len(FilterItems(items, "nomatch")) != 0 {
		t.Fatal("expected empty results when nothing matches")
	}
}

func TestFilterItemsMatchesKeyText(t *testing.T) {
	items := []Item{
		{Key: "(* ^ ω ^)", Label: "(* ^ ω ^)"},
		{Key: "¯\\_(ツ)_/¯", Label: "¯\\_(ツ)_/¯"},
	}
	filtered := FilterItems(items, "ツ")
	if len(filtered) != 1 || filtered[0].Key != "¯\\_(ツ)_/¯" {
		t.Fatalf("expected shrug match via key text, got %#v", filtered)
	}
}

func TestBestMatchIndex(t *testing.T) {
	items := []Item{
		{Key: "one", Label: "First"},
		{Key: "two", Label: "Second"},
		{Key: "three", Label: "Third"},
	}

	if idx := BestMatchIndex(items, "Second"); idx != 1 {
		t.Fatalf("expected exact label match index 1, got %d", idx)
	}
	if idx := BestMatchIndex(items, "two"); idx != 1 {
		t.Fatalf("expected key match index 1, got %d", idx)
	}
	if idx := BestMatchIndex(items, "th"); idx != 2 {
		t.Fatalf("expected prefix match index 2, got %d", idx)
	}
	if idx := BestMatchIndex(items, "zzz"); idx != 0 {
		t.Fatalf("expected fallback index 0, got %d", idx)
	}
	if idx := BestMatchIndex(nil, "anything"); idx != -1 {
		t.Fatalf("expected -1 for empty slice, got %d", idx)
	}
}

func TestSetFilterSelectsFuzzyMatch(t *testing.T) {
	items := []Item{{Key: "1", Label: "Alpha"}, {Key: "2", Label: "Beta"}}
	list := NewList("test", "Test", items)
	list.SetFilter("alp", 3)
	if list.Cursor != 0 {
		t.Fatalf("expected fuzzy match to select first item, got %d", list.Cursor)
	}
	if !reflect.DeepEqual(list.Items, []Item{{Key: "1", Label: "Alpha"}}) {
		t.Fatalf("expected filtered items to contain Alpha, got %#v", list.Items)
	}
}
