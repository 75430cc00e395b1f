package state

// List encapsulates the visible item grid for one category: the full item
// set, the filtered view of it, cursor position, and the row-based viewport.
type List struct {
	Category       string
	Title          string
	Items          []Item
	Full           []Item
	Filter         string
	FilterCursor   int
	Cursor         int
	LastCursor     int
	ViewportOffset int
}

// NewList constructs a List for a category using the provided items.
func NewList(category, title string, items []Item) *List {
	l := &List{
		Category:   category,
		Title:      title,
		Cursor:     -1,
		LastCursor: -1,
	}
	l.UpdateItems(items)
	return l
}

// IndexOf returns the index for a given item key.
func (l *List) IndexOf(key string) int {
	if key == "" {
		return -1
	}
	for i, item := range l.Items {
		if item.Key == key {
			return i
		}
	}
	return -1
}

// CurrentItem returns the item under the cursor.
func (l *List) CurrentItem() (Item, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return Item{}, false
	}
	return l.Items[l.Cursor], true
}

// UpdateItems replaces the item set, reapplying the active filter and
// keeping the viewport offset when it still fits.
func (l *List) UpdateItems(items []Item) {
	prevOffset := l.ViewportOffset
	l.Full = CloneItems(items)
	l.applyFilter()
	if len(l.Items) == 0 {
		l.ViewportOffset = 0
		return
	}
	if prevOffset < 0 {
		prevOffset = 0
	}
	l.ViewportOffset = prevOffset
}
