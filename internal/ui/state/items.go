package state

// Item is a selectable entry in the picker grid. Key is the kaomoji text
// itself (its identity for copying and recents tracking); Label is the
// display form, which for recents entries carries the use-count prefix.
type Item struct {
	Key   string
	Label string
}

// CloneItems produces a shallow copy of the provided items.
func CloneItems(items []Item) []Item {
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}
