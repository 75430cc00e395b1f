// Package navigator owns the ordered list of selectable views: the synthetic
// recents pseudo-category first, then the catalog categories in catalog
// order. Selection and cyclic traversal are deterministic for a given
// catalog and call sequence.
package navigator

// RecentsKey is the pseudo-category key for the recents view. It can never
// collide with a catalog category because catalog names come from user data
// and the key is reserved.
const RecentsKey = "__recents__"

const unset = -1

// Navigator tracks the current category selection.
type Navigator struct {
	ordered []string
	current int
}

// New builds a navigator for the given catalog category names. The recents
// pseudo-category is always prepended.
func New(categories []string) *Navigator {
	ordered := make([]string, 0, len(categories)+1)
	ordered = append(ordered, RecentsKey)
	ordered = append(ordered, categories...)
	return &Navigator{ordered: ordered, current: unset}
}

// Categories returns the ordered selectable keys.
func (n *Navigator) Categories() []string {
	return append([]string(nil), n.ordered...)
}

// Current returns the selected key, or "" when nothing has been selected.
func (n *Navigator) Current() string {
	if n.current < 0 || n.current >= len(n.ordered) {
		return ""
	}
	return n.ordered[n.current]
}

// Index returns the selected position, or -1 when unset.
func (n *Navigator) Index() int {
	return n.current
}

// Select moves the selection to the given key. Unknown keys leave the state
// unchanged; selection never fails.
func (n *Navigator) Select(key string) {
	for i, candidate := range n.ordered {
		if candidate == key {
			n.current = i
			return
		}
	}
}

// Next cycles the selection one step forward, or backward when reverse is
// set, wrapping around in both directions. An empty category list is a
// no-op. An unset selection recovers onto the first element on the first
// forward step. The selected key is returned.
func (n *Navigator) Next(reverse bool) string {
	if len(n.ordered) == 0 {
		return ""
	}
	step := 1
	if reverse {
		step = -1
	}
	n.current = floorMod(n.current+step, len(n.ordered))
	return n.ordered[n.current]
}

// floorMod is the non-negative modulo, so backward wrap-around lands on the
// last element instead of a negative index.
func floorMod(x, m int) int {
	r := x % m
	if r < 0 {
		r += m
	}
	return r
}
