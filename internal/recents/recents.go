// Package recents tracks how often each kaomoji has been copied. The map is
// bounded: once it grows past its capacity the lowest-count entries are
// evicted, oldest first, so the recents view stays meaningful without
// unbounded growth. Every mutation is written through to persistent storage
// immediately.
package recents

import (
	"sort"

	"github.com/atomicstack/kaomoji-popup/internal/logging"
	"github.com/atomicstack/kaomoji-popup/internal/logging/events"
)

// Entry pairs a kaomoji with its use count for ranked snapshots.
type Entry struct {
	Item  string
	Count int
}

// Saver receives write-through snapshots after each mutation.
type Saver interface {
	SaveRecents(counts map[string]int, order []string) error
}

// Tracker is the bounded frequency map.
type Tracker struct {
	max    int
	counts map[string]int
	order  []string
	saver  Saver
}

// NewTracker builds an empty tracker with the given capacity. A nil saver
// disables persistence.
func NewTracker(max int, saver Saver) *Tracker {
	return &Tracker{
		max:    max,
		counts: make(map[string]int),
		saver:  saver,
	}
}

// Restore seeds the tracker from persisted state. Entries missing from the
// order list (older files did not record it) are appended in sorted-key
// order so the result is deterministic; the capacity bound is enforced.
func (t *Tracker) Restore(counts map[string]int, order []string) {
	t.counts = make(map[string]int, len(counts))
	t.order = t.order[:0]
	for _, item := range order {
		if count, ok := counts[item]; ok && count > 0 {
			if _, dup := t.counts[item]; dup {
				continue
			}
			t.counts[item] = count
			t.order = append(t.order, item)
		}
	}
	missing := make([]string, 0, len(counts))
	for item, count := range counts {
		if count <= 0 {
			continue
		}
		if _, ok := t.counts[item]; !ok {
			missing = append(missing, item)
		}
	}
	sort.Strings(missing)
	for _, item := range missing {
		t.counts[item] = counts[item]
		t.order = append(t.order, item)
	}
	t.evict()
}

// Len returns the number of tracked entries.
func (t *Tracker) Len() int {
	return len(t.counts)
}

// RecordUse increments the count for the item, inserting it when absent,
// evicts past the capacity bound, and writes the result through.
func (t *Tracker) RecordUse(item string) {
	if _, ok := t.counts[item]; !ok {
		t.order = append(t.order, item)
	}
	t.counts[item]++
	t.evict()
	events.Recents.Recorded(item, t.counts[item], len(t.counts))
	t.persist()
}

// evict removes lowest-count entries, ties broken by ascending insertion
// order, until the capacity bound holds.
func (t *Tracker) evict() {
	if t.max <= 0 {
		return
	}
	for len(t.counts) > t.max {
		victimIdx := -1
		for i, item := range t.order {
			if victimIdx < 0 || t.counts[item] < t.counts[t.order[victimIdx]] {
				victimIdx = i
			}
		}
		if victimIdx < 0 {
			return
		}
		victim := t.order[victimIdx]
		events.Recents.Evicted(victim, t.counts[victim])
		delete(t.counts, victim)
		t.order = append(t.order[:victimIdx], t.order[victimIdx+1:]...)
	}
}

// TopN returns the n highest-count entries, ranked by descending count with
// ties broken by insertion order. The result is deterministic for a fixed
// tracker state.
func (t *Tracker) TopN(n int) []Entry {
	if n <= 0 || len(t.counts) == 0 {
		return nil
	}
	entries := make([]Entry, 0, len(t.order))
	for _, item := range t.order {
		entries = append(entries, Entry{Item: item, Count: t.counts[item]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	if n < len(entries) {
		entries = entries[:n]
	}
	return entries
}

// Clear empties the map. Idempotent; an already-empty tracker still writes
// through so an explicit user clear always lands on disk.
func (t *Tracker) Clear() {
	t.counts = make(map[string]int)
	t.order = t.order[:0]
	events.Recents.Cleared()
	t.persist()
}

func (t *Tracker) persist() {
	if t.saver == nil {
		return
	}
	counts := make(map[string]int, len(t.counts))
	for k, v := range t.counts {
		counts[k] = v
	}
	order := append([]string(nil), t.order...)
	if err := t.saver.SaveRecents(counts, order); err != nil {
		logging.Error(err)
	}
}
