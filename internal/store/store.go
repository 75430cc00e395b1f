// Package store persists picker state between sessions: the recents
// frequency map and the last panel rectangle. State lives in a single JSON
// settings file inside the data directory; read failures are treated as "no
// prior state" and write failures are reported but never fatal.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/atomicstack/kaomoji-popup/internal/geometry"
)

// FileName is the settings resource name inside the data directory.
const FileName = "settings.json"

type settings struct {
	Recents map[string]int `json:"recents,omitempty"`
	// RecentsOrder preserves insertion order for deterministic eviction.
	RecentsOrder []string `json:"recentsOrder,omitempty"`
	// LegacyRecents is the old plain-list format; it is migrated into
	// Recents on first load and dropped from the file on the next write.
	LegacyRecents []string       `json:"recent_kaomojis,omitempty"`
	Panel         *geometry.Rect `json:"panel,omitempty"`
}

// Store is a file-backed key-value settings store.
type Store struct {
	path  string
	state settings
}

// Open loads the settings file, applying the legacy recents migration when
// the old list format is found. A missing or unreadable file yields an empty
// store. The returned bool reports whether a migration happened (and was
// persisted back).
func Open(dir string) (*Store, bool, error) {
	s := &Store{path: filepath.Join(dir, FileName)}
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return s, false, nil
	}
	if err := json.Unmarshal(raw, &s.state); err != nil {
		// Corrupt settings are indistinguishable from no prior state.
		s.state = settings{}
		return s, false, nil
	}
	migrated := s.migrateLegacyRecents()
	if migrated {
		if err := s.flush(); err != nil {
			return s, true, err
		}
	}
	return s, migrated, nil
}

// migrateLegacyRecents converts the old plain list into count-of-1 entries,
// keeping any counts already present, then drops the old key.
func (s *Store) migrateLegacyRecents() bool {
	if len(s.state.LegacyRecents) == 0 {
		return false
	}
	if s.state.Recents == nil {
		s.state.Recents = make(map[string]int, len(s.state.LegacyRecents))
	}
	for _, item := range s.state.LegacyRecents {
		if _, ok := s.state.Recents[item]; !ok {
			s.state.Recents[item] = 1
			s.state.RecentsOrder = append(s.state.RecentsOrder, item)
		}
	}
	s.state.LegacyRecents = nil
	return true
}

// Recents returns the persisted frequency map and its insertion order.
func (s *Store) Recents() (map[string]int, []string) {
	counts := make(map[string]int, len(s.state.Recents))
	for k, v := range s.state.Recents {
		counts[k] = v
	}
	order := append([]string(nil), s.state.RecentsOrder...)
	return counts, order
}

// SaveRecents writes the frequency map through to disk.
func (s *Store) SaveRecents(counts map[string]int, order []string) error {
	s.state.Recents = make(map[string]int, len(counts))
	for k, v := range counts {
		s.state.Recents[k] = v
	}
	s.state.RecentsOrder = append([]string(nil), order...)
	return s.flush()
}

// Panel returns the persisted panel rectangle, if any.
func (s *Store) Panel() (geometry.Rect, bool) {
	if s.state.Panel == nil {
		return geometry.Rect{}, false
	}
	return *s.state.Panel, true
}

// SavePanel writes the panel rectangle through to disk.
func (s *Store) SavePanel(r geometry.Rect) error {
	s.state.Panel = &r
	return s.flush()
}

func (s *Store) flush() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}
	raw, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}
