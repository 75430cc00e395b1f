// Package catalog holds the static grouped collection of kaomoji the picker
// offers. The catalog is loaded once from a JSON resource at startup and is
// read-only for the rest of the session.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Reserved group names used for the file's human organization. They never
// appear as selectable categories themselves.
const (
	GroupPositive = "Positive"
	GroupNegative = "Negative"
)

// Category is a named ordered list of kaomoji. The emoticon string itself is
// both display text and identity key.
type Category struct {
	Name      string   `json:"name"`
	Emoticons []string `json:"emoticons"`
}

// Group is a top-level organizational bucket of categories.
type Group struct {
	Name       string     `json:"name"`
	Categories []Category `json:"categories"`
}

// Catalog is the immutable tree of groups and categories.
type Catalog struct {
	groups []Group
}

// FileName is the catalog resource name inside the data directory.
const FileName = "kaomojis.json"

// Load reads and validates the catalog file. Callers are expected to recover
// from errors by falling back to Default().
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var groups []Group
	if err := json.Unmarshal(raw, &groups); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := validate(groups); err != nil {
		return nil, fmt.Errorf("validate catalog: %w", err)
	}
	return &Catalog{groups: groups}, nil
}

func validate(groups []Group) error {
	if len(groups) == 0 {
		return fmt.Errorf("catalog has no groups")
	}
	seen := make(map[string]struct{})
	for gi, g := range groups {
		if g.Name == "" {
			return fmt.Errorf("group %d has no name", gi)
		}
		for ci, c := range g.Categories {
			if c.Name == "" {
				return fmt.Errorf("group %q category %d has no name", g.Name, ci)
			}
			if _, dup := seen[c.Name]; dup {
				return fmt.Errorf("duplicate category %q", c.Name)
			}
			seen[c.Name] = struct{}{}
		}
	}
	return nil
}

// Default returns the built-in catalog used when the resource is absent or
// unreadable.
func Default() *Catalog {
	return &Catalog{groups: defaultGroups()}
}

func defaultGroups() []Group {
	return []Group{
		{
			Name: GroupPositive,
			Categories: []Category{
				{Name: "Joy", Emoticons: []string{"(* ^ ω ^)"}},
				{Name: "Love", Emoticons: []string{"(ﾉ´ з `)ノ"}},
			},
		},
		{
			Name: GroupNegative,
			Categories: []Category{
				{Name: "Anger", Emoticons: []string{"(#°Д°)"}},
			},
		},
	}
}

// WriteDefault persists the built-in catalog to the given path so the user
// has a file to edit. Parent directories are created when missing.
func WriteDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create catalog directory: %w", err)
	}
	raw, err := json.MarshalIndent(defaultGroups(), "", "  ")
	if err != nil {
		return fmt.Errorf("encode default catalog: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write default catalog: %w", err)
	}
	return nil
}

// Groups returns the group count, for startup tracing.
func (c *Catalog) Groups() int {
	return len(c.groups)
}

// CategoryNames returns the ordered selectable category names across all
// groups. Categories carrying a reserved group name are skipped, as are
// duplicates.
func (c *Catalog) CategoryNames() []string {
	names := make([]string, 0, 8)
	seen := make(map[string]struct{})
	for _, g := range c.groups {
		for _, cat := range g.Categories {
			if cat.Name == GroupPositive || cat.Name == GroupNegative {
				continue
			}
			if _, dup := seen[cat.Name]; dup {
				continue
			}
			seen[cat.Name] = struct{}{}
			names = append(names, cat.Name)
		}
	}
	return names
}

// Items returns the emoticons for the named category, or an empty slice when
// the category is unknown.
func (c *Catalog) Items(category string) []string {
	for _, g := range c.groups {
		for _, cat := range g.Categories {
			if cat.Name == category {
				return append([]string(nil), cat.Emoticons...)
			}
		}
	}
	return nil
}
