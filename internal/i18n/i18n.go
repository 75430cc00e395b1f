// Package i18n provides translation lookup for UI strings. A bundle is
// constructed once at startup and injected into the components that need it;
// lookup always returns a usable string and never fails.
package i18n

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/atomicstack/kaomoji-popup/internal/logging"
)

// builtin is the English table compiled into the binary; locale files only
// need to override the keys they translate.
var builtin = map[string]string{
	"window_title":       "Kaomoji Picker",
	"recents":            "Recents",
	"clear_recents_hint": "ctrl+r clears recents",
	"notification_title": "Kaomoji copied",
	"copy_failed":        "Copy failed",
	"no_entries":         "(no entries)",
}

// Bundle resolves translation keys for one locale.
type Bundle struct {
	locale       string
	translations map[string]string
}

// Load builds a bundle for the locale, layering an optional override file
// (<dir>/locales/<locale>.json, a flat string map) over the built-in table.
// A missing or malformed file leaves the built-ins in place.
func Load(dir, locale string) *Bundle {
	b := &Bundle{
		locale:       locale,
		translations: make(map[string]string, len(builtin)),
	}
	for k, v := range builtin {
		b.translations[k] = v
	}
	path := filepath.Join(dir, "locales", locale+".json")
	raw, err := os.ReadFile(path)
	if err != nil {
		return b
	}
	var overrides map[string]string
	if err := json.Unmarshal(raw, &overrides); err != nil {
		logging.Error(err)
		return b
	}
	for k, v := range overrides {
		b.translations[k] = v
	}
	return b
}

// Locale returns the bundle's locale tag.
func (b *Bundle) Locale() string {
	return b.locale
}

// T resolves a key, falling back to the supplied text and finally to the key
// itself.
func (b *Bundle) T(key, fallback string) string {
	if v, ok := b.translations[key]; ok {
		return v
	}
	if fallback != "" {
		return fallback
	}
	return key
}

// Category resolves the display label for a catalog category name.
func (b *Bundle) Category(name string) string {
	return b.T("cat_"+name, name)
}
