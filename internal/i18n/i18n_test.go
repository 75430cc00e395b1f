package i18n

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadWithoutLocaleFileUsesBuiltins(t *testing.T) {
	b := Load(t.TempDir(), "en")
	if got := b.T("recents", ""); got != "Recents" {
		t.Fatalf("expected builtin translation, got %q", got)
	}
	if b.Locale() != "en" {
		t.Fatalf("expected locale en, got %q", b.Locale())
	}
}

func TestLocaleFileOverridesBuiltins(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "locales"), 0o755); err != nil {
		t.Fatalf("mkdir locales: %v", err)
	}
	content := `{"recents": "Son Kullanılanlar", "cat_Joy": "Neşe"}`
	if err := os.WriteFile(filepath.Join(dir, "locales", "tr.json"), []byte(content), 0o644); err != nil {
		t.Fatalf("write locale: %v", err)
	}
	b := Load(dir, "tr")
	if got := b.T("recents", ""); got != "Son Kullanılanlar" {
		t.Fatalf("expected override, got %q", got)
	}
	if got := b.Category("Joy"); got != "Neşe" {
		t.Fatalf("expected category override, got %q", got)
	}
	// Untranslated keys keep the builtin.
	if got := b.T("window_title", ""); got != "Kaomoji Picker" {
		t.Fatalf("expected builtin retained, got %q", got)
	}
}

func TestMalformedLocaleFileFallsBack(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "locales"), 0o755); err != nil {
		t.Fatalf("mkdir locales: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "locales", "de.json"), []byte("{{{"), 0o644); err != nil {
		t.Fatalf("write locale: %v", err)
	}
	b := Load(dir, "de")
	if got := b.T("recents", ""); got != "Recents" {
		t.Fatalf("expected builtin after malformed file, got %q", got)
	}
}

func TestTFallbackChain(t *testing.T) {
	b := Load(t.TempDir(), "en")
	if got := b.T("unknown_key", "fallback text"); got != "fallback text" {
		t.Fatalf("expected fallback, got %q", got)
	}
	if got := b.T("unknown_key", ""); got != "unknown_key" {
		t.Fatalf("expected key echo, got %q", got)
	}
	if got := b.Category("Love"); got != "Love" {
		t.Fatalf("expected untranslated category name, got %q", got)
	}
}
