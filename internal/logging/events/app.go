package events

import "github.com/atomicstack/kaomoji-popup/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) CatalogLoaded(path string, groups, categories int) {
	logging.Trace("app.catalog-loaded", map[string]interface{}{
		"path":       path,
		"groups":     groups,
		"categories": categories,
	})
}

func (AppTracer) CatalogFallback(path string, reason string) {
	logging.Trace("app.catalog-fallback", map[string]interface{}{
		"path":   path,
		"reason": reason,
	})
}

func (AppTracer) RecentsRestored(entries int, migrated bool) {
	logging.Trace("app.recents-restored", map[string]interface{}{
		"entries":  entries,
		"migrated": migrated,
	})
}
