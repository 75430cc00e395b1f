package app

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/atomicstack/kaomoji-popup/internal/catalog"
	"github.com/atomicstack/kaomoji-popup/internal/clipboard"
	"github.com/atomicstack/kaomoji-popup/internal/config"
	"github.com/atomicstack/kaomoji-popup/internal/i18n"
	"github.com/atomicstack/kaomoji-popup/internal/logging"
	"github.com/atomicstack/kaomoji-popup/internal/logging/events"
	"github.com/atomicstack/kaomoji-popup/internal/navigator"
	"github.com/atomicstack/kaomoji-popup/internal/notify"
	"github.com/atomicstack/kaomoji-popup/internal/recents"
	"github.com/atomicstack/kaomoji-popup/internal/store"
	"github.com/atomicstack/kaomoji-popup/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Run bootstraps the picker and executes the Bubble Tea program.
func Run(cfg config.Config) error {
	st, migrated, err := store.Open(cfg.App.DataDir)
	if err != nil {
		return fmt.Errorf("open settings store: %w", err)
	}

	cat := loadCatalog(cfg.App.DataDir)

	behavior := cfg.App.Behavior
	tracker := recents.NewTracker(behavior.MaxRecents, st)
	counts, order := st.Recents()
	tracker.Restore(counts, order)
	events.App.RecentsRestored(tracker.Len(), migrated)

	bundle := i18n.Load(cfg.App.DataDir, cfg.App.Locale)
	panel, _ := st.Panel()

	model := ui.NewModel(ui.Params{
		Catalog:   cat,
		Navigator: navigator.New(cat.CategoryNames()),
		Tracker:   tracker,
		Bundle:    bundle,
		Copier:    clipboard.New(behavior.ClipboardCommand, behavior.ClipboardTimeout),
		Notifier:  notify.New(behavior.NotificationCommand, behavior.NotificationTimeout, behavior.ShowNotifications),
		Panels:    st,
		Panel:     panel,
		App:       cfg.App,
	})
	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
	)
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// loadCatalog reads the catalog resource, seeding the default file on first
// run. Any load failure falls back to the built-in catalog so the picker
// always starts.
func loadCatalog(dataDir string) *catalog.Catalog {
	path := filepath.Join(dataDir, catalog.FileName)
	cat, err := catalog.Load(path)
	if err == nil {
		events.App.CatalogLoaded(path, cat.Groups(), len(cat.CategoryNames()))
		return cat
	}
	events.App.CatalogFallback(path, err.Error())
	if werr := catalog.WriteDefault(path); werr != nil {
		logging.Error(werr)
	}
	return catalog.Default()
}
