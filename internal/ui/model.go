package ui

import (
	"fmt"
	"reflect"
	"time"

	"github.com/atomicstack/kaomoji-popup/internal/catalog"
	"github.com/atomicstack/kaomoji-popup/internal/clipboard"
	"github.com/atomicstack/kaomoji-popup/internal/config"
	"github.com/atomicstack/kaomoji-popup/internal/geometry"
	"github.com/atomicstack/kaomoji-popup/internal/i18n"
	"github.com/atomicstack/kaomoji-popup/internal/logging/events"
	"github.com/atomicstack/kaomoji-popup/internal/navigator"
	"github.com/atomicstack/kaomoji-popup/internal/notify"
	"github.com/atomicstack/kaomoji-popup/internal/recents"
	"github.com/atomicstack/kaomoji-popup/internal/theme"
	uistate "github.com/atomicstack/kaomoji-popup/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

type list = uistate.List

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Copier is the clipboard pipeline the model copies through.
type Copier interface {
	Copy(text string) (clipboard.Mechanism, error)
}

// PanelStore persists the panel rectangle between runs.
type PanelStore interface {
	SavePanel(r geometry.Rect) error
}

// Params collects the collaborators the model is wired with.
type Params struct {
	Catalog   *catalog.Catalog
	Navigator *navigator.Navigator
	Tracker   *recents.Tracker
	Bundle    *i18n.Bundle
	Copier    Copier
	Notifier  *notify.Notifier
	Panels    PanelStore
	Panel     geometry.Rect
	App       config.App
}

// Model implements the Bubble Tea model for the kaomoji picker panel.
type Model struct {
	list     *list
	nav      *navigator.Navigator
	tracker  *recents.Tracker
	catalog  *catalog.Catalog
	bundle   *i18n.Bundle
	copier   Copier
	notifier *notify.Notifier
	panels   PanelStore

	geom       *geometry.Controller
	panel      geometry.Rect
	panelMoved bool
	hint       geometry.Hint
	behavior   config.Behavior

	copying    bool
	errMsg     string
	infoMsg    string
	infoExpire time.Time

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool

	filterCursor      cursor.Model
	filterCursorDirty bool

	layout   layout
	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI state with the recents view selected.
func NewModel(p Params) *Model {
	behavior := p.App.Behavior
	m := &Model{
		nav:        p.Navigator,
		tracker:    p.Tracker,
		catalog:    p.Catalog,
		bundle:     p.Bundle,
		copier:     p.Copier,
		notifier:   p.Notifier,
		panels:     p.Panels,
		geom:       geometry.NewController(behavior.MinPanelWidth, behavior.MinPanelHeight, behavior.ResizeEdgeThreshold),
		panel:      p.Panel,
		behavior:   behavior,
		showFooter: p.App.ShowFooter,
		verbose:    p.App.Verbose,
	}
	if m.panel.Width > 0 && m.panel.Height > 0 {
		m.panelMoved = true
	} else {
		m.panel = geometry.Rect{Width: behavior.DefaultPanelWidth, Height: behavior.DefaultPanelHeight}
	}
	if m.panel.Width < behavior.MinPanelWidth {
		m.panel.Width = behavior.MinPanelWidth
	}
	if m.panel.Height < behavior.MinPanelHeight {
		m.panel.Height = behavior.MinPanelHeight
	}
	if p.App.Width > 0 {
		m.width = p.App.Width
		m.fixedWidth = true
	}
	if p.App.Height > 0 {
		m.height = p.App.Height
		m.fixedHeight = true
	}
	m.nav.Select(navigator.RecentsKey)
	m.list = m.newList(navigator.RecentsKey)
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.registerHandlers()
	return m
}

// newList builds the item grid for a category key.
func (m *Model) newList(key string) *list {
	return uistate.NewList(key, m.categoryTitle(key), m.itemsFor(key))
}

// itemsFor resolves the grid items for a category key. The recents view is
// ranked by use count; catalog categories keep catalog order.
func (m *Model) itemsFor(key string) []uistate.Item {
	if key == navigator.RecentsKey {
		entries := m.tracker.TopN(m.behavior.MaxRecents)
		items := make([]uistate.Item, 0, len(entries))
		for _, entry := range entries {
			items = append(items, uistate.Item{
				Key:   entry.Item,
				Label: fmt.Sprintf("%d× %s", entry.Count, entry.Item),
			})
		}
		return items
	}
	emoticons := m.catalog.Items(key)
	items := make([]uistate.Item, 0, len(emoticons))
	for _, emoticon := range emoticons {
		items = append(items, uistate.Item{Key: emoticon, Label: emoticon})
	}
	return items
}

func (m *Model) categoryTitle(key string) string {
	if key == navigator.RecentsKey {
		return m.bundle.T("recents", "Recents")
	}
	return m.bundle.Category(key)
}

// refreshList rebuilds the current view in place, keeping the cursor on the
// same item when it survives the refresh.
func (m *Model) refreshList() {
	if m.list == nil {
		return
	}
	var keep string
	if item, ok := m.list.CurrentItem(); ok {
		keep = item.Key
	}
	m.list.UpdateItems(m.itemsFor(m.list.Category))
	if keep != "" {
		if idx := m.list.IndexOf(keep); idx >= 0 {
			m.list.Cursor = idx
		}
	}
	m.syncViewport()
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if cmd := m.filterCursor.Focus(); cmd != nil {
		return cmd
	}
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.FocusMsg{}):      m.handleFocusMsg,
		reflect.TypeOf(tea.BlurMsg{}):       m.handleBlurMsg,
		reflect.TypeOf(copyResultMsg{}):     m.handleCopyResultMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleFocusMsg(tea.Msg) tea.Cmd {
	return nil
}

// handleBlurMsg closes the panel when focus is lost, save for an in-flight
// resize gesture, which would otherwise be cut short by the terminal
// reporting a blur mid-drag.
func (m *Model) handleBlurMsg(tea.Msg) tea.Cmd {
	if !m.behavior.CloseOnFocusLoss {
		return nil
	}
	if m.geom.Resizing() {
		return nil
	}
	events.UI.Close("focus-lost")
	m.persistPanel()
	return tea.Quit
}

// persistPanel writes the panel rectangle through the store. Only meaningful
// once the user has moved or resized it at least once.
func (m *Model) persistPanel() {
	if m.panels == nil || !m.panelMoved {
		return
	}
	if err := m.panels.SavePanel(m.panel); err != nil {
		m.errMsg = err.Error()
	}
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}
