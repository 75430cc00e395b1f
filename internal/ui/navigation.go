package ui

import (
	"github.com/atomicstack/kaomoji-popup/internal/logging/events"
	"github.com/atomicstack/kaomoji-popup/internal/navigator"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if keyMsg.Type == tea.KeyTab {
		m.cycleCategory(false)
		return nil
	}
	if keyMsg.Type == tea.KeyShiftTab {
		m.cycleCategory(true)
		return nil
	}
	switch keyMsg.String() {
	case "ctrl+r":
		m.clearRecents()
		return nil
	}
	if m.handleTextInput(keyMsg) {
		return nil
	}
	switch keyMsg.String() {
	case "ctrl+c":
		events.UI.Close("quit-key")
		m.persistPanel()
		return tea.Quit
	case "esc":
		return m.handleEscapeKey()
	case "enter":
		return m.handleEnterKey()
	case "up":
		m.moveCursorUp()
	case "down":
		m.moveCursorDown()
	case "left":
		m.moveCursorLeft()
	case "right":
		m.moveCursorRight()
	case "home":
		m.moveCursorHome()
	case "end":
		m.moveCursorEnd()
	}
	return nil
}

// handleEscapeKey clears an active filter first; a second escape closes the
// panel.
func (m *Model) handleEscapeKey() tea.Cmd {
	if m.list != nil && m.list.Filter != "" {
		before := m.list.FilterCursorPos()
		m.list.SetFilter("", 0)
		m.noteFilterCursorChange(before)
		events.Filter.Cleared(m.list.Category)
		m.syncViewport()
		return nil
	}
	events.UI.Close("escape")
	m.persistPanel()
	return tea.Quit
}

func (m *Model) handleEnterKey() tea.Cmd {
	if m.copying || m.list == nil {
		return nil
	}
	item, ok := m.list.CurrentItem()
	if !ok {
		return nil
	}
	return m.activateItem(item.Key)
}

// cycleCategory advances the selection and rebuilds the grid for the newly
// selected view. The filter does not carry across categories.
func (m *Model) cycleCategory(reverse bool) {
	key := m.nav.Next(reverse)
	if key == "" {
		return
	}
	events.UI.CategoryCycle(key, reverse)
	m.errMsg = ""
	m.forceClearInfo()
	m.list = m.newList(key)
	m.syncViewport()
}

// selectCategory jumps straight to a category, used by mouse presses on the
// category bar.
func (m *Model) selectCategory(key string) {
	if key == m.nav.Current() {
		return
	}
	m.nav.Select(key)
	if m.nav.Current() != key {
		return
	}
	events.UI.CategorySelect(key, m.nav.Index())
	m.errMsg = ""
	m.forceClearInfo()
	m.list = m.newList(key)
	m.syncViewport()
}

// clearRecents empties the frequency map and refreshes the recents view when
// it is on screen.
func (m *Model) clearRecents() {
	m.tracker.Clear()
	if m.list != nil && m.list.Category == navigator.RecentsKey {
		m.refreshList()
	}
	m.setInfo(m.bundle.T("recents_cleared", "Recents cleared"))
}

func (m *Model) moveCursorUp() {
	if m.list == nil {
		return
	}
	if m.list.MoveCursorUp(m.gridColumns()) {
		events.UI.Cursor(m.list.Category, m.list.Cursor)
	}
	m.syncViewport()
}

func (m *Model) moveCursorDown() {
	if m.list == nil {
		return
	}
	if m.list.MoveCursorDown(m.gridColumns()) {
		events.UI.Cursor(m.list.Category, m.list.Cursor)
	}
	m.syncViewport()
}

func (m *Model) moveCursorLeft() {
	if m.list == nil {
		return
	}
	if m.list.MoveCursorLeft() {
		events.UI.Cursor(m.list.Category, m.list.Cursor)
	}
	m.syncViewport()
}

func (m *Model) moveCursorRight() {
	if m.list == nil {
		return
	}
	if m.list.MoveCursorRight() {
		events.UI.Cursor(m.list.Category, m.list.Cursor)
	}
	m.syncViewport()
}

func (m *Model) moveCursorHome() {
	if m.list == nil {
		return
	}
	if m.list.MoveCursorHome() {
		events.UI.Cursor(m.list.Category, m.list.Cursor)
	}
	m.syncViewport()
}

func (m *Model) moveCursorEnd() {
	if m.list == nil {
		return
	}
	if m.list.MoveCursorEnd() {
		events.UI.Cursor(m.list.Category, m.list.Cursor)
	}
	m.syncViewport()
}
