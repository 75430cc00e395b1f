package ui

import (
	"fmt"

	"github.com/atomicstack/kaomoji-popup/internal/clipboard"
	"github.com/atomicstack/kaomoji-popup/internal/logging/events"
	"github.com/atomicstack/kaomoji-popup/internal/navigator"
	tea "github.com/charmbracelet/bubbletea"
)

// copyResultMsg carries the outcome of an asynchronous clipboard attempt.
type copyResultMsg struct {
	item      string
	mechanism clipboard.Mechanism
	err       error
}

// activateItem kicks off the copy pipeline for the given kaomoji.
func (m *Model) activateItem(item string) tea.Cmd {
	if item == "" {
		return nil
	}
	events.UI.ItemActivate(m.list.Category, item)
	m.copying = true
	m.errMsg = ""
	m.forceClearInfo()
	copier := m.copier
	return func() tea.Msg {
		mechanism, err := copier.Copy(item)
		return copyResultMsg{item: item, mechanism: mechanism, err: err}
	}
}

// handleCopyResultMsg finishes the copy pipeline. A successful copy is the
// only path that records a use; a copy that failed on both mechanisms leaves
// the recents ranking untouched.
func (m *Model) handleCopyResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(copyResultMsg)
	if !ok {
		return nil
	}
	m.copying = false
	if result.err != nil {
		m.errMsg = fmt.Sprintf("%s: %v", m.bundle.T("copy_failed", "Copy failed"), result.err)
		return nil
	}
	m.tracker.RecordUse(result.item)
	if m.notifier != nil {
		m.notifier.Send(m.bundle.T("notification_title", "Kaomoji copied"), result.item)
	}
	if m.behavior.AutoCloseOnCopy {
		events.UI.Close("copied")
		m.persistPanel()
		return tea.Quit
	}
	if m.verbose {
		m.setInfo(fmt.Sprintf("Copied %s (%s)", result.item, result.mechanism))
	} else {
		m.setInfo(fmt.Sprintf("Copied %s", result.item))
	}
	if m.list != nil && m.list.Category == navigator.RecentsKey {
		m.refreshList()
	}
	return nil
}
