package ui

import (
	"github.com/atomicstack/kaomoji-popup/internal/geometry"
	"github.com/atomicstack/kaomoji-popup/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	point := geometry.Point{X: ev.X, Y: ev.Y}
	switch {
	case ev.Button == tea.MouseButtonWheelUp:
		m.moveCursorUp()
		return nil
	case ev.Button == tea.MouseButtonWheelDown:
		m.moveCursorDown()
		return nil
	case ev.Action == tea.MouseActionPress && ev.Button == tea.MouseButtonLeft:
		return m.handleMousePress(point)
	case ev.Action == tea.MouseActionMotion:
		m.handleMouseMotion(point)
		return nil
	case ev.Action == tea.MouseActionRelease:
		m.handleMouseRelease(point)
		return nil
	}
	return nil
}

// handleMousePress routes a primary-button press. The category bar is
// checked before edge classification: the bar sits inside the top edge
// threshold zone, so the other order would make it unclickable.
func (m *Model) handleMousePress(point geometry.Point) tea.Cmd {
	if point.Y == m.layout.categoryRow {
		for _, sp := range m.layout.categories {
			if point.X >= sp.startX && point.X <= sp.endX {
				m.selectCategory(sp.key)
				return nil
			}
		}
	}
	if edge, started := m.geom.Press(point, m.panel); started {
		m.hint = geometry.HintFor(edge)
		events.Geometry.ResizeStart(edge.String(), m.panel.Width, m.panel.Height)
		return nil
	}
	if !m.panel.Contains(point) {
		return nil
	}
	if idx, ok := m.itemAt(point); ok {
		m.list.Cursor = idx
		events.UI.Cursor(m.list.Category, idx)
		m.syncViewport()
		item := m.list.Items[idx]
		return m.activateItem(item.Key)
	}
	return nil
}

func (m *Model) handleMouseMotion(point geometry.Point) {
	if m.geom.Resizing() {
		if rect, changed := m.geom.Move(point); changed {
			m.panel = rect
			m.panelMoved = true
			m.syncViewport()
		}
		return
	}
	m.hint = m.geom.Hint(point, m.panel)
}

func (m *Model) handleMouseRelease(point geometry.Point) {
	if !m.geom.Resizing() {
		return
	}
	if rect, ok := m.geom.Release(point); ok {
		m.panel = rect
		m.panelMoved = true
	}
	m.hint = geometry.HintNone
	m.syncViewport()
	m.persistPanel()
	events.Geometry.ResizeEnd(m.panel.Width, m.panel.Height)
}

// itemAt maps an absolute terminal coordinate to an item index in the grid.
func (m *Model) itemAt(point geometry.Point) (int, bool) {
	if m.list == nil || len(m.list.Items) == 0 {
		return 0, false
	}
	row := point.Y - m.layout.gridTop
	if row < 0 || row >= m.layout.gridRows {
		return 0, false
	}
	localX := point.X - (m.layout.panel.X + 1)
	if localX < 0 || m.layout.cellWidth <= 0 {
		return 0, false
	}
	col := localX / m.layout.cellWidth
	if col >= m.layout.columns {
		return 0, false
	}
	idx := (m.list.ViewportOffset+row)*m.layout.columns + col
	if idx < 0 || idx >= len(m.list.Items) {
		return 0, false
	}
	return idx, true
}
