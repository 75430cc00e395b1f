package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func sizedTestModel(t *testing.T, copier Copier) (*Model, *fakePanels, *Harness) {
	t.Helper()
	m, panels := newTestModel(t, copier, false)
	h := NewHarness(m)
	h.Send(tea.WindowSizeMsg{Width: 80, Height: 24})
	h.View()
	return m, panels, h
}

func TestResizeGestureGrowsPanelAndPersists(t *testing.T) {
	m, panels, h := sizedTestModel(t, &fakeCopier{})
	startW, startH := m.panel.Width, m.panel.Height
	cornerX := m.panel.X + m.panel.Width - 1
	cornerY := m.panel.Y + m.panel.Height - 1

	h.Press(cornerX, cornerY)
	if !m.geom.Resizing() {
		t.Fatal("expected corner press to start a resize gesture")
	}
	h.Drag(cornerX+5, cornerY+3)
	if m.panel.Width != startW+5 || m.panel.Height != startH+3 {
		t.Fatalf("expected panel %dx%d, got %dx%d", startW+5, startH+3, m.panel.Width, m.panel.Height)
	}
	h.Release(cornerX+5, cornerY+3)
	if m.geom.Resizing() {
		t.Fatal("expected gesture to end on release")
	}
	if len(panels.saved) != 1 {
		t.Fatalf("expected one persisted rectangle, got %d", len(panels.saved))
	}
	if panels.saved[0].Width != startW+5 || panels.saved[0].Height != startH+3 {
		t.Fatalf("unexpected persisted rectangle %#v", panels.saved[0])
	}
}

func TestResizeClampsToMinimumSize(t *testing.T) {
	m, _, h := sizedTestModel(t, &fakeCopier{})
	cornerX := m.panel.X + m.panel.Width - 1
	cornerY := m.panel.Y + m.panel.Height - 1

	h.Press(cornerX, cornerY)
	h.Drag(cornerX-200, cornerY-200)
	if m.panel.Width != m.behavior.MinPanelWidth || m.panel.Height != m.behavior.MinPanelHeight {
		t.Fatalf("expected panel clamped to %dx%d, got %dx%d",
			m.behavior.MinPanelWidth, m.behavior.MinPanelHeight, m.panel.Width, m.panel.Height)
	}
	if m.panel.X != m.layout.panel.X || m.panel.Y != m.layout.panel.Y {
		t.Fatal("expected panel origin pinned during resize")
	}
	h.Release(cornerX-200, cornerY-200)
}

func TestCategoryBarPressSelectsCategory(t *testing.T) {
	m, _, h := sizedTestModel(t, &fakeCopier{})
	var joy span
	for _, sp := range m.layout.categories {
		if sp.key == "Joy" {
			joy = sp
		}
	}
	if joy.key == "" {
		t.Fatalf("expected Joy span in layout, got %#v", m.layout.categories)
	}
	h.Press(joy.startX, m.layout.categoryRow)
	if got := m.nav.Current(); got != "Joy" {
		t.Fatalf("expected Joy selected, got %q", got)
	}
	if len(m.list.Items) != 3 {
		t.Fatalf("expected Joy grid, got %#v", m.list.Items)
	}
}

func TestGridPressCopiesItem(t *testing.T) {
	copier := &fakeCopier{}
	m, _, h := sizedTestModel(t, copier)
	h.SendKey(tea.KeyTab)
	h.View()
	cellX := m.panel.X + 1 + m.layout.cellWidth/2
	h.Press(cellX, m.layout.gridTop)
	if len(copier.calls) != 1 {
		t.Fatalf("expected one copy from grid press, got %d", len(copier.calls))
	}
	if copier.calls[0] != m.list.Items[0].Key {
		t.Fatalf("expected first item copied, got %q", copier.calls[0])
	}
}

func TestWheelMovesCursorByRow(t *testing.T) {
	m, _, h := sizedTestModel(t, &fakeCopier{})
	h.SendKey(tea.KeyTab)
	h.View()
	before := m.list.Cursor
	h.Send(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	if m.list.Cursor == before {
		t.Fatal("expected wheel to move the cursor")
	}
	h.Send(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	if m.list.Cursor != before {
		t.Fatalf("expected wheel up to return to %d, got %d", before, m.list.Cursor)
	}
}

func TestPressOutsidePanelIsIgnored(t *testing.T) {
	m, _, h := sizedTestModel(t, &fakeCopier{})
	h.Press(0, 0)
	if m.geom.Resizing() {
		t.Fatal("expected no gesture from a press outside the panel")
	}
	if got := m.nav.Current(); got == "" {
		t.Fatal("expected selection unchanged")
	}
}
