package ui

import tea "github.com/charmbracelet/bubbletea"

// Harness drives the picker model programmatically for integration tests.
type Harness struct {
	model *Model
}

// NewHarness creates a harness for the provided model.
func NewHarness(model *Model) *Harness {
	return &Harness{model: model}
}

// Send routes a message through the model and executes any returned commands.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil {
		return
	}
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	h.processCmd(cmd)
}

// SendKey sends a special key such as tab, enter or escape.
func (h *Harness) SendKey(t tea.KeyType) {
	h.Send(tea.KeyMsg{Type: t})
}

// Type sends the text as a rune key message, as if the user typed it into
// the filter.
func (h *Harness) Type(s string) {
	h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

// Press sends a left button press at the given cell.
func (h *Harness) Press(x, y int) {
	h.Send(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
}

// Drag sends a motion event, continuing any active resize gesture.
func (h *Harness) Drag(x, y int) {
	h.Send(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion})
}

// Release sends a left button release at the given cell.
func (h *Harness) Release(x, y int) {
	h.Send(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
}

func (h *Harness) processCmd(cmd tea.Cmd) {
	for cmd != nil {
		msg := cmd()
		if msg == nil {
			return
		}
		mdl, next := h.model.Update(msg)
		if updated, ok := mdl.(*Model); ok {
			h.model = updated
		}
		cmd = next
	}
}

// View returns the current view string.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}
