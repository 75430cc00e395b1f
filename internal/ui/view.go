package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/kaomoji-popup/internal/geometry"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	panelTopLeft     = "╭"
	panelTopRight    = "╮"
	panelBottomLeft  = "╰"
	panelBottomRight = "╯"
	panelHorizontal  = "─"
	panelVertical    = "│"

	cellPadding    = 2
	categoryBarGap = " "
	nonGridRows    = 4 // top border, category bar, prompt row, bottom border
	minGridColumns = 1
	minCellWidth   = 4
)

// span records where a category label landed on the category bar so mouse
// presses can be mapped back to the key. Coordinates are absolute columns.
type span struct {
	key    string
	startX int
	endX   int
}

// layout captures the grid arithmetic of the last render. Mouse hit-testing
// reads it instead of re-deriving cell positions.
type layout struct {
	panel       geometry.Rect
	categories  []span
	categoryRow int
	gridTop     int
	gridRows    int
	columns     int
	cellWidth   int
	firstIndex  int
}

// View implements tea.Model. Rendering also refreshes the cached layout used
// for mouse hit-testing.
func (m *Model) View() string {
	m.syncViewport()
	innerW := m.panel.Width - 2
	if innerW < 1 {
		innerW = 1
	}
	m.layout = layout{
		panel:       m.panel,
		categoryRow: m.panel.Y + 1,
		gridTop:     m.panel.Y + 2,
		gridRows:    m.gridRows(),
		columns:     m.gridColumns(),
		cellWidth:   m.cellWidth(),
	}
	if m.list != nil {
		m.layout.firstIndex = m.list.ViewportOffset * m.layout.columns
	}

	rows := make([]string, 0, m.panel.Height+2)
	rows = append(rows, m.renderTopBorder(innerW))
	rows = append(rows, m.renderCategoryBar(innerW))
	rows = append(rows, m.renderGrid(innerW)...)
	rows = append(rows, m.renderPromptRow(innerW))
	rows = append(rows, m.renderBottomBorder(innerW))
	if m.showFooter {
		rows = append(rows, m.renderFooter())
	}

	var b strings.Builder
	b.WriteString(strings.Repeat("\n", m.panel.Y))
	indent := strings.Repeat(" ", m.panel.X)
	for i, row := range rows {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(indent)
		b.WriteString(row)
	}
	return b.String()
}

// gridRows returns the number of item rows inside the panel.
func (m *Model) gridRows() int {
	rows := m.panel.Height - nonGridRows
	if rows < 1 {
		rows = 1
	}
	return rows
}

// cellWidth is the widest visible label plus padding, so every column lines
// up regardless of how wide individual kaomoji render.
func (m *Model) cellWidth() int {
	widest := 0
	if m.list != nil {
		for _, item := range m.list.Items {
			if w := lipgloss.Width(item.Label); w > widest {
				widest = w
			}
		}
	}
	w := widest + cellPadding
	if w < minCellWidth {
		w = minCellWidth
	}
	return w
}

func (m *Model) gridColumns() int {
	innerW := m.panel.Width - 2
	columns := innerW / m.cellWidth()
	if columns < minGridColumns {
		columns = minGridColumns
	}
	return columns
}

func (m *Model) syncViewport() {
	if m.list == nil {
		return
	}
	m.list.EnsureCursorVisible(m.gridColumns(), m.gridRows())
}

func (m *Model) renderTopBorder(innerW int) string {
	title := " " + m.bundle.T("window_title", "Kaomoji") + " "
	hintSeg := ""
	if glyph := m.hint.Glyph(); glyph != "" {
		hintSeg = glyph
	}
	dashes := innerW - lipgloss.Width(title) - lipgloss.Width(hintSeg) - 2
	if dashes < 0 {
		title = " "
		dashes = innerW - 1 - lipgloss.Width(hintSeg) - 2
		if dashes < 0 {
			dashes = 0
		}
	}
	var b strings.Builder
	b.WriteString(render(styles.Border, panelTopLeft+panelHorizontal))
	b.WriteString(render(styles.Title, title))
	b.WriteString(render(styles.Border, strings.Repeat(panelHorizontal, dashes)))
	if hintSeg != "" {
		b.WriteString(render(styles.ResizeHint, hintSeg))
	}
	b.WriteString(render(styles.Border, panelHorizontal+panelTopRight))
	return b.String()
}

func (m *Model) renderBottomBorder(innerW int) string {
	return render(styles.Border, panelBottomLeft+strings.Repeat(panelHorizontal, innerW)+panelBottomRight)
}

// renderCategoryBar draws the selectable category labels and records their
// spans for hit-testing. Labels that do not fit are dropped from the end.
func (m *Model) renderCategoryBar(innerW int) string {
	var b strings.Builder
	used := 0
	active := m.nav.Current()
	for _, key := range m.nav.Categories() {
		label := m.categoryTitle(key)
		width := lipgloss.Width(label)
		if used > 0 {
			width++ // leading gap
		}
		if used+width > innerW {
			break
		}
		if used > 0 {
			b.WriteString(categoryBarGap)
			used++
		}
		startX := m.panel.X + 1 + used
		if key == active {
			b.WriteString(render(styles.ActiveCategory, label))
		} else {
			b.WriteString(render(styles.Category, label))
		}
		used += lipgloss.Width(label)
		m.layout.categories = append(m.layout.categories, span{
			key:    key,
			startX: startX,
			endX:   startX + lipgloss.Width(label) - 1,
		})
	}
	if pad := innerW - used; pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	return render(styles.Border, panelVertical) + b.String() + render(styles.Border, panelVertical)
}

// renderGrid lays the filtered items out row-major inside the panel body.
func (m *Model) renderGrid(innerW int) []string {
	rows := make([]string, 0, m.layout.gridRows)
	columns := m.layout.columns
	cellW := m.layout.cellWidth
	if m.list == nil || len(m.list.Items) == 0 {
		msg := m.bundle.T("no_entries", "(no entries)")
		if m.list != nil && strings.TrimSpace(m.list.Filter) != "" {
			msg = fmt.Sprintf("No matches for %q", m.list.Filter)
		}
		rows = append(rows, m.bodyRow(render(styles.Info, padText(msg, innerW)), innerW, true))
		for len(rows) < m.layout.gridRows {
			rows = append(rows, m.bodyRow(strings.Repeat(" ", innerW), innerW, true))
		}
		return rows
	}
	for r := 0; r < m.layout.gridRows; r++ {
		gridRow := m.list.ViewportOffset + r
		var b strings.Builder
		used := 0
		for c := 0; c < columns; c++ {
			idx := gridRow*columns + c
			if idx >= len(m.list.Items) {
				break
			}
			cell := padText(m.list.Items[idx].Label, cellW)
			if idx == m.list.Cursor {
				b.WriteString(render(styles.SelectedItem, cell))
			} else {
				b.WriteString(render(styles.Item, cell))
			}
			used += cellW
		}
		if pad := innerW - used; pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
		rows = append(rows, m.bodyRow(b.String(), innerW, true))
	}
	return rows
}

// renderPromptRow shows the error message when one is pending, a transient
// info message otherwise, and the filter prompt in the normal case.
func (m *Model) renderPromptRow(innerW int) string {
	if m.errMsg != "" {
		return m.bodyRow(render(styles.Error, padText("Error: "+m.errMsg, innerW)), innerW, true)
	}
	if info := m.currentInfo(); info != "" {
		return m.bodyRow(render(styles.Info, padText(info, innerW)), innerW, true)
	}
	prompt := m.filterPrompt()
	if pad := innerW - lipgloss.Width(prompt); pad > 0 {
		prompt += strings.Repeat(" ", pad)
	} else if pad < 0 {
		prompt = truncate.StringWithTail(prompt, uint(innerW-1), "…")
		if fill := innerW - lipgloss.Width(prompt); fill > 0 {
			prompt += strings.Repeat(" ", fill)
		}
	}
	return m.bodyRow(prompt, innerW, false)
}

func (m *Model) renderFooter() string {
	text := "←↑↓→ move  tab category  enter copy  esc close"
	if m.tracker.Len() > 0 {
		text += "  " + m.bundle.T("clear_recents_hint", "ctrl+r clears recents")
	}
	return render(styles.Footer, truncateText(text, m.panel.Width))
}

func (m *Model) bodyRow(content string, innerW int, padded bool) string {
	if !padded {
		if pad := innerW - lipgloss.Width(content); pad > 0 {
			content += strings.Repeat(" ", pad)
		}
	}
	return render(styles.Border, panelVertical) + content + render(styles.Border, panelVertical)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.clampPanel()
	m.syncViewport()
	return nil
}

// clampPanel keeps the panel inside the terminal. A panel that was never
// moved by the user is centred instead.
func (m *Model) clampPanel() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	if m.panel.Width > m.width {
		m.panel.Width = m.width
	}
	if m.panel.Height > m.height {
		m.panel.Height = m.height
	}
	if !m.panelMoved {
		m.panel.X = (m.width - m.panel.Width) / 2
		m.panel.Y = (m.height - m.panel.Height) / 2
	}
	if m.panel.X+m.panel.Width > m.width {
		m.panel.X = m.width - m.panel.Width
	}
	if m.panel.Y+m.panel.Height > m.height {
		m.panel.Y = m.height - m.panel.Height
	}
	if m.panel.X < 0 {
		m.panel.X = 0
	}
	if m.panel.Y < 0 {
		m.panel.Y = 0
	}
}

func render(style *lipgloss.Style, text string) string {
	if style == nil || text == "" {
		return text
	}
	return style.Render(text)
}

// padText pads or truncates text to exactly width visible columns.
func padText(text string, width int) string {
	if width <= 0 {
		return ""
	}
	w := lipgloss.Width(text)
	if w > width {
		text = truncate.StringWithTail(text, uint(width-1), "…")
		w = lipgloss.Width(text)
	}
	if w < width {
		text += strings.Repeat(" ", width-w)
	}
	return text
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	if lipgloss.Width(text) <= width {
		return text
	}
	return truncate.StringWithTail(text, uint(width-1), "…")
}
