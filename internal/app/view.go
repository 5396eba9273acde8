package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// updateSizes recalculates and applies dimensions to all UI components
func (m *Model) updateSizes() {
	m.vc.UpdateTerminalSize(m.width, m.height)
	m.helpBar.SetWidth(m.vc.TerminalWidth)
}

// View renders the app
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	// Normal mode reacts to key releases as well as presses.
	v.KeyboardEnhancements.ReportEventTypes = true

	if !m.vc.Ready() {
		v.SetContent("Loading...")
		return v
	}

	content, x, y, caret := m.render()
	v.SetContent(content)
	if caret {
		v.Cursor = tea.NewCursor(x, y)
	}
	return v
}

// render draws one frame from a fresh snapshot: the help line, then the
// panels. caret is false when the terminal cursor should stay hidden.
func (m *Model) render() (content string, x, y int, caret bool) {
	snap := m.editor.Snapshot()
	m.panels.Follow(m.vc, snap)

	help := m.helpBar.View(snap.Mode, snap.Focus, snap.Focused().Text)
	panels := m.panels.View(m.vc, snap)
	content = lipgloss.JoinVertical(lipgloss.Left, help, panels)

	x, y, caret = m.panels.Caret(m.vc, snap)
	return content, x, y, caret
}
