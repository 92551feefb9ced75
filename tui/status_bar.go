// ABOUTME: Implements a single-line status bar for the bottom of the TUI.
// ABOUTME: Shows held-card count, history depth, last event, and key hints.
package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// StatusBarModel displays table status in a single line.
type StatusBarModel struct {
	tableName string
	held      int
	history   int
	lastEvent string
	width     int
}

// NewStatusBarModel creates a new StatusBarModel with the given table name.
func NewStatusBarModel(tableName string) StatusBarModel {
	return StatusBarModel{tableName: tableName}
}

// SetHeld updates the held-card count.
func (m *StatusBarModel) SetHeld(n int) {
	m.held = n
}

// SetHistory updates the history depth.
func (m *StatusBarModel) SetHistory(n int) {
	m.history = n
}

// SetLastEvent records the most recent event type for display.
func (m *StatusBarModel) SetLastEvent(s string) {
	m.lastEvent = s
}

// SetWidth sets the bar width for rendering.
func (m *StatusBarModel) SetWidth(w int) {
	m.width = w
}

// View renders the status bar as a single styled line.
func (m StatusBarModel) View() string {
	last := m.lastEvent
	if last == "" {
		last = "-"
	}

	content := fmt.Sprintf("%s | held: %d | history: %d | last: %s | g grab  d drop  u undo  s shuffle  q quit",
		m.tableName, m.held, m.history, last)

	style := StatusBarStyle.Width(m.width)

	return lipgloss.PlaceHorizontal(m.width, lipgloss.Left, style.Render(content))
}
