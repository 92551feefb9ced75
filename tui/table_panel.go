// ABOUTME: Bubble Tea sub-model rendering the table's containers as columns of cards.
// ABOUTME: Tracks a cursor over container and card positions with lipgloss highlighting.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/2389-research/cardtable/engine"
)

// ContainerView pairs a container with its display name and the sensor the
// TUI steers to direct drops at it.
type ContainerView struct {
	Name      string
	Container *engine.Container
	Sensor    *engine.RectSensor
}

// TablePanelModel displays the table's containers side by side and owns the
// cursor over them.
type TablePanelModel struct {
	views []ContainerView
	col   int
	row   int
	width int
}

// NewTablePanelModel creates a table panel over the given container views.
func NewTablePanelModel(views []ContainerView) TablePanelModel {
	return TablePanelModel{views: views}
}

// Views returns the container views in display order.
func (m TablePanelModel) Views() []ContainerView {
	return m.views
}

// Cursor returns the current container column and card row.
func (m TablePanelModel) Cursor() (col, row int) {
	return m.col, m.row
}

// CurrentView returns the view under the cursor, or a zero view if there are
// no containers.
func (m TablePanelModel) CurrentView() ContainerView {
	if len(m.views) == 0 {
		return ContainerView{}
	}
	return m.views[m.col]
}

// CurrentCard returns the card under the cursor, or nil if the container is
// empty.
func (m TablePanelModel) CurrentCard() *engine.Card {
	view := m.CurrentView()
	if view.Container == nil {
		return nil
	}
	cards := view.Container.Cards()
	if len(cards) == 0 {
		return nil
	}
	row := clampRow(m.row, len(cards))
	return cards[row]
}

// MoveLeft moves the cursor one container to the left.
func (m *TablePanelModel) MoveLeft() {
	if m.col > 0 {
		m.col--
		m.row = 0
	}
}

// MoveRight moves the cursor one container to the right.
func (m *TablePanelModel) MoveRight() {
	if m.col < len(m.views)-1 {
		m.col++
		m.row = 0
	}
}

// MoveUp moves the cursor one card up within the current container.
func (m *TablePanelModel) MoveUp() {
	if m.row > 0 {
		m.row--
	}
}

// MoveDown moves the cursor one card down within the current container.
func (m *TablePanelModel) MoveDown() {
	view := m.CurrentView()
	if view.Container == nil {
		return
	}
	if m.row < view.Container.Count()-1 {
		m.row++
	}
}

// ClampCursor pulls the card row back into range after the container shrank.
func (m *TablePanelModel) ClampCursor() {
	view := m.CurrentView()
	if view.Container == nil {
		m.row = 0
		return
	}
	m.row = clampRow(m.row, view.Container.Count())
}

// SetWidth sets the available width for rendering.
func (m *TablePanelModel) SetWidth(w int) {
	m.width = w
}

// View renders all containers as bordered columns joined horizontally.
func (m TablePanelModel) View() string {
	if len(m.views) == 0 {
		content := TitleStyle.Render("=== TABLE (empty) ===")
		return BorderStyle.Render(content)
	}

	columns := make([]string, 0, len(m.views))
	for i, view := range m.views {
		columns = append(columns, m.renderColumn(i, view))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}

// renderColumn renders one container as a bordered column of card lines.
func (m TablePanelModel) renderColumn(col int, view ContainerView) string {
	underCursor := col == m.col

	titleStyle := ContainerTitleStyle
	if underCursor {
		titleStyle = ContainerCursorStyle
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s (%d)", view.Name, view.Container.Count())))
	b.WriteString("\n")

	cards := view.Container.Cards()
	if len(cards) == 0 {
		b.WriteString(EmptyStyle.Render("empty"))
	}
	row := clampRow(m.row, len(cards))
	for i, card := range cards {
		marker := "  "
		if card.Held() {
			marker = "* "
		}
		line := marker + card.Name
		style := cardLineStyle(underCursor && i == row, card.Held())
		b.WriteString(style.Render(line))
		if i < len(cards)-1 {
			b.WriteString("\n")
		}
	}

	colWidth := 0
	if m.width > 0 && len(m.views) > 0 {
		colWidth = m.width/len(m.views) - 2
	}
	style := BorderStyle
	if colWidth > 4 {
		style = style.Width(colWidth)
	}
	return style.Render(b.String())
}

// clampRow bounds a card row to [0, count-1], or 0 for an empty container.
func clampRow(row, count int) int {
	if count == 0 {
		return 0
	}
	if row < 0 {
		return 0
	}
	if row >= count {
		return count - 1
	}
	return row
}
