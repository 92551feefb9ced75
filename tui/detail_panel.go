// ABOUTME: Bubble Tea sub-model for the card detail pane with glamour-rendered rules.
// ABOUTME: Shows the card under the cursor with name, owner, state, and rules markdown.
package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/2389-research/cardtable/engine"
)

// CardDetail holds display metadata for the card under the cursor.
type CardDetail struct {
	Name      string
	Container string
	Held      bool
	Rules     string
}

// DetailPanelModel displays the active card with its rules rendered from
// markdown. Rendering happens once per cursor change, not per frame.
type DetailPanelModel struct {
	active   *CardDetail
	rendered string
	width    int
	height   int
}

// NewDetailPanelModel creates a DetailPanelModel with no active card.
func NewDetailPanelModel() DetailPanelModel {
	return DetailPanelModel{}
}

// SetActiveCard updates the panel with a card's details and renders its rules.
func (m *DetailPanelModel) SetActiveCard(detail CardDetail) {
	m.active = &detail
	m.rendered = m.renderRules(detail.Rules)
}

// SetActiveFromCard fills the panel from a live card, or clears it for nil.
func (m *DetailPanelModel) SetActiveFromCard(card *engine.Card, containerName string) {
	if card == nil {
		m.Clear()
		return
	}
	m.SetActiveCard(CardDetail{
		Name:      card.Name,
		Container: containerName,
		Held:      card.Held(),
		Rules:     card.Rules,
	})
}

// Clear removes the active card.
func (m *DetailPanelModel) Clear() {
	m.active = nil
	m.rendered = ""
}

// SetSize sets the available dimensions and re-renders for the new width.
func (m *DetailPanelModel) SetSize(w, h int) {
	resized := w != m.width
	m.width = w
	m.height = h
	if resized && m.active != nil {
		m.rendered = m.renderRules(m.active.Rules)
	}
}

// renderRules converts rules markdown to styled terminal output. Falls back
// to the raw text when rendering fails.
func (m DetailPanelModel) renderRules(rules string) string {
	if strings.TrimSpace(rules) == "" {
		return ""
	}
	wrap := m.width - 4
	if wrap < 20 {
		wrap = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return rules
	}
	out, err := r.Render(rules)
	if err != nil {
		return rules
	}
	return strings.TrimRight(out, "\n")
}

// View renders the detail panel as a string.
func (m DetailPanelModel) View() string {
	title := TitleStyle.Render("CARD DETAIL")

	var content string
	if m.active == nil {
		content = title + "\n\n" + ValueStyle.Render("No card selected")
	} else {
		d := m.active

		state := "idle"
		if d.Held {
			state = "held"
		}

		var lines []string
		lines = append(lines, title)
		lines = append(lines, row("Name:", d.Name))
		lines = append(lines, row("Container:", d.Container))
		lines = append(lines, row("State:", state))
		if m.rendered != "" {
			lines = append(lines, "")
			lines = append(lines, m.rendered)
		}
		content = strings.Join(lines, "\n")
	}

	style := BorderStyle
	if m.width > 0 {
		style = style.Width(m.width)
	}
	if m.height > 0 {
		style = style.Height(m.height)
	}
	return style.Render(content)
}

// row renders a label-value pair using the standard label and value styles.
func row(label, value string) string {
	return LabelStyle.Render(label) + ValueStyle.Render(value)
}
