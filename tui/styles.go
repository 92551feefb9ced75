// ABOUTME: Defines lipgloss style constants for the TUI panels, card states, and log formatting.
// ABOUTME: Provides small helpers for cursor and held-card highlighting.
package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Panel borders
	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62"))

	// Title styling
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170"))

	// Container headers
	ContainerTitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Bold(true)
	ContainerCursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)

	// Card states
	CardStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	CardCursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("235")).Background(lipgloss.Color("214"))
	CardHeldStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	EmptyStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)

	// Log event colors
	LogTimestampStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	LogEventStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	LogErrorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	LogSuccessStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))

	// Status bar
	StatusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Padding(0, 1)

	// Detail panel labels
	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(11)
	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))
)

// cardLineStyle picks the style for one card line given cursor and held state.
func cardLineStyle(underCursor, held bool) lipgloss.Style {
	switch {
	case underCursor:
		return CardCursorStyle
	case held:
		return CardHeldStyle
	default:
		return CardStyle
	}
}
