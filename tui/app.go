// ABOUTME: Top-level Bubble Tea AppModel that orchestrates the table, detail, log, and status panels.
// ABOUTME: Implements tea.Model and maps keys to engine operations: grab, drop, undo, shuffle.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/2389-research/cardtable/engine"
)

// FocusTarget indicates which panel currently has keyboard focus.
type FocusTarget int

const (
	FocusTable FocusTarget = iota
	FocusLog
)

// AppModel is the top-level Bubble Tea model that composes all TUI sub-panels
// and drives the engine from keyboard input. Every engine call runs to
// completion inside Update, so the table needs no locking.
type AppModel struct {
	table *engine.Table
	buf   *EventBuffer

	tablePanel TablePanelModel
	detail     DetailPanelModel
	log        LogPanelModel
	statusBar  StatusBarModel

	focus  FocusTarget
	width  int
	height int

	// OnChange, when set, receives a snapshot after each engine mutation.
	// Snapshots are taken on the Update goroutine while the table is quiet.
	OnChange func(engine.TableSnapshot)
}

// NewAppModel creates an AppModel over a table and its container views. Events
// already sitting in the buffer (from table setup) are drained into the log.
func NewAppModel(table *engine.Table, views []ContainerView, buf *EventBuffer) AppModel {
	m := AppModel{
		table:      table,
		buf:        buf,
		tablePanel: NewTablePanelModel(views),
		detail:     NewDetailPanelModel(),
		log:        NewLogPanelModel(200),
		statusBar:  NewStatusBarModel("table " + shortID(table)),
		focus:      FocusTable,
	}
	m.drainEvents()
	m.refreshDetail()
	m.refreshStatus()
	return m
}

// Init implements tea.Model. The app is purely key-driven, so there are no
// initial commands.
func (m AppModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

// View implements tea.Model. Renders the full TUI layout with all panels.
func (m AppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	// Minimum terminal size guard to prevent layout overflow
	if m.width < 40 || m.height < 10 {
		return fmt.Sprintf("Terminal too small (%dx%d). Minimum: 40x10.", m.width, m.height)
	}

	// Layout calculations
	statusBarHeight := 1
	bottomHeight := (m.height - statusBarHeight) * 45 / 100
	if bottomHeight < 6 {
		bottomHeight = 6
	}

	detailWidth := m.width * 45 / 100
	if detailWidth < 10 {
		detailWidth = 10
	}
	logWidth := m.width - detailWidth
	if logWidth < 10 {
		logWidth = 10
	}

	// Update panel sizes
	m.tablePanel.SetWidth(m.width)
	m.detail.SetSize(detailWidth, bottomHeight)
	m.log.SetSize(logWidth, bottomHeight)
	m.statusBar.SetWidth(m.width)

	bottomView := lipgloss.JoinHorizontal(lipgloss.Top, m.detail.View(), m.log.View())

	var b strings.Builder
	b.WriteString(m.tablePanel.View())
	b.WriteString("\n")
	b.WriteString(bottomView)
	b.WriteString("\n")
	b.WriteString(m.statusBar.View())

	return b.String()
}

// handleKeyMsg processes keyboard input, routing to the focused panel or the
// engine operations.
func (m AppModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "tab":
		m.focus = m.nextFocus()
		m.log.SetFocused(m.focus == FocusLog)
		return m, nil
	}

	if m.focus == FocusLog {
		var cmd tea.Cmd
		m.log, cmd = m.log.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "left", "h":
		m.tablePanel.MoveLeft()
		m.refreshDetail()
	case "right", "l":
		m.tablePanel.MoveRight()
		m.refreshDetail()
	case "up", "k":
		m.tablePanel.MoveUp()
		m.refreshDetail()
	case "down", "j":
		m.tablePanel.MoveDown()
		m.refreshDetail()
	case "g", " ":
		m = m.grabCard()
	case "d", "enter":
		m = m.dropHeld()
	case "u":
		m = m.undo()
	case "s":
		m = m.shuffle()
	}

	return m, nil
}

// grabCard marks the card under the cursor as held in its container.
func (m AppModel) grabCard() AppModel {
	view := m.tablePanel.CurrentView()
	card := m.tablePanel.CurrentCard()
	if view.Container == nil || card == nil {
		return m
	}
	view.Container.HoldCard(card)
	return m.syncAfterAction()
}

// dropHeld points every sensor at the cursor container and releases all held
// cards. The engine resolves which container, if any, takes the drop.
func (m AppModel) dropHeld() AppModel {
	target := m.tablePanel.CurrentView()
	if target.Sensor == nil {
		return m
	}

	px := target.Sensor.X + target.Sensor.W/2
	py := target.Sensor.Y + target.Sensor.H/2
	for _, view := range m.tablePanel.Views() {
		if view.Sensor != nil {
			view.Sensor.SetPointer(px, py)
		}
	}

	for _, view := range m.tablePanel.Views() {
		if len(view.Container.HeldCards()) > 0 {
			view.Container.ReleaseHeld()
		}
	}
	return m.syncAfterAction()
}

// undo reverses the most recent recorded move.
func (m AppModel) undo() AppModel {
	if err := m.table.Undo(); err != nil {
		m.statusBar.SetLastEvent(err.Error())
	}
	return m.syncAfterAction()
}

// shuffle randomizes the container under the cursor.
func (m AppModel) shuffle() AppModel {
	view := m.tablePanel.CurrentView()
	if view.Container == nil {
		return m
	}
	view.Container.Shuffle()
	return m.syncAfterAction()
}

// syncAfterAction drains buffered events and refreshes cursor, detail, and
// status after an engine call, then hands a snapshot to OnChange if one is set.
func (m AppModel) syncAfterAction() AppModel {
	m.drainEvents()
	m.tablePanel.ClampCursor()
	m.refreshDetail()
	m.refreshStatus()
	if m.OnChange != nil {
		m.OnChange(m.table.Snapshot())
	}
	return m
}

// drainEvents appends buffered table events to the log panel.
func (m *AppModel) drainEvents() {
	if m.buf == nil {
		return
	}
	for _, evt := range m.buf.Drain() {
		m.log.Append(evt)
		m.statusBar.SetLastEvent(string(evt.Type))
	}
}

// refreshDetail points the detail panel at the card under the cursor.
func (m *AppModel) refreshDetail() {
	view := m.tablePanel.CurrentView()
	m.detail.SetActiveFromCard(m.tablePanel.CurrentCard(), view.Name)
}

// refreshStatus recomputes the held count and history depth.
func (m *AppModel) refreshStatus() {
	held := 0
	for _, view := range m.tablePanel.Views() {
		held += len(view.Container.HeldCards())
	}
	m.statusBar.SetHeld(held)
	m.statusBar.SetHistory(m.table.HistoryDepth())
}

// nextFocus cycles the focus target between the table and the log.
func (m AppModel) nextFocus() FocusTarget {
	switch m.focus {
	case FocusTable:
		return FocusLog
	case FocusLog:
		return FocusTable
	default:
		return FocusTable
	}
}

// shortID abbreviates the table's session ID for the status bar.
func shortID(table *engine.Table) string {
	s := table.ID().String()
	if len(s) > 8 {
		return s[:8]
	}
	return s
}
