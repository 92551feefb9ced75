// ABOUTME: Table lifecycle events emitted through an optional callback hook.
// ABOUTME: Observers (logging, TUI, inspector) subscribe here; the engine never logs directly.
package engine

import "time"

// TableEventType identifies the kind of table lifecycle event.
type TableEventType string

const (
	EventContainerRegistered   TableEventType = "container.registered"
	EventContainerDeregistered TableEventType = "container.deregistered"
	EventContainerShuffled     TableEventType = "container.shuffled"
	EventCardHeld              TableEventType = "card.held"
	EventCardReleased          TableEventType = "card.released"
	EventCardMoved             TableEventType = "card.moved"
	EventDropRejected          TableEventType = "drop.rejected"
	EventHistoryPushed         TableEventType = "history.pushed"
	EventHistoryUndone         TableEventType = "history.undone"

	// Recovery events for malformed history entries. The restore still
	// completes by appending cards at the end of the container.
	EventUndoContractViolation TableEventType = "undo.contract_violation"
	EventUndoCorruptedIndex    TableEventType = "undo.corrupted_index"
)

// TableEvent represents a lifecycle event emitted by a table during play.
type TableEvent struct {
	Type        TableEventType
	ContainerID int
	Data        map[string]any
	Timestamp   time.Time
}
