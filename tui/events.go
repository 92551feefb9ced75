// ABOUTME: Collects table events emitted synchronously during engine operations.
// ABOUTME: A shared pointer survives Bubble Tea's by-value model copies.
package tui

import "github.com/2389-research/cardtable/engine"

// EventBuffer accumulates table events between TUI updates. The table's event
// hook appends into it; the app model drains it after each engine call.
type EventBuffer struct {
	events []engine.TableEvent
}

// NewEventBuffer creates an empty buffer.
func NewEventBuffer() *EventBuffer {
	return &EventBuffer{}
}

// Handle appends one event. Wire it as the table's EventHandler.
func (b *EventBuffer) Handle(e engine.TableEvent) {
	b.events = append(b.events, e)
}

// Drain returns all buffered events and empties the buffer.
func (b *EventBuffer) Drain() []engine.TableEvent {
	evs := b.events
	b.events = nil
	return evs
}

// Len returns the number of buffered events.
func (b *EventBuffer) Len() int {
	return len(b.events)
}
