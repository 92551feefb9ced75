// ABOUTME: Table orchestrates containers: registry, shared history stack, drop resolution.
// ABOUTME: All operations run on the owner's goroutine; the table does no locking.
package engine

import (
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// TableConfig holds configuration for a table.
type TableConfig struct {
	EventHandler func(TableEvent) // optional event callback
}

// Table is the movement orchestrator. Containers register here; moves push
// onto its history stack; releases resolve their drop target through it.
type Table struct {
	id         uuid.UUID
	containers map[int]*Container
	order      []int // registration order, the iteration order everywhere
	history    []*HistoryEntry
	events     func(TableEvent)
}

// NewTable creates an empty table with a fresh session ID.
func NewTable(cfg TableConfig) *Table {
	return &Table{
		id:         uuid.New(),
		containers: make(map[int]*Container),
		events:     cfg.EventHandler,
	}
}

// ID returns the table's session ID.
func (t *Table) ID() uuid.UUID { return t.id }

// RegisterContainer attaches a container to this table. A container already
// registered elsewhere is deregistered there first; re-registering here is a
// no-op.
func (t *Table) RegisterContainer(c *Container) {
	if c == nil || c.table == t {
		return
	}
	if c.table != nil {
		c.table.DeregisterContainer(c)
	}
	t.containers[c.id] = c
	t.order = append(t.order, c.id)
	c.table = t
	t.emit(TableEvent{Type: EventContainerRegistered, ContainerID: c.id})
}

// DeregisterContainer detaches a container. Its cards stay where they are; it
// just stops participating in drops, history, and events.
func (t *Table) DeregisterContainer(c *Container) {
	if c == nil || c.table != t {
		return
	}
	t.emit(TableEvent{Type: EventContainerDeregistered, ContainerID: c.id})
	delete(t.containers, c.id)
	for i, id := range t.order {
		if id == c.id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	c.table = nil
}

// Container looks up a registered container by ID.
func (t *Table) Container(id int) (*Container, bool) {
	c, ok := t.containers[id]
	return c, ok
}

// Containers returns the registered containers in registration order.
func (t *Table) Containers() []*Container {
	out := make([]*Container, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.containers[id])
	}
	return out
}

// FindCard locates a card by ID across all registered containers.
func (t *Table) FindCard(id ulid.ULID) (*Card, bool) {
	for _, c := range t.Containers() {
		for _, card := range c.cards {
			if card.ID == id {
				return card, true
			}
		}
	}
	return nil, false
}

// PushHistory records the pre-move positions of cards about to move into the
// destination. Called by the move machinery before it mutates anything.
func (t *Table) PushHistory(to *Container, cards []*Card) {
	entry := newHistoryEntry(to, cards)
	t.history = append(t.history, entry)
	t.emit(TableEvent{
		Type:        EventHistoryPushed,
		ContainerID: to.id,
		Data:        map[string]any{"entry_id": entry.ID.String(), "count": len(entry.Cards)},
	})
}

// CanUndo reports whether the history stack has entries.
func (t *Table) CanUndo() bool { return len(t.history) > 0 }

// HistoryDepth returns the number of undoable moves.
func (t *Table) HistoryDepth() int { return len(t.history) }

// Undo pops the most recent history entry and restores its cards to their
// recorded containers and positions. Records whose origin container is nil are
// skipped; those cards were unowned before the move and stay put. Returns
// ErrNothingToUndo on an empty stack.
func (t *Table) Undo() error {
	n := len(t.history)
	if n == 0 {
		return ErrNothingToUndo
	}
	entry := t.history[n-1]
	t.history = t.history[:n-1]

	type restoreGroup struct {
		container *Container
		cards     []*Card
		indices   []int
	}
	var groups []*restoreGroup
	byContainer := make(map[*Container]*restoreGroup)
	skipped := 0
	for i, card := range entry.Cards {
		origin := entry.Origins[i]
		if origin.Container == nil {
			skipped++
			continue
		}
		g := byContainer[origin.Container]
		if g == nil {
			g = &restoreGroup{container: origin.Container}
			byContainer[origin.Container] = g
			groups = append(groups, g)
		}
		g.cards = append(g.cards, card)
		g.indices = append(g.indices, origin.Index)
	}
	for _, g := range groups {
		g.container.Undo(g.cards, g.indices)
	}
	t.emit(TableEvent{
		Type:        EventHistoryUndone,
		ContainerID: entry.To.id,
		Data:        map[string]any{"entry_id": entry.ID.String(), "skipped": skipped},
	})
	return nil
}

// NotifyDrop resolves where released cards land. Every registered container is
// asked; among those that accept, the highest sensor layer wins, with the
// higher container ID breaking ties (later-created zones sit on top). The
// winner takes the cards at the end of its sequence, with history. With no
// winner the cards stay put and their containers' layouts snap them back.
// Returns the winning container, or nil.
func (t *Table) NotifyDrop(cards []*Card) *Container {
	if len(cards) == 0 {
		return nil
	}
	var winner *Container
	for _, c := range t.Containers() {
		if !c.CanDrop(cards) {
			continue
		}
		if winner == nil || better(c, winner) {
			winner = c
		}
	}
	if winner == nil {
		t.emit(TableEvent{
			Type: EventDropRejected,
			Data: map[string]any{"card_ids": cardIDs(cards)},
		})
		for _, card := range cards {
			if owner := card.container; owner != nil {
				owner.RefreshLayout()
			}
		}
		return nil
	}
	winner.MoveCards(cards, IndexEnd, true)
	return winner
}

// better reports whether candidate should win drop resolution over current.
func better(candidate, current *Container) bool {
	cl, wl := candidate.SensorLayer(), current.SensorLayer()
	if cl != wl {
		return cl > wl
	}
	return candidate.id > current.id
}

func (t *Table) emit(e TableEvent) {
	if t.events == nil {
		return
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now().UTC()
	}
	t.events(e)
}
