// ABOUTME: Point-in-time value copies of table state for observers.
// ABOUTME: The owner goroutine captures a snapshot; readers never touch live state.
package engine

import "time"

// TableSnapshot is a detached copy of a table's observable state. Safe to
// marshal or hand to another goroutine; mutating it affects nothing.
type TableSnapshot struct {
	TableID      string              `json:"table_id"`
	CapturedAt   time.Time           `json:"captured_at"`
	HistoryDepth int                 `json:"history_depth"`
	Containers   []ContainerSnapshot `json:"containers"`
}

// ContainerSnapshot is one container's state inside a TableSnapshot.
type ContainerSnapshot struct {
	ID          int            `json:"id"`
	Count       int            `json:"count"`
	DropEnabled bool           `json:"drop_enabled"`
	Layer       int            `json:"layer"`
	Cards       []CardSnapshot `json:"cards"`
}

// CardSnapshot is one card's state inside a ContainerSnapshot. Rules text is
// deliberately not included; it is served per card on demand.
type CardSnapshot struct {
	ID     string   `json:"card_id"`
	DefID  string   `json:"def_id,omitempty"`
	Name   string   `json:"name"`
	Held   bool     `json:"held"`
	Target Position `json:"target"`
}

// Snapshot captures the table's current state. Must run on the goroutine that
// owns the table.
func (t *Table) Snapshot() TableSnapshot {
	snap := TableSnapshot{
		TableID:      t.id.String(),
		CapturedAt:   time.Now().UTC(),
		HistoryDepth: len(t.history),
	}
	for _, c := range t.Containers() {
		cs := ContainerSnapshot{
			ID:          c.id,
			Count:       len(c.cards),
			DropEnabled: c.dropEnabled,
			Layer:       c.SensorLayer(),
			Cards:       make([]CardSnapshot, 0, len(c.cards)),
		}
		for _, card := range c.cards {
			cs.Cards = append(cs.Cards, CardSnapshot{
				ID:     card.ID.String(),
				DefID:  card.DefID,
				Name:   card.Name,
				Held:   card.Held(),
				Target: card.Target,
			})
		}
		snap.Containers = append(snap.Containers, cs)
	}
	return snap
}
