// ABOUTME: HistoryEntry snapshots where each card sat before a move, for undo.
// ABOUTME: Entries are built before the move mutates anything and never change afterwards.
package engine

import "github.com/oklog/ulid/v2"

// Origin records one card's pre-move position. A nil Container means the card
// was unowned when the move happened; there is nowhere to restore it to.
type Origin struct {
	Container *Container
	Index     int
}

// HistoryEntry is one undoable move: the destination, the moved cards in input
// order, and a parallel slice of their origins. An entry is consumed by
// exactly one undo.
type HistoryEntry struct {
	ID      ulid.ULID
	To      *Container
	Cards   []*Card
	Origins []Origin
}

// newHistoryEntry captures the current position of every card. Must run before
// the move detaches anything.
func newHistoryEntry(to *Container, cards []*Card) *HistoryEntry {
	e := &HistoryEntry{
		ID:      NewULID(),
		To:      to,
		Cards:   make([]*Card, len(cards)),
		Origins: make([]Origin, len(cards)),
	}
	copy(e.Cards, cards)
	for i, card := range cards {
		if prev := card.container; prev != nil {
			e.Origins[i] = Origin{Container: prev, Index: prev.indexOf(card)}
		} else {
			e.Origins[i] = Origin{Index: -1}
		}
	}
	return e
}
