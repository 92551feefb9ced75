// ABOUTME: Restores cards to recorded positions, with recovery paths for bad history.
// ABOUTME: Consecutive blocks rebuild low-to-high; scattered positions rebuild high-to-low.
package engine

import "sort"

type restorePair struct {
	card  *Card
	index int
	pos   int // position in the input list, the tie-breaker
}

// Undo puts cards back at the positions recorded when they left. Indices are
// clamped to the current size, so a shrunken container still takes every card.
// Malformed records never abort the restore: a count mismatch or a negative
// index is reported through the event hook and the cards are appended at the
// end instead. An empty index list appends without a report. Every placement
// runs through the single-card move machinery with history disabled.
func (c *Container) Undo(cards []*Card, fromIndices []int) {
	if len(cards) == 0 {
		return
	}
	if len(fromIndices) > 0 && len(fromIndices) != len(cards) {
		c.reportUndoError(EventUndoContractViolation, &IndexCountMismatchError{
			Cards:   len(cards),
			Indices: len(fromIndices),
		})
		c.appendAll(cards)
		return
	}
	if len(fromIndices) == 0 {
		c.appendAll(cards)
		return
	}

	pairs := make([]restorePair, 0, len(cards))
	for i, card := range cards {
		if card == nil {
			continue
		}
		if fromIndices[i] < 0 {
			c.reportUndoError(EventUndoCorruptedIndex, &NegativeIndexError{
				CardID: card.ID,
				Index:  fromIndices[i],
			})
			c.appendAll(cards)
			return
		}
		pairs = append(pairs, restorePair{card: card, index: fromIndices[i], pos: i})
	}

	if len(pairs) >= 2 && consecutive(pairs) {
		c.restoreConsecutive(pairs)
		return
	}
	c.restoreScattered(pairs)
}

// restoreConsecutive rebuilds an unbroken block from its lowest recorded index
// upward. Inserting low to high keeps each card's final slot equal to its
// recorded one once the whole block is back.
func (c *Container) restoreConsecutive(pairs []restorePair) {
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].index < pairs[j].index })
	lowest := pairs[0].index
	for offset, p := range pairs {
		c.MoveCard(p.card, lowest+offset)
	}
}

// restoreScattered reinserts highest index first so earlier placements don't
// shift the slots of later ones. Equal indices keep the input list's order.
func (c *Container) restoreScattered(pairs []restorePair) {
	sort.SliceStable(pairs, func(i, j int) bool { return pairs[i].index > pairs[j].index })
	for _, p := range pairs {
		c.MoveCard(p.card, p.index)
	}
}

// appendAll is the recovery placement: every card goes to the end, in input
// order, through the normal move machinery.
func (c *Container) appendAll(cards []*Card) {
	for _, card := range cards {
		c.MoveCard(card, IndexEnd)
	}
}

// consecutive reports whether the recorded indices form one unbroken ascending
// run when sorted. Duplicates break the run.
func consecutive(pairs []restorePair) bool {
	indices := make([]int, len(pairs))
	for i, p := range pairs {
		indices[i] = p.index
	}
	sort.Ints(indices)
	for i := 1; i < len(indices); i++ {
		if indices[i] != indices[i-1]+1 {
			return false
		}
	}
	return true
}

func (c *Container) reportUndoError(t TableEventType, err error) {
	c.emit(TableEvent{
		Type:        t,
		ContainerID: c.id,
		Data:        map[string]any{"error": err.Error()},
	})
}
