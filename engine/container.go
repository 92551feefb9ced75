// ABOUTME: Container is an ordered, non-duplicating card collection with drop acceptance.
// ABOUTME: All mutation goes through Add/Remove/MoveCards so the single-owner invariant holds.
package engine

import (
	"math/rand/v2"
	"sync/atomic"
	"time"
)

// IndexEnd targets the position after the last card in a container.
const IndexEnd = -1

var containerIDCounter atomic.Int64

func nextContainerID() int {
	return int(containerIDCounter.Add(1))
}

// ContainerConfig holds construction options for a container. The zero value
// is a plain accept-everything collection with no drop zone and no layout.
type ContainerConfig struct {
	Accept      func(cards []*Card) bool // drop acceptance predicate (nil = accept all)
	HoldFilter  func(card *Card) bool    // which resident cards may be grabbed (nil = all)
	Sensor      PointerSensor            // drop zone geometry (nil = cannot be a drop target)
	DropEnabled bool                     // whether the drop zone participates in drop resolution
	Layout      Layout                   // target position strategy (nil = none)
	OnDetach    func(card *Card)         // called per card during Clear, before removal
	Rand        *rand.Rand               // shuffle source (nil = global source)
}

// Container owns an ordered sequence of cards. Sequence order is the logical
// and visual order; every member's back-reference points here.
type Container struct {
	id          int
	cards       []*Card
	held        []*Card // grab order, always a subset of cards
	accept      func(cards []*Card) bool
	holdFilter  func(card *Card) bool
	sensor      PointerSensor
	dropEnabled bool
	layout      Layout
	onDetach    func(card *Card)
	rng         *rand.Rand
	table       *Table
}

// NewContainer creates a container with a fresh sequential ID.
func NewContainer(cfg ContainerConfig) *Container {
	return &Container{
		id:          nextContainerID(),
		accept:      cfg.Accept,
		holdFilter:  cfg.HoldFilter,
		sensor:      cfg.Sensor,
		dropEnabled: cfg.DropEnabled,
		layout:      cfg.Layout,
		onDetach:    cfg.OnDetach,
		rng:         cfg.Rand,
	}
}

// ID returns the container's process-unique sequential ID.
func (c *Container) ID() int { return c.id }

// Table returns the table this container is registered with, or nil.
func (c *Container) Table() *Table { return c.table }

// Count returns the number of cards in the sequence.
func (c *Container) Count() int { return len(c.cards) }

// Cards returns a copy of the sequence in order.
func (c *Container) Cards() []*Card {
	out := make([]*Card, len(c.cards))
	copy(out, c.cards)
	return out
}

// Contains reports whether the card is in this container's sequence.
func (c *Container) Contains(card *Card) bool { return c.indexOf(card) >= 0 }

// IndexOf returns the card's position in the sequence, or -1 if absent.
func (c *Container) IndexOf(card *Card) int { return c.indexOf(card) }

// HeldCards returns the currently grabbed cards in grab order.
func (c *Container) HeldCards() []*Card {
	out := make([]*Card, len(c.held))
	copy(out, c.held)
	return out
}

// DropEnabled reports whether the drop zone participates in drop resolution.
func (c *Container) DropEnabled() bool { return c.dropEnabled }

// SetDropEnabled toggles drop zone participation without touching the sensor.
func (c *Container) SetDropEnabled(enabled bool) { c.dropEnabled = enabled }

// Sensor returns the container's drop zone sensor, or nil.
func (c *Container) Sensor() PointerSensor { return c.sensor }

// SensorLayer returns the drop zone's stacking layer, or -1 without a sensor.
func (c *Container) SensorLayer() int {
	if c.sensor == nil {
		return -1
	}
	return c.sensor.LayerIndex()
}

// Add appends the card to the end of the sequence. A card resident elsewhere
// is removed from its previous container first. Re-adding a resident card
// leaves the sequence untouched but still refreshes the layout.
func (c *Container) Add(card *Card) {
	c.AddAt(card, len(c.cards))
}

// AddAt inserts the card at the given position. The index is clamped into
// [0, Count()]. Same residency rules as Add.
func (c *Container) AddAt(card *Card, index int) {
	if card == nil {
		return
	}
	if card.container == c {
		c.RefreshLayout()
		return
	}
	if prev := card.container; prev != nil {
		prev.Remove(card)
	}
	c.insertAt(card, index)
	c.RefreshLayout()
}

// Remove takes the card out of the sequence. Returns false when the card is
// not resident here; the layout refreshes only on success.
func (c *Container) Remove(card *Card) bool {
	if !c.removeInternal(card) {
		return false
	}
	c.RefreshLayout()
	return true
}

// Clear empties the container. The detach hook runs for every card before it
// is released; a single layout refresh follows.
func (c *Container) Clear() {
	for _, card := range c.cards {
		if c.onDetach != nil {
			c.onDetach(card)
		}
		card.setState(CardIdle)
		card.setContainer(nil)
	}
	c.cards = nil
	c.held = nil
	c.RefreshLayout()
}

// Shuffle permutes the sequence in place with a Fisher-Yates pass, then
// refreshes the layout so target positions follow the new order.
func (c *Container) Shuffle() {
	for i := len(c.cards) - 1; i >= 1; i-- {
		j := c.intN(i + 1)
		c.cards[i], c.cards[j] = c.cards[j], c.cards[i]
	}
	c.RefreshLayout()
	c.emit(TableEvent{
		Type:        EventContainerShuffled,
		ContainerID: c.id,
		Data:        map[string]any{"count": len(c.cards)},
	})
}

// CanDrop reports whether releasing the given cards over this container would
// land here: the drop zone must be enabled, a sensor present, the pointer
// inside it, and the acceptance predicate satisfied for this exact set.
func (c *Container) CanDrop(cards []*Card) bool {
	if !c.dropEnabled || c.sensor == nil {
		return false
	}
	if !c.sensor.PointerInside() {
		return false
	}
	return c.accepts(cards)
}

// MoveCards moves the cards into this container starting at the given index
// (IndexEnd appends). Cards are placed in input order, each detached from its
// prior container first. When withHistory is set and the set was not already
// fully resident here, a history entry is pushed before anything mutates.
// Returns false, with nothing moved, when the acceptance predicate rejects.
func (c *Container) MoveCards(cards []*Card, index int, withHistory bool) bool {
	moving := compactCards(cards)
	if len(moving) == 0 {
		return true
	}
	if !c.accepts(moving) {
		return false
	}
	if withHistory && c.table != nil && !c.allResident(moving) {
		c.table.PushHistory(c, moving)
	}

	idx := index
	if idx == IndexEnd || idx > len(c.cards) {
		idx = len(c.cards)
	}
	if idx < 0 {
		idx = 0
	}
	for _, card := range moving {
		c.detachForMove(card)
		c.insertAt(card, idx)
		idx++
	}
	c.RefreshLayout()
	c.emit(TableEvent{
		Type:        EventCardMoved,
		ContainerID: c.id,
		Data:        map[string]any{"card_ids": cardIDs(moving), "index": index, "count": len(moving)},
	})
	return true
}

// MoveCard moves a single card without recording history. Restores and other
// internal repositioning go through here.
func (c *Container) MoveCard(card *Card, index int) bool {
	return c.MoveCards([]*Card{card}, index, false)
}

// HoldCard grabs a resident card. Holding a card that lives elsewhere, or one
// the hold filter rejects, is a silent no-op.
func (c *Container) HoldCard(card *Card) {
	if card == nil || card.container != c {
		return
	}
	if c.holdFilter != nil && !c.holdFilter(card) {
		return
	}
	if card.Held() {
		return
	}
	card.setState(CardHeld)
	c.held = append(c.held, card)
	c.emit(TableEvent{
		Type:        EventCardHeld,
		ContainerID: c.id,
		Data:        map[string]any{"card_id": card.ID.String()},
	})
}

// ReleaseHeld returns every held card to idle before any drop checks run, then
// hands the released set to the table for drop resolution. With no table the
// cards simply snap back into this container's layout. No-op when nothing is
// held.
func (c *Container) ReleaseHeld() {
	if len(c.held) == 0 {
		return
	}
	released := c.held
	c.held = nil
	for _, card := range released {
		card.setState(CardIdle)
	}
	c.emit(TableEvent{
		Type:        EventCardReleased,
		ContainerID: c.id,
		Data:        map[string]any{"card_ids": cardIDs(released)},
	})
	if c.table != nil {
		c.table.NotifyDrop(released)
		return
	}
	c.RefreshLayout()
}

// RefreshLayout recomputes card target positions with the configured layout.
func (c *Container) RefreshLayout() {
	if c.layout != nil {
		c.layout.Refresh(c)
	}
}

func (c *Container) accepts(cards []*Card) bool {
	if c.accept == nil {
		return true
	}
	return c.accept(cards)
}

func (c *Container) allResident(cards []*Card) bool {
	for _, card := range cards {
		if card.container != c {
			return false
		}
	}
	return true
}

func (c *Container) indexOf(card *Card) int {
	if card == nil {
		return -1
	}
	for i, have := range c.cards {
		if have == card {
			return i
		}
	}
	return -1
}

// insertAt splices the card into the sequence at the clamped index and sets
// the back-reference. Callers refresh the layout.
func (c *Container) insertAt(card *Card, index int) {
	if index < 0 {
		index = 0
	}
	if index > len(c.cards) {
		index = len(c.cards)
	}
	c.cards = append(c.cards, nil)
	copy(c.cards[index+1:], c.cards[index:])
	c.cards[index] = card
	card.setContainer(c)
}

// removeInternal splices the card out, clears the back-reference, and forgets
// any hold on it. Callers refresh the layout.
func (c *Container) removeInternal(card *Card) bool {
	i := c.indexOf(card)
	if i < 0 {
		return false
	}
	c.cards = append(c.cards[:i], c.cards[i+1:]...)
	card.setContainer(nil)
	c.unhold(card)
	return true
}

// detachForMove pulls the card out of whichever container owns it. Another
// container's layout refreshes immediately; this container's refresh waits for
// the end of the move.
func (c *Container) detachForMove(card *Card) {
	prev := card.container
	if prev == nil {
		return
	}
	prev.removeInternal(card)
	if prev != c {
		prev.RefreshLayout()
	}
}

func (c *Container) unhold(card *Card) {
	for i, have := range c.held {
		if have == card {
			c.held = append(c.held[:i], c.held[i+1:]...)
			card.setState(CardIdle)
			return
		}
	}
}

func (c *Container) intN(n int) int {
	if c.rng != nil {
		return c.rng.IntN(n)
	}
	return rand.IntN(n)
}

func (c *Container) emit(e TableEvent) {
	if c.table == nil {
		return
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now().UTC()
	}
	c.table.emit(e)
}

func compactCards(cards []*Card) []*Card {
	out := make([]*Card, 0, len(cards))
	for _, card := range cards {
		if card != nil {
			out = append(out, card)
		}
	}
	return out
}

func cardIDs(cards []*Card) []string {
	ids := make([]string, len(cards))
	for i, card := range cards {
		ids[i] = card.ID.String()
	}
	return ids
}
