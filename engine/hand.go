// ABOUTME: Hand is a container preset: fanned cards with an optional maximum size.
// ABOUTME: Pure composition over Container; the size cap is an acceptance predicate.
package engine

import "math/rand/v2"

// HandConfig holds construction options for a hand.
type HandConfig struct {
	MaxSize    int                   // most cards the hand will accept, 0 = unlimited
	HoldFilter func(card *Card) bool // which resident cards may be grabbed (nil = all)
	Origin     Position              // left edge of the fan
	Span       float64               // width the fan spreads across
	Sensor     PointerSensor         // drop zone geometry
	Rand       *rand.Rand            // shuffle source (nil = global source)
}

// Hand fans its cards across a span and rejects drops that would push it past
// MaxSize. Cards already resident don't count against the cap, so reordering
// within a full hand still works.
type Hand struct {
	*Container
	maxSize int
}

// NewHand creates a hand registered for drops with a fan layout.
func NewHand(cfg HandConfig) *Hand {
	h := &Hand{maxSize: cfg.MaxSize}
	h.Container = NewContainer(ContainerConfig{
		Accept:      h.roomFor,
		HoldFilter:  cfg.HoldFilter,
		Sensor:      cfg.Sensor,
		DropEnabled: true,
		Layout:      FanLayout{Origin: cfg.Origin, Span: cfg.Span},
		Rand:        cfg.Rand,
	})
	return h
}

// MaxSize returns the hand's card cap, 0 meaning unlimited.
func (h *Hand) MaxSize() int { return h.maxSize }

func (h *Hand) roomFor(cards []*Card) bool {
	if h.maxSize == 0 {
		return true
	}
	incoming := 0
	for _, card := range cards {
		if card != nil && card.container != h.Container {
			incoming++
		}
	}
	return h.Count()+incoming <= h.maxSize
}
