// ABOUTME: Pile is a container preset: stacked cards, optionally grabbable only from the top.
// ABOUTME: The last card in the sequence is the top of the stack.
package engine

import "math/rand/v2"

// StackDirection says which way a pile's cards creep as the stack grows.
type StackDirection string

const (
	StackUp    StackDirection = "up"
	StackDown  StackDirection = "down"
	StackLeft  StackDirection = "left"
	StackRight StackDirection = "right"
)

// PileConfig holds construction options for a pile.
type PileConfig struct {
	Origin    Position
	Direction StackDirection // growth direction, default StackUp
	Gap       float64        // per-card offset magnitude, default 0.2
	TopOnly   bool           // only the top card may be grabbed
	Sensor    PointerSensor  // drop zone geometry
	Rand      *rand.Rand     // shuffle source (nil = global source)
}

// Pile stacks its cards on one spot. With TopOnly set, grabbing anything but
// the top card is a no-op.
type Pile struct {
	*Container
	topOnly bool
}

// NewPile creates a pile registered for drops with a stack layout.
func NewPile(cfg PileConfig) *Pile {
	gap := cfg.Gap
	if gap == 0 {
		gap = 0.2
	}
	p := &Pile{topOnly: cfg.TopOnly}
	p.Container = NewContainer(ContainerConfig{
		HoldFilter:  p.mayHold,
		Sensor:      cfg.Sensor,
		DropEnabled: true,
		Layout:      StackLayout{Origin: cfg.Origin, Offset: stackOffset(cfg.Direction, gap)},
		Rand:        cfg.Rand,
	})
	return p
}

// TopCard returns the top of the stack, or nil when the pile is empty.
func (p *Pile) TopCard() *Card {
	if len(p.cards) == 0 {
		return nil
	}
	return p.cards[len(p.cards)-1]
}

// DrawTo moves up to n cards off the top into the destination, one at a time,
// top card first. Each draw is a normal move with history, so draws undo one
// card at a time. Returns how many cards actually moved; a destination that
// rejects a card stops the draw.
func (p *Pile) DrawTo(dst *Container, n int) int {
	moved := 0
	for ; moved < n; moved++ {
		top := p.TopCard()
		if top == nil {
			break
		}
		if !dst.MoveCards([]*Card{top}, IndexEnd, true) {
			break
		}
	}
	return moved
}

func (p *Pile) mayHold(card *Card) bool {
	return !p.topOnly || card == p.TopCard()
}

func stackOffset(dir StackDirection, gap float64) Position {
	switch dir {
	case StackDown:
		return Position{Y: gap}
	case StackLeft:
		return Position{X: -gap}
	case StackRight:
		return Position{X: gap}
	default:
		return Position{Y: -gap}
	}
}
