// ABOUTME: Layout strategies compute per-card target positions from sequence order.
// ABOUTME: Refresh is idempotent and touches nothing but Card.Target.
package engine

// Position is a point in whatever coordinate space the presentation layer uses.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Layout recomputes card target positions for a container. Refresh runs after
// every mutation, so implementations must be cheap and idempotent.
type Layout interface {
	Refresh(c *Container)
}

// RowLayout places cards left to right with a fixed gap.
type RowLayout struct {
	Origin Position
	Gap    float64
}

var _ Layout = RowLayout{}

func (l RowLayout) Refresh(c *Container) {
	for i, card := range c.cards {
		card.Target = Position{X: l.Origin.X + float64(i)*l.Gap, Y: l.Origin.Y}
	}
}

// FanLayout spreads cards evenly across a fixed span, the way a hand is held.
// A single card sits at the middle of the span.
type FanLayout struct {
	Origin Position
	Span   float64
}

var _ Layout = FanLayout{}

func (l FanLayout) Refresh(c *Container) {
	n := len(c.cards)
	switch n {
	case 0:
		return
	case 1:
		c.cards[0].Target = Position{X: l.Origin.X + l.Span/2, Y: l.Origin.Y}
	default:
		step := l.Span / float64(n-1)
		for i, card := range c.cards {
			card.Target = Position{X: l.Origin.X + float64(i)*step, Y: l.Origin.Y}
		}
	}
}

// StackLayout piles cards on one spot with a small per-card offset so the
// stack reads as a stack. Later cards in the sequence sit on top.
type StackLayout struct {
	Origin Position
	Offset Position
}

var _ Layout = StackLayout{}

func (l StackLayout) Refresh(c *Container) {
	for i, card := range c.cards {
		card.Target = Position{
			X: l.Origin.X + float64(i)*l.Offset.X,
			Y: l.Origin.Y + float64(i)*l.Offset.Y,
		}
	}
}
