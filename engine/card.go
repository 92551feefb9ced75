// ABOUTME: Card is the unit that moves between containers, with identity and drag state.
// ABOUTME: A card belongs to at most one container; the back-reference always matches membership.
package engine

import "github.com/oklog/ulid/v2"

// DragState describes whether a card is currently grabbed by the pointer.
type DragState string

const (
	CardIdle DragState = "idle"
	CardHeld DragState = "held"
)

// Card is a single playing card. Identity is the ULID, assigned once and never
// reused. Display fields come from a catalog definition when factory-minted and
// are not interpreted by the engine.
type Card struct {
	ID    ulid.ULID
	DefID string // catalog definition slug, empty for ad-hoc cards
	Name  string
	Rules string // markdown rules text

	// Target is the position the active layout wants this card at. Layouts
	// write it on refresh; presentation layers read it. Never used for rules.
	Target Position

	state     DragState
	container *Container
}

// NewCard creates an idle, unowned card with a fresh ULID.
func NewCard(name string) *Card {
	return &Card{ID: NewULID(), Name: name, state: CardIdle}
}

// State reports the card's drag state.
func (c *Card) State() DragState { return c.state }

// Held reports whether the card is currently grabbed.
func (c *Card) Held() bool { return c.state == CardHeld }

// Container returns the card's current owner, or nil when unowned.
func (c *Card) Container() *Container { return c.container }

func (c *Card) setState(s DragState) { c.state = s }

// setContainer is only called by container insert/remove so membership and the
// back-reference change together.
func (c *Card) setContainer(owner *Container) { c.container = owner }
