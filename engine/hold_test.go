// ABOUTME: Tests for the drag lifecycle: hold, release, and the idle-before-drop-check rule.
// ABOUTME: Holding a non-resident card must be a silent no-op, never an error.
package engine_test

import (
	"testing"

	"github.com/2389-research/cardtable/engine"
)

func TestHoldCardMarksCardHeld(t *testing.T) {
	c := engine.NewContainer(engine.ContainerConfig{})
	card := engine.NewCard("x")
	c.Add(card)

	c.HoldCard(card)

	if card.State() != engine.CardHeld {
		t.Errorf("state: got %s, want %s", card.State(), engine.CardHeld)
	}
	held := c.HeldCards()
	if len(held) != 1 || held[0] != card {
		t.Errorf("held set: got %v, want just the card", held)
	}
}

func TestHoldNonResidentCardIsNoOp(t *testing.T) {
	c := engine.NewContainer(engine.ContainerConfig{})
	other := engine.NewContainer(engine.ContainerConfig{})
	card := engine.NewCard("x")
	other.Add(card)

	c.HoldCard(card)
	c.HoldCard(nil)

	if len(c.HeldCards()) != 0 {
		t.Error("holding a non-resident card should not enter the held set")
	}
	if card.State() != engine.CardIdle {
		t.Errorf("state: got %s, want %s", card.State(), engine.CardIdle)
	}
}

func TestHoldCardTwiceKeepsOneEntry(t *testing.T) {
	c := engine.NewContainer(engine.ContainerConfig{})
	card := engine.NewCard("x")
	c.Add(card)

	c.HoldCard(card)
	c.HoldCard(card)

	if got := len(c.HeldCards()); got != 1 {
		t.Errorf("held entries: got %d, want 1", got)
	}
}

func TestHoldFilterBlocksGrab(t *testing.T) {
	c := engine.NewContainer(engine.ContainerConfig{
		HoldFilter: func(card *engine.Card) bool { return card.Name != "locked" },
	})
	cards := cardsNamed("free", "locked")
	fill(c, cards)

	c.HoldCard(cards[0])
	c.HoldCard(cards[1])

	held := c.HeldCards()
	if len(held) != 1 || held[0].Name != "free" {
		t.Errorf("held set: got %v, want just the unlocked card", held)
	}
}

func TestReleaseHeldGoesIdleBeforeAcceptanceCheck(t *testing.T) {
	var seen []engine.DragState
	table := engine.NewTable(engine.TableConfig{})
	src := engine.NewContainer(engine.ContainerConfig{})
	sensor := engine.NewRectSensor(0, 0, 10, 10, 0)
	sensor.SetPointer(5, 5)
	dst := engine.NewContainer(engine.ContainerConfig{
		Sensor:      sensor,
		DropEnabled: true,
		Accept: func(cards []*engine.Card) bool {
			for _, card := range cards {
				seen = append(seen, card.State())
			}
			return true
		},
	})
	table.RegisterContainer(src)
	table.RegisterContainer(dst)
	cards := cardsNamed("a", "b")
	fill(src, cards)
	src.HoldCard(cards[0])
	src.HoldCard(cards[1])

	src.ReleaseHeld()

	if len(seen) == 0 {
		t.Fatal("acceptance predicate never ran")
	}
	for i, state := range seen {
		if state != engine.CardIdle {
			t.Errorf("card %d state during acceptance check: got %s, want %s", i, state, engine.CardIdle)
		}
	}
	if dst.Count() != 2 {
		t.Errorf("destination count: got %d, want 2", dst.Count())
	}
	if len(src.HeldCards()) != 0 {
		t.Error("held set should be cleared by release")
	}
}

func TestReleaseHeldInHoldOrder(t *testing.T) {
	table := engine.NewTable(engine.TableConfig{})
	src := engine.NewContainer(engine.ContainerConfig{})
	sensor := engine.NewRectSensor(0, 0, 10, 10, 0)
	sensor.SetPointer(1, 1)
	dst := engine.NewContainer(engine.ContainerConfig{Sensor: sensor, DropEnabled: true})
	table.RegisterContainer(src)
	table.RegisterContainer(dst)
	cards := cardsNamed("a", "b", "c")
	fill(src, cards)

	// Grab out of sequence order; the drop should land in grab order.
	src.HoldCard(cards[2])
	src.HoldCard(cards[0])
	src.ReleaseHeld()

	if got := sequenceOf(dst); len(got) != 2 || got[0] != "c" || got[1] != "a" {
		t.Errorf("destination: got %v, want [c a]", got)
	}
}

func TestReleaseHeldWithNothingHeldIsNoOp(t *testing.T) {
	var events []engine.TableEventType
	table := engine.NewTable(engine.TableConfig{
		EventHandler: func(e engine.TableEvent) { events = append(events, e.Type) },
	})
	c := engine.NewContainer(engine.ContainerConfig{})
	table.RegisterContainer(c)

	c.ReleaseHeld()

	for _, e := range events {
		if e == engine.EventCardReleased {
			t.Error("release with nothing held should emit no release event")
		}
	}
}

func TestReleaseHeldWithoutTableKeepsCards(t *testing.T) {
	c := engine.NewContainer(engine.ContainerConfig{})
	card := engine.NewCard("x")
	c.Add(card)
	c.HoldCard(card)

	c.ReleaseHeld()

	if !c.Contains(card) {
		t.Error("card should stay put without a table")
	}
	if card.State() != engine.CardIdle {
		t.Errorf("state: got %s, want %s", card.State(), engine.CardIdle)
	}
}

func TestRemovingHeldCardDropsTheHold(t *testing.T) {
	c := engine.NewContainer(engine.ContainerConfig{})
	card := engine.NewCard("x")
	c.Add(card)
	c.HoldCard(card)

	c.Remove(card)

	if len(c.HeldCards()) != 0 {
		t.Error("held set should forget a removed card")
	}
	if card.State() != engine.CardIdle {
		t.Errorf("state: got %s, want %s", card.State(), engine.CardIdle)
	}
}

func TestMovingHeldCardAwayDropsTheHold(t *testing.T) {
	src := engine.NewContainer(engine.ContainerConfig{})
	dst := engine.NewContainer(engine.ContainerConfig{})
	card := engine.NewCard("x")
	src.Add(card)
	src.HoldCard(card)

	dst.MoveCard(card, 0)

	if len(src.HeldCards()) != 0 {
		t.Error("source held set should forget the moved card")
	}
	if card.State() != engine.CardIdle {
		t.Errorf("state: got %s, want %s", card.State(), engine.CardIdle)
	}
}
