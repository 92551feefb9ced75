// ABOUTME: Builds the demo table the play and serve commands run: draw pile, two hands, discard.
// ABOUTME: Cards come from the built-in standard deck or a CARDTABLE_CARDS directory.
package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/2389-research/cardtable/catalog"
	"github.com/2389-research/cardtable/engine"
	"github.com/2389-research/cardtable/tui"
	"github.com/2389-research/cardtable/web"
)

const demoHandSize = 5

// demoGame bundles a live table with the pieces the TUI and inspector need.
type demoGame struct {
	table  *engine.Table
	views  []tui.ContainerView
	events *tui.EventBuffer
	cards  []*engine.Card
}

// loadCatalog returns the configured card catalog: the CARDTABLE_CARDS
// directory when set, the built-in standard deck otherwise.
func loadCatalog(cfg *appConfig) (*catalog.Catalog, error) {
	if cfg.CardsDir == "" {
		return catalog.Standard52(), nil
	}
	return catalog.LoadDir(cfg.CardsDir)
}

// buildDemoGame mints every catalog card into a shuffled draw pile, deals a
// starting hand to each of two players, and leaves an empty discard pile.
// Containers sit on one row with unit-square sensors so the TUI can steer
// drops by column.
func buildDemoGame(cfg *appConfig) (*demoGame, error) {
	cat, err := loadCatalog(cfg)
	if err != nil {
		return nil, err
	}
	if cat.Len() == 0 {
		return nil, fmt.Errorf("no card definitions in %s", cfg.CardsDir)
	}
	cards := catalog.NewFactory(cat).MintAll()

	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
	}

	events := tui.NewEventBuffer()
	table := engine.NewTable(engine.TableConfig{EventHandler: events.Handle})

	drawSensor := engine.NewRectSensor(0, 0, 1, 1, 0)
	draw := engine.NewPile(engine.PileConfig{
		Origin:  engine.Position{X: 0, Y: 0},
		TopOnly: true,
		Sensor:  drawSensor,
		Rand:    rng,
	})

	northSensor := engine.NewRectSensor(1, 0, 1, 1, 0)
	north := engine.NewHand(engine.HandConfig{
		MaxSize: 7,
		Origin:  engine.Position{X: 1, Y: 0},
		Span:    1,
		Sensor:  northSensor,
		Rand:    rng,
	})

	southSensor := engine.NewRectSensor(2, 0, 1, 1, 0)
	south := engine.NewHand(engine.HandConfig{
		MaxSize: 7,
		Origin:  engine.Position{X: 2, Y: 0},
		Span:    1,
		Sensor:  southSensor,
		Rand:    rng,
	})

	discardSensor := engine.NewRectSensor(3, 0, 1, 1, 0)
	discard := engine.NewPile(engine.PileConfig{
		Origin:    engine.Position{X: 3, Y: 0},
		Direction: engine.StackDown,
		Sensor:    discardSensor,
		Rand:      rng,
	})

	table.RegisterContainer(draw.Container)
	table.RegisterContainer(north.Container)
	table.RegisterContainer(south.Container)
	table.RegisterContainer(discard.Container)

	for _, card := range cards {
		draw.Add(card)
	}
	draw.Shuffle()

	// Deal directly so setup leaves the history empty.
	dealTo(draw, north.Container, demoHandSize)
	dealTo(draw, south.Container, demoHandSize)

	views := []tui.ContainerView{
		{Name: "draw", Container: draw.Container, Sensor: drawSensor},
		{Name: "north hand", Container: north.Container, Sensor: northSensor},
		{Name: "south hand", Container: south.Container, Sensor: southSensor},
		{Name: "discard", Container: discard.Container, Sensor: discardSensor},
	}

	return &demoGame{table: table, views: views, events: events, cards: cards}, nil
}

// dealTo places up to n cards off the top of a pile into a container.
func dealTo(from *engine.Pile, to *engine.Container, n int) {
	for i := 0; i < n; i++ {
		top := from.TopCard()
		if top == nil {
			return
		}
		to.Add(top)
	}
}

// rulesFunc builds an inspector lookup over the minted cards. The map is
// filled once at setup, so lookups are safe from any goroutine.
func (g *demoGame) rulesFunc() web.RulesFunc {
	byID := make(map[string]web.CardRules, len(g.cards))
	for _, card := range g.cards {
		byID[card.ID.String()] = web.CardRules{
			ID:    card.ID.String(),
			Name:  card.Name,
			Rules: card.Rules,
		}
	}
	return func(id string) (web.CardRules, bool) {
		rules, ok := byID[id]
		return rules, ok
	}
}
