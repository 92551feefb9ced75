// ABOUTME: Factory mints live cards from catalog definitions.
// ABOUTME: Every minted card gets a fresh ULID; copies of one definition stay distinct.
package catalog

import (
	"fmt"

	"github.com/2389-research/cardtable/engine"
)

// Factory creates engine cards backed by catalog definitions.
type Factory struct {
	catalog *Catalog
}

// NewFactory creates a factory over the given catalog.
func NewFactory(c *Catalog) *Factory {
	return &Factory{catalog: c}
}

// Mint creates one card from the named definition.
func (f *Factory) Mint(defID string) (*engine.Card, error) {
	def, ok := f.catalog.Get(defID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDefinition, defID)
	}
	card := engine.NewCard(def.Name)
	card.DefID = def.ID
	card.Rules = def.Rules
	return card, nil
}

// MintDeck creates every card a decklist describes, in list order, with the
// requested number of copies. The decklist is validated first so a bad list
// mints nothing.
func (f *Factory) MintDeck(list Decklist) ([]*engine.Card, error) {
	if err := list.Validate(f.catalog); err != nil {
		return nil, err
	}
	cards := make([]*engine.Card, 0, list.Size())
	for _, entry := range list.Cards {
		for i := 0; i < entry.Count; i++ {
			card, err := f.Mint(entry.ID)
			if err != nil {
				return nil, err
			}
			cards = append(cards, card)
		}
	}
	return cards, nil
}

// BuildDeck mints a decklist and places every card into the pile in list
// order, first entry at the bottom. A bad list leaves the pile untouched.
func (f *Factory) BuildDeck(list Decklist, into *engine.Pile) error {
	cards, err := f.MintDeck(list)
	if err != nil {
		return err
	}
	for _, card := range cards {
		into.Add(card)
	}
	return nil
}

// MintAll creates one card per definition in the catalog, sorted by ID.
func (f *Factory) MintAll() []*engine.Card {
	defs := f.catalog.All()
	cards := make([]*engine.Card, 0, len(defs))
	for _, def := range defs {
		card := engine.NewCard(def.Name)
		card.DefID = def.ID
		card.Rules = def.Rules
		cards = append(cards, card)
	}
	return cards
}
