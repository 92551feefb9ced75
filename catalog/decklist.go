// ABOUTME: Decklists are YAML documents listing definition IDs with copy counts.
// ABOUTME: Loading normalizes counts; validation runs against a catalog.
package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/2389-research/cardtable/engine"
)

// DeckEntry is one line of a decklist: a definition ID and how many copies.
type DeckEntry struct {
	ID    string `yaml:"id"`
	Count int    `yaml:"count"`
}

// Decklist is a named list of card definition IDs with counts.
type Decklist struct {
	Name  string      `yaml:"name"`
	Cards []DeckEntry `yaml:"cards"`
}

// ParseDecklist decodes a decklist from YAML. Entries without an explicit
// count default to one copy.
func ParseDecklist(data []byte) (Decklist, error) {
	var d Decklist
	if err := yaml.Unmarshal(data, &d); err != nil {
		return Decklist{}, fmt.Errorf("parse decklist: %w", err)
	}
	for i := range d.Cards {
		if d.Cards[i].Count == 0 {
			d.Cards[i].Count = 1
		}
	}
	return d, nil
}

// LoadDecklist reads and parses a decklist file.
func LoadDecklist(path string) (Decklist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Decklist{}, fmt.Errorf("read decklist: %w", err)
	}
	return ParseDecklist(data)
}

// Validate checks every entry against the catalog.
func (d Decklist) Validate(c *Catalog) error {
	for _, entry := range d.Cards {
		if entry.ID == "" {
			return fmt.Errorf("decklist %q: entry with empty id", d.Name)
		}
		if entry.Count < 1 {
			return fmt.Errorf("decklist %q: %s has count %d", d.Name, entry.ID, entry.Count)
		}
		if _, ok := c.Get(entry.ID); !ok {
			return fmt.Errorf("decklist %q: %w: %s", d.Name, ErrUnknownDefinition, entry.ID)
		}
	}
	return nil
}

// Size returns the total number of cards the decklist describes.
func (d Decklist) Size() int {
	total := 0
	for _, entry := range d.Cards {
		total += entry.Count
	}
	return total
}

// ExportDecklist renders a decklist as YAML.
func ExportDecklist(d Decklist) (string, error) {
	data, err := yaml.Marshal(&d)
	if err != nil {
		return "", fmt.Errorf("yaml marshal: %w", err)
	}
	return string(data), nil
}

// DecklistFromCards rebuilds a decklist from live cards, counting copies per
// definition in first-appearance order. Ad-hoc cards without a definition ID
// are skipped.
func DecklistFromCards(name string, cards []*engine.Card) Decklist {
	d := Decklist{Name: name}
	index := make(map[string]int)
	for _, card := range cards {
		if card == nil || card.DefID == "" {
			continue
		}
		if i, ok := index[card.DefID]; ok {
			d.Cards[i].Count++
			continue
		}
		index[card.DefID] = len(d.Cards)
		d.Cards = append(d.Cards, DeckEntry{ID: card.DefID, Count: 1})
	}
	return d
}
