// ABOUTME: Built-in standard 52-card deck so the demo table works with no files.
// ABOUTME: IDs follow suit-rank slugs like spades-a, hearts-10, clubs-k.
package catalog

import "fmt"

var standardSuits = []string{"spades", "hearts", "diamonds", "clubs"}

var rankSlugs = map[int]string{
	1: "a", 11: "j", 12: "q", 13: "k",
}

var rankNames = map[int]string{
	1: "Ace", 11: "Jack", 12: "Queen", 13: "King",
}

// Standard52 returns a catalog holding the standard French-suited deck.
func Standard52() *Catalog {
	c := New()
	for _, suit := range standardSuits {
		for rank := 1; rank <= 13; rank++ {
			// Add cannot fail here: IDs are generated and unique.
			_ = c.Add(Definition{
				ID:   fmt.Sprintf("%s-%s", suit, rankSlug(rank)),
				Name: fmt.Sprintf("%s of %s", rankName(rank), titleSuit(suit)),
				Suit: suit,
				Rank: rank,
				Tags: []string{"standard"},
			})
		}
	}
	return c
}

func rankSlug(rank int) string {
	if slug, ok := rankSlugs[rank]; ok {
		return slug
	}
	return fmt.Sprintf("%d", rank)
}

func rankName(rank int) string {
	if name, ok := rankNames[rank]; ok {
		return name
	}
	return fmt.Sprintf("%d", rank)
}

func titleSuit(suit string) string {
	switch suit {
	case "spades":
		return "Spades"
	case "hearts":
		return "Hearts"
	case "diamonds":
		return "Diamonds"
	default:
		return "Clubs"
	}
}
