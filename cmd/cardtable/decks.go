// ABOUTME: The decks subcommand: validate decklist files and export a sample list.
// ABOUTME: Validation runs against the configured catalog so definition IDs are checked for real.
package main

import (
	"fmt"
	"os"

	"github.com/2389-research/cardtable/catalog"
)

// runDecks dispatches "decks check <file>" and "decks export".
func runDecks(cfg *appConfig, args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: cardtable decks check <file> | cardtable decks export")
		return 2
	}
	switch args[0] {
	case "check":
		if len(args) < 2 {
			fmt.Fprintln(os.Stderr, "usage: cardtable decks check <file>")
			return 2
		}
		return runDecksCheck(cfg, args[1])
	case "export":
		return runDecksExport()
	default:
		fmt.Fprintf(os.Stderr, "unknown decks command %q\n", args[0])
		return 2
	}
}

// runDecksCheck loads a decklist file and validates it against the catalog.
func runDecksCheck(cfg *appConfig, path string) int {
	cat, err := loadCatalog(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	list, err := catalog.LoadDecklist(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	if err := list.Validate(cat); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	fmt.Printf("ok: %q lists %d cards\n", list.Name, list.Size())
	return 0
}

// runDecksExport prints a sample decklist in the format check accepts.
func runDecksExport() int {
	out, err := catalog.ExportDecklist(sampleDecklist())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	fmt.Print(out)
	return 0
}

// sampleDecklist is a small list over the built-in deck, meant as a template
// for hand-written files.
func sampleDecklist() catalog.Decklist {
	return catalog.Decklist{
		Name: "royal flush",
		Cards: []catalog.DeckEntry{
			{ID: "spades-a", Count: 1},
			{ID: "spades-k", Count: 1},
			{ID: "spades-q", Count: 1},
			{ID: "spades-j", Count: 1},
			{ID: "spades-10", Count: 1},
		},
	}
}
