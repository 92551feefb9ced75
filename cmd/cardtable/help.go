// ABOUTME: Help display for the cardtable CLI with usage, key bindings, and environment status.
// ABOUTME: Provides printHelp for formatted usage output and envStatus for config detection.
package main

import (
	"fmt"
	"io"
	"os"
)

const cardsASCII = `
   .------..------.
   |A.--. ||K.--. |
   | (\/) || :/\: |
   | :\/: || :\/: |
   | '--'A|| '--'K|
   '------''------'
`

// printHelp writes a formatted help message to w, including usage patterns,
// key bindings, examples, environment status, and a docs link.
func printHelp(w io.Writer, ver string) {
	fmt.Fprint(w, cardsASCII)
	fmt.Fprintf(w, "cardtable %s — a card table with a terminal UI and web inspector\n", ver)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  cardtable [play]              Deal the demo table and run the TUI")
	fmt.Fprintln(w, "  cardtable play --serve        Run the TUI with the HTTP inspector")
	fmt.Fprintln(w, "  cardtable serve               Run the inspector without the TUI")
	fmt.Fprintln(w, "  cardtable decks check <file>  Validate a decklist against the catalog")
	fmt.Fprintln(w, "  cardtable decks export        Print a sample decklist")
	fmt.Fprintln(w, "  cardtable version             Print version and exit")
	fmt.Fprintln(w, "  cardtable help                Show this help")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Keys:")
	fmt.Fprintln(w, "  arrows / hjkl         Move the cursor")
	fmt.Fprintln(w, "  g / space             Grab the card under the cursor")
	fmt.Fprintln(w, "  d / enter             Drop held cards on the cursor container")
	fmt.Fprintln(w, "  u                     Undo the last move")
	fmt.Fprintln(w, "  s                     Shuffle the cursor container")
	fmt.Fprintln(w, "  tab                   Toggle focus between table and event log")
	fmt.Fprintln(w, "  q                     Quit")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  cardtable")
	fmt.Fprintln(w, "  cardtable play --serve")
	fmt.Fprintln(w, "  CARDTABLE_SEED=42 cardtable play")
	fmt.Fprintln(w, "  CARDTABLE_CARDS=./cards cardtable serve")
	fmt.Fprintln(w, "  cardtable decks check my-deck.yaml")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Environment:")
	fmt.Fprintf(w, "  CARDTABLE_BIND            %s\n", envStatus("CARDTABLE_BIND"))
	fmt.Fprintf(w, "  CARDTABLE_ALLOW_REMOTE    %s\n", envStatus("CARDTABLE_ALLOW_REMOTE"))
	fmt.Fprintf(w, "  CARDTABLE_CARDS           %s\n", envStatus("CARDTABLE_CARDS"))
	fmt.Fprintf(w, "  CARDTABLE_SEED            %s\n", envStatus("CARDTABLE_SEED"))
	fmt.Fprintf(w, "  CARDTABLE_NO_COLOR        %s\n", envStatus("CARDTABLE_NO_COLOR"))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  All variables are optional. Values may also come from .env or")
	fmt.Fprintln(w, "  ~/.config/cardtable/config.env; the live environment wins.")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Docs: https://github.com/2389-research/cardtable")
}

// envStatus returns "[set]" if the named environment variable is non-empty,
// or "[not set]" otherwise.
func envStatus(key string) string {
	if os.Getenv(key) != "" {
		return "[set]"
	}
	return "[not set]"
}
