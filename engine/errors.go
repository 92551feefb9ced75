// ABOUTME: Sentinel and typed errors for the card movement engine.
// ABOUTME: Undo history corruption degrades to recovery paths; nothing here is fatal.
package engine

import (
	"errors"
	"fmt"

	"github.com/oklog/ulid/v2"
)

var (
	// ErrNothingToUndo indicates the undo stack is empty.
	ErrNothingToUndo = errors.New("nothing to undo")
)

// IndexCountMismatchError indicates a restore was asked to place N cards with
// M recorded indices. The cards are appended at the end instead.
type IndexCountMismatchError struct {
	Cards   int
	Indices int
}

func (e *IndexCountMismatchError) Error() string {
	return fmt.Sprintf("restore index count mismatch: %d cards, %d indices", e.Cards, e.Indices)
}

// NegativeIndexError indicates a recorded restore index is negative, which no
// valid history entry can produce. The cards are appended at the end instead.
type NegativeIndexError struct {
	CardID ulid.ULID
	Index  int
}

func (e *NegativeIndexError) Error() string {
	return fmt.Sprintf("negative restore index %d for card %s", e.Index, e.CardID)
}
