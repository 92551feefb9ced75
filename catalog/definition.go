// ABOUTME: Definition is an immutable card description loaded from catalog files.
// ABOUTME: Definitions are static content; game state never flows back into them.
package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownDefinition indicates a referenced definition ID is not in the catalog.
	ErrUnknownDefinition = errors.New("unknown card definition")
)

// Definition describes one kind of card: identity slug, display name, and
// optional suit/rank/rules metadata. Rules text is markdown.
type Definition struct {
	ID    string   `json:"id" yaml:"id"`
	Name  string   `json:"name" yaml:"name"`
	Suit  string   `json:"suit,omitempty" yaml:"suit,omitempty"`
	Rank  int      `json:"rank,omitempty" yaml:"rank,omitempty"`
	Rules string   `json:"rules,omitempty" yaml:"rules,omitempty"`
	Tags  []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// Validate checks the fields a catalog cannot work without.
func (d Definition) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("definition %q: missing id", d.Name)
	}
	if d.Name == "" {
		return fmt.Errorf("definition %q: missing name", d.ID)
	}
	if d.Rank < 0 {
		return fmt.Errorf("definition %q: negative rank %d", d.ID, d.Rank)
	}
	return nil
}

// DuplicateDefinitionError indicates two definitions claim the same ID.
type DuplicateDefinitionError struct {
	ID string
}

func (e *DuplicateDefinitionError) Error() string {
	return fmt.Sprintf("duplicate card definition: %s", e.ID)
}
