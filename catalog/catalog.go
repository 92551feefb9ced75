// ABOUTME: Catalog indexes card definitions by ID, loaded from JSON and YAML files.
// ABOUTME: Iteration order is sorted by ID so output is stable across platforms.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Catalog is a read-only lookup of card definitions after loading.
type Catalog struct {
	defs map[string]Definition
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{defs: make(map[string]Definition)}
}

// Add validates and indexes a definition. Duplicate IDs are errors.
func (c *Catalog) Add(def Definition) error {
	if err := def.Validate(); err != nil {
		return err
	}
	if _, exists := c.defs[def.ID]; exists {
		return &DuplicateDefinitionError{ID: def.ID}
	}
	c.defs[def.ID] = def
	return nil
}

// Get looks up a definition by ID.
func (c *Catalog) Get(id string) (Definition, bool) {
	def, ok := c.defs[id]
	return def, ok
}

// Len returns the number of definitions.
func (c *Catalog) Len() int { return len(c.defs) }

// All returns every definition sorted by ID.
func (c *Catalog) All() []Definition {
	out := make([]Definition, 0, len(c.defs))
	for _, def := range c.defs {
		out = append(out, def)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// LoadDir loads every .json, .yaml, and .yml file in the directory into a new
// catalog. Each file holds a list of definitions. Other files are ignored.
func LoadDir(dir string) (*Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read catalog dir: %w", err)
	}
	c := New()
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		defs, err := loadFile(path)
		if err != nil {
			return nil, err
		}
		for _, def := range defs {
			if err := c.Add(def); err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
		}
	}
	return c, nil
}

func loadFile(path string) ([]Definition, error) {
	var parse func([]byte, any) error
	switch filepath.Ext(path) {
	case ".json":
		parse = json.Unmarshal
	case ".yaml", ".yml":
		parse = func(data []byte, v any) error { return yaml.Unmarshal(data, v) }
	default:
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var defs []Definition
	if err := parse(data, &defs); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return defs, nil
}
