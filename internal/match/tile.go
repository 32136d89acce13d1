// Package match implements the link-puzzle state machine: the tile grid,
// the chain builder, the scoring rules and the session.
// It is UI-agnostic and deterministic given an RNG; it performs no I/O.
package match

import "fmt"

// TileType identifies a tile kind. The zero value means "no tile".
type TileType uint8

// NoTile is the empty cell marker.
const NoTile TileType = 0

// RNG is the randomness source used for tile generation.
// *rand.Rand from math/rand satisfies it.
type RNG interface {
	Intn(n int) int
}

// Catalog is an immutable, ordered set of tile types.
type Catalog struct {
	names []string
}

// NewCatalog creates a catalog with one tile type per name.
// Types are numbered from 1 in the given order.
func NewCatalog(names ...string) (*Catalog, error) {
	if len(names) == 0 {
		return nil, ConfigError{Code: CodeEmptyCatalog, Message: "tile catalog is empty"}
	}
	if len(names) > 255 {
		return nil, ConfigError{Code: CodeCatalogSize, Message: fmt.Sprintf("tile catalog has %d types, max 255", len(names))}
	}
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		if seen[n] {
			return nil, ConfigError{Code: CodeDuplicateTile, Message: fmt.Sprintf("duplicate tile type %q", n)}
		}
		seen[n] = true
	}
	c := &Catalog{names: make([]string, len(names))}
	copy(c.names, names)
	return c, nil
}

// Len returns the number of tile types.
func (c *Catalog) Len() int {
	return len(c.names)
}

// Types returns all tile types in catalog order.
func (c *Catalog) Types() []TileType {
	types := make([]TileType, len(c.names))
	for i := range c.names {
		types[i] = TileType(i + 1)
	}
	return types
}

// At returns the tile type at a 0-based catalog index.
func (c *Catalog) At(index int) (TileType, bool) {
	if index < 0 || index >= len(c.names) {
		return NoTile, false
	}
	return TileType(index + 1), true
}

// Index returns the 0-based catalog index of t, or -1.
func (c *Catalog) Index(t TileType) int {
	if !c.Contains(t) {
		return -1
	}
	return int(t) - 1
}

// Contains reports whether t belongs to the catalog.
func (c *Catalog) Contains(t TileType) bool {
	return t != NoTile && int(t) <= len(c.names)
}

// Name returns the name of t, or "" for unknown types.
func (c *Catalog) Name(t TileType) string {
	if !c.Contains(t) {
		return ""
	}
	return c.names[t-1]
}

// Random returns a uniformly chosen tile type.
func (c *Catalog) Random(rng RNG) TileType {
	return TileType(rng.Intn(len(c.names)) + 1)
}
