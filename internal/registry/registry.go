// Package registry holds the named tile themes the game can be played with.
// Built-in themes register themselves in init(); config files may add more.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/gemlink/internal/core"
	"github.com/vovakirdan/gemlink/internal/match"
)

// Tile describes how one tile type looks.
type Tile struct {
	Name  string
	Glyph rune
	Color core.Color
}

// Theme is a named, ordered tile set. Tile order defines catalog indexes,
// so target_type_index in config refers to a position in Tiles.
type Theme struct {
	ID    string
	Title string
	Tiles []Tile
}

// Catalog builds the core tile catalog for this theme.
func (t Theme) Catalog() (*match.Catalog, error) {
	names := make([]string, len(t.Tiles))
	for i, tile := range t.Tiles {
		names[i] = tile.Name
	}
	c, err := match.NewCatalog(names...)
	if err != nil {
		return nil, fmt.Errorf("registry: theme %q: %w", t.ID, err)
	}
	return c, nil
}

// Tile returns the look of a catalog tile type.
// Unknown types render as a gray '?'.
func (t Theme) Tile(tt match.TileType) Tile {
	i := int(tt) - 1
	if i < 0 || i >= len(t.Tiles) {
		return Tile{Name: "unknown", Glyph: '?', Color: core.ColorGray}
	}
	return t.Tiles[i]
}

// ThemeInfo contains metadata about a registered theme.
type ThemeInfo struct {
	ID    string
	Title string
	Size  int
}

var (
	themes = make(map[string]Theme)
	mu     sync.RWMutex
)

// Register adds a theme to the registry.
// Typically called from init(). Panics if the ID is taken or the theme is invalid.
func Register(t Theme) {
	if err := Add(t); err != nil {
		panic(err.Error())
	}
}

// Add registers a theme, returning an error instead of panicking.
func Add(t Theme) error {
	if t.ID == "" {
		return fmt.Errorf("registry: theme id is empty")
	}
	if _, err := t.Catalog(); err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := themes[t.ID]; exists {
		return fmt.Errorf("registry: theme %q already registered", t.ID)
	}
	t.Tiles = append([]Tile(nil), t.Tiles...)
	if t.Title == "" {
		t.Title = t.ID
	}
	themes[t.ID] = t
	return nil
}

// List returns information about all registered themes, sorted by ID.
func List() []ThemeInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ThemeInfo, 0, len(themes))
	for id, t := range themes {
		result = append(result, ThemeInfo{
			ID:    id,
			Title: t.Title,
			Size:  len(t.Tiles),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns the theme with the given ID.
func Get(id string) (Theme, error) {
	mu.RLock()
	defer mu.RUnlock()

	t, ok := themes[id]
	if !ok {
		return Theme{}, fmt.Errorf("registry: unknown theme %q", id)
	}
	return t, nil
}

// Exists checks if a theme with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := themes[id]
	return ok
}
