package match

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Grid is the board as a rectangular array of optional tiles.
// Cells are stored in row-major order: index = y*W + x, with row 0 at the bottom.
type Grid struct {
	w       int
	h       int
	cells   []TileType
	catalog *Catalog
	busy    atomic.Bool
}

// NewGrid creates a grid of the given size with every cell filled by a
// uniformly random tile from the catalog.
func NewGrid(w, h int, catalog *Catalog, rng RNG) (*Grid, error) {
	if err := validateBoard(w, h, catalog); err != nil {
		return nil, err
	}
	g := newEmptyGrid(w, h, catalog)
	for i := range g.cells {
		g.cells[i] = catalog.Random(rng)
	}
	return g, nil
}

// NewGridFromTypes creates a grid with the given tiles placed; other cells are empty.
// Tiles outside the bounds or not in the catalog are ignored.
func NewGridFromTypes(w, h int, catalog *Catalog, tiles map[Cell]TileType) *Grid {
	g := newEmptyGrid(w, h, catalog)
	for c, t := range tiles {
		if g.InBounds(c) && catalog.Contains(t) {
			g.cells[g.index(c)] = t
		}
	}
	return g
}

func newEmptyGrid(w, h int, catalog *Catalog) *Grid {
	return &Grid{
		w:       w,
		h:       h,
		cells:   make([]TileType, w*h),
		catalog: catalog,
	}
}

func validateBoard(w, h int, catalog *Catalog) error {
	if w <= 0 || h <= 0 {
		return ConfigError{Code: CodeBadDimensions, Message: fmt.Sprintf("board size %dx%d must be positive", w, h)}
	}
	if catalog == nil || catalog.Len() == 0 {
		return ConfigError{Code: CodeEmptyCatalog, Message: "tile catalog is empty"}
	}
	return nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Catalog returns the tile catalog the grid draws from.
func (g *Grid) Catalog() *Catalog { return g.catalog }

func (g *Grid) index(c Cell) int {
	return c.Y*g.w + c.X
}

// InBounds returns true if the cell is within the grid boundaries.
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.w && c.Y >= 0 && c.Y < g.h
}

// TileAt returns the tile at c. ok is false for empty or out-of-bounds cells.
func (g *Grid) TileAt(c Cell) (t TileType, ok bool) {
	if !g.InBounds(c) {
		return NoTile, false
	}
	t = g.cells[g.index(c)]
	return t, t != NoTile
}

// Busy reports whether a clear/gravity/refill resolution is in progress.
func (g *Grid) Busy() bool {
	return g.busy.Load()
}

// acquire marks the grid busy. It fails if a resolution is already running.
func (g *Grid) acquire() bool {
	return g.busy.CompareAndSwap(false, true)
}

func (g *Grid) release() {
	g.busy.Store(false)
}

// Clear empties the given cells.
// Every cell must be in bounds, hold a tile and appear once; anything else panics.
func (g *Grid) Clear(cells []Cell) {
	seen := make(map[Cell]bool, len(cells))
	for _, c := range cells {
		if !g.InBounds(c) {
			misuse("clear out of bounds cell %v on %dx%d grid", c, g.w, g.h)
		}
		if g.cells[g.index(c)] == NoTile {
			misuse("clear empty cell %v", c)
		}
		if seen[c] {
			misuse("clear duplicate cell %v", c)
		}
		seen[c] = true
	}
	for _, c := range cells {
		g.cells[g.index(c)] = NoTile
	}
}

// AllCellsOfType returns every cell holding t, in row-major order.
func (g *Grid) AllCellsOfType(t TileType) []Cell {
	var cells []Cell
	if t == NoTile {
		return cells
	}
	for i, ct := range g.cells {
		if ct == t {
			cells = append(cells, C(i%g.w, i/g.w))
		}
	}
	return cells
}

// EmptyCount returns the number of empty cells.
func (g *Grid) EmptyCount() int {
	n := 0
	for _, t := range g.cells {
		if t == NoTile {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the grid. The copy is never busy.
func (g *Grid) Clone() *Grid {
	c := newEmptyGrid(g.w, g.h, g.catalog)
	copy(c.cells, g.cells)
	return c
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil {
		return false
	}
	if g.w != other.w || g.h != other.h {
		return false
	}
	for i, t := range g.cells {
		if t != other.cells[i] {
			return false
		}
	}
	return true
}

// String renders the grid top row first, one byte per cell:
// '.' for empty, '1'..'9' then 'a'.. for tile types.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.w + 1) * g.h)
	for y := g.h - 1; y >= 0; y-- {
		for x := 0; x < g.w; x++ {
			sb.WriteByte(tileGlyph(g.cells[g.index(C(x, y))]))
		}
		if y > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func tileGlyph(t TileType) byte {
	switch {
	case t == NoTile:
		return '.'
	case t <= 9:
		return byte('0' + t)
	case t <= 35:
		return byte('a' + t - 10)
	default:
		return '#'
	}
}
