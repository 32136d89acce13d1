package match

// Move records one tile falling from one cell to another in the same column.
type Move struct {
	From Cell
	To   Cell
}

// Distance returns how many rows the tile fell.
func (m Move) Distance() int {
	return m.From.Y - m.To.Y
}

// Spawn records a new tile placed into an empty cell during refill.
type Spawn struct {
	Cell Cell
	Type TileType
	// Drop is the 0-based order of this spawn within its column.
	// A presentation layer starts the tile at row Height+Drop.
	Drop int
}

// EffectLog is the ordered outcome of one resolution.
type EffectLog struct {
	Cleared []Cell
	Fallen  []Move
	Spawned []Spawn
}

// Gravity compacts every column downward and returns the recorded moves.
//
// The grid is swept repeatedly until a sweep moves nothing. Within a sweep,
// columns are visited left to right and rows bottom to top; each empty cell
// pulls down the nearest tile above it. Moves are returned in that order.
func (g *Grid) Gravity() []Move {
	var moves []Move
	for {
		n := len(moves)
		moves = g.sweep(moves)
		if len(moves) == n {
			return moves
		}
	}
}

func (g *Grid) sweep(moves []Move) []Move {
	for x := 0; x < g.w; x++ {
		for y := 0; y < g.h-1; y++ {
			to := C(x, y)
			if g.cells[g.index(to)] != NoTile {
				continue
			}
			for above := y + 1; above < g.h; above++ {
				from := C(x, above)
				t := g.cells[g.index(from)]
				if t == NoTile {
					continue
				}
				g.cells[g.index(to)] = t
				g.cells[g.index(from)] = NoTile
				moves = append(moves, Move{From: from, To: to})
				break
			}
		}
	}
	return moves
}

// Refill fills every empty cell with a random tile, column by column,
// bottom to top, and returns the spawns in that order.
func (g *Grid) Refill(rng RNG) []Spawn {
	var spawns []Spawn
	for x := 0; x < g.w; x++ {
		drop := 0
		for y := 0; y < g.h; y++ {
			c := C(x, y)
			if g.cells[g.index(c)] != NoTile {
				continue
			}
			t := g.catalog.Random(rng)
			g.cells[g.index(c)] = t
			spawns = append(spawns, Spawn{Cell: c, Type: t, Drop: drop})
			drop++
		}
	}
	return spawns
}
