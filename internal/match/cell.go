package match

import "fmt"

// Cell is a grid coordinate. X increases to the right, Y increases upward:
// row 0 is the bottom of the board and gravity pulls toward it.
type Cell struct {
	X int
	Y int
}

// C is a convenience constructor for Cell.
func C(x, y int) Cell {
	return Cell{X: x, Y: y}
}

// String returns a string representation of the cell.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Manhattan returns the Manhattan distance to another cell.
func (c Cell) Manhattan(other Cell) int {
	dx, dy := absDelta(c, other)
	return dx + dy
}

func absDelta(a, b Cell) (int, int) {
	dx := a.X - b.X
	dy := a.Y - b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx, dy
}

// Adjacency selects which neighbours a chain may step to.
type Adjacency int

const (
	// Adjacency4 allows orthogonal steps only.
	Adjacency4 Adjacency = 4
	// Adjacency8 also allows diagonal steps.
	Adjacency8 Adjacency = 8
)

// Valid reports whether a is a known adjacency mode.
func (a Adjacency) Valid() bool {
	return a == Adjacency4 || a == Adjacency8
}

// Adjacent reports whether to is a neighbour of from under this mode.
// A cell is never adjacent to itself.
func (a Adjacency) Adjacent(from, to Cell) bool {
	dx, dy := absDelta(from, to)
	if a == Adjacency8 {
		return dx <= 1 && dy <= 1 && dx+dy > 0
	}
	return dx+dy == 1
}

// String returns "4-connected" or "8-connected".
func (a Adjacency) String() string {
	switch a {
	case Adjacency4:
		return "4-connected"
	case Adjacency8:
		return "8-connected"
	default:
		return "Unknown"
	}
}
