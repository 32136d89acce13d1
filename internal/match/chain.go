package match

// Board is the read-only view a ChainBuilder works against.
// *Grid and *Session both implement it.
type Board interface {
	TileAt(c Cell) (TileType, bool)
	Busy() bool
}

// Chain is an ordered path of distinct, adjacent cells sharing one tile type.
type Chain struct {
	Type  TileType
	Cells []Cell
}

// Len returns the number of cells in the chain.
func (c Chain) Len() int {
	return len(c.Cells)
}

// Contains reports whether cell is part of the chain.
func (c Chain) Contains(cell Cell) bool {
	for _, cc := range c.Cells {
		if cc == cell {
			return true
		}
	}
	return false
}

// Last returns the most recently added cell.
func (c Chain) Last() (Cell, bool) {
	if len(c.Cells) == 0 {
		return Cell{}, false
	}
	return c.Cells[len(c.Cells)-1], true
}

func (c Chain) clone() Chain {
	cells := make([]Cell, len(c.Cells))
	copy(cells, c.Cells)
	return Chain{Type: c.Type, Cells: cells}
}

// GestureState is the state of the chain builder.
type GestureState int

const (
	GestureIdle GestureState = iota
	GestureBuilding
)

// Outcome describes how the last gesture ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeCommitted
	OutcomeCancelled
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeCommitted:
		return "committed"
	case OutcomeCancelled:
		return "cancelled"
	default:
		return "none"
	}
}

// ChainBuilder tracks a single drag gesture over a board.
type ChainBuilder struct {
	board     Board
	minMatch  int
	adjacency Adjacency

	state   GestureState
	chain   Chain
	outcome Outcome
}

// NewChainBuilder creates an idle builder.
func NewChainBuilder(board Board, minMatch int, adjacency Adjacency) *ChainBuilder {
	return &ChainBuilder{
		board:     board,
		minMatch:  minMatch,
		adjacency: adjacency,
	}
}

// State returns the current gesture state.
func (b *ChainBuilder) State() GestureState { return b.state }

// Building reports whether a gesture is in progress.
func (b *ChainBuilder) Building() bool { return b.state == GestureBuilding }

// Outcome returns how the most recent gesture ended.
func (b *ChainBuilder) Outcome() Outcome { return b.outcome }

// MinMatch returns the minimum committable chain length.
func (b *ChainBuilder) MinMatch() int { return b.minMatch }

// Len returns the length of the chain in progress.
func (b *ChainBuilder) Len() int { return b.chain.Len() }

// Valid reports whether the chain in progress is long enough to commit.
func (b *ChainBuilder) Valid() bool {
	return b.state == GestureBuilding && b.chain.Len() >= b.minMatch
}

// Current returns a copy of the chain in progress.
func (b *ChainBuilder) Current() Chain {
	return b.chain.clone()
}

// Start begins a gesture at cell. It does nothing unless the builder is idle,
// the board is not busy and the cell holds a tile.
func (b *ChainBuilder) Start(cell Cell) {
	if b.state != GestureIdle || b.board.Busy() {
		return
	}
	t, ok := b.board.TileAt(cell)
	if !ok {
		return
	}
	b.chain = Chain{Type: t, Cells: []Cell{cell}}
	b.state = GestureBuilding
	b.outcome = OutcomeNone
}

// TryExtend offers cell as the next step of the gesture.
// Stepping back onto the second-to-last cell undoes the last step.
func (b *ChainBuilder) TryExtend(cell Cell) {
	if b.state != GestureBuilding {
		return
	}
	if b.board.Busy() {
		b.Cancel()
		return
	}

	t, ok := b.board.TileAt(cell)
	last, _ := b.chain.Last()
	if !ok || cell == last {
		return
	}

	n := len(b.chain.Cells)
	if n >= 2 && cell == b.chain.Cells[n-2] {
		b.chain.Cells = b.chain.Cells[:n-1]
		return
	}

	if b.chain.Contains(cell) || t != b.chain.Type || !b.adjacency.Adjacent(last, cell) {
		return
	}
	b.chain.Cells = append(b.chain.Cells, cell)
}

// Commit ends the gesture. It returns the chain when it is long enough and
// the board is free; otherwise the gesture counts as cancelled.
// Calling Commit with no gesture in progress panics.
func (b *ChainBuilder) Commit() (Chain, bool) {
	if b.state != GestureBuilding {
		misuse("commit with no chain in progress")
	}
	chain := b.chain.clone()
	ok := chain.Len() >= b.minMatch && !b.board.Busy()
	b.reset()
	if !ok {
		b.outcome = OutcomeCancelled
		return Chain{}, false
	}
	b.outcome = OutcomeCommitted
	return chain, true
}

// Cancel abandons any gesture in progress.
func (b *ChainBuilder) Cancel() {
	if b.state == GestureBuilding {
		b.outcome = OutcomeCancelled
	}
	b.reset()
}

func (b *ChainBuilder) reset() {
	b.state = GestureIdle
	b.chain = Chain{}
}
