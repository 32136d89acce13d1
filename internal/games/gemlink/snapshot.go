package gemlink

import "github.com/vovakirdan/gemlink/internal/match"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateLinking     GameStateType = "linking"
	StateAnimating   GameStateType = "animating"
	StateWon         GameStateType = "won"
	StateLost        GameStateType = "lost"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick       uint64
	Score      int
	Moves      int
	MoveLimit  int
	Collected  int
	Target     int
	TargetType string // Tile name from the theme
	Board      string // Grid rows, top row first
	Chain      []match.Cell
	Cursor     match.Cell
	State      GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	snap := g.session.Snapshot()

	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.playback != nil:
		state = StateAnimating
	case snap.GameOver && snap.Won:
		state = StateWon
	case snap.GameOver:
		state = StateLost
	case g.builder.Building():
		state = StateLinking
	}

	return Snapshot{
		Tick:       g.tick,
		Score:      snap.Score,
		Moves:      snap.Moves,
		MoveLimit:  snap.MoveLimit,
		Collected:  snap.Collected,
		Target:     snap.Target,
		TargetType: g.theme.Tile(snap.TargetType).Name,
		Board:      g.session.Grid().String(),
		Chain:      g.builder.Current().Cells,
		Cursor:     g.cursor,
		State:      state,
	}
}
