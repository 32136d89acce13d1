// Package gemlink adapts the link-puzzle core to the platform game loop:
// pointer and keyboard input drive the chain gesture, resolutions are
// replayed over several ticks, and the board is drawn into a core.Screen.
package gemlink

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gemlink/internal/config"
	"github.com/vovakirdan/gemlink/internal/core"
	"github.com/vovakirdan/gemlink/internal/match"
	"github.com/vovakirdan/gemlink/internal/registry"
)

// BonusMoves is how many moves the bonus key grants.
const BonusMoves = 5

// Game implements the Gem Link puzzle for the terminal platform.
type Game struct {
	cfg     config.GemLinkConfig
	rules   match.Config
	theme   registry.Theme
	catalog *match.Catalog
	logger  *log.Logger

	rng      *rand.Rand
	session  *match.Session
	builder  *match.ChainBuilder
	playback *Playback
	tick     uint64

	cursor  match.Cell
	layout  layout
	screenW int
	screenH int

	tooSmall      bool
	pendingFinish bool // Session ended; report once playback is done
	restartNext   bool // Restart deferred so a finished level is reported first
	last          *match.MatchResult
	matches       int // Resolved links this level
}

// LinkInfo describes the chain being drawn.
type LinkInfo struct {
	Len      int
	Type     match.TileType
	Valid    bool // Meets the minimum link length
	IsTarget bool
}

// New creates a game from a loaded config. The config is validated here so
// Reset cannot fail later. A nil logger discards output.
func New(cfg config.GemLinkConfig, logger *log.Logger) (*Game, error) {
	rules, theme, catalog, err := cfg.Resolve()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		cfg:     cfg,
		rules:   rules,
		theme:   theme,
		catalog: catalog,
		logger:  logger.WithPrefix("gemlink"),
	}, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "gemlink"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Gem Link"
}

// Mode groups comparable games for score tables, e.g. "8x8".
func (g *Game) Mode() string {
	return fmt.Sprintf("%dx%d", g.rules.Width, g.rules.Height)
}

// Theme returns the tile theme in use.
func (g *Game) Theme() registry.Theme {
	return g.theme
}

// Reset starts a fresh session seeded from cfg.Seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	session, err := match.NewSession(g.rules, g.catalog, g.rng)
	if err != nil {
		// Rules were validated by New.
		panic(fmt.Sprintf("gemlink: %v", err))
	}
	g.session = session
	// The builder must also refuse input while effects are replayed.
	g.builder = match.NewChainBuilder(gatedBoard{g}, g.rules.MinMatchCount, g.rules.Adjacency)
	g.resetPlay()
	g.Resize(cfg.ScreenW, cfg.ScreenH)

	snap := session.Snapshot()
	g.logger.Info("session started",
		"seed", cfg.Seed,
		"board", g.Mode(),
		"theme", g.theme.ID,
		"target", g.theme.Tile(snap.TargetType).Name,
	)
}

// restart begins a new level on the same RNG stream.
func (g *Game) restart() {
	if err := g.session.Restart(g.rules); err != nil {
		g.logger.Error("restart failed", "error", err)
		return
	}
	g.resetPlay()
	g.logger.Info("level restarted", "target", g.theme.Tile(g.session.TargetType()).Name)
}

func (g *Game) resetPlay() {
	g.builder.Cancel()
	g.playback = nil
	g.pendingFinish = false
	g.restartNext = false
	g.last = nil
	g.matches = 0
	g.tick = 0
	g.cursor = match.C(g.rules.Width/2, g.rules.Height/2)
}

// Resize recomputes the board layout for a new screen size.
func (g *Game) Resize(w, h int) {
	g.screenW, g.screenH = w, h
	var ok bool
	g.layout, ok = newLayout(w, h, g.rules.Width, g.rules.Height)
	g.tooSmall = !ok
	if g.tooSmall && g.builder != nil {
		g.builder.Cancel()
	}
}

// gatedBoard extends the session's busy state with effect playback.
type gatedBoard struct{ g *Game }

func (b gatedBoard) TileAt(c match.Cell) (match.TileType, bool) {
	return b.g.session.TileAt(c)
}

func (b gatedBoard) Busy() bool {
	return b.g.session.Busy() || b.g.playback != nil
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.restartNext {
		g.restart()
	}

	if g.playback != nil {
		g.playback.Advance()
		if !g.playback.Active() {
			g.playback = nil
		}
	}

	if in.Has(core.ActionRestart) {
		if g.pendingFinish {
			// Skip the rest of the final playback and report the result now.
			g.playback = nil
			g.pendingFinish = false
			g.restartNext = true
			return core.StepResult{State: g.State(), Finished: true}
		}
		g.restart()
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionBonusMoves) && !g.session.GameOver() {
		snap := g.session.AddMoves(BonusMoves)
		g.logger.Info("bonus moves granted", "added", BonusMoves, "moves", snap.Moves)
	}

	if !g.tooSmall {
		g.handlePointer(in.Pointer)
		g.handleKeys(in)
	}

	finished := false
	if g.pendingFinish && g.playback == nil {
		g.pendingFinish = false
		finished = true
	}

	return core.StepResult{State: g.State(), Finished: finished}
}

// handlePointer replays mouse events: press starts a chain, drag extends it,
// release commits. Drags outside the board are ignored.
func (g *Game) handlePointer(events []core.PointerEvent) {
	for _, ev := range events {
		cell, onBoard := g.layout.cellAt(ev.X, ev.Y)
		switch ev.Kind {
		case core.PointerPress:
			if onBoard {
				g.cursor = cell
				g.builder.Start(cell)
			}
		case core.PointerMotion:
			if onBoard && g.builder.Building() {
				g.cursor = cell
				g.builder.TryExtend(cell)
			}
		case core.PointerRelease:
			if g.builder.Building() {
				g.commit()
			}
		}
	}
}

// handleKeys moves the cursor; while a chain is open the cursor drags it.
func (g *Game) handleKeys(in core.InputFrame) {
	if in.Has(core.ActionCancel) {
		g.builder.Cancel()
	}

	// Vertical and horizontal combine, so one frame can step diagonally.
	dx, dy := 0, 0
	switch {
	case in.Has(core.ActionUp):
		dy = 1
	case in.Has(core.ActionDown):
		dy = -1
	}
	switch {
	case in.Has(core.ActionLeft):
		dx = -1
	case in.Has(core.ActionRight):
		dx = 1
	}
	if dx != 0 || dy != 0 {
		g.cursor = match.C(
			core.Clamp(g.cursor.X+dx, 0, g.rules.Width-1),
			core.Clamp(g.cursor.Y+dy, 0, g.rules.Height-1),
		)
		if g.builder.Building() {
			g.builder.TryExtend(g.cursor)
		}
	}

	if in.Has(core.ActionSelect) {
		if g.builder.Building() {
			g.commit()
		} else {
			g.builder.Start(g.cursor)
		}
	}
}

// commit resolves the current chain and starts its playback.
func (g *Game) commit() {
	chain, ok := g.builder.Commit()
	if !ok {
		g.logger.Debug("link dropped", "outcome", g.builder.Outcome())
		return
	}

	before := g.session.Grid()
	res, resolved := g.session.ResolveMatch(chain)
	if !resolved {
		return
	}
	g.last = &res
	g.matches++

	g.logger.Debug("match resolved",
		"gems", res.Gems,
		"type", g.theme.Tile(chain.Type).Name,
		"earned", res.Earned,
		"target", res.IsTarget,
		"moves", res.Moves,
		"collected", res.Collected,
	)

	pb := NewPlayback(before, g.session.Grid(), res.Effects, g.cfg.Playback)
	if pb.Active() {
		g.playback = pb
	}

	if res.Terminal != nil {
		g.pendingFinish = true
		g.logger.Info("game over",
			"won", res.Terminal.Won,
			"score", res.Terminal.FinalScore,
			"collected", res.Terminal.Collected,
			"target", res.Terminal.Target,
		)
	}
}

// Link returns feedback about the chain being drawn.
func (g *Game) Link() LinkInfo {
	chain := g.builder.Current()
	if chain.Len() == 0 {
		return LinkInfo{}
	}
	return LinkInfo{
		Len:      chain.Len(),
		Type:     chain.Type,
		Valid:    g.builder.Valid(),
		IsTarget: g.session.IsTarget(chain.Type),
	}
}

// Result returns the final summary once the game is over and its last
// playback has finished.
func (g *Game) Result() (match.Terminal, bool) {
	term, over := g.session.Terminal()
	return term, over && g.playback == nil
}

// Matches returns how many links were resolved since the level started.
func (g *Game) Matches() int {
	return g.matches
}

// Rules returns the active core rules.
func (g *Game) Rules() match.Config {
	return g.rules
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	snap := g.session.Snapshot()
	return core.GameState{
		Score:    snap.Score,
		GameOver: snap.GameOver && g.playback == nil,
		Won:      snap.Won,
		Busy:     g.playback != nil,
	}
}
