package match_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/gemlink/internal/match"
)

func testConfig() match.Config {
	cfg := match.DefaultConfig()
	cfg.Adjacency = match.Adjacency4
	cfg.TargetTypeIndex = 0
	return cfg
}

// redBlueBoard returns an 8x8 grid with columns 0-1 red (type 1) and the rest blue.
func redBlueBoard(t *testing.T) *match.Grid {
	t.Helper()
	c := newCatalog(t, "red", "blue")
	red, _ := c.At(0)
	blue, _ := c.At(1)
	tiles := make(map[match.Cell]match.TileType)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if x < 2 {
				tiles[match.C(x, y)] = red
			} else {
				tiles[match.C(x, y)] = blue
			}
		}
	}
	return match.NewGridFromTypes(8, 8, c, tiles)
}

func column(x, fromY, n int) []match.Cell {
	cells := make([]match.Cell, n)
	for i := range cells {
		cells[i] = match.C(x, fromY+i)
	}
	return cells
}

func TestNewSessionInitialState(t *testing.T) {
	c := newCatalog(t, "red", "blue", "green")
	cfg := match.DefaultConfig()
	cfg.TargetTypeIndex = 2

	s, err := match.NewSession(cfg, c, seeded(3))
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}

	snap := s.Snapshot()
	green, _ := c.At(2)
	if snap.Score != 0 || snap.Collected != 0 || snap.Moves != 10 || snap.MoveLimit != 10 {
		t.Errorf("unexpected initial snapshot %+v", snap)
	}
	if snap.Target != 15 || snap.TargetType != green || snap.GameOver {
		t.Errorf("unexpected initial snapshot %+v", snap)
	}
	if g := s.Grid(); g.Width() != 8 || g.Height() != 8 || g.EmptyCount() != 0 {
		t.Errorf("expected full 8x8 grid, got %dx%d with %d empty", g.Width(), g.Height(), g.EmptyCount())
	}
}

func TestNewSessionRandomTarget(t *testing.T) {
	c := newCatalog(t, "red", "blue", "green")
	cfg := match.DefaultConfig()

	for _, idx := range []int{-1, 3, 99} {
		cfg.TargetTypeIndex = idx
		s, err := match.NewSession(cfg, c, constRNG(1))
		if err != nil {
			t.Fatalf("NewSession failed: %v", err)
		}
		blue, _ := c.At(1)
		if s.TargetType() != blue {
			t.Errorf("index %d: target = %v, want the randomly drawn blue", idx, s.TargetType())
		}
	}
}

func TestNewSessionConfigErrors(t *testing.T) {
	c := newCatalog(t, "red")

	testCases := []struct {
		name   string
		modify func(*match.Config)
		code   string
	}{
		{"zero width", func(cfg *match.Config) { cfg.Width = 0 }, match.CodeBadDimensions},
		{"negative height", func(cfg *match.Config) { cfg.Height = -2 }, match.CodeBadDimensions},
		{"min match zero", func(cfg *match.Config) { cfg.MinMatchCount = 0 }, match.CodeBadMinMatch},
		{"no moves", func(cfg *match.Config) { cfg.MoveLimit = 0 }, match.CodeBadMoveLimit},
		{"no target", func(cfg *match.Config) { cfg.TargetGemCount = 0 }, match.CodeBadTarget},
		{"negative scoring", func(cfg *match.Config) { cfg.Scoring.PerGem = -1 }, match.CodeBadScoring},
		{"bad adjacency", func(cfg *match.Config) { cfg.Adjacency = 6 }, match.CodeBadAdjacency},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := match.DefaultConfig()
			tc.modify(&cfg)
			_, err := match.NewSession(cfg, c, seeded(1))
			var cfgErr match.ConfigError
			if !errors.As(err, &cfgErr) || cfgErr.Code != tc.code {
				t.Errorf("expected ConfigError %s, got %v", tc.code, err)
			}
		})
	}

	if _, err := match.NewSession(match.DefaultConfig(), nil, seeded(1)); err == nil {
		t.Error("expected error for nil catalog")
	}
}

func TestResolveMatchEffects(t *testing.T) {
	g := redBlueBoard(t)
	s, err := match.NewSessionWithGrid(testConfig(), g, constRNG(1))
	if err != nil {
		t.Fatalf("NewSessionWithGrid failed: %v", err)
	}
	blue, _ := g.Catalog().At(1)

	chain := match.Chain{Type: blue, Cells: column(4, 2, 3)}
	res, ok := s.ResolveMatch(chain)
	if !ok {
		t.Fatal("ResolveMatch should accept a valid chain")
	}

	if res.Gems != 3 || res.Earned != 30 || res.IsTarget {
		t.Errorf("unexpected scoring %+v", res)
	}
	if res.Score != 30 || res.Moves != 9 || res.Collected != 0 || res.Terminal != nil {
		t.Errorf("unexpected counters %+v", res)
	}
	if !sameCells(res.Effects.Cleared, chain.Cells) {
		t.Errorf("cleared = %v, want %v", res.Effects.Cleared, chain.Cells)
	}
	// Rows 5, 6, 7 of column 4 fall three rows each.
	if len(res.Effects.Fallen) != 3 {
		t.Fatalf("fallen = %v, want 3 moves", res.Effects.Fallen)
	}
	for i, m := range res.Effects.Fallen {
		want := match.Move{From: match.C(4, 5+i), To: match.C(4, 2+i)}
		if m != want {
			t.Errorf("move %d = %v, want %v", i, m, want)
		}
	}
	if len(res.Effects.Spawned) != 3 {
		t.Fatalf("spawned = %v, want 3", res.Effects.Spawned)
	}
	for i, sp := range res.Effects.Spawned {
		if sp.Cell != match.C(4, 5+i) || sp.Drop != i || sp.Type != blue {
			t.Errorf("spawn %d = %+v", i, sp)
		}
	}
	if s.Grid().EmptyCount() != 0 {
		t.Error("grid should be full after resolution")
	}
	if s.Busy() {
		t.Error("session should not be busy after resolution")
	}
}

func TestResolveMatchAccumulatesTarget(t *testing.T) {
	c := newCatalog(t, "red")
	s, err := match.NewSession(testConfig(), c, constRNG(0))
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	red, _ := c.At(0)

	for i := 1; i <= 5; i++ {
		res, ok := s.ResolveMatch(match.Chain{Type: red, Cells: column(0, 0, 3)})
		if !ok {
			t.Fatalf("match %d ignored", i)
		}
		if res.Collected != 3*i {
			t.Errorf("match %d: collected = %d, want %d", i, res.Collected, 3*i)
		}
		if res.Earned != 60 {
			t.Errorf("match %d: earned = %d, want 60", i, res.Earned)
		}
		over := i == 5
		if (res.Terminal != nil) != over {
			t.Errorf("match %d: terminal = %+v, want over=%v", i, res.Terminal, over)
		}
	}

	snap := s.Snapshot()
	if !snap.GameOver || !snap.Won || snap.Moves != 5 || snap.Progress != 1 {
		t.Errorf("unexpected final snapshot %+v", snap)
	}
}

func TestWinTakesPriorityOnLastMove(t *testing.T) {
	g := redBlueBoard(t)
	s, err := match.NewSessionWithGrid(testConfig(), g, constRNG(1))
	if err != nil {
		t.Fatalf("NewSessionWithGrid failed: %v", err)
	}
	red, _ := g.Catalog().At(0)
	blue, _ := g.Catalog().At(1)

	for i := 0; i < 9; i++ {
		if _, ok := s.ResolveMatch(match.Chain{Type: blue, Cells: column(2, 0, 3)}); !ok {
			t.Fatalf("blue match %d ignored", i)
		}
	}
	if snap := s.Snapshot(); snap.Moves != 1 || snap.GameOver {
		t.Fatalf("after 9 moves: %+v", snap)
	}

	// Up column 0, down column 1: 15 red cells.
	snake := column(0, 0, 8)
	for y := 7; y >= 1; y-- {
		snake = append(snake, match.C(1, y))
	}
	res, ok := s.ResolveMatch(match.Chain{Type: red, Cells: snake})
	if !ok {
		t.Fatal("red snake ignored")
	}

	if res.Moves != 0 || res.Collected != 15 {
		t.Errorf("moves=%d collected=%d, want 0/15", res.Moves, res.Collected)
	}
	if res.Terminal == nil || !res.Terminal.Won {
		t.Fatalf("expected a win, got %+v", res.Terminal)
	}
	want := 9*30 + (30+12*20)*2
	if res.Terminal.FinalScore != want {
		t.Errorf("final score = %d, want %d", res.Terminal.FinalScore, want)
	}
}

func TestLossWhenMovesRunOut(t *testing.T) {
	g := redBlueBoard(t)
	cfg := testConfig()
	cfg.MoveLimit = 1
	s, err := match.NewSessionWithGrid(cfg, g, constRNG(1))
	if err != nil {
		t.Fatalf("NewSessionWithGrid failed: %v", err)
	}
	blue, _ := g.Catalog().At(1)

	res, ok := s.ResolveMatch(match.Chain{Type: blue, Cells: column(5, 0, 4)})
	if !ok {
		t.Fatal("match ignored")
	}
	if res.Terminal == nil || res.Terminal.Won {
		t.Fatalf("expected a loss, got %+v", res.Terminal)
	}
	term, over := s.Terminal()
	if !over || term.Collected != 0 || term.Target != 15 {
		t.Errorf("Terminal() = %+v/%v", term, over)
	}
}

func TestNoOpsAfterGameOver(t *testing.T) {
	g := redBlueBoard(t)
	cfg := testConfig()
	cfg.MoveLimit = 1
	s, err := match.NewSessionWithGrid(cfg, g, constRNG(1))
	if err != nil {
		t.Fatalf("NewSessionWithGrid failed: %v", err)
	}
	blue, _ := g.Catalog().At(1)
	s.ResolveMatch(match.Chain{Type: blue, Cells: column(5, 0, 3)})

	before := s.Snapshot()
	grid := s.Grid()

	if _, ok := s.ResolveMatch(match.Chain{Type: blue, Cells: column(6, 0, 3)}); ok {
		t.Error("ResolveMatch after game over should be ignored")
	}
	s.AddMoves(5)
	s.AddScore(100)

	if after := s.Snapshot(); after != before {
		t.Errorf("state changed after game over: %+v -> %+v", before, after)
	}
	if !s.Grid().Equal(grid) {
		t.Error("grid changed after game over")
	}

	b := s.NewChainBuilder()
	b.Start(match.C(0, 0))
	if b.Building() {
		t.Error("chain gesture should be refused once the game is over")
	}
}

func TestResolveMatchRejectsShortChain(t *testing.T) {
	g := redBlueBoard(t)
	s, err := match.NewSessionWithGrid(testConfig(), g, constRNG(1))
	if err != nil {
		t.Fatalf("NewSessionWithGrid failed: %v", err)
	}
	blue, _ := g.Catalog().At(1)
	before := s.Snapshot()

	if _, ok := s.ResolveMatch(match.Chain{Type: blue, Cells: column(3, 0, 2)}); ok {
		t.Error("chain shorter than min match should be ignored")
	}
	if s.Snapshot() != before {
		t.Error("short chain changed the session")
	}
}

func TestResolveMatchMisuse(t *testing.T) {
	g := redBlueBoard(t)
	s, err := match.NewSessionWithGrid(testConfig(), g, constRNG(1))
	if err != nil {
		t.Fatalf("NewSessionWithGrid failed: %v", err)
	}
	red, _ := g.Catalog().At(0)

	before := s.Snapshot()

	expectPanic(t, "chain over wrong tiles", func() {
		s.ResolveMatch(match.Chain{Type: red, Cells: column(4, 0, 3)})
	})
	expectPanic(t, "chain repeating a cell", func() {
		s.ResolveMatch(match.Chain{Type: red, Cells: []match.Cell{match.C(0, 0), match.C(0, 1), match.C(0, 0)}})
	})
	expectPanic(t, "chain leaving the board", func() {
		s.ResolveMatch(match.Chain{Type: red, Cells: []match.Cell{match.C(0, 0), match.C(0, 1), match.C(-1, 1)}})
	})
	if s.Busy() {
		t.Error("session left busy after a rejected resolution")
	}
	if s.Snapshot() != before {
		t.Errorf("rejected resolution changed the session: %+v, want %+v", s.Snapshot(), before)
	}
}

func TestAdminAdjustments(t *testing.T) {
	g := redBlueBoard(t)
	cfg := testConfig()
	cfg.MoveLimit = 2
	s, err := match.NewSessionWithGrid(cfg, g, constRNG(1))
	if err != nil {
		t.Fatalf("NewSessionWithGrid failed: %v", err)
	}

	if snap := s.AddScore(25); snap.Score != 25 || snap.GameOver {
		t.Errorf("AddScore(25) = %+v", snap)
	}
	if snap := s.AddMoves(3); snap.Moves != 5 {
		t.Errorf("AddMoves(3) moves = %d, want 5", snap.Moves)
	}

	// AddMoves never ends the session on its own; AddScore re-checks.
	if snap := s.AddMoves(-5); snap.Moves != 0 || snap.GameOver {
		t.Errorf("AddMoves(-5) = %+v", snap)
	}
	snap := s.AddScore(1)
	if !snap.GameOver || snap.Won {
		t.Errorf("AddScore with no moves left should lose, got %+v", snap)
	}
}

func TestRestart(t *testing.T) {
	c := newCatalog(t, "red", "blue")
	cfg := testConfig()
	cfg.MoveLimit = 1
	s, err := match.NewSession(cfg, c, seeded(9))
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	s.AddMoves(-1)
	s.AddScore(0)
	if !s.GameOver() {
		t.Fatal("session should be over")
	}

	bad := cfg
	bad.Width = 0
	if err := s.Restart(bad); err == nil {
		t.Error("Restart with invalid config should fail")
	}
	if !s.GameOver() {
		t.Error("failed Restart should leave the session untouched")
	}

	next := testConfig()
	next.Width, next.Height = 5, 6
	if err := s.Restart(next); err != nil {
		t.Fatalf("Restart failed: %v", err)
	}
	snap := s.Snapshot()
	if snap.GameOver || snap.Score != 0 || snap.Moves != next.MoveLimit || snap.Collected != 0 {
		t.Errorf("unexpected snapshot after restart %+v", snap)
	}
	if g := s.Grid(); g.Width() != 5 || g.Height() != 6 || g.EmptyCount() != 0 {
		t.Errorf("grid after restart %dx%d, %d empty", g.Width(), g.Height(), g.EmptyCount())
	}
}
