package match

import "sync"

// Snapshot is a point-in-time view of the session counters.
type Snapshot struct {
	Score      int
	Moves      int
	MoveLimit  int
	Collected  int
	Target     int
	TargetType TileType
	Progress   float64 // Collected/Target, capped at 1
	GameOver   bool
	Won        bool
}

// Terminal summarizes a finished session.
type Terminal struct {
	Won        bool
	FinalScore int
	Collected  int
	Target     int
}

// MatchResult is returned by a successful ResolveMatch.
type MatchResult struct {
	Gems      int
	Earned    int
	IsTarget  bool
	Score     int
	Moves     int
	Collected int
	Effects   EffectLog
	Terminal  *Terminal // Non-nil when this match ended the session
}

// Session owns the grid and the score, move and target counters.
// All methods are safe for concurrent use; operations are serialized.
type Session struct {
	mu      sync.Mutex
	cfg     Config
	catalog *Catalog
	rng     RNG
	grid    *Grid

	score      int
	moves      int
	collected  int
	targetType TileType
	gameOver   bool
	won        bool
}

// NewSession validates cfg, builds a random grid and starts a fresh session.
func NewSession(cfg Config, catalog *Catalog, rng RNG) (*Session, error) {
	s := &Session{catalog: catalog, rng: rng}
	if err := s.restart(cfg); err != nil {
		return nil, err
	}
	return s, nil
}

// NewSessionWithGrid starts a session on a prepared grid.
// The grid dimensions override cfg.Width and cfg.Height.
func NewSessionWithGrid(cfg Config, grid *Grid, rng RNG) (*Session, error) {
	cfg.Width, cfg.Height = grid.Width(), grid.Height()
	if err := cfg.Validate(grid.Catalog()); err != nil {
		return nil, err
	}
	s := &Session{catalog: grid.Catalog(), rng: rng, cfg: cfg, grid: grid}
	s.reset()
	return s, nil
}

// Restart reloads cfg, rebuilds the grid and resets every counter.
// An invalid cfg leaves the session unchanged.
func (s *Session) Restart(cfg Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.restart(cfg)
}

func (s *Session) restart(cfg Config) error {
	if err := cfg.Validate(s.catalog); err != nil {
		return err
	}
	grid, err := NewGrid(cfg.Width, cfg.Height, s.catalog, s.rng)
	if err != nil {
		return err
	}
	s.cfg = cfg
	s.grid = grid
	s.reset()
	return nil
}

func (s *Session) reset() {
	s.score = 0
	s.collected = 0
	s.moves = s.cfg.MoveLimit
	s.gameOver = false
	s.won = false
	s.pickTarget()
}

func (s *Session) pickTarget() {
	if t, ok := s.catalog.At(s.cfg.TargetTypeIndex); ok {
		s.targetType = t
		return
	}
	s.targetType = s.catalog.Random(s.rng)
}

// ResolveMatch applies a committed chain: scoring, move use, target progress,
// then clear, gravity and refill. ok is false when the session is over or the
// chain is shorter than the minimum, in which case nothing changes.
// A chain whose cells do not all hold its type, or that repeats a cell,
// panics and leaves the session untouched.
func (s *Session) ResolveMatch(chain Chain) (MatchResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gameOver || chain.Len() < s.cfg.MinMatchCount {
		return MatchResult{}, false
	}
	// Validate every cell before any counter moves.
	seen := make(map[Cell]bool, chain.Len())
	for _, c := range chain.Cells {
		if t, ok := s.grid.TileAt(c); !ok || t != chain.Type {
			misuse("chain cell %v holds %d, want %d", c, t, chain.Type)
		}
		if seen[c] {
			misuse("chain repeats cell %v", c)
		}
		seen[c] = true
	}
	if !s.grid.acquire() {
		misuse("resolve while another resolution is running")
	}
	defer s.grid.release()

	gems := chain.Len()
	isTarget := chain.Type == s.targetType
	earned := s.cfg.Scoring.Score(gems, isTarget)
	s.score += earned
	s.moves--
	if isTarget {
		s.collected += gems
	}

	cleared := make([]Cell, gems)
	copy(cleared, chain.Cells)
	s.grid.Clear(cleared)
	effects := EffectLog{Cleared: cleared}
	effects.Fallen = s.grid.Gravity()
	effects.Spawned = s.grid.Refill(s.rng)

	s.checkEnd()

	res := MatchResult{
		Gems:      gems,
		Earned:    earned,
		IsTarget:  isTarget,
		Score:     s.score,
		Moves:     s.moves,
		Collected: s.collected,
		Effects:   effects,
	}
	if s.gameOver {
		t := s.terminal()
		res.Terminal = &t
	}
	return res, true
}

// checkEnd evaluates the win condition before the loss condition.
func (s *Session) checkEnd() {
	switch {
	case s.collected >= s.cfg.TargetGemCount:
		s.gameOver, s.won = true, true
	case s.moves <= 0:
		s.gameOver, s.won = true, false
	}
}

// AddMoves grants n extra moves. It does nothing once the session is over.
func (s *Session) AddMoves(n int) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.gameOver {
		s.moves += n
	}
	return s.snapshot()
}

// AddScore grants n points and re-evaluates the end condition.
// It does nothing once the session is over.
func (s *Session) AddScore(n int) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.gameOver {
		s.score += n
		s.checkEnd()
	}
	return s.snapshot()
}

// Snapshot returns the current counters.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Session) snapshot() Snapshot {
	progress := float64(s.collected) / float64(s.cfg.TargetGemCount)
	if progress > 1 {
		progress = 1
	}
	return Snapshot{
		Score:      s.score,
		Moves:      s.moves,
		MoveLimit:  s.cfg.MoveLimit,
		Collected:  s.collected,
		Target:     s.cfg.TargetGemCount,
		TargetType: s.targetType,
		Progress:   progress,
		GameOver:   s.gameOver,
		Won:        s.won,
	}
}

// Terminal returns the final summary once the session is over.
func (s *Session) Terminal() (Terminal, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.terminal(), s.gameOver
}

func (s *Session) terminal() Terminal {
	return Terminal{
		Won:        s.won,
		FinalScore: s.score,
		Collected:  s.collected,
		Target:     s.cfg.TargetGemCount,
	}
}

// GameOver reports whether the session has ended.
func (s *Session) GameOver() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gameOver
}

// Busy reports whether chain gestures must be refused: a resolution is
// running or the session is over.
func (s *Session) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gameOver || s.grid.Busy()
}

// TileAt returns the tile at c on the live grid.
func (s *Session) TileAt(c Cell) (TileType, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.TileAt(c)
}

// IsTarget reports whether t is the tile type to collect.
func (s *Session) IsTarget(t TileType) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return t == s.targetType
}

// TargetType returns the tile type to collect.
func (s *Session) TargetType() TileType {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.targetType
}

// Grid returns a copy of the current grid.
func (s *Session) Grid() *Grid {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.Clone()
}

// Config returns the active config.
func (s *Session) Config() Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

// Catalog returns the tile catalog.
func (s *Session) Catalog() *Catalog {
	return s.catalog
}

// NewChainBuilder returns a builder bound to this session and its rules.
func (s *Session) NewChainBuilder() *ChainBuilder {
	cfg := s.Config()
	return NewChainBuilder(s, cfg.MinMatchCount, cfg.Adjacency)
}
