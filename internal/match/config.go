package match

import "fmt"

// Config holds the immutable rule values for one session.
type Config struct {
	Width          int
	Height         int
	MoveLimit      int
	TargetGemCount int
	MinMatchCount  int
	Scoring        ScoreRules
	// TargetTypeIndex selects the target tile by catalog index.
	// Negative or out-of-range values pick one at random.
	TargetTypeIndex int
	Adjacency       Adjacency
}

// DefaultConfig returns the classic 8x8 level.
func DefaultConfig() Config {
	return Config{
		Width:           8,
		Height:          8,
		MoveLimit:       10,
		TargetGemCount:  15,
		MinMatchCount:   3,
		Scoring:         DefaultScoreRules(),
		TargetTypeIndex: -1,
		Adjacency:       Adjacency8,
	}
}

// Validate checks the config against a catalog.
func (c Config) Validate(catalog *Catalog) error {
	if err := validateBoard(c.Width, c.Height, catalog); err != nil {
		return err
	}
	if c.MinMatchCount < 1 {
		return ConfigError{Code: CodeBadMinMatch, Message: fmt.Sprintf("min match count %d must be at least 1", c.MinMatchCount)}
	}
	if c.MoveLimit < 1 {
		return ConfigError{Code: CodeBadMoveLimit, Message: fmt.Sprintf("move limit %d must be at least 1", c.MoveLimit)}
	}
	if c.TargetGemCount < 1 {
		return ConfigError{Code: CodeBadTarget, Message: fmt.Sprintf("target gem count %d must be at least 1", c.TargetGemCount)}
	}
	s := c.Scoring
	if s.PerGem < 0 || s.BonusThreshold < 0 || s.BonusMultiplier < 0 {
		return ConfigError{Code: CodeBadScoring, Message: fmt.Sprintf("scoring values must not be negative: %+v", s)}
	}
	if !c.Adjacency.Valid() {
		return ConfigError{Code: CodeBadAdjacency, Message: fmt.Sprintf("adjacency %d must be 4 or 8", int(c.Adjacency))}
	}
	return nil
}
