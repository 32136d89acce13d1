package match

// ScoreRules holds the scoring parameters.
type ScoreRules struct {
	PerGem          int // Points per cleared tile
	BonusThreshold  int // Tiles beyond this count earn the length bonus
	BonusMultiplier int // Extra multiples of PerGem for each bonus tile
}

// DefaultScoreRules returns the stock scoring parameters.
func DefaultScoreRules() ScoreRules {
	return ScoreRules{
		PerGem:          10,
		BonusThreshold:  3,
		BonusMultiplier: 2,
	}
}

// Score returns the points earned by clearing a chain of gems tiles.
// A target-type chain earns a second, flat gems*PerGem on top of the
// length bonus.
func (r ScoreRules) Score(gems int, isTarget bool) int {
	score := gems * r.PerGem
	bonusGems := max(0, gems-r.BonusThreshold)
	score += bonusGems * r.PerGem * r.BonusMultiplier
	if isTarget {
		score += gems * r.PerGem
	}
	return score
}
