package config

import (
	_ "embed"

	"github.com/vovakirdan/gemlink/internal/registry"
)

//go:embed defaults/gemlink.yaml
var defaultGemLinkYAML []byte

// DefaultGemLinkConfig returns the built-in configuration: the classic 8x8
// board, 10 moves, 15 target gems, links of 3 or more with diagonals allowed.
func DefaultGemLinkConfig() GemLinkConfig {
	return GemLinkConfig{
		Board: BoardConfig{
			Width:     8,
			Height:    8,
			Adjacency: 8,
		},
		Rules: RulesConfig{
			MoveLimit:       10,
			TargetGemCount:  15,
			MinMatchCount:   3,
			TargetTypeIndex: -1,
		},
		Scoring: ScoringConfig{
			ScorePerGem:     10,
			BonusThreshold:  3,
			BonusMultiplier: 2,
		},
		Theme: registry.DefaultTheme,
		Playback: PlaybackConfig{
			ClearTicks:      15,
			FallTicks:       12,
			FallDelayTicks:  3,
			SpawnDelayTicks: 6,
		},
		Source: "built-in",
	}
}
