package config

import "fmt"

// Preset represents a named board layout.
type Preset string

const (
	PresetSmall   Preset = "small"
	PresetClassic Preset = "classic"
	PresetLarge   Preset = "large"
)

// Presets lists the known presets in display order.
func Presets() []Preset {
	return []Preset{PresetSmall, PresetClassic, PresetLarge}
}

// ApplyPreset modifies the board and rules based on a preset.
// An empty preset leaves the config unchanged.
func ApplyPreset(cfg *GemLinkConfig, preset Preset) error {
	switch preset {
	case "":
		return nil
	case PresetSmall:
		cfg.Board.Width, cfg.Board.Height = 6, 6
		cfg.Rules.MoveLimit = 12
		cfg.Rules.TargetGemCount = 10
	case PresetClassic:
		cfg.Board.Width, cfg.Board.Height = 8, 8
		cfg.Rules.MoveLimit = 10
		cfg.Rules.TargetGemCount = 15
	case PresetLarge:
		cfg.Board.Width, cfg.Board.Height = 10, 9
		cfg.Rules.MoveLimit = 15
		cfg.Rules.TargetGemCount = 30
	default:
		return fmt.Errorf("config: unknown preset %q (want small, classic or large)", preset)
	}
	return nil
}
