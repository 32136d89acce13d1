// Package config provides YAML-based configuration loading, .env and
// environment overrides, and board presets for Gem Link.
package config

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/gemlink/internal/core"
	"github.com/vovakirdan/gemlink/internal/match"
	"github.com/vovakirdan/gemlink/internal/registry"
)

// GemLinkConfig contains all configuration for a Gem Link session.
type GemLinkConfig struct {
	Board    BoardConfig    `yaml:"board"`
	Rules    RulesConfig    `yaml:"rules"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	Theme    string         `yaml:"theme"`
	Playback PlaybackConfig `yaml:"playback"`
	Themes   []ThemeConfig  `yaml:"themes"`

	// Source records where the config was loaded from.
	Source string `yaml:"-"`
}

// BoardConfig defines the grid.
type BoardConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	Adjacency int `yaml:"adjacency"` // 4 or 8
}

// RulesConfig defines moves, target and link length.
type RulesConfig struct {
	MoveLimit       int `yaml:"move_limit"`
	TargetGemCount  int `yaml:"target_gem_count"`
	MinMatchCount   int `yaml:"min_match_count"`
	TargetTypeIndex int `yaml:"target_type_index"` // Negative = random
}

// ScoringConfig defines points per match.
type ScoringConfig struct {
	ScorePerGem     int `yaml:"score_per_gem"`
	BonusThreshold  int `yaml:"bonus_threshold"`
	BonusMultiplier int `yaml:"bonus_multiplier"`
}

// PlaybackConfig defines effect animation timing in ticks.
type PlaybackConfig struct {
	ClearTicks      int `yaml:"clear_ticks"`       // Highlight before cleared tiles vanish
	FallTicks       int `yaml:"fall_ticks"`        // Base duration of one fall
	FallDelayTicks  int `yaml:"fall_delay_ticks"`  // Extra duration per row fallen
	SpawnDelayTicks int `yaml:"spawn_delay_ticks"` // Stagger between spawns in one column
}

// ThemeConfig declares a custom tile set.
type ThemeConfig struct {
	ID    string       `yaml:"id"`
	Title string       `yaml:"title"`
	Tiles []TileConfig `yaml:"tiles"`
}

// TileConfig declares one tile of a custom theme.
type TileConfig struct {
	Name  string `yaml:"name"`
	Glyph string `yaml:"glyph"`
	Color string `yaml:"color"`
}

// ToMatchConfig converts to the core rule values.
func (c GemLinkConfig) ToMatchConfig() match.Config {
	return match.Config{
		Width:          c.Board.Width,
		Height:         c.Board.Height,
		MoveLimit:      c.Rules.MoveLimit,
		TargetGemCount: c.Rules.TargetGemCount,
		MinMatchCount:  c.Rules.MinMatchCount,
		Scoring: match.ScoreRules{
			PerGem:          c.Scoring.ScorePerGem,
			BonusThreshold:  c.Scoring.BonusThreshold,
			BonusMultiplier: c.Scoring.BonusMultiplier,
		},
		TargetTypeIndex: c.Rules.TargetTypeIndex,
		Adjacency:       match.Adjacency(c.Board.Adjacency),
	}
}

// ToTheme converts a custom theme declaration.
func (t ThemeConfig) ToTheme() (registry.Theme, error) {
	theme := registry.Theme{ID: t.ID, Title: t.Title}
	for i, tc := range t.Tiles {
		glyph, size := utf8.DecodeRuneInString(tc.Glyph)
		if glyph == utf8.RuneError || size != len(tc.Glyph) {
			return theme, fmt.Errorf("config: theme %q tile %d: glyph %q must be a single character", t.ID, i, tc.Glyph)
		}
		color, ok := core.ParseColor(tc.Color)
		if !ok {
			return theme, fmt.Errorf("config: theme %q tile %d: unknown color %q", t.ID, i, tc.Color)
		}
		theme.Tiles = append(theme.Tiles, registry.Tile{Name: tc.Name, Glyph: glyph, Color: color})
	}
	return theme, nil
}

// RegisterThemes adds the custom themes to the registry.
// Themes whose ID is already registered are skipped.
func (c GemLinkConfig) RegisterThemes() error {
	for _, tc := range c.Themes {
		if registry.Exists(tc.ID) {
			continue
		}
		theme, err := tc.ToTheme()
		if err != nil {
			return err
		}
		if err := registry.Add(theme); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	return nil
}

// Resolve registers custom themes, looks up the selected theme and validates
// the rules against its catalog.
func (c GemLinkConfig) Resolve() (match.Config, registry.Theme, *match.Catalog, error) {
	if err := c.RegisterThemes(); err != nil {
		return match.Config{}, registry.Theme{}, nil, err
	}

	id := c.Theme
	if id == "" {
		id = registry.DefaultTheme
	}
	theme, err := registry.Get(id)
	if err != nil {
		return match.Config{}, registry.Theme{}, nil, fmt.Errorf("config: %w", err)
	}
	catalog, err := theme.Catalog()
	if err != nil {
		return match.Config{}, registry.Theme{}, nil, fmt.Errorf("config: %w", err)
	}

	mc := c.ToMatchConfig()
	if err := mc.Validate(catalog); err != nil {
		return match.Config{}, registry.Theme{}, nil, fmt.Errorf("config: %w", err)
	}
	if err := c.Playback.Validate(); err != nil {
		return match.Config{}, registry.Theme{}, nil, err
	}
	return mc, theme, catalog, nil
}

// Validate rejects negative timings.
func (p PlaybackConfig) Validate() error {
	if p.ClearTicks < 0 || p.FallTicks < 0 || p.FallDelayTicks < 0 || p.SpawnDelayTicks < 0 {
		return fmt.Errorf("config: playback ticks must not be negative: %+v", p)
	}
	return nil
}
