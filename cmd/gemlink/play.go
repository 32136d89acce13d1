package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gemlink/internal/config"
	"github.com/vovakirdan/gemlink/internal/core"
	"github.com/vovakirdan/gemlink/internal/games/gemlink"
	"github.com/vovakirdan/gemlink/internal/platform/tui"
	"github.com/vovakirdan/gemlink/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a level",
	Long: `Start a level with the loaded configuration.

Controls:
  Mouse drag          - Press on a gem, drag through matching neighbours, release to clear
  Arrows/WASD/HJKL    - Move the cursor (extends the link while one is open)
  Y/U/B/N             - Move the cursor diagonally (links need diagonals allowed)
  Space/Enter         - Start a link at the cursor, or clear the open link
  Esc/X               - Drop the open link
  +                   - Five bonus moves
  R                   - Restart the level
  Ctrl+S              - Save a screenshot to ~/.gemlink/screenshots
  Q/Ctrl+C            - Quit

Retracing onto the previous gem shortens the link by one.

Presets:
  small    - 6x6 board, 12 moves, collect 10
  classic  - 8x8 board, 10 moves, collect 15
  large    - 10x9 board, 15 moves, collect 30

Examples:
  gemlink play
  gemlink play --preset small
  gemlink play --theme mono --seed 42
  GEMLINK_MOVES=20 gemlink play
  gemlink play --config ./my-gemlink.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("playing without score storage", "error", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	return playLevel(cfg, store, runtimeConfig(), logger)
}

// playLevel runs one game until the player quits.
func playLevel(cfg config.GemLinkConfig, store *storage.Store, rt core.RuntimeConfig, logger *log.Logger) error {
	game, err := gemlink.New(cfg, logger)
	if err != nil {
		return fmt.Errorf("cannot start game: %w", err)
	}
	logger.Debug("config loaded", "source", cfg.Source, "board", game.Mode(), "theme", game.Theme().ID)

	if err := tui.Run(game, store, rt, logger); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
