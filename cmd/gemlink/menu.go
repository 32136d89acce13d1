package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gemlink/internal/platform/tui"
	"github.com/vovakirdan/gemlink/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick board, theme and links, then play",
	Long: `Start Gem Link in interactive menu mode.

Choose a board preset, a tile theme and whether diagonal links are
allowed, then play. Quitting a level returns you to the menu.

Controls:
  Up/Down/j/k     - Navigate menu
  Left/Right/h/l  - Change the option
  Enter/Space     - Select
  Tab             - High scores
  Q/Esc           - Quit

Examples:
  gemlink menu
  gemlink menu --fps 30
  gemlink menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	base, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("playing without score storage", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	rt := runtimeConfig()
	mode := fmt.Sprintf("%dx%d", base.Board.Width, base.Board.Height)

	// Menu loop
	for {
		res, err := tui.RunMenu(base, rt)
		if err != nil {
			return err
		}
		rt = res.Config

		switch {
		case res.Quit:
			return nil

		case res.WantsScoreboard:
			goBack, err := tui.RunScoreboard(store, mode, rt.ScreenW, rt.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}

		case res.Play:
			// Keep the player's choices for the next round.
			base = res.Game
			mode = fmt.Sprintf("%dx%d", base.Board.Width, base.Board.Height)
			if flagSeed == 0 {
				rt.Seed = time.Now().UnixNano()
			}
			if err := playLevel(base, store, rt, logger); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				logger.Error("level failed", "error", err)
			}
		}
	}
}
