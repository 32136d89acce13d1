package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gemlink/internal/platform/tui"
	"github.com/vovakirdan/gemlink/internal/storage"
)

var (
	flagScoresTUI    bool
	flagScoresRecent int
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [board]",
	Short: "Show high scores and win rate",
	Long: `Display the top 10 scores for a board size, its win statistics and
the most recent results. Without an argument every board size with
recorded scores is listed.

Examples:
  gemlink scores
  gemlink scores 8x8
  gemlink scores 6x6 --recent 5
  gemlink scores 8x8 --clear
  gemlink scores --tui`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores in the interactive scoreboard")
	scoresCmd.Flags().IntVar(&flagScoresRecent, "recent", 5, "How many recent results to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every score and result recorded for the board")
}

func runScores(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	mode := ""
	if len(args) == 1 {
		mode = args[0]
	}

	if flagScoresClear {
		return clearScores(store, mode, os.Stdout)
	}

	if flagScoresTUI {
		rt := runtimeConfig()
		_, err := tui.RunScoreboard(store, mode, rt.ScreenW, rt.ScreenH)
		return err
	}

	if mode == "" {
		return listModes(store)
	}
	return printScores(store, mode)
}

// clearScores wipes one board's history. A board must be named.
func clearScores(store *storage.Store, mode string, w io.Writer) error {
	if mode == "" {
		return errors.New("--clear needs a board, e.g. 'gemlink scores 8x8 --clear'")
	}
	stats, err := store.Stats(mode)
	if err != nil {
		return err
	}
	if err := store.ClearScores(mode); err != nil {
		return fmt.Errorf("error clearing scores: %w", err)
	}
	fmt.Fprintf(w, "Cleared %d results for the %s board.\n", stats.Games, mode)
	return nil
}

func listModes(store *storage.Store) error {
	modes, err := store.Modes()
	if err != nil {
		return err
	}
	if len(modes) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'gemlink play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-8s  %-6s  %-6s  %s\n", "Board", "Games", "Won", "Best")
	fmt.Printf("  %-8s  %-6s  %-6s  %s\n", "-----", "-----", "---", "----")
	for _, m := range modes {
		stats, err := store.Stats(m)
		if err != nil {
			return err
		}
		best, err := store.HighScore(m)
		if err != nil {
			return err
		}
		fmt.Printf("  %-8s  %-6d  %-6d  %d\n", m, stats.Games, stats.Wins, best)
	}
	fmt.Println()
	fmt.Println("Run 'gemlink scores <board>' for details.")
	return nil
}

func printScores(store *storage.Store, mode string) error {
	scores, err := store.TopScores(mode, 10)
	if err != nil {
		return fmt.Errorf("error retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s board\n", mode)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(mode)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d   Games: %d   Won: %d (%.0f%%)   Average: %.0f\n",
		stats.BestScore, stats.Games, stats.Wins, stats.WinRate()*100, stats.AvgScore)

	recent, err := store.RecentResults(mode, flagScoresRecent)
	if err != nil {
		return err
	}
	if len(recent) == 0 {
		return nil
	}
	fmt.Println()
	fmt.Println("Recent:")
	for _, r := range recent {
		outcome := "lost"
		if r.Won {
			outcome = "won "
		}
		fmt.Printf("  %s  %s  %6d  %d/%d %s  %d/%d moves\n",
			r.CreatedAt.Format("2006-01-02 15:04"), outcome, r.Score,
			min(r.Collected, r.Target), r.Target, r.Theme, r.MovesUsed, r.MoveLimit)
	}
	return nil
}
