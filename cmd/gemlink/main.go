// gemlink is a terminal link puzzle: drag through matching gems, clear them,
// and collect the target gem before the moves run out.
//
// Usage:
//
//	gemlink play             - Play a level with the loaded config
//	gemlink menu             - Pick board, theme and links interactively
//	gemlink scores [board]   - Show high scores and win rate
//	gemlink themes           - List tile themes
//	gemlink config           - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible boards
//	--db <path>          - Set database path (default: ~/.gemlink/scores.db)
//	--config <path>      - Use a specific config file
//	--log-level <level>  - debug, info, warn, error
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagEnvFile  string
	flagPreset   string
	flagTheme    string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gemlink",
	Short: "Gem Link - a link-matching puzzle for the terminal",
	Long: `Gem Link is a puzzle played on a grid of gems. Drag a path through
adjacent gems of one kind and release to clear them; the rest fall down
and new gems drop in. Collect enough of the target gem before you run
out of moves.

Available commands:
  play     - Play a level
  menu     - Interactive setup menu
  scores   - View high scores
  themes   - List tile themes
  config   - Print the effective configuration

Examples:
  gemlink play
  gemlink play --preset large --theme fruits
  gemlink menu
  gemlink scores 8x8
  gemlink config > ~/.gemlink/configs/gemlink.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.gemlink/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to a gemlink.yaml config")
	pf.StringVar(&flagEnvFile, "env-file", "", "Path to a .env file with GEMLINK_* overrides (default ./.env if present)")
	pf.StringVar(&flagPreset, "preset", "", "Board preset: small, classic, large")
	pf.StringVar(&flagTheme, "theme", "", "Tile theme ID (see 'gemlink themes')")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file (interactive commands log nowhere otherwise)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(configCmd)
}
