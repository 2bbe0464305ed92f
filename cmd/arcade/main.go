// arcade is a terminal arcade of retro-style frame games and text games.
//
// Usage:
//
//	arcade list                 - List available games
//	arcade play <game>          - Play a game
//	arcade menu                 - Start menu to pick games interactively
//	arcade serve                - Start SSH server for remote play
//	arcade sim <game>           - Run a game headless with scripted input
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--log <path>          - Diagnostics log file (default: ~/.arcade/logs/arcade.log)
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/logging"
	"github.com/vovakirdan/retro-arcade/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLog      string
	flagLogLevel string

	// Game tuning flags shared by play and menu
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Retro Arcade - Play classic games in your terminal",
	Long: `Retro Arcade collects small classic games: real-time frame games
(snake, tetris, breakout, ...) and line-oriented text games (blackjack,
hangman, yahtzee, ...).

High scores are kept for the lifetime of the process only.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  sim      - Run a game headless with scripted input

Examples:
  arcade list
  arcade play tetris
  arcade play blackjack
  arcade menu
  arcade serve --ssh :2222
  arcade sim snake --ticks 120 --script "right*5 . down"`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLog, "log", logging.DefaultPath(), "Diagnostics log file (empty disables logging)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
}

// addTuningFlags registers --config and --difficulty on cmd.
func addTuningFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to a custom game config (.yaml or .toml)")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// newLogger builds the diagnostics logger from the global flags.
func newLogger() (*zap.Logger, error) {
	return logging.New(logging.Options{Path: flagLog, Level: flagLogLevel})
}

// openStore opens the session score store. A failure is a warning: games
// still run, they just don't record scores.
func openStore(logger *zap.Logger) *storage.Store {
	store, err := storage.Open(storage.WithMigrationLogger(logging.NewGooseLogger(logger)))
	if err != nil {
		logging.Console("arcade").Warn("could not open score store, scores are disabled", "error", err)
		return nil
	}
	return store
}

// runtimeConfig sizes the screen from the terminal, falling back to 80x24.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:    width,
		ScreenH:    height,
		TickRate:   flagFPS,
		Seed:       flagSeed,
		ConfigPath: flagConfig,
		Difficulty: flagDifficulty,
	}
}
