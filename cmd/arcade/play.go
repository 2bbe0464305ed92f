package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vovakirdan/retro-arcade/internal/console"
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/platform/tui"
	"github.com/vovakirdan/retro-arcade/internal/registry"
	"github.com/vovakirdan/retro-arcade/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Frame game controls:
  Arrows/WASD  - Move, steer, rotate
  Space        - Jump, flap, shoot, launch, hard drop
  Enter        - Confirm, reveal, drop
  F            - Flag (minesweeper)
  1-9          - Pick a column (connect four)
  Mouse click  - Reveal or flip a cell
  P            - Pause
  R            - Restart
  B/Esc        - Leave a finished or paused game
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Text games read one line at a time; type q or quit to leave.

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  arcade play snake
  arcade play tetris --difficulty hard
  arcade play minesweeper --config ./minesweeper.toml
  arcade play yahtzee --seed 7`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	addTuningFlags(playCmd)
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]

	kind, ok := registry.KindOf(gameID)
	if !ok {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}

	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck // flushing a file logger on exit

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	if kind == registry.KindText {
		return playText(gameID, store, cfg, logger)
	}
	return playFrame(gameID, store, cfg, logger)
}

func playFrame(gameID string, store *storage.Store, cfg core.RuntimeConfig, logger *zap.Logger) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	if err := tui.Run(game, store, cfg, logger); err != nil {
		return fmt.Errorf("running %s: %w", gameID, err)
	}
	return nil
}

// playText runs a text game on stdin/stdout until the player leaves.
func playText(gameID string, store *storage.Store, cfg core.RuntimeConfig, logger *zap.Logger) error {
	game, err := registry.CreateText(gameID)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := []console.Option{console.WithSeed(cfg.Seed), console.WithLogger(logger)}
	if store != nil {
		opts = append(opts, console.WithScoreRecorder(store))
	}

	res, err := console.Run(ctx, game, os.Stdin, os.Stdout, opts...)
	if err != nil {
		return err
	}
	fmt.Printf("\nThanks for playing! Rounds: %d  Best: %d\n", res.Rounds, res.HighScore)
	return nil
}
