package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/retro-arcade/internal/console"
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/engine"
	"github.com/vovakirdan/retro-arcade/internal/platform/tui"
	"github.com/vovakirdan/retro-arcade/internal/registry"
)

var (
	flagSimTicks    int
	flagSimScript   string
	flagSimEvery    int
	flagSimWidth    int
	flagSimHeight   int
	flagSimRealtime bool
	flagSimColor    bool
)

var simCmd = &cobra.Command{
	Use:   "sim <game>",
	Short: "Run a game headless with scripted input",
	Long: `Run a game without a terminal UI and print its frames.

For frame games the script lists one step per tick: "." for no input,
action names joined with "+", "*N" to repeat a step, digits 1-9, and
"click:X:Y" for a mouse click. Actions: up down left right jump confirm
flag pause restart back quit.

For text games the script is the input lines, separated by ";".

By default only the final frame is printed; --every N prints every Nth.

Examples:
  arcade sim snake --ticks 120 --script "right*5 . down*3"
  arcade sim tetris --seed 42 --script "left*3 jump" --every 10
  arcade sim minesweeper --script "click:40:8"
  arcade sim guess --seed 1 --script "2;50;25"`,
	Args: cobra.ExactArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 600, "Number of ticks to simulate")
	simCmd.Flags().StringVar(&flagSimScript, "script", "", "Scripted input")
	simCmd.Flags().IntVar(&flagSimEvery, "every", 0, "Print every Nth frame (0 = final frame only)")
	simCmd.Flags().IntVar(&flagSimWidth, "width", 80, "Screen width")
	simCmd.Flags().IntVar(&flagSimHeight, "height", 24, "Screen height")
	simCmd.Flags().BoolVar(&flagSimRealtime, "realtime", false, "Pace ticks at --fps instead of running flat out")
	simCmd.Flags().BoolVar(&flagSimColor, "color", false, "Keep colors when stdout is a terminal")
	addTuningFlags(simCmd)
}

func runSim(cmd *cobra.Command, args []string) error {
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

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()

	if kind == registry.KindText {
		game, err := registry.CreateText(gameID)
		if err != nil {
			return err
		}
		in := strings.NewReader(strings.ReplaceAll(flagSimScript, ";", "\n"))
		res, err := console.Run(ctx, game, in, out,
			console.WithSeed(flagSeed),
			console.WithLogger(logger),
		)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\nrounds=%d last=%d best=%d\n", res.Rounds, res.LastScore, res.HighScore)
		return nil
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	script, err := engine.ParseScript(flagSimScript)
	if err != nil {
		return err
	}

	cfg := core.RuntimeConfig{
		ScreenW:    flagSimWidth,
		ScreenH:    flagSimHeight,
		TickRate:   flagFPS,
		Seed:       flagSeed,
		ConfigPath: flagConfig,
		Difficulty: flagDifficulty,
	}
	ctrl := engine.NewController(game, cfg, engine.WithLogger(logger))

	final := &lastFrame{}
	var sink engine.Sink = final
	opts := []engine.LoopOption{engine.WithMaxTicks(flagSimTicks)}
	if flagSimEvery > 0 {
		sink = frameSink(out)
		opts = append(opts, engine.WithPresentEvery(flagSimEvery))
	} else {
		opts = append(opts, engine.WithPresentEvery(flagSimTicks+1))
	}
	if flagSimRealtime {
		opts = append(opts, engine.WithClock(engine.NewClock(flagFPS)))
	}

	state, err := engine.NewLoop(ctrl, script, sink, opts...).Run(ctx)
	if err != nil {
		return err
	}
	if final.frame != nil {
		if err := frameSink(out).Present(final.frame); err != nil {
			return err
		}
	}
	fmt.Fprintf(out, "phase=%s score=%d high=%d ticks=%d rounds=%d\n",
		state.Phase, state.Score, state.HighScore, ctrl.Ticks(), ctrl.Rounds())
	return nil
}

// frameSink picks a colored sink for terminals when --color is set.
func frameSink(w io.Writer) engine.Sink {
	if f, ok := w.(*os.File); ok && flagSimColor && term.IsTerminal(int(f.Fd())) {
		return tui.NewStyledSink(w)
	}
	return engine.NewWriterSink(w)
}

// lastFrame keeps a copy of the most recent frame.
type lastFrame struct {
	frame *core.Screen
}

func (l *lastFrame) Present(s *core.Screen) error {
	if l.frame == nil {
		l.frame = core.NewScreen(s.Width(), s.Height())
	}
	for y := range s.Height() {
		for x := range s.Width() {
			c := s.GetCell(x, y)
			l.frame.SetWithColor(x, y, c.Rune, c.Color)
		}
	}
	return nil
}
