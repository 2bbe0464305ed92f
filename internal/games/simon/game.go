// Package simon implements Simon Says: watch a growing sequence of four
// colored buttons flash, then repeat it.
package simon

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/registry"
)

// Buttons is the number of pads. They are numbered 1..Buttons on screen
// and 0..Buttons-1 internally.
const Buttons = 4

// Timings in ticks.
const (
	StartDelay = 60 // Before the first flash of a round
	FlashTicks = 20 // How long a pad stays lit
	NextRound  = 50 // Pause after a correct sequence
	MaxGap     = 40 // Gap between flashes at score 0
	MinGap     = 20
)

const (
	padW   = 14
	padH   = 5
	padGap = 2
	boardY = 3
	minW   = 2*padW + padGap + 2
	minH   = boardY + 2*padH + padGap + 3
)

// Lit and unlit pad fill.
const (
	LitChar = '█'
	DimChar = '▒'
)

var padColors = [Buttons]core.Color{core.ColorBrightRed, core.ColorBrightGreen, core.ColorBrightBlue, core.ColorBrightYellow}

type mode int

const (
	modeShowing mode = iota
	modeInput
	modeWaiting
)

// Game implements Simon Says. Showing and the pause between rounds run
// in PhaseResolving; the player's turn is PhaseActive.
type Game struct {
	rng   *rand.Rand
	phase core.PhaseMachine
	sess  core.Session

	sequence []int
	entered  int
	mode     mode
	timer    int
	showIdx  int
	lit      int // Pad currently flashing, or -1
	litTicks int

	boardX   int
	paused   bool
	tooSmall bool
	tick     uint64
}

// New creates a new Simon Says game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return "simon" }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Simon Says" }

// Reset starts a new game with an empty sequence.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.sess.Reset()
	g.phase.Reset(core.PhaseActive)
	g.sequence = g.sequence[:0]
	g.lit = -1
	g.litTicks = 0
	g.paused = false
	g.tick = 0
	g.boardX = (cfg.ScreenW - (2*padW + padGap)) / 2
	g.tooSmall = cfg.ScreenW < minW || cfg.ScreenH < minH
	g.nextRound()
}

// nextRound extends the sequence by one pad and starts showing it.
func (g *Game) nextRound() {
	g.sequence = append(g.sequence, g.rng.Intn(Buttons))
	g.entered = 0
	g.showIdx = 0
	g.mode = modeShowing
	g.timer = StartDelay
	_ = g.phase.Transition(core.PhaseResolving)
}

// gap is the pause between flashes. It shrinks as the score grows.
func (g *Game) gap() int {
	return max(MinGap, MaxGap-g.sess.Score()*2)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.phase.Terminal() {
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}
	g.tick++

	if g.litTicks > 0 {
		g.litTicks--
		if g.litTicks == 0 {
			g.lit = -1
		}
	}

	switch g.mode {
	case modeShowing:
		g.timer--
		if g.timer > 0 {
			break
		}
		if g.showIdx < len(g.sequence) {
			g.flash(g.sequence[g.showIdx])
			g.showIdx++
			g.timer = g.gap()
			break
		}
		g.mode = modeInput
		_ = g.phase.Transition(core.PhaseActive)
	case modeWaiting:
		g.timer--
		if g.timer <= 0 {
			g.nextRound()
		}
	case modeInput:
		for _, ev := range in.Events() {
			if !g.phase.Is(core.PhaseActive) {
				break
			}
			switch ev.Action {
			case core.ActionDigit:
				if ev.Digit >= 1 && ev.Digit <= Buttons {
					g.Press(ev.Digit - 1)
				}
			case core.ActionPointer:
				if b, ok := g.padAt(ev.X, ev.Y); ok {
					g.Press(b)
				}
			}
		}
	}
	return core.StepResult{State: g.State()}
}

// Press enters pad b (0-based) during the player's turn. A wrong pad ends
// the game; completing the sequence scores a point.
func (g *Game) Press(b int) {
	if g.mode != modeInput || !g.phase.Is(core.PhaseActive) || b < 0 || b >= Buttons {
		return
	}
	g.flash(b)
	if g.sequence[g.entered] != b {
		_ = g.phase.Transition(core.PhaseGameOver)
		g.sess.Finalize()
		return
	}
	g.entered++
	if g.entered < len(g.sequence) {
		return
	}
	g.sess.Add(1)
	g.mode = modeWaiting
	g.timer = NextRound
	_ = g.phase.Transition(core.PhaseResolving)
}

func (g *Game) flash(b int) {
	g.lit = b
	g.litTicks = FlashTicks
}

// padRect returns the screen rectangle of pad b. Pads sit in a 2x2 block.
func (g *Game) padRect(b int) core.Rect {
	x := g.boardX + (b%2)*(padW+padGap)
	y := boardY + (b/2)*(padH+padGap)
	return core.NewRect(x, y, padW, padH)
}

func (g *Game) padAt(x, y int) (int, bool) {
	for b := range Buttons {
		r := g.padRect(b)
		if x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom() {
			return b, true
		}
	}
	return 0, false
}

// Sequence returns a copy of the pads to repeat, 0-based.
func (g *Game) Sequence() []int {
	return append([]int(nil), g.sequence...)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.sess.Score(),
		HighScore: g.sess.HighScore(),
		Phase:     g.phase.Phase(),
		Paused:    g.paused,
	}
}

// Render draws the four pads and the status line.
func (g *Game) Render(dst *core.Screen) {
	if g.tooSmall {
		dst.DrawMessage("Window too small", fmt.Sprintf("Need at least %dx%d", minW, minH))
		return
	}

	dst.DrawTextCentered(0, "SIMON SAYS")
	dst.DrawTextCentered(1, fmt.Sprintf("Score: %d  Best: %d", g.sess.Score(), g.sess.HighScore()))

	for b := range Buttons {
		r := g.padRect(b)
		ch, color := DimChar, core.ColorGray
		if b == g.lit {
			ch, color = LitChar, padColors[b]
		}
		for y := r.Y; y < r.Bottom(); y++ {
			for x := r.X; x < r.Right(); x++ {
				dst.SetWithColor(x, y, ch, color)
			}
		}
		dst.SetWithColor(r.X+r.W/2, r.Y+r.H/2, rune('1'+b), core.ColorBrightWhite)
	}

	status := "Watch carefully..."
	switch {
	case g.phase.Is(core.PhaseGameOver):
		status = "Game Over! Press R"
	case g.mode == modeInput:
		status = fmt.Sprintf("Your turn! %d/%d", g.entered, len(g.sequence))
	case g.mode == modeWaiting:
		status = "Correct!"
	}
	dst.DrawTextCentered(boardY+2*padH+padGap+1, status)

	switch {
	case g.phase.Is(core.PhaseGameOver):
		dst.DrawMessage("WRONG PAD", fmt.Sprintf("Sequence length %d  |  Press R to restart", len(g.sequence)))
	case g.paused:
		dst.DrawMessage("PAUSED", "Press P to resume")
	}
}

// Snapshot captures the game for determinism tests.
type Snapshot struct {
	Tick     uint64
	Phase    core.Phase
	Score    int
	Sequence []int
	Entered  int
	Timer    int
	Lit      int
	Paused   bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.tick,
		Phase:    g.phase.Phase(),
		Score:    g.sess.Score(),
		Sequence: g.Sequence(),
		Entered:  g.entered,
		Timer:    g.timer,
		Lit:      g.lit,
		Paused:   g.paused,
	}
}

func init() {
	registry.Register("simon", func() registry.Game {
		return New()
	})
}
