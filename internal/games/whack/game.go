// Package whack implements Whack-a-Mole.
// Moles pop out of nine holes; hit them before they duck back down.
package whack

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/registry"
)

const (
	holeW  = 12
	holeH  = 5
	boardY = 3
	minW   = Size*holeW + 2
	minH   = boardY + Size*holeH + 2
)

const moleFace = "(o.o)"

// Game implements the Whack-a-Mole game logic.
type Game struct {
	cfg   config.WhackConfig
	diff  *config.DifficultyManager
	phase core.PhaseMachine
	sess  core.Session

	moles     *MoleManager
	cursor    core.Point
	timeLeft  int // Ticks until the round ends
	escaped   int
	tickRate  int
	boardX    int
	paused    bool
	tooSmall  bool
	tickCount int
}

// New creates a new Whack-a-Mole game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return "whack" }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Whack-a-Mole" }

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	preset, _ := config.ParsePreset(runtime.Difficulty)
	cfg, err := config.LoadWhack(runtime.ConfigPath, preset)
	if err != nil {
		cfg = config.DefaultWhackConfig()
		config.ApplyWhackPreset(&cfg, preset)
	}
	if cfg.Round.Ticks <= 0 {
		cfg.Round = config.DefaultWhackConfig().Round
	}
	cfg.Moles.SpawnInterval = max(cfg.Moles.SpawnInterval, 1)

	g.cfg = cfg
	g.diff = config.NewDifficultyManager(cfg.Difficulty)
	g.moles = NewMoleManager(rand.New(rand.NewSource(runtime.Seed)), cfg.Moles, g.diff)
	g.cursor = core.Point{X: Size / 2, Y: Size / 2}
	g.timeLeft = cfg.Round.Ticks
	g.escaped = 0
	g.tickRate = runtime.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}
	g.boardX = (runtime.ScreenW - Size*holeW) / 2
	g.tooSmall = runtime.ScreenW < minW || runtime.ScreenH < minH
	g.paused = false
	g.tickCount = 0
	g.sess.Reset()
	g.phase.Reset(core.PhaseActive)
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
	g.tickCount++

	for _, ev := range in.Events() {
		switch ev.Action {
		case core.ActionUp:
			g.moveCursor(core.Up)
		case core.ActionDown:
			g.moveCursor(core.Down)
		case core.ActionLeft:
			g.moveCursor(core.Left)
		case core.ActionRight:
			g.moveCursor(core.Right)
		case core.ActionConfirm, core.ActionJump:
			g.Whack(g.cursor.Y*Size + g.cursor.X)
		case core.ActionDigit:
			if ev.Digit >= 1 && ev.Digit <= Holes {
				h := ev.Digit - 1
				g.cursor = core.Point{X: h % Size, Y: h / Size}
				g.Whack(h)
			}
		case core.ActionPointer:
			if h, ok := g.holeAt(ev.X, ev.Y); ok {
				g.cursor = core.Point{X: h % Size, Y: h / Size}
				g.Whack(h)
			}
		}
	}

	g.escaped += g.moles.Update(g.sess.Score(), g.tickCount)

	g.timeLeft--
	if g.timeLeft <= 0 {
		_ = g.phase.Transition(core.PhaseGameOver)
		g.sess.Finalize()
	}
	return core.StepResult{State: g.State()}
}

func (g *Game) moveCursor(d core.Point) {
	p := g.cursor.Add(d)
	g.cursor = core.Point{X: core.Clamp(p.X, 0, Size-1), Y: core.Clamp(p.Y, 0, Size-1)}
}

// Whack hits hole h. An empty hole is a harmless miss.
func (g *Game) Whack(h int) bool {
	if !g.phase.Is(core.PhaseActive) || h < 0 || h >= Holes {
		return false
	}
	if !g.moles.Whack(h) {
		return false
	}
	g.sess.Add(g.cfg.Moles.Points)
	return true
}

func (g *Game) holeRect(h int) core.Rect {
	return core.NewRect(g.boardX+(h%Size)*holeW, boardY+(h/Size)*holeH, holeW-1, holeH-1)
}

func (g *Game) holeAt(x, y int) (int, bool) {
	for h := range Holes {
		if g.holeRect(h).Contains(x, y) {
			return h, true
		}
	}
	return 0, false
}

// Escaped returns how many moles ducked back unhit this round.
func (g *Game) Escaped() int {
	return g.escaped
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

// Render draws the holes, the moles that are up and the timer.
func (g *Game) Render(dst *core.Screen) {
	if g.tooSmall {
		dst.DrawMessage("Window too small", fmt.Sprintf("Need at least %dx%d", minW, minH))
		return
	}

	seconds := (g.timeLeft + g.tickRate - 1) / g.tickRate
	dst.DrawTextCentered(0, "WHACK-A-MOLE")
	dst.DrawTextCentered(1, fmt.Sprintf("Score: %d  Time: %d  Best: %d", g.sess.Score(), seconds, g.sess.HighScore()))

	for h := range Holes {
		r := g.holeRect(h)
		dst.DrawBox(r)
		dst.SetWithColor(r.X+1, r.Y+1, rune('1'+h), core.ColorGray)
		faceX := r.X + (r.W-len(moleFace))/2
		if g.moles.Up(h) {
			dst.DrawTextColor(faceX, r.Y+1, moleFace, core.ColorOrange)
			dst.DrawTextColor(faceX, r.Y+2, "▀▀▀▀▀", core.ColorOrange)
		} else {
			dst.DrawTextColor(faceX, r.Y+2, "_____", core.ColorGray)
		}
	}
	if g.phase.Is(core.PhaseActive) {
		r := g.holeRect(g.cursor.Y*Size + g.cursor.X)
		dst.SetWithColor(r.X+1, r.Y+2, '>', core.ColorBrightYellow)
		dst.SetWithColor(r.Right()-2, r.Y+2, '<', core.ColorBrightYellow)
	}

	switch {
	case g.phase.Is(core.PhaseGameOver):
		dst.DrawMessage("TIME'S UP!", fmt.Sprintf("Score: %d  |  Press R to restart", g.sess.Score()))
	case g.paused:
		dst.DrawMessage("PAUSED", "Press P to resume")
	}
}

// Snapshot captures the game for determinism tests.
type Snapshot struct {
	Tick     int
	Phase    core.Phase
	Score    int
	TimeLeft int
	Cursor   core.Point
	Moles    []Mole
	Escaped  int
	Paused   bool
}

// Snapshot returns a copy of the current game state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.tickCount,
		Phase:    g.phase.Phase(),
		Score:    g.sess.Score(),
		TimeLeft: g.timeLeft,
		Cursor:   g.cursor,
		Moles:    append([]Mole(nil), g.moles.Moles()...),
		Escaped:  g.escaped,
		Paused:   g.paused,
	}
}

func init() {
	registry.Register("whack", func() registry.Game {
		return New()
	})
}
