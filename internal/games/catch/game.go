// Package catch implements Catch the Ball.
// The player slides a basket along the bottom to catch falling balls.
package catch

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/registry"
)

// Visual characters for rendering
const (
	BallChar        = '●'
	BasketChar      = '▀'
	BasketLeftChar  = '╰'
	BasketRightChar = '╯'
)

const (
	minScreenW = 30
	minScreenH = 12
)

// Game implements the Catch the Ball game logic. The field is simulated
// in world units from the config and scaled to the screen by Render.
type Game struct {
	cfg   config.CatchConfig
	diff  *config.DifficultyManager
	phase core.PhaseMachine
	sess  core.Session

	basketX   float64 // Basket center
	balls     *BallManager
	misses    int
	paused    bool
	tooSmall  bool
	tickCount int
}

// New creates a new Catch the Ball game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "catch"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Catch the Ball"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	preset, _ := config.ParsePreset(runtime.Difficulty)
	cfg, err := config.LoadCatch(runtime.ConfigPath, preset)
	if err != nil {
		cfg = config.DefaultCatchConfig()
		config.ApplyCatchPreset(&cfg, preset)
	}
	if cfg.World.Width <= 0 || cfg.World.Height <= 0 {
		cfg.World = config.DefaultCatchConfig().World
	}
	cfg.Balls.SpawnInterval = max(cfg.Balls.SpawnInterval, 1)
	cfg.Gameplay.MaxMisses = max(cfg.Gameplay.MaxMisses, 1)

	g.cfg = cfg
	g.diff = config.NewDifficultyManager(cfg.Difficulty)
	g.tooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH

	g.basketX = cfg.World.Width / 2
	g.misses = 0
	g.paused = false
	g.tickCount = 0
	g.sess.Reset()
	g.phase.Reset(core.PhaseActive)

	rng := rand.New(rand.NewSource(runtime.Seed))
	g.balls = NewBallManager(rng, cfg, g.diff)
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

	if in.Held(core.ActionLeft) {
		g.basketX -= g.cfg.Basket.Speed
	}
	if in.Held(core.ActionRight) {
		g.basketX += g.cfg.Basket.Speed
	}
	half := g.cfg.Basket.HalfWidth
	g.basketX = core.ClampF(g.basketX, half, g.cfg.World.Width-half)

	caught, missed := g.balls.Update(g.basketX, g.sess.Score(), g.tickCount)
	g.sess.Add(caught)
	g.misses += missed

	if g.misses >= g.cfg.Gameplay.MaxMisses {
		_ = g.phase.Transition(core.PhaseGameOver)
		g.sess.Finalize()
	}

	return core.StepResult{State: g.State()}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	if g.tooSmall {
		dst.DrawMessage("Window too small", fmt.Sprintf("Need at least %dx%d", minScreenW, minScreenH))
		return
	}

	sx := float64(dst.Width()) / g.cfg.World.Width
	sy := float64(dst.Height()) / g.cfg.World.Height

	for _, b := range g.balls.Balls() {
		dst.SetWithColor(int(b.X*sx), int(math.Floor(b.Y*sy)), BallChar, b.Color)
	}

	half := g.cfg.Basket.HalfWidth
	left := int(math.Floor((g.basketX - half) * sx))
	right := int(math.Ceil((g.basketX+half)*sx)) - 1
	y := int((g.cfg.World.Height - g.cfg.Basket.LineOffset) * sy)
	dst.SetWithColor(left, y, BasketLeftChar, core.ColorOrange)
	for x := left + 1; x < right; x++ {
		dst.SetWithColor(x, y, BasketChar, core.ColorOrange)
	}
	dst.SetWithColor(right, y, BasketRightChar, core.ColorOrange)

	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d  Missed: %d/%d  Best: %d ",
		g.sess.Score(), g.misses, g.cfg.Gameplay.MaxMisses, g.sess.HighScore()))

	switch {
	case g.phase.Is(core.PhaseGameOver):
		dst.DrawMessage("GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.sess.Score()))
	case g.paused:
		dst.DrawMessage("PAUSED", "Press P to resume")
	}
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

// Register the game with the registry
func init() {
	registry.Register("catch", func() registry.Game {
		return New()
	})
}
