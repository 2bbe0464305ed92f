// Package flappy implements a Flappy Bird-style game.
// The player controls a bird that must navigate through gaps in vertical pipes.
package flappy

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/registry"
)

// Visual characters for rendering
const (
	PlayerChar    = '▶'
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
	GroundChar    = '═'
)

const (
	minScreenW = 30
	minScreenH = 12
)

// Game implements the Flappy Bird game logic.
type Game struct {
	cfg   config.FlappyConfig
	diff  *config.DifficultyManager
	phase core.PhaseMachine
	sess  core.Session

	playerY   float64      // Player vertical position (top of hitbox)
	playerVel float64      // Player vertical velocity
	pipes     *PipeManager // Obstacle manager
	paused    bool
	tooSmall  bool
	groundY   int // Row of the ground line
	tickCount int // Number of active ticks since start
}

// New creates a new Flappy Bird game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Bird"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	preset, _ := config.ParsePreset(runtime.Difficulty)
	cfg, err := config.LoadFlappy(runtime.ConfigPath, preset)
	if err != nil {
		cfg = config.DefaultFlappyConfig()
		config.ApplyPreset(&cfg.Difficulty, preset)
	}
	cfg.Obstacles.PipeWidth = max(cfg.Obstacles.PipeWidth, 1)
	cfg.Obstacles.MinGapSize = max(cfg.Obstacles.MinGapSize, cfg.Player.Height+1)

	g.cfg = cfg
	g.diff = config.NewDifficultyManager(cfg.Difficulty)
	g.groundY = runtime.ScreenH - 1
	g.tooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH

	g.playerY = float64(runtime.ScreenH) / 2.0
	g.playerVel = 0
	g.paused = false
	g.tickCount = 0
	g.sess.Reset()
	g.phase.Reset(core.PhaseReady)

	rng := rand.New(rand.NewSource(runtime.Seed))
	g.pipes = NewPipeManager(rng, runtime.ScreenW, g.groundY, cfg, g.diff)
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

	jump := in.Has(core.ActionJump)
	if g.phase.Is(core.PhaseReady) {
		// The bird hovers until the first flap.
		if !jump {
			return core.StepResult{State: g.State()}
		}
		_ = g.phase.Transition(core.PhaseActive)
	}

	g.tickCount++

	if jump {
		g.playerVel = g.cfg.Physics.JumpImpulse
	}

	g.playerVel += g.cfg.Physics.Gravity
	if g.playerVel > g.cfg.Physics.MaxFallSpeed {
		g.playerVel = g.cfg.Physics.MaxFallSpeed
	}
	g.playerY += g.playerVel

	passed := g.pipes.Update(g.cfg.Player.X, g.sess.Score(), g.tickCount)
	g.sess.Add(passed)

	switch {
	case g.playerY < 0:
		g.playerY = 0
		g.crash()
	case int(g.playerY)+g.cfg.Player.Height > g.groundY:
		g.playerY = float64(g.groundY - g.cfg.Player.Height)
		g.crash()
	case g.pipes.CheckCollision(g.playerRect()):
		g.crash()
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) crash() {
	_ = g.phase.Transition(core.PhaseGameOver)
	g.sess.Finalize()
}

// playerRect returns the player's collision rectangle.
func (g *Game) playerRect() core.Rect {
	return core.NewRect(g.cfg.Player.X, int(g.playerY), g.cfg.Player.Width, g.cfg.Player.Height)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	if g.tooSmall {
		dst.DrawMessage("Window too small", fmt.Sprintf("Need at least %dx%d", minScreenW, minScreenH))
		return
	}

	dst.DrawHLine(0, g.groundY, dst.Width(), GroundChar)

	for _, p := range g.pipes.Pipes() {
		g.drawPipe(dst, p)
	}

	px, py := g.cfg.Player.X, int(g.playerY)
	for dy := range g.cfg.Player.Height {
		for dx := range g.cfg.Player.Width {
			ch := '●'
			if dx == g.cfg.Player.Width-1 && dy == 0 {
				ch = PlayerChar
			}
			dst.SetWithColor(px+dx, py+dy, ch, core.ColorBrightYellow)
		}
	}

	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d  Best: %d ", g.sess.Score(), g.sess.HighScore()))

	switch {
	case g.phase.Is(core.PhaseGameOver):
		dst.DrawMessage("GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.sess.Score()))
	case g.paused:
		dst.DrawMessage("PAUSED", "Press P to resume")
	case g.phase.Is(core.PhaseReady):
		dst.DrawMessage("FLAPPY BIRD", "Press SPACE to flap")
	}
}

// drawPipe renders a single pipe to the screen.
func (g *Game) drawPipe(dst *core.Screen, p Pipe) {
	width := g.cfg.Obstacles.PipeWidth

	for y := 0; y < p.GapY; y++ {
		dst.DrawHLine(p.X, y, width, PipeChar)
	}
	if p.GapY > 0 {
		dst.DrawHLine(p.X, p.GapY-1, width, PipeCapTop)
	}

	bottomY := p.GapY + p.GapHeight
	for y := bottomY; y < g.groundY; y++ {
		dst.DrawHLine(p.X, y, width, PipeChar)
	}
	if bottomY < g.groundY {
		dst.DrawHLine(p.X, bottomY, width, PipeCapBottom)
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
	registry.Register("flappy", func() registry.Game {
		return New()
	})
}
