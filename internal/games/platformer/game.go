// Package platformer implements a single-screen platform game.
// The player runs and jumps across floating platforms to reach the flag.
package platformer

import (
	"fmt"
	"math"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/registry"
)

// Visual characters for rendering
const (
	PlayerHead  = '●'
	PlayerBody  = '█'
	GrassChar   = '▀'
	DirtChar    = '█'
	FlagChar    = '▶'
	FlagPole    = '│'
	defaultRate = 60
)

const (
	minScreenW = 40
	minScreenH = 12
)

// Game implements the Platformer game logic. The simulation runs in world
// units from the config; Render scales the world onto the screen.
type Game struct {
	cfg   config.PlatformerConfig
	phase core.PhaseMachine
	sess  core.Session

	playerX     float64 // Left edge of the player hitbox
	playerY     float64 // Top edge of the player hitbox
	playerVel   float64 // Vertical velocity, positive is down
	isGrounded  bool    // Whether the player stood on a platform last tick
	facingRight bool
	falls       int // Times the player dropped off the bottom
	paused      bool
	tooSmall    bool
	tickCount   int
	tickRate    int
}

// New creates a new Platformer game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "platformer"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Platformer"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	preset, _ := config.ParsePreset(runtime.Difficulty)
	cfg, err := config.LoadPlatformer(runtime.ConfigPath, preset)
	if err != nil {
		cfg = config.DefaultPlatformerConfig()
		config.ApplyPlatformerPreset(&cfg, preset)
	}
	if cfg.World.Width <= 0 || cfg.World.Height <= 0 {
		cfg.World = config.DefaultPlatformerConfig().World
	}
	cfg.Scoring.TicksPerPoint = max(cfg.Scoring.TicksPerPoint, 1)

	g.cfg = cfg
	g.tooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH
	g.tickRate = runtime.TickRate
	if g.tickRate <= 0 {
		g.tickRate = defaultRate
	}

	g.respawn()
	g.facingRight = true
	g.falls = 0
	g.paused = false
	g.tickCount = 0
	g.sess.Reset()
	g.phase.Reset(core.PhaseActive)
}

// respawn puts the player back at the start point, at rest.
func (g *Game) respawn() {
	g.playerX = g.cfg.Player.StartX
	g.playerY = g.cfg.Player.StartY
	g.playerVel = 0
	g.isGrounded = false
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

	// Jumping uses ground contact from the previous tick.
	if (in.Has(core.ActionJump) || in.Has(core.ActionUp)) && g.isGrounded {
		g.playerVel = g.cfg.Physics.JumpImpulse
	}

	switch {
	case in.Held(core.ActionLeft):
		g.playerX -= g.cfg.Physics.MoveSpeed
		g.facingRight = false
	case in.Held(core.ActionRight):
		g.playerX += g.cfg.Physics.MoveSpeed
		g.facingRight = true
	}

	g.playerVel += g.cfg.Physics.Gravity
	g.playerY += g.playerVel
	g.land()

	g.playerX = core.ClampF(g.playerX, 0, g.cfg.World.Width-g.cfg.Player.Width)
	if g.playerY > g.cfg.World.Height {
		g.falls++
		g.respawn()
	}

	if overlaps(g.playerBox(), g.cfg.Level.Goal) {
		g.win()
	}

	return core.StepResult{State: g.State()}
}

// land snaps a falling player onto the top of any platform it entered.
// Platforms are only solid from above.
func (g *Game) land() {
	g.isGrounded = false
	for _, p := range g.cfg.Level.Platforms {
		if g.playerVel > 0 && overlaps(g.playerBox(), p) {
			g.playerY = p.Y - g.cfg.Player.Height
			g.playerVel = 0
			g.isGrounded = true
		}
	}
}

func (g *Game) win() {
	_ = g.phase.Transition(core.PhaseWon)
	g.sess.Add(g.runScore())
	g.sess.Finalize()
}

// runScore rewards a quick run with few falls.
func (g *Game) runScore() int {
	s := g.cfg.Scoring
	return max(s.Base-g.tickCount/s.TicksPerPoint-g.falls*s.FallPenalty, s.Min)
}

// playerBox returns the player's hitbox in world units.
func (g *Game) playerBox() config.Box {
	return config.Box{X: g.playerX, Y: g.playerY, W: g.cfg.Player.Width, H: g.cfg.Player.Height}
}

// overlaps reports whether two boxes share interior area. Boxes that only
// touch along an edge do not overlap.
func overlaps(a, b config.Box) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	if g.tooSmall {
		dst.DrawMessage("Window too small", fmt.Sprintf("Need at least %dx%d", minScreenW, minScreenH))
		return
	}

	sx := float64(dst.Width()) / g.cfg.World.Width
	sy := float64(dst.Height()) / g.cfg.World.Height

	for _, p := range g.cfg.Level.Platforms {
		r := toCells(p, sx, sy)
		for x := r.X; x < r.Right(); x++ {
			dst.SetWithColor(x, r.Y, GrassChar, core.ColorBrightGreen)
			for y := r.Y + 1; y < r.Bottom(); y++ {
				dst.SetWithColor(x, y, DirtChar, core.ColorOrange)
			}
		}
	}

	goal := toCells(g.cfg.Level.Goal, sx, sy)
	for y := goal.Y; y < goal.Bottom(); y++ {
		dst.SetWithColor(goal.X, y, FlagPole, core.ColorGray)
	}
	dst.SetWithColor(goal.X+1, goal.Y, FlagChar, core.ColorBrightRed)

	g.drawPlayer(dst, toCells(g.playerBox(), sx, sy))

	seconds := g.tickCount / g.tickRate
	dst.DrawText(2, 0, fmt.Sprintf(" Time: %ds  Falls: %d  Best: %d ", seconds, g.falls, g.sess.HighScore()))

	switch {
	case g.phase.Is(core.PhaseWon):
		dst.DrawMessage("YOU WIN!", fmt.Sprintf("Score: %d  |  Press R to play again", g.sess.Score()))
	case g.paused:
		dst.DrawMessage("PAUSED", "Press P to resume")
	}
}

// drawPlayer renders the head row facing the direction of travel and
// fills the rest of the hitbox with the body.
func (g *Game) drawPlayer(dst *core.Screen, r core.Rect) {
	for dy := range r.H {
		for dx := range r.W {
			ch, color := PlayerBody, core.ColorBrightRed
			if dy == 0 {
				ch, color = ' ', core.ColorBrightYellow
				if (g.facingRight && dx == r.W-1) || (!g.facingRight && dx == 0) {
					ch = PlayerHead
				}
			}
			dst.SetWithColor(r.X+dx, r.Y+dy, ch, color)
		}
	}
}

// toCells maps a world box onto screen cells. Every box covers at least
// one cell.
func toCells(b config.Box, sx, sy float64) core.Rect {
	x0 := int(math.Floor(b.X * sx))
	y0 := int(math.Floor(b.Y * sy))
	x1 := int(math.Ceil((b.X + b.W) * sx))
	y1 := int(math.Ceil((b.Y + b.H) * sy))
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
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
	registry.Register("platformer", func() registry.Game {
		return New()
	})
}
