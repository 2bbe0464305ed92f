// Package invaders implements Space Invaders.
// A marching alien fleet descends while the player's cannon shoots it down.
package invaders

import (
	"fmt"
	"math"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/registry"
)

// Visual characters for rendering
const (
	CannonChar = '▲'
	AlienChar  = '▓'
	BulletChar = '│'
)

const (
	minScreenW = 40
	minScreenH = 14
)

// Game implements the Space Invaders game logic in world units.
type Game struct {
	cfg   config.InvadersConfig
	phase core.PhaseMachine
	sess  core.Session

	playerX   float64 // Left edge of the cannon
	bullets   []Bullet
	fleet     *Fleet
	paused    bool
	tooSmall  bool
	tickCount int
}

// New creates a new Space Invaders game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return "invaders" }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Space Invaders" }

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	preset, _ := config.ParsePreset(runtime.Difficulty)
	cfg, err := config.LoadInvaders(runtime.ConfigPath, preset)
	if err != nil {
		cfg = config.DefaultInvadersConfig()
		config.ApplyInvadersPreset(&cfg, preset)
	}
	if cfg.World.Width <= 0 || cfg.World.Height <= 0 {
		cfg.World = config.DefaultInvadersConfig().World
	}

	g.cfg = cfg
	g.tooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH
	g.playerX = cfg.World.Width/2 - cfg.Player.Width/2
	g.bullets = g.bullets[:0]
	g.fleet = NewFleet(cfg.Fleet)
	g.paused = false
	g.tickCount = 0
	g.sess.Reset()
	g.phase.Reset(core.PhaseActive)
}

func (g *Game) playerY() float64 {
	return g.cfg.World.Height - g.cfg.Player.Bottom
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

	if in.Has(core.ActionJump) {
		g.fire()
	}
	switch {
	case in.Held(core.ActionLeft):
		g.playerX -= g.cfg.Player.Speed
	case in.Held(core.ActionRight):
		g.playerX += g.cfg.Player.Speed
	}
	g.playerX = core.ClampF(g.playerX, 0, g.cfg.World.Width-g.cfg.Player.Width)

	g.moveBullets()

	if g.fleet.Update(g.sess.Score(), g.cfg.World.Width) && g.fleet.Lowest() >= g.playerY() {
		g.end(core.PhaseGameOver)
		return core.StepResult{State: g.State()}
	}
	if g.fleet.Touches(g.playerBox()) {
		g.end(core.PhaseGameOver)
		return core.StepResult{State: g.State()}
	}

	g.resolveHits()
	if g.fleet.Len() == 0 {
		g.end(core.PhaseWon)
	}
	return core.StepResult{State: g.State()}
}

// fire launches a shot from the cannon's nose.
func (g *Game) fire() {
	g.bullets = append(g.bullets, Bullet{
		X: g.playerX + g.cfg.Player.Width/2 - g.cfg.Bullet.Width/2,
		Y: g.playerY(),
	})
}

func (g *Game) moveBullets() {
	kept := g.bullets[:0]
	for _, b := range g.bullets {
		b.Y -= g.cfg.Bullet.Speed
		if b.Y >= 0 {
			kept = append(kept, b)
		}
	}
	g.bullets = kept
}

// resolveHits lets every bullet take down at most one alien, the first in
// fleet order that it overlaps.
func (g *Game) resolveHits() {
	kept := g.bullets[:0]
	for _, b := range g.bullets {
		if points, ok := g.fleet.Hit(g.bulletBox(b)); ok {
			g.sess.Add(points)
			continue
		}
		kept = append(kept, b)
	}
	g.bullets = kept
}

func (g *Game) end(p core.Phase) {
	_ = g.phase.Transition(p)
	g.sess.Finalize()
}

func (g *Game) playerBox() config.Box {
	return config.Box{X: g.playerX, Y: g.playerY(), W: g.cfg.Player.Width, H: g.cfg.Player.Height}
}

func (g *Game) bulletBox(b Bullet) config.Box {
	return config.Box{X: b.X, Y: b.Y, W: g.cfg.Bullet.Width, H: g.cfg.Bullet.Height}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	if g.tooSmall {
		dst.DrawMessage("Window too small", fmt.Sprintf("Need at least %dx%d", minScreenW, minScreenH))
		return
	}

	sx := float64(dst.Width()) / g.cfg.World.Width
	sy := float64(dst.Height()) / g.cfg.World.Height

	for _, a := range g.fleet.Aliens() {
		color := alienColors[a.Row%len(alienColors)]
		fill(dst, toCells(g.fleet.box(a), sx, sy), AlienChar, color)
	}
	for _, b := range g.bullets {
		r := toCells(g.bulletBox(b), sx, sy)
		dst.SetWithColor(r.X, r.Y, BulletChar, core.ColorBrightYellow)
	}
	fill(dst, toCells(g.playerBox(), sx, sy), CannonChar, core.ColorBrightGreen)

	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d  Aliens: %d  Best: %d ", g.sess.Score(), g.fleet.Len(), g.sess.HighScore()))

	switch {
	case g.phase.Is(core.PhaseWon):
		dst.DrawMessage("FLEET DESTROYED!", fmt.Sprintf("Score: %d  |  Press R to play again", g.sess.Score()))
	case g.phase.Is(core.PhaseGameOver):
		dst.DrawMessage("GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.sess.Score()))
	case g.paused:
		dst.DrawMessage("PAUSED", "Press P to resume")
	}
}

func fill(dst *core.Screen, r core.Rect, ch rune, color core.Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			dst.SetWithColor(x, y, ch, color)
		}
	}
}

// toCells maps a world box onto screen cells, covering at least one cell.
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

// Snapshot contains the complete state of a round for determinism tests.
type Snapshot struct {
	Tick    int
	Phase   core.Phase
	Score   int
	PlayerX float64
	Aliens  []Alien
	Bullets []Bullet
	Dir     float64
	Paused  bool
}

// Snapshot returns a copy of the current game state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:    g.tickCount,
		Phase:   g.phase.Phase(),
		Score:   g.sess.Score(),
		PlayerX: g.playerX,
		Aliens:  append([]Alien(nil), g.fleet.aliens...),
		Bullets: append([]Bullet(nil), g.bullets...),
		Dir:     g.fleet.dir,
		Paused:  g.paused,
	}
}

func init() {
	registry.Register("invaders", func() registry.Game {
		return New()
	})
}
