// Package frogger implements Frogger.
// The frog hops across a road of cars and a river of logs to the far bank.
package frogger

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
	FrogChar  = '●'
	CarChar   = '█'
	LogChar   = '▬'
	WaterChar = '~'
	GrassChar = '░'
	GoalChar  = '▒'
	LaneMark  = '·'
)

const (
	minScreenW = 30
	minScreenH = 12

	frogInset = 5 // The frog's hitbox is this much smaller than a cell
	carInset  = 5 // Cars leave this gap above and below inside their lane
)

// Game implements the Frogger game logic. Rows are Cell world units tall;
// Render scales the field onto the screen.
type Game struct {
	cfg   config.FroggerConfig
	diff  *config.DifficultyManager
	phase core.PhaseMachine
	sess  core.Session

	frogX     float64 // Left edge of the frog
	frogRow   int
	riding    int // Index into logs of the log carrying the frog, or -1
	cars      []Mover
	logs      []Mover
	lives     int
	paused    bool
	tooSmall  bool
	tickCount int
}

// New creates a new Frogger game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "frogger"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Frogger"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	preset, _ := config.ParsePreset(runtime.Difficulty)
	cfg, err := config.LoadFrogger(runtime.ConfigPath, preset)
	if err != nil {
		cfg = config.DefaultFroggerConfig()
		config.ApplyFroggerPreset(&cfg, preset)
	}
	if cfg.Field.Width <= 0 || cfg.Field.Rows < 3 || cfg.Field.Cell <= 0 {
		cfg.Field = config.DefaultFroggerConfig().Field
	}
	cfg.Gameplay.Lives = max(cfg.Gameplay.Lives, 1)

	g.cfg = cfg
	g.diff = config.NewDifficultyManager(cfg.Difficulty)
	g.tooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < max(minScreenH, cfg.Field.Rows)

	rng := rand.New(rand.NewSource(runtime.Seed))
	g.cars = spawnLanes(rng, cfg.Road, cfg.Field.Width, carColors)
	g.logs = spawnLanes(rng, cfg.River, cfg.Field.Width, nil)

	g.lives = cfg.Gameplay.Lives
	g.paused = false
	g.tickCount = 0
	g.sess.Reset()
	g.phase.Reset(core.PhaseActive)
	g.respawn()
}

// respawn puts the frog back on the start row, centered.
func (g *Game) respawn() {
	g.frogX = math.Floor(g.cfg.Field.Width/2/g.cfg.Field.Cell) * g.cfg.Field.Cell
	g.frogRow = g.cfg.Field.Rows - 1
	g.riding = -1
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

	switch {
	case in.Has(core.ActionUp):
		g.hop(0, -1)
	case in.Has(core.ActionDown):
		g.hop(0, 1)
	case in.Has(core.ActionLeft):
		g.hop(-1, 0)
	case in.Has(core.ActionRight):
		g.hop(1, 0)
	}

	scale := g.diff.Speed(1, g.sess.Score(), g.tickCount)
	margin := g.cfg.Field.Cell
	advance(g.cars, g.cfg.Field.Width, margin, scale)
	advance(g.logs, g.cfg.Field.Width, margin, scale)
	if g.riding >= 0 {
		g.frogX += g.logs[g.riding].Speed * scale
	}

	g.checkCollisions()
	return core.StepResult{State: g.State()}
}

// hop moves the frog one cell. Hopping onto the goal row scores a crossing
// and sends the frog back to the start.
func (g *Game) hop(dx, dy int) {
	cell := g.cfg.Field.Cell
	g.frogX = core.ClampF(g.frogX+float64(dx)*cell, 0, g.cfg.Field.Width-cell)
	g.frogRow = core.Clamp(g.frogRow+dy, 0, g.cfg.Field.Rows-1)
	g.riding = -1

	if g.frogRow == 0 {
		g.sess.Add(g.cfg.Gameplay.CrossingPoints)
		g.respawn()
	}
}

// checkCollisions uses positions after this tick's motion. A car hit, open
// water or being carried off the field costs a life.
func (g *Game) checkCollisions() {
	frog := g.frogBox()

	for _, c := range g.cars {
		if c.Row == g.frogRow && overlaps(frog, g.carBox(c)) {
			g.die()
			return
		}
	}

	if g.inRiver(g.frogRow) {
		g.riding = -1
		for i, l := range g.logs {
			if l.Row == g.frogRow && overlaps(frog, g.logBox(l)) {
				g.riding = i
				break
			}
		}
		if g.riding < 0 {
			g.die()
			return
		}
	}

	if g.frogX < 0 || g.frogX > g.cfg.Field.Width-g.cfg.Field.Cell {
		g.die()
	}
}

func (g *Game) die() {
	g.lives--
	if g.lives <= 0 {
		_ = g.phase.Transition(core.PhaseGameOver)
		g.sess.Finalize()
		return
	}
	g.respawn()
}

func (g *Game) inRiver(row int) bool {
	return row >= g.cfg.River.FirstRow && row <= g.cfg.River.LastRow
}

func (g *Game) onRoad(row int) bool {
	return row >= g.cfg.Road.FirstRow && row <= g.cfg.Road.LastRow
}

func (g *Game) frogBox() config.Box {
	size := g.cfg.Field.Cell - frogInset
	return config.Box{X: g.frogX, Y: float64(g.frogRow) * g.cfg.Field.Cell, W: size, H: size}
}

func (g *Game) carBox(c Mover) config.Box {
	cell := g.cfg.Field.Cell
	return config.Box{X: c.X, Y: float64(c.Row)*cell + carInset, W: c.Width, H: cell - 2*carInset}
}

func (g *Game) logBox(l Mover) config.Box {
	cell := g.cfg.Field.Cell
	return config.Box{X: l.X, Y: float64(l.Row) * cell, W: l.Width, H: cell}
}

// overlaps reports whether two boxes share interior area.
func overlaps(a, b config.Box) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	if g.tooSmall {
		dst.DrawMessage("Window too small", fmt.Sprintf("Need at least %dx%d", minScreenW, max(minScreenH, g.cfg.Field.Rows)))
		return
	}

	sx := float64(dst.Width()) / g.cfg.Field.Width
	sy := float64(dst.Height()) / (float64(g.cfg.Field.Rows) * g.cfg.Field.Cell)

	for row := range g.cfg.Field.Rows {
		r := toCells(config.Box{X: 0, Y: float64(row) * g.cfg.Field.Cell, W: g.cfg.Field.Width, H: g.cfg.Field.Cell}, sx, sy)
		ch, color := GrassChar, core.ColorGreen
		switch {
		case row == 0:
			ch, color = GoalChar, core.ColorBrightGreen
		case g.inRiver(row):
			ch, color = WaterChar, core.ColorBlue
		case g.onRoad(row):
			ch, color = ' ', core.ColorDefault
		}
		for y := r.Y; y < r.Bottom(); y++ {
			for x := 0; x < dst.Width(); x++ {
				if g.onRoad(row) && y == r.Y && x%4 == 0 && row > g.cfg.Road.FirstRow {
					dst.SetWithColor(x, y, LaneMark, core.ColorGray)
					continue
				}
				dst.SetWithColor(x, y, ch, color)
			}
		}
	}

	for _, l := range g.logs {
		fillBox(dst, toCells(g.logBox(l), sx, sy), LogChar, core.ColorOrange)
	}
	for _, c := range g.cars {
		fillBox(dst, toCells(g.carBox(c), sx, sy), CarChar, c.Color)
	}
	fillBox(dst, toCells(g.frogBox(), sx, sy), FrogChar, core.ColorBrightGreen)

	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d  Lives: %d  Best: %d ", g.sess.Score(), g.lives, g.sess.HighScore()))

	switch {
	case g.phase.Is(core.PhaseGameOver):
		dst.DrawMessage("GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.sess.Score()))
	case g.paused:
		dst.DrawMessage("PAUSED", "Press P to resume")
	}
}

func fillBox(dst *core.Screen, r core.Rect, ch rune, color core.Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			dst.SetWithColor(x, y, ch, color)
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
	registry.Register("frogger", func() registry.Game {
		return New()
	})
}
