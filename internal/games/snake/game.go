// Package snake implements Snake on a toroidal grid: the snake wraps around
// the field edges and only its own body can kill it.
package snake

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/registry"
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Vector returns the unit grid step for the direction.
func (d Direction) Vector() core.Point {
	switch d {
	case DirUp:
		return core.Up
	case DirDown:
		return core.Down
	case DirLeft:
		return core.Left
	default:
		return core.Right
	}
}

// Opposite reports whether d and o point in opposite directions.
func (d Direction) Opposite(o Direction) bool {
	return d.Vector().Neg() == o.Vector()
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

const hudHeight = 2

// Game implements the Snake game.
type Game struct {
	cfg   config.SnakeConfig
	diff  *config.DifficultyManager
	rng   *rand.Rand
	tick  uint64
	phase core.PhaseMachine
	sess  core.Session

	// Snake state
	snake     []core.Point     // Head at index 0
	body      *core.Grid[bool] // Occupancy of snake segments
	direction Direction
	nextDir   Direction // Buffered direction for next move
	growing   bool      // If true, don't remove tail on next move
	food      core.Point
	hasFood   bool

	moveEvery  int
	moveTicker int // Counts ticks until next move

	screenW, screenH int
	offsetX          int
	paused           bool
	tooSmall         bool
}

// New creates a new Snake game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "snake" }

// Title returns the display name.
func (g *Game) Title() string { return "Snake" }

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	preset, _ := config.ParsePreset(cfg.Difficulty)
	sc, err := config.LoadSnake(cfg.ConfigPath, preset)
	if err != nil {
		sc = config.DefaultSnakeConfig()
		config.ApplySnakePreset(&sc, preset)
	}
	sc.Board.Width = max(sc.Board.Width, 4)
	sc.Board.Height = max(sc.Board.Height, 4)
	sc.Gameplay.MoveEvery = max(sc.Gameplay.MoveEvery, 1)

	g.cfg = sc
	g.diff = config.NewDifficultyManager(sc.Difficulty)
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.sess.Reset()
	g.phase.Reset(core.PhaseActive)
	g.paused = false
	g.resize(cfg.ScreenW, cfg.ScreenH)

	w, h := sc.Board.Width, sc.Board.Height
	g.body = core.NewGrid[bool](w, h)
	head := core.Point{X: w / 4, Y: h / 2}
	g.snake = []core.Point{head}
	_ = g.body.Set(head, true)
	g.direction = DirRight
	g.nextDir = DirRight
	g.growing = false
	g.moveTicker = 0
	g.moveEvery = g.diff.Interval(sc.Gameplay.MoveEvery, sc.Gameplay.MinMoveEvery, 0, 0)

	g.spawnFood()
}

func (g *Game) resize(w, h int) {
	g.screenW, g.screenH = w, h
	needW := g.cfg.Board.Width + 2
	needH := g.cfg.Board.Height + hudHeight + 2
	g.tooSmall = w < needW || h < needH
	g.offsetX = (w - needW) / 2
}

// spawnFood places food at a random empty cell. A full board has no food.
func (g *Game) spawnFood() {
	empty := g.body.Points(func(occupied bool) bool { return !occupied })
	if len(empty) == 0 {
		g.hasFood = false
		return
	}
	g.food = empty[g.rng.Intn(len(empty))]
	g.hasFood = true
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if g.phase.Terminal() {
		return core.StepResult{State: g.State()}
	}
	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.processInput(input)

	g.moveTicker++
	if g.moveTicker >= g.moveEvery {
		g.moveTicker = 0
		g.moveSnake()
	}

	return core.StepResult{State: g.State()}
}

// processInput buffers the last non-reversing direction pressed this tick.
func (g *Game) processInput(input core.InputFrame) {
	for _, ev := range input.Events() {
		var d Direction
		switch ev.Action {
		case core.ActionUp:
			d = DirUp
		case core.ActionDown:
			d = DirDown
		case core.ActionLeft:
			d = DirLeft
		case core.ActionRight:
			d = DirRight
		default:
			continue
		}
		if !d.Opposite(g.direction) {
			g.nextDir = d
		}
	}
}

// moveSnake moves the snake one cell in the current direction.
func (g *Game) moveSnake() {
	g.direction = g.nextDir

	next, _ := g.body.Resolve(g.snake[0].Add(g.direction.Vector()), core.BoundaryWrap)
	eating := g.hasFood && next == g.food

	// The tail cell is free this move unless the snake grows.
	tail := g.snake[len(g.snake)-1]
	if occupied, _ := g.body.Get(next); occupied && (eating || next != tail) {
		_ = g.phase.Transition(core.PhaseGameOver)
		g.sess.Finalize()
		return
	}

	if !eating {
		_ = g.body.Set(tail, false)
		g.snake = g.snake[:len(g.snake)-1]
	}
	g.snake = append([]core.Point{next}, g.snake...)
	_ = g.body.Set(next, true)

	if !eating {
		return
	}
	g.sess.Add(g.cfg.Gameplay.FoodPoints)
	g.spawnFood()
	if !g.hasFood {
		_ = g.phase.Transition(core.PhaseWon)
		g.sess.Finalize()
		return
	}
	g.moveEvery = g.diff.Interval(g.cfg.Gameplay.MoveEvery, g.cfg.Gameplay.MinMoveEvery, g.sess.Score(), 0)
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	hud := fmt.Sprintf(" Snake  Score: %d  High: %d  Length: %d", g.sess.Score(), g.sess.HighScore(), len(g.snake))
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')

	if g.tooSmall {
		dst.DrawMessage("Window too small", "Resize to continue")
		return
	}

	ox, oy := g.offsetX, hudHeight
	dst.DrawBox(core.NewRect(ox, oy, g.cfg.Board.Width+2, g.cfg.Board.Height+2))

	if g.hasFood {
		dst.SetWithColor(ox+1+g.food.X, oy+1+g.food.Y, '*', core.ColorRed)
	}
	for i, seg := range g.snake {
		ch, c := 'o', core.ColorGreen
		if i == 0 {
			ch, c = 'O', core.ColorBrightGreen
		}
		dst.SetWithColor(ox+1+seg.X, oy+1+seg.Y, ch, c)
	}

	switch {
	case g.phase.Is(core.PhaseWon):
		dst.DrawMessage("You Win!", fmt.Sprintf("Final Score: %d", g.sess.Score()))
	case g.phase.Is(core.PhaseGameOver):
		dst.DrawMessage("Game Over", "Press R to restart")
	case g.paused:
		dst.DrawMessage("Paused", "Press P to continue")
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
