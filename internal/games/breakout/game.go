// Package breakout implements the brick-breaking game: a paddle, one ball
// and a wall of bricks worth more the higher they sit.
package breakout

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/registry"
)

// Visual characters for rendering
const (
	PaddleChar  = '='
	BallChar    = '●'
	BorderHoriz = '─'
	BorderVert  = '│'
)

// BrickGlyphs by row (cycling through)
var BrickGlyphs = []rune{'█', '▓', '▒', '░', '#', '+'}

var brickColors = []core.Color{
	core.ColorRed, core.ColorOrange, core.ColorYellow,
	core.ColorGreen, core.ColorCyan, core.ColorBlue,
}

const (
	brickTop   = 4  // Screen row of the first brick row
	serveDelay = 60 // Ticks of Resolving after a miss
	minScreenW = 30
	minScreenH = 15
)

// Game implements the Breakout game logic.
type Game struct {
	cfg  config.BreakoutConfig
	diff *config.DifficultyManager
	rng  *rand.Rand

	phase core.PhaseMachine
	sess  core.Session
	tick  uint64

	paddle Paddle
	ball   Ball
	bricks *core.Grid[bool] // Alive bricks, Rows x Cols
	lives  int

	// Layout (computed from screen size)
	arena          Arena
	brickWidth     int
	bricksX        int
	screenW        int
	screenH        int
	screenTooSmall bool
	paused         bool
}

// New creates a new Breakout game instance.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("breakout", func() registry.Game {
		return New()
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return "breakout" }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Breakout" }

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	preset, _ := config.ParsePreset(runtime.Difficulty)
	cfg, err := config.LoadBreakout(runtime.ConfigPath, preset)
	if err != nil {
		cfg = config.DefaultBreakoutConfig()
		config.ApplyBreakoutPreset(&cfg, preset)
	}
	cfg.Bricks.Rows = max(cfg.Bricks.Rows, 1)
	cfg.Bricks.Cols = max(cfg.Bricks.Cols, 1)
	cfg.Gameplay.Lives = max(cfg.Gameplay.Lives, 1)
	cfg.Paddle.Width = max(cfg.Paddle.Width, 2)

	g.cfg = cfg
	g.diff = config.NewDifficultyManager(cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.sess.Reset()
	g.phase.Reset(core.PhaseReady)
	g.tick = 0
	g.lives = cfg.Gameplay.Lives
	g.paused = false

	g.calculateLayout(runtime.ScreenW, runtime.ScreenH)

	g.bricks = core.NewGrid[bool](cfg.Bricks.Cols, cfg.Bricks.Rows)
	g.bricks.Fill(true)

	g.paddle = Paddle{
		X:     ToFixed((runtime.ScreenW - cfg.Paddle.Width) / 2),
		Y:     g.arena.Bottom - 1,
		Width: cfg.Paddle.Width,
	}
	g.placeBallOnPaddle()
}

// calculateLayout computes arena, brick and paddle positions from the screen.
func (g *Game) calculateLayout(w, h int) {
	g.screenW, g.screenH = w, h
	g.screenTooSmall = w < minScreenW || h < minScreenH

	// Row 0 is the HUD, row 1 the ceiling, columns 0 and w-1 the walls.
	g.arena = Arena{Left: 1, Right: w - 2, Top: 2, Bottom: h - 1}
	inner := w - 2
	g.brickWidth = max(inner/g.cfg.Bricks.Cols, 1)
	g.bricksX = 1 + (inner-g.brickWidth*g.cfg.Bricks.Cols)/2
}

func (g *Game) placeBallOnPaddle() {
	g.ball = Ball{
		X:     g.paddle.CenterX(),
		Y:     ToFixed(g.paddle.Y - 1),
		Stuck: true,
	}
}

// ballSpeed is the configured speed scaled by difficulty, capped.
func (g *Game) ballSpeed() Fixed {
	v := g.diff.Speed(g.cfg.Physics.BallSpeed, g.sess.Score(), 0)
	if v > g.cfg.Physics.MaxBallSpeed {
		v = g.cfg.Physics.MaxBallSpeed
	}
	return FixedFromFloat(v)
}

func (g *Game) launch() {
	// Slightly off-centre so the first rally is not purely vertical.
	hit := 0.35
	if g.rng.Intn(2) == 1 {
		hit = 0.65
	}
	g.ball.Stuck = false
	g.ball.Aim(BounceAngle(hit), g.ballSpeed())
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.phase.Terminal() || g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}
	g.tick++

	// Serve delay after a miss.
	if g.phase.Is(core.PhaseResolving) {
		g.phase.Tick()
		return core.StepResult{State: g.State()}
	}

	g.updatePaddle(in)

	if g.ball.Stuck {
		g.ball.X = g.paddle.CenterX()
		g.ball.Y = ToFixed(g.paddle.Y - 1)
		if in.Has(core.ActionJump) {
			_ = g.phase.Transition(core.PhaseActive)
			g.launch()
		}
		return core.StepResult{State: g.State()}
	}

	g.updateBall()
	return core.StepResult{State: g.State()}
}

// updatePaddle moves the paddle while a direction is held, clamped to the walls.
func (g *Game) updatePaddle(in core.InputFrame) {
	speed := FixedFromFloat(g.cfg.Physics.PaddleSpeed)
	if in.Held(core.ActionLeft) {
		g.paddle.X -= speed
	}
	if in.Held(core.ActionRight) {
		g.paddle.X += speed
	}
	minX := ToFixed(g.arena.Left)
	maxX := ToFixed(g.arena.Right + 1 - g.paddle.Width)
	g.paddle.X = ClampFixed(g.paddle.X, minX, maxX)
}

// updateBall moves the ball and resolves collisions against its post-motion
// cell. At most one brick breaks per tick.
func (g *Game) updateBall() {
	b := &g.ball
	b.Move()

	if CheckWallCollision(b, g.arena) == CollisionFloor {
		g.handleMiss()
		return
	}
	if CheckPaddleCollision(b, &g.paddle, g.ballSpeed()) {
		return
	}

	row, col, ok := g.brickAt(b.CellX(), b.CellY())
	if !ok {
		return
	}
	_ = g.bricks.Set(core.Point{X: col, Y: row}, false)
	g.sess.Add(g.brickPoints(row))
	b.VY = -b.VY

	if g.bricks.Count(func(alive bool) bool { return alive }) == 0 {
		_ = g.phase.Transition(core.PhaseWon)
		g.sess.Finalize()
	}
}

// brickAt returns the alive brick covering screen cell (x, y).
func (g *Game) brickAt(x, y int) (row, col int, ok bool) {
	row = y - brickTop
	if x < g.bricksX {
		return 0, 0, false
	}
	col = (x - g.bricksX) / g.brickWidth
	alive, in := g.bricks.Get(core.Point{X: col, Y: row})
	return row, col, in && alive
}

func (g *Game) brickPoints(row int) int {
	return (g.cfg.Bricks.Rows - row) * g.cfg.Bricks.RowPoints
}

// handleMiss costs a life and parks a new ball on the paddle.
func (g *Game) handleMiss() {
	g.lives--
	if g.lives <= 0 {
		g.lives = 0
		_ = g.phase.Transition(core.PhaseGameOver)
		g.sess.Finalize()
		return
	}
	g.placeBallOnPaddle()
	_ = g.phase.Resolve(serveDelay, core.PhaseActive)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	g.renderHUD(dst)
	dst.DrawHLine(0, 1, dst.Width(), BorderHoriz)
	dst.DrawVLine(0, 2, dst.Height()-2, BorderVert)
	dst.DrawVLine(dst.Width()-1, 2, dst.Height()-2, BorderVert)

	g.bricks.Each(func(p core.Point, alive bool) {
		if !alive {
			return
		}
		glyph := BrickGlyphs[p.Y%len(BrickGlyphs)]
		color := brickColors[p.Y%len(brickColors)]
		x0 := g.bricksX + p.X*g.brickWidth
		// Leave a one-cell gap between bricks when there is room.
		for i := 0; i < max(g.brickWidth-1, 1); i++ {
			dst.SetWithColor(x0+i, brickTop+p.Y, glyph, color)
		}
	})

	px := g.paddle.X.ToCell()
	for i := 0; i < g.paddle.Width; i++ {
		dst.SetWithColor(px+i, g.paddle.Y, PaddleChar, core.ColorBrightWhite)
	}
	dst.SetWithColor(g.ball.CellX(), g.ball.CellY(), BallChar, core.ColorBrightYellow)

	switch {
	case g.phase.Is(core.PhaseWon):
		dst.DrawMessage("YOU WIN!", fmt.Sprintf("Score: %d - Press R", g.sess.Score()))
	case g.phase.Is(core.PhaseGameOver):
		dst.DrawMessage("GAME OVER", fmt.Sprintf("Score: %d - Press R", g.sess.Score()))
	case g.paused:
		dst.DrawMessage("PAUSED", "Press P to resume")
	case g.ball.Stuck && !g.phase.Is(core.PhaseResolving):
		dst.DrawTextCentered(g.paddle.Y-3, "Press SPACE to launch")
	}
}

// renderHUD draws the score and lives.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.sess.Score()))
	dst.DrawTextCentered(0, fmt.Sprintf("Lives: %d", g.lives))
	best := fmt.Sprintf("Best: %d", g.sess.HighScore())
	dst.DrawText(dst.Width()-len(best)-1, 0, best)
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
