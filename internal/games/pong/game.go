// Package pong implements a classic Pong game with CPU opponent.
// Player 1 controls the left paddle, CPU controls the right paddle.
package pong

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
	PaddleChar = '█'
	BallChar   = '●'
	NetChar    = '│'
)

// Game implements the Pong game logic.
type Game struct {
	cfg  config.PongConfig
	diff *config.DifficultyManager
	rng  *rand.Rand

	phase core.PhaseMachine
	sess  core.Session // Player points

	// Paddles (top edge Y)
	paddle1Y float64 // Player 1 (left)
	paddle2Y float64 // CPU (right)

	ball    core.Vec
	ballVel core.Vec

	cpuScore int
	winner   core.PlayerID
	server   core.PlayerID // Side the next serve travels towards

	screenW, screenH int
	paddleHeight     int
	paused           bool
	tickCount        int
}

// New creates a new Pong game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "pong"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Pong"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	preset, _ := config.ParsePreset(runtime.Difficulty)
	cfg, err := config.LoadPong(runtime.ConfigPath, preset)
	if err != nil {
		cfg = config.DefaultPongConfig()
		config.ApplyPongPreset(&cfg, preset)
	}
	cfg.Gameplay.WinScore = max(cfg.Gameplay.WinScore, 1)
	cfg.Paddles.Width = max(cfg.Paddles.Width, 1)

	g.cfg = cfg
	g.diff = config.NewDifficultyManager(cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.screenW, g.screenH = runtime.ScreenW, runtime.ScreenH

	// Paddle height follows the screen but never exceeds the config.
	g.paddleHeight = core.Clamp(runtime.ScreenH/5, 3, max(cfg.Paddles.Height, 3))

	centerY := float64(runtime.ScreenH)/2.0 - float64(g.paddleHeight)/2.0
	g.paddle1Y = centerY
	g.paddle2Y = centerY

	g.sess.Reset()
	g.cpuScore = 0
	g.winner = core.PlayerNone
	g.paused = false
	g.tickCount = 0

	// The opening serve waits in Ready; later serves use Resolving.
	g.phase.Reset(core.PhaseReady)
	g.startServe(core.Player1)
}

// startServe centres the ball and aims it at server's side.
func (g *Game) startServe(server core.PlayerID) {
	g.server = server
	g.ball = core.Vec{X: float64(g.screenW) / 2.0, Y: float64(g.screenH) / 2.0}

	speed := g.ballSpeed()
	vx := speed
	if server == core.Player1 {
		vx = -speed
	}
	// Random vertical angle
	g.ballVel = core.Vec{X: vx, Y: speed * (g.rng.Float64() - 0.5) * 0.6}
}

// ballSpeed is the serve speed scaled by elapsed time.
func (g *Game) ballSpeed() float64 {
	return g.diff.Speed(g.cfg.Physics.BallSpeed, 0, g.tickCount)
}

// cpuSkill interpolates the CPU tracking skill with difficulty.
func (g *Game) cpuSkill() float64 {
	lvl := g.diff.Level(0, g.tickCount)
	return g.cfg.CPU.MinSkill + lvl*(g.cfg.CPU.MaxSkill-g.cfg.CPU.MinSkill)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.phase.Terminal() {
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}
	g.tickCount++

	// Paddles move during the serve countdown too.
	g.updatePlayer(in)
	g.updateCPU()

	switch {
	case g.phase.Is(core.PhaseReady):
		if g.tickCount >= g.cfg.Gameplay.ServeDelay {
			_ = g.phase.Transition(core.PhaseActive)
		}
	case g.phase.Is(core.PhaseResolving):
		g.phase.Tick()
	default:
		g.updateBall()
	}
	return core.StepResult{State: g.State()}
}

func (g *Game) updatePlayer(in core.InputFrame) {
	speed := g.cfg.Physics.PaddleSpeed
	if in.Held(core.ActionUp) {
		g.paddle1Y -= speed
	}
	if in.Held(core.ActionDown) {
		g.paddle1Y += speed
	}
	g.paddle1Y = core.ClampF(g.paddle1Y, 1, g.maxPaddleY())
}

func (g *Game) maxPaddleY() float64 {
	return float64(g.screenH - g.paddleHeight - 1)
}

// updateCPU handles CPU paddle movement.
func (g *Game) updateCPU() {
	// CPU tracks ball with some imperfection
	targetY := g.ball.Y - float64(g.paddleHeight)/2.0
	diff := targetY - g.paddle2Y

	// Only move if ball is coming towards CPU
	if g.ballVel.X > 0 {
		moveSpeed := g.cfg.Physics.PaddleSpeed * g.cpuSkill()
		if math.Abs(diff) > moveSpeed {
			if diff > 0 {
				g.paddle2Y += moveSpeed
			} else {
				g.paddle2Y -= moveSpeed
			}
		}
	}
	g.paddle2Y = core.ClampF(g.paddle2Y, 1, g.maxPaddleY())
}

// paddleX returns the column of a paddle's face.
func (g *Game) paddleX(p core.PlayerID) float64 {
	if p == core.Player1 {
		return float64(g.cfg.Paddles.Offset)
	}
	return float64(g.screenW - g.cfg.Paddles.Offset - g.cfg.Paddles.Width)
}

// updateBall moves the ball and checks collisions at its new position.
func (g *Game) updateBall() {
	g.ball = g.ball.Add(g.ballVel)

	// Bounce off top/bottom walls
	if g.ball.Y <= 1 {
		g.ball.Y = 1
		g.ballVel.Y = -g.ballVel.Y
	}
	if bottom := float64(g.screenH - 2); g.ball.Y >= bottom {
		g.ball.Y = bottom
		g.ballVel.Y = -g.ballVel.Y
	}

	w := float64(g.cfg.Paddles.Width)
	h := float64(g.paddleHeight)
	p1x, p2x := g.paddleX(core.Player1), g.paddleX(core.Player2)

	if g.ballVel.X < 0 && g.ball.X <= p1x+w && g.ball.X >= p1x-1 &&
		g.ball.Y >= g.paddle1Y && g.ball.Y <= g.paddle1Y+h {
		g.ball.X = p1x + w
		g.returnBall(g.paddle1Y)
	}
	if g.ballVel.X > 0 && g.ball.X >= p2x && g.ball.X <= p2x+w+1 &&
		g.ball.Y >= g.paddle2Y && g.ball.Y <= g.paddle2Y+h {
		g.ball.X = p2x - 1
		g.returnBall(g.paddle2Y)
	}

	// Limit ball speed
	maxSpeed := g.cfg.Physics.MaxBallSpeed
	if math.Abs(g.ballVel.X) > maxSpeed {
		g.ballVel.X = math.Copysign(maxSpeed, g.ballVel.X)
	}
	if math.Abs(g.ballVel.Y) > maxSpeed/2 {
		g.ballVel.Y = math.Copysign(maxSpeed/2, g.ballVel.Y)
	}

	switch {
	case g.ball.X < 0:
		g.point(core.Player2)
	case g.ball.X > float64(g.screenW):
		g.point(core.Player1)
	}
}

// returnBall reflects the ball off a paddle, adding spin by hit position.
func (g *Game) returnBall(paddleY float64) {
	hitPos := (g.ball.Y - paddleY) / float64(g.paddleHeight)
	g.ballVel.X = -g.ballVel.X * 1.02
	g.ballVel.Y += (hitPos - 0.5) * g.cfg.Physics.SpinFactor
}

// point awards a rally, ending the match at the win score.
func (g *Game) point(scorer core.PlayerID) {
	win := g.cfg.Gameplay.WinScore
	if scorer == core.Player1 {
		g.sess.Add(1)
		if g.sess.Score() >= win {
			g.finish(core.Player1, core.PhaseWon)
			return
		}
	} else {
		g.cpuScore++
		if g.cpuScore >= win {
			g.finish(core.Player2, core.PhaseGameOver)
			return
		}
	}
	// Serve towards the side that conceded.
	g.startServe(scorer.Other())
	_ = g.phase.Resolve(g.cfg.Gameplay.ServeDelay, core.PhaseActive)
}

func (g *Game) finish(winner core.PlayerID, phase core.Phase) {
	g.winner = winner
	_ = g.phase.Transition(phase)
	g.sess.Finalize()
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	// Draw center line (net)
	centerX := dst.Width() / 2
	for y := 1; y < dst.Height()-1; y += 2 {
		dst.SetWithColor(centerX, y, NetChar, core.ColorGray)
	}

	p1x := int(g.paddleX(core.Player1))
	p2x := int(g.paddleX(core.Player2))
	for i := range g.paddleHeight {
		for j := range g.cfg.Paddles.Width {
			dst.SetWithColor(p1x+j, int(g.paddle1Y)+i, PaddleChar, core.ColorBrightCyan)
			dst.SetWithColor(p2x+j, int(g.paddle2Y)+i, PaddleChar, core.ColorBrightRed)
		}
	}

	serving := !g.phase.Is(core.PhaseActive) && !g.phase.Terminal()
	if !serving || (g.tickCount/10)%2 == 0 { // Blink during serve
		dst.SetWithColor(int(g.ball.X), int(g.ball.Y), BallChar, core.ColorBrightWhite)
	}

	// Draw scores
	dst.DrawText(centerX-5, 0, fmt.Sprintf("%d", g.sess.Score()))
	dst.DrawText(centerX+4, 0, fmt.Sprintf("%d", g.cpuScore))
	dst.DrawText(1, 0, "P1")
	dst.DrawText(dst.Width()-4, 0, "CPU")

	switch {
	case g.phase.Terminal():
		msg := "CPU WINS!"
		if g.winner == core.Player1 {
			msg = "YOU WIN!"
		}
		dst.DrawMessage(msg, fmt.Sprintf("%d - %d  |  Press R to restart", g.sess.Score(), g.cpuScore))
	case g.paused:
		dst.DrawMessage("PAUSED", "Press P to resume")
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.sess.Score(), // Report player's score
		HighScore: g.sess.HighScore(),
		Phase:     g.phase.Phase(),
		Paused:    g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("pong", func() registry.Game {
		return New()
	})
}
