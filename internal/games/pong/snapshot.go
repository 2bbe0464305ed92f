package pong

import "github.com/vovakirdan/retro-arcade/internal/core"

// Snapshot contains the complete state of a Pong match.
// Uses primitive types only; velocities are scaled by 1000.
type Snapshot struct {
	Tick     int
	Phase    core.Phase
	BallX    int
	BallY    int
	BallVX   int
	BallVY   int
	Paddle1Y int
	Paddle2Y int
	Score1   int
	Score2   int
	Winner   core.PlayerID
	Paused   bool
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.tickCount,
		Phase:    g.phase.Phase(),
		BallX:    int(g.ball.X * 1000),
		BallY:    int(g.ball.Y * 1000),
		BallVX:   int(g.ballVel.X * 1000),
		BallVY:   int(g.ballVel.Y * 1000),
		Paddle1Y: int(g.paddle1Y * 1000),
		Paddle2Y: int(g.paddle2Y * 1000),
		Score1:   g.sess.Score(),
		Score2:   g.cpuScore,
		Winner:   g.winner,
		Paused:   g.paused,
	}
}
