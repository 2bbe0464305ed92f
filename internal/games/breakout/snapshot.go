package breakout

import (
	"hash/fnv"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

// Snapshot contains the complete game state for replay and determinism tests.
// Uses primitive types only for stable hashing.
type Snapshot struct {
	Tick            uint64
	Phase           core.Phase
	PaddleX         int
	PaddleWidth     int
	Score           int
	Lives           int
	BricksRemaining int
	BallX, BallY    int
	BallVX, BallVY  int
	BallStuck       bool
	Paused          bool

	// Brick states, row-major, 1 = alive
	BrickData []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	data := make([]int, 0, g.bricks.Width()*g.bricks.Height())
	remaining := 0
	g.bricks.Each(func(_ core.Point, alive bool) {
		if alive {
			data = append(data, 1)
			remaining++
		} else {
			data = append(data, 0)
		}
	})

	return Snapshot{
		Tick:            g.tick,
		Phase:           g.phase.Phase(),
		PaddleX:         int(g.paddle.X),
		PaddleWidth:     g.paddle.Width,
		Score:           g.sess.Score(),
		Lives:           g.lives,
		BricksRemaining: remaining,
		BallX:           int(g.ball.X),
		BallY:           int(g.ball.Y),
		BallVX:          int(g.ball.VX),
		BallVY:          int(g.ball.VY),
		BallStuck:       g.ball.Stuck,
		Paused:          g.paused,
		BrickData:       data,
	}
}

// Hash returns an FNV-1a hash of the snapshot for quick comparison.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	put := func(v int) {
		var b [8]byte
		u := uint64(v)
		for i := range b {
			b[i] = byte(u >> (8 * i))
		}
		_, _ = h.Write(b[:])
	}
	put(int(s.Tick))
	put(int(s.Phase))
	put(s.PaddleX)
	put(s.PaddleWidth)
	put(s.Score)
	put(s.Lives)
	put(s.BallX)
	put(s.BallY)
	put(s.BallVX)
	put(s.BallVY)
	if s.BallStuck {
		put(1)
	} else {
		put(0)
	}
	for _, b := range s.BrickData {
		put(b)
	}
	return h.Sum64()
}
