package catch

import "github.com/vovakirdan/retro-arcade/internal/core"

// Snapshot contains the complete state of a catch round.
// The basket position is scaled by 1000.
type Snapshot struct {
	Tick   int
	Phase  core.Phase
	Score  int
	Basket int
	Misses int
	Balls  []Ball
	Paused bool
}

// Snapshot returns the current game state. Balls is a copy.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:   g.tickCount,
		Phase:  g.phase.Phase(),
		Score:  g.sess.Score(),
		Basket: int(g.basketX * 1000),
		Misses: g.misses,
		Balls:  append([]Ball(nil), g.balls.Balls()...),
		Paused: g.paused,
	}
}
