package frogger

import "github.com/vovakirdan/retro-arcade/internal/core"

// Snapshot contains the complete state of a Frogger round.
// World positions are scaled by 1000.
type Snapshot struct {
	Tick    int
	Phase   core.Phase
	Score   int
	Lives   int
	FrogX   int
	FrogRow int
	Riding  int
	Cars    []int
	Logs    []int
	Paused  bool
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:    g.tickCount,
		Phase:   g.phase.Phase(),
		Score:   g.sess.Score(),
		Lives:   g.lives,
		FrogX:   int(g.frogX * 1000),
		FrogRow: g.frogRow,
		Riding:  g.riding,
		Cars:    positions(g.cars),
		Logs:    positions(g.logs),
		Paused:  g.paused,
	}
}

func positions(movers []Mover) []int {
	out := make([]int, len(movers))
	for i, m := range movers {
		out[i] = int(m.X * 1000)
	}
	return out
}
