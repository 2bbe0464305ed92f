package snake

import "github.com/vovakirdan/retro-arcade/internal/core"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Phase     core.Phase
	Score     int
	Body      []core.Point // Head first
	Dir       Direction
	NextDir   Direction
	Food      core.Point
	HasFood   bool
	MoveEvery int
	Paused    bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.tick,
		Phase:     g.phase.Phase(),
		Score:     g.sess.Score(),
		Body:      append([]core.Point(nil), g.snake...),
		Dir:       g.direction,
		NextDir:   g.nextDir,
		Food:      g.food,
		HasFood:   g.hasFood,
		MoveEvery: g.moveEvery,
		Paused:    g.paused,
	}
}
