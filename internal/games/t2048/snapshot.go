package t2048

import "github.com/vovakirdan/retro-arcade/internal/core"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick    uint64
	Phase   core.Phase
	Score   int
	Moves   int
	Board   Board
	MaxTile int
	Paused  bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:    g.tick,
		Phase:   g.phase.Phase(),
		Score:   g.sess.Score(),
		Moves:   g.moves,
		Board:   g.board,
		MaxTile: MaxTile(g.board),
		Paused:  g.paused,
	}
}
