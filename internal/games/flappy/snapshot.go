package flappy

import "github.com/vovakirdan/retro-arcade/internal/core"

// Snapshot contains the complete state of a flappy round.
// Player position and velocity are scaled by 1000.
type Snapshot struct {
	Tick    int
	Phase   core.Phase
	Score   int
	PlayerY int
	Vel     int
	Pipes   []Pipe
	Paused  bool
}

// Snapshot returns the current game state. Pipes is a copy.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:    g.tickCount,
		Phase:   g.phase.Phase(),
		Score:   g.sess.Score(),
		PlayerY: int(g.playerY * 1000),
		Vel:     int(g.playerVel * 1000),
		Pipes:   append([]Pipe(nil), g.pipes.Pipes()...),
		Paused:  g.paused,
	}
}
