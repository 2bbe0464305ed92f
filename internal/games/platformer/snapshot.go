package platformer

import "github.com/vovakirdan/retro-arcade/internal/core"

// Snapshot contains the complete state of a platformer run.
// Player position and velocity are scaled by 1000.
type Snapshot struct {
	Tick     int
	Phase    core.Phase
	Score    int
	PlayerX  int
	PlayerY  int
	Vel      int
	Grounded bool
	Falls    int
	Paused   bool
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.tickCount,
		Phase:    g.phase.Phase(),
		Score:    g.sess.Score(),
		PlayerX:  int(g.playerX * 1000),
		PlayerY:  int(g.playerY * 1000),
		Vel:      int(g.playerVel * 1000),
		Grounded: g.isGrounded,
		Falls:    g.falls,
		Paused:   g.paused,
	}
}
