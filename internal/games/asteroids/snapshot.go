package asteroids

import "github.com/vovakirdan/retro-arcade/internal/core"

// EntitySnapshot is an Entity with positions scaled by 1000.
type EntitySnapshot struct {
	Kind   Kind
	X, Y   int
	VX, VY int
	Size   int
	Life   int
}

// Snapshot contains the complete state of an Asteroids round.
type Snapshot struct {
	Tick         int
	Phase        core.Phase
	Score        int
	Lives        int
	Wave         int
	Invulnerable int
	Entities     []EntitySnapshot
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:         g.tick,
		Phase:        g.phase.Phase(),
		Score:        g.sess.Score(),
		Lives:        g.lives,
		Wave:         g.wave,
		Invulnerable: g.invulnerable,
		Entities:     make([]EntitySnapshot, 0, len(g.entities)),
	}
	for _, e := range g.entities {
		s.Entities = append(s.Entities, EntitySnapshot{
			Kind: e.Kind,
			X:    int(e.Pos.X * 1000),
			Y:    int(e.Pos.Y * 1000),
			VX:   int(e.Vel.X * 1000),
			VY:   int(e.Vel.Y * 1000),
			Size: e.Size,
			Life: e.Life,
		})
	}
	return s
}
