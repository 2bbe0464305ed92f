package asteroids

import (
	"math"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

// Kind tags what an Entity is.
type Kind int

const (
	KindShip Kind = iota
	KindBullet
	KindRock
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindShip:
		return "ship"
	case KindBullet:
		return "bullet"
	case KindRock:
		return "rock"
	default:
		return "unknown"
	}
}

// Entity is everything that moves on the field. Fields that do not apply
// to a kind stay zero.
type Entity struct {
	Kind  Kind
	Pos   core.Vec
	Vel   core.Vec
	Angle float64 // Ship heading in radians, y grows downwards
	Size  int     // Rock size 3 (large) to 1 (small)
	Life  int     // Bullet ticks left
	Dead  bool    // Marked for removal at the end of the tick
}

// rockRadius is the collision radius by rock size, in cells.
var rockRadius = [...]float64{0, 0.9, 1.6, 2.6}

const shipRadius = 0.6

// Radius returns the collision radius of the entity.
func (e Entity) Radius() float64 {
	switch e.Kind {
	case KindRock:
		if e.Size > 0 && e.Size < len(rockRadius) {
			return rockRadius[e.Size]
		}
		return rockRadius[len(rockRadius)-1]
	case KindShip:
		return shipRadius
	default:
		return 0
	}
}

// Move advances the entity one tick on a w x h torus.
func (e *Entity) Move(w, h float64) {
	e.Pos = e.Pos.Add(e.Vel).Wrap(w, h)
}

// torusDist returns the shortest distance between a and b on a w x h torus.
func torusDist(a, b core.Vec, w, h float64) float64 {
	dx := math.Abs(a.X - b.X)
	dy := math.Abs(a.Y - b.Y)
	dx = math.Min(dx, w-dx)
	dy = math.Min(dy, h-dy)
	return math.Hypot(dx, dy)
}

// Touches reports whether the two entities overlap on a w x h torus.
func (e Entity) Touches(o Entity, w, h float64) bool {
	return torusDist(e.Pos, o.Pos, w, h) < e.Radius()+o.Radius()
}

// headingChars indexes arrows by heading in eighths of a turn, starting east.
var headingChars = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// HeadingChar returns the arrow closest to the ship heading.
func (e Entity) HeadingChar() rune {
	i := int(math.Round(e.Angle/(math.Pi/4))) % 8
	if i < 0 {
		i += 8
	}
	return headingChars[i]
}
