package catch

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
)

var ballColors = [...]core.Color{
	core.ColorBrightRed,
	core.ColorBrightGreen,
	core.ColorBrightBlue,
	core.ColorBrightYellow,
}

// Ball is a falling ball in world units. X and Y are its center.
type Ball struct {
	X      float64
	Y      float64
	Speed  float64 // Fall distance per tick before difficulty scaling
	Radius float64
	Color  core.Color
}

// BallManager handles spawning, falling, and removal of balls.
type BallManager struct {
	balls []Ball
	rng   *rand.Rand
	timer int // Ticks since the last spawn
	world config.CatchWorld
	cfg   config.CatchBalls
	line  float64 // Y of the catch line
	reach float64
	diff  *config.DifficultyManager
}

// NewBallManager creates a ball manager drawing spawns from rng.
func NewBallManager(rng *rand.Rand, cfg config.CatchConfig, diff *config.DifficultyManager) *BallManager {
	return &BallManager{
		balls: make([]Ball, 0, 8),
		rng:   rng,
		world: cfg.World,
		cfg:   cfg.Balls,
		line:  cfg.World.Height - cfg.Basket.LineOffset,
		reach: cfg.Basket.Reach,
		diff:  diff,
	}
}

// Update spawns a ball when the interval has elapsed, then moves every
// ball down. A ball whose bottom reaches the catch line within reach of
// basketX is caught; one that falls past the bottom edge is missed.
func (bm *BallManager) Update(basketX float64, score, ticks int) (caught, missed int) {
	bm.timer++
	if bm.timer >= bm.diff.Interval(bm.cfg.SpawnInterval, bm.cfg.MinSpawnInterval, score, ticks) {
		bm.spawnBall()
		bm.timer = 0
	}

	scale := bm.diff.Speed(1.0, score, ticks)
	kept := bm.balls[:0]
	for _, b := range bm.balls {
		b.Y += b.Speed * scale
		switch {
		case b.Y+b.Radius >= bm.line && math.Abs(b.X-basketX) < bm.reach:
			caught++
		case b.Y > bm.world.Height:
			missed++
		default:
			kept = append(kept, b)
		}
	}
	bm.balls = kept
	return caught, missed
}

// spawnBall drops a new ball just above the top edge.
func (bm *BallManager) spawnBall() {
	span := max(int(bm.world.Width-2*bm.cfg.Margin), 0)
	radius := bm.cfg.MinRadius
	if r := int(bm.cfg.MaxRadius - bm.cfg.MinRadius); r > 0 {
		radius += float64(bm.rng.Intn(r + 1))
	}

	bm.balls = append(bm.balls, Ball{
		X:      bm.cfg.Margin + float64(bm.rng.Intn(span+1)),
		Y:      -20,
		Speed:  bm.cfg.MinSpeed + bm.rng.Float64()*(bm.cfg.MaxSpeed-bm.cfg.MinSpeed),
		Radius: radius,
		Color:  ballColors[bm.rng.Intn(len(ballColors))],
	})
}

// Balls returns the balls currently in flight.
func (bm *BallManager) Balls() []Ball {
	return bm.balls
}
