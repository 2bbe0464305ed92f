package flappy

import (
	"math/rand"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
)

// Pipe represents a vertical obstacle with a gap for the player to pass through.
type Pipe struct {
	X         int  // Horizontal position (left edge)
	GapY      int  // Y position where gap starts (top of gap)
	GapHeight int  // Height of the passable gap
	Passed    bool // Whether the player has passed this pipe (for scoring)
}

// TopRect returns the collision rectangle for the top portion of the pipe.
func (p Pipe) TopRect(pipeWidth int) core.Rect {
	return core.NewRect(p.X, 0, pipeWidth, p.GapY)
}

// BottomRect returns the collision rectangle for the bottom portion of the
// pipe, which reaches down to groundY.
func (p Pipe) BottomRect(pipeWidth, groundY int) core.Rect {
	bottomY := p.GapY + p.GapHeight
	return core.NewRect(p.X, bottomY, pipeWidth, core.Max(groundY-bottomY, 0))
}

// PipeManager handles spawning, movement, and removal of pipes.
// Pipes scroll by whole cells; fractional speed accumulates in scroll.
type PipeManager struct {
	pipes   []Pipe
	rng     *rand.Rand
	screenW int
	groundY int
	scroll  float64
	cfg     config.FlappyObstacles
	speed   float64
	diff    *config.DifficultyManager
}

// NewPipeManager creates a pipe manager drawing gaps from rng.
func NewPipeManager(rng *rand.Rand, screenW, groundY int, cfg config.FlappyConfig, diff *config.DifficultyManager) *PipeManager {
	return &PipeManager{
		pipes:   make([]Pipe, 0, 8),
		rng:     rng,
		screenW: screenW,
		groundY: groundY,
		cfg:     cfg.Obstacles,
		speed:   cfg.Physics.BaseSpeed,
		diff:    diff,
	}
}

// Update moves pipes left and spawns new ones as needed.
// Returns the number of pipes whose right edge went past playerX this tick.
func (pm *PipeManager) Update(playerX, score, ticks int) int {
	pm.scroll += pm.diff.Speed(pm.speed, score, ticks)
	shift := int(pm.scroll)
	pm.scroll -= float64(shift)

	for i := range pm.pipes {
		pm.pipes[i].X -= shift
	}

	passed := 0
	for i := range pm.pipes {
		if !pm.pipes[i].Passed && pm.pipes[i].X+pm.cfg.PipeWidth <= playerX {
			pm.pipes[i].Passed = true
			passed++
		}
	}

	// Drop pipes that left the screen
	kept := pm.pipes[:0]
	for _, p := range pm.pipes {
		if p.X+pm.cfg.PipeWidth > 0 {
			kept = append(kept, p)
		}
	}
	pm.pipes = kept

	spacing := pm.diff.Spacing(pm.cfg.PipeSpacing, score, ticks)
	if len(pm.pipes) == 0 || pm.pipes[len(pm.pipes)-1].X <= pm.screenW-spacing {
		pm.spawnPipe(score, ticks)
	}
	return passed
}

// spawnPipe creates a new pipe at the right edge of the screen.
func (pm *PipeManager) spawnPipe(score, ticks int) {
	minGap := pm.cfg.MinGapSize
	currentGap := core.Max(pm.diff.GapSize(pm.cfg.MaxGapSize, score, ticks), minGap)

	gapHeight := minGap
	if gapRange := currentGap - minGap; gapRange > 0 {
		gapHeight = minGap + pm.rng.Intn(gapRange+1)
	}

	minGapY := pm.cfg.TopMargin
	maxGapY := core.Max(pm.groundY-pm.cfg.BottomMargin-gapHeight, minGapY)

	gapY := minGapY
	if maxGapY > minGapY {
		gapY = minGapY + pm.rng.Intn(maxGapY-minGapY+1)
	}

	pm.pipes = append(pm.pipes, Pipe{X: pm.screenW, GapY: gapY, GapHeight: gapHeight})
}

// Pipes returns the current list of pipes.
func (pm *PipeManager) Pipes() []Pipe {
	return pm.pipes
}

// CheckCollision tests if the given rectangle collides with any pipe.
func (pm *PipeManager) CheckCollision(playerRect core.Rect) bool {
	for _, p := range pm.pipes {
		if playerRect.Intersects(p.TopRect(pm.cfg.PipeWidth)) ||
			playerRect.Intersects(p.BottomRect(pm.cfg.PipeWidth, pm.groundY)) {
			return true
		}
	}
	return false
}
