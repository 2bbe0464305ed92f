// Package slide implements the 15-puzzle: slide numbered tiles into the
// blank until they read 1 to 15 in order.
package slide

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/registry"
)

// Size is the board edge; tiles run 1..Size*Size-1 with Blank in the gap.
const (
	Size  = 4
	Blank = 0
)

const (
	shuffleMoves = 200
	maxScore     = 1000
	minScore     = 100
)

const (
	cellW  = 6
	cellH  = 3
	boardY = 3
	minW   = Size*cellW + 1
	minH   = boardY + Size*cellH + 3
)

var slideDirs = []core.Point{core.Up, core.Down, core.Left, core.Right}

// Game implements the sliding puzzle.
type Game struct {
	board *core.Grid[int]
	phase core.PhaseMachine
	sess  core.Session

	blank core.Point
	moves int

	tick     uint64
	boardX   int
	paused   bool
	tooSmall bool
}

// New creates a new sliding puzzle.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier.
func (g *Game) ID() string { return "slide" }

// Title returns the display name.
func (g *Game) Title() string { return "Sliding Puzzle" }

// Reset deals a shuffled board. Shuffling only makes legal moves, so
// every deal is solvable.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	g.board = Solved()
	g.blank = core.Point{X: Size - 1, Y: Size - 1}
	for g.board.Equal(Solved()) {
		for range shuffleMoves {
			g.shiftBlank(slideDirs[rng.Intn(len(slideDirs))])
		}
	}
	g.moves = 0
	g.tick = 0
	g.paused = false
	g.boardX = (cfg.ScreenW - (Size*cellW + 1)) / 2
	g.tooSmall = cfg.ScreenW < minW || cfg.ScreenH < minH
	g.sess.Reset()
	g.phase.Reset(core.PhaseActive)
}

// Solved returns the finished board.
func Solved() *core.Grid[int] {
	b := core.NewGrid[int](Size, Size)
	for i := range Size*Size - 1 {
		_ = b.Set(core.Point{X: i % Size, Y: i / Size}, i+1)
	}
	return b
}

// shiftBlank swaps the blank with its neighbour in direction d.
func (g *Game) shiftBlank(d core.Point) bool {
	next, ok := g.board.Resolve(g.blank.Add(d), core.BoundaryReject)
	if !ok {
		return false
	}
	_ = g.board.Set(g.blank, g.board.At(next.X, next.Y))
	_ = g.board.Set(next, Blank)
	g.blank = next
	return true
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.phase.Terminal() {
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}
	g.tick++

	for _, ev := range in.Events() {
		switch ev.Action {
		case core.ActionUp:
			g.Slide(core.Up)
		case core.ActionDown:
			g.Slide(core.Down)
		case core.ActionLeft:
			g.Slide(core.Left)
		case core.ActionRight:
			g.Slide(core.Right)
		case core.ActionPointer:
			if p, ok := g.cellAt(ev.X, ev.Y); ok {
				g.SlideTile(p)
			}
		}
	}
	return core.StepResult{State: g.State()}
}

// Slide moves the tile next to the blank in direction d, so Up pulls the
// tile below the gap upwards. With no such tile nothing happens.
func (g *Game) Slide(d core.Point) bool {
	if !g.phase.Is(core.PhaseActive) {
		return false
	}
	if !g.shiftBlank(d.Neg()) {
		return false
	}
	g.moves++
	if g.board.Equal(Solved()) {
		g.sess.Add(max(maxScore-g.moves, minScore))
		_ = g.phase.Transition(core.PhaseWon)
		g.sess.Finalize()
	}
	return true
}

// SlideTile moves the tile at p into the blank when they are neighbours.
func (g *Game) SlideTile(p core.Point) bool {
	for _, d := range slideDirs {
		if p.Add(d) == g.blank {
			return g.Slide(d)
		}
	}
	return false
}

func (g *Game) cellAt(x, y int) (core.Point, bool) {
	if x < g.boardX || y < boardY {
		return core.Point{}, false
	}
	p := core.Point{X: (x - g.boardX) / cellW, Y: (y - boardY) / cellH}
	return p, g.board.InBounds(p)
}

// Moves returns the slides made since the deal.
func (g *Game) Moves() int {
	return g.moves
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.sess.Score(),
		HighScore: g.sess.HighScore(),
		Phase:     g.phase.Phase(),
		Paused:    g.paused,
	}
}

// Render draws the tiles as boxes with their number centred.
func (g *Game) Render(dst *core.Screen) {
	if g.tooSmall {
		dst.DrawMessage("Window too small", fmt.Sprintf("Need at least %dx%d", minW, minH))
		return
	}

	dst.DrawTextCentered(0, "SLIDING PUZZLE")
	dst.DrawTextCentered(1, fmt.Sprintf("Moves: %d  Best: %d", g.moves, g.sess.HighScore()))

	g.board.Each(func(p core.Point, v int) {
		if v == Blank {
			return
		}
		r := core.NewRect(g.boardX+p.X*cellW, boardY+p.Y*cellH, cellW, cellH)
		dst.DrawBox(r)
		color := core.ColorBrightCyan
		if v == p.Y*Size+p.X+1 {
			color = core.ColorBrightGreen
		}
		label := fmt.Sprintf("%2d", v)
		dst.DrawTextColor(r.X+(cellW-len(label))/2, r.Y+1, label, color)
	})
	dst.DrawTextCentered(boardY+Size*cellH+1, "Arrows slide a tile into the gap")

	switch {
	case g.phase.Is(core.PhaseWon):
		dst.DrawMessage("SOLVED!", fmt.Sprintf("%d moves  |  Press R to shuffle", g.moves))
	case g.paused:
		dst.DrawMessage("PAUSED", "Press P to resume")
	}
}

// Snapshot captures the game for determinism tests.
type Snapshot struct {
	Tick  uint64
	Phase core.Phase
	Tiles [Size * Size]int
	Moves int
	Score int
}

// Snapshot returns the current game snapshot. Tiles are row-major.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:  g.tick,
		Phase: g.phase.Phase(),
		Moves: g.moves,
		Score: g.sess.Score(),
	}
	g.board.Each(func(p core.Point, v int) {
		s.Tiles[p.Y*Size+p.X] = v
	})
	return s
}

func init() {
	registry.Register("slide", func() registry.Game {
		return New()
	})
}
