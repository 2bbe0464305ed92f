// Package maze implements Maze Runner: find the way out of a randomly
// carved maze.
package maze

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/registry"
)

// Maze size in cells. Both are odd so walls and passages alternate.
const (
	Cols = 25
	Rows = 21
)

// Scoring: a clean escape is worth MaxScore, each step costs one point,
// never below MinScore.
const (
	MaxScore = 1000
	MinScore = 100
)

const (
	cellW  = 2
	boardY = 2
	minW   = Cols * cellW
	minH   = boardY + Rows
)

// Visual characters for rendering
const (
	WallChar   = '█'
	ExitChar   = '▒'
	PlayerChar = '@'
)

// Game implements Maze Runner. Walls are true cells of the maze grid.
type Game struct {
	phase core.PhaseMachine
	sess  core.Session

	maze   *core.Grid[bool]
	player core.Point
	exit   core.Point
	moves  int

	boardX   int
	paused   bool
	tooSmall bool
	tick     uint64
}

// New creates a new Maze Runner game.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier.
func (g *Game) ID() string { return "maze" }

// Title returns the display name.
func (g *Game) Title() string { return "Maze Runner" }

// Reset carves a new maze from the round's seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.maze = Generate(rand.New(rand.NewSource(cfg.Seed)), Cols, Rows)
	g.player = core.Point{X: 1, Y: 1}
	g.exit = core.Point{X: Cols - 2, Y: Rows - 2}
	_ = g.maze.Set(g.exit, false)
	g.moves = 0
	g.tick = 0
	g.paused = false
	g.boardX = (cfg.ScreenW - Cols*cellW) / 2
	g.tooSmall = cfg.ScreenW < minW || cfg.ScreenH < minH
	g.sess.Reset()
	g.phase.Reset(core.PhaseActive)
}

// Generate carves a perfect maze with a depth-first walk from (1, 1).
// Passages sit on odd coordinates; w and h should be odd.
func Generate(rng *rand.Rand, w, h int) *core.Grid[bool] {
	m := core.NewGrid[bool](w, h)
	m.Fill(true)

	start := core.Point{X: 1, Y: 1}
	_ = m.Set(start, false)
	stack := []core.Point{start}
	dirs := []core.Point{core.Up, core.Down, core.Left, core.Right}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		rng.Shuffle(len(dirs), func(i, j int) { dirs[i], dirs[j] = dirs[j], dirs[i] })

		carved := false
		for _, d := range dirs {
			next := core.Point{X: cur.X + 2*d.X, Y: cur.Y + 2*d.Y}
			if next.X <= 0 || next.X >= w-1 || next.Y <= 0 || next.Y >= h-1 || !m.At(next.X, next.Y) {
				continue
			}
			_ = m.Set(cur.Add(d), false)
			_ = m.Set(next, false)
			stack = append(stack, next)
			carved = true
			break
		}
		if !carved {
			stack = stack[:len(stack)-1]
		}
	}
	return m
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
			g.Move(core.Up)
		case core.ActionDown:
			g.Move(core.Down)
		case core.ActionLeft:
			g.Move(core.Left)
		case core.ActionRight:
			g.Move(core.Right)
		}
	}
	return core.StepResult{State: g.State()}
}

// Move steps the runner one cell. Walls and the maze edge block the move
// without counting it. It reports whether the runner moved.
func (g *Game) Move(d core.Point) bool {
	if !g.phase.Is(core.PhaseActive) {
		return false
	}
	next, ok := g.maze.Resolve(g.player.Add(d), core.BoundaryReject)
	if !ok || g.maze.At(next.X, next.Y) {
		return false
	}
	g.player = next
	g.moves++

	if g.player == g.exit {
		g.sess.Add(max(MaxScore-g.moves, MinScore))
		_ = g.phase.Transition(core.PhaseWon)
		g.sess.Finalize()
	}
	return true
}

// Moves returns the steps taken so far.
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

// Render draws the maze two columns per cell.
func (g *Game) Render(dst *core.Screen) {
	if g.tooSmall {
		dst.DrawMessage("Window too small", fmt.Sprintf("Need at least %dx%d", minW, minH))
		return
	}

	dst.DrawTextCentered(0, fmt.Sprintf("MAZE RUNNER  Moves: %d  Best: %d", g.moves, g.sess.HighScore()))

	g.maze.Each(func(p core.Point, wall bool) {
		if !wall {
			return
		}
		x, y := g.boardX+p.X*cellW, boardY+p.Y
		dst.SetWithColor(x, y, WallChar, core.ColorWhite)
		dst.SetWithColor(x+1, y, WallChar, core.ColorWhite)
	})
	ex, ey := g.boardX+g.exit.X*cellW, boardY+g.exit.Y
	dst.SetWithColor(ex, ey, ExitChar, core.ColorBrightGreen)
	dst.SetWithColor(ex+1, ey, ExitChar, core.ColorBrightGreen)
	dst.SetWithColor(g.boardX+g.player.X*cellW, boardY+g.player.Y, PlayerChar, core.ColorBrightRed)

	switch {
	case g.phase.Is(core.PhaseWon):
		dst.DrawMessage("YOU ESCAPED!", fmt.Sprintf("%d moves  |  Press R for a new maze", g.moves))
	case g.paused:
		dst.DrawMessage("PAUSED", "Press P to resume")
	}
}

// Snapshot captures the game for determinism tests.
type Snapshot struct {
	Tick   uint64
	Phase  core.Phase
	Maze   string
	Player core.Point
	Moves  int
	Score  int
}

// Snapshot returns the current game snapshot. Maze holds '#' for walls
// and '.' for passages, one row per line.
func (g *Game) Snapshot() Snapshot {
	var sb strings.Builder
	for y := range g.maze.Height() {
		for x := range g.maze.Width() {
			if g.maze.At(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return Snapshot{
		Tick:   g.tick,
		Phase:  g.phase.Phase(),
		Maze:   sb.String(),
		Player: g.player,
		Moves:  g.moves,
		Score:  g.sess.Score(),
	}
}

func init() {
	registry.Register("maze", func() registry.Game {
		return New()
	})
}
