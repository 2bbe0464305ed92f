// Package t2048 implements the classic 2048 sliding tile puzzle.
package t2048

import (
	"math/rand"

	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/registry"
)

// spawn4Prob is the chance a spawned tile is a 4 instead of a 2.
const spawn4Prob = 0.10

// Game implements the 2048 puzzle game.
type Game struct {
	rng   *rand.Rand
	tick  uint64
	phase core.PhaseMachine
	sess  core.Session

	board   Board
	moves   int          // Moves that changed the board
	merged  []core.Point // Merges of the last move, highlighted in render
	spawned core.Point   // Last spawned tile
	hasNew  bool

	screenW  int
	screenH  int
	paused   bool
	tooSmall bool
}

// New creates a new 2048 game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("2048", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "2048"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "2048"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.sess.Reset()
	g.phase.Reset(core.PhaseActive)
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false
	g.moves = 0
	g.merged = nil
	g.hasNew = false

	g.board = Board{}
	g.spawnTile()
	g.spawnTile()

	g.checkScreenSize()
}

// spawnTile spawns a new tile (2 or 4) in a random empty cell.
func (g *Game) spawnTile() {
	empty := EmptyCells(g.board)
	if len(empty) == 0 {
		return
	}

	cell := empty[g.rng.Intn(len(empty))]
	value := 2
	if g.rng.Float64() < spawn4Prob {
		value = 4
	}

	g.board[cell.Y][cell.X] = value
	g.spawned = cell
	g.hasNew = true
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	// Board (21 wide, 9 tall) + HUD (3 lines)
	g.tooSmall = g.screenW < 25 || g.screenH < 13
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

	// Only the first direction of a frame is played.
	for _, ev := range in.Events() {
		if dir, ok := directionFor(ev.Action); ok {
			g.processMove(dir)
			break
		}
	}

	return core.StepResult{State: g.State()}
}

func directionFor(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	default:
		return 0, false
	}
}

// processMove handles a move in the given direction.
// A move that changes nothing spawns nothing and is not counted.
func (g *Game) processMove(dir Direction) {
	m := Slide(g.board, dir)
	if !m.Changed {
		return
	}

	g.board = m.Board
	g.merged = m.Merged
	g.moves++
	g.sess.Add(m.Score)
	g.spawnTile()

	switch {
	case MaxTile(g.board) >= WinTile:
		g.finish(core.PhaseWon)
	case !CanMove(g.board):
		g.finish(core.PhaseGameOver)
	}
}

func (g *Game) finish(p core.Phase) {
	_ = g.phase.Transition(p)
	g.sess.Finalize()
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
