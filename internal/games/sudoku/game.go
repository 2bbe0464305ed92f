// Package sudoku implements classic 9x9 Sudoku with generated puzzles.
package sudoku

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/registry"
)

const (
	maxScore    = 1000
	minScore    = 100
	mistakeCost = 25
)

const (
	cellW  = 3
	boardY = 3
	boardW = Size*cellW + Size/Box - 1
	boardH = Size + Size/Box - 1
	minW   = boardW + 2
	minH   = boardY + boardH + 2
)

// Game implements Sudoku. Given cells are fixed; the rest take digits
// until the board matches the solution.
type Game struct {
	puzzle   *core.Grid[int]
	solution *core.Grid[int]
	fixed    *core.Grid[bool]
	phase    core.PhaseMachine
	sess     core.Session

	cursor   core.Point
	mistakes int

	tick     uint64
	boardX   int
	paused   bool
	tooSmall bool
}

// New creates a new Sudoku game.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier.
func (g *Game) ID() string { return "sudoku" }

// Title returns the display name.
func (g *Game) Title() string { return "Sudoku" }

// Reset generates a new puzzle from the round's seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.solution, g.puzzle = Generate(rand.New(rand.NewSource(cfg.Seed)))
	g.fixed = core.NewGrid[bool](Size, Size)
	g.puzzle.Each(func(p core.Point, v int) {
		_ = g.fixed.Set(p, v != Empty)
	})
	g.cursor = core.Point{}
	if open := g.fixed.Points(func(f bool) bool { return !f }); len(open) > 0 {
		g.cursor = open[0]
	}
	g.mistakes = 0
	g.tick = 0
	g.paused = false
	g.boardX = (cfg.ScreenW - boardW) / 2
	g.tooSmall = cfg.ScreenW < minW || cfg.ScreenH < minH
	g.sess.Reset()
	g.phase.Reset(core.PhaseActive)
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
			g.moveCursor(core.Up)
		case core.ActionDown:
			g.moveCursor(core.Down)
		case core.ActionLeft:
			g.moveCursor(core.Left)
		case core.ActionRight:
			g.moveCursor(core.Right)
		case core.ActionDigit:
			if ev.Digit == 0 {
				g.Clear(g.cursor)
			} else {
				g.Place(g.cursor, ev.Digit)
			}
		case core.ActionFlag:
			g.Clear(g.cursor)
		case core.ActionPointer:
			if p, ok := g.cellAt(ev.X, ev.Y); ok && !g.fixed.At(p.X, p.Y) {
				g.cursor = p
			}
		}
	}
	return core.StepResult{State: g.State()}
}

func (g *Game) moveCursor(d core.Point) {
	g.cursor, _ = g.puzzle.Resolve(g.cursor.Add(d), core.BoundaryClamp)
}

// Place writes v into the open cell at p. Given cells and digits outside
// 1..9 are ignored. A digit that disagrees with the solution still goes
// in but counts as a mistake.
func (g *Game) Place(p core.Point, v int) bool {
	if !g.phase.Is(core.PhaseActive) || v < 1 || v > Size {
		return false
	}
	if fixed, ok := g.fixed.Get(p); !ok || fixed {
		return false
	}
	_ = g.puzzle.Set(p, v)
	if v != g.solution.At(p.X, p.Y) {
		g.mistakes++
		return true
	}
	if g.puzzle.Equal(g.solution) {
		g.sess.Add(max(maxScore-mistakeCost*g.mistakes, minScore))
		_ = g.phase.Transition(core.PhaseWon)
		g.sess.Finalize()
	}
	return true
}

// Clear empties the open cell at p.
func (g *Game) Clear(p core.Point) bool {
	if !g.phase.Is(core.PhaseActive) {
		return false
	}
	if fixed, ok := g.fixed.Get(p); !ok || fixed {
		return false
	}
	_ = g.puzzle.Set(p, Empty)
	return true
}

func (g *Game) cellX(c int) int { return g.boardX + c*cellW + c/Box }
func cellY(r int) int           { return boardY + r + r/Box }

func (g *Game) cellAt(x, y int) (core.Point, bool) {
	for r := range Size {
		if cellY(r) != y {
			continue
		}
		for c := range Size {
			if x >= g.cellX(c) && x < g.cellX(c)+cellW {
				return core.Point{X: c, Y: r}, true
			}
		}
	}
	return core.Point{}, false
}

// Mistakes returns how many wrong digits have been entered.
func (g *Game) Mistakes() int {
	return g.mistakes
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

// Render draws the grid with block separators. Wrong entries show red.
func (g *Game) Render(dst *core.Screen) {
	if g.tooSmall {
		dst.DrawMessage("Window too small", fmt.Sprintf("Need at least %dx%d", minW, minH))
		return
	}

	dst.DrawTextCentered(0, "SUDOKU")
	dst.DrawTextCentered(1, fmt.Sprintf("Mistakes: %d  Best: %d", g.mistakes, g.sess.HighScore()))

	for b := 1; b < Size/Box; b++ {
		dst.DrawVLine(g.cellX(b*Box)-1, boardY, boardH, '│')
		dst.DrawHLine(g.boardX, cellY(b*Box)-1, boardW, '─')
	}
	for r := 1; r < Size/Box; r++ {
		for c := 1; c < Size/Box; c++ {
			dst.Set(g.cellX(c*Box)-1, cellY(r*Box)-1, '┼')
		}
	}

	g.puzzle.Each(func(p core.Point, v int) {
		x, y := g.cellX(p.X), cellY(p.Y)
		switch {
		case v == Empty:
			dst.SetWithColor(x+1, y, '·', core.ColorGray)
		case g.fixed.At(p.X, p.Y):
			dst.SetWithColor(x+1, y, rune('0'+v), core.ColorBrightWhite)
		case v != g.solution.At(p.X, p.Y):
			dst.SetWithColor(x+1, y, rune('0'+v), core.ColorBrightRed)
		default:
			dst.SetWithColor(x+1, y, rune('0'+v), core.ColorBrightCyan)
		}
	})
	if g.phase.Is(core.PhaseActive) {
		x, y := g.cellX(g.cursor.X), cellY(g.cursor.Y)
		dst.SetWithColor(x, y, '[', core.ColorBrightYellow)
		dst.SetWithColor(x+cellW-1, y, ']', core.ColorBrightYellow)
	}
	dst.DrawTextCentered(boardY+boardH+1, "1-9 place  F clear")

	switch {
	case g.phase.Is(core.PhaseWon):
		dst.DrawMessage("SOLVED!", fmt.Sprintf("%d mistakes  |  Press R for a new puzzle", g.mistakes))
	case g.paused:
		dst.DrawMessage("PAUSED", "Press P to resume")
	}
}

// Snapshot captures the game for determinism tests.
type Snapshot struct {
	Tick     uint64
	Phase    core.Phase
	Board    string
	Cursor   core.Point
	Mistakes int
	Score    int
}

// Snapshot returns the current game snapshot. Board holds one digit per
// cell, row-major, with 0 for open cells.
func (g *Game) Snapshot() Snapshot {
	var sb strings.Builder
	g.puzzle.Each(func(_ core.Point, v int) {
		sb.WriteByte('0' + byte(v))
	})
	return Snapshot{
		Tick:     g.tick,
		Phase:    g.phase.Phase(),
		Board:    sb.String(),
		Cursor:   g.cursor,
		Mistakes: g.mistakes,
		Score:    g.sess.Score(),
	}
}

func init() {
	registry.Register("sudoku", func() registry.Game {
		return New()
	})
}
