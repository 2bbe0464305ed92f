// Package connectfour implements hot-seat Connect Four on a 7x6 board.
package connectfour

import (
	"fmt"

	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/registry"
)

// Board dimensions and the line length that wins.
const (
	Cols      = 7
	Rows      = 6
	WinLength = 4
)

const (
	cellW   = 4
	boardY  = 4
	minW    = Cols*cellW + 3
	minH    = boardY + Rows + 4
	winBase = 100
)

// directions covers the four lines through a cell; the opposite halves
// are walked by negation.
var directions = [4]core.Point{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: -1}}

// Game implements Connect Four for two players at one keyboard.
type Game struct {
	board *core.Grid[core.PlayerID]
	phase core.PhaseMachine
	sess  core.Session

	current core.PlayerID
	winner  core.PlayerID
	cursor  int
	moves   int
	line    []core.Point // Winning discs

	tick     uint64
	boardX   int
	paused   bool
	tooSmall bool
}

// New creates a new Connect Four game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("connectfour", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "connectfour" }

// Title returns the display name.
func (g *Game) Title() string { return "Connect Four" }

// Reset initializes or restarts the game. The board has no random
// elements, so the seed is unused.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.board = core.NewGrid[core.PlayerID](Cols, Rows)
	g.phase.Reset(core.PhaseActive)
	g.sess.Reset()
	g.current = core.Player1
	g.winner = core.PlayerNone
	g.cursor = Cols / 2
	g.moves = 0
	g.line = nil
	g.tick = 0
	g.paused = false
	g.boardX = (cfg.ScreenW - (Cols*cellW + 1)) / 2
	g.tooSmall = cfg.ScreenW < minW || cfg.ScreenH < minH
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
		if g.phase.Terminal() {
			break
		}
		switch ev.Action {
		case core.ActionLeft:
			g.cursor = core.Clamp(g.cursor-1, 0, Cols-1)
		case core.ActionRight:
			g.cursor = core.Clamp(g.cursor+1, 0, Cols-1)
		case core.ActionConfirm, core.ActionJump, core.ActionDown:
			g.Drop(g.cursor)
		case core.ActionDigit:
			if ev.Digit >= 1 && ev.Digit <= Cols {
				g.cursor = ev.Digit - 1
				g.Drop(g.cursor)
			}
		case core.ActionPointer:
			if col, ok := g.columnAt(ev.X, ev.Y); ok {
				g.cursor = col
				g.Drop(col)
			}
		}
	}
	return core.StepResult{State: g.State()}
}

// columnAt maps a screen cell to a board column.
func (g *Game) columnAt(x, y int) (int, bool) {
	if y < boardY-1 || y > boardY+Rows || x < g.boardX || x >= g.boardX+Cols*cellW {
		return 0, false
	}
	return (x - g.boardX) / cellW, true
}

// Drop lets the current player's disc fall into col. A full or invalid
// column is ignored and the turn does not pass.
func (g *Game) Drop(col int) bool {
	if g.phase.Terminal() || col < 0 || col >= Cols {
		return false
	}
	row := -1
	for r := Rows - 1; r >= 0; r-- {
		if g.board.At(col, r) == core.PlayerNone {
			row = r
			break
		}
	}
	if row < 0 {
		return false
	}

	p := core.Point{X: col, Y: row}
	_ = g.board.Set(p, g.current)
	g.moves++

	if line := g.winningLine(p); line != nil {
		g.winner = g.current
		g.line = line
		// Faster wins score more.
		g.sess.Add(winBase + Cols*Rows - g.moves)
		g.finish(core.PhaseWon)
		return true
	}
	if g.moves == Cols*Rows {
		g.finish(core.PhaseGameOver)
		return true
	}
	g.current = g.current.Other()
	return true
}

// winningLine returns the discs of a line of WinLength or more through p,
// or nil.
func (g *Game) winningLine(p core.Point) []core.Point {
	who := g.board.At(p.X, p.Y)
	for _, d := range directions {
		line := []core.Point{p}
		for _, step := range []core.Point{d, d.Neg()} {
			q := p.Add(step)
			for v, ok := g.board.Get(q); ok && v == who; v, ok = g.board.Get(q) {
				line = append(line, q)
				q = q.Add(step)
			}
		}
		if len(line) >= WinLength {
			return line
		}
	}
	return nil
}

func (g *Game) finish(phase core.Phase) {
	_ = g.phase.Transition(phase)
	g.sess.Finalize()
}

// Winner returns the winning player, or PlayerNone for a draw or a game
// still in progress.
func (g *Game) Winner() core.PlayerID {
	return g.winner
}

// Current returns the player to move.
func (g *Game) Current() core.PlayerID {
	return g.current
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

var discColors = map[core.PlayerID]core.Color{
	core.Player1: core.ColorBrightRed,
	core.Player2: core.ColorBrightYellow,
}

func playerName(p core.PlayerID) string {
	if p == core.Player1 {
		return "Red"
	}
	return "Yellow"
}

// Render draws the board and status line.
func (g *Game) Render(dst *core.Screen) {
	if g.tooSmall {
		dst.DrawMessage("Window too small", fmt.Sprintf("Need at least %dx%d", minW, minH))
		return
	}

	dst.DrawTextCentered(0, "CONNECT FOUR")
	if !g.phase.Terminal() {
		status := fmt.Sprintf("%s to move", playerName(g.current))
		dst.DrawTextColor((dst.Width()-len(status))/2, 1, status, discColors[g.current])
		dst.SetWithColor(g.discX(g.cursor), boardY-1, '▼', discColors[g.current])
	}

	bx := g.boardX
	for r := range Rows {
		y := boardY + r
		for c := range Cols + 1 {
			dst.SetWithColor(bx+c*cellW, y, '│', core.ColorBlue)
		}
		for c := range Cols {
			who := g.board.At(c, r)
			switch {
			case who != core.PlayerNone:
				dst.SetWithColor(g.discX(c), y, '●', discColors[who])
			default:
				dst.SetWithColor(g.discX(c), y, '·', core.ColorGray)
			}
		}
	}
	dst.DrawHLine(bx, boardY+Rows, Cols*cellW+1, '─')
	for c := range Cols {
		dst.DrawText(g.discX(c), boardY+Rows+1, fmt.Sprintf("%d", c+1))
	}
	for _, p := range g.line {
		dst.SetWithColor(g.discX(p.X), boardY+p.Y, '◉', discColors[g.winner])
	}

	switch {
	case g.phase.Is(core.PhaseWon):
		dst.DrawMessage(fmt.Sprintf("%s WINS!", playerName(g.winner)), "Press R to play again")
	case g.phase.Is(core.PhaseGameOver):
		dst.DrawMessage("DRAW", "Press R to play again")
	case g.paused:
		dst.DrawMessage("PAUSED", "Press P to resume")
	}
}

func (g *Game) discX(col int) int {
	return g.boardX + col*cellW + cellW/2
}

// Snapshot captures the game for determinism and idempotence tests.
type Snapshot struct {
	Tick    uint64
	Phase   core.Phase
	Board   string
	Current core.PlayerID
	Winner  core.PlayerID
	Cursor  int
	Moves   int
	Score   int
}

// Snapshot returns the current game snapshot. Board holds one digit per
// cell, row-major from the top.
func (g *Game) Snapshot() Snapshot {
	b := make([]byte, 0, Cols*Rows)
	g.board.Each(func(_ core.Point, v core.PlayerID) {
		b = append(b, '0'+byte(v))
	})
	return Snapshot{
		Tick:    g.tick,
		Phase:   g.phase.Phase(),
		Board:   string(b),
		Current: g.current,
		Winner:  g.winner,
		Cursor:  g.cursor,
		Moves:   g.moves,
		Score:   g.sess.Score(),
	}
}
