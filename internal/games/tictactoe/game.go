// Package tictactoe implements hot-seat Tic Tac Toe.
package tictactoe

import (
	"fmt"

	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/registry"
)

// Size is the board edge and the line length that wins.
const Size = 3

const (
	cellW   = 6
	cellH   = 3
	boardY  = 3
	boardW  = Size*cellW + Size - 1
	boardH  = Size*cellH + Size - 1
	minW    = boardW + 2
	minH    = boardY + boardH + 2
	winBase = 100
	perOpen = 10
)

// lines lists every row, column and diagonal.
var lines = func() [][Size]core.Point {
	var ls [][Size]core.Point
	for i := range Size {
		var row, col [Size]core.Point
		for j := range Size {
			row[j] = core.Point{X: j, Y: i}
			col[j] = core.Point{X: i, Y: j}
		}
		ls = append(ls, row, col)
	}
	var diag, anti [Size]core.Point
	for i := range Size {
		diag[i] = core.Point{X: i, Y: i}
		anti[i] = core.Point{X: Size - 1 - i, Y: i}
	}
	return append(ls, diag, anti)
}()

// Game implements Tic Tac Toe for two players at one keyboard. X is
// Player1 and moves first.
type Game struct {
	board *core.Grid[core.PlayerID]
	phase core.PhaseMachine
	sess  core.Session

	current core.PlayerID
	winner  core.PlayerID
	cursor  core.Point
	moves   int
	line    []core.Point

	tick     uint64
	boardX   int
	paused   bool
	tooSmall bool
}

// New creates a new Tic Tac Toe game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("tictactoe", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "tictactoe" }

// Title returns the display name.
func (g *Game) Title() string { return "Tic Tac Toe" }

// Reset clears the board. There is nothing random, so the seed is unused.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.board = core.NewGrid[core.PlayerID](Size, Size)
	g.phase.Reset(core.PhaseActive)
	g.sess.Reset()
	g.current = core.Player1
	g.winner = core.PlayerNone
	g.cursor = core.Point{X: Size / 2, Y: Size / 2}
	g.moves = 0
	g.line = nil
	g.tick = 0
	g.paused = false
	g.boardX = (cfg.ScreenW - boardW) / 2
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
		case core.ActionUp:
			g.moveCursor(core.Up)
		case core.ActionDown:
			g.moveCursor(core.Down)
		case core.ActionLeft:
			g.moveCursor(core.Left)
		case core.ActionRight:
			g.moveCursor(core.Right)
		case core.ActionConfirm, core.ActionJump:
			g.Mark(g.cursor)
		case core.ActionDigit:
			if ev.Digit >= 1 && ev.Digit <= Size*Size {
				g.cursor = core.Point{X: (ev.Digit - 1) % Size, Y: (ev.Digit - 1) / Size}
				g.Mark(g.cursor)
			}
		case core.ActionPointer:
			if p, ok := g.cellAt(ev.X, ev.Y); ok {
				g.cursor = p
				g.Mark(p)
			}
		}
	}
	return core.StepResult{State: g.State()}
}

func (g *Game) moveCursor(d core.Point) {
	g.cursor, _ = g.board.Resolve(g.cursor.Add(d), core.BoundaryClamp)
}

func (g *Game) cellRect(p core.Point) core.Rect {
	return core.NewRect(g.boardX+p.X*(cellW+1), boardY+p.Y*(cellH+1), cellW, cellH)
}

func (g *Game) cellAt(x, y int) (core.Point, bool) {
	var hit core.Point
	found := false
	g.board.Each(func(p core.Point, _ core.PlayerID) {
		if g.cellRect(p).Contains(x, y) {
			hit, found = p, true
		}
	})
	return hit, found
}

// Mark places the current player's mark at p. An occupied or invalid
// cell is ignored and the turn does not pass.
func (g *Game) Mark(p core.Point) bool {
	if g.phase.Terminal() {
		return false
	}
	if v, ok := g.board.Get(p); !ok || v != core.PlayerNone {
		return false
	}
	_ = g.board.Set(p, g.current)
	g.moves++

	if line := g.winningLine(); line != nil {
		g.winner = g.current
		g.line = line
		// Faster wins score more.
		g.sess.Add(winBase + perOpen*(Size*Size-g.moves))
		g.finish(core.PhaseWon)
		return true
	}
	if g.moves == Size*Size {
		g.finish(core.PhaseGameOver)
		return true
	}
	g.current = g.current.Other()
	return true
}

func (g *Game) winningLine() []core.Point {
	for _, l := range lines {
		who := g.board.At(l[0].X, l[0].Y)
		if who == core.PlayerNone {
			continue
		}
		won := true
		for _, p := range l[1:] {
			if g.board.At(p.X, p.Y) != who {
				won = false
				break
			}
		}
		if won {
			return l[:]
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

var markColors = map[core.PlayerID]core.Color{
	core.Player1: core.ColorBrightCyan,
	core.Player2: core.ColorBrightMagenta,
}

func playerName(p core.PlayerID) string {
	if p == core.Player1 {
		return "X"
	}
	return "O"
}

// Render draws the grid lines, the marks and the status line.
func (g *Game) Render(dst *core.Screen) {
	if g.tooSmall {
		dst.DrawMessage("Window too small", fmt.Sprintf("Need at least %dx%d", minW, minH))
		return
	}

	dst.DrawTextCentered(0, "TIC TAC TOE")
	if !g.phase.Terminal() {
		status := fmt.Sprintf("%s to move", playerName(g.current))
		dst.DrawTextColor((dst.Width()-len(status))/2, 1, status, markColors[g.current])
	}

	for i := 1; i < Size; i++ {
		dst.DrawVLine(g.boardX+i*(cellW+1)-1, boardY, boardH, '│')
		dst.DrawHLine(g.boardX, boardY+i*(cellH+1)-1, boardW, '─')
	}
	for i := 1; i < Size; i++ {
		for j := 1; j < Size; j++ {
			dst.Set(g.boardX+i*(cellW+1)-1, boardY+j*(cellH+1)-1, '┼')
		}
	}

	winning := map[core.Point]bool{}
	for _, p := range g.line {
		winning[p] = true
	}
	g.board.Each(func(p core.Point, who core.PlayerID) {
		cx, cy := g.cellRect(p).Center()
		switch {
		case who == core.PlayerNone:
			dst.SetWithColor(cx, cy, rune('1'+p.Y*Size+p.X), core.ColorGray)
		case winning[p]:
			dst.SetWithColor(cx, cy, rune(playerName(who)[0]), core.ColorBrightGreen)
		default:
			dst.SetWithColor(cx, cy, rune(playerName(who)[0]), markColors[who])
		}
	})
	if !g.phase.Terminal() {
		r := g.cellRect(g.cursor)
		_, cy := r.Center()
		dst.SetWithColor(r.X+1, cy, '>', core.ColorBrightYellow)
		dst.SetWithColor(r.Right()-2, cy, '<', core.ColorBrightYellow)
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

// Snapshot captures the game for determinism and idempotence tests.
type Snapshot struct {
	Tick    uint64
	Phase   core.Phase
	Board   string
	Current core.PlayerID
	Winner  core.PlayerID
	Cursor  core.Point
	Moves   int
	Score   int
}

// Snapshot returns the current game snapshot. Board holds one digit per
// cell, row-major from the top.
func (g *Game) Snapshot() Snapshot {
	b := make([]byte, 0, Size*Size)
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
