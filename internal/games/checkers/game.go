// Package checkers implements hot-seat Checkers on an 8x8 board.
// Moves are a single diagonal step or a single jump; captures are
// optional and men crown on the far row.
package checkers

import (
	"fmt"

	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/registry"
)

const (
	cellW    = 4
	cellH    = 2
	boardY   = 3
	minW     = Size*cellW + 2
	minH     = boardY + Size*cellH + 2
	winBase  = 100
	perPiece = 10
)

// Game implements Checkers for two players at one keyboard. Player1 is
// Red at the bottom and moves first.
type Game struct {
	board *core.Grid[Piece]
	phase core.PhaseMachine
	sess  core.Session

	current  core.PlayerID
	winner   core.PlayerID
	cursor   core.Point
	selected core.Point
	picked   bool
	options  []Move // Legal moves of the selected piece
	moves    int

	tick     uint64
	boardX   int
	paused   bool
	tooSmall bool
}

// New creates a new Checkers game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("checkers", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "checkers" }

// Title returns the display name.
func (g *Game) Title() string { return "Checkers" }

// Reset sets up the opening position. The seed is unused.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.board = NewBoard()
	g.phase.Reset(core.PhaseActive)
	g.sess.Reset()
	g.current = core.Player1
	g.winner = core.PlayerNone
	g.cursor = core.Point{X: 0, Y: Size - homeRows}
	g.deselect()
	g.moves = 0
	g.tick = 0
	g.paused = false
	g.boardX = (cfg.ScreenW - Size*cellW) / 2
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
			g.Choose(g.cursor)
		case core.ActionPointer:
			if p, ok := g.squareAt(ev.X, ev.Y); ok {
				g.cursor = p
				g.Choose(p)
			}
		}
	}
	return core.StepResult{State: g.State()}
}

func (g *Game) moveCursor(d core.Point) {
	g.cursor, _ = g.board.Resolve(g.cursor.Add(d), core.BoundaryClamp)
}

func (g *Game) squareRect(p core.Point) core.Rect {
	return core.NewRect(g.boardX+p.X*cellW, boardY+p.Y*cellH, cellW, cellH)
}

func (g *Game) squareAt(x, y int) (core.Point, bool) {
	if x < g.boardX || y < boardY {
		return core.Point{}, false
	}
	p := core.Point{X: (x - g.boardX) / cellW, Y: (y - boardY) / cellH}
	return p, g.board.InBounds(p)
}

// Choose acts on square p: it picks up one of the current player's
// pieces, or plays the picked piece to p when that is a legal move.
// Anything else drops the selection. It reports whether a move was made.
func (g *Game) Choose(p core.Point) bool {
	if g.phase.Terminal() {
		return false
	}
	if pc, ok := g.board.Get(p); ok && pc.Owner == g.current {
		g.selected = p
		g.picked = true
		g.options = MovesFrom(g.board, p)
		return false
	}
	if g.picked {
		for _, m := range g.options {
			if m.To == p {
				g.play(m)
				return true
			}
		}
	}
	g.deselect()
	return false
}

func (g *Game) deselect() {
	g.picked = false
	g.options = nil
}

func (g *Game) play(m Move) {
	Apply(g.board, m)
	g.moves++
	g.deselect()

	opponent := g.current.Other()
	if Pieces(g.board, opponent) == 0 || !HasMoves(g.board, opponent) {
		g.winner = g.current
		g.sess.Add(winBase + perPiece*Pieces(g.board, g.current))
		_ = g.phase.Transition(core.PhaseWon)
		g.sess.Finalize()
		return
	}
	g.current = opponent
}

// Winner returns the winning player, or PlayerNone while play goes on.
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

var pieceColors = map[core.PlayerID]core.Color{
	core.Player1: core.ColorBrightRed,
	core.Player2: core.ColorBrightWhite,
}

func playerName(p core.PlayerID) string {
	if p == core.Player1 {
		return "Red"
	}
	return "Black"
}

// Render draws the board, the pieces and the squares the picked piece
// can reach.
func (g *Game) Render(dst *core.Screen) {
	if g.tooSmall {
		dst.DrawMessage("Window too small", fmt.Sprintf("Need at least %dx%d", minW, minH))
		return
	}

	dst.DrawTextCentered(0, "CHECKERS")
	dst.DrawTextCentered(1, fmt.Sprintf("Red: %d  Black: %d",
		Pieces(g.board, core.Player1), Pieces(g.board, core.Player2)))
	if !g.phase.Terminal() {
		status := fmt.Sprintf("%s to move", playerName(g.current))
		dst.DrawTextColor((dst.Width()-len(status))/2, 2, status, pieceColors[g.current])
	}

	g.board.Each(func(p core.Point, pc Piece) {
		r := g.squareRect(p)
		if Dark(p) {
			for y := r.Y; y < r.Bottom(); y++ {
				dst.DrawTextColor(r.X, y, "░░░░", core.ColorGray)
			}
		}
		if pc.Owner == core.PlayerNone {
			return
		}
		glyph := '●'
		if pc.King {
			glyph = '◉'
		}
		cx, cy := r.Center()
		dst.SetWithColor(cx-1, cy, glyph, pieceColors[pc.Owner])
	})

	if g.picked {
		for _, m := range g.options {
			cx, cy := g.squareRect(m.To).Center()
			dst.SetWithColor(cx-1, cy, '·', core.ColorBrightGreen)
		}
		r := g.squareRect(g.selected)
		dst.SetWithColor(r.X, r.Y, '*', core.ColorBrightGreen)
	}
	if !g.phase.Terminal() {
		r := g.squareRect(g.cursor)
		_, cy := r.Center()
		dst.SetWithColor(r.X, cy, '[', core.ColorBrightYellow)
		dst.SetWithColor(r.Right()-1, cy, ']', core.ColorBrightYellow)
	}

	switch {
	case g.phase.Is(core.PhaseWon):
		dst.DrawMessage(fmt.Sprintf("%s WINS!", playerName(g.winner)), "Press R to play again")
	case g.paused:
		dst.DrawMessage("PAUSED", "Press P to resume")
	}
}

// Snapshot captures the game for determinism and idempotence tests.
type Snapshot struct {
	Tick     uint64
	Phase    core.Phase
	Board    string
	Current  core.PlayerID
	Winner   core.PlayerID
	Cursor   core.Point
	Selected core.Point
	Picked   bool
	Moves    int
	Score    int
}

// Snapshot returns the current game snapshot. Board holds one byte per
// square, row-major: '.' empty, 'r'/'b' men, 'R'/'B' kings.
func (g *Game) Snapshot() Snapshot {
	b := make([]byte, 0, Size*Size)
	g.board.Each(func(_ core.Point, pc Piece) {
		var c byte
		switch pc.Owner {
		case core.Player1:
			c = 'r'
		case core.Player2:
			c = 'b'
		default:
			c = '.'
		}
		if pc.King {
			c -= 'a' - 'A'
		}
		b = append(b, c)
	})
	return Snapshot{
		Tick:     g.tick,
		Phase:    g.phase.Phase(),
		Board:    string(b),
		Current:  g.current,
		Winner:   g.winner,
		Cursor:   g.cursor,
		Selected: g.selected,
		Picked:   g.picked,
		Moves:    g.moves,
		Score:    g.sess.Score(),
	}
}
