// Package tetris implements the falling-block puzzle.
package tetris

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/registry"
)

const sidebarW = 16

// Game implements Tetris.
type Game struct {
	cfg   config.TetrisConfig
	rng   *rand.Rand
	phase core.PhaseMachine
	sess  core.Session

	board *core.Grid[Kind]
	piece Piece
	next  Piece
	lines int
	level int
	fall  int // Ticks since the piece last fell
	tick  uint64

	screenW, screenH int
	paused           bool
	tooSmall         bool
}

// New creates a new Tetris game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "tetris" }

// Title returns the display name.
func (g *Game) Title() string { return "Tetris" }

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	preset, _ := config.ParsePreset(cfg.Difficulty)
	tc, err := config.LoadTetris(cfg.ConfigPath, preset)
	if err != nil {
		tc = config.DefaultTetrisConfig()
		config.ApplyTetrisPreset(&tc, preset)
	}
	tc.Board.Width = max(tc.Board.Width, 4)
	tc.Board.Height = max(tc.Board.Height, 4)
	tc.Board.StartLevel = max(tc.Board.StartLevel, 1)
	if len(tc.Scoring.Lines) < 5 {
		tc.Scoring.Lines = config.DefaultTetrisConfig().Scoring.Lines
	}

	g.cfg = tc
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.sess.Reset()
	g.phase.Reset(core.PhaseActive)
	g.board = core.NewGrid[Kind](tc.Board.Width, tc.Board.Height)
	g.lines = 0
	g.level = tc.Board.StartLevel
	g.fall = 0
	g.tick = 0
	g.paused = false
	g.resize(cfg.ScreenW, cfg.ScreenH)

	g.piece = g.randomPiece()
	g.next = g.randomPiece()
}

func (g *Game) resize(w, h int) {
	g.screenW, g.screenH = w, h
	g.tooSmall = w < g.cfg.Board.Width+2+sidebarW || h < g.cfg.Board.Height+2
}

func (g *Game) randomPiece() Piece {
	return newPiece(Kind(1+g.rng.Intn(kindCount)), g.cfg.Board.Width)
}

// fits reports whether p lies inside the walls and floor and overlaps no
// locked block. Cells above the top edge are allowed.
func (g *Game) fits(p Piece) bool {
	for _, c := range p.Cells() {
		if c.X < 0 || c.X >= g.board.Width() || c.Y >= g.board.Height() {
			return false
		}
		if c.Y >= 0 && g.board.At(c.X, c.Y) != KindNone {
			return false
		}
	}
	return true
}

// gravityInterval is the number of ticks between automatic drops.
func (g *Game) gravityInterval() int {
	gr := g.cfg.Gravity
	return max(gr.Min, gr.Base-gr.Step*g.level, 1)
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if g.phase.Terminal() {
		return core.StepResult{State: g.State()}
	}
	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}
	g.tick++

	for _, ev := range input.Events() {
		if g.phase.Terminal() {
			break
		}
		switch ev.Action {
		case core.ActionLeft:
			g.try(g.piece.Moved(-1, 0))
		case core.ActionRight:
			g.try(g.piece.Moved(1, 0))
		case core.ActionUp:
			// Rotation that collides is rolled back.
			g.try(g.piece.Rotated())
		case core.ActionDown:
			g.softDrop()
		case core.ActionJump:
			g.hardDrop()
		}
	}
	if g.phase.Terminal() {
		return core.StepResult{State: g.State()}
	}

	g.fall++
	if g.fall >= g.gravityInterval() {
		g.fall = 0
		g.drop()
	}
	return core.StepResult{State: g.State()}
}

func (g *Game) try(p Piece) bool {
	if !g.fits(p) {
		return false
	}
	g.piece = p
	return true
}

// drop moves the piece down one row or locks it.
func (g *Game) drop() {
	if !g.try(g.piece.Moved(0, 1)) {
		g.lock()
	}
}

func (g *Game) softDrop() {
	if g.try(g.piece.Moved(0, 1)) {
		g.sess.Add(g.cfg.Scoring.SoftDrop)
		g.fall = 0
		return
	}
	g.lock()
}

func (g *Game) hardDrop() {
	for g.try(g.piece.Moved(0, 1)) {
		g.sess.Add(g.cfg.Scoring.HardDrop)
	}
	g.lock()
}

// lock writes the piece into the board, clears lines and spawns the next
// piece. Locking any cell above the top edge ends the game.
func (g *Game) lock() {
	cells := g.piece.Cells()
	for _, c := range cells {
		if c.Y < 0 {
			g.end()
			return
		}
	}
	for _, c := range cells {
		_ = g.board.Set(c, g.piece.Kind)
	}

	g.clearLines()
	g.piece = g.next
	g.next = g.randomPiece()
	g.fall = 0
	if !g.fits(g.piece) {
		g.end()
	}
}

func (g *Game) end() {
	_ = g.phase.Transition(core.PhaseGameOver)
	g.sess.Finalize()
}

// clearLines removes full rows bottom-up, shifting everything above down.
func (g *Game) clearLines() {
	cleared := 0
	for y := g.board.Height() - 1; y >= 0; {
		if !g.board.RowFull(y, KindNone) {
			y--
			continue
		}
		for yy := y; yy > 0; yy-- {
			_ = g.board.SetRow(yy, g.board.Row(yy-1))
		}
		_ = g.board.SetRow(0, make([]Kind, g.board.Width()))
		cleared++
		// Re-check the same row: it now holds the row that was above.
	}
	if cleared == 0 {
		return
	}

	pts := g.cfg.Scoring.Lines
	g.sess.Add(pts[min(cleared, len(pts)-1)] * g.level)
	g.lines += cleared
	if per := g.cfg.Board.LinesPerLevel; per > 0 {
		g.level = g.cfg.Board.StartLevel + g.lines/per
	}
}

func (g *Game) ghost() Piece {
	p := g.piece
	for g.fits(p.Moved(0, 1)) {
		p = p.Moved(0, 1)
	}
	return p
}

// Render draws the well, the falling piece, its ghost and the sidebar.
func (g *Game) Render(dst *core.Screen) {
	if g.tooSmall {
		dst.DrawMessage("Window too small", "Resize to continue")
		return
	}

	bw, bh := g.board.Width(), g.board.Height()
	ox := (dst.Width() - (bw + 2 + sidebarW)) / 2
	oy := (dst.Height() - (bh + 2)) / 2
	dst.DrawBox(core.NewRect(ox, oy, bw+2, bh+2))

	g.board.Each(func(p core.Point, k Kind) {
		if k != KindNone {
			dst.SetWithColor(ox+1+p.X, oy+1+p.Y, '█', kindColors[k])
		} else {
			dst.SetWithColor(ox+1+p.X, oy+1+p.Y, '·', core.ColorGray)
		}
	})

	if !g.phase.Terminal() {
		for _, c := range g.ghost().Cells() {
			if c.Y >= 0 {
				dst.SetWithColor(ox+1+c.X, oy+1+c.Y, '░', core.ColorGray)
			}
		}
		for _, c := range g.piece.Cells() {
			if c.Y >= 0 {
				dst.SetWithColor(ox+1+c.X, oy+1+c.Y, '█', kindColors[g.piece.Kind])
			}
		}
	}

	sx := ox + bw + 4
	dst.DrawText(sx, oy+1, "NEXT")
	for r, row := range g.next.Shape {
		for c, filled := range row {
			if filled {
				dst.SetWithColor(sx+1+c, oy+3+r, '█', kindColors[g.next.Kind])
			}
		}
	}
	dst.DrawText(sx, oy+7, fmt.Sprintf("SCORE %d", g.sess.Score()))
	dst.DrawText(sx, oy+8, fmt.Sprintf("LINES %d", g.lines))
	dst.DrawText(sx, oy+9, fmt.Sprintf("LEVEL %d", g.level))
	dst.DrawText(sx, oy+10, fmt.Sprintf("BEST  %d", g.sess.HighScore()))

	switch {
	case g.phase.Is(core.PhaseGameOver):
		dst.DrawMessage("GAME OVER", "Press R to restart")
	case g.paused:
		dst.DrawMessage("Paused", "Press P to continue")
	}
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

// Snapshot captures the game for determinism and idempotence tests.
type Snapshot struct {
	Tick   uint64
	Phase  core.Phase
	Score  int
	Lines  int
	Level  int
	Board  string
	Piece  Piece
	Next   Kind
	Fall   int
	Paused bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	b := make([]byte, 0, g.board.Width()*g.board.Height())
	g.board.Each(func(_ core.Point, k Kind) {
		b = append(b, '0'+byte(k))
	})
	return Snapshot{
		Tick:   g.tick,
		Phase:  g.phase.Phase(),
		Score:  g.sess.Score(),
		Lines:  g.lines,
		Level:  g.level,
		Board:  string(b),
		Piece:  g.piece,
		Next:   g.next.Kind,
		Fall:   g.fall,
		Paused: g.paused,
	}
}
