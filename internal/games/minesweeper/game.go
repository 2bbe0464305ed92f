// Package minesweeper implements Minesweeper with a keyboard cursor and
// mouse clicks. Mines are laid on the first reveal, away from it.
package minesweeper

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/registry"
)

// CellState is what the player knows about a cell.
type CellState int

const (
	Hidden CellState = iota
	Revealed
	Flagged
)

// Cell is one board square.
type Cell struct {
	Mine     bool
	Adjacent int
	State    CellState
}

const (
	cellW  = 3
	boardY = 3
)

// Game implements Minesweeper.
type Game struct {
	cfg   config.MinesweeperConfig
	rng   *rand.Rand
	phase core.PhaseMachine
	sess  core.Session

	board    *core.Grid[Cell]
	cursor   core.Point
	placed   bool
	revealed int
	flags    int
	exploded core.Point

	tick     uint64
	boardX   int
	minW     int
	minH     int
	paused   bool
	tooSmall bool
}

// New creates a new Minesweeper game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("minesweeper", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "minesweeper" }

// Title returns the display name.
func (g *Game) Title() string { return "Minesweeper" }

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	preset, _ := config.ParsePreset(runtime.Difficulty)
	cfg, err := config.LoadMinesweeper(runtime.ConfigPath, preset)
	if err != nil {
		cfg = config.DefaultMinesweeperConfig()
		config.ApplyMinesweeperPreset(&cfg, preset)
	}
	cfg.Width = core.Clamp(cfg.Width, 4, 30)
	cfg.Height = core.Clamp(cfg.Height, 4, 20)
	// The first reveal keeps a 3x3 block clear.
	cfg.Mines = core.Clamp(cfg.Mines, 1, cfg.Width*cfg.Height-9)

	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.phase.Reset(core.PhaseActive)
	g.sess.Reset()

	g.board = core.NewGrid[Cell](cfg.Width, cfg.Height)
	g.cursor = core.Point{X: cfg.Width / 2, Y: cfg.Height / 2}
	g.placed = false
	g.revealed = 0
	g.flags = 0
	g.exploded = core.Point{X: -1, Y: -1}
	g.tick = 0
	g.paused = false

	g.minW = cfg.Width*cellW + 2
	g.minH = boardY + cfg.Height + 3
	g.boardX = (runtime.ScreenW - cfg.Width*cellW) / 2
	g.tooSmall = runtime.ScreenW < g.minW || runtime.ScreenH < g.minH
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
			g.Reveal(g.cursor)
		case core.ActionFlag:
			g.ToggleFlag(g.cursor)
		case core.ActionPointer:
			if p, ok := g.cellAt(ev.X, ev.Y); ok {
				g.cursor = p
				g.Reveal(p)
			}
		}
	}
	return core.StepResult{State: g.State()}
}

func (g *Game) moveCursor(d core.Point) {
	g.cursor, _ = g.board.Resolve(g.cursor.Add(d), core.BoundaryClamp)
}

// cellAt maps a screen position to a board cell.
func (g *Game) cellAt(x, y int) (core.Point, bool) {
	if x < g.boardX {
		return core.Point{}, false
	}
	p := core.Point{X: (x - g.boardX) / cellW, Y: y - boardY}
	return p, g.board.InBounds(p)
}

// placeMines lays the mines anywhere outside the 3x3 block around safe.
func (g *Game) placeMines(safe core.Point) {
	var spots []core.Point
	g.board.Each(func(p core.Point, _ Cell) {
		if core.Abs(p.X-safe.X) > 1 || core.Abs(p.Y-safe.Y) > 1 {
			spots = append(spots, p)
		}
	})
	g.rng.Shuffle(len(spots), func(i, j int) { spots[i], spots[j] = spots[j], spots[i] })
	g.layMines(spots[:min(g.cfg.Mines, len(spots))])
}

// layMines sets mines and recomputes every neighbour count.
func (g *Game) layMines(mines []core.Point) {
	for _, p := range mines {
		c, _ := g.board.Get(p)
		c.Mine = true
		_ = g.board.Set(p, c)
	}
	g.board.Each(func(p core.Point, c Cell) {
		c.Adjacent = 0
		for _, d := range core.Neighbors8 {
			if n, ok := g.board.Get(p.Add(d)); ok && n.Mine {
				c.Adjacent++
			}
		}
		_ = g.board.Set(p, c)
	})
	g.placed = true
}

// Reveal uncovers p. Flagged and already revealed cells are ignored,
// except that revealing a number whose flags are all placed uncovers its
// remaining neighbours.
func (g *Game) Reveal(p core.Point) {
	c, ok := g.board.Get(p)
	if !ok || g.phase.Terminal() || c.State == Flagged {
		return
	}
	if !g.placed {
		g.placeMines(p)
		c, _ = g.board.Get(p)
	}
	if c.State == Revealed {
		g.chord(p, c)
		return
	}
	if c.Mine {
		g.explode(p)
		return
	}
	g.flood(p)
	g.checkWin()
}

// flood reveals p and spreads through cells with no neighbouring mines.
func (g *Game) flood(start core.Point) {
	queue := []core.Point{start}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		c, ok := g.board.Get(p)
		if !ok || c.State != Hidden || c.Mine {
			continue
		}
		c.State = Revealed
		_ = g.board.Set(p, c)
		g.revealed++
		g.sess.Add(1)
		if c.Adjacent > 0 {
			continue
		}
		for _, d := range core.Neighbors8 {
			queue = append(queue, p.Add(d))
		}
	}
}

func (g *Game) chord(p core.Point, c Cell) {
	flagged := 0
	for _, d := range core.Neighbors8 {
		if n, ok := g.board.Get(p.Add(d)); ok && n.State == Flagged {
			flagged++
		}
	}
	if c.Adjacent == 0 || flagged != c.Adjacent {
		return
	}
	for _, d := range core.Neighbors8 {
		q := p.Add(d)
		n, ok := g.board.Get(q)
		if !ok || n.State != Hidden {
			continue
		}
		if n.Mine {
			g.explode(q)
			return
		}
		g.flood(q)
	}
	g.checkWin()
}

// explode ends the game and shows every mine.
func (g *Game) explode(p core.Point) {
	g.exploded = p
	g.board.Each(func(q core.Point, c Cell) {
		if c.Mine {
			c.State = Revealed
			_ = g.board.Set(q, c)
		}
	})
	_ = g.phase.Transition(core.PhaseGameOver)
	g.sess.Finalize()
}

func (g *Game) checkWin() {
	if g.Unrevealed() != g.cfg.Mines {
		return
	}
	g.board.Each(func(p core.Point, c Cell) {
		if c.Mine && c.State != Flagged {
			c.State = Flagged
			_ = g.board.Set(p, c)
		}
	})
	g.flags = g.cfg.Mines
	_ = g.phase.Transition(core.PhaseWon)
	g.sess.Finalize()
}

// ToggleFlag flags or unflags a hidden cell.
func (g *Game) ToggleFlag(p core.Point) {
	c, ok := g.board.Get(p)
	if !ok || g.phase.Terminal() {
		return
	}
	switch c.State {
	case Hidden:
		c.State = Flagged
		g.flags++
	case Flagged:
		c.State = Hidden
		g.flags--
	default:
		return
	}
	_ = g.board.Set(p, c)
}

// Unrevealed counts cells not yet uncovered, flagged cells included.
func (g *Game) Unrevealed() int {
	return g.board.Count(func(c Cell) bool { return c.State != Revealed })
}

// MineCount returns the number of mines the board holds once laid.
func (g *Game) MineCount() int {
	return g.cfg.Mines
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

var numberColors = [9]core.Color{
	core.ColorDefault,
	core.ColorBrightBlue,
	core.ColorGreen,
	core.ColorBrightRed,
	core.ColorBlue,
	core.ColorRed,
	core.ColorCyan,
	core.ColorWhite,
	core.ColorGray,
}

// Render draws the minefield, cursor and counters.
func (g *Game) Render(dst *core.Screen) {
	if g.tooSmall {
		dst.DrawMessage("Window too small", fmt.Sprintf("Need at least %dx%d", g.minW, g.minH))
		return
	}

	dst.DrawTextCentered(0, "MINESWEEPER")
	status := fmt.Sprintf("Mines: %d  Flags: %d  Time: %ds", g.cfg.Mines, g.flags, g.tick/60)
	dst.DrawTextCentered(1, status)
	dst.DrawBox(core.NewRect(g.boardX-1, boardY-1, g.cfg.Width*cellW+2, g.cfg.Height+2))

	g.board.Each(func(p core.Point, c Cell) {
		x := g.boardX + p.X*cellW + 1
		y := boardY + p.Y
		ch, color := cellGlyph(c)
		if p == g.exploded {
			color = core.ColorBrightRed
		}
		dst.SetWithColor(x, y, ch, color)
	})
	if !g.phase.Terminal() {
		x := g.boardX + g.cursor.X*cellW
		dst.SetWithColor(x, boardY+g.cursor.Y, '[', core.ColorBrightYellow)
		dst.SetWithColor(x+2, boardY+g.cursor.Y, ']', core.ColorBrightYellow)
	}
	dst.DrawTextCentered(boardY+g.cfg.Height+1, "Arrows move  Space reveal  F flag")

	switch {
	case g.phase.Is(core.PhaseWon):
		dst.DrawMessage("CLEARED!", fmt.Sprintf("Score: %d  |  Press R to play again", g.sess.Score()))
	case g.phase.Is(core.PhaseGameOver):
		dst.DrawMessage("BOOM", fmt.Sprintf("Score: %d  |  Press R to restart", g.sess.Score()))
	case g.paused:
		dst.DrawMessage("PAUSED", "Press P to resume")
	}
}

func cellGlyph(c Cell) (rune, core.Color) {
	switch {
	case c.State == Flagged:
		return '⚑', core.ColorBrightRed
	case c.State == Hidden:
		return '■', core.ColorGray
	case c.Mine:
		return '*', core.ColorBrightWhite
	case c.Adjacent == 0:
		return '·', core.ColorGray
	default:
		return rune('0' + c.Adjacent), numberColors[c.Adjacent]
	}
}

// Snapshot captures the game for determinism and idempotence tests.
type Snapshot struct {
	Tick     uint64
	Phase    core.Phase
	Board    string
	Cursor   core.Point
	Revealed int
	Flags    int
	Score    int
}

// Snapshot returns the current game snapshot. Board uses '#' hidden,
// 'F' flagged, '*' a shown mine and digits for revealed counts.
func (g *Game) Snapshot() Snapshot {
	b := make([]byte, 0, g.cfg.Width*g.cfg.Height)
	g.board.Each(func(_ core.Point, c Cell) {
		switch {
		case c.State == Hidden:
			b = append(b, '#')
		case c.State == Flagged:
			b = append(b, 'F')
		case c.Mine:
			b = append(b, '*')
		default:
			b = append(b, '0'+byte(c.Adjacent))
		}
	})
	return Snapshot{
		Tick:     g.tick,
		Phase:    g.phase.Phase(),
		Board:    string(b),
		Cursor:   g.cursor,
		Revealed: g.revealed,
		Flags:    g.flags,
		Score:    g.sess.Score(),
	}
}
