// Package memory implements Memory Match: flip two cards at a time and
// find all eight pairs.
package memory

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/registry"
)

// Board size, pair count and points per match.
const (
	Size       = 4
	Pairs      = Size * Size / 2
	MatchScore = 100
)

// FlipBack is how many ticks a mismatched pair stays face up.
const FlipBack = 45

const (
	cardW  = 7
	cardH  = 3
	boardY = 3
	minW   = Size*cardW + 2
	minH   = boardY + Size*cardH + 3
)

// Card is one tile of the board. Symbol indexes symbols.
type Card struct {
	Symbol  int
	Up      bool
	Matched bool
}

var symbols = [Pairs]struct {
	glyph rune
	color core.Color
}{
	{'♠', core.ColorBrightWhite},
	{'♥', core.ColorBrightRed},
	{'♦', core.ColorRed},
	{'♣', core.ColorGreen},
	{'★', core.ColorBrightYellow},
	{'●', core.ColorBrightCyan},
	{'▲', core.ColorBrightMagenta},
	{'■', core.ColorOrange},
}

// Game implements the memory match game.
type Game struct {
	rng   *rand.Rand
	phase core.PhaseMachine
	sess  core.Session

	cards    *core.Grid[Card]
	selected []core.Point
	cursor   core.Point
	moves    int
	found    int

	tick     uint64
	boardX   int
	paused   bool
	tooSmall bool
}

// New creates a new memory game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("memory", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "memory" }

// Title returns the display name.
func (g *Game) Title() string { return "Memory Match" }

// Reset deals a freshly shuffled board.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.phase.Reset(core.PhaseActive)
	g.sess.Reset()

	deck := make([]int, 0, Size*Size)
	for s := range Pairs {
		deck = append(deck, s, s)
	}
	g.rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })

	g.cards = core.NewGrid[Card](Size, Size)
	for i, s := range deck {
		_ = g.cards.Set(core.Point{X: i % Size, Y: i / Size}, Card{Symbol: s})
	}
	g.selected = g.selected[:0]
	g.cursor = core.Point{}
	g.moves = 0
	g.found = 0
	g.tick = 0
	g.paused = false
	g.boardX = (cfg.ScreenW - Size*cardW) / 2
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

	if g.phase.Is(core.PhaseResolving) {
		if g.phase.Tick() {
			g.flipBack()
		}
		return core.StepResult{State: g.State()}
	}

	for _, ev := range in.Events() {
		if !g.phase.Is(core.PhaseActive) {
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
			g.Flip(g.cursor)
		case core.ActionPointer:
			if p, ok := g.cardAt(ev.X, ev.Y); ok {
				g.cursor = p
				g.Flip(p)
			}
		}
	}
	return core.StepResult{State: g.State()}
}

func (g *Game) moveCursor(d core.Point) {
	g.cursor, _ = g.cards.Resolve(g.cursor.Add(d), core.BoundaryClamp)
}

func (g *Game) cardAt(x, y int) (core.Point, bool) {
	if x < g.boardX || y < boardY {
		return core.Point{}, false
	}
	p := core.Point{X: (x - g.boardX) / cardW, Y: (y - boardY) / cardH}
	return p, g.cards.InBounds(p)
}

// Flip turns a face-down card. The second card of a turn either locks
// the pair or starts the flip-back pause.
func (g *Game) Flip(p core.Point) {
	c, ok := g.cards.Get(p)
	if !ok || !g.phase.Is(core.PhaseActive) || c.Up || c.Matched {
		return
	}
	c.Up = true
	_ = g.cards.Set(p, c)
	g.selected = append(g.selected, p)
	if len(g.selected) < 2 {
		return
	}

	g.moves++
	a, _ := g.cards.Get(g.selected[0])
	if a.Symbol != c.Symbol {
		_ = g.phase.Resolve(FlipBack, core.PhaseActive)
		return
	}
	for _, q := range g.selected {
		m, _ := g.cards.Get(q)
		m.Matched = true
		_ = g.cards.Set(q, m)
	}
	g.selected = g.selected[:0]
	g.found++
	g.sess.Add(MatchScore)
	if g.found == Pairs {
		_ = g.phase.Transition(core.PhaseWon)
		g.sess.Finalize()
	}
}

func (g *Game) flipBack() {
	for _, q := range g.selected {
		c, _ := g.cards.Get(q)
		c.Up = false
		_ = g.cards.Set(q, c)
	}
	g.selected = g.selected[:0]
}

// Moves returns the number of pairs turned so far.
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

// Render draws the cards, cursor and counters.
func (g *Game) Render(dst *core.Screen) {
	if g.tooSmall {
		dst.DrawMessage("Window too small", fmt.Sprintf("Need at least %dx%d", minW, minH))
		return
	}

	dst.DrawTextCentered(0, "MEMORY MATCH")
	dst.DrawTextCentered(1, fmt.Sprintf("Moves: %d  Pairs: %d/%d  Score: %d", g.moves, g.found, Pairs, g.sess.Score()))

	g.cards.Each(func(p core.Point, c Card) {
		x := g.boardX + p.X*cardW
		y := boardY + p.Y*cardH
		dst.DrawBox(core.NewRect(x, y, cardW-1, cardH))
		mid := x + (cardW-1)/2
		switch {
		case c.Up || c.Matched:
			color := symbols[c.Symbol].color
			if c.Matched {
				color = core.ColorGray
			}
			dst.SetWithColor(mid, y+1, symbols[c.Symbol].glyph, color)
		default:
			dst.SetWithColor(mid, y+1, '?', core.ColorBlue)
		}
	})
	if g.phase.Is(core.PhaseActive) {
		x := g.boardX + g.cursor.X*cardW
		y := boardY + g.cursor.Y*cardH + 1
		dst.SetWithColor(x+1, y, '>', core.ColorBrightYellow)
		dst.SetWithColor(x+cardW-3, y, '<', core.ColorBrightYellow)
	}

	switch {
	case g.phase.Is(core.PhaseWon):
		dst.DrawMessage("ALL PAIRS FOUND!", fmt.Sprintf("%d moves  |  Press R to play again", g.moves))
	case g.paused:
		dst.DrawMessage("PAUSED", "Press P to resume")
	}
}

// Snapshot captures the game for determinism and idempotence tests.
type Snapshot struct {
	Tick      uint64
	Phase     core.Phase
	Remaining int
	Cards     [Size * Size]Card
	Cursor    core.Point
	Moves     int
	Found     int
	Score     int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:      g.tick,
		Phase:     g.phase.Phase(),
		Remaining: g.phase.Remaining(),
		Cursor:    g.cursor,
		Moves:     g.moves,
		Found:     g.found,
		Score:     g.sess.Score(),
	}
	g.cards.Each(func(p core.Point, c Card) {
		s.Cards[p.Y*Size+p.X] = c
	})
	return s
}
