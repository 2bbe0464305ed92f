package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

func newGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New()
	g.Reset(core.RuntimeConfig{Seed: seed, ScreenW: 80, ScreenH: 24})
	require.False(t, g.tooSmall)
	return g
}

// positions groups card coordinates by symbol.
func positions(g *Game) map[int][]core.Point {
	out := make(map[int][]core.Point)
	g.cards.Each(func(p core.Point, c Card) {
		out[c.Symbol] = append(out[c.Symbol], p)
	})
	return out
}

// mismatch returns two cards that do not form a pair.
func mismatch(g *Game) (core.Point, core.Point) {
	pos := positions(g)
	return pos[0][0], pos[1][0]
}

func idle(g *Game, n int) {
	for range n {
		g.Step(core.NewInputFrame())
	}
}

func TestDealHasEightPairs(t *testing.T) {
	g := newGame(t, 1)
	pos := positions(g)

	require.Len(t, pos, Pairs)
	for s, pts := range pos {
		assert.Len(t, pts, 2, "symbol %d", s)
	}
	assert.Zero(t, g.cards.Count(func(c Card) bool { return c.Up || c.Matched }))
}

func TestShuffleDependsOnSeed(t *testing.T) {
	a := newGame(t, 1).Snapshot()
	b := newGame(t, 1).Snapshot()
	c := newGame(t, 2).Snapshot()

	assert.Equal(t, a.Cards, b.Cards)
	assert.NotEqual(t, a.Cards, c.Cards)
}

func TestMatchStaysAndScores(t *testing.T) {
	g := newGame(t, 1)
	pair := positions(g)[3]

	g.Flip(pair[0])
	g.Flip(pair[1])

	assert.Equal(t, MatchScore, g.State().Score)
	assert.Equal(t, 1, g.Moves())
	assert.Equal(t, core.PhaseActive, g.State().Phase)
	for _, p := range pair {
		c, _ := g.cards.Get(p)
		assert.True(t, c.Matched)
	}

	// Matched cards cannot be flipped again.
	g.Flip(pair[0])
	assert.Empty(t, g.selected)
}

func TestMismatchFlipsBackAfterPause(t *testing.T) {
	g := newGame(t, 1)
	a, b := mismatch(g)

	g.Flip(a)
	g.Flip(b)
	require.Equal(t, core.PhaseResolving, g.State().Phase)
	assert.Equal(t, 1, g.Moves())
	assert.Zero(t, g.State().Score)

	idle(g, FlipBack-1)
	ca, _ := g.cards.Get(a)
	assert.True(t, ca.Up, "cards stay up during the pause")
	assert.Equal(t, core.PhaseResolving, g.State().Phase)

	idle(g, 1)
	assert.Equal(t, core.PhaseActive, g.State().Phase)
	ca, _ = g.cards.Get(a)
	cb, _ := g.cards.Get(b)
	assert.False(t, ca.Up)
	assert.False(t, cb.Up)
	assert.Empty(t, g.selected)
}

func TestInputIgnoredWhileResolving(t *testing.T) {
	g := newGame(t, 1)
	a, b := mismatch(g)
	g.Flip(a)
	g.Flip(b)

	f := core.NewInputFrame()
	f.Set(core.ActionRight)
	f.Set(core.ActionConfirm)
	g.Step(f)

	assert.Equal(t, core.Point{}, g.cursor)
	assert.Equal(t, 2, g.cards.Count(func(c Card) bool { return c.Up }))
	assert.Equal(t, 1, g.Moves())
}

func TestAllPairsWins(t *testing.T) {
	g := newGame(t, 1)
	for _, pair := range positions(g) {
		g.Flip(pair[0])
		g.Flip(pair[1])
	}

	st := g.State()
	assert.True(t, st.Won())
	assert.Equal(t, Pairs*MatchScore, st.Score)
	assert.Equal(t, Pairs, g.Moves())

	before := g.Snapshot()
	idle(g, 5)
	assert.Equal(t, before, g.Snapshot(), "won is frozen")
}

func TestCursorAndPointer(t *testing.T) {
	g := newGame(t, 1)

	f := core.NewInputFrame()
	f.Set(core.ActionRight)
	f.Set(core.ActionDown)
	f.Set(core.ActionConfirm)
	g.Step(f)
	assert.Equal(t, core.Point{X: 1, Y: 1}, g.cursor)
	c, _ := g.cards.Get(core.Point{X: 1, Y: 1})
	assert.True(t, c.Up)

	f = core.NewInputFrame()
	f.SetPointer(g.boardX+3*cardW+2, boardY+2*cardH+1)
	g.Step(f)
	assert.Equal(t, core.Point{X: 3, Y: 2}, g.cursor)
	assert.Equal(t, 1, g.Moves())
}

func TestPause(t *testing.T) {
	g := newGame(t, 1)
	a, b := mismatch(g)
	g.Flip(a)
	g.Flip(b)

	f := core.NewInputFrame()
	f.Set(core.ActionPause)
	g.Step(f)
	before := g.Snapshot()

	idle(g, FlipBack*2)
	assert.Equal(t, before, g.Snapshot(), "pause stops the flip-back countdown")
}

func TestRender(t *testing.T) {
	g := newGame(t, 1)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	assert.Contains(t, screen.String(), "Pairs: 0/8")
	assert.Equal(t, '?', screen.Get(g.boardX+3, boardY+1))
	assert.Equal(t, '>', screen.Get(g.boardX+1, boardY+1))

	g.Flip(core.Point{})
	screen.Clear()
	g.Render(screen)
	c, _ := g.cards.Get(core.Point{})
	assert.Equal(t, symbols[c.Symbol].glyph, screen.Get(g.boardX+3, boardY+1))
}
