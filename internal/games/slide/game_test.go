package slide

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

func newGame(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 24})
	require.False(t, g.tooSmall)
	return g
}

func press(g *Game, actions ...core.Action) core.StepResult {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return g.Step(f)
}

// oneAway leaves the board a single slide from solved: tile 15 sits in
// the bottom-right corner with the gap to its left.
func oneAway(t *testing.T, g *Game) {
	t.Helper()
	g.board = Solved()
	g.blank = core.Point{X: Size - 1, Y: Size - 1}
	require.True(t, g.shiftBlank(core.Left))
	g.moves = 0
}

func TestResetInvariants(t *testing.T) {
	g := newGame(t)

	seen := map[int]bool{}
	g.board.Each(func(_ core.Point, v int) { seen[v] = true })
	assert.Len(t, seen, Size*Size, "tiles repeated or missing")
	assert.Equal(t, Blank, g.board.At(g.blank.X, g.blank.Y))
	assert.False(t, g.board.Equal(Solved()), "dealt a solved board")
	assert.Zero(t, g.Moves())
	assert.Equal(t, core.PhaseActive, g.State().Phase)
}

func TestSameSeedSameDeal(t *testing.T) {
	a, b := newGame(t), newGame(t)
	assert.Equal(t, a.Snapshot(), b.Snapshot())

	c := New()
	c.Reset(core.RuntimeConfig{Seed: 2, ScreenW: 80, ScreenH: 24})
	assert.NotEqual(t, a.Snapshot().Tiles, c.Snapshot().Tiles)
}

func TestSlideMovesTileIntoGap(t *testing.T) {
	g := newGame(t)
	g.board = Solved()
	g.blank = core.Point{X: 1, Y: 1}
	_ = g.board.Set(core.Point{X: 1, Y: 1}, Blank)
	_ = g.board.Set(core.Point{X: 3, Y: 3}, 6)

	// Up pulls the tile below the gap upwards.
	press(g, core.ActionUp)

	assert.Equal(t, core.Point{X: 1, Y: 2}, g.blank)
	assert.Equal(t, 10, g.board.At(1, 1))
	assert.Equal(t, 1, g.Moves())
}

func TestIllegalSlideIgnored(t *testing.T) {
	g := newGame(t)
	g.board = Solved()
	g.blank = core.Point{X: Size - 1, Y: Size - 1}
	// Cycle three tiles round the corner so the gap returns unsolved.
	for _, d := range []core.Point{core.Up, core.Left, core.Down, core.Right} {
		require.True(t, g.shiftBlank(d))
	}
	require.False(t, g.board.Equal(Solved()))
	g.moves = 0
	before := g.Snapshot()

	// Nothing sits right of or below the gap in the corner.
	press(g, core.ActionLeft)
	press(g, core.ActionUp)
	assert.False(t, g.SlideTile(core.Point{X: 0, Y: 0}))

	after := g.Snapshot()
	assert.Equal(t, before.Tiles, after.Tiles)
	assert.Zero(t, g.Moves())
}

func TestSolveWins(t *testing.T) {
	g := newGame(t)
	oneAway(t, g)

	press(g, core.ActionLeft)

	require.Equal(t, core.PhaseWon, g.State().Phase)
	assert.Equal(t, maxScore-1, g.State().Score)
	assert.Equal(t, g.State().Score, g.State().HighScore)
}

func TestPointerSlidesNeighbour(t *testing.T) {
	g := newGame(t)
	oneAway(t, g)

	// Tile 15 sits in the corner next to the gap.
	f := core.NewInputFrame()
	f.SetPointer(g.boardX+(Size-1)*cellW+2, boardY+(Size-1)*cellH+1)
	g.Step(f)

	assert.Equal(t, core.PhaseWon, g.State().Phase)
}

func TestScoreFloor(t *testing.T) {
	g := newGame(t)
	oneAway(t, g)
	g.moves = 5000

	press(g, core.ActionLeft)
	assert.Equal(t, minScore, g.State().Score)
}

func TestTerminalPhaseIsFrozen(t *testing.T) {
	g := newGame(t)
	oneAway(t, g)
	press(g, core.ActionLeft)
	require.Equal(t, core.PhaseWon, g.State().Phase)

	before := g.Snapshot()
	press(g, core.ActionRight, core.ActionDown)
	assert.False(t, g.Slide(core.Right))
	assert.Equal(t, before, g.Snapshot())
}

func TestPause(t *testing.T) {
	g := newGame(t)
	press(g, core.ActionPause)
	before := g.Snapshot()

	press(g, core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown)
	assert.Equal(t, before, g.Snapshot())
}

func TestRender(t *testing.T) {
	g := newGame(t)
	oneAway(t, g)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	assert.Contains(t, screen.String(), "SLIDING PUZZLE")
	assert.Contains(t, screen.Row(boardY+1), " 1")
	assert.Equal(t, '┌', screen.GetCell(g.boardX, boardY).Rune)
	// The gap is left undrawn.
	assert.Equal(t, ' ', screen.GetCell(g.boardX+2*cellW, boardY+3*cellH).Rune)
}

func TestTooSmall(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 20, ScreenH: 10})

	press(g, core.ActionLeft)
	assert.Zero(t, g.tick)

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	assert.Contains(t, screen.String(), "too small")
}
