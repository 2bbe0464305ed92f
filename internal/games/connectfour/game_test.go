package connectfour

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

func digit(g *Game, d int) core.StepResult {
	f := core.NewInputFrame()
	f.SetDigit(d)
	return g.Step(f)
}

func press(g *Game, actions ...core.Action) core.StepResult {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return g.Step(f)
}

// load fills the board from rows written top to bottom; '.' is empty.
func load(t *testing.T, g *Game, rows ...string) {
	t.Helper()
	require.Len(t, rows, Rows)
	g.moves = 0
	for y, row := range rows {
		require.Len(t, row, Cols)
		for x, ch := range row {
			v := core.PlayerNone
			switch ch {
			case '1':
				v = core.Player1
			case '2':
				v = core.Player2
			}
			if v != core.PlayerNone {
				g.moves++
			}
			require.NoError(t, g.board.Set(core.Point{X: x, Y: y}, v))
		}
	}
}

func TestResetInvariants(t *testing.T) {
	g := newGame(t)

	assert.Zero(t, g.board.Count(func(p core.PlayerID) bool { return p != core.PlayerNone }))
	assert.Equal(t, core.Player1, g.Current())
	assert.Equal(t, core.PlayerNone, g.Winner())
	assert.Equal(t, core.PhaseActive, g.State().Phase)
	assert.Equal(t, Cols/2, g.cursor)
}

func TestVerticalFourInColumnThreeWins(t *testing.T) {
	g := newGame(t)

	// Player 1 stacks column 3, player 2 answers in column 1.
	for i, d := range []int{3, 1, 3, 1, 3, 1} {
		res := digit(g, d)
		require.False(t, res.State.GameOver(), "drop %d", i)
	}
	res := digit(g, 3)

	assert.Equal(t, core.Player1, g.Winner())
	assert.True(t, res.State.GameOver())
	assert.True(t, res.State.Won())
	assert.Len(t, g.line, 4)
	assert.Positive(t, res.State.Score)
}

func TestDiscsFallToLowestEmptyRow(t *testing.T) {
	g := newGame(t)

	digit(g, 5)
	digit(g, 5)

	assert.Equal(t, core.Player1, g.board.At(4, Rows-1))
	assert.Equal(t, core.Player2, g.board.At(4, Rows-2))
	assert.Equal(t, core.PlayerNone, g.board.At(4, Rows-3))
	assert.Equal(t, core.Player1, g.Current())
}

func TestFullColumnIsIgnored(t *testing.T) {
	g := newGame(t)
	for range Rows {
		digit(g, 1)
	}
	require.Equal(t, Rows, g.moves)

	before := g.Snapshot()
	digit(g, 1)
	after := g.Snapshot()

	assert.Equal(t, before.Board, after.Board)
	assert.Equal(t, before.Current, after.Current, "turn must not pass")
	assert.Equal(t, before.Moves, after.Moves)
}

func TestOutOfRangeDigitsIgnored(t *testing.T) {
	g := newGame(t)
	before := g.Snapshot()

	digit(g, 0)
	digit(g, 8)
	digit(g, 9)

	after := g.Snapshot()
	assert.Equal(t, before.Board, after.Board)
	assert.Equal(t, before.Current, after.Current)
}

func TestHorizontalAndDiagonalWins(t *testing.T) {
	t.Run("horizontal", func(t *testing.T) {
		g := newGame(t)
		load(t, g,
			".......",
			".......",
			".......",
			".......",
			"222....",
			"111....",
		)
		digit(g, 4)
		assert.Equal(t, core.Player1, g.Winner())
	})

	t.Run("rising diagonal", func(t *testing.T) {
		g := newGame(t)
		load(t, g,
			".......",
			".......",
			".......",
			"..12...",
			".112...",
			"1222...",
		)
		digit(g, 4)
		assert.Equal(t, core.Player1, g.Winner())
		assert.Len(t, g.line, 4)
	})

	t.Run("falling diagonal", func(t *testing.T) {
		g := newGame(t)
		load(t, g,
			".......",
			".......",
			".......",
			"...21..",
			"...221.",
			"...2221",
		)
		digit(g, 4)
		assert.Equal(t, core.Player1, g.Winner())
	})
}

func TestFullBoardIsDraw(t *testing.T) {
	g := newGame(t)
	// No four in a row anywhere once the last cell is filled by player 2.
	load(t, g,
		"112211.",
		"2211221",
		"1122112",
		"2211221",
		"1122112",
		"2211221",
	)
	g.current = core.Player2

	res := digit(g, 7)

	assert.Equal(t, core.PhaseGameOver, res.State.Phase)
	assert.Equal(t, core.PlayerNone, g.Winner())
	assert.Zero(t, res.State.Score)
}

func TestCursorAndConfirm(t *testing.T) {
	g := newGame(t)

	press(g, core.ActionRight, core.ActionRight)
	assert.Equal(t, 5, g.cursor)
	press(g, core.ActionConfirm)
	assert.Equal(t, core.Player1, g.board.At(5, Rows-1))

	for range 10 {
		press(g, core.ActionLeft)
	}
	assert.Zero(t, g.cursor, "cursor is clamped")
}

func TestPointerClickDropsInColumn(t *testing.T) {
	g := newGame(t)

	f := core.NewInputFrame()
	f.SetPointer(g.discX(1), boardY+2)
	g.Step(f)
	assert.Equal(t, core.Player1, g.board.At(1, Rows-1))

	// Clicks outside the board do nothing
	f = core.NewInputFrame()
	f.SetPointer(0, 0)
	g.Step(f)
	assert.Equal(t, 1, g.moves)
}

func TestTerminalIsFrozen(t *testing.T) {
	g := newGame(t)
	for _, d := range []int{3, 1, 3, 1, 3, 1, 3} {
		digit(g, d)
	}
	require.True(t, g.State().GameOver())

	before := g.Snapshot()
	digit(g, 5)
	press(g, core.ActionConfirm, core.ActionLeft)
	assert.Equal(t, before, g.Snapshot())
}

func TestRender(t *testing.T) {
	g := newGame(t)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	assert.Contains(t, screen.String(), "Red to move")
	assert.Equal(t, '▼', screen.Get(g.discX(g.cursor), boardY-1))

	digit(g, 3)
	screen.Clear()
	g.Render(screen)
	assert.Equal(t, '●', screen.Get(g.discX(2), boardY+Rows-1))
	assert.Contains(t, screen.String(), "Yellow to move")
}
