package t2048

import (
	"strings"
	"testing"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func press(g *Game, a core.Action) core.StepResult {
	in := core.NewInputFrame()
	in.Set(a)
	return g.Step(in)
}

func TestSlideRowMerge(t *testing.T) {
	tests := []struct {
		name     string
		input    [4]int
		expected [4]int
		score    int
	}{
		{"simple merge", [4]int{2, 2, 0, 0}, [4]int{4, 0, 0, 0}, 4},
		{"merge with trailing tile", [4]int{2, 2, 2, 0}, [4]int{4, 2, 0, 0}, 4},
		{"double merge", [4]int{2, 2, 2, 2}, [4]int{4, 4, 0, 0}, 8},
		{"no merge possible", [4]int{2, 4, 8, 16}, [4]int{2, 4, 8, 16}, 0},
		{"slide with gap", [4]int{0, 0, 2, 2}, [4]int{4, 0, 0, 0}, 4},
		{"slide with multiple gaps", [4]int{2, 0, 0, 2}, [4]int{4, 0, 0, 0}, 4},
		{"no change needed", [4]int{4, 2, 0, 0}, [4]int{4, 2, 0, 0}, 0},
		{"empty row", [4]int{0, 0, 0, 0}, [4]int{0, 0, 0, 0}, 0},
		{"single tile", [4]int{0, 4, 0, 0}, [4]int{4, 0, 0, 0}, 0},
		{"merged tile does not merge again", [4]int{4, 4, 8, 0}, [4]int{8, 8, 0, 0}, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, score, _ := slideRow(tt.input)
			if result != tt.expected {
				t.Errorf("slideRow(%v) = %v, want %v", tt.input, result, tt.expected)
			}
			if score != tt.score {
				t.Errorf("slideRow(%v) score = %d, want %d", tt.input, score, tt.score)
			}
		})
	}
}

func TestSlideDirections(t *testing.T) {
	tests := []struct {
		name     string
		dir      Direction
		board    Board
		expected Board
		score    int
	}{
		{
			name: "left",
			dir:  DirLeft,
			board: Board{
				{2, 2, 0, 0},
				{4, 0, 4, 0},
				{2, 2, 2, 2},
				{0, 0, 0, 2},
			},
			expected: Board{
				{4, 0, 0, 0},
				{8, 0, 0, 0},
				{4, 4, 0, 0},
				{2, 0, 0, 0},
			},
			score: 4 + 8 + 8,
		},
		{
			name: "right",
			dir:  DirRight,
			board: Board{
				{2, 2, 0, 0},
				{4, 0, 4, 0},
				{2, 2, 2, 2},
				{0, 0, 0, 2},
			},
			expected: Board{
				{0, 0, 0, 4},
				{0, 0, 0, 8},
				{0, 0, 4, 4},
				{0, 0, 0, 2},
			},
			score: 4 + 8 + 8,
		},
		{
			name: "up",
			dir:  DirUp,
			board: Board{
				{2, 4, 2, 0},
				{2, 0, 2, 0},
				{0, 4, 2, 0},
				{0, 0, 2, 2},
			},
			expected: Board{
				{4, 8, 4, 2},
				{0, 0, 4, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			score: 4 + 8 + 4 + 4,
		},
		{
			name: "down",
			dir:  DirDown,
			board: Board{
				{2, 4, 2, 2},
				{2, 0, 2, 0},
				{0, 4, 2, 0},
				{0, 0, 2, 0},
			},
			expected: Board{
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 4, 0},
				{4, 8, 4, 2},
			},
			score: 4 + 8 + 4 + 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Slide(tt.board, tt.dir)
			if m.Board != tt.expected {
				t.Errorf("Slide %s: got\n%v\nwant\n%v", tt.dir, m.Board, tt.expected)
			}
			if !m.Changed {
				t.Errorf("Slide %s should indicate board changed", tt.dir)
			}
			if m.Score != tt.score {
				t.Errorf("Slide %s score = %d, want %d", tt.dir, m.Score, tt.score)
			}
		})
	}
}

func TestSlideReportsMergedCells(t *testing.T) {
	board := Board{
		{0, 0, 2, 2},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	m := Slide(board, DirRight)
	if len(m.Merged) != 1 || m.Merged[0] != (core.Point{X: 3, Y: 0}) {
		t.Errorf("Merged = %v, want [{3 0}]", m.Merged)
	}
}

func TestNoChangeNoSpawn(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))
	g.board = Board{
		{4, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	before := g.board
	press(g, core.ActionLeft)

	if g.board != before {
		t.Errorf("A no-op move should not spawn, got\n%v", g.board)
	}
	if g.moves != 0 {
		t.Errorf("A no-op move should not count, moves = %d", g.moves)
	}
}

func TestMoveSpawnsOneTile(t *testing.T) {
	g := New()
	g.Reset(testConfig(7))
	g.board = Board{
		{2, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	press(g, core.ActionRight)

	tiles := BoardSize*BoardSize - len(EmptyCells(g.board))
	if tiles != 2 {
		t.Errorf("Expected 2 tiles after one move, got %d", tiles)
	}
	if g.board[0][3] != 2 {
		t.Errorf("Tile should slide to the right edge, got\n%v", g.board)
	}
	v := g.board[g.spawned.Y][g.spawned.X]
	if v != 2 && v != 4 {
		t.Errorf("Spawned tile should be 2 or 4, got %d", v)
	}
}

func TestSpawnDistribution(t *testing.T) {
	fours := 0
	const runs = 2000
	for seed := range int64(runs) {
		g := New()
		g.Reset(testConfig(seed))
		g.board = Board{}
		g.spawnTile()
		if MaxTile(g.board) == 4 {
			fours++
		}
	}

	// Expect about 10% fours
	if fours < runs/20 || fours > runs/5 {
		t.Errorf("Expected roughly 10%% fours, got %d of %d", fours, runs)
	}
}

func TestCanMove(t *testing.T) {
	full := Board{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4096},
		{8192, 16384, 32768, 65536},
	}
	if CanMove(full) {
		t.Error("Board with no moves should be stuck")
	}

	withMerge := full
	withMerge[0][1] = 2
	if !CanMove(withMerge) {
		t.Error("Board with possible merge should allow a move")
	}

	withEmpty := full
	withEmpty[2][2] = 0
	if !CanMove(withEmpty) {
		t.Error("Board with empty cell should allow a move")
	}
}

func TestGameOverWhenStuck(t *testing.T) {
	g := New()
	g.Reset(testConfig(3))

	// One slide left fills the last cell; a 2 or 4 there has no partner
	g.board = Board{
		{0, 2, 4, 8},
		{4, 8, 16, 32},
		{8, 16, 32, 64},
		{16, 32, 64, 128},
	}
	res := press(g, core.ActionLeft)

	if !res.State.GameOver() {
		t.Errorf("Expected game over, board\n%v", g.board)
	}
}

func TestReach2048Wins(t *testing.T) {
	g := New()
	g.Reset(testConfig(5))
	g.board = Board{
		{1024, 1024, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	res := press(g, core.ActionLeft)

	if !res.State.Won() {
		t.Fatalf("Reaching 2048 should win, phase %s", res.State.Phase)
	}
	if res.State.Score != 2048 {
		t.Errorf("Score = %d, want 2048", res.State.Score)
	}

	// Terminal state ignores further moves
	before := g.Snapshot()
	press(g, core.ActionRight)
	if g.Snapshot() != before {
		t.Error("Won game should not change")
	}
}

func TestOneMovePerTick(t *testing.T) {
	g := New()
	g.Reset(testConfig(2))
	g.board = Board{
		{2, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	in.Set(core.ActionDown)
	g.Step(in)

	if g.moves != 1 {
		t.Errorf("Only one move per tick expected, got %d", g.moves)
	}
	if g.board[0][3] != 2 {
		t.Errorf("First direction should be played, got\n%v", g.board)
	}
}

func TestDeterministicSpawn(t *testing.T) {
	run := func() Snapshot {
		g := New()
		g.Reset(testConfig(12345))
		dirs := []core.Action{core.ActionLeft, core.ActionUp, core.ActionRight, core.ActionDown}
		for i := range 100 {
			press(g, dirs[i%len(dirs)])
		}
		return g.Snapshot()
	}

	if a, b := run(), run(); a != b {
		t.Errorf("Same seed should produce same game:\n%+v\nvs\n%+v", a, b)
	}
}

func TestResetStartsWithTwoTiles(t *testing.T) {
	g := New()
	g.Reset(testConfig(42))

	if n := BoardSize*BoardSize - len(EmptyCells(g.board)); n != 2 {
		t.Errorf("Reset should place 2 tiles, got %d", n)
	}

	snap := g.Snapshot()
	if snap.Phase != core.PhaseActive {
		t.Errorf("Snapshot Phase = %s, want active", snap.Phase)
	}
	if snap.Score != 0 || snap.Moves != 0 {
		t.Errorf("Reset should clear score and moves, got %+v", snap)
	}
}

func TestMaxTile(t *testing.T) {
	board := Board{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4},
		{8, 16, 32, 64},
	}

	if got := MaxTile(board); got != 2048 {
		t.Errorf("MaxTile = %d, want 2048", got)
	}
}

func TestEmptyCells(t *testing.T) {
	board := Board{
		{2, 0, 8, 0},
		{0, 64, 0, 256},
		{512, 0, 2048, 0},
		{0, 16, 0, 64},
	}

	cells := EmptyCells(board)
	if len(cells) != 8 {
		t.Errorf("EmptyCells count = %d, want 8", len(cells))
	}
	if cells[0] != (core.Point{X: 1, Y: 0}) {
		t.Errorf("EmptyCells should be row-major, first = %v", cells[0])
	}
}

func TestRender(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))
	g.board = Board{{2048, 0, 0, 0}}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "2048") {
		t.Error("Render should draw the tile values")
	}

	small := New()
	small.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 10, Seed: 1})
	screen = core.NewScreen(20, 10)
	small.Render(screen)
	if !strings.Contains(screen.String(), "too small") {
		t.Error("Expected a too small message")
	}
}
