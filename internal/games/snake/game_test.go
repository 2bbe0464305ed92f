package snake

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

func newGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New()
	g.Reset(core.RuntimeConfig{Seed: seed, ScreenW: 80, ScreenH: 24})
	return g
}

// stepMove runs one tick that is guaranteed to move the snake.
func stepMove(g *Game, input core.InputFrame) {
	g.moveTicker = g.moveEvery - 1
	g.Step(input)
}

// place replaces the snake body, head first.
func place(g *Game, dir Direction, pts ...core.Point) {
	g.body.Fill(false)
	g.snake = append([]core.Point(nil), pts...)
	for _, p := range pts {
		_ = g.body.Set(p, true)
	}
	g.direction = dir
	g.nextDir = dir
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed should produce identical snapshots
	g1 := newGame(t, 12345)
	g2 := newGame(t, 12345)

	input := core.NewInputFrame()
	for i := 0; i < 300; i++ {
		input.Clear()
		switch i {
		case 20:
			input.Set(core.ActionDown)
		case 40:
			input.Set(core.ActionLeft)
		case 90:
			input.Set(core.ActionUp)
		}

		g1.Step(input)
		g2.Step(input)
	}

	if !reflect.DeepEqual(g1.Snapshot(), g2.Snapshot()) {
		t.Errorf("snapshots diverged:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestResetInvariants(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 99, 12345} {
		g := newGame(t, seed)
		snap := g.Snapshot()

		if len(snap.Body) != 1 {
			t.Errorf("seed %d: body length %d, want 1", seed, len(snap.Body))
		}
		if !snap.HasFood {
			t.Fatalf("seed %d: no food after reset", seed)
		}
		if snap.Food == snap.Body[0] {
			t.Errorf("seed %d: food spawned on the snake", seed)
		}
		if snap.Phase != core.PhaseActive {
			t.Errorf("seed %d: phase %v, want active", seed, snap.Phase)
		}
		if snap.Score != 0 {
			t.Errorf("seed %d: score %d, want 0", seed, snap.Score)
		}
	}
}

func TestNoImmediateReversal(t *testing.T) {
	g := newGame(t, 42)

	if g.direction != DirRight {
		t.Fatalf("Expected initial direction Right, got %v", g.direction)
	}

	input := core.NewInputFrame()
	input.Set(core.ActionLeft)
	g.Step(input)
	if g.nextDir == DirLeft {
		t.Error("Should not allow immediate reversal from Right to Left")
	}

	input.Clear()
	input.Set(core.ActionDown)
	g.Step(input)
	if g.nextDir != DirDown {
		t.Errorf("Expected nextDir to be Down, got %v", g.nextDir)
	}
}

func TestWrapsAroundEdges(t *testing.T) {
	g := newGame(t, 7)
	w := g.cfg.Board.Width
	g.food = core.Point{X: 5, Y: 0}

	place(g, DirRight, core.Point{X: w - 1, Y: 3})
	stepMove(g, core.NewInputFrame())

	if got := g.snake[0]; got != (core.Point{X: 0, Y: 3}) {
		t.Errorf("head = %+v, want wrap to (0, 3)", got)
	}
	if g.phase.Terminal() {
		t.Error("wrapping should not end the game")
	}

	place(g, DirUp, core.Point{X: 2, Y: 0})
	stepMove(g, core.NewInputFrame())
	if got := g.snake[0]; got != (core.Point{X: 2, Y: g.cfg.Board.Height - 1}) {
		t.Errorf("head = %+v, want wrap to bottom row", got)
	}
}

func TestEatingGrowsAndScores(t *testing.T) {
	g := newGame(t, 11)
	place(g, DirRight, core.Point{X: 3, Y: 3})
	g.food = core.Point{X: 4, Y: 3}
	g.hasFood = true

	stepMove(g, core.NewInputFrame())

	if g.sess.Score() != 10 {
		t.Errorf("score = %d, want 10", g.sess.Score())
	}
	if len(g.snake) != 2 {
		t.Errorf("length = %d, want 2", len(g.snake))
	}
	if g.food == g.snake[0] || g.food == g.snake[1] {
		t.Error("new food spawned on the snake")
	}
}

func TestFoodSpawnValidity(t *testing.T) {
	g := newGame(t, 999)
	place(g, DirRight,
		core.Point{X: 5, Y: 5}, core.Point{X: 4, Y: 5}, core.Point{X: 3, Y: 5},
		core.Point{X: 3, Y: 6}, core.Point{X: 3, Y: 7})

	for i := 0; i < 100; i++ {
		g.spawnFood()
		if occupied, ok := g.body.Get(g.food); !ok || occupied {
			t.Fatalf("Food spawned on snake or out of bounds at %+v", g.food)
		}
	}
}

func TestSelfCollisionEndsGame(t *testing.T) {
	g := newGame(t, 5)
	g.food = core.Point{X: 20, Y: 12}
	// Head at (5,5) moving down into its own body at (5,6).
	place(g, DirDown,
		core.Point{X: 5, Y: 5}, core.Point{X: 4, Y: 5}, core.Point{X: 4, Y: 6},
		core.Point{X: 5, Y: 6}, core.Point{X: 6, Y: 6})

	stepMove(g, core.NewInputFrame())

	if !g.State().GameOver() || g.State().Won() {
		t.Fatalf("phase = %v, want game over", g.phase.Phase())
	}
}

func TestMovingIntoTailIsAllowed(t *testing.T) {
	g := newGame(t, 5)
	g.food = core.Point{X: 20, Y: 12}
	// A 2x2 loop: the head follows the tail, which moves away this tick.
	place(g, DirDown,
		core.Point{X: 5, Y: 5}, core.Point{X: 4, Y: 5}, core.Point{X: 4, Y: 6}, core.Point{X: 5, Y: 6})

	stepMove(g, core.NewInputFrame())

	if g.phase.Terminal() {
		t.Fatal("moving into the vacating tail cell should be legal")
	}
	if g.snake[0] != (core.Point{X: 5, Y: 6}) {
		t.Errorf("head = %+v, want (5, 6)", g.snake[0])
	}
}

func TestFullBoardWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, []byte("board:\n  width: 4\n  height: 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	g := New()
	g.Reset(core.RuntimeConfig{Seed: 3, ScreenW: 80, ScreenH: 24, ConfigPath: path})

	// Serpentine over the 4x4 board, leaving only (0,3) free.
	var serp []core.Point
	for y := 0; y < 4; y++ {
		for i := 0; i < 4; i++ {
			x := i
			if y%2 == 1 {
				x = 3 - i
			}
			serp = append(serp, core.Point{X: x, Y: y})
		}
	}
	body := make([]core.Point, 0, 15)
	for i := 14; i >= 0; i-- {
		body = append(body, serp[i])
	}
	place(g, DirLeft, body...)
	g.food = serp[15]
	g.hasFood = true

	stepMove(g, core.NewInputFrame())

	if !g.State().Won() {
		t.Fatalf("phase = %v, want won", g.phase.Phase())
	}
	if g.State().Score != 10 {
		t.Errorf("score = %d, want 10", g.State().Score)
	}
}

func TestTerminalPhaseIsFrozen(t *testing.T) {
	g := newGame(t, 8)
	g.food = core.Point{X: 20, Y: 12}
	place(g, DirDown,
		core.Point{X: 5, Y: 5}, core.Point{X: 4, Y: 5}, core.Point{X: 4, Y: 6},
		core.Point{X: 5, Y: 6}, core.Point{X: 6, Y: 6})
	stepMove(g, core.NewInputFrame())

	before := g.Snapshot()
	input := core.NewInputFrame()
	input.Set(core.ActionUp)
	input.Set(core.ActionPause)
	for i := 0; i < 50; i++ {
		g.Step(input)
	}

	if !reflect.DeepEqual(before, g.Snapshot()) {
		t.Errorf("terminal state changed:\n%+v\n%+v", before, g.Snapshot())
	}
}

func TestPauseFreezesMovement(t *testing.T) {
	g := newGame(t, 21)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)
	if !g.State().Paused {
		t.Fatal("expected paused")
	}

	before := g.Snapshot()
	for i := 0; i < 60; i++ {
		g.Step(core.NewInputFrame())
	}
	if !reflect.DeepEqual(before, g.Snapshot()) {
		t.Error("paused game moved")
	}

	g.Step(pause)
	if g.State().Paused {
		t.Error("expected unpaused")
	}
}

func TestHighScoreSurvivesReset(t *testing.T) {
	g := newGame(t, 11)
	place(g, DirRight, core.Point{X: 3, Y: 3})
	g.food = core.Point{X: 4, Y: 3}
	g.hasFood = true
	stepMove(g, core.NewInputFrame())

	g.Reset(core.RuntimeConfig{Seed: 12, ScreenW: 80, ScreenH: 24})
	st := g.State()
	if st.Score != 0 || st.HighScore != 10 {
		t.Errorf("after reset score=%d high=%d, want 0 and 10", st.Score, st.HighScore)
	}
}

func TestRenderIsPure(t *testing.T) {
	g1 := newGame(t, 77)
	g2 := newGame(t, 77)
	for i := 0; i < 40; i++ {
		g1.Step(core.NewInputFrame())
		g2.Step(core.NewInputFrame())
	}

	before := g1.Snapshot()
	s1 := core.NewScreen(80, 24)
	s2 := core.NewScreen(80, 24)
	g1.Render(s1)
	g2.Render(s2)

	if s1.String() != s2.String() {
		t.Error("identical states rendered differently")
	}
	if !reflect.DeepEqual(before, g1.Snapshot()) {
		t.Error("Render mutated the game")
	}
}

func TestTooSmallScreenWaits(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 20, ScreenH: 10})

	before := g.Snapshot()
	for i := 0; i < 30; i++ {
		g.Step(core.NewInputFrame())
	}
	if !reflect.DeepEqual(before, g.Snapshot()) {
		t.Error("game advanced on a too-small screen")
	}

	s := core.NewScreen(20, 10)
	g.Render(s)
	if !strings.Contains(s.String(), "Window too small") {
		t.Errorf("expected too-small message, got:\n%s", s.String())
	}
}
