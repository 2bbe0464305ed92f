package flappy

import (
	"reflect"
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

func jumpFrame() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionJump)
	return in
}

// started returns a game that has left Ready with one flap.
func started(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.Reset(testConfig(1))
	g.Step(jumpFrame())
	if !g.phase.Is(core.PhaseActive) {
		t.Fatalf("first flap should start the game, phase %s", g.phase.Phase())
	}
	return g
}

func TestGameDeterminism(t *testing.T) {
	// Jump every 15 ticks to try to stay airborne
	inputSequence := make([]core.InputFrame, 200)
	for i := range inputSequence {
		inputSequence[i] = core.NewInputFrame()
		if i%15 == 0 {
			inputSequence[i].Set(core.ActionJump)
		}
	}

	run := func() Snapshot {
		g := New()
		g.Reset(testConfig(12345))
		for _, in := range inputSequence {
			g.Step(in)
		}
		return g.Snapshot()
	}

	s1, s2 := run(), run()
	if !reflect.DeepEqual(s1, s2) {
		t.Errorf("Determinism failed:\n%+v\n%+v", s1, s2)
	}
}

func TestGameReadyUntilFirstFlap(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))
	before := g.Snapshot()

	for range 30 {
		g.Step(core.NewInputFrame())
	}

	if !reflect.DeepEqual(g.Snapshot(), before) {
		t.Error("Game should not change before the first flap")
	}
	if g.phase.Phase() != core.PhaseReady {
		t.Errorf("Expected ready phase, got %s", g.phase.Phase())
	}
}

func TestGameReset(t *testing.T) {
	g := New()
	g.Reset(testConfig(42))

	for i := range 50 {
		in := core.NewInputFrame()
		if i%10 == 0 {
			in.Set(core.ActionJump)
		}
		g.Step(in)
	}

	g.Reset(testConfig(42))

	if g.sess.Score() != 0 {
		t.Errorf("Reset should clear score, got %d", g.sess.Score())
	}
	if !g.phase.Is(core.PhaseReady) {
		t.Errorf("Reset should return to ready, got %s", g.phase.Phase())
	}
	if g.paused {
		t.Error("Reset should clear paused flag")
	}
	if g.tickCount != 0 {
		t.Errorf("Reset should clear tickCount, got %d", g.tickCount)
	}
	if len(g.pipes.Pipes()) != 0 {
		t.Errorf("Reset should clear pipes, got %d", len(g.pipes.Pipes()))
	}
}

func TestGameJumpPhysics(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))
	initialY := g.playerY

	g.Step(jumpFrame())

	if g.playerY >= initialY {
		t.Errorf("Jump should move player up, was %f, now %f", initialY, g.playerY)
	}
	if g.playerVel >= 0 {
		t.Errorf("Jump velocity should be negative, got %f", g.playerVel)
	}
}

func TestGameGravity(t *testing.T) {
	g := started(t)

	g.playerY = 10
	g.playerVel = 0
	g.Step(core.NewInputFrame())

	if g.playerY <= 10 {
		t.Errorf("Gravity should pull player down, Y is still %f", g.playerY)
	}
	if g.playerVel <= 0 {
		t.Errorf("Velocity should be positive after gravity, got %f", g.playerVel)
	}
}

func TestGameFallSpeedCapped(t *testing.T) {
	g := started(t)
	g.playerY = 2
	g.playerVel = 100

	g.Step(core.NewInputFrame())

	if g.playerVel != g.cfg.Physics.MaxFallSpeed {
		t.Errorf("Velocity should be capped at %f, got %f", g.cfg.Physics.MaxFallSpeed, g.playerVel)
	}
}

func TestGamePause(t *testing.T) {
	g := started(t)

	pauseInput := core.NewInputFrame()
	pauseInput.Set(core.ActionPause)
	g.Step(pauseInput)

	if !g.paused {
		t.Fatal("Game should be paused")
	}

	yBefore := g.playerY
	g.Step(core.NewInputFrame())

	if g.playerY != yBefore {
		t.Errorf("Player position should not change while paused, was %f, now %f", yBefore, g.playerY)
	}

	g.Step(pauseInput)
	if g.paused {
		t.Error("Game should be unpaused")
	}
}

func TestGameOverOnGround(t *testing.T) {
	g := started(t)

	g.playerY = 22
	g.playerVel = 3

	result := g.Step(core.NewInputFrame())
	if !result.State.GameOver() {
		t.Error("Game should be over when player hits ground")
	}
}

func TestGameOverOnCeiling(t *testing.T) {
	g := started(t)

	g.playerY = 0.5
	g.playerVel = -3

	result := g.Step(core.NewInputFrame())
	if !result.State.GameOver() {
		t.Error("Game should be over when player hits the ceiling")
	}
	if g.playerY != 0 {
		t.Errorf("Player should be pinned to the ceiling, got %f", g.playerY)
	}
}

func TestPipeCollision(t *testing.T) {
	g := started(t)

	// Pipe overlapping the player with the gap above it
	g.pipes.pipes = append(g.pipes.pipes, Pipe{
		X:         g.cfg.Player.X - 1,
		GapY:      0,
		GapHeight: 5,
	})
	g.playerY = 15
	g.playerVel = 0

	result := g.Step(core.NewInputFrame())
	if !result.State.GameOver() {
		t.Error("Game should be over when player hits pipe")
	}
}

func TestPipePassedScores(t *testing.T) {
	g := started(t)

	// Right edge already level with the player
	g.pipes.pipes = append(g.pipes.pipes, Pipe{
		X:         g.cfg.Player.X - g.cfg.Obstacles.PipeWidth,
		GapY:      2,
		GapHeight: 18,
	})
	g.playerY = 10
	g.playerVel = 0

	result := g.Step(core.NewInputFrame())
	if result.State.Score != 1 {
		t.Errorf("Passing a pipe should score 1, got %d", result.State.Score)
	}

	// A pipe counts once
	g.playerY, g.playerVel = 10, 0
	result = g.Step(core.NewInputFrame())
	if result.State.Score != 1 {
		t.Errorf("Pipe should only score once, got %d", result.State.Score)
	}
}

func TestPipesSpawnInsideMargins(t *testing.T) {
	g := started(t)

	for range 300 {
		g.pipes.pipes = g.pipes.pipes[:0:0]
		g.pipes.spawnPipe(0, 0)
		p := g.pipes.Pipes()[0]

		if p.GapY < g.cfg.Obstacles.TopMargin {
			t.Fatalf("Gap starts inside top margin: %+v", p)
		}
		if p.GapY+p.GapHeight > g.groundY-g.cfg.Obstacles.BottomMargin {
			t.Fatalf("Gap ends inside bottom margin: %+v", p)
		}
		if p.GapHeight < g.cfg.Obstacles.MinGapSize || p.GapHeight > g.cfg.Obstacles.MaxGapSize {
			t.Fatalf("Gap height out of range: %+v", p)
		}
	}
}

func TestGameOverIsFrozen(t *testing.T) {
	g := started(t)
	g.playerY, g.playerVel = 22, 3
	g.Step(core.NewInputFrame())

	before := g.Snapshot()
	for range 10 {
		g.Step(jumpFrame())
	}
	if !reflect.DeepEqual(g.Snapshot(), before) {
		t.Error("State should not change after game over")
	}
}

func TestHighScoreSurvivesReset(t *testing.T) {
	g := started(t)
	g.sess.Add(7)
	g.playerY, g.playerVel = 22, 3
	g.Step(core.NewInputFrame())

	g.Reset(testConfig(1))
	if st := g.State(); st.Score != 0 || st.HighScore != 7 {
		t.Errorf("Expected score 0 and best 7, got %d and %d", st.Score, st.HighScore)
	}
}

func TestGameRender(t *testing.T) {
	cfg := testConfig(1)
	g := New()
	g.Reset(cfg)

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g.Render(screen)

	groundY := cfg.ScreenH - 1
	if screen.Get(0, groundY) != GroundChar {
		t.Errorf("Ground should be drawn at bottom, got %q", screen.Get(0, groundY))
	}
	if !strings.Contains(screen.String(), "Press SPACE to flap") {
		t.Error("Ready overlay should be drawn before the first flap")
	}

	// Render is pure
	before := g.Snapshot()
	g.Render(screen)
	if !reflect.DeepEqual(g.Snapshot(), before) {
		t.Error("Render should not change game state")
	}
}

func TestTooSmallScreen(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 8, TickRate: 60, Seed: 1})

	g.Step(jumpFrame())
	if !g.phase.Is(core.PhaseReady) {
		t.Error("Game should not start on a too small screen")
	}

	screen := core.NewScreen(20, 8)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too small") {
		t.Error("Expected a too small message")
	}
}
