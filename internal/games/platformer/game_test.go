package platformer

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     1,
	}
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// grounded returns a game whose player has dropped onto the first platform.
func grounded(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.Reset(testConfig())
	for range 30 {
		g.Step(frame())
		if g.isGrounded {
			return g
		}
	}
	t.Fatal("player never landed on the starting platform")
	return nil
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 300)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		inputs[i].Hold(core.ActionRight)
		if i%25 == 0 {
			inputs[i].Set(core.ActionJump)
		}
	}

	run := func() Snapshot {
		g := New()
		g.Reset(testConfig())
		for _, in := range inputs {
			g.Step(in)
		}
		return g.Snapshot()
	}

	s1, s2 := run(), run()
	if !reflect.DeepEqual(s1, s2) {
		t.Errorf("Determinism failed:\n%+v\n%+v", s1, s2)
	}
}

func TestPlayerLandsOnPlatform(t *testing.T) {
	g := grounded(t)

	ground := g.cfg.Level.Platforms[0]
	if got, want := g.playerY+g.cfg.Player.Height, ground.Y; got != want {
		t.Errorf("player bottom = %v, want platform top %v", got, want)
	}
	if g.playerVel != 0 {
		t.Errorf("velocity after landing = %v, want 0", g.playerVel)
	}

	// Standing still keeps the player on the platform.
	for range 10 {
		g.Step(frame())
	}
	if !g.isGrounded || g.playerY+g.cfg.Player.Height != ground.Y {
		t.Errorf("player should stay on the platform, y=%v grounded=%v", g.playerY, g.isGrounded)
	}
}

func TestJumpOnlyFromGround(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	g.Step(frame(core.ActionJump))
	if g.playerVel < 0 {
		t.Errorf("airborne jump should be ignored, vel=%v", g.playerVel)
	}

	g = grounded(t)
	g.Step(frame(core.ActionJump))
	want := g.cfg.Physics.JumpImpulse + g.cfg.Physics.Gravity
	if g.playerVel != want {
		t.Errorf("vel after jump = %v, want %v", g.playerVel, want)
	}
	if g.isGrounded {
		t.Error("player should leave the ground after a jump")
	}
}

func TestHorizontalMovementClamped(t *testing.T) {
	g := grounded(t)

	left := core.NewInputFrame()
	left.Hold(core.ActionLeft)
	for range 30 {
		g.Step(left)
	}
	if g.playerX != 0 {
		t.Errorf("playerX = %v, want clamped to 0", g.playerX)
	}
	if g.facingRight {
		t.Error("player should face left after moving left")
	}

	g.playerX = g.cfg.World.Width
	g.Step(frame())
	if limit := g.cfg.World.Width - g.cfg.Player.Width; g.playerX != limit {
		t.Errorf("playerX = %v, want clamped to %v", g.playerX, limit)
	}
}

func TestFallingOffRespawns(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	// Between the first two platforms.
	g.playerX = 225

	for range 60 {
		g.Step(frame())
		if g.falls > 0 {
			break
		}
	}
	if g.falls != 1 {
		t.Fatalf("falls = %d, want 1", g.falls)
	}
	if g.playerX != g.cfg.Player.StartX || g.playerY != g.cfg.Player.StartY || g.playerVel != 0 {
		t.Errorf("player not at spawn: x=%v y=%v vel=%v", g.playerX, g.playerY, g.playerVel)
	}
	if g.phase.Terminal() {
		t.Error("falling should not end the run")
	}
}

func TestReachingGoalWins(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.falls = 2
	goal := g.cfg.Level.Goal
	g.playerX, g.playerY = goal.X-5, goal.Y-5

	g.Step(frame())

	if !g.phase.Is(core.PhaseWon) {
		t.Fatalf("phase = %s, want won", g.phase.Phase())
	}
	want := g.cfg.Scoring.Base - 2*g.cfg.Scoring.FallPenalty
	if g.sess.Score() != want {
		t.Errorf("score = %d, want %d", g.sess.Score(), want)
	}
	if g.State().HighScore != want {
		t.Errorf("high score = %d, want %d", g.State().HighScore, want)
	}

	before := g.Snapshot()
	g.Step(frame(core.ActionRight, core.ActionJump))
	if !reflect.DeepEqual(g.Snapshot(), before) {
		t.Error("a finished run should ignore input")
	}
}

func TestRunScoreFloor(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.tickCount = 1_000_000

	if got := g.runScore(); got != g.cfg.Scoring.Min {
		t.Errorf("runScore = %d, want floor %d", got, g.cfg.Scoring.Min)
	}
}

func TestPauseFreezesPlayer(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	g.Step(frame(core.ActionPause))
	before := g.Snapshot()
	for range 10 {
		g.Step(frame())
	}
	if !reflect.DeepEqual(g.Snapshot(), before) {
		t.Error("paused game should not move")
	}

	g.Step(frame(core.ActionPause))
	if g.paused {
		t.Error("second pause should resume")
	}
}

func TestRender(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.Step(frame())

	s := core.NewScreen(80, 24)
	g.Render(s)
	out := s.String()
	if !strings.ContainsRune(out, FlagChar) {
		t.Error("render should draw the goal flag")
	}
	if !strings.ContainsRune(out, GrassChar) {
		t.Error("render should draw platforms")
	}
	if !strings.Contains(out, "Falls: 0") {
		t.Error("render should show the HUD")
	}

	again := core.NewScreen(80, 24)
	g.Render(again)
	if again.String() != out {
		t.Error("rendering the same state twice should produce the same frame")
	}
}

func TestTooSmall(t *testing.T) {
	g := New()
	cfg := testConfig()
	cfg.ScreenW, cfg.ScreenH = 20, 8
	g.Reset(cfg)

	before := g.Snapshot()
	g.Step(frame(core.ActionRight))
	if !reflect.DeepEqual(g.Snapshot(), before) {
		t.Error("a too-small screen should not advance the game")
	}

	s := core.NewScreen(20, 8)
	g.Render(s)
	if !strings.Contains(s.String(), "small") {
		t.Error("render should explain the window is too small")
	}
}
