package pong

import (
	"testing"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

func newGame(seed int64) *Game {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: seed})
	return g
}

func idle(g *Game, n int) {
	for i := 0; i < n; i++ {
		g.Step(core.NewInputFrame())
	}
}

func TestServeWaitsInReady(t *testing.T) {
	g := newGame(1)
	if g.phase.Phase() != core.PhaseReady {
		t.Fatalf("want ready, got %s", g.phase.Phase())
	}

	start := g.ball
	idle(g, g.cfg.Gameplay.ServeDelay-1)
	if g.ball != start {
		t.Error("ball should not move during the serve delay")
	}
	idle(g, 1)
	if g.phase.Phase() != core.PhaseActive {
		t.Errorf("want active after serve delay, got %s", g.phase.Phase())
	}
}

func TestPlayerPaddleClamped(t *testing.T) {
	g := newGame(1)
	up := core.NewInputFrame()
	up.Hold(core.ActionUp)
	for i := 0; i < 200; i++ {
		g.Step(up)
	}
	if g.paddle1Y != 1 {
		t.Errorf("paddle should stop at top, got %v", g.paddle1Y)
	}

	down := core.NewInputFrame()
	down.Hold(core.ActionDown)
	for i := 0; i < 200; i++ {
		g.Step(down)
	}
	if g.paddle1Y != g.maxPaddleY() {
		t.Errorf("paddle should stop at bottom, got %v", g.paddle1Y)
	}
}

func TestPaddleReturnsBall(t *testing.T) {
	g := newGame(2)
	idle(g, g.cfg.Gameplay.ServeDelay)

	g.paddle1Y = 10
	g.ball = core.Vec{X: g.paddleX(core.Player1) + 1.2, Y: 12}
	g.ballVel = core.Vec{X: -0.5, Y: 0}
	g.Step(core.NewInputFrame())

	if g.ballVel.X <= 0 {
		t.Errorf("ball should be returned, VX=%v", g.ballVel.X)
	}
}

func TestPointsAndServe(t *testing.T) {
	g := newGame(3)
	idle(g, g.cfg.Gameplay.ServeDelay)

	g.ball = core.Vec{X: float64(g.screenW) - 0.1, Y: 3}
	g.ballVel = core.Vec{X: 0.5, Y: 0}
	g.paddle2Y = 15
	g.Step(core.NewInputFrame())

	if g.State().Score != 1 {
		t.Fatalf("player should score, got %d", g.State().Score)
	}
	if g.phase.Phase() != core.PhaseResolving {
		t.Fatalf("want resolving serve, got %s", g.phase.Phase())
	}
	if g.ballVel.X <= 0 {
		t.Error("serve should travel towards the CPU, who conceded")
	}
	idle(g, g.cfg.Gameplay.ServeDelay)
	if g.phase.Phase() != core.PhaseActive {
		t.Errorf("want active, got %s", g.phase.Phase())
	}
}

func TestPlayerReachingWinScoreWins(t *testing.T) {
	g := newGame(4)
	idle(g, g.cfg.Gameplay.ServeDelay)
	for i := 0; i < g.cfg.Gameplay.WinScore-1; i++ {
		g.sess.Add(1)
	}
	g.point(core.Player1)

	if !g.State().Won() {
		t.Fatalf("want won, got %s", g.phase.Phase())
	}
	if g.winner != core.Player1 {
		t.Errorf("winner = %v", g.winner)
	}
}

func TestCPUReachingWinScoreEndsGame(t *testing.T) {
	g := newGame(5)
	idle(g, g.cfg.Gameplay.ServeDelay)
	g.cpuScore = g.cfg.Gameplay.WinScore - 1
	g.point(core.Player2)

	st := g.State()
	if !st.GameOver() || st.Won() {
		t.Fatalf("want game over, got %s", st.Phase)
	}

	before := g.Snapshot()
	up := core.NewInputFrame()
	up.Hold(core.ActionUp)
	up.Set(core.ActionPause)
	for i := 0; i < 50; i++ {
		g.Step(up)
	}
	if g.Snapshot() != before {
		t.Error("terminal match must not change")
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := newGame(99)
		for i := 0; i < 3000; i++ {
			in := core.NewInputFrame()
			if (i/40)%2 == 0 {
				in.Hold(core.ActionUp)
			} else {
				in.Hold(core.ActionDown)
			}
			g.Step(in)
		}
		return g.Snapshot()
	}
	if a, b := run(), run(); a != b {
		t.Errorf("snapshots diverged:\n%+v\n%+v", a, b)
	}
}

func TestRenderShowsScores(t *testing.T) {
	g := newGame(6)
	g.sess.Add(3)
	g.cpuScore = 2

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if screen.Get(35, 0) != '3' || screen.Get(44, 0) != '2' {
		t.Errorf("scores not drawn: %q", screen.Row(0))
	}
}
