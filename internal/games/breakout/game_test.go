package breakout

import (
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

func newGame(seed int64) *Game {
	g := New()
	g.Reset(testConfig(seed))
	return g
}

func jump() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionJump)
	return in
}

func TestGameDeterminism(t *testing.T) {
	// Move paddle right, then launch, then alternate left/right
	inputSequence := make([]core.InputFrame, 600)
	for i := range inputSequence {
		inputSequence[i] = core.NewInputFrame()
		switch {
		case i == 10:
			inputSequence[i].Set(core.ActionJump)
		case i > 10 && i%5 < 3:
			inputSequence[i].Hold(core.ActionRight)
		case i > 10:
			inputSequence[i].Hold(core.ActionLeft)
		}
	}

	run := func() Snapshot {
		g := newGame(12345)
		for _, in := range inputSequence {
			if g.Step(in).State.GameOver() {
				break
			}
		}
		return g.Snapshot()
	}

	snap1, snap2 := run(), run()
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score || snap1.Tick != snap2.Tick {
		t.Errorf("Determinism failed: score %d/%d tick %d/%d", snap1.Score, snap2.Score, snap1.Tick, snap2.Tick)
	}
}

func TestGameReset(t *testing.T) {
	g := newGame(42)
	g.Step(jump())
	for i := 0; i < 50; i++ {
		in := core.NewInputFrame()
		in.Hold(core.ActionRight)
		g.Step(in)
	}

	g.Reset(testConfig(42))

	if g.sess.Score() != 0 {
		t.Errorf("Reset should clear score, got %d", g.sess.Score())
	}
	if g.phase.Phase() != core.PhaseReady {
		t.Errorf("Reset should enter ready, got %s", g.phase.Phase())
	}
	if !g.ball.Stuck {
		t.Error("Reset should park the ball on the paddle")
	}
	if got := g.Snapshot().BricksRemaining; got != 60 {
		t.Errorf("Reset should build a 6x10 wall, got %d bricks", got)
	}
	if g.lives != 3 {
		t.Errorf("Reset should restore lives, got %d", g.lives)
	}
}

func TestReadyUntilLaunch(t *testing.T) {
	g := newGame(1)

	for i := 0; i < 30; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.phase.Phase() != core.PhaseReady || !g.ball.Stuck {
		t.Fatalf("ball should wait on the paddle, phase=%s stuck=%v", g.phase.Phase(), g.ball.Stuck)
	}

	// The parked ball follows the paddle.
	in := core.NewInputFrame()
	in.Hold(core.ActionLeft)
	g.Step(in)
	if g.ball.X != g.paddle.CenterX() {
		t.Error("stuck ball should track paddle centre")
	}

	g.Step(jump())
	if g.phase.Phase() != core.PhaseActive {
		t.Errorf("launch should activate, got %s", g.phase.Phase())
	}
	if g.ball.Stuck || g.ball.VY >= 0 {
		t.Errorf("launched ball should move up, VY=%d", g.ball.VY)
	}
}

func TestPaddleMovementIsClamped(t *testing.T) {
	g := newGame(1)

	left := core.NewInputFrame()
	left.Hold(core.ActionLeft)
	for i := 0; i < 200; i++ {
		g.Step(left)
	}
	if g.paddle.X != ToFixed(g.arena.Left) {
		t.Errorf("paddle should stop at the left wall, X=%d", g.paddle.X)
	}

	right := core.NewInputFrame()
	right.Hold(core.ActionRight)
	for i := 0; i < 200; i++ {
		g.Step(right)
	}
	if g.paddle.Right() != ToFixed(g.arena.Right+1) {
		t.Errorf("paddle should stop at the right wall, right=%d", g.paddle.Right())
	}
}

func TestPaddleBounceShaping(t *testing.T) {
	p := Paddle{X: ToFixed(10), Y: 20, Width: 8}
	speed := FixedFromFloat(0.5)

	// Centre hit goes straight up.
	ball := Ball{X: p.CenterX(), Y: ToFixed(20), VY: speed}
	if !CheckPaddleCollision(&ball, &p, speed) {
		t.Fatal("expected paddle collision")
	}
	if ball.VY >= 0 || ball.VX != 0 {
		t.Errorf("centre hit: VX=%d VY=%d, want straight up", ball.VX, ball.VY)
	}

	// Left edge angles left, right edge angles right.
	ball = Ball{X: p.X, Y: ToFixed(20), VY: speed}
	CheckPaddleCollision(&ball, &p, speed)
	if ball.VX >= 0 {
		t.Errorf("left edge hit should angle left, VX=%d", ball.VX)
	}
	ball = Ball{X: p.Right(), Y: ToFixed(20), VY: speed}
	CheckPaddleCollision(&ball, &p, speed)
	if ball.VX <= 0 {
		t.Errorf("right edge hit should angle right, VX=%d", ball.VX)
	}

	// Rising balls pass through.
	ball = Ball{X: p.CenterX(), Y: ToFixed(20), VY: -speed}
	if CheckPaddleCollision(&ball, &p, speed) {
		t.Error("ascending ball should not collide")
	}
}

func TestBrickCollision(t *testing.T) {
	g := newGame(3)
	g.Step(jump())

	// Park the ball just below the bottom brick row, moving up.
	row := g.cfg.Bricks.Rows - 1
	x := g.bricksX + 2*g.brickWidth
	g.ball = Ball{X: ToFixed(x), Y: ToFixed(brickTop+row+1) + 100, VY: -200}

	g.Step(core.NewInputFrame())

	if alive, _ := g.bricks.Get(core.Point{X: 2, Y: row}); alive {
		t.Fatal("brick should be destroyed")
	}
	if want := 1 * g.cfg.Bricks.RowPoints; g.sess.Score() != want {
		t.Errorf("bottom row worth %d, got %d", want, g.sess.Score())
	}
	if g.ball.VY <= 0 {
		t.Error("ball should bounce back down")
	}
	if got := g.brickPoints(0); got != 60 {
		t.Errorf("top row points = %d, want 60", got)
	}
}

func TestWallCollision(t *testing.T) {
	a := Arena{Left: 1, Right: 78, Top: 2, Bottom: 23}

	ball := Ball{X: ToFixed(0), Y: ToFixed(10), VX: -100}
	if CheckWallCollision(&ball, a) != CollisionLeft || ball.VX <= 0 {
		t.Error("left wall should reflect")
	}
	ball = Ball{X: ToFixed(79), Y: ToFixed(10), VX: 100}
	if CheckWallCollision(&ball, a) != CollisionRight || ball.VX >= 0 {
		t.Error("right wall should reflect")
	}
	ball = Ball{X: ToFixed(10), Y: ToFixed(1), VY: -100}
	if CheckWallCollision(&ball, a) != CollisionTop || ball.VY <= 0 {
		t.Error("ceiling should reflect")
	}
	ball = Ball{X: ToFixed(10), Y: ToFixed(23), VY: 100}
	if CheckWallCollision(&ball, a) != CollisionFloor {
		t.Error("floor should be a miss")
	}
}

func TestMissCostsLifeThenGameOver(t *testing.T) {
	g := newGame(5)
	g.Step(jump())

	for life := g.lives; life > 0; life-- {
		g.ball = Ball{X: ToFixed(2), Y: ToFixed(g.arena.Bottom) - 10, VY: 100}
		g.paddle.X = ToFixed(40)
		g.Step(core.NewInputFrame())

		if life > 1 {
			if g.phase.Phase() != core.PhaseResolving {
				t.Fatalf("miss should pause for the serve, got %s", g.phase.Phase())
			}
			for i := 0; i < serveDelay; i++ {
				g.Step(core.NewInputFrame())
			}
			if g.phase.Phase() != core.PhaseActive || !g.ball.Stuck {
				t.Fatalf("after serve delay want active with parked ball, got %s", g.phase.Phase())
			}
			g.Step(jump())
		}
	}

	if g.phase.Phase() != core.PhaseGameOver {
		t.Fatalf("want game over, got %s", g.phase.Phase())
	}
	if g.lives != 0 {
		t.Errorf("lives = %d, want 0", g.lives)
	}
}

func TestLastBrickWins(t *testing.T) {
	g := newGame(6)
	g.Step(jump())
	g.bricks.Fill(false)
	_ = g.bricks.Set(core.Point{X: 0, Y: 0}, true)

	g.ball = Ball{X: ToFixed(g.bricksX), Y: ToFixed(brickTop+1) + 100, VY: -200}
	g.Step(core.NewInputFrame())

	if g.phase.Phase() != core.PhaseWon {
		t.Fatalf("want won, got %s", g.phase.Phase())
	}

	before := g.Snapshot().Hash()
	for i := 0; i < 30; i++ {
		g.Step(jump())
	}
	if g.Snapshot().Hash() != before {
		t.Error("won state must be frozen")
	}
}

func TestGamePause(t *testing.T) {
	g := newGame(7)
	g.Step(jump())

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)
	if !g.State().Paused {
		t.Fatal("expected paused")
	}

	before := g.Snapshot().Hash()
	for i := 0; i < 30; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.Snapshot().Hash() != before {
		t.Error("paused game should not advance")
	}

	g.Step(pause)
	if g.State().Paused {
		t.Error("expected resumed")
	}
}

func TestGameRender(t *testing.T) {
	g := newGame(1)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	paddleX := g.paddle.X.ToCell()
	if screen.Get(paddleX, g.paddle.Y) != PaddleChar {
		t.Errorf("Paddle should be drawn, got %q at paddle position", screen.Get(paddleX, g.paddle.Y))
	}
	if screen.Get(g.ball.CellX(), g.ball.CellY()) != BallChar {
		t.Error("Ball should be drawn")
	}

	again := core.NewScreen(80, 24)
	g.Render(again)
	if screen.String() != again.String() {
		t.Error("Render should be reproducible")
	}
}

func TestScreenTooSmall(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 10, Seed: 1})

	before := g.Snapshot().Hash()
	g.Step(jump())
	if g.Snapshot().Hash() != before {
		t.Error("game should wait on a too-small screen")
	}
}

func TestFixedPointArithmetic(t *testing.T) {
	a := ToFixed(5)
	b := ToFixed(3)

	if a+b != ToFixed(8) {
		t.Errorf("5 + 3 should be 8, got %d", (a+b)/Scale)
	}
	if f := Fixed(5500); f.ToCell() != 5 {
		t.Errorf("5500 fixed should convert to cell 5, got %d", f.ToCell())
	}
	if f := Fixed(-500); f.ToCell() != -1 {
		t.Errorf("-500 fixed should floor to cell -1, got %d", f.ToCell())
	}
	if FixedFromFloat(0.35) != 350 {
		t.Errorf("FixedFromFloat(0.35) = %d", FixedFromFloat(0.35))
	}
	if ClampFixed(Fixed(100), 0, 50) != 50 || ClampFixed(Fixed(-10), 0, 50) != 0 {
		t.Error("ClampFixed out of range")
	}
}
