package engine

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/registry"
)

// Controller owns a game's lifecycle: reset with fresh randomness, step
// with always-live restart and quit, score recording on the first terminal
// tick, and quit. It keeps no state beyond the process.
type Controller struct {
	game      registry.Game
	cfg       core.RuntimeConfig
	rng       *rand.Rand
	sessionID string
	scores    core.ScoreRecorder
	logger    *zap.Logger

	state    core.GameState
	ticks    int
	rounds   int
	recorded bool
	quit     bool
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithScoreRecorder records every finished round in s.
func WithScoreRecorder(s core.ScoreRecorder) ControllerOption {
	return func(c *Controller) { c.scores = s }
}

// WithLogger sets the diagnostics logger.
func WithLogger(l *zap.Logger) ControllerOption {
	return func(c *Controller) { c.logger = l }
}

// WithSessionID overrides the generated session id.
func WithSessionID(id string) ControllerOption {
	return func(c *Controller) { c.sessionID = id }
}

// NewController seeds the process-wide random source from cfg.Seed (zero
// means the current time), then resets the game for its first round.
func NewController(game registry.Game, cfg core.RuntimeConfig, opts ...ControllerOption) *Controller {
	if cfg.TickRate <= 0 {
		cfg.TickRate = DefaultRate
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	c := &Controller{
		game:   game,
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(seed)),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.sessionID == "" {
		c.sessionID = uuid.NewString()
	}
	c.logger = c.logger.With(zap.String("game", game.ID()), zap.String("session", c.sessionID))
	c.Reset()
	return c
}

// Reset starts a fresh round. Each round draws its own seed from the
// process-wide source, so shuffles and spawns differ between rounds while
// staying reproducible for a fixed starting seed.
func (c *Controller) Reset() {
	c.cfg.Seed = c.rng.Int63()
	c.game.Reset(c.cfg)
	c.state = c.game.State()
	c.ticks = 0
	c.recorded = false
	c.rounds++
	c.logger.Debug("round reset", zap.Int("round", c.rounds), zap.String("phase", c.state.Phase.String()))
}

// Resize updates the screen size used by later resets.
func (c *Controller) Resize(w, h int) {
	c.cfg.ScreenW = w
	c.cfg.ScreenH = h
}

// Step advances one tick. Quit and restart are handled here in every
// phase; in a terminal phase nothing else reaches the game.
func (c *Controller) Step(in core.InputFrame) core.GameState {
	if c.quit {
		return c.state
	}
	if in.Has(core.ActionQuit) {
		c.Quit()
		return c.state
	}
	if in.Has(core.ActionRestart) {
		c.Reset()
		return c.state
	}
	if c.state.Phase.IsTerminal() {
		return c.state
	}

	c.state = c.game.Step(in).State
	c.ticks++

	if c.state.Phase.IsTerminal() && !c.recorded {
		c.recorded = true
		c.record()
	}
	return c.state
}

func (c *Controller) record() {
	fields := []zap.Field{
		zap.String("phase", c.state.Phase.String()),
		zap.Int("score", c.state.Score),
		zap.Int("ticks", c.ticks),
	}
	if c.scores == nil || c.state.Score <= 0 {
		c.logger.Info("round finished", fields...)
		return
	}
	id, err := c.scores.SaveScore(c.game.ID(), c.sessionID, c.state.Score)
	if err != nil {
		c.logger.Warn("cannot record score", append(fields, zap.Error(err))...)
		return
	}
	c.logger.Info("round finished", append(fields, zap.Int64("score_id", id))...)
}

// Quit stops the controller. Nothing is saved.
func (c *Controller) Quit() {
	if c.quit {
		return
	}
	c.quit = true
	c.logger.Info("quit", zap.Int("rounds", c.rounds))
}

// Render draws the current frame. It never changes the game.
func (c *Controller) Render(dst *core.Screen) {
	dst.Clear()
	c.game.Render(dst)
}

// Done reports whether Quit was called.
func (c *Controller) Done() bool { return c.quit }

// State returns the state after the latest tick or reset.
func (c *Controller) State() core.GameState { return c.state }

// Game returns the controlled game.
func (c *Controller) Game() registry.Game { return c.game }

// Config returns the runtime config of the current round.
func (c *Controller) Config() core.RuntimeConfig { return c.cfg }

// SessionID returns the id under which scores are recorded.
func (c *Controller) SessionID() string { return c.sessionID }

// Rounds returns how many rounds were started.
func (c *Controller) Rounds() int { return c.rounds }

// Ticks returns how many ticks the current round has run.
func (c *Controller) Ticks() int { return c.ticks }
