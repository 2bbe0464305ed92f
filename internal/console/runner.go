package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

// Result summarises a finished console session.
type Result struct {
	SessionID string
	Rounds    int
	LastScore int
	HighScore int
}

type runner struct {
	seed      int64
	scores    core.ScoreRecorder
	logger    *zap.Logger
	sessionID string
}

// Option configures Run.
type Option func(*runner)

// WithSeed seeds the session's random source. Zero uses the clock.
func WithSeed(seed int64) Option {
	return func(r *runner) { r.seed = seed }
}

// WithScoreRecorder records each finished round.
func WithScoreRecorder(s core.ScoreRecorder) Option {
	return func(r *runner) { r.scores = s }
}

// WithLogger sets the diagnostics logger.
func WithLogger(l *zap.Logger) Option {
	return func(r *runner) { r.logger = l }
}

// WithSessionID overrides the generated session id.
func WithSessionID(id string) Option {
	return func(r *runner) { r.sessionID = id }
}

// Run plays g over in/out until the player quits, declines another round,
// in reaches EOF or ctx is cancelled. Only write failures are errors.
func Run(ctx context.Context, g Game, in io.Reader, out io.Writer, opts ...Option) (Result, error) {
	r := runner{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&r)
	}
	if r.seed == 0 {
		r.seed = time.Now().UnixNano()
	}
	if r.sessionID == "" {
		r.sessionID = uuid.NewString()
	}
	rng := rand.New(rand.NewSource(r.seed))
	log := r.logger.With(zap.String("game", g.ID()), zap.String("session", r.sessionID))

	res := Result{SessionID: r.sessionID}
	var session core.Session
	scanner := bufio.NewScanner(in)

	readLine := func() (string, bool) {
		if ctx.Err() != nil || !scanner.Scan() {
			return "", false
		}
		return scanner.Text(), true
	}

	if _, err := fmt.Fprintf(out, "=== %s ===\n%s\n", g.Title(), g.Reset(rng)); err != nil {
		return res, fmt.Errorf("console: write failed: %w", err)
	}
	res.Rounds = 1
	log.Info("round started")

	finish := func() {
		score := g.Score()
		session.Raise(score)
		session.Reset()
		res.LastScore = score
		res.HighScore = session.HighScore()
		log.Info("round finished", zap.Int("score", score))
		if r.scores != nil {
			if _, err := r.scores.SaveScore(g.ID(), r.sessionID, score); err != nil {
				log.Warn("cannot record score", zap.Error(err))
			}
		}
	}

	for {
		if _, err := fmt.Fprint(out, g.Prompt()); err != nil {
			return res, fmt.Errorf("console: write failed: %w", err)
		}
		line, ok := readLine()
		if !ok {
			log.Info("input closed")
			return res, nil
		}
		if Quits(g, line) {
			log.Info("player quit")
			return res, nil
		}

		reply := g.Handle(line)
		if reply.Text != "" {
			if _, err := fmt.Fprintln(out, reply.Text); err != nil {
				return res, fmt.Errorf("console: write failed: %w", err)
			}
		}
		if !reply.Done {
			continue
		}

		finish()
		again, err := askAgain(out, readLine)
		if err != nil {
			return res, err
		}
		if !again {
			return res, nil
		}
		if _, err := fmt.Fprintln(out, g.Reset(rng)); err != nil {
			return res, fmt.Errorf("console: write failed: %w", err)
		}
		res.Rounds++
		log.Info("round started")
	}
}

// askAgain keeps asking until it reads y/yes or n/no. Quit words and EOF
// count as no.
func askAgain(out io.Writer, readLine func() (string, bool)) (bool, error) {
	for {
		if _, err := fmt.Fprint(out, "Play again? (y/n) "); err != nil {
			return false, fmt.Errorf("console: write failed: %w", err)
		}
		line, ok := readLine()
		if !ok || IsQuit(line) {
			return false, nil
		}
		switch Normalize(line) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		if _, err := fmt.Fprintln(out, "Please answer y or n."); err != nil {
			return false, fmt.Errorf("console: write failed: %w", err)
		}
	}
}
