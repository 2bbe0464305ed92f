package engine

import (
	"context"
	"fmt"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

// Sink presents rendered frames. An error means the display is gone and
// ends the loop.
type Sink interface {
	Present(screen *core.Screen) error
}

// Loop is the headless fixed-timestep driver:
// sample input, step, render, present, wait.
type Loop struct {
	ctrl     *Controller
	sampler  Sampler
	sink     Sink
	clock    *Clock
	screen   *core.Screen
	maxTicks int
	every    int
}

// LoopOption configures a Loop.
type LoopOption func(*Loop)

// WithClock paces the loop. Without a clock it runs as fast as possible.
func WithClock(c *Clock) LoopOption {
	return func(l *Loop) { l.clock = c }
}

// WithMaxTicks stops the loop after n ticks.
func WithMaxTicks(n int) LoopOption {
	return func(l *Loop) { l.maxTicks = n }
}

// WithPresentEvery presents only every n-th frame. The final frame is
// always presented.
func WithPresentEvery(n int) LoopOption {
	return func(l *Loop) { l.every = n }
}

// NewLoop wires a controller to its input and output.
func NewLoop(ctrl *Controller, sampler Sampler, sink Sink, opts ...LoopOption) *Loop {
	cfg := ctrl.Config()
	l := &Loop{
		ctrl:    ctrl,
		sampler: sampler,
		sink:    sink,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		every:   1,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.every < 1 {
		l.every = 1
	}
	return l
}

// Run drives the game until quit, ctx cancellation or the tick limit.
// Cancellation is a normal stop. Only a sink failure is returned.
func (l *Loop) Run(ctx context.Context) (core.GameState, error) {
	dirty := false
	for tick := 0; l.maxTicks <= 0 || tick < l.maxTicks; tick++ {
		if ctx.Err() != nil {
			break
		}

		l.ctrl.Step(l.sampler.Sample(l.ctrl.State().Phase))
		if l.ctrl.Done() {
			return l.ctrl.State(), nil
		}
		dirty = true

		if tick%l.every == 0 {
			if err := l.present(); err != nil {
				return l.ctrl.State(), err
			}
			dirty = false
		}

		if l.clock != nil {
			l.clock.Tick()
		}
	}

	if dirty {
		if err := l.present(); err != nil {
			return l.ctrl.State(), err
		}
	}
	return l.ctrl.State(), nil
}

func (l *Loop) present() error {
	l.ctrl.Render(l.screen)
	if err := l.sink.Present(l.screen); err != nil {
		return fmt.Errorf("engine: present failed: %w", err)
	}
	return nil
}

// Screen returns the loop's frame buffer.
func (l *Loop) Screen() *core.Screen {
	return l.screen
}
