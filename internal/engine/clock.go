// Package engine drives games at a fixed rate: it samples input, steps the
// game through its lifecycle controller, renders and presents the frame,
// then waits for the next tick.
package engine

import "time"

// DefaultRate is used when a non-positive tick rate is configured.
const DefaultRate = 60

// Clock paces a loop at a fixed target rate.
//
// If a frame overruns its budget the next deadline is re-based on the
// current time, so a slow frame never causes a burst of catch-up ticks.
type Clock struct {
	interval time.Duration
	now      func() time.Time
	sleep    func(time.Duration)
	next     time.Time
	last     time.Time
}

// ClockOption configures a Clock.
type ClockOption func(*Clock)

// WithTimeSource replaces the wall clock and sleeper (tests, headless runs).
func WithTimeSource(now func() time.Time, sleep func(time.Duration)) ClockOption {
	return func(c *Clock) {
		c.now = now
		c.sleep = sleep
	}
}

// NewClock creates a clock ticking rate times per second.
func NewClock(rate int, opts ...ClockOption) *Clock {
	if rate <= 0 {
		rate = DefaultRate
	}
	c := &Clock{
		interval: time.Second / time.Duration(rate),
		now:      time.Now,
		sleep:    time.Sleep,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Interval returns the target duration of one tick.
func (c *Clock) Interval() time.Duration {
	return c.interval
}

// Next returns how long to wait from now until the current tick's
// deadline and schedules the following one. An overrun returns 0.
// Event-driven hosts (bubbletea) use it to schedule their tick message.
func (c *Clock) Next(now time.Time) time.Duration {
	if c.next.IsZero() {
		c.next = now.Add(c.interval)
	}
	wait := c.next.Sub(now)
	if wait < 0 {
		wait = 0
		c.next = now
	}
	c.next = c.next.Add(c.interval)
	return wait
}

// Tick blocks until the next deadline and returns the time elapsed since
// the previous tick.
func (c *Clock) Tick() time.Duration {
	if wait := c.Next(c.now()); wait > 0 {
		c.sleep(wait)
	}
	t := c.now()
	elapsed := c.interval
	if !c.last.IsZero() {
		elapsed = t.Sub(c.last)
	}
	c.last = t
	return elapsed
}
