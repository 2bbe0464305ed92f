package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

// Sampler produces one input frame per tick.
type Sampler interface {
	// Sample drains everything collected since the previous call.
	// In a terminal phase only always-live events survive.
	Sample(phase core.Phase) core.InputFrame
}

// DefaultHoldTicks is how long a directional key counts as held after its
// last press or repeat.
const DefaultHoldTicks = 8

// Queue is the live sampler: the platform pushes key events as they
// arrive and the loop drains them once per tick.
//
// Terminals report no key releases, so a directional press marks the
// action held for a short window that every key repeat extends.
type Queue struct {
	events    []core.Event
	held      map[core.Action]int
	holdTicks int
}

// NewQueue creates a queue with the given hold window in ticks.
func NewQueue(holdTicks int) *Queue {
	if holdTicks <= 0 {
		holdTicks = DefaultHoldTicks
	}
	return &Queue{
		held:      make(map[core.Action]int),
		holdTicks: holdTicks,
	}
}

// Push adds one event to the next frame.
func (q *Queue) Push(ev core.Event) {
	q.events = append(q.events, ev)
	if holdable(ev.Action) {
		q.held[ev.Action] = q.holdTicks
	}
}

// Press pushes a plain action event.
func (q *Queue) Press(a core.Action) {
	q.Push(core.Event{Action: a})
}

// Release stops holding a.
func (q *Queue) Release(a core.Action) {
	delete(q.held, a)
}

// Pending returns the number of events waiting for the next frame.
func (q *Queue) Pending() int {
	return len(q.events)
}

// Sample implements Sampler.
func (q *Queue) Sample(phase core.Phase) core.InputFrame {
	var frame core.InputFrame
	for _, ev := range q.events {
		frame.Push(ev)
	}
	q.events = q.events[:0]

	for a, left := range q.held {
		frame.Hold(a)
		if left <= 1 {
			delete(q.held, a)
		} else {
			q.held[a] = left - 1
		}
	}

	if phase.IsTerminal() {
		for a := range q.held {
			delete(q.held, a)
		}
		return frame.LiveOnly()
	}
	return frame
}

func holdable(a core.Action) bool {
	switch a {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		return true
	}
	return false
}

// Script is a sampler that replays a fixed input sequence, one step per
// tick. Used by headless runs and tests.
type Script struct {
	steps [][]core.Event
	tick  int
	queue *Queue
}

// NewScript builds a script from explicit per-tick events.
func NewScript(steps [][]core.Event) *Script {
	return &Script{steps: steps, queue: NewQueue(1)}
}

// ParseScript parses a whitespace or comma separated list of steps.
// Each step is one tick: "." for no input, or action names joined with
// "+" ("left+jump"). A "*N" suffix repeats the step N times (".*30").
// Digits 1 to 9 press a digit key, "click:X:Y" clicks a screen cell.
func ParseScript(s string) (*Script, error) {
	var steps [][]core.Event
	tokens := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\n' || r == '\t'
	})
	for _, tok := range tokens {
		body, repeat := tok, 1
		if i := strings.LastIndex(tok, "*"); i >= 0 {
			n, err := strconv.Atoi(tok[i+1:])
			if err != nil || n < 1 {
				return nil, fmt.Errorf("engine: bad repeat in %q", tok)
			}
			body, repeat = tok[:i], n
		}

		var evs []core.Event
		if body != "." {
			for _, name := range strings.Split(body, "+") {
				ev, err := parseEvent(name)
				if err != nil {
					return nil, err
				}
				evs = append(evs, ev)
			}
		}
		for i := 0; i < repeat; i++ {
			steps = append(steps, evs)
		}
	}
	return NewScript(steps), nil
}

var scriptNames = map[string]core.Action{
	"up":      core.ActionUp,
	"w":       core.ActionUp,
	"down":    core.ActionDown,
	"s":       core.ActionDown,
	"left":    core.ActionLeft,
	"a":       core.ActionLeft,
	"right":   core.ActionRight,
	"d":       core.ActionRight,
	"jump":    core.ActionJump,
	"space":   core.ActionJump,
	"j":       core.ActionJump,
	"confirm": core.ActionConfirm,
	"enter":   core.ActionConfirm,
	"e":       core.ActionConfirm,
	"flag":    core.ActionFlag,
	"f":       core.ActionFlag,
	"pause":   core.ActionPause,
	"p":       core.ActionPause,
	"restart": core.ActionRestart,
	"r":       core.ActionRestart,
	"back":    core.ActionBack,
	"quit":    core.ActionQuit,
	"q":       core.ActionQuit,
}

func parseEvent(name string) (core.Event, error) {
	name = strings.ToLower(name)
	if a, ok := scriptNames[name]; ok {
		return core.Event{Action: a}, nil
	}
	if len(name) == 1 && name[0] >= '1' && name[0] <= '9' {
		return core.Event{Action: core.ActionDigit, Digit: int(name[0] - '0')}, nil
	}
	if rest, ok := strings.CutPrefix(name, "click:"); ok {
		parts := strings.Split(rest, ":")
		if len(parts) == 2 {
			x, errX := strconv.Atoi(parts[0])
			y, errY := strconv.Atoi(parts[1])
			if errX == nil && errY == nil {
				return core.Event{Action: core.ActionPointer, X: x, Y: y}, nil
			}
		}
	}
	return core.Event{}, fmt.Errorf("engine: unknown script action %q", name)
}

// Len returns the number of scripted ticks.
func (s *Script) Len() int {
	return len(s.steps)
}

// Done reports whether every scripted step has been sampled.
func (s *Script) Done() bool {
	return s.tick >= len(s.steps)
}

// Sample implements Sampler. Past the end of the script it yields empty
// frames.
func (s *Script) Sample(phase core.Phase) core.InputFrame {
	if s.tick < len(s.steps) {
		for _, ev := range s.steps[s.tick] {
			s.queue.Push(ev)
		}
	}
	s.tick++
	return s.queue.Sample(phase)
}
