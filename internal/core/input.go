package core

// Action is a semantic input intent, abstracted from physical keys.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow
	ActionDown           // S, Down arrow
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionJump           // Space - primary action (flap, shoot, launch, hard drop)
	ActionConfirm        // Enter - select, reveal, drop disc
	ActionFlag           // F - secondary marking action (minesweeper flag)
	ActionDigit          // 1-9, carries Event.Digit
	ActionPointer        // Mouse click, carries Event.X/Event.Y in screen cells
	ActionPause          // P, Escape
	ActionRestart        // R
	ActionBack           // B - leave the game for the menu
	ActionQuit           // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionConfirm:
		return "Confirm"
	case ActionFlag:
		return "Flag"
	case ActionDigit:
		return "Digit"
	case ActionPointer:
		return "Pointer"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// AlwaysLive reports whether the action must be delivered even when the
// simulation sits in a terminal phase.
func (a Action) AlwaysLive() bool {
	return a == ActionRestart || a == ActionQuit || a == ActionBack
}

// Event is one discrete, edge-triggered input event.
type Event struct {
	Action Action
	Digit  int // for ActionDigit
	X, Y   int // for ActionPointer, screen cell coordinates
}

// InputFrame is everything the player did during one simulation tick:
// the ordered discrete events plus the set of movement actions currently
// held down. The zero value is an empty frame.
type InputFrame struct {
	events []Event
	held   map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Push appends a discrete event.
func (f *InputFrame) Push(ev Event) {
	f.events = append(f.events, ev)
}

// Set records a press of action a for this frame.
func (f *InputFrame) Set(a Action) {
	f.Push(Event{Action: a})
}

// SetDigit records a digit key press.
func (f *InputFrame) SetDigit(d int) {
	f.Push(Event{Action: ActionDigit, Digit: d})
}

// SetPointer records a pointer click at screen cell (x, y).
func (f *InputFrame) SetPointer(x, y int) {
	f.Push(Event{Action: ActionPointer, X: x, Y: y})
}

// Hold marks a movement action as held for this frame.
func (f *InputFrame) Hold(a Action) {
	if f.held == nil {
		f.held = make(map[Action]bool)
	}
	f.held[a] = true
}

// Has returns true if action a was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	for _, ev := range f.events {
		if ev.Action == a {
			return true
		}
	}
	return false
}

// Count returns how many times action a was pressed this frame.
func (f InputFrame) Count(a Action) int {
	n := 0
	for _, ev := range f.events {
		if ev.Action == a {
			n++
		}
	}
	return n
}

// Held returns true if a is held down or was pressed this frame.
func (f InputFrame) Held(a Action) bool {
	return f.held[a] || f.Has(a)
}

// Events returns the discrete events in arrival order.
// The returned slice must not be modified.
func (f InputFrame) Events() []Event {
	return f.events
}

// Digit returns the first digit pressed this frame.
func (f InputFrame) Digit() (int, bool) {
	for _, ev := range f.events {
		if ev.Action == ActionDigit {
			return ev.Digit, true
		}
	}
	return 0, false
}

// Pointer returns the first pointer click of this frame.
func (f InputFrame) Pointer() (Point, bool) {
	for _, ev := range f.events {
		if ev.Action == ActionPointer {
			return Point{X: ev.X, Y: ev.Y}, true
		}
	}
	return Point{}, false
}

// Empty reports whether the frame carries no events and no held keys.
func (f InputFrame) Empty() bool {
	return len(f.events) == 0 && len(f.held) == 0
}

// Clear resets the frame for reuse.
func (f *InputFrame) Clear() {
	f.events = f.events[:0]
	for k := range f.held {
		delete(f.held, k)
	}
}

// Clone creates an independent copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := InputFrame{}
	if len(f.events) > 0 {
		clone.events = append([]Event(nil), f.events...)
	}
	for k, v := range f.held {
		if v {
			clone.Hold(k)
		}
	}
	return clone
}

// LiveOnly returns a copy that keeps only always-live events (restart,
// quit, back). Used while the simulation is in a terminal phase.
func (f InputFrame) LiveOnly() InputFrame {
	out := InputFrame{}
	for _, ev := range f.events {
		if ev.Action.AlwaysLive() {
			out.Push(ev)
		}
	}
	return out
}
