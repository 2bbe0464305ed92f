package core

import (
	"errors"
	"fmt"
)

// ErrIllegalTransition is returned when a phase change is not allowed.
var ErrIllegalTransition = errors.New("core: illegal phase transition")

// Phase is the coarse simulation mode shared by every game.
type Phase int

const (
	// PhaseReady waits for a start trigger (first flap, ball launch).
	PhaseReady Phase = iota
	// PhaseActive is normal play.
	PhaseActive
	// PhaseResolving is a short fixed-duration pause (mismatch flip-back,
	// level clear) after which play continues.
	PhaseResolving
	// PhaseGameOver is terminal: the player lost.
	PhaseGameOver
	// PhaseWon is terminal: the player won.
	PhaseWon
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhaseActive:
		return "active"
	case PhaseResolving:
		return "resolving"
	case PhaseGameOver:
		return "game_over"
	case PhaseWon:
		return "won"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether only a restart can leave this phase.
func (p Phase) IsTerminal() bool {
	return p == PhaseGameOver || p == PhaseWon
}

// CanTransition reports whether a game may move from one phase to another
// without a restart. Restart is handled by Reset, never by a transition.
func CanTransition(from, to Phase) bool {
	switch from {
	case PhaseReady:
		return to == PhaseActive
	case PhaseActive:
		return to == PhaseResolving || to == PhaseGameOver || to == PhaseWon
	case PhaseResolving:
		return to == PhaseActive || to == PhaseGameOver || to == PhaseWon
	default:
		return false
	}
}

// PhaseMachine tracks a game's phase and the countdown of a Resolving pause.
// The zero value is a machine in PhaseReady.
type PhaseMachine struct {
	phase     Phase
	remaining int
	next      Phase
}

// NewPhaseMachine returns a machine starting in the given phase.
// Games without a start trigger begin directly in PhaseActive.
func NewPhaseMachine(start Phase) PhaseMachine {
	return PhaseMachine{phase: start}
}

// Phase returns the current phase.
func (m *PhaseMachine) Phase() Phase {
	return m.phase
}

// Terminal reports whether the current phase is terminal.
func (m *PhaseMachine) Terminal() bool {
	return m.phase.IsTerminal()
}

// Is reports whether the machine is in phase p.
func (m *PhaseMachine) Is(p Phase) bool {
	return m.phase == p
}

// Transition moves to phase to if allowed.
func (m *PhaseMachine) Transition(to Phase) error {
	if m.phase == to {
		return nil
	}
	if !CanTransition(m.phase, to) {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, m.phase, to)
	}
	m.phase = to
	m.remaining = 0
	return nil
}

// Resolve enters PhaseResolving for ticks steps, then returns to next.
func (m *PhaseMachine) Resolve(ticks int, next Phase) error {
	if err := m.Transition(PhaseResolving); err != nil {
		return err
	}
	m.remaining = Max(ticks, 1)
	m.next = next
	return nil
}

// Remaining returns how many ticks the current Resolving pause has left.
func (m *PhaseMachine) Remaining() int {
	return m.remaining
}

// Tick advances a Resolving countdown. It returns true on the tick the pause
// ends and the machine moves on to its follow-up phase.
func (m *PhaseMachine) Tick() bool {
	if m.phase != PhaseResolving {
		return false
	}
	m.remaining--
	if m.remaining > 0 {
		return false
	}
	m.remaining = 0
	m.phase = m.next
	return true
}

// Reset puts the machine back into start, discarding any countdown.
func (m *PhaseMachine) Reset(start Phase) {
	*m = PhaseMachine{phase: start}
}
