package core

import (
	"errors"
	"testing"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to Phase
		want     bool
	}{
		{PhaseReady, PhaseActive, true},
		{PhaseReady, PhaseGameOver, false},
		{PhaseActive, PhaseResolving, true},
		{PhaseActive, PhaseWon, true},
		{PhaseResolving, PhaseActive, true},
		{PhaseResolving, PhaseGameOver, true},
		{PhaseActive, PhaseReady, false},
		{PhaseGameOver, PhaseActive, false},
		{PhaseWon, PhaseReady, false},
	}

	for _, tc := range tests {
		if got := CanTransition(tc.from, tc.to); got != tc.want {
			t.Errorf("CanTransition(%s, %s) = %v, expected %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestPhaseMachineTerminalIsSticky(t *testing.T) {
	m := NewPhaseMachine(PhaseActive)
	if err := m.Transition(PhaseGameOver); err != nil {
		t.Fatal(err)
	}

	for _, p := range []Phase{PhaseReady, PhaseActive, PhaseResolving, PhaseWon} {
		if err := m.Transition(p); !errors.Is(err, ErrIllegalTransition) {
			t.Errorf("Transition(%s) from game_over error = %v, expected ErrIllegalTransition", p, err)
		}
	}
	if !m.Terminal() || !m.Is(PhaseGameOver) {
		t.Errorf("phase = %s, expected game_over", m.Phase())
	}

	m.Reset(PhaseReady)
	if !m.Is(PhaseReady) {
		t.Errorf("after Reset phase = %s, expected ready", m.Phase())
	}
}

func TestPhaseMachineResolve(t *testing.T) {
	m := NewPhaseMachine(PhaseActive)
	if err := m.Resolve(3, PhaseActive); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 2; i++ {
		if m.Tick() {
			t.Fatalf("pause ended early at tick %d", i+1)
		}
		if !m.Is(PhaseResolving) {
			t.Fatalf("phase = %s, expected resolving", m.Phase())
		}
	}
	if !m.Tick() {
		t.Fatal("pause should end on the third tick")
	}
	if !m.Is(PhaseActive) || m.Remaining() != 0 {
		t.Errorf("after pause phase = %s remaining = %d", m.Phase(), m.Remaining())
	}
	if m.Tick() {
		t.Error("Tick outside resolving should be a no-op")
	}
}

func TestPhaseMachineZeroValue(t *testing.T) {
	var m PhaseMachine
	if !m.Is(PhaseReady) {
		t.Errorf("zero value phase = %s, expected ready", m.Phase())
	}
	if err := m.Resolve(5, PhaseActive); err == nil {
		t.Error("resolving straight from ready should fail")
	}
}
