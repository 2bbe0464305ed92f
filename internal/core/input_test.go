package core

import "testing"

func TestInputFrameKeepsOrder(t *testing.T) {
	var f InputFrame
	f.Set(ActionLeft)
	f.SetDigit(3)
	f.Set(ActionLeft)
	f.SetPointer(4, 7)

	evs := f.Events()
	if len(evs) != 4 {
		t.Fatalf("len(Events) = %d, expected 4", len(evs))
	}
	if evs[0].Action != ActionLeft || evs[1].Action != ActionDigit || evs[3].Action != ActionPointer {
		t.Errorf("events out of order: %+v", evs)
	}
	if f.Count(ActionLeft) != 2 {
		t.Errorf("Count(Left) = %d, expected 2", f.Count(ActionLeft))
	}
	if d, ok := f.Digit(); !ok || d != 3 {
		t.Errorf("Digit() = (%d, %v), expected (3, true)", d, ok)
	}
	if p, ok := f.Pointer(); !ok || p != (Point{X: 4, Y: 7}) {
		t.Errorf("Pointer() = (%v, %v)", p, ok)
	}
}

func TestInputFrameHeld(t *testing.T) {
	var f InputFrame
	f.Hold(ActionUp)

	if !f.Held(ActionUp) {
		t.Error("held action should report Held")
	}
	if f.Has(ActionUp) {
		t.Error("held action is not a discrete press")
	}

	f.Set(ActionRight)
	if !f.Held(ActionRight) {
		t.Error("a press counts as held for its frame")
	}
}

func TestInputFrameCloneAndClear(t *testing.T) {
	var f InputFrame
	f.Set(ActionJump)
	f.Hold(ActionLeft)

	c := f.Clone()
	f.Clear()

	if !f.Empty() {
		t.Error("Clear should empty the frame")
	}
	if !c.Has(ActionJump) || !c.Held(ActionLeft) {
		t.Error("Clone must be independent of the original")
	}
}

func TestInputFrameLiveOnly(t *testing.T) {
	var f InputFrame
	f.Set(ActionLeft)
	f.Set(ActionRestart)
	f.Set(ActionJump)
	f.Set(ActionQuit)
	f.Hold(ActionUp)

	live := f.LiveOnly()
	evs := live.Events()
	if len(evs) != 2 || evs[0].Action != ActionRestart || evs[1].Action != ActionQuit {
		t.Errorf("LiveOnly events = %+v, expected [Restart Quit]", evs)
	}
	if live.Held(ActionUp) {
		t.Error("held movement must be dropped")
	}
}
