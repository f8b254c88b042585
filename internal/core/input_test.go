package core

import (
	"testing"
	"time"
)

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionJump) {
		t.Error("New frame should be empty")
	}

	f.Set(ActionJump)
	f.Set(ActionRestart)
	if !f.Has(ActionJump) || !f.Has(ActionRestart) {
		t.Error("Set actions should be reported by Has")
	}

	f.Clear()
	if f.Has(ActionJump) || f.Has(ActionRestart) {
		t.Error("Clear should remove all actions")
	}

	var zero InputFrame
	if zero.Has(ActionJump) {
		t.Error("Zero frame should report nothing")
	}
	zero.Set(ActionPause)
	if !zero.Has(ActionPause) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:    "None",
		ActionJump:    "Jump",
		ActionDrop:    "Drop",
		ActionRestart: "Restart",
		Action(99):    "Unknown",
	}
	for a, expected := range tests {
		if a.String() != expected {
			t.Errorf("Action(%d).String() = %q, expected %q", int(a), a.String(), expected)
		}
	}
}

func TestHoldTrackerTap(t *testing.T) {
	start := time.Unix(0, 0)
	h := NewHoldTracker(100 * time.Millisecond)

	h.Event(start)
	pressed, released := h.Sample(start.Add(16 * time.Millisecond))
	if !pressed || released {
		t.Fatalf("First sample = (%v, %v), expected (true, false)", pressed, released)
	}

	pressed, released = h.Sample(start.Add(50 * time.Millisecond))
	if pressed || released {
		t.Fatalf("Within timeout = (%v, %v), expected (false, false)", pressed, released)
	}

	pressed, released = h.Sample(start.Add(150 * time.Millisecond))
	if pressed || !released {
		t.Fatalf("After timeout = (%v, %v), expected (false, true)", pressed, released)
	}
	if h.Held() {
		t.Error("Key should no longer be held")
	}

	// Released edge is reported only once
	if _, released = h.Sample(start.Add(200 * time.Millisecond)); released {
		t.Error("Release edge should not repeat")
	}
}

func TestHoldTrackerAutoRepeat(t *testing.T) {
	start := time.Unix(0, 0)
	h := NewHoldTracker(100 * time.Millisecond)

	presses := 0
	for i := 0; i < 10; i++ {
		now := start.Add(time.Duration(i*50) * time.Millisecond)
		h.Event(now)
		pressed, released := h.Sample(now)
		if pressed {
			presses++
		}
		if released {
			t.Fatalf("Auto-repeat should keep key held, got release at step %d", i)
		}
	}
	if presses != 1 {
		t.Errorf("Auto-repeat produced %d presses, expected 1", presses)
	}
}

func TestHoldTrackerExplicitRelease(t *testing.T) {
	start := time.Unix(0, 0)
	h := NewHoldTracker(time.Second)

	h.Event(start)
	h.Sample(start)

	h.Release()
	pressed, released := h.Sample(start.Add(10 * time.Millisecond))
	if pressed || !released {
		t.Errorf("Explicit release = (%v, %v), expected (false, true)", pressed, released)
	}

	// Release without a held key is a no-op
	h.Release()
	if _, released = h.Sample(start.Add(20 * time.Millisecond)); released {
		t.Error("Release on idle key should not emit an edge")
	}
}

func TestHoldTrackerPressAndReleaseSameTick(t *testing.T) {
	start := time.Unix(0, 0)
	h := NewHoldTracker(time.Second)

	h.Event(start)
	h.Release()
	pressed, released := h.Sample(start)
	if !pressed || !released {
		t.Errorf("Same tick = (%v, %v), expected (true, true)", pressed, released)
	}
}

func TestHoldTrackerReset(t *testing.T) {
	start := time.Unix(0, 0)
	h := NewHoldTracker(time.Second)
	h.Event(start)
	h.Reset()

	pressed, released := h.Sample(start)
	if pressed || released || h.Held() {
		t.Error("Reset should drop pending edges and held state")
	}
}
