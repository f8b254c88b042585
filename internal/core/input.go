package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone       Action = iota
	ActionJump              // Space, W, Up - jump
	ActionDrop              // S, Down - cut a jump short
	ActionRestart           // R, Space - restart after game over
	ActionPause             // P, Escape - pause/unpause
	ActionScreenshot        // Ctrl+S - dump the frame to a text file
	ActionQuit              // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionDrop:
		return "Drop"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionScreenshot:
		return "Screenshot"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered between two simulation ticks.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// HoldTracker turns a stream of key events into press and release edges.
//
// Terminals only report key presses; holding a key produces auto-repeat
// presses. A key counts as held while events keep arriving within the hold
// timeout, and a release edge is reported once they stop.
type HoldTracker struct {
	timeout  time.Duration
	held     bool
	pressed  bool // press edge not yet sampled
	released bool // release edge requested explicitly
	lastSeen time.Time
}

// NewHoldTracker creates a tracker with the given hold timeout.
func NewHoldTracker(timeout time.Duration) *HoldTracker {
	return &HoldTracker{timeout: timeout}
}

// Event records a key event at time now. Events while the key is already
// held are treated as auto-repeat and do not produce a new press edge.
func (h *HoldTracker) Event(now time.Time) {
	if !h.held {
		h.held = true
		h.pressed = true
	}
	h.lastSeen = now
}

// Release forces a release edge on the next sample.
func (h *HoldTracker) Release() {
	if h.held {
		h.held = false
		h.released = true
	}
}

// Held reports whether the key is currently considered held.
func (h *HoldTracker) Held() bool {
	return h.held
}

// Sample returns the edges observed since the previous sample.
// It must be called exactly once per tick.
func (h *HoldTracker) Sample(now time.Time) (pressed, released bool) {
	pressed = h.pressed
	h.pressed = false

	if h.held && now.Sub(h.lastSeen) > h.timeout {
		h.held = false
		h.released = true
	}

	released = h.released
	h.released = false
	return pressed, released
}

// Reset drops any held state without emitting edges.
func (h *HoldTracker) Reset() {
	h.held = false
	h.pressed = false
	h.released = false
}
