package core

import "time"

// FrameClock measures the wall-clock delta between simulation ticks.
type FrameClock struct {
	maxDelta float64
	last     time.Time
	started  bool
}

// NewFrameClock creates a clock whose deltas never exceed maxDelta seconds.
func NewFrameClock(maxDelta float64) *FrameClock {
	return &FrameClock{maxDelta: maxDelta}
}

// Tick returns the seconds elapsed since the previous Tick, clamped to
// [0, maxDelta]. The first call after creation or Rebase returns 0.
func (c *FrameClock) Tick(now time.Time) float64 {
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	return ClampF(dt, 0, c.maxDelta)
}

// Rebase forgets the previous sample, e.g. after a pause.
func (c *FrameClock) Rebase() {
	c.started = false
}
