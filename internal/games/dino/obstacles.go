package dino

import (
	"math"

	"github.com/vovakirdan/dino-runner/internal/config"
)

// Obstacle is a ground obstacle the player must jump over.
type Obstacle struct {
	X float64 // Left edge in world units
}

// Update moves the obstacle left by speed world units per second.
func (o *Obstacle) Update(speed, dt float64) {
	o.X -= speed * dt
}

// OffScreen reports whether the obstacle has passed the removal threshold.
func (o Obstacle) OffScreen(threshold float64) bool {
	return o.X < threshold
}

// RandSource yields uniform values in [0, 1). *math/rand.Rand satisfies it.
type RandSource interface {
	Float64() float64
}

// Spawner emits obstacles at randomized intervals.
type Spawner struct {
	remaining   float64
	minInterval float64
	maxInterval float64
	spawnX      float64
	rng         RandSource
}

// NewSpawner creates a spawner whose countdown starts at zero, so the first
// tick spawns immediately.
func NewSpawner(cfg config.ObstaclesConfig, spawnX float64, rng RandSource) *Spawner {
	return &Spawner{
		minInterval: cfg.MinInterval,
		maxInterval: cfg.MaxInterval,
		spawnX:      spawnX,
		rng:         rng,
	}
}

// Tick counts down by dt. Once the countdown reaches zero it returns a new
// obstacle at the spawn edge and draws the next interval.
func (s *Spawner) Tick(dt float64) (Obstacle, bool) {
	s.remaining -= dt
	if s.remaining > 0 {
		return Obstacle{}, false
	}
	s.remaining = s.nextInterval()
	return Obstacle{X: s.spawnX}, true
}

// Reset zeroes the countdown.
func (s *Spawner) Reset() {
	s.remaining = 0
}

// Remaining returns the seconds left until the next spawn.
func (s *Spawner) Remaining() float64 {
	return s.remaining
}

// nextInterval draws uniformly from [minInterval, maxInterval).
func (s *Spawner) nextInterval() float64 {
	v := s.minInterval + s.rng.Float64()*(s.maxInterval-s.minInterval)
	if v >= s.maxInterval {
		// Rounding can land exactly on the open bound
		v = math.Nextafter(s.maxInterval, s.minInterval)
	}
	return v
}

// removeOffScreen filters obstacles past the threshold in place, keeping
// spawn order.
func removeOffScreen(obstacles []Obstacle, threshold float64) []Obstacle {
	kept := obstacles[:0]
	for _, o := range obstacles {
		if !o.OffScreen(threshold) {
			kept = append(kept, o)
		}
	}
	return kept
}
