// Package dino implements a Chrome Dino-style endless runner.
// The player jumps over obstacles while survival time accumulates as score.
//
// The package is pure game logic: Tick turns input and a frame delta into
// draw and audio intents, which the platform renders and plays.
package dino

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/dino-runner/internal/config"
)

// Title is the display name of the game.
const Title = "Dino Runner"

// State summarises a session for the platform.
type State struct {
	Phase    Phase
	Score    int // Whole seconds survived in the current run
	GameOver bool
	Ticks    int // Ticks since the session started
	Runs     int // Runs started, including the first
}

// Session owns a World together with its random source and the intents of
// the last tick.
type Session struct {
	cfg   config.DinoConfig
	world *World
	last  Intents
	ticks int
	runs  int
}

// NewSession creates a session. A zero seed uses the current time; the
// random source is seeded exactly once here.
func NewSession(cfg config.DinoConfig, seed int64) *Session {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	return &Session{
		cfg:   cfg,
		world: NewWorld(cfg, rng),
		runs:  1,
	}
}

// Step advances the game by one tick of dt seconds.
func (s *Session) Step(in Input, dt float64) Intents {
	before := s.world.Phase()
	s.last = Tick(s.world, in, dt)
	s.ticks++

	if before == PhaseGameOver && s.world.Phase() == PhasePlaying {
		s.runs++
	}
	return s.last
}

// Intents returns the intents of the most recent tick, or the draw intents
// of the initial world before the first tick.
func (s *Session) Intents() Intents {
	if s.last == nil {
		return appendDrawIntents(s.world, nil)
	}
	return s.last
}

// State returns the current session state.
func (s *Session) State() State {
	phase := s.world.Phase()
	return State{
		Phase:    phase,
		Score:    int(math.Floor(s.world.Score())),
		GameOver: phase == PhaseGameOver,
		Ticks:    s.ticks,
		Runs:     s.runs,
	}
}

// Config returns the configuration the session was built with.
func (s *Session) Config() config.DinoConfig {
	return s.cfg
}
