package dino

import (
	"fmt"
	"math"

	"github.com/vovakirdan/dino-runner/internal/config"
)

// Phase is the game-flow state.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Input is the per-tick input, sampled once before the tick runs.
// All fields are edges: true only on the tick the transition happened.
type Input struct {
	JumpPressed  bool
	JumpReleased bool
	Restart      bool
}

// Overlay text shown after a collision.
const (
	GameOverTitle = "GAME OVER"
	GameOverHint  = "Press SPACE or R to restart"
)

// runFrameRate is how many times per second the running legs alternate.
const runFrameRate = 8

// World aggregates all mutable game state. It is owned by a single caller
// and only mutated through Tick.
type World struct {
	cfg        config.DinoConfig
	phase      Phase
	body       Body
	obstacles  []Obstacle
	spawner    *Spawner
	score      float64
	ambienceOn bool
}

// NewWorld creates a world in the Playing phase. rng drives spawn intervals
// and should be seeded once per process.
func NewWorld(cfg config.DinoConfig, rng RandSource) *World {
	return &World{
		cfg:       cfg,
		phase:     PhasePlaying,
		body:      NewBody(cfg.World.GroundY),
		obstacles: make([]Obstacle, 0, 8),
		spawner:   NewSpawner(cfg.Obstacles, cfg.World.Width, rng),
	}
}

// Phase returns the current game-flow state.
func (w *World) Phase() Phase { return w.phase }

// Score returns the survival time accumulated in the current run.
func (w *World) Score() float64 { return w.score }

// Body returns a copy of the player's kinematic state.
func (w *World) Body() Body { return w.body }

// Obstacles returns the active obstacles in spawn order.
func (w *World) Obstacles() []Obstacle { return w.obstacles }

// Tick advances the world by one frame and returns the intents for that
// frame. It is the single dispatch point of the state machine.
func Tick(w *World, in Input, dt float64) Intents {
	out := make(Intents, 0, len(w.obstacles)+6)

	switch w.phase {
	case PhasePlaying:
		w.phase = tickPlaying(w, in, dt, &out)
	case PhaseGameOver:
		w.phase = tickGameOver(w, in, &out)
	}

	return appendDrawIntents(w, out)
}

// tickPlaying runs score, body, obstacles, spawner and collision in that
// order and returns the next phase.
func tickPlaying(w *World, in Input, dt float64, out *Intents) Phase {
	if !w.ambienceOn {
		w.ambienceOn = true
		*out = append(*out, Ambience{On: true})
	}

	w.score += dt

	if w.body.Update(w.cfg.Physics, w.cfg.World.GroundY, dt, in.JumpPressed, in.JumpReleased) {
		*out = append(*out, PlaySound{Sound: SoundJump})
	}

	for i := range w.obstacles {
		w.obstacles[i].Update(w.cfg.Physics.ObstacleSpeed, dt)
	}

	if o, ok := w.spawner.Tick(dt); ok {
		w.obstacles = append(w.obstacles, o)
	}

	w.obstacles = removeOffScreen(w.obstacles, w.cfg.Obstacles.OffScreenX)

	if collides(&w.cfg, w.body, w.obstacles) {
		*out = append(*out, PlaySound{Sound: SoundCollision})
		if w.cfg.Audio.PauseAmbienceOnGameOver {
			w.ambienceOn = false
			*out = append(*out, Ambience{On: false})
		}
		return PhaseGameOver
	}

	return PhasePlaying
}

// tickGameOver only watches for the restart input.
func tickGameOver(w *World, in Input, out *Intents) Phase {
	if !in.Restart {
		return PhaseGameOver
	}

	w.restart()
	if !w.ambienceOn {
		w.ambienceOn = true
		*out = append(*out, Ambience{On: true})
	}
	return PhasePlaying
}

// restart puts the run back into its initial state. The spawner countdown is
// zeroed so the next Playing tick spawns immediately.
func (w *World) restart() {
	w.body = NewBody(w.cfg.World.GroundY)
	w.obstacles = w.obstacles[:0]
	w.spawner.Reset()
	w.score = 0
}

// appendDrawIntents adds the frame's sprites and text after the state
// update, so drawing reflects post-move positions.
func appendDrawIntents(w *World, out Intents) Intents {
	out = append(out, DrawSprite{
		Kind: SpriteBody,
		Box:  bodyBox(&w.cfg, w.body),
		Pose: w.pose(),
	})

	for _, o := range w.obstacles {
		out = append(out, DrawSprite{
			Kind: SpriteObstacle,
			Box:  obstacleBox(&w.cfg, o),
		})
	}

	out = append(out, DrawText{Kind: TextScore, Text: fmt.Sprintf("Score: %d", int(math.Floor(w.score)))})

	if w.phase == PhaseGameOver {
		out = append(out,
			DrawText{Kind: TextTitle, Text: GameOverTitle},
			DrawText{Kind: TextHint, Text: GameOverHint},
		)
	}

	return out
}

func (w *World) pose() Pose {
	switch {
	case w.phase == PhaseGameOver:
		return PoseCrashed
	case !w.body.Grounded:
		return PoseAirborne
	case int(w.score*runFrameRate)%2 == 0:
		return PoseRunA
	default:
		return PoseRunB
	}
}
