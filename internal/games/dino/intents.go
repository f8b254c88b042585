package dino

import "github.com/vovakirdan/dino-runner/internal/core"

// Intent is a render or audio request produced by a tick.
// The platform consumes intents after the tick completes.
type Intent interface {
	intent()
}

// SpriteKind identifies what a sprite depicts.
type SpriteKind int

const (
	SpriteBody SpriteKind = iota
	SpriteObstacle
)

// Pose selects the body's sprite variant.
type Pose int

const (
	PoseRunA Pose = iota
	PoseRunB
	PoseAirborne
	PoseCrashed
)

// DrawSprite asks the renderer to draw an entity at its world box.
type DrawSprite struct {
	Kind SpriteKind
	Box  core.RectF
	Pose Pose // Only meaningful for SpriteBody
}

func (DrawSprite) intent() {}

// TextKind identifies a text slot; the renderer decides placement.
type TextKind int

const (
	TextScore TextKind = iota
	TextTitle
	TextHint
)

// DrawText asks the renderer to show a line of text.
type DrawText struct {
	Kind TextKind
	Text string
}

func (DrawText) intent() {}

// SoundKind identifies a one-shot sound effect.
type SoundKind int

const (
	SoundJump SoundKind = iota
	SoundCollision
)

// String returns the effect name.
func (k SoundKind) String() string {
	switch k {
	case SoundJump:
		return "jump"
	case SoundCollision:
		return "collision"
	default:
		return "unknown"
	}
}

// PlaySound asks the audio sink to play a one-shot effect.
type PlaySound struct {
	Sound SoundKind
}

func (PlaySound) intent() {}

// Ambience asks the audio sink to start or stop the looped background track.
type Ambience struct {
	On bool
}

func (Ambience) intent() {}

// Intents is the ordered output of one tick.
type Intents []Intent

// Contains reports whether an equal intent is present.
func (in Intents) Contains(target Intent) bool {
	for _, i := range in {
		if i == target {
			return true
		}
	}
	return false
}

// Count returns how many intents equal target.
func (in Intents) Count(target Intent) int {
	n := 0
	for _, i := range in {
		if i == target {
			n++
		}
	}
	return n
}

// Sprites returns the draw-sprite intents of the given kind.
func (in Intents) Sprites(kind SpriteKind) []DrawSprite {
	var out []DrawSprite
	for _, i := range in {
		if s, ok := i.(DrawSprite); ok && s.Kind == kind {
			out = append(out, s)
		}
	}
	return out
}

// Text returns the text for the given slot, if drawn.
func (in Intents) Text(kind TextKind) (string, bool) {
	for _, i := range in {
		if t, ok := i.(DrawText); ok && t.Kind == kind {
			return t.Text, true
		}
	}
	return "", false
}
