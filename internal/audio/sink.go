// Package audio plays the game's sound effects and background ambience.
// Sounds are synthesized at runtime, so there are no asset files to load.
package audio

// Sink receives fire-and-forget audio requests from the game loop.
// Implementations must not block the caller.
type Sink interface {
	PlayJump()
	PlayCollision()
	StartAmbience()
	StopAmbience()
	Close()
}

// Silent is a Sink that discards every request.
type Silent struct{}

func (Silent) PlayJump()      {}
func (Silent) PlayCollision() {}
func (Silent) StartAmbience() {}
func (Silent) StopAmbience()  {}
func (Silent) Close()         {}
