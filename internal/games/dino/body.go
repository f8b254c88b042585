package dino

import "github.com/vovakirdan/dino-runner/internal/config"

// Body is the player's vertical kinematic state.
// Y is the top edge in world units and grows downwards, so the body is on the
// ground when Y equals the configured ground level and above it when smaller.
type Body struct {
	Y        float64
	Vel      float64 // Negative = moving up
	Grounded bool
}

// NewBody returns a body standing at rest on the ground.
func NewBody(groundY float64) Body {
	return Body{Y: groundY, Vel: 0, Grounded: true}
}

// Update advances the body by dt seconds and applies the jump inputs for
// this tick. It reports whether a jump started.
//
// Gravity and integration run first, so a body that is standing has already
// been clamped back onto the ground when the jump is evaluated. A press only
// takes effect while grounded; a release cuts an ascent faster than the short
// hop velocity down to exactly that velocity.
func (b *Body) Update(p config.PhysicsConfig, groundY, dt float64, jumpPressed, jumpReleased bool) bool {
	b.Vel += p.Gravity * dt
	b.Y += b.Vel * dt * p.PositionScale

	if b.Y >= groundY {
		b.Y = groundY
		b.Vel = 0
		b.Grounded = true
	}

	jumped := false
	if jumpPressed && b.Grounded {
		b.Vel = p.JumpImpulse
		b.Grounded = false
		jumped = true
	}

	if jumpReleased && b.Vel < p.ShortHopVelocity {
		b.Vel = p.ShortHopVelocity
	}

	return jumped
}
