package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks that the configuration describes a playable game.
// All problems are reported together.
func Validate(cfg DinoConfig) error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(cfg.World.Width > 0, "world.width must be positive, got %v", cfg.World.Width)
	check(cfg.World.Height > 0, "world.height must be positive, got %v", cfg.World.Height)
	check(cfg.World.GroundY > 0 && cfg.World.GroundY < cfg.World.Height,
		"world.ground_y must lie inside the world, got %v", cfg.World.GroundY)

	check(cfg.Player.Width > 0, "player.width must be positive, got %v", cfg.Player.Width)
	check(cfg.Player.Height > 0, "player.height must be positive, got %v", cfg.Player.Height)

	check(cfg.Physics.Gravity > 0, "physics.gravity must be positive, got %v", cfg.Physics.Gravity)
	check(cfg.Physics.JumpImpulse < 0, "physics.jump_impulse must be negative, got %v", cfg.Physics.JumpImpulse)
	check(cfg.Physics.ShortHopVelocity < 0 && cfg.Physics.ShortHopVelocity > cfg.Physics.JumpImpulse,
		"physics.short_hop_velocity must lie between jump_impulse and 0, got %v", cfg.Physics.ShortHopVelocity)
	check(cfg.Physics.PositionScale > 0, "physics.position_scale must be positive, got %v", cfg.Physics.PositionScale)
	check(cfg.Physics.ObstacleSpeed > 0, "physics.obstacle_speed must be positive, got %v", cfg.Physics.ObstacleSpeed)
	check(cfg.Physics.MaxDelta > 0, "physics.max_delta must be positive, got %v", cfg.Physics.MaxDelta)

	check(cfg.Obstacles.Width > 0, "obstacles.width must be positive, got %v", cfg.Obstacles.Width)
	check(cfg.Obstacles.Height > 0, "obstacles.height must be positive, got %v", cfg.Obstacles.Height)
	check(cfg.Obstacles.MinInterval > 0, "obstacles.min_interval must be positive, got %v", cfg.Obstacles.MinInterval)
	check(cfg.Obstacles.MinInterval < cfg.Obstacles.MaxInterval,
		"obstacles.min_interval (%v) must be below max_interval (%v)", cfg.Obstacles.MinInterval, cfg.Obstacles.MaxInterval)

	check(cfg.Input.HoldTimeout > 0, "input.hold_timeout must be positive, got %v", cfg.Input.HoldTimeout)

	check(cfg.Audio.Volume >= 0 && cfg.Audio.Volume <= 1, "audio.volume must be within [0, 1], got %v", cfg.Audio.Volume)
	check(cfg.Audio.AmbienceVolume >= 0 && cfg.Audio.AmbienceVolume <= 1,
		"audio.ambience_volume must be within [0, 1], got %v", cfg.Audio.AmbienceVolume)

	return errors.Join(errs...)
}
