package config

import (
	_ "embed"
)

//go:embed defaults/dino.yaml
var defaultDinoYAML []byte

// DefaultDinoConfig returns the default Dino Runner configuration.
func DefaultDinoConfig() DinoConfig {
	return DinoConfig{
		World: WorldConfig{
			Width:   800,
			Height:  600,
			GroundY: 300,
		},
		Player: PlayerConfig{
			X:      50,
			Width:  50,
			Height: 50,
		},
		Physics: PhysicsConfig{
			Gravity:          30,
			JumpImpulse:      -12,
			ShortHopVelocity: -6,
			PositionScale:    60,
			ObstacleSpeed:    300, // 5 units per frame at 60 fps
			MaxDelta:         0.1,
		},
		Obstacles: ObstaclesConfig{
			Width:       20,
			Height:      40,
			Y:           300,
			OffScreenX:  -20,
			MinInterval: 1.0,
			MaxInterval: 2.0,
		},
		Input: InputConfig{
			HoldTimeout: 0.5,
		},
		Audio: AudioConfig{
			Volume:                  1.0,
			AmbienceVolume:          0.3,
			PauseAmbienceOnGameOver: true,
		},
	}
}
