// Package config provides YAML-based configuration loading for the Dino Runner.
package config

// DinoConfig contains all tunable parameters of the game.
// World coordinates use y growing downwards; the terminal renderer scales
// them to the cell grid.
type DinoConfig struct {
	World     WorldConfig     `yaml:"world"`
	Player    PlayerConfig    `yaml:"player"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Obstacles ObstaclesConfig `yaml:"obstacles"`
	Input     InputConfig     `yaml:"input"`
	Audio     AudioConfig     `yaml:"audio"`
}

// WorldConfig defines the visible world in world units.
type WorldConfig struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	GroundY float64 `yaml:"ground_y"` // Body top edge when standing
}

// PlayerConfig defines the body's fixed geometry.
type PlayerConfig struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines body kinematics and world speed.
type PhysicsConfig struct {
	Gravity          float64 `yaml:"gravity"`            // Velocity gained per second
	JumpImpulse      float64 `yaml:"jump_impulse"`       // Negative = upwards
	ShortHopVelocity float64 `yaml:"short_hop_velocity"` // Clamp applied on early release
	PositionScale    float64 `yaml:"position_scale"`     // Velocity units -> world units per second
	ObstacleSpeed    float64 `yaml:"obstacle_speed"`     // World units per second
	MaxDelta         float64 `yaml:"max_delta"`          // Upper bound for a frame delta, seconds
}

// ObstaclesConfig defines obstacle geometry and spawn timing.
type ObstaclesConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Y           float64 `yaml:"y"`
	OffScreenX  float64 `yaml:"off_screen_x"`
	MinInterval float64 `yaml:"min_interval"` // Seconds, inclusive
	MaxInterval float64 `yaml:"max_interval"` // Seconds, exclusive
}

// InputConfig defines how terminal key events become press/release edges.
type InputConfig struct {
	HoldTimeout float64 `yaml:"hold_timeout"` // Seconds without key events before a release
}

// AudioConfig defines sound levels and ambience behaviour.
type AudioConfig struct {
	Volume                  float64 `yaml:"volume"`
	AmbienceVolume          float64 `yaml:"ambience_volume"`
	PauseAmbienceOnGameOver bool    `yaml:"pause_ambience_on_game_over"`
}
