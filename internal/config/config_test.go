package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := Parse(defaultDinoYAML)
	if err != nil {
		t.Fatalf("embedded defaults should parse: %v", err)
	}
	if cfg != DefaultDinoConfig() {
		t.Errorf("embedded defaults differ from DefaultDinoConfig():\n%+v\n%+v", cfg, DefaultDinoConfig())
	}
	if err := Validate(cfg); err != nil {
		t.Errorf("defaults should be valid: %v", err)
	}
}

func TestParseOverlaysDefaults(t *testing.T) {
	cfg, err := Parse([]byte("physics:\n  gravity: 45\nobstacles:\n  max_interval: 3.5\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Physics.Gravity != 45 {
		t.Errorf("Gravity = %v, expected 45", cfg.Physics.Gravity)
	}
	if cfg.Obstacles.MaxInterval != 3.5 {
		t.Errorf("MaxInterval = %v, expected 3.5", cfg.Obstacles.MaxInterval)
	}
	if cfg.Physics.JumpImpulse != -12 {
		t.Errorf("Unspecified JumpImpulse = %v, expected default -12", cfg.Physics.JumpImpulse)
	}
	if cfg.World.Width != 800 {
		t.Errorf("Unspecified world width = %v, expected default 800", cfg.World.Width)
	}
}

func TestLoadDinoCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dino.yaml")
	if err := os.WriteFile(path, []byte("physics:\n  obstacle_speed: 420\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, src, err := LoadDino(path)
	if err != nil {
		t.Fatalf("LoadDino failed: %v", err)
	}
	if src.Kind != "custom" || src.Path != path {
		t.Errorf("Source = %+v, expected custom %s", src, path)
	}
	if cfg.Physics.ObstacleSpeed != 420 {
		t.Errorf("ObstacleSpeed = %v, expected 420", cfg.Physics.ObstacleSpeed)
	}
}

func TestLoadDinoCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := LoadDino(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Missing custom config should fail")
	}

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("physics: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := LoadDino(broken); err == nil {
		t.Error("Malformed custom config should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("obstacles:\n  min_interval: 2\n  max_interval: 1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, _, err := LoadDino(invalid)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("Invalid custom config should wrap ErrInvalid, got %v", err)
	}
}

func TestLoadDinoSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	// Nothing on disk: embedded defaults win
	cfg, src, err := LoadDino("")
	if err != nil {
		t.Fatalf("LoadDino failed: %v", err)
	}
	if src.Kind != "embedded" {
		t.Errorf("Source = %v, expected embedded", src)
	}
	if cfg != DefaultDinoConfig() {
		t.Error("Embedded config should equal defaults")
	}

	// Local config is picked up
	if err := os.MkdirAll(filepath.Join(work, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(work, localConfigPath), []byte("physics:\n  gravity: 20\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, src, err = LoadDino("")
	if err != nil {
		t.Fatalf("LoadDino failed: %v", err)
	}
	if src.Kind != "local" || cfg.Physics.Gravity != 20 {
		t.Errorf("Expected local config with gravity 20, got %v gravity %v", src, cfg.Physics.Gravity)
	}

	// User config beats local config
	userDir := filepath.Join(home, ".dino", "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, "dino.yaml"), []byte("physics:\n  gravity: 25\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, src, err = LoadDino("")
	if err != nil {
		t.Fatalf("LoadDino failed: %v", err)
	}
	if src.Kind != "user" || cfg.Physics.Gravity != 25 {
		t.Errorf("Expected user config with gravity 25, got %v gravity %v", src, cfg.Physics.Gravity)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*DinoConfig)
		field  string
	}{
		{"zero world width", func(c *DinoConfig) { c.World.Width = 0 }, "world.width"},
		{"ground outside world", func(c *DinoConfig) { c.World.GroundY = 700 }, "world.ground_y"},
		{"upward gravity", func(c *DinoConfig) { c.Physics.Gravity = -1 }, "physics.gravity"},
		{"downward jump", func(c *DinoConfig) { c.Physics.JumpImpulse = 5 }, "physics.jump_impulse"},
		{"short hop stronger than jump", func(c *DinoConfig) { c.Physics.ShortHopVelocity = -20 }, "physics.short_hop_velocity"},
		{"short hop positive", func(c *DinoConfig) { c.Physics.ShortHopVelocity = 1 }, "physics.short_hop_velocity"},
		{"stopped world", func(c *DinoConfig) { c.Physics.ObstacleSpeed = 0 }, "physics.obstacle_speed"},
		{"empty interval", func(c *DinoConfig) { c.Obstacles.MaxInterval = c.Obstacles.MinInterval }, "obstacles.min_interval"},
		{"zero min interval", func(c *DinoConfig) { c.Obstacles.MinInterval = 0 }, "obstacles.min_interval"},
		{"zero hold timeout", func(c *DinoConfig) { c.Input.HoldTimeout = 0 }, "input.hold_timeout"},
		{"loud audio", func(c *DinoConfig) { c.Audio.Volume = 2 }, "audio.volume"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultDinoConfig()
			tc.mutate(&cfg)

			err := Validate(cfg)
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("error should wrap ErrInvalid: %v", err)
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Errorf("error %q should mention %s", err, tc.field)
			}
		})
	}
}

func TestValidateReportsAllProblems(t *testing.T) {
	cfg := DefaultDinoConfig()
	cfg.Player.Width = 0
	cfg.Obstacles.Height = 0

	err := Validate(cfg)
	if err == nil {
		t.Fatal("Validate() should fail")
	}
	msg := err.Error()
	if !strings.Contains(msg, "player.width") || !strings.Contains(msg, "obstacles.height") {
		t.Errorf("error should list both problems, got %q", msg)
	}
}

func TestDump(t *testing.T) {
	cfg := DefaultDinoConfig()
	cfg.Physics.Gravity = 33

	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump failed: %v", err)
	}
	if !strings.Contains(string(data), "gravity: 33") {
		t.Errorf("Dump output should contain overridden gravity:\n%s", data)
	}

	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Dump output should parse: %v", err)
	}
	if back != cfg {
		t.Error("Dump output should describe the same config")
	}
}

func TestSourceString(t *testing.T) {
	if s := (Source{Kind: "embedded"}).String(); s != "embedded" {
		t.Errorf("String() = %q, expected embedded", s)
	}
	if s := (Source{Kind: "custom", Path: "a.yaml"}).String(); s != "custom (a.yaml)" {
		t.Errorf("String() = %q, expected custom (a.yaml)", s)
	}
}
