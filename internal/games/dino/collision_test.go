package dino

import (
	"testing"

	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
)

func TestCollisionBoxes(t *testing.T) {
	cfg := config.DefaultDinoConfig()

	if got := bodyBox(&cfg, NewBody(300)); got != core.NewRectF(50, 300, 50, 50) {
		t.Errorf("bodyBox = %+v, expected (50,300,50,50)", got)
	}
	if got := obstacleBox(&cfg, Obstacle{X: 60}); got != core.NewRectF(60, 300, 20, 40) {
		t.Errorf("obstacleBox = %+v, expected (60,300,20,40)", got)
	}
}

func TestCollides(t *testing.T) {
	cfg := config.DefaultDinoConfig()
	grounded := NewBody(cfg.World.GroundY)
	high := Body{Y: 200, Vel: -3}

	tests := []struct {
		name      string
		body      Body
		obstacles []Obstacle
		expected  bool
	}{
		{"no obstacles", grounded, nil, false},
		{"overlapping obstacle", grounded, []Obstacle{{X: 60}}, true},
		{"distant obstacle", grounded, []Obstacle{{X: 200}}, false},
		{"any of several", grounded, []Obstacle{{X: 400}, {X: 90}}, true},
		{"touching right edge", grounded, []Obstacle{{X: 100}}, false},
		{"touching left edge", grounded, []Obstacle{{X: 30}}, false},
		{"body above obstacle", high, []Obstacle{{X: 60}}, false},
		{"body clipping obstacle top", Body{Y: 251}, []Obstacle{{X: 60}}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := collides(&cfg, tc.body, tc.obstacles); got != tc.expected {
				t.Errorf("collides() = %v, expected %v", got, tc.expected)
			}
		})
	}
}
