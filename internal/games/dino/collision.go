package dino

import (
	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
)

// bodyBox returns the body's collision box in world units.
func bodyBox(cfg *config.DinoConfig, b Body) core.RectF {
	return core.NewRectF(cfg.Player.X, b.Y, cfg.Player.Width, cfg.Player.Height)
}

// obstacleBox returns an obstacle's collision box in world units.
func obstacleBox(cfg *config.DinoConfig, o Obstacle) core.RectF {
	return core.NewRectF(o.X, cfg.Obstacles.Y, cfg.Obstacles.Width, cfg.Obstacles.Height)
}

// collides tests the body against every active obstacle.
func collides(cfg *config.DinoConfig, b Body, obstacles []Obstacle) bool {
	box := bodyBox(cfg, b)
	for _, o := range obstacles {
		if box.Overlaps(obstacleBox(cfg, o)) {
			return true
		}
	}
	return false
}
