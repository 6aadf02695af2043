package flappy

import (
	"github.com/vovakirdan/flappycat/internal/config"
	"github.com/vovakirdan/flappycat/internal/core"
)

// HitsPipe reports whether the bird box overlaps the top or bottom part of
// any pipe.
func HitsPipe(bird core.Rect, pipes []Pipe, o config.Obstacles) bool {
	for _, p := range pipes {
		if bird.Intersects(p.TopRect(o)) || bird.Intersects(p.BottomRect(o)) {
			return true
		}
	}
	return false
}

// OutOfBounds reports whether the bird touches the ground line or the top of
// the screen. Touching counts.
func OutOfBounds(bird core.Rect, cfg config.Config) bool {
	return bird.Bottom >= cfg.GroundY() || bird.Top <= 0
}
