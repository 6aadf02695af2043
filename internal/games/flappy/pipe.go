package flappy

import (
	"math/rand"

	"github.com/vovakirdan/flappycat/internal/config"
	"github.com/vovakirdan/flappycat/internal/core"
)

// Pipe is a pair of vertically opposed obstacles with a gap between them.
type Pipe struct {
	X      float64 // left edge
	Center float64 // vertical center of the gap
	Passed bool    // the bird has cleared this pipe and it has been scored
}

// NewPipe creates a pipe at x with a random gap center.
func NewPipe(x float64, cfg config.Config, rng *rand.Rand) Pipe {
	lo, hi := cfg.GapCenterRange()
	center := lo
	if hi > lo {
		center = lo + rng.Intn(hi-lo+1)
	}
	return Pipe{X: x, Center: float64(center)}
}

// TopY returns the y of the top sprite's upper edge.
func (p Pipe) TopY(o config.Obstacles) float64 {
	return p.Center - o.GapHeight/2 - o.SpriteHeight
}

// BottomY returns the y of the bottom sprite's upper edge.
func (p Pipe) BottomY(o config.Obstacles) float64 {
	return p.Center + o.GapHeight/2
}

// Right returns the x of the pipe's right edge.
func (p Pipe) Right(o config.Obstacles) float64 {
	return p.X + o.Width
}

// TopRect returns the collision rectangle of the downward-facing top pipe.
func (p Pipe) TopRect(o config.Obstacles) core.Rect {
	return core.NewRect(p.X, p.TopY(o), o.Width, o.SpriteHeight)
}

// BottomRect returns the collision rectangle of the upright bottom pipe.
func (p Pipe) BottomRect(o config.Obstacles) core.Rect {
	return core.NewRect(p.X, p.BottomY(o), o.Width, o.SpriteHeight)
}
