package flappy

import (
	"github.com/vovakirdan/flappycat/internal/config"
	"github.com/vovakirdan/flappycat/internal/core"
)

// Bird is the player character. X and Y are the center of its sprite.
type Bird struct {
	X, Y   float64
	Vel    float64 // vertical velocity, positive is down
	Angle  float64 // tilt in degrees
	Width  float64
	Height float64
}

// NewBird places a bird at its starting position. aspect is the sprite's
// width/height ratio.
func NewBird(cfg config.Config, aspect float64) Bird {
	h := cfg.BirdHeight()
	return Bird{
		X:      cfg.Screen.Width * cfg.Bird.XRatio,
		Y:      cfg.Screen.Height / 2,
		Width:  h * aspect,
		Height: h,
	}
}

// Flap replaces the current velocity with the upward flap impulse.
func (b *Bird) Flap(cfg config.Physics) {
	b.Vel = cfg.FlapStrength
}

// Update applies one frame of gravity and recomputes the tilt.
func (b *Bird) Update(cfg config.Config) {
	b.Vel += cfg.Physics.Gravity
	b.Y += b.Vel
	b.Angle = core.ClampF(-b.Vel*cfg.Bird.TiltFactor, cfg.Bird.MinTilt, cfg.Bird.MaxTilt)
}

// Rect returns the bird's bounding box.
func (b Bird) Rect() core.Rect {
	return core.RectAround(b.X, b.Y, b.Width, b.Height)
}
