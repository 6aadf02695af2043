// Package config provides YAML-based game configuration loading.
// All values are fixed for the lifetime of the process.
package config

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Config contains every tunable constant of the game.
type Config struct {
	Screen    Screen    `yaml:"screen"`
	Physics   Physics   `yaml:"physics"`
	Obstacles Obstacles `yaml:"obstacles"`
	Ground    Ground    `yaml:"ground"`
	Bird      Bird      `yaml:"bird"`
	Text      Text      `yaml:"text"`
}

// Screen defines the logical drawing surface.
type Screen struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	TickRate int     `yaml:"tick_rate"` // frames per second for frontends without vsync
}

// Physics defines frame-coupled bird physics.
type Physics struct {
	Gravity      float64 `yaml:"gravity"`       // added to velocity every frame
	FlapStrength float64 `yaml:"flap_strength"` // velocity after a flap (negative = up)
}

// Obstacles defines pipe geometry and spawning.
type Obstacles struct {
	GapHeight       float64 `yaml:"gap_height"`
	Width           float64 `yaml:"width"`
	SpriteHeight    float64 `yaml:"sprite_height"`
	SpawnIntervalMS int     `yaml:"spawn_interval_ms"`
	InitialSpeed    float64 `yaml:"initial_speed"`
	SpawnOffset     float64 `yaml:"spawn_offset"` // spawn x beyond the right edge
	CullMargin      float64 `yaml:"cull_margin"`  // removal distance beyond the left edge
	GapMargin       float64 `yaml:"gap_margin"`   // minimum clearance of the gap from top and ground
}

// SpawnInterval returns the spawn interval as a duration.
func (o Obstacles) SpawnInterval() time.Duration {
	return time.Duration(o.SpawnIntervalMS) * time.Millisecond
}

// Ground defines the scrolling ground strip.
type Ground struct {
	Height      float64 `yaml:"height"`
	SpriteWidth float64 `yaml:"sprite_width"`
}

// Bird defines the player sprite placement and tilt.
type Bird struct {
	XRatio      float64 `yaml:"x_ratio"`      // fixed x as a fraction of screen width
	HeightRatio float64 `yaml:"height_ratio"` // sprite height as a fraction of screen height
	TiltFactor  float64 `yaml:"tilt_factor"`  // degrees per unit of upward velocity
	MinTilt     float64 `yaml:"min_tilt"`
	MaxTilt     float64 `yaml:"max_tilt"`
}

// Text defines the auto-fit behavior of drawn text.
type Text struct {
	MinSize    float64 `yaml:"min_size"`
	ShrinkStep float64 `yaml:"shrink_step"`
}

// GroundY returns the y coordinate of the ground line.
func (c Config) GroundY() float64 {
	return c.Screen.Height - c.Ground.Height
}

// BirdHeight returns the bird's height in logical units.
func (c Config) BirdHeight() float64 {
	return c.Screen.Height * c.Bird.HeightRatio
}

// GapCenterRange returns the inclusive integer range a gap center is drawn from.
// The gap must clear the top edge and the ground by GapMargin.
func (c Config) GapCenterRange() (lo, hi int) {
	half := c.Obstacles.GapHeight / 2
	lo = int(math.Ceil(half + c.Obstacles.GapMargin))
	hi = int(math.Floor(c.GroundY() - half - c.Obstacles.GapMargin))
	return lo, hi
}

// Validate checks that the constants describe a playable game.
func (c Config) Validate() error {
	var errs []error

	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		errs = append(errs, fmt.Errorf("screen size must be positive, got %vx%v", c.Screen.Width, c.Screen.Height))
	}
	if c.Screen.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick_rate must be positive, got %d", c.Screen.TickRate))
	}
	if c.Ground.Height < 0 || c.Ground.Height >= c.Screen.Height {
		errs = append(errs, fmt.Errorf("ground height %v must be within the screen", c.Ground.Height))
	}
	if c.Ground.SpriteWidth <= 0 {
		errs = append(errs, errors.New("ground sprite_width must be positive"))
	}
	if c.Obstacles.Width <= 0 || c.Obstacles.SpriteHeight <= 0 {
		errs = append(errs, errors.New("obstacle width and sprite_height must be positive"))
	}
	if c.Obstacles.SpawnIntervalMS <= 0 {
		errs = append(errs, errors.New("spawn_interval_ms must be positive"))
	}
	if c.Obstacles.InitialSpeed <= 0 {
		errs = append(errs, errors.New("initial_speed must be positive"))
	}
	if c.Text.MinSize <= 0 || c.Text.ShrinkStep <= 0 {
		errs = append(errs, errors.New("text min_size and shrink_step must be positive"))
	}
	if c.Bird.MinTilt > c.Bird.MaxTilt {
		errs = append(errs, fmt.Errorf("bird min_tilt %v exceeds max_tilt %v", c.Bird.MinTilt, c.Bird.MaxTilt))
	}
	if c.Obstacles.GapHeight <= c.BirdHeight() {
		errs = append(errs, fmt.Errorf("gap height %v cannot clear a bird of height %v", c.Obstacles.GapHeight, c.BirdHeight()))
	}
	if lo, hi := c.GapCenterRange(); lo > hi {
		errs = append(errs, fmt.Errorf("no room for a %v gap with margin %v above the ground", c.Obstacles.GapHeight, c.Obstacles.GapMargin))
	}

	return errors.Join(errs...)
}
