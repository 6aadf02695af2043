package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It mirrors defaults/flappy.yaml
// and is used when the embedded file cannot be parsed.
func Default() Config {
	return Config{
		Screen: Screen{
			Width:    400,
			Height:   600,
			TickRate: 60,
		},
		Physics: Physics{
			Gravity:      0.45,
			FlapStrength: -9,
		},
		Obstacles: Obstacles{
			GapHeight:       150, // a quarter of the screen height
			Width:           60,
			SpriteHeight:    500,
			SpawnIntervalMS: 1500,
			InitialSpeed:    4.5,
			SpawnOffset:     50,
			CullMargin:      50,
			GapMargin:       20,
		},
		Ground: Ground{
			Height:      100,
			SpriteWidth: 400,
		},
		Bird: Bird{
			XRatio:      0.2,
			HeightRatio: 0.08,
			TiltFactor:  3,
			MinTilt:     -30,
			MaxTilt:     60,
		},
		Text: Text{
			MinSize:    10,
			ShrinkStep: 2,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
