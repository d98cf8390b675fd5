package config

import (
	_ "embed"
)

//go:embed defaults/dino.yaml
var defaultDinoYAML []byte

// DefaultDinoConfig returns the hardcoded Dino Runner configuration.
// It matches defaults/dino.yaml and is used when the embed fails to parse.
func DefaultDinoConfig() DinoConfig {
	return DinoConfig{
		Field: DinoField{
			Width:        800,
			Height:       300,
			GroundHeight: 30,
		},
		Physics: DinoPhysics{
			Gravity:     0.55,
			JumpImpulse: -12.5,
			BaseSpeed:   5,
			SpeedStep:   1,
		},
		Player: DinoPlayer{
			X:    50,
			Size: 45,
		},
		Obstacles: DinoObstacles{
			MinWidth:    30,
			MaxWidth:    60,
			MinHeight:   60,
			MaxHeight:   90,
			MinInterval: 80,
			MaxInterval: 150,
		},
		Decor: DinoDecor{
			CloudEvery: 150,
			CloudSpeed: 2,
			CloudWidth: 60,
			CloudMinY:  30,
			CloudMaxY:  100,
			DustChance: 0.3,
			DustSize:   4,
			DustSpeed:  2,
			DustFade:   0.02,
		},
		Difficulty: DifficultyConfig{
			Enabled:    true,
			LevelEvery: 10,
		},
	}
}
