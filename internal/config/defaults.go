package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
// It mirrors defaults/runner.yaml and is the last resort if that fails to parse.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		World: RunnerWorld{
			Width:   800,
			Height:  300,
			GroundY: 260,
		},
		Physics: RunnerPhysics{
			Gravity:     0.6,
			JumpImpulse: -12,
		},
		Player: RunnerPlayer{
			X:      50,
			Width:  40,
			Height: 40,
		},
		Obstacles: RunnerObstacles{
			Shapes: []ObstacleShape{
				{Width: 20, Height: 40},
				{Width: 25, Height: 50},
				{Width: 30, Height: 35},
				{Width: 40, Height: 30},
			},
			MinGap:    300,
			MaxGap:    600,
			GapPolicy: GapReroll,
		},
		Decorations: RunnerDecorations{
			Chance:   0.02,
			MinY:     20,
			MaxY:     120,
			MinWidth: 40,
			MaxWidth: 90,
			MinDrift: 0.2,
			MaxDrift: 0.5,
		},
		Progression: RunnerProgression{
			BaseSpeed: 6,
			Increment: 1,
			Interval:  1000,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
