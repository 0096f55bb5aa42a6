package config

// presetSpeeds holds the progression overrides for each preset.
var presetSpeeds = map[DifficultyPreset]RunnerProgression{
	DifficultyEasy:   {BaseSpeed: 5, Increment: 0.5, Interval: 1000},
	DifficultyNormal: {BaseSpeed: 6, Increment: 1, Interval: 1000},
	DifficultyHard:   {BaseSpeed: 8, Increment: 1, Interval: 600},
}

// ApplyRunnerPreset modifies the config based on a difficulty preset.
// The fixed preset keeps the loaded base speed and disables speed-ups.
func ApplyRunnerPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Progression.Increment = 0
		cfg.Progression.Interval = 0
		return
	}

	if p, ok := presetSpeeds[preset]; ok {
		cfg.Progression = p
	}

	// Harder runs also pack obstacles tighter.
	if preset == DifficultyHard {
		cfg.Obstacles.MinGap = cfg.Obstacles.MinGap * 0.8
		cfg.Obstacles.MaxGap = cfg.Obstacles.MaxGap * 0.8
	}
}
