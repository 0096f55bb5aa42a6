// Package config provides YAML-based game configuration loading and
// difficulty presets for the runner.
package config

import (
	"errors"
	"fmt"
)

// Gap policies for obstacle spacing.
const (
	// GapReroll draws a fresh gap threshold on every spawn check.
	GapReroll = "reroll"
	// GapOnce draws one threshold per obstacle and waits until it is met.
	GapOnce = "once"
)

// RunnerConfig contains all configuration for the endless runner.
// Distances are in world units, speeds and accelerations are per tick.
type RunnerConfig struct {
	World       RunnerWorld       `yaml:"world"`
	Physics     RunnerPhysics     `yaml:"physics"`
	Player      RunnerPlayer      `yaml:"player"`
	Obstacles   RunnerObstacles   `yaml:"obstacles"`
	Decorations RunnerDecorations `yaml:"decorations"`
	Progression RunnerProgression `yaml:"progression"`
}

// RunnerWorld defines the fixed canvas the simulation runs on.
type RunnerWorld struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	GroundY float64 `yaml:"ground_y"` // Y of the ground line
}

// RunnerPhysics defines physics parameters for the runner.
type RunnerPhysics struct {
	Gravity     float64 `yaml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse"` // Negative = upward
}

// RunnerPlayer defines the actor's fixed geometry.
type RunnerPlayer struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ObstacleShape is one entry of the obstacle catalog.
type ObstacleShape struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// RunnerObstacles defines obstacle spawning parameters.
type RunnerObstacles struct {
	Shapes    []ObstacleShape `yaml:"shapes"`
	MinGap    float64         `yaml:"min_gap"`
	MaxGap    float64         `yaml:"max_gap"`
	GapPolicy string          `yaml:"gap_policy"` // "reroll" or "once"
}

// RunnerDecorations defines background cloud parameters.
type RunnerDecorations struct {
	Chance   float64 `yaml:"chance"` // Spawn probability per tick
	MinY     float64 `yaml:"min_y"`
	MaxY     float64 `yaml:"max_y"`
	MinWidth float64 `yaml:"min_width"`
	MaxWidth float64 `yaml:"max_width"`
	MinDrift float64 `yaml:"min_drift"` // Fraction of scroll speed
	MaxDrift float64 `yaml:"max_drift"`
}

// RunnerProgression defines how scroll speed grows with score.
type RunnerProgression struct {
	BaseSpeed float64 `yaml:"base_speed"`
	Increment float64 `yaml:"increment"` // Added to speed every Interval points
	Interval  int     `yaml:"interval"`  // 0 disables speed-ups
}

// Validate checks the config and reports every problem it finds.
func (c RunnerConfig) Validate() error {
	var errs []error

	w := c.World
	if w.Width <= 0 || w.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %gx%g", w.Width, w.Height))
	}
	if w.GroundY <= 0 || w.GroundY > w.Height {
		errs = append(errs, fmt.Errorf("world.ground_y must be in (0, %g], got %g", w.Height, w.GroundY))
	}

	if c.Physics.Gravity <= 0 {
		errs = append(errs, fmt.Errorf("physics.gravity must be positive, got %g", c.Physics.Gravity))
	}
	if c.Physics.JumpImpulse >= 0 {
		errs = append(errs, fmt.Errorf("physics.jump_impulse must be negative, got %g", c.Physics.JumpImpulse))
	}

	p := c.Player
	if p.Width <= 0 || p.Height <= 0 {
		errs = append(errs, fmt.Errorf("player size must be positive, got %gx%g", p.Width, p.Height))
	}
	if p.Height > w.GroundY {
		errs = append(errs, fmt.Errorf("player.height %g does not fit above ground_y %g", p.Height, w.GroundY))
	}
	if p.X < 0 || p.X+p.Width > w.Width {
		errs = append(errs, fmt.Errorf("player.x %g is outside the world", p.X))
	}

	o := c.Obstacles
	if len(o.Shapes) == 0 {
		errs = append(errs, errors.New("obstacles.shapes must not be empty"))
	}
	for i, s := range o.Shapes {
		if s.Width <= 0 || s.Height <= 0 || s.Height > w.GroundY {
			errs = append(errs, fmt.Errorf("obstacles.shapes[%d] has invalid size %gx%g", i, s.Width, s.Height))
		}
	}
	if o.MinGap < 0 || o.MinGap > o.MaxGap {
		errs = append(errs, fmt.Errorf("obstacles gap range [%g, %g] is invalid", o.MinGap, o.MaxGap))
	}
	switch o.GapPolicy {
	case "", GapReroll, GapOnce:
	default:
		errs = append(errs, fmt.Errorf("obstacles.gap_policy %q is unknown", o.GapPolicy))
	}

	d := c.Decorations
	if d.Chance < 0 || d.Chance > 1 {
		errs = append(errs, fmt.Errorf("decorations.chance must be in [0, 1], got %g", d.Chance))
	}
	if d.MinY > d.MaxY || d.MinWidth <= 0 || d.MinWidth > d.MaxWidth || d.MinDrift < 0 || d.MinDrift > d.MaxDrift {
		errs = append(errs, errors.New("decorations ranges are invalid"))
	}

	g := c.Progression
	if g.BaseSpeed <= 0 {
		errs = append(errs, fmt.Errorf("progression.base_speed must be positive, got %g", g.BaseSpeed))
	}
	if g.Increment < 0 || g.Interval < 0 {
		errs = append(errs, errors.New("progression.increment and progression.interval must not be negative"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid runner config: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset.
// An empty string means "use the config as loaded".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}
