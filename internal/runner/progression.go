package runner

import "github.com/vovakirdan/tui-runner/internal/config"

// Progression turns survived ticks into score and scroll speed.
type Progression struct {
	BaseSpeed float64
	Increment float64
	Interval  int
}

// NewProgression creates a progression from config.
func NewProgression(cfg config.RunnerProgression) Progression {
	return Progression{
		BaseSpeed: cfg.BaseSpeed,
		Increment: cfg.Increment,
		Interval:  cfg.Interval,
	}
}

// Advance adds one point and, when the new score lands on a multiple of
// Interval, one speed increment. A non-positive Interval disables speed-ups.
func (p Progression) Advance(score int, speed float64) (int, float64) {
	score++
	if p.Interval > 0 && score%p.Interval == 0 {
		speed += p.Increment
	}
	return score, speed
}
