package runner

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-runner/internal/config"
)

// Spawner handles spawning, scrolling and retirement of obstacles and
// background decorations. All randomness comes from its own seeded RNG.
type Spawner struct {
	obstacles   []Obstacle
	decorations []Decoration
	rng         *rand.Rand
	world       config.RunnerWorld
	cfg         config.RunnerObstacles
	deco        config.RunnerDecorations

	// Pending threshold for the "once" gap policy.
	threshold    float64
	hasThreshold bool
}

// NewSpawner creates a new spawner with the given RNG seed.
func NewSpawner(seed int64, cfg config.RunnerConfig) *Spawner {
	return &Spawner{
		obstacles:   make([]Obstacle, 0, 8),
		decorations: make([]Decoration, 0, 16),
		rng:         rand.New(rand.NewSource(seed)),
		world:       cfg.World,
		cfg:         cfg.Obstacles,
		deco:        cfg.Decorations,
	}
}

// Clear removes all entities. The RNG stream is left untouched.
func (s *Spawner) Clear() {
	s.obstacles = s.obstacles[:0]
	s.decorations = s.decorations[:0]
	s.hasThreshold = false
}

// Update runs one tick: scroll everything left, retire what left the
// world, then try to spawn one obstacle and one decoration.
// Retirement happens before spawning so the gap check and the collision
// pass that follows only ever see live entities.
func (s *Spawner) Update(speed float64) {
	s.Scroll(speed)
	s.Retire()
	s.SpawnObstacle()
	s.SpawnDecoration()
}

// Scroll moves obstacles by the world speed and decorations by their own
// fraction of it.
func (s *Spawner) Scroll(speed float64) {
	for i := range s.obstacles {
		s.obstacles[i].X -= speed
	}
	for i := range s.decorations {
		s.decorations[i].X -= s.decorations[i].Drift * speed
	}
}

// Retire drops every entity whose right edge has passed the left boundary
// and returns how many were removed. Order of the survivors is preserved.
func (s *Spawner) Retire() int {
	removed := 0

	live := s.obstacles[:0]
	for _, o := range s.obstacles {
		if offscreen(o.X, o.Width) {
			removed++
			continue
		}
		live = append(live, o)
	}
	s.obstacles = live

	liveDeco := s.decorations[:0]
	for _, d := range s.decorations {
		if offscreen(d.X, d.Width) {
			removed++
			continue
		}
		liveDeco = append(liveDeco, d)
	}
	s.decorations = liveDeco

	return removed
}

// SpawnObstacle places a new obstacle at the right world edge when the gap
// to the newest obstacle is large enough, and reports whether it did.
//
// The gap is measured from the newest obstacle's trailing edge, so spacing
// between leading edges is the threshold plus that obstacle's width.
//
// Under the reroll policy the threshold is drawn again on every call, so
// the effective spacing fluctuates until one draw is satisfied. Under the
// once policy a threshold is drawn once and kept until an obstacle spawns.
func (s *Spawner) SpawnObstacle() bool {
	threshold := 0.0
	clearance := math.Inf(1)

	if n := len(s.obstacles); n > 0 {
		last := s.obstacles[n-1]
		clearance = s.world.Width - (last.X + last.Width)
		threshold = s.gapThreshold()
		if clearance < threshold {
			return false
		}
	}
	s.hasThreshold = false

	shape := s.cfg.Shapes[s.rng.Intn(len(s.cfg.Shapes))]
	s.obstacles = append(s.obstacles, Obstacle{
		X:         s.world.Width,
		Y:         s.world.GroundY - shape.Height,
		Width:     shape.Width,
		Height:    shape.Height,
		Threshold: threshold,
		Clearance: clearance,
	})
	return true
}

// gapThreshold returns the gap the newest obstacle must clear.
func (s *Spawner) gapThreshold() float64 {
	if s.cfg.GapPolicy == config.GapOnce {
		if !s.hasThreshold {
			s.threshold = s.uniform(s.cfg.MinGap, s.cfg.MaxGap)
			s.hasThreshold = true
		}
		return s.threshold
	}
	return s.uniform(s.cfg.MinGap, s.cfg.MaxGap)
}

// SpawnDecoration runs the per-tick Bernoulli trial for a background cloud
// and reports whether one was created.
func (s *Spawner) SpawnDecoration() bool {
	if s.rng.Float64() >= s.deco.Chance {
		return false
	}

	width := s.uniform(s.deco.MinWidth, s.deco.MaxWidth)
	drift := s.uniform(s.deco.MinDrift, s.deco.MaxDrift)
	s.decorations = append(s.decorations, Decoration{
		X:      s.world.Width,
		Y:      s.uniform(s.deco.MinY, s.deco.MaxY),
		Width:  width,
		Height: width / 2,
		Drift:  drift,
		// Slow clouds read as distant ones, so they are fainter.
		Alpha: math.Min(1, 0.3+drift),
	})
	return true
}

// uniform draws from [lo, hi).
func (s *Spawner) uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// Obstacles returns the live obstacles, oldest first.
func (s *Spawner) Obstacles() []Obstacle {
	return s.obstacles
}

// Decorations returns the live decorations, oldest first.
func (s *Spawner) Decorations() []Decoration {
	return s.decorations
}
