package runner

import (
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Phase is the run lifecycle state.
type Phase int

const (
	PhaseRunning  Phase = iota // Ticks advance the world
	PhaseGameOver              // Frozen until Restart
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "Running"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Result is what one tick hands to the output side.
type Result struct {
	Snapshot Snapshot
	Events   []core.Event
}

// Sim owns the whole world state of one runner session and advances it one
// tick at a time. It is not safe for concurrent use; frontends drive it from
// a single goroutine.
type Sim struct {
	cfg         config.RunnerConfig
	progression Progression
	spawner     *Spawner

	phase Phase
	actor Actor
	score int
	speed float64
	ticks int

	// Events raised by commands between ticks, flushed by the next Tick.
	pending []core.Event
}

// NewSim creates a running simulation. The config must be valid.
func NewSim(cfg config.RunnerConfig, seed int64) *Sim {
	s := &Sim{
		cfg:         cfg,
		progression: NewProgression(cfg.Progression),
		spawner:     NewSpawner(seed, cfg),
	}
	s.reset()
	return s
}

// reset puts the world back into its initial running state.
func (s *Sim) reset() {
	s.phase = PhaseRunning
	s.actor = Actor{
		X:      s.cfg.Player.X,
		Y:      s.groundTop(),
		Width:  s.cfg.Player.Width,
		Height: s.cfg.Player.Height,
	}
	s.score = 0
	s.speed = s.progression.BaseSpeed
	s.ticks = 0
	s.pending = s.pending[:0]
	s.spawner.Clear()
}

// groundTop is the actor's Y when standing on the ground.
func (s *Sim) groundTop() float64 {
	return s.cfg.World.GroundY - s.cfg.Player.Height
}

// Jump applies a jump command immediately. It is accepted only while
// running with the actor on the ground; anything else is dropped, never
// deferred.
func (s *Sim) Jump() bool {
	if s.phase != PhaseRunning {
		return false
	}
	if !Jump(&s.actor, s.cfg.Physics.JumpImpulse) {
		return false
	}
	s.pending = append(s.pending, core.EventJump)
	return true
}

// Restart starts a new run after game over. It is ignored while running.
// The RNG stream continues, so consecutive runs differ.
func (s *Sim) Restart() bool {
	if s.phase != PhaseGameOver {
		return false
	}
	s.reset()
	s.pending = append(s.pending, core.EventRestart)
	return true
}

// Tick advances the world by one step: physics, spawner, collision, then
// progression. In game over it returns the frozen snapshot and no events.
func (s *Sim) Tick() Result {
	if s.phase != PhaseRunning {
		return Result{Snapshot: s.Snapshot()}
	}

	s.ticks++

	Integrate(&s.actor, s.cfg.Physics.Gravity, s.cfg.World.GroundY)
	floor := s.groundTop()
	assert(s.actor.Y <= floor, "actor below ground")
	if s.actor.Y > floor {
		s.actor.Y = floor
	}

	s.spawner.Update(s.speed)
	for _, o := range s.spawner.Obstacles() {
		assert(!offscreen(o.X, o.Width), "retired obstacle still live")
	}

	if _, hit := FirstHit(s.actor.Box(), s.spawner.Obstacles()); hit {
		s.phase = PhaseGameOver
		s.pending = append(s.pending, core.EventGameOver)
	} else {
		s.score, s.speed = s.progression.Advance(s.score, s.speed)
	}

	var events []core.Event
	if len(s.pending) > 0 {
		events = append(events, s.pending...)
		s.pending = s.pending[:0]
	}
	return Result{Snapshot: s.Snapshot(), Events: events}
}

// Phase returns the current run phase.
func (s *Sim) Phase() Phase { return s.phase }

// Score returns the number of ticks survived in this run.
func (s *Sim) Score() int { return s.score }

// Speed returns the current world scroll speed.
func (s *Sim) Speed() float64 { return s.speed }

// Ticks returns the number of ticks advanced in this run.
func (s *Sim) Ticks() int { return s.ticks }

// Actor returns a copy of the actor.
func (s *Sim) Actor() Actor { return s.actor }
