package runner

import "github.com/vovakirdan/tui-runner/internal/core"

// DecorationView is a decoration as handed to renderers.
type DecorationView struct {
	Box   core.Box
	Alpha float64
}

// Snapshot is a read-only copy of everything a renderer needs for a frame.
// It does not alias the simulation's slices.
type Snapshot struct {
	Tick  int
	Score int
	Best  int // Filled by Game; zero when taken straight from Sim
	Speed float64
	Phase Phase

	World   core.Box // The whole canvas
	GroundY float64

	Actor       core.Box
	Airborne    bool
	Obstacles   []core.Box
	Decorations []DecorationView
}

// Snapshot captures the current world state.
func (s *Sim) Snapshot() Snapshot {
	obstacles := make([]core.Box, len(s.spawner.Obstacles()))
	for i, o := range s.spawner.Obstacles() {
		obstacles[i] = o.Box()
	}

	decorations := make([]DecorationView, len(s.spawner.Decorations()))
	for i, d := range s.spawner.Decorations() {
		decorations[i] = DecorationView{Box: d.Box(), Alpha: d.Alpha}
	}

	return Snapshot{
		Tick:        s.ticks,
		Score:       s.score,
		Speed:       s.speed,
		Phase:       s.phase,
		World:       core.NewBox(0, 0, s.cfg.World.Width, s.cfg.World.Height),
		GroundY:     s.cfg.World.GroundY,
		Actor:       s.actor.Box(),
		Airborne:    s.actor.Airborne,
		Obstacles:   obstacles,
		Decorations: decorations,
	}
}
