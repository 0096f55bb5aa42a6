// Package runner implements the endless runner: an actor jumps over
// procedurally spawned obstacles while the world scrolls faster over time.
//
// The simulation is split into small components (physics, spawner,
// collision, progression) driven by Sim, a two-phase state machine.
// Game adapts Sim to the platform's registry.Game interface.
package runner

import "github.com/vovakirdan/tui-runner/internal/core"

// Actor is the player-controlled character. X never changes during a run.
type Actor struct {
	X, Y     float64 // Top-left corner in world units
	VY       float64 // Vertical velocity, negative = up
	Width    float64
	Height   float64
	Airborne bool
}

// Box returns the actor's bounding box.
func (a Actor) Box() core.Box {
	return core.NewBox(a.X, a.Y, a.Width, a.Height)
}

// Obstacle is a ground-aligned block the actor must jump over.
type Obstacle struct {
	X, Y   float64
	Width  float64
	Height float64

	// Threshold is the gap bound that was in force when this obstacle
	// spawned and Clearance the free distance to its predecessor at that
	// moment. Clearance is +Inf for an obstacle spawned into an empty world.
	Threshold float64
	Clearance float64
}

// Box returns the obstacle's bounding box.
func (o Obstacle) Box() core.Box {
	return core.NewBox(o.X, o.Y, o.Width, o.Height)
}

// Decoration is a background cloud. It never collides with anything.
type Decoration struct {
	X, Y   float64
	Width  float64
	Height float64
	Drift  float64 // Fraction of the world scroll speed
	Alpha  float64 // Opacity hint for renderers, 0..1
}

// Box returns the decoration's bounding box.
func (d Decoration) Box() core.Box {
	return core.NewBox(d.X, d.Y, d.Width, d.Height)
}

// offscreen reports whether an entity's right edge has passed the left
// world boundary.
func offscreen(x, width float64) bool {
	return x+width < 0
}
