package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Best     int  // Best score of this process
	GameOver bool // Whether the run has ended
	Paused   bool // Whether the game is paused
}

// Event is a side effect produced by a tick, for audio and overlays.
type Event int

const (
	EventJump     Event = iota + 1 // A jump was accepted
	EventGameOver                  // The run ended in a collision
	EventRestart                   // A new run started after game over
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventJump:
		return "Jump"
	case EventGameOver:
		return "GameOver"
	case EventRestart:
		return "Restart"
	default:
		return "Unknown"
	}
}

// EventSink consumes the events of each step. Frontends hand every
// StepResult's events to one, audio being the main consumer.
type EventSink interface {
	Handle(events []Event)
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
