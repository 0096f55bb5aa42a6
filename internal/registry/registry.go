// Package registry maps runner mode IDs to their constructors.
// Each mode package registers itself from init(), so the CLI and the menu
// can list and start modes by name without importing them directly.
package registry

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Game is a playable runner mode as seen by the terminal frontend.
// Implementations hold pure simulation state; the frontend owns timing,
// key mapping and drawing to the terminal.
type Game interface {
	// ID is the name used on the command line (e.g. "runner").
	ID() string

	// Title is the menu label (e.g. "Endless Runner").
	Title() string

	// Reset discards the current session and seeds a new one from cfg.
	// The frontend calls it once per session; a restart after game over
	// keeps the same session and goes through Step with ActionRestart.
	Reset(cfg core.RuntimeConfig)

	// Step runs exactly one fixed tick with the actions collected since the
	// previous tick. Jump, game over and restart events of that tick are
	// returned alongside the resulting state.
	Step(in core.InputFrame) core.StepResult

	// Render draws the latest state into dst, which is cleared first.
	// Any screen size, including zero, must be accepted.
	Render(dst *core.Screen)

	// State returns score, best score and the paused and game over flags.
	State() core.GameState
}

// GameInfo describes a registered mode.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a fresh, not yet Reset, instance of a mode.
type Factory func() Game

type entry struct {
	title string
	build Factory
}

var (
	mu    sync.RWMutex
	modes = make(map[string]entry)
)

// Register makes a mode available under id. The title is read once from a
// throwaway instance. It panics on an empty id, a nil factory or a
// duplicate id, all of which are programming errors in an init().
func Register(id string, f Factory) {
	if id == "" || f == nil {
		panic("registry: Register needs an id and a factory")
	}

	mu.Lock()
	defer mu.Unlock()

	if _, dup := modes[id]; dup {
		panic(fmt.Sprintf("registry: mode %q already registered", id))
	}
	modes[id] = entry{title: f().Title(), build: f}
}

// List returns every registered mode ordered by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(modes))
	for id, e := range modes {
		out = append(out, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(out, func(a, b GameInfo) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}

// Create builds a new instance of the mode registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := modes[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown mode %q", id)
	}
	return e.build(), nil
}

// Exists reports whether id names a registered mode.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := modes[id]
	return ok
}
