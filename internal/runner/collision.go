package runner

import "github.com/vovakirdan/tui-runner/internal/core"

// FirstHit returns the index of the first obstacle, in slice order, whose
// box overlaps the actor's box. Touching edges do not count as a hit.
func FirstHit(actor core.Box, obstacles []Obstacle) (int, bool) {
	for i, o := range obstacles {
		if actor.Overlaps(o.Box()) {
			return i, true
		}
	}
	return -1, false
}
