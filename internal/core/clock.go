package core

import "time"

// maxCatchUp bounds how many ticks a single Advance may ask for.
// A stalled frontend (suspended terminal, dragged window) would otherwise
// replay seconds of simulation in one frame.
const maxCatchUp = 5

// Clock converts wall-clock time into a number of fixed simulation ticks.
// The simulation uses per-tick constants, so frontends whose frame callback
// is not guaranteed to fire at a fixed cadence accumulate real time here and
// run exactly as many ticks as have elapsed.
type Clock struct {
	step    time.Duration
	pending time.Duration
	last    time.Time
}

// NewClock creates a clock for the given tick rate (ticks per second).
func NewClock(tickRate int) *Clock {
	if tickRate <= 0 {
		tickRate = DefaultConfig().TickRate
	}
	return &Clock{step: time.Second / time.Duration(tickRate)}
}

// Step returns the duration of one fixed tick.
func (c *Clock) Step() time.Duration {
	return c.step
}

// Advance records the frame time now and returns the number of ticks to run.
// The first call only establishes the reference time and returns 1 so the
// first frame is never empty.
func (c *Clock) Advance(now time.Time) int {
	if c.last.IsZero() {
		c.last = now
		return 1
	}

	elapsed := now.Sub(c.last)
	c.last = now
	if elapsed < 0 {
		return 0
	}

	c.pending += elapsed
	ticks := int(c.pending / c.step)
	c.pending -= time.Duration(ticks) * c.step

	if ticks > maxCatchUp {
		ticks = maxCatchUp
		c.pending = 0
	}
	return ticks
}

// Reset forgets the reference time and any accumulated remainder.
func (c *Clock) Reset() {
	c.pending = 0
	c.last = time.Time{}
}
