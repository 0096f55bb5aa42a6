package runner

// Integrate advances the actor by one tick of semi-implicit Euler under
// constant gravity. Crossing the ground line clamps the actor onto it and
// ends the jump; the clamp also drops the residual downward velocity.
func Integrate(a *Actor, gravity, groundY float64) {
	a.VY += gravity
	a.Y += a.VY

	if floor := groundY - a.Height; a.Y >= floor {
		a.Y = floor
		// A grounded actor always has zero vertical velocity
		a.VY = 0
		a.Airborne = false
	}
}

// Jump launches a grounded actor with the given (negative) impulse.
// It reports whether the jump was accepted; an airborne actor ignores it.
func Jump(a *Actor, impulse float64) bool {
	if a.Airborne {
		return false
	}
	a.VY = impulse
	a.Airborne = true
	return true
}
