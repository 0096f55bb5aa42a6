//go:build runnerdebug

package runner

// assert panics when an internal invariant does not hold.
// Enabled with -tags runnerdebug.
func assert(cond bool, msg string) {
	if !cond {
		panic("runner: invariant violated: " + msg)
	}
}
