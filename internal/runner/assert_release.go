//go:build !runnerdebug

package runner

// assert is a no-op in release builds; callers repair the state themselves.
func assert(bool, string) {}
