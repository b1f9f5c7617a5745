package settings

import "sync/atomic"

// reducedMotion is the process-wide accessibility preference. Animations
// read it on every frame, so it must be safe to flip from the config loader
// while a program is running.
var reducedMotion atomic.Bool

// ReducedMotion reports whether animations should be suppressed.
func ReducedMotion() bool {
	return reducedMotion.Load()
}

// SetReducedMotion updates the process-wide reduced motion preference.
func SetReducedMotion(v bool) {
	reducedMotion.Store(v)
}
