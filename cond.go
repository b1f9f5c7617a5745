package sheen

// If applies transform to the view only when cond is true; otherwise the
// view passes through unchanged. The branch is evaluated eagerly on every
// call.
func If(v string, cond bool, transform func(string) string) string {
	if !cond {
		return v
	}
	return transform(v)
}

// When picks between two values by condition.
func When[T any](cond bool, then, otherwise T) T {
	if cond {
		return then
	}
	return otherwise
}

// Chain applies transforms to the view left to right, the pipeline form of
// a modifier chain.
func Chain(v string, transforms ...func(string) string) string {
	for _, t := range transforms {
		v = t(v)
	}
	return v
}
