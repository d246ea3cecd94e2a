//go:build !debug

package assert

// Invariant is a no-op outside debug builds.
func Invariant(ok bool, msg string) {}
