// Package bg decides how batches of factory sessions are dispatched.
//
// Sessions share no state, so running them in parallel or one after another
// must produce the same results. This package lets the session service switch
// between the two without changing its code path: Async in normal operation,
// Sync when FAMILY_DEBUG_SINGLE_THREAD is set.
package bg

// Runner executes functions, either synchronously or asynchronously.
type Runner interface {
	// Do executes fn.
	// The implementation determines whether this happens synchronously or asynchronously.
	Do(fn func())
}

// ForMode returns Sync when singleThreaded is set, Async otherwise.
func ForMode(singleThreaded bool) Runner {
	if singleThreaded {
		return Sync{}
	}
	return Async{}
}
