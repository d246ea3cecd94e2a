package bg

// Async runs each function in its own goroutine.
// Callers that need completion must synchronise themselves (e.g. sync.WaitGroup).
type Async struct{}

// Do executes fn in a new goroutine.
func (Async) Do(fn func()) {
	go fn()
}
