package bg

// Sync runs each function inline, blocking until it returns.
type Sync struct{}

// Do executes fn in the current goroutine.
func (Sync) Do(fn func()) {
	fn()
}
