//go:build debug

package assert

import "fmt"

// Invariant panics when ok is false. Only compiled into debug builds.
//
// Use it for conditions the code guarantees by construction, for example that
// each shipped factory builds products of its own family. Never use it to
// validate caller input or on goroutines the caller does not own.
func Invariant(ok bool, msg string) {
	if !ok {
		panic(fmt.Sprintf("INVARIANT VIOLATION: %s", msg))
	}
}
