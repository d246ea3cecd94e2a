package app

import (
	"github.com/sufield/family/internal/ports"
)

// SessionSeparator joins the UseB text and the collaboration text
const SessionSeparator = "\n"

// RunSession creates one product of each kind from f, lets product B
// collaborate with product A, and returns B's own text followed by the
// collaboration text.
//
// The flow is fixed for every factory: CreateProductA, CreateProductB,
// Collaborate. Only the embedded family text differs. RunSession never fails
// and keeps no state; the products are discarded when it returns.
//
// f must not be nil. Use Service for input that may not resolve to a factory.
func RunSession(f ports.Factory) string {
	a := f.CreateProductA()
	b := f.CreateProductB()
	collaboration := b.Collaborate(a)
	return b.UseB() + SessionSeparator + collaboration
}
