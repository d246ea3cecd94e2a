package variant1

import (
	"fmt"

	"github.com/sufield/family/internal/ports"
)

// ProductA is family 1's implementation of ports.ProductA.
type ProductA struct{}

// UseA returns family 1's product A text.
func (ProductA) UseA() string {
	return "The result of the product A1."
}

// ProductB is family 1's implementation of ports.ProductB.
type ProductB struct{}

// UseB returns family 1's product B text.
func (ProductB) UseB() string {
	return "The result of the product B1."
}

// Collaborate embeds a.UseA() in family 1's collaboration text.
//
// ProductB only works meaningfully with family 1's ProductA, but it accepts
// any ports.ProductA: a foreign collaborator yields mixed-family text, not
// an error.
func (ProductB) Collaborate(a ports.ProductA) string {
	return fmt.Sprintf("The result of the B1 collaborating with the (%s)", a.UseA())
}

var (
	_ ports.ProductA = ProductA{}
	_ ports.ProductB = ProductB{}
)
