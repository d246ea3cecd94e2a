package variant2

import (
	"fmt"

	"github.com/sufield/family/internal/ports"
)

// ProductA is family 2's implementation of ports.ProductA.
type ProductA struct{}

func (ProductA) UseA() string {
	return "The result of the product A2."
}

// ProductB is family 2's implementation of ports.ProductB.
type ProductB struct{}

func (ProductB) UseB() string {
	return "The result of the product B2."
}

// Collaborate is only meaningful with family 2's ProductA. Any other
// ports.ProductA is still accepted.
func (ProductB) Collaborate(a ports.ProductA) string {
	return fmt.Sprintf("The result of the B2 collaborating with the (%s)", a.UseA())
}

var (
	_ ports.ProductA = ProductA{}
	_ ports.ProductB = ProductB{}
)
