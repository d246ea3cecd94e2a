package compose

import (
	"github.com/sufield/family/internal/adapters/outbound/variant1"
	"github.com/sufield/family/internal/ports"
)

// Variant1Factory produces family 1's products.
// It is stateless: the zero value is ready to use and safe to share.
type Variant1Factory struct{}

// NewVariant1Factory creates the factory for family 1
func NewVariant1Factory() Variant1Factory {
	return Variant1Factory{}
}

func (Variant1Factory) CreateProductA() ports.ProductA {
	return variant1.ProductA{}
}

func (Variant1Factory) CreateProductB() ports.ProductB {
	return variant1.ProductB{}
}

var _ ports.Factory = Variant1Factory{}
