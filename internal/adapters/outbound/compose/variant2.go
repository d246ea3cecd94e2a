package compose

import (
	"github.com/sufield/family/internal/adapters/outbound/variant2"
	"github.com/sufield/family/internal/ports"
)

// Variant2Factory produces family 2's products.
type Variant2Factory struct{}

func NewVariant2Factory() Variant2Factory {
	return Variant2Factory{}
}

func (Variant2Factory) CreateProductA() ports.ProductA {
	return variant2.ProductA{}
}

func (Variant2Factory) CreateProductB() ports.ProductB {
	return variant2.ProductB{}
}

var _ ports.Factory = Variant2Factory{}
