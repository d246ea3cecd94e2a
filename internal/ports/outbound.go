package ports

import (
	"github.com/sufield/family/internal/domain"
)

// ProductA is the first capability every product family must provide.
//
// Contract:
//   - UseA returns text that identifies the family (it embeds domain.TokenA)
//   - UseA has no side effects and cannot fail
//   - Repeated calls on the same value return identical text
type ProductA interface {
	UseA() string
}

// ProductB is the second capability every product family must provide.
//
// Collaboration Contract:
//   - Collaborate accepts ANY ProductA, not only one from the same family
//   - Collaborate calls a.UseA() and embeds the result verbatim
//   - Collaborate never inspects which family a belongs to and never fails
//
// Passing a ProductA from another family is allowed. The result is well-formed
// text that mixes two families' tokens and carries no meaning. The only
// sanctioned way to obtain a matching pair is from a single Factory.
type ProductB interface {
	// UseB returns text that identifies the family (it embeds domain.TokenB)
	UseB() string

	// Collaborate combines this product with a, embedding a.UseA()
	Collaborate(a ProductA) string
}

// Factory creates one product family.
//
// Contract:
//   - Both methods return products of the factory's own family
//   - Both methods return fresh values and always succeed
//   - A Factory holds no mutable state, so one value may be reused or
//     shared by concurrent sessions
type Factory interface {
	CreateProductA() ProductA
	CreateProductB() ProductB
}

// FactoryProvider turns an explicit variant choice into a Factory.
//
// This is a lookup table owned by the caller, not a service locator: no
// reflection, no implicit registration.
//
// Error Contract:
//   - Factory returns domain.ErrUnknownVariant if nothing is wired for v
type FactoryProvider interface {
	// Factory returns the factory wired for v
	Factory(v domain.Variant) (Factory, error)

	// Variants lists wired variants in ascending order
	Variants() []domain.Variant
}
