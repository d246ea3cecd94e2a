package compose

import (
	"fmt"
	"slices"

	"github.com/sufield/family/internal/assert"
	"github.com/sufield/family/internal/domain"
	"github.com/sufield/family/internal/ports"
)

// Constructor builds a factory for one family
type Constructor func() ports.Factory

// Registry is an explicit variant → factory table.
//
// The table is fixed at construction and never mutated afterwards, so a
// Registry is safe for concurrent use without locking. It performs no
// reflection and no self-registration: callers see exactly which factories
// exist by reading NewRegistry.
type Registry struct {
	constructors map[domain.Variant]Constructor
	variants     []domain.Variant
}

// NewRegistry wires every shipped family
func NewRegistry() *Registry {
	r := NewRegistryFrom(map[domain.Variant]Constructor{
		domain.Variant1: func() ports.Factory { return NewVariant1Factory() },
		domain.Variant2: func() ports.Factory { return NewVariant2Factory() },
	})
	for _, v := range r.variants {
		f := r.constructors[v]()
		text := f.CreateProductA().UseA() + " " + f.CreateProductB().UseB()
		assert.Invariant(domain.Consistent(text, v, r.variants),
			"shipped factory must build products of its own family")
	}
	return r
}

// NewRegistryFrom builds a registry from a caller-owned table.
// The table is copied; entries with an invalid variant or nil constructor are skipped.
func NewRegistryFrom(table map[domain.Variant]Constructor) *Registry {
	r := &Registry{
		constructors: make(map[domain.Variant]Constructor, len(table)),
	}
	for v, c := range table {
		if !v.IsValid() || c == nil {
			continue
		}
		r.constructors[v] = c
		r.variants = append(r.variants, v)
	}
	slices.Sort(r.variants)
	return r
}

// Factory returns a fresh factory for v
func (r *Registry) Factory(v domain.Variant) (ports.Factory, error) {
	c, ok := r.constructors[v]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownVariant, v)
	}
	return c(), nil
}

// Variants returns the wired variants in ascending order
func (r *Registry) Variants() []domain.Variant {
	out := make([]domain.Variant, len(r.variants))
	copy(out, r.variants)
	return out
}

var _ ports.FactoryProvider = (*Registry)(nil)
