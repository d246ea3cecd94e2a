// Package compose provides the concrete factories for every shipped product
// family and the Registry that maps an explicit variant choice to one of them.
//
// Each factory composes exactly one family's products (Variant1Factory →
// variant1, Variant2Factory → variant2), which is what guarantees the products
// handed to a session belong together.
//
// Adding a family means adding one product package and one factory type
// here, then wiring it into NewRegistry (or a caller-built table passed to
// NewRegistryFrom). Ports, products and the session runner stay untouched.
package compose
