// Package domain contains the value types shared by every product family.
//
// The package has no dependencies beyond the standard library. It models the
// variant tag that identifies a product family, the tokens a family embeds in
// its output, and the result of one factory session.
//
// # Files and types
//
// variant.go:
//   - Variant: family tag (Variant1, Variant2, ...). A variant is never stored
//     on a product; it only selects which concrete factory is used.
//   - TokenA / TokenB: the "A<n>" / "B<n>" markers a family embeds in output.
//
// session.go:
//   - SessionResult: outcome of one end-to-end factory session.
//   - Consistent: reports whether an output carries exactly one family's tokens.
//
// errors.go:
//   - Sentinel errors used at the selection and configuration edges.
//     Products and factories themselves never fail.
package domain
