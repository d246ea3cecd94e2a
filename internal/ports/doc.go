// Package ports defines the capability interfaces shared by the product
// families and the inbound adapters that drive them.
//
// # Files and responsibilities
//
// outbound.go:
//   - ProductA, ProductB: capabilities each family's products implement.
//   - Factory: creates one family's products.
//   - FactoryProvider: explicit variant → Factory lookup.
//   - Each interface states its contract in comments. Product and factory
//     methods have no error return; only FactoryProvider can fail.
//
// inbound.go:
//   - SessionService: runs sessions for the CLI and HTTP adapters.
//   - CLI: the demonstration harness.
//
// # Notes
//
//   - ProductB.Collaborate is permissive. Family correctness is a calling
//     convention enforced by obtaining both products from one Factory, see
//     internal/app.RunSession.
//   - Concrete families live under internal/adapters/outbound; factories and
//     the lookup table live in internal/adapters/outbound/compose.
package ports
