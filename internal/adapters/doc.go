// Package adapters contains the concrete implementations of the port interfaces.
//
// Adapters are organized by data flow direction:
//
//   - inbound/cli      - prints one session per configured variant (ports.CLI)
//   - inbound/httpapi  - chi router and server exposing ports.SessionService
//   - outbound/variant1, outbound/variant2 - one package per product family
//     (ports.ProductA, ports.ProductB)
//   - outbound/compose - the variant factories (ports.Factory) and the
//     explicit variant→factory Registry (ports.FactoryProvider)
//
// Boundaries:
//   - Adapters import internal/domain and internal/ports, never each other's internals
//   - Product packages import nothing but ports
//   - Only compose knows which product package belongs to which variant
//   - Wiring happens in cmd/family and the root family package
//
// Dependency flow:
//
//	cmd/family (composition root)
//	    ↓ creates
//	compose.Registry (implements ports.FactoryProvider)
//	    ↓ passed to
//	app.Bootstrap(cfg, provider, logger)
//	    ↓ resolves
//	compose.Variant1Factory (implements ports.Factory)
//	    ↓ creates
//	variant1.ProductA, variant1.ProductB
//
// Adding a variant means one new product package, one factory type in
// compose and one Registry entry. Nothing in domain, ports or app changes.
package adapters
