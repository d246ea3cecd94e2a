// Package app contains the session runner and the application's composition
// root.
//
// Responsibilities:
//   - RunSession (session.go): the single place where a factory's two products
//     meet. Both products come from the same Factory value, which is what keeps
//     a session inside one product family.
//   - Service (service.go): resolves an explicit variant through a
//     ports.FactoryProvider, runs sessions, and runs batches of isolated
//     sessions through a bg.Runner.
//   - Application / Bootstrap (application.go): wires validated configuration,
//     the provider, the service and the logger for inbound adapters.
//
// Architectural notes:
//   - Nothing in this package knows a concrete family. Families are reached only
//     through ports.Factory.
//   - Sessions share no state; running them concurrently needs no locking.
package app
