// Package cli is the demonstration harness: it runs the configured sessions
// and prints each result the way a client of the factories would see it.
//
// The printed text is a demonstration, not a contract. Programs that need the
// session output should call ports.SessionService directly.
package cli
