package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/sufield/family/internal/app"
	"github.com/sufield/family/internal/domain"
	"github.com/sufield/family/internal/ports"
)

// CLI is an inbound adapter that drives the session service from the command line
// Responsibility: ONLY I/O presentation and orchestration of use cases
type CLI struct {
	application *app.Application
	out         io.Writer
	check       bool
}

// Option configures a CLI
type Option func(*CLI)

// WithConsistencyCheck makes Run fail if any session output mixes families
func WithConsistencyCheck() Option {
	return func(c *CLI) { c.check = true }
}

// New creates a CLI adapter writing to out
func New(application *app.Application, out io.Writer, opts ...Option) *CLI {
	c := &CLI{
		application: application,
		out:         out,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run executes one session per configured variant and prints the results in
// configuration order, separated by a blank line.
func (c *CLI) Run(ctx context.Context) error {
	variants := c.application.Config().Variants

	results, err := c.application.Service().RunAll(ctx, variants)
	if err != nil {
		return fmt.Errorf("failed to run sessions: %w", err)
	}

	known := c.application.Provider().Variants()
	for i, r := range results {
		if i > 0 {
			if _, err := fmt.Fprintln(c.out); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(c.out, "Client: testing client code with factory %s:\n%s\n", r.VariantName, r.Output); err != nil {
			return err
		}
		if c.check && !domain.Consistent(r.Output, r.Variant, known) {
			return fmt.Errorf("session %s for %s mixed product families", r.ID, r.VariantName)
		}
	}
	return nil
}

var _ ports.CLI = (*CLI)(nil)
