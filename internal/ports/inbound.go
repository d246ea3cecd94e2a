package ports

import (
	"context"

	"github.com/sufield/family/internal/domain"
)

// SessionService runs factory sessions on behalf of inbound adapters
// (CLI, HTTP API).
//
// Error Contract:
//   - Run returns domain.ErrUnknownVariant if the variant is not wired
//   - RunAll returns domain.ErrNoVariants for an empty request
//   - Both return ctx.Err() if the context ends before a session starts
type SessionService interface {
	// Run executes one session for v
	Run(ctx context.Context, v domain.Variant) (domain.SessionResult, error)

	// RunAll executes one isolated session per variant, possibly concurrently.
	// Results are returned in request order.
	RunAll(ctx context.Context, variants []domain.Variant) ([]domain.SessionResult, error)
}

// CLI is the demonstration harness entry point
type CLI interface {
	Run(ctx context.Context) error
}
