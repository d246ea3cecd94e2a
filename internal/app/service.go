package app

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sufield/family/internal/bg"
	"github.com/sufield/family/internal/debug"
	"github.com/sufield/family/internal/domain"
	"github.com/sufield/family/internal/ports"
)

// Service runs factory sessions for inbound adapters.
// It is safe for concurrent use; it holds no per-session state.
type Service struct {
	provider ports.FactoryProvider
	runner   bg.Runner
	logger   *zap.Logger
	newID    func() string
}

// Option configures a Service
type Option func(*Service)

// WithRunner sets how RunAll dispatches sessions (default bg.Async)
func WithRunner(r bg.Runner) Option {
	return func(s *Service) {
		if r != nil {
			s.runner = r
		}
	}
}

// WithLogger sets the structured logger (default: no-op)
func WithLogger(l *zap.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithIDGenerator replaces the UUID session ID source
func WithIDGenerator(fn func() string) Option {
	return func(s *Service) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// NewService creates a session service backed by provider
func NewService(provider ports.FactoryProvider, opts ...Option) *Service {
	s := &Service{
		provider: provider,
		runner:   bg.Async{},
		logger:   zap.NewNop(),
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run executes one session for v.
//
// A provider that wires a factory crossing two families still gets its
// session: the output is returned as is and an error entry is logged.
func (s *Service) Run(ctx context.Context, v domain.Variant) (domain.SessionResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.SessionResult{}, err
	}

	factory, err := s.provider.Factory(v)
	if err != nil {
		return domain.SessionResult{}, err
	}
	if factory == nil {
		return domain.SessionResult{}, domain.ErrNilFactory
	}

	id := s.newID()
	output := RunSession(factory)
	if !domain.Consistent(output, v, s.provider.Variants()) {
		s.logger.Error("session output mixes product families",
			zap.String("session_id", id),
			zap.Stringer("variant", v))
	}

	debug.GetLogger().Debugf("session %s ran %s", id, v)
	s.logger.Debug("session complete",
		zap.String("session_id", id),
		zap.Stringer("variant", v))

	return domain.NewSessionResult(id, v, output), nil
}

// RunAll executes one isolated session per entry of variants and returns the
// results in request order. Every session gets fresh products; nothing is
// shared between them, so the runner may execute them in parallel.
//
// If any session fails, RunAll returns the joined errors and no results.
func (s *Service) RunAll(ctx context.Context, variants []domain.Variant) ([]domain.SessionResult, error) {
	if len(variants) == 0 {
		return nil, domain.ErrNoVariants
	}

	results := make([]domain.SessionResult, len(variants))
	errs := make([]error, len(variants))

	var wg sync.WaitGroup
	wg.Add(len(variants))
	for i, v := range variants {
		s.runner.Do(func() {
			defer wg.Done()
			results[i], errs[i] = s.Run(ctx, v)
		})
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	s.logger.Info("session batch complete", zap.Int("sessions", len(results)))
	return results, nil
}

var _ ports.SessionService = (*Service)(nil)
