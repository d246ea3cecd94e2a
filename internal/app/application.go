package app

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/sufield/family/internal/bg"
	"github.com/sufield/family/internal/config"
	"github.com/sufield/family/internal/debug"
	"github.com/sufield/family/internal/ports"
)

// Application is the composition root that wires all dependencies
type Application struct {
	config   *config.Validated
	provider ports.FactoryProvider
	service  *Service
	logger   *zap.Logger
}

// Bootstrap wires the application from validated configuration.
//
// Every configured variant must be wired in provider; an unwired one fails
// startup with domain.ErrUnknownVariant instead of failing the first session.
// Sessions run one at a time when debug single-threaded mode is active.
func Bootstrap(cfg *config.Validated, provider ports.FactoryProvider, logger *zap.Logger) (*Application, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if provider == nil {
		return nil, errors.New("factory provider cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	for _, v := range cfg.Variants {
		if _, err := provider.Factory(v); err != nil {
			return nil, fmt.Errorf("configured variant not available: %w", err)
		}
	}

	service := NewService(provider,
		WithRunner(bg.ForMode(debug.Active.SingleThreaded)),
		WithLogger(logger),
	)

	logger.Debug("application bootstrapped",
		zap.Int("configured_variants", len(cfg.Variants)),
		zap.Int("wired_variants", len(provider.Variants())))

	return &Application{
		config:   cfg,
		provider: provider,
		service:  service,
		logger:   logger,
	}, nil
}

// Config returns the validated configuration
func (a *Application) Config() *config.Validated {
	return a.config
}

// Service returns the session service
func (a *Application) Service() ports.SessionService {
	return a.service
}

// Provider returns the variant → factory table
func (a *Application) Provider() ports.FactoryProvider {
	return a.provider
}

// Logger returns the structured logger
func (a *Application) Logger() *zap.Logger {
	return a.logger
}

// Close flushes buffered log entries.
func (a *Application) Close() {
	// Sync on stderr reports EINVAL/ENOTTY on some platforms
	_ = a.logger.Sync()
}
