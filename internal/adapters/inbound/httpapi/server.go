package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sufield/family/internal/ports"
)

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Address           string
	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration
}

// Server serves the session API until its context ends.
type Server struct {
	server          *http.Server
	logger          *zap.Logger
	shutdownTimeout time.Duration
}

// NewServer creates a session API server.
func NewServer(cfg ServerConfig, service ports.SessionService, provider ports.FactoryProvider, logger *zap.Logger) (*Server, error) {
	if cfg.Address == "" {
		return nil, fmt.Errorf("address is required")
	}
	if service == nil {
		return nil, fmt.Errorf("session service is required")
	}
	if provider == nil {
		return nil, fmt.Errorf("factory provider is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.ReadHeaderTimeout <= 0 {
		cfg.ReadHeaderTimeout = 5 * time.Second
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 5 * time.Second
	}

	server := &http.Server{
		Addr:              cfg.Address,
		Handler:           NewRouter(service, provider, logger),
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return &Server{
		server:          server,
		logger:          logger,
		shutdownTimeout: cfg.ShutdownTimeout,
	}, nil
}

// Handler returns the router, for embedding in another server or for tests.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Serve listens on the configured address and blocks until ctx is done or
// the listener fails. Shutdown is graceful, bounded by ShutdownTimeout.
func (s *Server) Serve(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.server.Addr, err)
	}
	return s.ServeListener(ctx, ln)
}

// ServeListener is Serve on an existing listener. The listener is closed on return.
func (s *Server) ServeListener(ctx context.Context, ln net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("session API listening", zap.String("addr", ln.Addr().String()))
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("session API server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if err := s.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
		s.logger.Info("session API stopped")
		return nil
	})

	return g.Wait()
}
