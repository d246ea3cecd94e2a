package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sufield/family/internal/domain"
	"github.com/sufield/family/internal/logging"
)

// Validated is a configuration whose values have been parsed and checked.
type Validated struct {
	Variants          []domain.Variant
	ListenAddr        string
	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration
	LogLevel          string
	LogFormat         string
}

// Validate checks cfg and converts it to typed values.
//
// Ensures:
//   - Version is 0 (unset) or 1
//   - session.variants is non-empty and every entry parses as a variant
//   - durations parse and are positive (empty fields take defaults)
//   - logging.level and logging.format are recognised (empty fields take defaults)
//
// Validate does not check that a factory is wired for each variant; that is
// the FactoryProvider's job at session time.
func Validate(cfg FileConfig) (*Validated, error) {
	if cfg.Version != 0 && cfg.Version != 1 {
		return nil, fmt.Errorf("unsupported config version %d", cfg.Version)
	}

	if len(cfg.Session.Variants) == 0 {
		return nil, errors.New("session.variants must list at least one variant")
	}
	variants, err := domain.ParseVariants(cfg.Session.Variants)
	if err != nil {
		return nil, fmt.Errorf("invalid session.variants: %w", err)
	}

	readHeader, err := parsePositiveDuration("server.read_header_timeout", cfg.Server.ReadHeaderTimeout, DefaultReadHeaderTimeout)
	if err != nil {
		return nil, err
	}
	shutdown, err := parsePositiveDuration("server.shutdown_timeout", cfg.Server.ShutdownTimeout, DefaultShutdownTimeout)
	if err != nil {
		return nil, err
	}

	level := orDefault(cfg.Logging.Level, DefaultLogLevel)
	if _, err := logging.ParseLevel(level); err != nil {
		return nil, fmt.Errorf("invalid logging.level: %w", err)
	}
	format := strings.ToLower(orDefault(cfg.Logging.Format, DefaultLogFormat))
	if format != logging.FormatConsole && format != logging.FormatJSON {
		return nil, fmt.Errorf("invalid logging.format %q (want %s or %s)", format, logging.FormatConsole, logging.FormatJSON)
	}

	return &Validated{
		Variants:          variants,
		ListenAddr:        orDefault(cfg.Server.ListenAddr, DefaultListenAddr),
		ReadHeaderTimeout: readHeader,
		ShutdownTimeout:   shutdown,
		LogLevel:          level,
		LogFormat:         format,
	}, nil
}

func parsePositiveDuration(key, value, def string) (time.Duration, error) {
	d, err := time.ParseDuration(orDefault(value, def))
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %s", key, d)
	}
	return d, nil
}

func orDefault(value, def string) string {
	if value == "" {
		return def
	}
	return value
}
