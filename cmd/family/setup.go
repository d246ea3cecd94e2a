package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/sufield/family/internal/adapters/outbound/compose"
	"github.com/sufield/family/internal/app"
	"github.com/sufield/family/internal/config"
	"github.com/sufield/family/internal/debug"
	"github.com/sufield/family/internal/logging"
)

// parseFlags parses args and reports whether the command should continue.
// -h/--help prints usage and stops without an error.
func parseFlags(fs *flag.FlagSet, args []string) (bool, error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// loadConfig reads path when given, otherwise FAMILY_CONFIG when set,
// otherwise the built-in defaults. Environment overrides apply in every case.
func loadConfig(path string) (config.FileConfig, error) {
	if path == "" {
		path = os.Getenv(config.EnvConfigPath)
	}
	if path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		return cfg, nil
	}

	cfg := config.Default()
	if err := config.FromEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// bootstrap validates cfg and wires the application over the shipped
// factory registry.
func bootstrap(cfg config.FileConfig) (*app.Application, error) {
	validated, err := config.Validate(cfg)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if err := debug.Init(); err != nil {
		return nil, fmt.Errorf("failed to read debug settings: %w", err)
	}

	logger, debugBase, err := newLoggers(validated)
	if err != nil {
		return nil, err
	}
	debug.InitLogger(debugBase)

	application, err := app.Bootstrap(validated, compose.NewRegistry(), logger)
	if err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("failed to bootstrap application: %w", err)
	}
	return application, nil
}

// newLoggers builds the application logger at the configured level and the
// base for the debug logger. In debug mode the debug base is built at debug
// level whatever logging.level says; otherwise it is the application logger.
func newLoggers(validated *config.Validated) (*zap.Logger, *zap.Logger, error) {
	logger, err := logging.New(validated.LogLevel, validated.LogFormat)
	if err != nil {
		return nil, nil, err
	}
	if !debug.Active.Enabled {
		return logger, logger, nil
	}

	debugBase, err := logging.New("debug", validated.LogFormat)
	if err != nil {
		_ = logger.Sync()
		return nil, nil, err
	}
	return logger, debugBase, nil
}
