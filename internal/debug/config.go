package debug

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds debug mode configuration
type Config struct {
	// Enabled is the global debug on/off switch
	Enabled bool `env:"FAMILY_DEBUG"`

	// SingleThreaded runs session batches one after another instead of in parallel
	SingleThreaded bool `env:"FAMILY_DEBUG_SINGLE_THREAD"`
}

// Active is the global debug configuration
var Active Config

// Init initializes debug configuration from environment variables.
// An unparsable value is reported and leaves Active disabled.
func Init() error {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		Active = Config{}
		return fmt.Errorf("parse debug env: %w", err)
	}

	// Single-threaded mode implies debug mode
	if cfg.SingleThreaded {
		cfg.Enabled = true
	}
	Active = cfg
	return nil
}

// IsEnabled returns whether debug mode is enabled
func IsEnabled() bool {
	return Active.Enabled
}
