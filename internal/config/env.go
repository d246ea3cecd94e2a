package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// envOverrides lists the environment variables that override file values.
// Unset variables leave the file value in place.
type envOverrides struct {
	Variants   []string `env:"FAMILY_VARIANTS" envSeparator:","`
	ListenAddr string   `env:"FAMILY_LISTEN_ADDR"`
	LogLevel   string   `env:"FAMILY_LOG_LEVEL"`
	LogFormat  string   `env:"FAMILY_LOG_FORMAT"`
}

// FromEnv overrides cfg values with environment variables if set.
func FromEnv(cfg *FileConfig) error {
	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	if len(o.Variants) > 0 {
		variants := make([]string, 0, len(o.Variants))
		for _, v := range o.Variants {
			if v = strings.TrimSpace(v); v != "" {
				variants = append(variants, v)
			}
		}
		cfg.Session.Variants = variants
	}
	if o.ListenAddr != "" {
		cfg.Server.ListenAddr = o.ListenAddr
	}
	if o.LogLevel != "" {
		cfg.Logging.Level = o.LogLevel
	}
	if o.LogFormat != "" {
		cfg.Logging.Format = o.LogFormat
	}
	return nil
}
