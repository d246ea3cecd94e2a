package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the variable holding the config file path for the
// convenience entry points.
const EnvConfigPath = "FAMILY_CONFIG"

// Load reads and parses a configuration file, then applies environment overrides.
func Load(path string) (FileConfig, error) {
	var cfg FileConfig

	cleanPath := filepath.Clean(path)
	data, err := os.ReadFile(cleanPath) // #nosec G304 - Config file path is trusted (from admin/user)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err = Parse(data)
	if err != nil {
		return cfg, err
	}

	if err := FromEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Parse decodes YAML config bytes. Unknown keys are rejected; an empty
// document yields the zero FileConfig.
func Parse(data []byte) (FileConfig, error) {
	var cfg FileConfig

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// ResolvePath returns the config path from FAMILY_CONFIG.
func ResolvePath() (string, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return path, nil
	}
	return "", fmt.Errorf("%s environment variable not set; either set %s or pass an explicit config path", EnvConfigPath, EnvConfigPath)
}
