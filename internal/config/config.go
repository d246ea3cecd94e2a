package config

// SessionSection selects which product families a run uses.
type SessionSection struct {
	// Variants lists the families to run, in order.
	// Any form accepted by domain.ParseVariant: "1", "v1", "variant1".
	Variants []string `yaml:"variants"`
}

// ServerSection contains HTTP session API configuration.
type ServerSection struct {
	// ListenAddr is the address the HTTP API binds to, e.g. ":8080"
	ListenAddr string `yaml:"listen_addr"`

	// ReadHeaderTimeout bounds how long the server waits for request headers.
	// Use Go duration format: "5s", "1m".
	ReadHeaderTimeout string `yaml:"read_header_timeout"`

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout string `yaml:"shutdown_timeout"`
}

// LoggingSection configures the process logger.
type LoggingSection struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// FileConfig represents a family configuration file.
//
// The config format is versioned to support future evolution without breaking changes.
type FileConfig struct {
	// Version is the config file format version (optional, currently always 1)
	Version int `yaml:"version,omitempty"`

	Session SessionSection `yaml:"session"`
	Server  ServerSection  `yaml:"server"`
	Logging LoggingSection `yaml:"logging"`
}
