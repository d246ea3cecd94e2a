package config

// Default values applied by Default() and by Validate for empty fields
const (
	DefaultListenAddr        = ":8080"
	DefaultReadHeaderTimeout = "5s"
	DefaultShutdownTimeout   = "5s"
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "console"
)

// Default returns a configuration that runs every shipped family.
func Default() FileConfig {
	return FileConfig{
		Version: 1,
		Session: SessionSection{
			Variants: []string{"1", "2"},
		},
		Server: ServerSection{
			ListenAddr:        DefaultListenAddr,
			ReadHeaderTimeout: DefaultReadHeaderTimeout,
			ShutdownTimeout:   DefaultShutdownTimeout,
		},
		Logging: LoggingSection{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
