package debug

import (
	"sync"

	"go.uber.org/zap"
)

// Logger interface for debug logging.
// Output is produced only when debug mode is enabled.
//
// Example usage:
//
//	logger := debug.GetLogger()
//	logger.Debugf("session %s using %s", id, variant)
type Logger interface {
	// Debugf logs a formatted debug message
	Debugf(format string, args ...any)
	// Debug logs debug arguments
	Debug(args ...any)
}

// nopLogger does nothing (used when debug mode is disabled).
type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}

func (nopLogger) Debug(...any) {}

// zapLogger forwards to a named zap sugared logger.
type zapLogger struct {
	s *zap.SugaredLogger
}

func (z zapLogger) Debugf(format string, args ...any) {
	z.s.Debugf(format, args...)
}

func (z zapLogger) Debug(args ...any) {
	z.s.Debug(args...)
}

var (
	// l is the private global debug logger (use GetLogger() to access)
	l    Logger = nopLogger{}
	once sync.Once
)

// GetLogger returns the configured debug logger.
// Always use this function to access the logger instead of storing a reference.
func GetLogger() Logger {
	return l
}

// InitLogger installs a debug logger derived from base when debug mode is on.
// Call it after Init(). Only the first call has any effect.
//
// base must be built at debug level for messages to appear; when it is nil,
// a development logger is created.
func InitLogger(base *zap.Logger) {
	once.Do(func() {
		if !Active.Enabled {
			return
		}
		if base == nil {
			var err error
			if base, err = zap.NewDevelopment(); err != nil {
				return
			}
		}
		l = zapLogger{s: base.Named("debug").Sugar()}
		l.Debug("Debug logging enabled")
	})
}
