package probingmap

import "go.uber.org/zap"

// Config - Settings applied when creating a ProbingMap.
// Capacity management is automatic and deliberately not part of it.
type Config struct {
	// Logger receives a debug entry each time the map grows.
	// If nil, a no-op logger is used.
	Logger *zap.Logger
}

// Option - Functional option modifying a Config
type Option func(*Config)

// WithLogger - Sets the logger that growth events are reported to
func WithLogger(logger *zap.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// newConfig - Returns a Config with defaults and all options applied
func newConfig(opts ...Option) (config Config) {
	for _, opt := range opts {
		opt(&config)
	}
	if config.Logger == nil {
		config.Logger = zap.NewNop()
	}

	return
}
