package logger

import (
	"io"
	"strings"
	"time"
)

// Environment selects formatting, debug suppression and forwarding defaults.
type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
	Test        Environment = "test"
)

// ParseEnvironment accepts the APP_ENV spellings used by services
// (dev, development, local, prod, production, test). Anything else is
// treated as production so an unknown value never enables debug output.
func ParseEnvironment(s string) Environment {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dev", "development", "local":
		return Development
	case "test", "testing":
		return Test
	default:
		return Production
	}
}

// Config is passed explicitly to New; the logger never reads process-wide
// state to decide how to behave.
type Config struct {
	Environment Environment
	// SinkEnabled turns forwarding to the aggregation sink on. The security
	// sink is always used when one is installed.
	SinkEnabled bool
	// Level is the minimum logrus level for local output and aggregation
	// ("debug", "info", "warning", "error"). Security entries ignore it.
	Level string
	// Format is "text" or "json". Empty picks text in development and json
	// elsewhere.
	Format string

	Output   io.Writer
	Fallback io.Writer

	QueueSize      int
	Workers        int
	MaxAttempts    int
	RetryInterval  time.Duration
	ForwardTimeout time.Duration
}

// ApplyDefaults fills zero values.
func (c *Config) ApplyDefaults() {
	if c.Environment == "" {
		c.Environment = Production
	}
	if c.Level == "" {
		if c.Environment == Development {
			c.Level = "debug"
		} else {
			c.Level = "info"
		}
	}
	if c.Format == "" {
		if c.Environment == Development {
			c.Format = "text"
		} else {
			c.Format = "json"
		}
	}
	if c.QueueSize <= 0 {
		c.QueueSize = 1024
	}
	if c.Workers <= 0 {
		c.Workers = 2
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = 3
	}
	if c.RetryInterval <= 0 {
		c.RetryInterval = 100 * time.Millisecond
	}
	if c.ForwardTimeout <= 0 {
		c.ForwardTimeout = 5 * time.Second
	}
}
