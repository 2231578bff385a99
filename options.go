package nxcube

import (
	"io"

	"github.com/charmbracelet/log"
)

// DefaultGuardCeiling bounds every retry loop in the solver. No loop has been
// observed to need more than 13 passes on a reachable arrangement.
const DefaultGuardCeiling = 15

// Option configures Solver behavior.
type Option func(*config)

type config struct {
	logger       *log.Logger
	guardCeiling int
	annotations  bool
}

func defaultConfig() *config {
	return &config{
		logger:       log.New(io.Discard),
		guardCeiling: DefaultGuardCeiling,
		annotations:  true,
	}
}

// WithLogger sets the logger the solver reports phase progress to.
// By default nothing is logged.
func WithLogger(logger *log.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithGuardCeiling sets the iteration limit of the solver's retry loops.
// A run that needs more fails with ErrGuardCeilingExceeded.
// Values below 1 are ignored.
func WithGuardCeiling(n int) Option {
	return func(c *config) {
		if n >= 1 {
			c.guardCeiling = n
		}
	}
}

// WithAnnotations enables or disables Annotation steps.
// When disabled (default enabled), Steps yields moves only.
func WithAnnotations(enabled bool) Option {
	return func(c *config) {
		c.annotations = enabled
	}
}
