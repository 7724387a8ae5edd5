package controller

import (
	"log/slog"

	"github.com/riglab/dembones/pkg/domain"
	"github.com/riglab/dembones/pkg/ports"
)

// Option defines a functional option for configuring the Controller.
type Option func(*Controller)

// WithLogger sets a structured logger for lifecycle events.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithStore persists the source/target pair through the given store whenever
// it changes, so separate CLI invocations share one session.
func WithStore(store ports.StateStore) Option {
	return func(c *Controller) {
		c.store = store
	}
}

// WithState seeds the controller with a previously persisted pair.
func WithState(state domain.ToolState) Option {
	return func(c *Controller) {
		c.state = state
	}
}
