package app

import (
	logAdapter "github.com/bft-labs/enochian/internal/adapters/log"
	"github.com/bft-labs/enochian/internal/domain"
	"github.com/bft-labs/enochian/internal/ports"
)

// Option configures optional behavior of a Pipeline.
type Option func(*options)

type options struct {
	logger ports.Logger
	policy domain.OverflowPolicy
}

func defaultOptions() options {
	return options{
		logger: logAdapter.NewNoopLogger(),
		policy: domain.OverflowWrap,
	}
}

// WithLogger sets the logger used by every pipeline stage.
// If not provided, a no-op logger is used (no output).
func WithLogger(logger ports.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithOverflowPolicy selects how out-of-range values are stored in a byte.
// Defaults to domain.OverflowWrap.
func WithOverflowPolicy(p domain.OverflowPolicy) Option {
	return func(o *options) {
		o.policy = p
	}
}
