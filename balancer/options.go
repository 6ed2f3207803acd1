package balancer

import (
	"io"
	"log/slog"
)

// DefaultVerify enables the integer conservation re-check after normalization.
const DefaultVerify = true

// Option configures a Balance/Analyze call.
type Option func(*Options)

// Options holds the resolved configuration.
type Options struct {
	logger *slog.Logger
	verify bool
}

// WithLogger routes pipeline diagnostics to l. Nil keeps the default (discard).
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithVerify toggles the conservation re-check.
func WithVerify(v bool) Option {
	return func(o *Options) { o.verify = v }
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		verify: DefaultVerify,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
