package sharedptr

import (
	"go.uber.org/zap"
)

type handleOptions struct {
	allocator Allocator
	logger    *zap.Logger
}

// Option ...
type Option func(opts *handleOptions)

func computeHandleOptions(options ...Option) handleOptions {
	result := handleOptions{
		allocator: DefaultAllocator,
		logger:    zap.NewNop(),
	}
	for _, o := range options {
		o(&result)
	}
	return result
}

// WithAllocator ...
func WithAllocator(a Allocator) Option {
	return func(opts *handleOptions) {
		opts.allocator = a
	}
}

// WithLogger ...
func WithLogger(logger *zap.Logger) Option {
	return func(opts *handleOptions) {
		opts.logger = logger
	}
}
