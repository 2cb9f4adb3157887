package wsconn

import (
	"github.com/QuangTung97/sharedptr"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"time"
)

type connOptions struct {
	dialer       *websocket.Dialer
	upgrader     *websocket.Upgrader
	logger       *zap.Logger
	closeTimeout time.Duration
	allocator    sharedptr.Allocator
}

// Option ...
type Option func(opts *connOptions)

func computeOptions(options ...Option) connOptions {
	opts := connOptions{
		dialer:       websocket.DefaultDialer,
		upgrader:     &websocket.Upgrader{},
		logger:       zap.NewNop(),
		closeTimeout: 5 * time.Second,
		allocator:    sharedptr.DefaultAllocator,
	}
	for _, o := range options {
		o(&opts)
	}
	return opts
}

// WithDialer ...
func WithDialer(dialer *websocket.Dialer) Option {
	return func(opts *connOptions) {
		opts.dialer = dialer
	}
}

// WithUpgrader ...
func WithUpgrader(upgrader *websocket.Upgrader) Option {
	return func(opts *connOptions) {
		opts.upgrader = upgrader
	}
}

// WithLogger ...
func WithLogger(logger *zap.Logger) Option {
	return func(opts *connOptions) {
		opts.logger = logger
	}
}

// WithCloseTimeout is the deadline for writing the close frame when the last owner releases the connection
func WithCloseTimeout(d time.Duration) Option {
	return func(opts *connOptions) {
		opts.closeTimeout = d
	}
}

// WithAllocator ...
func WithAllocator(a sharedptr.Allocator) Option {
	return func(opts *connOptions) {
		opts.allocator = a
	}
}
