package wsconn

import (
	"context"
	"go.uber.org/zap"
	"net/http"
)

// ConnHandler is called for every upgraded connection. conn is borrowed:
// the handler must Clone it to keep the connection open after returning.
// ctx is cancelled when the request ends or the Handler shuts down.
type ConnHandler func(ctx context.Context, conn *Conn)

// Handler ...
type Handler struct {
	options connOptions
	handler ConnHandler

	rootCtx context.Context
	cancel  func()
}

var _ http.Handler = &Handler{}

// NewHandler ...
func NewHandler(handler ConnHandler, options ...Option) *Handler {
	ctx, cancel := context.WithCancel(context.Background())

	return &Handler{
		options: computeOptions(options...),
		handler: handler,
		rootCtx: ctx,
		cancel:  cancel,
	}
}

// Shutdown cancels the context of every running ConnHandler
func (h *Handler) Shutdown() {
	h.cancel()
}

// ServeHTTP ...
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := h.options.logger

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	rawConn, err := h.options.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error("Fail to upgrade to websocket", zap.Error(err))
		return
	}

	conn, err := share(rawConn, h.options)
	if err != nil {
		return
	}
	defer conn.Destroy()

	go func() {
		select {
		case <-h.rootCtx.Done():
			cancel()
		case <-ctx.Done():
		}
	}()

	h.handler(ctx, &conn)
}
