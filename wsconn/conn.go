// Package wsconn shares one websocket connection between many owners.
// The connection is closed gracefully when the last owner destroys its handle.
package wsconn

import (
	"context"
	"github.com/QuangTung97/sharedptr"
	"github.com/gorilla/websocket"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"time"
)

// Conn ...
type Conn = sharedptr.Shared[websocket.Conn]

type connCloser struct {
	logger  *zap.Logger
	timeout time.Duration
}

func (c connCloser) Delete(conn *websocket.Conn) {
	if conn == nil {
		return
	}

	err := conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(c.timeout))
	if err == websocket.ErrCloseSent {
		err = nil
	}
	err = multierr.Append(err, conn.Close())
	if err != nil {
		c.logger.Warn("Error while close conn",
			zap.String("remoteAddr", conn.RemoteAddr().String()), zap.Error(err))
	}
}

func share(conn *websocket.Conn, opts connOptions) (Conn, error) {
	return sharedptr.NewWithDeleter(conn,
		connCloser{logger: opts.logger, timeout: opts.closeTimeout},
		sharedptr.WithLogger(opts.logger),
		sharedptr.WithAllocator(opts.allocator),
	)
}

// Dial connects to url and returns the first owner of the connection
func Dial(ctx context.Context, url string, options ...Option) (Conn, error) {
	opts := computeOptions(options...)

	conn, _, err := opts.dialer.DialContext(ctx, url, nil)
	if err != nil {
		opts.logger.Error("Dial server failed", zap.String("url", url), zap.Error(err))
		return Conn{}, err
	}
	return share(conn, opts)
}
