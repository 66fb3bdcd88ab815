// Package ws exposes the chat over WebSocket. Each text frame carries
// exactly one line, in both directions.
package ws

import (
	"context"
	goerrors "errors"
	"io"
	"roomchat/errors"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
)

type Conn struct {
	conn        *websocket.Conn
	remote      string
	idleTimeout time.Duration
	writeMu     sync.Mutex
	closed      atomic.Bool
}

func NewConn(conn *websocket.Conn, remote string, maxLineLength int, idleTimeout time.Duration) *Conn {
	conn.SetReadLimit(int64(maxLineLength))
	return &Conn{conn: conn, remote: remote, idleTimeout: idleTimeout}
}

// ReadLine returns the payload of the next text frame. Binary frames are
// skipped. A close frame from the peer is reported as io.EOF.
func (c *Conn) ReadLine(ctx context.Context) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if c.idleTimeout > 0 {
			if err := c.conn.SetReadDeadline(time.Now().Add(c.idleTimeout)); err != nil {
				return "", err
			}
		}
		messageType, payload, err := c.conn.ReadMessage()
		if err != nil {
			switch {
			case websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseNoStatusReceived):
				return "", io.EOF
			case goerrors.Is(err, websocket.ErrReadLimit):
				return "", errors.ErrLineTooLong
			case c.closed.Load():
				return "", io.EOF
			default:
				return "", err
			}
		}
		if messageType != websocket.TextMessage {
			continue
		}
		return strings.TrimSuffix(strings.TrimSuffix(string(payload), "\n"), "\r"), nil
	}
}

// Send writes line as one text frame.
func (c *Conn) Send(ctx context.Context, line string) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if c.closed.Load() {
		return errors.ErrSinkClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	deadline, _ := ctx.Deadline()
	if err := c.conn.SetWriteDeadline(deadline); err != nil {
		return err
	}
	return c.conn.WriteMessage(websocket.TextMessage, []byte(line))
}

func (c *Conn) RemoteAddr() string {
	return c.remote
}

// Close sends a close frame when possible and releases the socket.
func (c *Conn) Close() error {
	if c.closed.Swap(true) {
		return nil
	}
	c.writeMu.Lock()
	_ = c.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(time.Second))
	c.writeMu.Unlock()
	return c.conn.Close()
}
