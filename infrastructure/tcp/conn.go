package tcp

import (
	"bufio"
	"context"
	goerrors "errors"
	"io"
	"net"
	"roomchat/errors"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// Conn is one client socket speaking newline-terminated text.
// Reads happen only from the goroutine serving the connection; Send may be
// called from any goroutine and writes whole lines under a mutex.
type Conn struct {
	conn        net.Conn
	scanner     *bufio.Scanner
	idleTimeout time.Duration
	writeMu     sync.Mutex
	closed      atomic.Bool
}

func NewConn(conn net.Conn, maxLineLength int, idleTimeout time.Duration) *Conn {
	scanner := bufio.NewScanner(conn)
	// room for the terminating "\r\n"
	scanner.Buffer(make([]byte, 0, min(maxLineLength+2, 4096)), maxLineLength+2)
	return &Conn{
		conn:        conn,
		scanner:     scanner,
		idleTimeout: idleTimeout,
	}
}

// ReadLine returns the next line without its terminator. It returns io.EOF
// when the peer closed the socket and ErrLineTooLong when a line exceeds the
// configured limit. Cancellation is obtained by closing the connection.
func (c *Conn) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if c.idleTimeout > 0 {
		if err := c.conn.SetReadDeadline(time.Now().Add(c.idleTimeout)); err != nil {
			return "", err
		}
	}
	if !c.scanner.Scan() {
		err := c.scanner.Err()
		switch {
		case err == nil:
			return "", io.EOF
		case goerrors.Is(err, bufio.ErrTooLong):
			return "", errors.ErrLineTooLong
		case c.closed.Load():
			return "", io.EOF
		default:
			return "", err
		}
	}
	return strings.TrimSuffix(c.scanner.Text(), "\r"), nil
}

// Send writes line followed by "\n". The context deadline, when present,
// bounds the write. A failed write may leave part of the line on the wire,
// so the connection is closed and later sends return ErrSinkClosed.
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
	if _, err := io.WriteString(c.conn, line+"\n"); err != nil {
		if !c.closed.Swap(true) {
			_ = c.conn.Close()
		}
		return err
	}
	return nil
}

func (c *Conn) RemoteAddr() string {
	return c.conn.RemoteAddr().String()
}

// Close is idempotent.
func (c *Conn) Close() error {
	if c.closed.Swap(true) {
		return nil
	}
	return c.conn.Close()
}
