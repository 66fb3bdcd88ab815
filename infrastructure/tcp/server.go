package tcp

import (
	"context"
	goerrors "errors"
	"fmt"
	"log/slog"
	"net"
	"roomchat/contract"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	minAcceptDelay = 5 * time.Millisecond
	maxAcceptDelay = time.Second
)

// Handler serves one accepted connection until it is done with it.
type Handler interface {
	Serve(ctx context.Context, conn contract.LineConn)
}

// Server accepts TCP clients and hands each one to the handler in its own
// goroutine. It is a supervised worker: canceling the context closes the
// listener and every open connection, then waits for the handlers.
type Server struct {
	log           *slog.Logger
	address       string
	handler       Handler
	maxLineLength int
	idleTimeout   time.Duration

	mu       sync.Mutex
	listener net.Listener
	conns    map[*Conn]struct{}
	wg       sync.WaitGroup
}

func NewServer(log *slog.Logger, address string, handler Handler,
	maxLineLength int, idleTimeout time.Duration) *Server {
	return &Server{
		log:           log,
		address:       address,
		handler:       handler,
		maxLineLength: maxLineLength,
		idleTimeout:   idleTimeout,
		conns:         make(map[*Conn]struct{}),
	}
}

// Listen binds the address. Calling it before Run lets the caller fail fast
// on a busy port and read the bound address.
func (s *Server) Listen() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		return nil
	}
	listener, err := net.Listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.address, err)
	}
	s.listener = listener
	return nil
}

// Addr is the bound address, or the configured one before Listen.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return s.address
	}
	return s.listener.Addr().String()
}

func (s *Server) Run(ctx context.Context) error {
	if err := s.Listen(); err != nil {
		return err
	}
	s.mu.Lock()
	listener := s.listener
	s.mu.Unlock()
	s.log.Info("Starting chat server", "address", listener.Addr().String(), "at", time.Now().UTC())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		<-gctx.Done()
		s.shutdown(listener)
		return nil
	})
	g.Go(func() error {
		return s.acceptLoop(gctx, listener)
	})

	err := g.Wait()
	s.wg.Wait()
	s.log.Info("Chat server stopped", "address", listener.Addr().String())
	return err
}

// acceptLoop keeps accepting until ctx is done. Accept errors such as
// EMFILE are retried with a growing delay so live connections survive them.
func (s *Server) acceptLoop(ctx context.Context, listener net.Listener) error {
	var delay time.Duration
	for {
		raw, err := listener.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if goerrors.Is(err, net.ErrClosed) {
				return fmt.Errorf("accept failed: %w", err)
			}
			delay = nextAcceptDelay(delay)
			s.log.Warn("Accept failed, retrying", "error", err, "retry_in", delay)
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(delay):
			}
			continue
		}
		delay = 0
		conn := NewConn(raw, s.maxLineLength, s.idleTimeout)
		if !s.track(conn) {
			_ = conn.Close()
			return nil
		}
		s.wg.Add(1)
		go s.serve(ctx, conn)
	}
}

func nextAcceptDelay(delay time.Duration) time.Duration {
	if delay == 0 {
		return minAcceptDelay
	}
	return min(delay*2, maxAcceptDelay)
}

func (s *Server) serve(ctx context.Context, conn *Conn) {
	defer s.wg.Done()
	defer func() {
		s.untrack(conn)
		_ = conn.Close()
	}()
	s.log.Debug("Connection accepted", "remote", conn.RemoteAddr())
	s.handler.Serve(ctx, conn)
}

// track returns false once the server is shutting down.
func (s *Server) track(conn *Conn) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return false
	}
	s.conns[conn] = struct{}{}
	return true
}

func (s *Server) untrack(conn *Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.conns, conn)
}

func (s *Server) shutdown(listener net.Listener) {
	s.mu.Lock()
	conns := make([]*Conn, 0, len(s.conns))
	for conn := range s.conns {
		conns = append(conns, conn)
	}
	s.listener = nil
	s.mu.Unlock()

	_ = listener.Close()
	for _, conn := range conns {
		_ = conn.Close()
	}
	s.log.Info("Closed listener and connections", "connections", len(conns))
}
