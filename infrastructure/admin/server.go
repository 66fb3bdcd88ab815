// Package admin serves the operator HTTP surface: liveness, Prometheus
// metrics, the latest heartbeat snapshot and the WebSocket entry point.
package admin

import (
	"context"
	"encoding/json"
	goerrors "errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"roomchat/observability"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 5 * time.Second

// WebSocketEndpoint is an http.Handler owning hijacked connections.
type WebSocketEndpoint interface {
	http.Handler
	CloseAll() int
}

type Server struct {
	log        *slog.Logger
	address    string
	gatherer   prometheus.Gatherer
	monitoring *observability.MonitoringManager
	ws         WebSocketEndpoint

	mu       sync.Mutex
	listener net.Listener
}

func NewServer(log *slog.Logger, address string, gatherer prometheus.Gatherer,
	monitoring *observability.MonitoringManager, ws WebSocketEndpoint) *Server {
	return &Server{
		log:        log,
		address:    address,
		gatherer:   gatherer,
		monitoring: monitoring,
		ws:         ws,
	}
}

// Router builds the chi routes. /ws is only mounted when a WebSocket
// endpoint was given.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = fmt.Fprint(w, "ok")
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	r.Get("/stats", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(s.monitoring.GetLatest())
	})
	if s.ws != nil {
		r.Handle("/ws", s.ws)
	}
	return r
}

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

func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return s.address
	}
	return s.listener.Addr().String()
}

// Run serves until ctx is canceled, then shuts the HTTP server down and
// closes the WebSocket clients it hijacked.
func (s *Server) Run(ctx context.Context) error {
	if err := s.Listen(); err != nil {
		return err
	}
	s.mu.Lock()
	listener := s.listener
	s.mu.Unlock()

	server := &http.Server{
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.log.Info("Starting admin server", "address", listener.Addr().String(), "at", time.Now().UTC())
		if err := server.Serve(listener); err != nil && !goerrors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("admin server error: %w", err)
		}
		close(errChan)
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-errChan:
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	_ = server.Shutdown(shutdownCtx)
	if s.ws != nil {
		closed := s.ws.CloseAll()
		s.log.Info("Closed WebSocket connections", "connections", closed)
	}

	s.mu.Lock()
	s.listener = nil
	s.mu.Unlock()
	s.log.Info("Admin server stopped")
	return runErr
}
