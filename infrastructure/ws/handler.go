package ws

import (
	"context"
	"log/slog"
	"net/http"
	"roomchat/contract"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// ConnHandler serves one upgraded connection until it is done with it.
type ConnHandler interface {
	Serve(ctx context.Context, conn contract.LineConn)
}

// Handler upgrades HTTP requests and serves them exactly like TCP clients.
type Handler struct {
	log           *slog.Logger
	handler       ConnHandler
	upgrader      websocket.Upgrader
	maxLineLength int
	idleTimeout   time.Duration

	mu    sync.Mutex
	conns map[*Conn]struct{}
}

func NewHandler(log *slog.Logger, handler ConnHandler, maxLineLength int, idleTimeout time.Duration) *Handler {
	return &Handler{
		log:     log,
		handler: handler,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		maxLineLength: maxLineLength,
		idleTimeout:   idleTimeout,
		conns:         make(map[*Conn]struct{}),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. WebSocket endpoint only accepts GET requests.", http.StatusMethodNotAllowed)
		return
	}
	raw, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("WebSocket upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}

	conn := NewConn(raw, r.RemoteAddr, h.maxLineLength, h.idleTimeout)
	h.track(conn)
	defer func() {
		h.untrack(conn)
		_ = conn.Close()
	}()
	h.log.Debug("WebSocket connection accepted", "remote", r.RemoteAddr)
	h.handler.Serve(r.Context(), conn)
}

// CloseAll closes every upgraded connection. http.Server.Shutdown does not
// track hijacked connections, so the owner calls this on shutdown.
func (h *Handler) CloseAll() int {
	h.mu.Lock()
	conns := make([]*Conn, 0, len(h.conns))
	for conn := range h.conns {
		conns = append(conns, conn)
	}
	h.mu.Unlock()

	for _, conn := range conns {
		_ = conn.Close()
	}
	return len(conns)
}

func (h *Handler) track(conn *Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[conn] = struct{}{}
}

func (h *Handler) untrack(conn *Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, conn)
}
