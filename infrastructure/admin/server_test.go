package admin

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"roomchat/observability"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

type fakeWebSocket struct {
	closed int
}

func (f *fakeWebSocket) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusTeapot)
}

func (f *fakeWebSocket) CloseAll() int {
	f.closed++
	return 0
}

func newTestServer(ws WebSocketEndpoint) (*Server, *observability.MonitoringManager) {
	registry := prometheus.NewRegistry()
	monitoring := observability.NewMonitoringManager(registry)
	return NewServer(slog.Default(), "127.0.0.1:0", registry, monitoring, ws), monitoring
}

func get(t *testing.T, handler http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestRouter_Healthz(t *testing.T) {
	server, _ := newTestServer(nil)

	rec := get(t, server.Router(), "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", rec.Body.String())
}

func TestRouter_Metrics(t *testing.T) {
	server, monitoring := newTestServer(nil)
	monitoring.IncrConnections()
	monitoring.IncrCommand("create")

	rec := get(t, server.Router(), "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "roomchat_connections_total 1")
	require.Contains(t, rec.Body.String(), `roomchat_commands_total{command="create"} 1`)
}

func TestRouter_Stats(t *testing.T) {
	server, monitoring := newTestServer(nil)
	monitoring.Update(observability.MonitoringStats{Sessions: 4, Rooms: 2})

	rec := get(t, server.Router(), "/stats")
	require.Equal(t, http.StatusOK, rec.Code)

	var stats observability.MonitoringStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	require.Equal(t, 4, stats.Sessions)
	require.Equal(t, 2, stats.Rooms)
}

func TestRouter_WebSocketMount(t *testing.T) {
	withoutWS, _ := newTestServer(nil)
	require.Equal(t, http.StatusNotFound, get(t, withoutWS.Router(), "/ws").Code)

	withWS, _ := newTestServer(&fakeWebSocket{})
	require.Equal(t, http.StatusTeapot, get(t, withWS.Router(), "/ws").Code)
}

func TestServer_RunAndShutdown(t *testing.T) {
	req := require.New(t)
	ws := &fakeWebSocket{}
	server, _ := newTestServer(ws)
	req.NoError(server.Listen())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- server.Run(ctx) }()

	resp, err := http.Get("http://" + server.Addr() + "/healthz")
	req.NoError(err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	req.Equal("ok", string(body))

	cancel()
	select {
	case err := <-done:
		req.NoError(err)
	case <-time.After(2 * time.Second):
		req.Fail("admin server did not stop")
	}
	req.Equal(1, ws.closed)
}
