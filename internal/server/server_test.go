package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roster-service/internal/config"
	"roster-service/internal/metrics"
	"roster-service/internal/storage"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg := config.Load()
	cfg.DataDir = t.TempDir()
	cfg.Metrics.Enabled = false
	return cfg
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := testConfig(t)
	return newServerWithStorage(cfg, nil, storage.NewFSStore(cfg.DataDir))
}

func TestServerHandlerServesRoutes(t *testing.T) {
	srv := newTestServer(t)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}

func TestServerRoundTripsTeams(t *testing.T) {
	srv := newTestServer(t)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/teams", "application/json",
		strings.NewReader(`{"name": "Wolves", "region": "Minnesota", "country": "USA"}`))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, err = http.Get(ts.URL + "/teams")
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string][]map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body["teams"], 1)
	assert.Equal(t, "Wolves", body["teams"][0]["name"])
}

func TestServerAppliesCORS(t *testing.T) {
	cfg := testConfig(t)
	cfg.AllowedOrigins = []string{"http://app.test"}
	srv := newServerWithStorage(cfg, nil, storage.NewFSStore(cfg.DataDir))
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	req, err := http.NewRequest(http.MethodOptions, ts.URL+"/teams", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://app.test")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "http://app.test", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestServerStateSurvivesRestart(t *testing.T) {
	cfg := testConfig(t)
	store := storage.NewFSStore(cfg.DataDir)

	first := newServerWithStorage(cfg, nil, store)
	ts := httptest.NewServer(first.Handler())
	resp, err := http.Post(ts.URL+"/teams", "application/json",
		strings.NewReader(`{"name": "Wolves", "region": "Minnesota", "country": "USA"}`))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	ts.Close()

	second := newServerWithStorage(cfg, nil, storage.NewFSStore(cfg.DataDir))
	ts = httptest.NewServer(second.Handler())
	defer ts.Close()

	resp, err = http.Get(ts.URL + "/teams")
	require.NoError(t, err)
	defer resp.Body.Close()
	var body map[string][]map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body["teams"], 1)
}

func TestMetricsSetupFailureFallsBack(t *testing.T) {
	orig := metricsSetup
	metricsSetup = func(context.Context, metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
		return nil, nil, nil, assert.AnError
	}
	defer func() { metricsSetup = orig }()

	cfg := testConfig(t)
	cfg.Metrics.Enabled = true
	srv := newServerWithStorage(cfg, nil, storage.NewFSStore(cfg.DataDir))

	require.NotNil(t, srv.metrics)
	assert.Nil(t, srv.metricsServer)
	assert.NotNil(t, srv.Handler())
}

type stubHTTPServer struct {
	listenErr error
	shutdowns int
}

func (s *stubHTTPServer) ListenAndServe() error          { return s.listenErr }
func (s *stubHTTPServer) Shutdown(context.Context) error { s.shutdowns++; return nil }
func (s *stubHTTPServer) Addr() string                   { return ":0" }
func (s *stubHTTPServer) Handler() http.Handler          { return nil }

func TestRunShutsDownOnContextCancel(t *testing.T) {
	srv := newTestServer(t)
	stub := &stubHTTPServer{listenErr: http.ErrServerClosed}
	srv.httpServer = stub

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		srv.Run(ctx, cancel)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
	assert.Equal(t, 1, stub.shutdowns)
}

func TestRunStopsWhenListenFails(t *testing.T) {
	srv := newTestServer(t)
	stub := &stubHTTPServer{listenErr: assert.AnError}
	srv.httpServer = stub

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		srv.Run(ctx, cancel)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("listen failure did not stop the server")
	}
}
