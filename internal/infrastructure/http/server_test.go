package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezkam/tasks/internal/config"
)

func TestWithDefaults(t *testing.T) {
	t.Run("zero config", func(t *testing.T) {
		cfg := withDefaults(config.HTTPConfig{})

		assert.Equal(t, DefaultPort, cfg.Port)
		assert.Equal(t, DefaultReadTimeout, cfg.ReadTimeout)
		assert.Equal(t, DefaultWriteTimeout, cfg.WriteTimeout)
		assert.Equal(t, DefaultIdleTimeout, cfg.IdleTimeout)
		assert.Equal(t, DefaultReadHeaderTimeout, cfg.ReadHeaderTimeout)
		assert.Equal(t, DefaultMaxHeaderBytes, cfg.MaxHeaderBytes)
		assert.Equal(t, int64(DefaultMaxBodyBytes), cfg.MaxBodyBytes)
	})

	t.Run("keeps explicit values", func(t *testing.T) {
		cfg := withDefaults(config.HTTPConfig{
			Port:           "9000",
			MaxHeaderBytes: 2048,
			MaxBodyBytes:   4096,
		})

		assert.Equal(t, "9000", cfg.Port)
		assert.Equal(t, 2048, cfg.MaxHeaderBytes)
		assert.Equal(t, int64(4096), cfg.MaxBodyBytes)
		assert.Equal(t, DefaultReadTimeout, cfg.ReadTimeout)
	})
}

func TestNewServer_Routes(t *testing.T) {
	api := http.NewServeMux()
	api.HandleFunc("/tasks", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	srv := NewServer(api, config.HTTPConfig{Host: "127.0.0.1", Port: "0", MaxBodyBytes: 8})
	assert.Equal(t, "127.0.0.1:0", srv.Addr())

	t.Run("health", func(t *testing.T) {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	})

	t.Run("mounted api", func(t *testing.T) {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/tasks", nil))

		assert.Equal(t, http.StatusTeapot, w.Code)
	})

	t.Run("body limit applies to api routes", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/tasks", strings.NewReader(`{"name":"too long"}`))
		srv.Handler().ServeHTTP(w, r)

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
		assert.Contains(t, w.Body.String(), "PAYLOAD_TOO_LARGE")
	})

	t.Run("recovers from handler panics", func(t *testing.T) {
		api.HandleFunc("/boom", func(http.ResponseWriter, *http.Request) { panic("boom") })

		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestNewServer_TimeoutsReachServer(t *testing.T) {
	srv := NewServer(http.NotFoundHandler(), config.HTTPConfig{ReadTimeout: 3 * time.Second})

	assert.Equal(t, 3*time.Second, srv.srv.ReadTimeout)
	assert.Equal(t, DefaultWriteTimeout, srv.srv.WriteTimeout)
	assert.Equal(t, DefaultMaxHeaderBytes, srv.srv.MaxHeaderBytes)
}

func TestServer_RunStopsOnCancel(t *testing.T) {
	srv := NewServer(http.NotFoundHandler(), config.HTTPConfig{Host: "127.0.0.1", Port: "0"})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, time.Second) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestServer_RunReportsListenError(t *testing.T) {
	srv := NewServer(http.NotFoundHandler(), config.HTTPConfig{Host: "127.0.0.1", Port: "not-a-port"})

	err := srv.Run(context.Background(), time.Second)
	assert.ErrorContains(t, err, "failed to serve HTTP")
}
