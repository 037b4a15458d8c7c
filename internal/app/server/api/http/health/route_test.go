package health

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func newTestMux(t *testing.T, db, cache Probe) *chi.Mux {
	t.Helper()

	mux := chi.NewMux()
	config := huma.DefaultConfig("test", "1.0.0")
	config.CreateHooks = nil
	api := humachi.New(mux, config)

	NewHandler(db, cache, slog.Default(), huma.Middlewares{}).SetupRoutes(api)
	return mux
}

func TestHealth_ExactBody(t *testing.T) {
	mux := newTestMux(t, stubProbe{}, stubProbe{})

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
	assert.Equal(t, `{"status":"healthy"}`, strings.TrimSpace(w.Body.String()))
}

func TestHealthReady_Degraded(t *testing.T) {
	mux := newTestMux(t, stubProbe{err: errors.New("pg down")}, stubProbe{})

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.JSONEq(t, `{"status":"unhealthy","database":"unhealthy","cache":"healthy"}`, w.Body.String())
}
