package health

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/slog"
)

type stubProbe struct {
	err error
}

func (p stubProbe) Ping(_ context.Context) error {
	return p.err
}

func TestHandler_healthCheck(t *testing.T) {
	handler := NewHandler(stubProbe{}, stubProbe{}, slog.Default(), huma.Middlewares{})

	output, err := handler.healthCheck(context.Background(), &Input{})

	assert.NoError(t, err)
	assert.NotNil(t, output)
	assert.Equal(t, "healthy", output.Body.Status)
}

func TestHandler_healthCheckIgnoresDependencies(t *testing.T) {
	// Liveness must stay green even with both dependencies down.
	handler := NewHandler(
		stubProbe{err: errors.New("pg down")},
		stubProbe{err: errors.New("redis down")},
		slog.Default(), huma.Middlewares{},
	)

	output, err := handler.healthCheck(context.Background(), &Input{})

	assert.NoError(t, err)
	assert.Equal(t, "healthy", output.Body.Status)
}

func TestHandler_readyCheck(t *testing.T) {
	tests := []struct {
		name         string
		dbErr        error
		cacheErr     error
		wantCode     int
		wantOverall  string
		wantDatabase string
		wantCache    string
	}{
		{
			name:         "all healthy",
			wantCode:     http.StatusOK,
			wantOverall:  "healthy",
			wantDatabase: "healthy",
			wantCache:    "healthy",
		},
		{
			name:         "database down",
			dbErr:        errors.New("connection refused"),
			wantCode:     http.StatusServiceUnavailable,
			wantOverall:  "unhealthy",
			wantDatabase: "unhealthy",
			wantCache:    "healthy",
		},
		{
			name:         "cache down",
			cacheErr:     errors.New("connection refused"),
			wantCode:     http.StatusServiceUnavailable,
			wantOverall:  "unhealthy",
			wantDatabase: "healthy",
			wantCache:    "unhealthy",
		},
		{
			name:         "everything down",
			dbErr:        errors.New("connection refused"),
			cacheErr:     errors.New("connection refused"),
			wantCode:     http.StatusServiceUnavailable,
			wantOverall:  "unhealthy",
			wantDatabase: "unhealthy",
			wantCache:    "unhealthy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHandler(
				stubProbe{err: tt.dbErr},
				stubProbe{err: tt.cacheErr},
				slog.Default(), huma.Middlewares{},
			)

			output, err := handler.readyCheck(context.Background(), &Input{})

			assert.NoError(t, err)
			assert.Equal(t, tt.wantCode, output.Status)
			assert.Equal(t, tt.wantOverall, output.Body.Status)
			assert.Equal(t, tt.wantDatabase, output.Body.Database)
			assert.Equal(t, tt.wantCache, output.Body.Cache)
		})
	}
}
