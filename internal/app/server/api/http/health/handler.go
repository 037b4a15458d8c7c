package health

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"

	probeTimeout = 5 * time.Second
)

// Probe is anything that can be pinged to check readiness.
type Probe interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	db         Probe
	cache      Probe
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(db, cache Probe, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		db:         db,
		cache:      cache,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.healthCheckOp(), h.healthCheck)
	huma.Register(api, h.readyCheckOp(), h.readyCheck)
}

func (h *Handler) healthCheck(_ context.Context, _ *Input) (*Output, error) {
	h.log.Debug("health check request received")

	return &Output{
		Body: Response{
			Status: statusHealthy,
		},
	}, nil
}

func (h *Handler) readyCheck(ctx context.Context, _ *Input) (*ReadyOutput, error) {
	probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	dbStatus := statusHealthy
	if err := h.db.Ping(probeCtx); err != nil {
		h.log.Warn("database readiness probe failed", "error", err)
		dbStatus = statusUnhealthy
	}

	cacheStatus := statusHealthy
	if err := h.cache.Ping(probeCtx); err != nil {
		h.log.Warn("cache readiness probe failed", "error", err)
		cacheStatus = statusUnhealthy
	}

	overall := statusHealthy
	code := http.StatusOK
	if dbStatus != statusHealthy || cacheStatus != statusHealthy {
		overall = statusUnhealthy
		code = http.StatusServiceUnavailable
	}

	return &ReadyOutput{
		Status: code,
		Body: ReadyResponse{
			Status:   overall,
			Database: dbStatus,
			Cache:    cacheStatus,
		},
	}, nil
}
