package health

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) healthCheckOp() huma.Operation {
	return huma.Operation{
		OperationID: "health-check",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Liveness endpoint",
		Description: "Always reports healthy while the process serves requests",
		Tags:        []string{"health"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) readyCheckOp() huma.Operation {
	return huma.Operation{
		OperationID: "health-ready",
		Method:      http.MethodGet,
		Path:        "/health/ready",
		Summary:     "Readiness endpoint",
		Description: "Pings PostgreSQL and Redis and reports per-dependency status",
		Tags:        []string{"health"},
		Middlewares: h.middleware,
	}
}
