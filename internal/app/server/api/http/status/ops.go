package status

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) rootOp() huma.Operation {
	return huma.Operation{
		OperationID: "status-root",
		Method:      http.MethodGet,
		Path:        "/",
		Summary:     "Service status banner",
		Description: "Returns a fixed banner confirming the service is up",
		Tags:        []string{"status"},
		Middlewares: h.middleware,
	}
}
