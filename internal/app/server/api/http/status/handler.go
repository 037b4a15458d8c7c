package status

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

// Banner is the exact body served on the root route.
const Banner = "Order Processor API is running!"

type Handler struct {
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.rootOp(), h.root)
}

func (h *Handler) root(_ context.Context, _ *Input) (*Output, error) {
	return &Output{
		Body: Response{
			Message: Banner,
		},
	}, nil
}
