package order

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"orderprocessor/internal/app/server/api/http/middleware/auth"
	"orderprocessor/internal/domain/order"
)

type Handler struct {
	service    order.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service order.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.findOp(), h.find)
	huma.Register(api, h.updateStatusOp(), h.updateStatus)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	orders, err := h.service.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &listOutput{
		Body: orders,
	}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*output, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	orderID, err := h.service.Create(ctx, userID, input.Body.Product, input.Body.Amount)
	if err != nil {
		if errors.Is(err, order.ErrInvalidData) {
			return nil, huma.Error422UnprocessableEntity(err.Error())
		}
		return nil, err
	}

	return &output{
		Body: response{
			ID:     orderID,
			Status: "Ok",
		},
	}, nil
}

func (h *Handler) find(ctx context.Context, input *findInput) (*findOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	o, err := h.service.Find(ctx, userID, input.ID)
	if err != nil {
		if errors.Is(err, order.ErrNotFound) {
			return nil, huma.Error404NotFound("order not found")
		}
		return nil, err
	}

	return &findOutput{
		Body: findResponse{
			Status: "Ok",
			Order:  o,
		},
	}, nil
}

func (h *Handler) updateStatus(ctx context.Context, input *updateStatusInput) (*updateStatusOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	o, err := h.service.UpdateStatus(ctx, userID, input.ID, input.Body.Status)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrNotFound):
			return nil, huma.Error404NotFound("order not found")
		case errors.Is(err, order.ErrInvalidTransition), errors.Is(err, order.ErrInvalidData):
			return nil, huma.Error422UnprocessableEntity(err.Error())
		}
		return nil, err
	}

	return &updateStatusOutput{
		Body: findResponse{
			Status: "Ok",
			Order:  o,
		},
	}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*output, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	if err := h.service.Delete(ctx, userID, input.ID); err != nil {
		if errors.Is(err, order.ErrNotFound) {
			return nil, huma.Error404NotFound("order not found")
		}
		return nil, err
	}

	return &output{
		Body: response{
			ID:     input.ID,
			Status: "Ok",
		},
	}, nil
}
