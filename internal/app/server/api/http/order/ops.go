package order

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "orders-list",
		Method:      http.MethodGet,
		Path:        "/api/orders",
		Summary:     "List the user's orders",
		Tags:        []string{"orders"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID: "orders-create",
		Method:      http.MethodPost,
		Path:        "/api/orders",
		Summary:     "Create an order",
		Description: "Creates a pending order for the authenticated user.",
		Tags:        []string{"orders"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) findOp() huma.Operation {
	return huma.Operation{
		OperationID: "orders-find",
		Method:      http.MethodGet,
		Path:        "/api/orders/{id}",
		Summary:     "Get an order",
		Tags:        []string{"orders"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateStatusOp() huma.Operation {
	return huma.Operation{
		OperationID: "orders-update-status",
		Method:      http.MethodPatch,
		Path:        "/api/orders/{id}/status",
		Summary:     "Advance an order's status",
		Description: "Orders move pending → paid → shipped → delivered, cancellation is allowed until shipped.",
		Tags:        []string{"orders"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "orders-delete",
		Method:      http.MethodDelete,
		Path:        "/api/orders/{id}",
		Summary:     "Delete an order",
		Tags:        []string{"orders"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
