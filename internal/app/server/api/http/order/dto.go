package order

import (
	"orderprocessor/internal/domain/order"
)

type listOutput struct {
	Body order.ListResponse
}

type createInput struct {
	Body createRequest
}

type createRequest struct {
	Product string  `json:"product" doc:"Product name" minLength:"1"`
	Amount  float64 `json:"amount" doc:"Order total, must be positive" exclusiveMinimum:"0"`
}

type output struct {
	Body response
}

type response struct {
	ID     int    `json:"id,omitempty"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type findInput struct {
	ID int `path:"id" example:"1" doc:"Order ID"`
}

type findOutput struct {
	Body findResponse
}

type findResponse struct {
	Status string       `json:"status"`
	Order  *order.Order `json:"order"`
}

type updateStatusInput struct {
	ID   int `path:"id" example:"1" doc:"Order ID"`
	Body updateStatusRequest
}

type updateStatusRequest struct {
	Status order.Status `json:"status" doc:"Target status, one of paid, shipped, delivered, cancelled" enum:"paid,shipped,delivered,cancelled"`
}

type updateStatusOutput struct {
	Body findResponse
}

type deleteInput struct {
	ID int `path:"id" example:"1" doc:"Order ID"`
}
