package order

import "time"

type Item struct {
	ID        int       `json:"id"`
	Product   string    `json:"product"`
	Amount    float64   `json:"amount"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ListResponse struct {
	Orders []Item `json:"orders"`
	Total  int    `json:"total"`
}
