package order

import (
	"context"
)

type Repository interface {
	List(ctx context.Context, userID int) ([]Order, error)
	Get(ctx context.Context, userID, orderID int) (*Order, error)
	Create(ctx context.Context, o *Order) (int, error)
	UpdateStatus(ctx context.Context, userID, orderID int, status Status) (*Order, error)
	Delete(ctx context.Context, userID, orderID int) error
}

// Cache is a read-through cache for per-user order lists. Lookups that
// find nothing return ErrCacheMiss.
type Cache interface {
	GetList(ctx context.Context, userID int) ([]Order, error)
	SetList(ctx context.Context, userID int, orders []Order) error
	Invalidate(ctx context.Context, userID int) error
}
