package order

import "errors"

var (
	ErrNotFound          = errors.New("order not found")
	ErrInvalidData       = errors.New("invalid order data")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrCacheMiss         = errors.New("order cache miss")
)
