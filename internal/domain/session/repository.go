package session

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, userID int, tokenHash string, ttl time.Duration) error
	Validate(ctx context.Context, tokenHash string) (int, error)
}
