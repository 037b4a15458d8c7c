package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/exp/slog"
)

const sessionKeyPrefix = "session:"

// SessionRepository keeps session token hashes in Redis. Expiry is
// delegated to the key TTL, so there is nothing to garbage collect.
type SessionRepository struct {
	client *redis.Client
	log    *slog.Logger
}

func NewSessionRepository(storage *Storage, log *slog.Logger) *SessionRepository {
	return &SessionRepository{
		client: storage.Client(),
		log:    log.With("component", "session_repository"),
	}
}

func (r *SessionRepository) Create(ctx context.Context, userID int, tokenHash string, ttl time.Duration) error {
	err := r.client.Set(ctx, sessionKeyPrefix+tokenHash, userID, ttl).Err()
	if err != nil {
		r.log.Error("failed to save session", "user_id", userID, "error", err)
		return fmt.Errorf("save session: %w", err)
	}

	return nil
}

func (r *SessionRepository) Validate(ctx context.Context, tokenHash string) (int, error) {
	value, err := r.client.Get(ctx, sessionKeyPrefix+tokenHash).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, fmt.Errorf("invalid session")
		}
		r.log.Error("failed to read session", "error", err)
		return 0, fmt.Errorf("read session: %w", err)
	}

	userID, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid session")
	}

	return userID, nil
}
