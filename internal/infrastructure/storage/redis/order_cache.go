package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/exp/slog"

	"orderprocessor/internal/domain/order"
)

const (
	orderListKeyPrefix = "orders:user:"
	orderListTTL       = 5 * time.Minute
)

// OrderCache is a cache-aside store for per-user order lists.
type OrderCache struct {
	client *redis.Client
	log    *slog.Logger
}

func NewOrderCache(storage *Storage, log *slog.Logger) *OrderCache {
	return &OrderCache{
		client: storage.Client(),
		log:    log.With("component", "order_cache"),
	}
}

func (c *OrderCache) GetList(ctx context.Context, userID int) ([]order.Order, error) {
	data, err := c.client.Get(ctx, orderListKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, order.ErrCacheMiss
		}
		return nil, fmt.Errorf("get cached orders: %w", err)
	}

	var orders []order.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		// A corrupt entry behaves like a miss, the next list refills it.
		c.log.Warn("dropping unreadable order cache entry", "user_id", userID, "error", err)
		c.client.Del(ctx, orderListKey(userID))
		return nil, order.ErrCacheMiss
	}

	return orders, nil
}

func (c *OrderCache) SetList(ctx context.Context, userID int, orders []order.Order) error {
	data, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("marshal orders: %w", err)
	}

	if err := c.client.Set(ctx, orderListKey(userID), data, orderListTTL).Err(); err != nil {
		return fmt.Errorf("cache orders: %w", err)
	}

	return nil
}

func (c *OrderCache) Invalidate(ctx context.Context, userID int) error {
	if err := c.client.Del(ctx, orderListKey(userID)).Err(); err != nil {
		return fmt.Errorf("invalidate order cache: %w", err)
	}

	return nil
}

func orderListKey(userID int) string {
	return orderListKeyPrefix + strconv.Itoa(userID)
}
