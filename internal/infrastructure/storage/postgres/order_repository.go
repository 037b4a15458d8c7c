package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"orderprocessor/internal/domain/order"
)

type OrderRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewOrderRepository(pool *pgxpool.Pool, log *slog.Logger) *OrderRepository {
	return &OrderRepository{
		pool: pool,
		log:  log.With("component", "order_repository"),
	}
}

func (r *OrderRepository) List(ctx context.Context, userID int) ([]order.Order, error) {
	const query = `
		SELECT id, user_id, product, amount, status, created_at, updated_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("failed to list orders", "user_id", userID, "error", err)
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	return r.scanOrders(rows)
}

func (r *OrderRepository) Get(ctx context.Context, userID, orderID int) (*order.Order, error) {
	const query = `
		SELECT id, user_id, product, amount, status, created_at, updated_at
		FROM orders
		WHERE id = $1 AND user_id = $2`

	row := r.pool.QueryRow(ctx, query, orderID, userID)

	o, err := r.scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrNotFound
		}
		r.log.Error("failed to get order",
			"order_id", orderID, "user_id", userID, "error", err)
		return nil, fmt.Errorf("get order: %w", err)
	}

	return o, nil
}

func (r *OrderRepository) Create(ctx context.Context, o *order.Order) (int, error) {
	const query = `
		INSERT INTO orders (user_id, product, amount, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		o.UserID, o.Product, o.Amount, o.Status,
	).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)

	if err != nil {
		r.log.Error("failed to create order",
			"user_id", o.UserID, "product", o.Product, "error", err)
		return 0, fmt.Errorf("create order: %w", err)
	}

	return o.ID, nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, userID, orderID int, status order.Status) (*order.Order, error) {
	const query = `
		UPDATE orders
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND user_id = $3
		RETURNING id, user_id, product, amount, status, created_at, updated_at`

	row := r.pool.QueryRow(ctx, query, status, orderID, userID)

	o, err := r.scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrNotFound
		}
		r.log.Error("failed to update order status",
			"order_id", orderID, "user_id", userID, "error", err)
		return nil, fmt.Errorf("update order status: %w", err)
	}

	return o, nil
}

func (r *OrderRepository) Delete(ctx context.Context, userID, orderID int) error {
	const query = `DELETE FROM orders WHERE id = $1 AND user_id = $2`

	result, err := r.pool.Exec(ctx, query, orderID, userID)
	if err != nil {
		r.log.Error("failed to delete order",
			"order_id", orderID, "user_id", userID, "error", err)
		return fmt.Errorf("delete order: %w", err)
	}

	if result.RowsAffected() == 0 {
		return order.ErrNotFound
	}

	return nil
}

func (r *OrderRepository) scanOrders(rows pgx.Rows) ([]order.Order, error) {
	var orders []order.Order

	for rows.Next() {
		o, err := r.scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}

	return orders, rows.Err()
}

func (r *OrderRepository) scanOrder(row pgx.Row) (*order.Order, error) {
	var o order.Order

	err := row.Scan(
		&o.ID, &o.UserID, &o.Product, &o.Amount,
		&o.Status, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &o, nil
}
