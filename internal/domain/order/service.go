package order

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	List(ctx context.Context, userID int) (ListResponse, error)
	Create(ctx context.Context, userID int, product string, amount float64) (int, error)
	Find(ctx context.Context, userID, orderID int) (*Order, error)
	UpdateStatus(ctx context.Context, userID, orderID int, status Status) (*Order, error)
	Delete(ctx context.Context, userID, orderID int) error
}

// Service holds the order business rules. Reads go through the cache
// when one is configured, every write invalidates the owner's cached list.
type Service struct {
	repo  Repository
	cache Cache
	log   *slog.Logger
}

func NewService(repo Repository, cache Cache, log *slog.Logger) Servicer {
	return &Service{
		repo:  repo,
		cache: cache,
		log:   log.With("component", "order_service"),
	}
}

func (s *Service) List(ctx context.Context, userID int) (ListResponse, error) {
	if s.cache != nil {
		if orders, err := s.cache.GetList(ctx, userID); err == nil {
			return toListResponse(orders), nil
		}
	}

	orders, err := s.repo.List(ctx, userID)
	if err != nil {
		s.log.Error("failed to list orders", "user_id", userID, "error", err)
		return ListResponse{}, fmt.Errorf("list orders: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.SetList(ctx, userID, orders); err != nil {
			// The cache is best effort, a failed write must not fail the read.
			s.log.Warn("failed to cache order list", "user_id", userID, "error", err)
		}
	}

	return toListResponse(orders), nil
}

func (s *Service) Create(ctx context.Context, userID int, product string, amount float64) (int, error) {
	product = strings.TrimSpace(product)
	if product == "" {
		return 0, fmt.Errorf("%w: product is required", ErrInvalidData)
	}
	if amount <= 0 {
		return 0, fmt.Errorf("%w: amount must be positive", ErrInvalidData)
	}

	o := &Order{
		UserID:  userID,
		Product: product,
		Amount:  amount,
		Status:  StatusPending,
	}

	orderID, err := s.repo.Create(ctx, o)
	if err != nil {
		s.log.Error("failed to create order", "user_id", userID, "error", err)
		return 0, fmt.Errorf("create order: %w", err)
	}

	s.invalidate(ctx, userID)
	return orderID, nil
}

func (s *Service) Find(ctx context.Context, userID, orderID int) (*Order, error) {
	o, err := s.repo.Get(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (s *Service) UpdateStatus(ctx context.Context, userID, orderID int, status Status) (*Order, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidData, status)
	}

	current, err := s.repo.Get(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	if !current.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, status)
	}

	updated, err := s.repo.UpdateStatus(ctx, userID, orderID, status)
	if err != nil {
		s.log.Error("failed to update order status",
			"order_id", orderID, "user_id", userID, "status", status, "error", err)
		return nil, fmt.Errorf("update order status: %w", err)
	}

	s.invalidate(ctx, userID)
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, userID, orderID int) error {
	if err := s.repo.Delete(ctx, userID, orderID); err != nil {
		return err
	}

	s.invalidate(ctx, userID)
	return nil
}

func (s *Service) invalidate(ctx context.Context, userID int) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, userID); err != nil {
		s.log.Warn("failed to invalidate order cache", "user_id", userID, "error", err)
	}
}

func toListResponse(orders []Order) ListResponse {
	items := make([]Item, len(orders))
	for i, o := range orders {
		items[i] = Item{
			ID:        o.ID,
			Product:   o.Product,
			Amount:    o.Amount,
			Status:    o.Status,
			CreatedAt: o.CreatedAt,
			UpdatedAt: o.UpdatedAt,
		}
	}

	return ListResponse{
		Orders: items,
		Total:  len(items),
	}
}
