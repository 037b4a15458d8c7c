package order

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/exp/slog"
)

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context, userID int) ([]Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Order), args.Error(1)
}

func (m *MockRepository) Get(ctx context.Context, userID, orderID int) (*Order, error) {
	args := m.Called(ctx, userID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Order), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, o *Order) (int, error) {
	args := m.Called(ctx, o)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) UpdateStatus(ctx context.Context, userID, orderID int, status Status) (*Order, error) {
	args := m.Called(ctx, userID, orderID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Order), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, userID, orderID int) error {
	args := m.Called(ctx, userID, orderID)
	return args.Error(0)
}

// MockCache is a mock implementation of the Cache interface for testing
type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetList(ctx context.Context, userID int) ([]Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Order), args.Error(1)
}

func (m *MockCache) SetList(ctx context.Context, userID int, orders []Order) error {
	args := m.Called(ctx, userID, orders)
	return args.Error(0)
}

func (m *MockCache) Invalidate(ctx context.Context, userID int) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func TestStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    Status
		to      Status
		allowed bool
	}{
		{name: "pending to paid", from: StatusPending, to: StatusPaid, allowed: true},
		{name: "pending to cancelled", from: StatusPending, to: StatusCancelled, allowed: true},
		{name: "pending to shipped", from: StatusPending, to: StatusShipped, allowed: false},
		{name: "pending to delivered", from: StatusPending, to: StatusDelivered, allowed: false},
		{name: "paid to shipped", from: StatusPaid, to: StatusShipped, allowed: true},
		{name: "paid to cancelled", from: StatusPaid, to: StatusCancelled, allowed: true},
		{name: "paid to delivered", from: StatusPaid, to: StatusDelivered, allowed: false},
		{name: "shipped to delivered", from: StatusShipped, to: StatusDelivered, allowed: true},
		{name: "shipped to cancelled", from: StatusShipped, to: StatusCancelled, allowed: false},
		{name: "delivered is terminal", from: StatusDelivered, to: StatusPaid, allowed: false},
		{name: "cancelled is terminal", from: StatusCancelled, to: StatusPending, allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestService_ListCacheMiss(t *testing.T) {
	mockRepo := new(MockRepository)
	mockCache := new(MockCache)
	service := NewService(mockRepo, mockCache, slog.Default())

	orders := []Order{
		{ID: 1, UserID: 1, Product: "keyboard", Amount: 59.90, Status: StatusPending, CreatedAt: time.Now()},
		{ID: 2, UserID: 1, Product: "mouse", Amount: 19.90, Status: StatusPaid, CreatedAt: time.Now()},
	}

	mockCache.On("GetList", mock.Anything, 1).Return(nil, ErrCacheMiss)
	mockRepo.On("List", mock.Anything, 1).Return(orders, nil)
	mockCache.On("SetList", mock.Anything, 1, orders).Return(nil)

	response, err := service.List(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, 2, response.Total)
	assert.Len(t, response.Orders, 2)
	assert.Equal(t, 1, response.Orders[0].ID)
	assert.Equal(t, StatusPending, response.Orders[0].Status)

	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestService_ListCacheHitSkipsRepository(t *testing.T) {
	mockRepo := new(MockRepository)
	mockCache := new(MockCache)
	service := NewService(mockRepo, mockCache, slog.Default())

	orders := []Order{
		{ID: 1, UserID: 1, Product: "keyboard", Amount: 59.90, Status: StatusPending},
	}

	mockCache.On("GetList", mock.Anything, 1).Return(orders, nil)

	response, err := service.List(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, 1, response.Total)

	mockRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	mockCache.AssertExpectations(t)
}

func TestService_ListCacheWriteFailureIsNonFatal(t *testing.T) {
	mockRepo := new(MockRepository)
	mockCache := new(MockCache)
	service := NewService(mockRepo, mockCache, slog.Default())

	orders := []Order{{ID: 1, UserID: 1, Product: "keyboard", Amount: 59.90, Status: StatusPending}}

	mockCache.On("GetList", mock.Anything, 1).Return(nil, ErrCacheMiss)
	mockRepo.On("List", mock.Anything, 1).Return(orders, nil)
	mockCache.On("SetList", mock.Anything, 1, orders).Return(errors.New("redis down"))

	response, err := service.List(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, 1, response.Total)
}

func TestService_ListWithoutCache(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, nil, slog.Default())

	mockRepo.On("List", mock.Anything, 1).Return([]Order{}, nil)

	response, err := service.List(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, 0, response.Total)
}

func TestService_Create(t *testing.T) {
	tests := []struct {
		name    string
		product string
		amount  float64
		wantErr error
	}{
		{name: "valid order", product: "keyboard", amount: 59.90},
		{name: "missing product", product: "   ", amount: 59.90, wantErr: ErrInvalidData},
		{name: "zero amount", product: "keyboard", amount: 0, wantErr: ErrInvalidData},
		{name: "negative amount", product: "keyboard", amount: -5, wantErr: ErrInvalidData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			mockCache := new(MockCache)
			service := NewService(mockRepo, mockCache, slog.Default())

			if tt.wantErr == nil {
				mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(o *Order) bool {
					return o.UserID == 1 && o.Product == "keyboard" && o.Status == StatusPending
				})).Return(10, nil)
				mockCache.On("Invalidate", mock.Anything, 1).Return(nil)
			}

			id, err := service.Create(context.Background(), 1, tt.product, tt.amount)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 10, id)
			}

			mockRepo.AssertExpectations(t)
			mockCache.AssertExpectations(t)
		})
	}
}

func TestService_UpdateStatus(t *testing.T) {
	tests := []struct {
		name    string
		current Status
		next    Status
		wantErr error
	}{
		{name: "pending to paid", current: StatusPending, next: StatusPaid},
		{name: "paid to shipped", current: StatusPaid, next: StatusShipped},
		{name: "shipped to delivered", current: StatusShipped, next: StatusDelivered},
		{name: "pending to delivered rejected", current: StatusPending, next: StatusDelivered, wantErr: ErrInvalidTransition},
		{name: "delivered is terminal", current: StatusDelivered, next: StatusCancelled, wantErr: ErrInvalidTransition},
		{name: "unknown status rejected", current: StatusPending, next: Status("refunded"), wantErr: ErrInvalidData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			mockCache := new(MockCache)
			service := NewService(mockRepo, mockCache, slog.Default())

			if tt.next.Valid() {
				mockRepo.On("Get", mock.Anything, 1, 10).
					Return(&Order{ID: 10, UserID: 1, Status: tt.current}, nil)
			}
			if tt.wantErr == nil {
				mockRepo.On("UpdateStatus", mock.Anything, 1, 10, tt.next).
					Return(&Order{ID: 10, UserID: 1, Status: tt.next}, nil)
				mockCache.On("Invalidate", mock.Anything, 1).Return(nil)
			}

			updated, err := service.UpdateStatus(context.Background(), 1, 10, tt.next)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.next, updated.Status)
			}

			mockRepo.AssertExpectations(t)
			mockCache.AssertExpectations(t)
		})
	}
}

func TestService_UpdateStatusNotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, nil, slog.Default())

	mockRepo.On("Get", mock.Anything, 1, 99).Return(nil, ErrNotFound)

	_, err := service.UpdateStatus(context.Background(), 1, 99, StatusPaid)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Delete(t *testing.T) {
	mockRepo := new(MockRepository)
	mockCache := new(MockCache)
	service := NewService(mockRepo, mockCache, slog.Default())

	mockRepo.On("Delete", mock.Anything, 1, 10).Return(nil)
	mockCache.On("Invalidate", mock.Anything, 1).Return(nil)

	err := service.Delete(context.Background(), 1, 10)
	assert.NoError(t, err)

	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestService_DeleteNotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	mockCache := new(MockCache)
	service := NewService(mockRepo, mockCache, slog.Default())

	mockRepo.On("Delete", mock.Anything, 1, 99).Return(ErrNotFound)

	err := service.Delete(context.Background(), 1, 99)
	assert.ErrorIs(t, err, ErrNotFound)

	mockCache.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
}
