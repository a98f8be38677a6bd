package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nairmahesh/diwali-delights/internal/models"
	"github.com/stretchr/testify/mock"
)

type OrderRepository struct {
	mock.Mock
}

func (m *OrderRepository) CreateOrder(ctx context.Context, order *models.Order) error {
	args := m.Called(ctx, order)

	return args.Error(0)
}

func (m *OrderRepository) GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	args := m.Called(ctx, id)
	if order, ok := args.Get(0).(*models.Order); ok {
		return order, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *OrderRepository) ListOrders(ctx context.Context, page, size int) ([]models.Order, int, error) {
	args := m.Called(ctx, page, size)
	if orders, ok := args.Get(0).([]models.Order); ok {
		return orders, args.Int(1), args.Error(2)
	}

	return nil, args.Int(1), args.Error(2)
}

func (m *OrderRepository) UpdateOrder(ctx context.Context, order *models.Order) error {
	args := m.Called(ctx, order)

	return args.Error(0)
}

func (m *OrderRepository) ListDeliveredSince(ctx context.Context, since time.Time) ([]models.Order, error) {
	args := m.Called(ctx, since)
	if orders, ok := args.Get(0).([]models.Order); ok {
		return orders, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *OrderRepository) GetOrderByPaymentIntent(ctx context.Context, paymentIntentID string) (*models.Order, error) {
	args := m.Called(ctx, paymentIntentID)
	if order, ok := args.Get(0).(*models.Order); ok {
		return order, args.Error(1)
	}

	return nil, args.Error(1)
}
