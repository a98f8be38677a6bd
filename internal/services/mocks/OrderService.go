package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/nairmahesh/diwali-delights/internal/models"
	"github.com/stretchr/testify/mock"
)

type OrderService struct {
	mock.Mock
}

func (m *OrderService) Checkout(ctx context.Context, sessionID string, req *models.CreateOrderRequest) (*models.Order, error) {
	args := m.Called(ctx, sessionID, req)
	if order, ok := args.Get(0).(*models.Order); ok {
		return order, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	args := m.Called(ctx, id)
	if order, ok := args.Get(0).(*models.Order); ok {
		return order, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *OrderService) ListOrders(ctx context.Context, page, size int) (*models.OrderListResponse, error) {
	args := m.Called(ctx, page, size)
	if resp, ok := args.Get(0).(*models.OrderListResponse); ok {
		return resp, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *OrderService) UpdateOrder(ctx context.Context, id uuid.UUID, req *models.UpdateOrderRequest) (*models.Order, error) {
	args := m.Called(ctx, id, req)
	if order, ok := args.Get(0).(*models.Order); ok {
		return order, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *OrderService) RequestPayment(ctx context.Context, orderID uuid.UUID) (*models.PaymentRequestResponse, error) {
	args := m.Called(ctx, orderID)
	if resp, ok := args.Get(0).(*models.PaymentRequestResponse); ok {
		return resp, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *OrderService) HandleWebhookEvent(ctx context.Context, payload []byte, signature string) error {
	args := m.Called(ctx, payload, signature)

	return args.Error(0)
}
