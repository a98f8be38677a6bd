package mocks

import (
	"context"

	"github.com/nairmahesh/diwali-delights/internal/models"
	"github.com/stretchr/testify/mock"
)

type CartService struct {
	mock.Mock
}

func (m *CartService) GetCart(ctx context.Context, sessionID string) (*models.CartResponse, error) {
	args := m.Called(ctx, sessionID)
	if resp, ok := args.Get(0).(*models.CartResponse); ok {
		return resp, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CartService) AddItem(ctx context.Context, sessionID string, req *models.AddCartItemRequest) (*models.CartResponse, error) {
	args := m.Called(ctx, sessionID, req)
	if resp, ok := args.Get(0).(*models.CartResponse); ok {
		return resp, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CartService) UpdateQuantity(ctx context.Context, sessionID string, req *models.UpdateCartQuantityRequest) (*models.CartResponse, error) {
	args := m.Called(ctx, sessionID, req)
	if resp, ok := args.Get(0).(*models.CartResponse); ok {
		return resp, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CartService) RemoveItem(ctx context.Context, sessionID string, itemID string) (*models.CartResponse, error) {
	args := m.Called(ctx, sessionID, itemID)
	if resp, ok := args.Get(0).(*models.CartResponse); ok {
		return resp, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CartService) ClearCart(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)

	return args.Error(0)
}
