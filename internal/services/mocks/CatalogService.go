package mocks

import (
	"context"

	"github.com/nairmahesh/diwali-delights/internal/models"
	"github.com/stretchr/testify/mock"
)

type CatalogService struct {
	mock.Mock
}

func (m *CatalogService) GetCategories(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	if categories, ok := args.Get(0).([]models.Category); ok {
		return categories, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CatalogService) GetItem(ctx context.Context, itemID string) (*models.CatalogItem, error) {
	args := m.Called(ctx, itemID)
	if item, ok := args.Get(0).(*models.CatalogItem); ok {
		return item, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CatalogService) InvalidateCatalog(ctx context.Context) {
	m.Called(ctx)
}
