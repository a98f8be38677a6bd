package mocks

import (
	"context"

	"github.com/nairmahesh/diwali-delights/internal/models"
	"github.com/stretchr/testify/mock"
)

type SettingsService struct {
	mock.Mock
}

func (m *SettingsService) GetSettings(ctx context.Context) (*models.WebsiteSettings, error) {
	args := m.Called(ctx)
	if settings, ok := args.Get(0).(*models.WebsiteSettings); ok {
		return settings, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *SettingsService) UpdateSettings(ctx context.Context, req *models.UpdateSettingsRequest) (*models.WebsiteSettings, error) {
	args := m.Called(ctx, req)
	if settings, ok := args.Get(0).(*models.WebsiteSettings); ok {
		return settings, args.Error(1)
	}

	return nil, args.Error(1)
}
