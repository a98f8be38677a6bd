package mocks

import (
	"context"

	"github.com/nairmahesh/diwali-delights/internal/models"
	"github.com/stretchr/testify/mock"
)

type AnalyticsService struct {
	mock.Mock
}

func (m *AnalyticsService) TrackEvent(ctx context.Context, req *models.TrackEventRequest, userAgent string) error {
	args := m.Called(ctx, req, userAgent)

	return args.Error(0)
}

func (m *AnalyticsService) Dashboard(ctx context.Context) (*models.DashboardSummary, error) {
	args := m.Called(ctx)
	if summary, ok := args.Get(0).(*models.DashboardSummary); ok {
		return summary, args.Error(1)
	}

	return nil, args.Error(1)
}
