package mocks

import (
	"context"
	"time"

	"github.com/nairmahesh/diwali-delights/internal/models"
	"github.com/stretchr/testify/mock"
)

type AnalyticsRepository struct {
	mock.Mock
}

func (m *AnalyticsRepository) RecordEvent(ctx context.Context, event *models.VisitorEvent) error {
	args := m.Called(ctx, event)

	return args.Error(0)
}

func (m *AnalyticsRepository) CountDistinctSessions(ctx context.Context, eventType models.EventType, since time.Time) (int, error) {
	args := m.Called(ctx, eventType, since)

	return args.Int(0), args.Error(1)
}

func (m *AnalyticsRepository) CountAbandonedSessions(ctx context.Context, since time.Time) (int, error) {
	args := m.Called(ctx, since)

	return args.Int(0), args.Error(1)
}

func (m *AnalyticsRepository) OrderStatsSince(ctx context.Context, since time.Time) (int, int64, int, error) {
	args := m.Called(ctx, since)

	return args.Int(0), args.Get(1).(int64), args.Int(2), args.Error(3)
}
