package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/nairmahesh/diwali-delights/internal/models"
	"github.com/nairmahesh/diwali-delights/internal/repositories/mocks"
	service "github.com/nairmahesh/diwali-delights/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupAnalyticsServiceTest() (*mocks.AnalyticsRepository, *mocks.ReviewRepository, service.AnalyticsService) {
	repo := new(mocks.AnalyticsRepository)
	reviews := new(mocks.ReviewRepository)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return repo, reviews, service.NewAnalyticsService(repo, reviews, logger)
}

func TestTrackEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		repo, _, analyticsService := setupAnalyticsServiceTest()
		repo.On("RecordEvent", ctx, mock.MatchedBy(func(event *models.VisitorEvent) bool {
			return event.SessionID == "sess-123" && event.EventType == models.EventPageView && event.UserAgent == "Mozilla/5.0"
		})).Return(nil).Once()

		// Act
		err := analyticsService.TrackEvent(ctx, &models.TrackEventRequest{
			SessionID: "sess-123",
			EventType: models.EventPageView,
			PageURL:   "/",
		}, "Mozilla/5.0")

		// Assert
		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("Failure - Store Error", func(t *testing.T) {
		// Arrange
		repo, _, analyticsService := setupAnalyticsServiceTest()
		repo.On("RecordEvent", ctx, mock.AnythingOfType("*models.VisitorEvent")).Return(errors.New("insert failed")).Once()

		// Act
		err := analyticsService.TrackEvent(ctx, &models.TrackEventRequest{
			SessionID: "sess-123",
			EventType: models.EventItemAdded,
		}, "")

		// Assert
		assert.Error(t, err)
	})
}

func TestDashboard(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Live Aggregates", func(t *testing.T) {
		// Arrange
		repo, reviews, analyticsService := setupAnalyticsServiceTest()
		repo.On("CountDistinctSessions", ctx, models.EventPageView, mock.AnythingOfType("time.Time")).Return(412, nil).Once()
		repo.On("OrderStatsSince", ctx, mock.AnythingOfType("time.Time")).Return(37, int64(21450), 29, nil).Once()
		repo.On("CountAbandonedSessions", ctx, mock.AnythingOfType("time.Time")).Return(12, nil).Once()
		reviews.On("CountReviewsSince", ctx, mock.AnythingOfType("time.Time")).Return(8, nil).Once()

		// Act
		summary, err := analyticsService.Dashboard(ctx)

		// Assert
		assert.NoError(t, err)
		require.NotNil(t, summary)
		assert.False(t, summary.Fallback)
		assert.Equal(t, 412, summary.Visitors)
		assert.Equal(t, 37, summary.Orders)
		assert.Equal(t, int64(21450), summary.Revenue)
		assert.Equal(t, 29, summary.Customers)
		assert.Equal(t, 12, summary.AbandonedSessions)
		assert.Equal(t, 8, summary.ReviewsReceived)
		assert.Equal(t, 30, summary.WindowDays)
	})

	t.Run("Success - Store Failure Serves Static Fallback", func(t *testing.T) {
		// Arrange
		repo, _, analyticsService := setupAnalyticsServiceTest()
		repo.On("CountDistinctSessions", ctx, models.EventPageView, mock.AnythingOfType("time.Time")).
			Return(0, errors.New("connection refused")).Once()

		// Act
		summary, err := analyticsService.Dashboard(ctx)

		// Assert
		assert.NoError(t, err, "the dashboard must degrade, not error")
		require.NotNil(t, summary)
		assert.True(t, summary.Fallback)
		assert.NotZero(t, summary.Visitors)
		assert.NotZero(t, summary.Orders)
	})

	t.Run("Success - Review Count Failure Is Non-Fatal", func(t *testing.T) {
		// Arrange
		repo, reviews, analyticsService := setupAnalyticsServiceTest()
		repo.On("CountDistinctSessions", ctx, models.EventPageView, mock.AnythingOfType("time.Time")).Return(100, nil).Once()
		repo.On("OrderStatsSince", ctx, mock.AnythingOfType("time.Time")).Return(5, int64(3400), 4, nil).Once()
		repo.On("CountAbandonedSessions", ctx, mock.AnythingOfType("time.Time")).Return(2, nil).Once()
		reviews.On("CountReviewsSince", ctx, mock.AnythingOfType("time.Time")).Return(0, errors.New("query failed")).Once()

		// Act
		summary, err := analyticsService.Dashboard(ctx)

		// Assert
		assert.NoError(t, err)
		assert.False(t, summary.Fallback)
		assert.Zero(t, summary.ReviewsReceived)
	})
}
