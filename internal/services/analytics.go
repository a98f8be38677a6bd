package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nairmahesh/diwali-delights/internal/errors"
	"github.com/nairmahesh/diwali-delights/internal/models"
	repository "github.com/nairmahesh/diwali-delights/internal/repositories"
)

// dashboardWindowDays is the rolling window the dashboard aggregates over.
const dashboardWindowDays = 30

type AnalyticsService interface {
	TrackEvent(ctx context.Context, req *models.TrackEventRequest, userAgent string) error
	Dashboard(ctx context.Context) (*models.DashboardSummary, error)
}

type analyticsService struct {
	repo    repository.AnalyticsRepository
	reviews repository.ReviewRepository
	logger  *slog.Logger
}

func NewAnalyticsService(repo repository.AnalyticsRepository, reviews repository.ReviewRepository, logger *slog.Logger) AnalyticsService {
	return &analyticsService{
		repo:    repo,
		reviews: reviews,
		logger:  logger,
	}
}

func (s *analyticsService) TrackEvent(ctx context.Context, req *models.TrackEventRequest, userAgent string) error {
	event := &models.VisitorEvent{
		ID:        uuid.New(),
		SessionID: req.SessionID,
		EventType: req.EventType,
		PageURL:   req.PageURL,
		ProductID: req.ProductID,
		UserAgent: userAgent,
	}

	if err := s.repo.RecordEvent(ctx, event); err != nil {
		return errors.DatabaseError("Failed to record event").WithError(err)
	}

	return nil
}

// Dashboard aggregates the recent window of storefront activity. When the
// live aggregates are unavailable the admin dashboard still needs to
// render, so a static sample is served with the fallback flag set.
func (s *analyticsService) Dashboard(ctx context.Context) (*models.DashboardSummary, error) {
	since := time.Now().AddDate(0, 0, -dashboardWindowDays)

	visitors, err := s.repo.CountDistinctSessions(ctx, models.EventPageView, since)
	if err != nil {
		s.logger.Warn("analytics unavailable, serving fallback dashboard", slog.String("error", err.Error()))

		return fallbackDashboard(), nil
	}

	orders, revenue, customers, err := s.repo.OrderStatsSince(ctx, since)
	if err != nil {
		s.logger.Warn("analytics unavailable, serving fallback dashboard", slog.String("error", err.Error()))

		return fallbackDashboard(), nil
	}

	abandoned, err := s.repo.CountAbandonedSessions(ctx, since)
	if err != nil {
		s.logger.Warn("analytics unavailable, serving fallback dashboard", slog.String("error", err.Error()))

		return fallbackDashboard(), nil
	}

	summary := &models.DashboardSummary{
		Visitors:          visitors,
		Customers:         customers,
		Orders:            orders,
		Revenue:           revenue,
		AbandonedSessions: abandoned,
		WindowDays:        dashboardWindowDays,
		GeneratedAt:       time.Now(),
	}

	if reviews, err := s.reviews.CountReviewsSince(ctx, since); err == nil {
		summary.ReviewsReceived = reviews
	} else {
		s.logger.Warn("failed to count recent reviews", slog.String("error", err.Error()))
	}

	return summary, nil
}

// fallbackDashboard returns representative sample numbers so the admin
// page degrades gracefully when the events store is down.
func fallbackDashboard() *models.DashboardSummary {
	return &models.DashboardSummary{
		Visitors:          1250,
		Customers:         89,
		Orders:            156,
		Revenue:           48500,
		AbandonedSessions: 34,
		ReviewsReceived:   23,
		WindowDays:        dashboardWindowDays,
		GeneratedAt:       time.Now(),
		Fallback:          true,
	}
}
