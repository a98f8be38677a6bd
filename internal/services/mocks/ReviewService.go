package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/nairmahesh/diwali-delights/internal/models"
	"github.com/stretchr/testify/mock"
)

type ReviewService struct {
	mock.Mock
}

func (m *ReviewService) Summary(ctx context.Context) (*models.ReviewSummary, error) {
	args := m.Called(ctx)
	if summary, ok := args.Get(0).(*models.ReviewSummary); ok {
		return summary, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *ReviewService) SendRequests(ctx context.Context, req *models.SendReviewRequestsRequest) ([]models.SentRequestResult, error) {
	args := m.Called(ctx, req)
	if results, ok := args.Get(0).([]models.SentRequestResult); ok {
		return results, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *ReviewService) SubmitReview(ctx context.Context, req *models.SubmitReviewRequest) (*models.CustomerReview, error) {
	args := m.Called(ctx, req)
	if review, ok := args.Get(0).(*models.CustomerReview); ok {
		return review, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *ReviewService) ListRequests(ctx context.Context) ([]models.ReviewRequest, error) {
	args := m.Called(ctx)
	if requests, ok := args.Get(0).([]models.ReviewRequest); ok {
		return requests, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *ReviewService) ListReviews(ctx context.Context, includeHidden bool) ([]models.CustomerReview, error) {
	args := m.Called(ctx, includeHidden)
	if reviews, ok := args.Get(0).([]models.CustomerReview); ok {
		return reviews, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *ReviewService) SetReviewHidden(ctx context.Context, id uuid.UUID, hidden bool) error {
	args := m.Called(ctx, id, hidden)

	return args.Error(0)
}
