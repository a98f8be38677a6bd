package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nairmahesh/diwali-delights/internal/models"
	"github.com/stretchr/testify/mock"
)

type ReviewRepository struct {
	mock.Mock
}

func (m *ReviewRepository) CreateRequest(ctx context.Context, request *models.ReviewRequest) error {
	args := m.Called(ctx, request)

	return args.Error(0)
}

func (m *ReviewRepository) GetRequestByToken(ctx context.Context, token string) (*models.ReviewRequest, error) {
	args := m.Called(ctx, token)
	if request, ok := args.Get(0).(*models.ReviewRequest); ok {
		return request, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *ReviewRepository) MarkRequestCompleted(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *ReviewRepository) ListRequests(ctx context.Context) ([]models.ReviewRequest, error) {
	args := m.Called(ctx)
	if requests, ok := args.Get(0).([]models.ReviewRequest); ok {
		return requests, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *ReviewRepository) RequestedOrderIDs(ctx context.Context) (map[uuid.UUID]bool, error) {
	args := m.Called(ctx)
	if ids, ok := args.Get(0).(map[uuid.UUID]bool); ok {
		return ids, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *ReviewRepository) CreateReview(ctx context.Context, review *models.CustomerReview) error {
	args := m.Called(ctx, review)

	return args.Error(0)
}

func (m *ReviewRepository) ListReviews(ctx context.Context, includeHidden bool) ([]models.CustomerReview, error) {
	args := m.Called(ctx, includeHidden)
	if reviews, ok := args.Get(0).([]models.CustomerReview); ok {
		return reviews, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *ReviewRepository) SetReviewHidden(ctx context.Context, id uuid.UUID, hidden bool) error {
	args := m.Called(ctx, id, hidden)

	return args.Error(0)
}

func (m *ReviewRepository) CountReviewsSince(ctx context.Context, since time.Time) (int, error) {
	args := m.Called(ctx, since)

	return args.Int(0), args.Error(1)
}
