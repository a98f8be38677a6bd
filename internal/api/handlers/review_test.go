package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/nairmahesh/diwali-delights/internal/api/handlers"
	appErrors "github.com/nairmahesh/diwali-delights/internal/errors"
	"github.com/nairmahesh/diwali-delights/internal/models"
	"github.com/nairmahesh/diwali-delights/internal/services/mocks"
	"github.com/nairmahesh/diwali-delights/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupReviewTest() (*mocks.ReviewService, *handlers.ReviewHandler) {
	mockReviewService := new(mocks.ReviewService)
	reviewHandler := handlers.NewReviewHandler(mockReviewService)

	return mockReviewService, reviewHandler
}

func TestReviewSummaryHandler(t *testing.T) {
	t.Run("Success - Campaign Overview", func(t *testing.T) {
		// Arrange
		mockReviewService, reviewHandler := setupReviewTest()
		req := testutils.NewAdminRequest("GET", "/api/v1/admin/reviews/summary", nil, nil)
		recorder := httptest.NewRecorder()

		mockReviewService.On("Summary", mock.Anything).Return(&models.ReviewSummary{
			TotalOrders:     12,
			RequestsSent:    5,
			ReviewsReceived: 3,
			AverageRating:   4.7,
		}, nil).Once()

		// Act
		reviewHandler.Summary()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"average_rating":4.7`)
		mockReviewService.AssertExpectations(t)
	})
}

func TestSendRequestsHandler(t *testing.T) {
	t.Run("Success - WhatsApp Batch", func(t *testing.T) {
		// Arrange
		mockReviewService, reviewHandler := setupReviewTest()
		orderID := uuid.New()
		body, _ := json.Marshal(models.SendReviewRequestsRequest{
			OrderIDs: []uuid.UUID{orderID},
			Method:   models.ReviewRequestMethodWhatsApp,
		})
		req := testutils.NewAdminRequest("POST", "/api/v1/admin/reviews/requests", bytes.NewBuffer(body), nil)
		recorder := httptest.NewRecorder()

		mockReviewService.On("SendRequests", mock.Anything, mock.MatchedBy(func(r *models.SendReviewRequestsRequest) bool {
			return r.Method == models.ReviewRequestMethodWhatsApp && len(r.OrderIDs) == 1
		})).Return([]models.SentRequestResult{
			{OrderID: orderID, Sent: true, ShareLink: "https://wa.me/919876543210?text=..."},
		}, nil).Once()

		// Act
		reviewHandler.SendRequests()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "wa.me")
		mockReviewService.AssertExpectations(t)
	})

	t.Run("Failure - Invalid Method", func(t *testing.T) {
		// Arrange
		mockReviewService, reviewHandler := setupReviewTest()
		body := []byte(`{"order_ids":["` + uuid.NewString() + `"],"method":"carrier-pigeon"}`)
		req := testutils.NewAdminRequest("POST", "/api/v1/admin/reviews/requests", bytes.NewBuffer(body), nil)
		recorder := httptest.NewRecorder()

		// Act
		reviewHandler.SendRequests()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockReviewService.AssertNotCalled(t, "SendRequests")
	})
}

func TestSubmitReviewHandler(t *testing.T) {
	t.Run("Success - Review Accepted", func(t *testing.T) {
		// Arrange
		mockReviewService, reviewHandler := setupReviewTest()
		body, _ := json.Marshal(models.SubmitReviewRequest{
			Token:        "tok-abc123",
			CustomerName: "Priya Sharma",
			Rating:       5,
			Comment:      "The besan laddus were wonderful!",
		})
		req := testutils.NewPublicRequest("POST", "/api/v1/reviews", bytes.NewBuffer(body), nil)
		recorder := httptest.NewRecorder()

		mockReviewService.On("SubmitReview", mock.Anything, mock.MatchedBy(func(r *models.SubmitReviewRequest) bool {
			return r.Token == "tok-abc123" && r.Rating == 5
		})).Return(&models.CustomerReview{
			ID:           uuid.New(),
			CustomerName: "Priya Sharma",
			Rating:       5,
		}, nil).Once()

		// Act
		reviewHandler.SubmitReview()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusCreated, recorder.Code)
		mockReviewService.AssertExpectations(t)
	})

	t.Run("Failure - Unknown Token", func(t *testing.T) {
		// Arrange
		mockReviewService, reviewHandler := setupReviewTest()
		body, _ := json.Marshal(models.SubmitReviewRequest{
			Token:        "tok-unknown",
			CustomerName: "Priya Sharma",
			Rating:       4,
		})
		req := testutils.NewPublicRequest("POST", "/api/v1/reviews", bytes.NewBuffer(body), nil)
		recorder := httptest.NewRecorder()

		mockReviewService.On("SubmitReview", mock.Anything, mock.Anything).
			Return(nil, appErrors.NotFoundError("Review request not found")).Once()

		// Act
		reviewHandler.SubmitReview()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, recorder.Code)
		mockReviewService.AssertExpectations(t)
	})

	t.Run("Failure - Already Submitted", func(t *testing.T) {
		// Arrange
		mockReviewService, reviewHandler := setupReviewTest()
		body, _ := json.Marshal(models.SubmitReviewRequest{
			Token:        "tok-used",
			CustomerName: "Priya Sharma",
			Rating:       4,
		})
		req := testutils.NewPublicRequest("POST", "/api/v1/reviews", bytes.NewBuffer(body), nil)
		recorder := httptest.NewRecorder()

		mockReviewService.On("SubmitReview", mock.Anything, mock.Anything).
			Return(nil, appErrors.ConflictError("A review was already submitted for this order")).Once()

		// Act
		reviewHandler.SubmitReview()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusConflict, recorder.Code)
		mockReviewService.AssertExpectations(t)
	})
}

func TestListReviewsHandler(t *testing.T) {
	t.Run("Success - Public Wall Never Includes Hidden", func(t *testing.T) {
		// Arrange
		mockReviewService, reviewHandler := setupReviewTest()
		req := testutils.NewPublicRequest("GET", "/api/v1/reviews?include_hidden=true", nil, nil)
		recorder := httptest.NewRecorder()

		// The public route is registered with includeHidden=false, so the
		// query parameter must be ignored.
		mockReviewService.On("ListReviews", mock.Anything, false).
			Return([]models.CustomerReview{}, nil).Once()

		// Act
		reviewHandler.ListReviews(false)(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		mockReviewService.AssertExpectations(t)
	})

	t.Run("Success - Admin Can Include Hidden", func(t *testing.T) {
		// Arrange
		mockReviewService, reviewHandler := setupReviewTest()
		req := testutils.NewAdminRequest("GET", "/api/v1/admin/reviews?include_hidden=true", nil, nil)
		recorder := httptest.NewRecorder()

		mockReviewService.On("ListReviews", mock.Anything, true).
			Return([]models.CustomerReview{{ID: uuid.New(), Hidden: true}}, nil).Once()

		// Act
		reviewHandler.ListReviews(true)(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		mockReviewService.AssertExpectations(t)
	})
}

func TestSetVisibilityHandler(t *testing.T) {
	t.Run("Success - Hide Review", func(t *testing.T) {
		// Arrange
		mockReviewService, reviewHandler := setupReviewTest()
		reviewID := uuid.New()
		req := testutils.NewAdminRequest("PATCH", "/api/v1/admin/reviews/"+reviewID.String()+"/visibility",
			bytes.NewBufferString(`{"hidden":true}`), map[string]string{"id": reviewID.String()})
		recorder := httptest.NewRecorder()

		mockReviewService.On("SetReviewHidden", mock.Anything, reviewID, true).Return(nil).Once()

		// Act
		reviewHandler.SetVisibility()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"hidden":true`)
		mockReviewService.AssertExpectations(t)
	})
}
