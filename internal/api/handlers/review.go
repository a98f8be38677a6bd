package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/nairmahesh/diwali-delights/internal/api/middleware"
	"github.com/nairmahesh/diwali-delights/internal/models"
	service "github.com/nairmahesh/diwali-delights/internal/services"
	"github.com/nairmahesh/diwali-delights/internal/utils"
	"github.com/nairmahesh/diwali-delights/internal/utils/response"
)

type ReviewHandler struct {
	reviewService service.ReviewService
	validator     *validator.Validate
}

func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService, validator: validator.New()}
}

// Summary godoc
//	@Summary		Review campaign overview
//	@Description	Counts of delivered orders, requests sent and reviews received over the last 30 days, plus the orders still eligible for a request.
//	@Tags			Reviews
//	@Produce		json
//	@Success		200	{object}	models.ReviewSummary
//	@Security		BearerAuth
//	@Router			/admin/reviews/summary [get]
func (h *ReviewHandler) Summary() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		summary, err := h.reviewService.Summary(r.Context())
		if err != nil {
			logger.Error("Failed to build review summary", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, summary)
	}
}

// SendRequests godoc
//	@Summary		Send review requests for delivered orders
//	@Description	Per-order results: WhatsApp requests return a prefilled compose link for the admin to send manually, email requests go out through SendGrid.
//	@Tags			Reviews
//	@Accept			json
//	@Produce		json
//	@Param			batch	body		models.SendReviewRequestsRequest	true	"Orders and delivery method"
//	@Success		200		{array}		models.SentRequestResult
//	@Failure		400		{object}	response.ErrorResponse	"Validation error"
//	@Security		BearerAuth
//	@Router			/admin/reviews/requests [post]
func (h *ReviewHandler) SendRequests() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.SendReviewRequestsRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid send requests input")

			return
		}

		results, err := h.reviewService.SendRequests(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to send review requests", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Review request batch processed", slog.Int("orders", len(req.OrderIDs)))
		response.Success(w, http.StatusOK, results)
	}
}

func (h *ReviewHandler) ListRequests() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		requests, err := h.reviewService.ListRequests(r.Context())
		if err != nil {
			logger.Error("Failed to list review requests", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, requests)
	}
}

// ListReviews returns the public review wall; the admin variant includes
// hidden entries via ?include_hidden=true.
func (h *ReviewHandler) ListReviews(includeHidden bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		withHidden := includeHidden && r.URL.Query().Get("include_hidden") == "true"

		reviews, err := h.reviewService.ListReviews(r.Context(), withHidden)
		if err != nil {
			logger.Error("Failed to list reviews", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, reviews)
	}
}

// SubmitReview godoc
//	@Summary		Submit a review via a request token
//	@Description	Customers land here from the link in their review request. Each token accepts exactly one review.
//	@Tags			Reviews
//	@Accept			json
//	@Produce		json
//	@Param			review	body		models.SubmitReviewRequest	true	"Review with request token"
//	@Success		201		{object}	models.CustomerReview
//	@Failure		404		{object}	response.ErrorResponse	"Unknown token"
//	@Failure		409		{object}	response.ErrorResponse	"Review already submitted"
//	@Router			/reviews [post]
func (h *ReviewHandler) SubmitReview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.SubmitReviewRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid review submission")

			return
		}

		review, err := h.reviewService.SubmitReview(r.Context(), &req)
		if err != nil {
			logger.Warn("Review submission rejected", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Review received", slog.String("reviewId", review.ID.String()), slog.Int("rating", review.Rating))
		response.Success(w, http.StatusCreated, review)
	}
}

type setReviewVisibilityRequest struct {
	Hidden bool `json:"hidden"`
}

func (h *ReviewHandler) SetVisibility() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid review id", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		var req setReviewVisibilityRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid visibility input")

			return
		}

		if err := h.reviewService.SetReviewHidden(r.Context(), id, req.Hidden); err != nil {
			logger.Error("Failed to change review visibility", slog.String("reviewId", id.String()), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, map[string]bool{"hidden": req.Hidden})
	}
}
