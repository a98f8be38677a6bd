package service

import (
	"context"
	"database/sql"
	goerrors "errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nairmahesh/diwali-delights/internal/errors"
	"github.com/nairmahesh/diwali-delights/internal/models"
	repository "github.com/nairmahesh/diwali-delights/internal/repositories"
	sendgridclient "github.com/nairmahesh/diwali-delights/pkg/sendgrid"
)

// reviewWindowDays bounds how far back delivered orders are considered
// eligible for a review request.
const reviewWindowDays = 30

// maxEligibleOrders caps the eligible-order list shown on the admin summary.
const maxEligibleOrders = 10

type ReviewService interface {
	Summary(ctx context.Context) (*models.ReviewSummary, error)
	SendRequests(ctx context.Context, req *models.SendReviewRequestsRequest) ([]models.SentRequestResult, error)
	SubmitReview(ctx context.Context, req *models.SubmitReviewRequest) (*models.CustomerReview, error)
	ListRequests(ctx context.Context) ([]models.ReviewRequest, error)
	ListReviews(ctx context.Context, includeHidden bool) ([]models.CustomerReview, error)
	SetReviewHidden(ctx context.Context, id uuid.UUID, hidden bool) error
}

type reviewService struct {
	reviews  repository.ReviewRepository
	orders   repository.OrderRepository
	contacts repository.ContactRepository
	email    sendgridclient.EmailService
	baseURL  string
	logger   *slog.Logger
}

func NewReviewService(reviews repository.ReviewRepository, orders repository.OrderRepository, contacts repository.ContactRepository, email sendgridclient.EmailService, baseURL string, logger *slog.Logger) ReviewService {
	return &reviewService{
		reviews:  reviews,
		orders:   orders,
		contacts: contacts,
		email:    email,
		baseURL:  strings.TrimRight(baseURL, "/"),
		logger:   logger,
	}
}

// Summary reports review activity over the recent window plus the delivered
// orders that have not been asked for a review yet.
func (s *reviewService) Summary(ctx context.Context) (*models.ReviewSummary, error) {
	since := time.Now().AddDate(0, 0, -reviewWindowDays)

	delivered, err := s.orders.ListDeliveredSince(ctx, since)
	if err != nil {
		return nil, errors.DatabaseError("Failed to load delivered orders").WithError(err)
	}

	requested, err := s.reviews.RequestedOrderIDs(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to load review requests").WithError(err)
	}

	requests, err := s.reviews.ListRequests(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to load review requests").WithError(err)
	}

	reviews, err := s.reviews.ListReviews(ctx, false)
	if err != nil {
		return nil, errors.DatabaseError("Failed to load reviews").WithError(err)
	}

	summary := &models.ReviewSummary{
		TotalOrders:    len(delivered),
		RequestsSent:   len(requests),
		EligibleOrders: []models.EligibleOrder{},
	}

	for _, request := range requests {
		if request.Status != "completed" {
			summary.PendingRequests++
		}
	}

	summary.ReviewsReceived = len(reviews)
	if len(reviews) > 0 {
		var total int
		for _, review := range reviews {
			total += review.Rating
		}

		summary.AverageRating = float64(total) / float64(len(reviews))
	}

	for _, order := range delivered {
		if requested[order.ID] {
			continue
		}

		summary.EligibleOrders = append(summary.EligibleOrders, models.EligibleOrder{
			OrderID:       order.ID,
			CustomerName:  order.CustomerName,
			CustomerPhone: order.CustomerPhone,
			OrderDate:     order.CreatedAt,
			TotalAmount:   order.TotalAmount,
			Products:      productNames(order.Items),
		})

		if len(summary.EligibleOrders) >= maxEligibleOrders {
			break
		}
	}

	return summary, nil
}

// SendRequests creates a review request per order and reports per-order
// outcomes. WhatsApp requests hand back a prefilled compose link for the
// admin; email requests go out through SendGrid directly.
func (s *reviewService) SendRequests(ctx context.Context, req *models.SendReviewRequestsRequest) ([]models.SentRequestResult, error) {
	requested, err := s.reviews.RequestedOrderIDs(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to load review requests").WithError(err)
	}

	results := make([]models.SentRequestResult, 0, len(req.OrderIDs))

	for _, orderID := range req.OrderIDs {
		result := models.SentRequestResult{OrderID: orderID}

		if requested[orderID] {
			result.Reason = "Review request already sent"
			results = append(results, result)

			continue
		}

		order, err := s.orders.GetOrderByID(ctx, orderID)
		if err != nil {
			if goerrors.Is(err, sql.ErrNoRows) {
				result.Reason = "Order not found"
			} else {
				s.logger.Error("failed to load order for review request", slog.String("order_id", orderID.String()), slog.String("error", err.Error()))
				result.Reason = "Failed to load order"
			}
			results = append(results, result)

			continue
		}

		request := &models.ReviewRequest{
			ID:            uuid.New(),
			OrderID:       order.ID,
			CustomerName:  order.CustomerName,
			CustomerPhone: order.CustomerPhone,
			Products:      productNames(order.Items),
			Method:        req.Method,
			Token:         uuid.NewString(),
			Status:        "sent",
		}

		message := s.reviewMessage(order.CustomerName, request.Products, request.Token)

		switch req.Method {
		case models.ReviewRequestMethodEmail:
			sentTo, err := s.sendReviewEmail(ctx, order, message)
			if err != nil {
				s.logger.Error("failed to send review email", slog.String("order_id", orderID.String()), slog.String("error", err.Error()))
				result.Reason = "Failed to send email"
				results = append(results, result)

				continue
			}

			request.CustomerEmail = sentTo
		case models.ReviewRequestMethodWhatsApp:
			result.ShareText = message
			result.ShareLink = whatsAppComposeLink(order.CustomerPhone, message)
		}

		if err := s.reviews.CreateRequest(ctx, request); err != nil {
			s.logger.Error("failed to save review request", slog.String("order_id", orderID.String()), slog.String("error", err.Error()))
			result.Reason = "Failed to save review request"
			result.ShareText = ""
			result.ShareLink = ""
			results = append(results, result)

			continue
		}

		if err := s.contacts.TouchLastContacted(ctx, order.CustomerPhone, time.Now()); err != nil && !goerrors.Is(err, sql.ErrNoRows) {
			s.logger.Warn("failed to update contact", slog.String("phone", order.CustomerPhone), slog.String("error", err.Error()))
		}

		requested[orderID] = true
		result.Sent = true
		results = append(results, result)
	}

	return results, nil
}

// SubmitReview stores the customer's review against a previously issued
// token. A token can be used exactly once.
func (s *reviewService) SubmitReview(ctx context.Context, req *models.SubmitReviewRequest) (*models.CustomerReview, error) {
	request, err := s.reviews.GetRequestByToken(ctx, req.Token)
	if err != nil {
		if goerrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundError("Review request not found")
		}

		return nil, errors.DatabaseError("Failed to load review request").WithError(err)
	}

	if request.Status == "completed" {
		return nil, errors.ConflictError("A review was already submitted for this order")
	}

	review := &models.CustomerReview{
		ID:           uuid.New(),
		OrderID:      request.OrderID,
		CustomerName: req.CustomerName,
		Rating:       req.Rating,
		Comment:      req.Comment,
		Products:     request.Products,
	}

	if err := s.reviews.CreateReview(ctx, review); err != nil {
		return nil, errors.DatabaseError("Failed to save review").WithError(err)
	}

	if err := s.reviews.MarkRequestCompleted(ctx, request.ID); err != nil {
		s.logger.Error("failed to mark review request completed", slog.String("request_id", request.ID.String()), slog.String("error", err.Error()))
	}

	return review, nil
}

func (s *reviewService) ListRequests(ctx context.Context) ([]models.ReviewRequest, error) {
	requests, err := s.reviews.ListRequests(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to load review requests").WithError(err)
	}

	return requests, nil
}

func (s *reviewService) ListReviews(ctx context.Context, includeHidden bool) ([]models.CustomerReview, error) {
	reviews, err := s.reviews.ListReviews(ctx, includeHidden)
	if err != nil {
		return nil, errors.DatabaseError("Failed to load reviews").WithError(err)
	}

	return reviews, nil
}

func (s *reviewService) SetReviewHidden(ctx context.Context, id uuid.UUID, hidden bool) error {
	if err := s.reviews.SetReviewHidden(ctx, id, hidden); err != nil {
		if goerrors.Is(err, sql.ErrNoRows) {
			return errors.NotFoundError("Review not found")
		}

		return errors.DatabaseError("Failed to update review").WithError(err)
	}

	return nil
}

func (s *reviewService) reviewMessage(customerName string, products []string, token string) string {
	return fmt.Sprintf(`🌟 Dear %s,

Thank you for your recent order from Aparna's Diwali Delights!

We hope you enjoyed: %s

We would love to hear your feedback! Your review helps us serve you better and helps other customers make informed choices.

Share your review here: %s/reviews/submit?token=%s

Best regards,
Aparna's Diwali Delights`, customerName, strings.Join(products, ", "), s.baseURL, token)
}

func (s *reviewService) sendReviewEmail(ctx context.Context, order *models.Order, message string) (string, error) {
	contact, err := s.contacts.GetByPhone(ctx, order.CustomerPhone)
	if err != nil || contact.Email == "" {
		return "", fmt.Errorf("no email address on record for %s", order.CustomerName)
	}

	err = s.email.Send(ctx, &models.EmailNotificationRequest{
		To:      contact.Email,
		Subject: "Review Request - Aparna's Diwali Delights",
		Content: strings.ReplaceAll(message, "🌟", ""),
	})
	if err != nil {
		return "", err
	}

	return contact.Email, nil
}

func productNames(items []models.OrderItem) []string {
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}

	return names
}

func whatsAppComposeLink(phone, message string) string {
	return "https://wa.me/" + strings.TrimPrefix(phone, "+") + "?text=" + url.QueryEscape(message)
}
