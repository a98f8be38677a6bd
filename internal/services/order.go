package service

import (
	"context"
	"database/sql"
	"encoding/json"
	goerrors "errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/nairmahesh/diwali-delights/internal/errors"
	"github.com/nairmahesh/diwali-delights/internal/models"
	repository "github.com/nairmahesh/diwali-delights/internal/repositories"
	stripeClient "github.com/nairmahesh/diwali-delights/pkg/stripe"
)

type OrderService interface {
	Checkout(ctx context.Context, sessionID string, req *models.CreateOrderRequest) (*models.Order, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error)
	ListOrders(ctx context.Context, page, size int) (*models.OrderListResponse, error)
	UpdateOrder(ctx context.Context, id uuid.UUID, req *models.UpdateOrderRequest) (*models.Order, error)
	RequestPayment(ctx context.Context, orderID uuid.UUID) (*models.PaymentRequestResponse, error)
	HandleWebhookEvent(ctx context.Context, payload []byte, signature string) error
}

type orderService struct {
	repo     repository.OrderRepository
	cart     CartService
	settings SettingsService
	stripe   stripeClient.Client
	currency string
	logger   *slog.Logger
}

func NewOrderService(repo repository.OrderRepository, cart CartService, settings SettingsService, stripe stripeClient.Client, currency string, logger *slog.Logger) OrderService {
	return &orderService{
		repo:     repo,
		cart:     cart,
		settings: settings,
		stripe:   stripe,
		currency: currency,
		logger:   logger,
	}
}

// Checkout turns the session cart into an order and clears the cart.
func (s *orderService) Checkout(ctx context.Context, sessionID string, req *models.CreateOrderRequest) (*models.Order, error) {
	settings, err := s.settings.GetSettings(ctx)
	if err == nil && !settings.OrderingEnabled {
		return nil, errors.ForbiddenError("Ordering is temporarily paused")
	}

	cartResp, err := s.cart.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if cartResp.Cart.IsEmpty() {
		return nil, errors.BadRequestError("Cannot place an order with an empty cart")
	}

	order := &models.Order{
		ID:              uuid.New(),
		SessionID:       sessionID,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
		DeliveryDate:    req.DeliveryDate,
		TotalAmount:     cartResp.TotalPrice,
		Status:          models.OrderStatusPending,
		PaymentStatus:   models.PaymentStatusUnpaid,
		Notes:           req.Notes,
	}

	for _, line := range cartResp.Cart.Lines {
		order.Items = append(order.Items, models.OrderItem{
			ProductID: line.ID,
			Name:      line.Name,
			Price:     line.Price,
			Unit:      line.Unit,
			Quantity:  line.Quantity,
		})
	}

	if err := s.repo.CreateOrder(ctx, order); err != nil {
		return nil, errors.DatabaseError("Failed to create order").WithError(err)
	}

	if err := s.cart.ClearCart(ctx, sessionID); err != nil {
		s.logger.Warn("failed to clear cart after checkout", slog.String("sessionId", sessionID), slog.Any("error", err))
	}

	return order, nil
}

func (s *orderService) GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	order, err := s.repo.GetOrderByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Order not found").WithError(err)
	}

	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context, page, size int) (*models.OrderListResponse, error) {
	orders, total, err := s.repo.ListOrders(ctx, page, size)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch orders").WithError(err)
	}

	return &models.OrderListResponse{Orders: orders, Total: total, Page: page, Size: size}, nil
}

func (s *orderService) UpdateOrder(ctx context.Context, id uuid.UUID, req *models.UpdateOrderRequest) (*models.Order, error) {
	order, err := s.repo.GetOrderByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Order not found").WithError(err)
	}

	if req.Status != nil {
		order.Status = *req.Status
	}

	if req.PaymentStatus != nil {
		order.PaymentStatus = *req.PaymentStatus
	}

	if req.Notes != nil {
		order.Notes = *req.Notes
	}

	if err := s.repo.UpdateOrder(ctx, order); err != nil {
		return nil, errors.DatabaseError("Failed to update order").WithError(err)
	}

	return order, nil
}

// RequestPayment raises a Stripe payment intent for the order total so
// the admin can send the customer a payment link. Amounts are stored in
// whole rupees and charged in paise.
func (s *orderService) RequestPayment(ctx context.Context, orderID uuid.UUID) (*models.PaymentRequestResponse, error) {
	if s.stripe == nil {
		return nil, errors.ThirdPartyError("Payments are not configured")
	}

	order, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, errors.NotFoundError("Order not found").WithError(err)
	}

	if order.PaymentStatus == models.PaymentStatusPaid {
		return nil, errors.ConflictError("Order is already paid")
	}

	amount := order.TotalAmount * 100

	description := fmt.Sprintf("Diwali Delights order for %s", order.CustomerName)

	intent, err := s.stripe.CreatePaymentIntent(amount, s.currency, description, order.ID.String())
	if err != nil {
		return nil, errors.ThirdPartyError("Failed to create payment request").WithError(err)
	}

	order.PaymentStatus = models.PaymentStatusRequested
	order.PaymentIntentID = intent.ID

	if err := s.repo.UpdateOrder(ctx, order); err != nil {
		return nil, errors.DatabaseError("Failed to record payment request").WithError(err)
	}

	return &models.PaymentRequestResponse{
		OrderID:         order.ID,
		PaymentIntentID: intent.ID,
		ClientSecret:    intent.ClientSecret,
		Amount:          amount,
		Currency:        s.currency,
	}, nil
}

// HandleWebhookEvent routes Stripe payment events back onto the order
// the intent was raised for.
func (s *orderService) HandleWebhookEvent(ctx context.Context, payload []byte, signature string) error {
	if s.stripe == nil {
		return errors.ThirdPartyError("Payments are not configured")
	}

	event, err := s.stripe.VerifyWebhookSignature(payload, signature)
	if err != nil {
		return errors.UnauthorizedError("Invalid webhook signature").WithError(err)
	}

	var status models.PaymentStatus

	switch event.Type {
	case "payment_intent.succeeded":
		status = models.PaymentStatusPaid
	case "payment_intent.payment_failed":
		status = models.PaymentStatusFailed
	default:
		return nil
	}

	var intent struct {
		ID string `json:"id"`
	}

	if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
		return errors.BadRequestError("Malformed webhook payload").WithError(err)
	}

	order, err := s.repo.GetOrderByPaymentIntent(ctx, intent.ID)
	if err != nil {
		if goerrors.Is(err, sql.ErrNoRows) {
			s.logger.Warn("webhook for unknown payment intent", slog.String("paymentIntentId", intent.ID))

			return nil
		}

		return errors.DatabaseError("Failed to look up order for payment").WithError(err)
	}

	order.PaymentStatus = status

	if err := s.repo.UpdateOrder(ctx, order); err != nil {
		return errors.DatabaseError("Failed to update payment status").WithError(err)
	}

	return nil
}
