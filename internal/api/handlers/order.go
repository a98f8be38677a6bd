package handlers

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/nairmahesh/diwali-delights/internal/api/middleware"
	"github.com/nairmahesh/diwali-delights/internal/errors"
	"github.com/nairmahesh/diwali-delights/internal/models"
	service "github.com/nairmahesh/diwali-delights/internal/services"
	"github.com/nairmahesh/diwali-delights/internal/utils"
	"github.com/nairmahesh/diwali-delights/internal/utils/response"
)

// Stripe caps webhook payloads well below this; anything larger is not ours.
const maxWebhookBodyBytes = 65536

type OrderHandler struct {
	orderService service.OrderService
	validator    *validator.Validate
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService, validator: validator.New()}
}

// Checkout godoc
//	@Summary		Place an order from the session cart
//	@Description	Converts the current cart into a pending order and clears the cart. Rejected while ordering is paused in the shop settings.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			X-Session-ID	header		string						true	"Browsing session ID"
//	@Param			order			body		models.CreateOrderRequest	true	"Customer and delivery details"
//	@Success		201				{object}	models.Order
//	@Failure		400				{object}	response.ErrorResponse	"Validation error or empty cart"
//	@Failure		403				{object}	response.ErrorResponse	"Ordering is paused"
//	@Router			/orders [post]
func (h *OrderHandler) Checkout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		session, err := sessionID(r)
		if err != nil {
			logger.Warn("Checkout without session header")
			response.Error(w, err)

			return
		}

		var req models.CreateOrderRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid checkout input")

			return
		}

		order, err := h.orderService.Checkout(r.Context(), session, &req)
		if err != nil {
			logger.Error("Checkout failed", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Order placed", slog.String("orderId", order.ID.String()), slog.Int64("total", order.TotalAmount))
		response.Success(w, http.StatusCreated, order)
	}
}

// GetOrder godoc
//	@Summary		Get an order by ID
//	@Tags			Orders
//	@Produce		json
//	@Param			id	path		string	true	"Order ID (UUID)"	Format(uuid)
//	@Success		200	{object}	models.Order
//	@Failure		400	{object}	response.ErrorResponse	"Invalid order ID format"
//	@Failure		404	{object}	response.ErrorResponse	"Order not found"
//	@Security		BearerAuth
//	@Router			/admin/orders/{id} [get]
func (h *OrderHandler) GetOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid order id", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		order, err := h.orderService.GetOrder(r.Context(), id)
		if err != nil {
			logger.Error("Failed to get order", slog.String("orderId", id.String()), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, order)
	}
}

// ListOrders godoc
//	@Summary		List orders with pagination
//	@Tags			Orders
//	@Produce		json
//	@Param			page		query		int	false	"Page number (default: 1)"			minimum(1)
//	@Param			pageSize	query		int	false	"Items per page (default: 10)"		minimum(1)	maximum(100)
//	@Success		200			{object}	models.OrderListResponse
//	@Security		BearerAuth
//	@Router			/admin/orders [get]
func (h *OrderHandler) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		page, size := utils.Pagination(r)

		orders, err := h.orderService.ListOrders(r.Context(), page, size)
		if err != nil {
			logger.Error("Failed to list orders", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, orders)
	}
}

// UpdateOrder godoc
//	@Summary		Update order or payment status
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Order ID (UUID)"	Format(uuid)
//	@Param			update	body		models.UpdateOrderRequest	true	"Fields to change"
//	@Success		200		{object}	models.Order
//	@Failure		404		{object}	response.ErrorResponse	"Order not found"
//	@Security		BearerAuth
//	@Router			/admin/orders/{id} [patch]
func (h *OrderHandler) UpdateOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid order id", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		var req models.UpdateOrderRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid order update input")

			return
		}

		order, err := h.orderService.UpdateOrder(r.Context(), id, &req)
		if err != nil {
			logger.Error("Failed to update order", slog.String("orderId", id.String()), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Order updated", slog.String("orderId", id.String()), slog.String("status", string(order.Status)))
		response.Success(w, http.StatusOK, order)
	}
}

// RequestPayment godoc
//	@Summary		Create a Stripe payment intent for an order
//	@Description	Amounts are converted to paise before hitting Stripe. Already-paid orders are rejected.
//	@Tags			Orders
//	@Produce		json
//	@Param			id	path		string	true	"Order ID (UUID)"	Format(uuid)
//	@Success		200	{object}	models.PaymentRequestResponse
//	@Failure		404	{object}	response.ErrorResponse	"Order not found"
//	@Failure		409	{object}	response.ErrorResponse	"Order already paid"
//	@Security		BearerAuth
//	@Router			/admin/orders/{id}/payment [post]
func (h *OrderHandler) RequestPayment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid order id", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		payment, err := h.orderService.RequestPayment(r.Context(), id)
		if err != nil {
			logger.Error("Payment request failed", slog.String("orderId", id.String()), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Payment intent created",
			slog.String("orderId", id.String()),
			slog.String("paymentIntentId", payment.PaymentIntentID))
		response.Success(w, http.StatusOK, payment)
	}
}

// StripeWebhook godoc
//	@Summary		Stripe webhook receiver
//	@Description	Verifies the Stripe-Signature header and applies payment state transitions to the matching order.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	map[string]bool
//	@Failure		401	{object}	response.ErrorResponse	"Signature verification failed"
//	@Router			/payments/webhook [post]
func (h *OrderHandler) StripeWebhook() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		payload, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBodyBytes))
		if err != nil {
			logger.Error("Failed to read webhook body", slog.Any("error", err))
			response.Error(w, errors.BadRequestError("Unable to read request body"))

			return
		}

		signature := r.Header.Get("Stripe-Signature")

		if err := h.orderService.HandleWebhookEvent(r.Context(), payload, signature); err != nil {
			logger.Error("Webhook handling failed", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, map[string]bool{"received": true})
	}
}
