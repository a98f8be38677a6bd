package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nairmahesh/diwali-delights/internal/api/handlers"
	appErrors "github.com/nairmahesh/diwali-delights/internal/errors"
	"github.com/nairmahesh/diwali-delights/internal/models"
	"github.com/nairmahesh/diwali-delights/internal/services/mocks"
	"github.com/nairmahesh/diwali-delights/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupOrderTest() (*mocks.OrderService, *handlers.OrderHandler) {
	mockOrderService := new(mocks.OrderService)
	orderHandler := handlers.NewOrderHandler(mockOrderService)

	return mockOrderService, orderHandler
}

func checkoutBody() *bytes.Buffer {
	body, _ := json.Marshal(models.CreateOrderRequest{
		CustomerName:    "Priya Sharma",
		CustomerPhone:   "+919876543210",
		CustomerAddress: "12 Laxmi Road, Pune 411030",
		DeliveryDate:    time.Now().Add(48 * time.Hour),
	})

	return bytes.NewBuffer(body)
}

func TestCheckoutHandler(t *testing.T) {
	t.Run("Success - Order Placed", func(t *testing.T) {
		// Arrange
		mockOrderService, orderHandler := setupOrderTest()
		req := testutils.NewPublicRequest("POST", "/api/v1/orders", checkoutBody(), nil)
		req.Header.Set(handlers.SessionHeader, "session-42")
		recorder := httptest.NewRecorder()

		order := &models.Order{
			ID:            uuid.New(),
			SessionID:     "session-42",
			CustomerName:  "Priya Sharma",
			TotalAmount:   680,
			Status:        models.OrderStatusPending,
			PaymentStatus: models.PaymentStatusUnpaid,
		}

		mockOrderService.On("Checkout", mock.Anything, "session-42", mock.MatchedBy(func(r *models.CreateOrderRequest) bool {
			return r.CustomerName == "Priya Sharma"
		})).Return(order, nil).Once()

		// Act
		orderHandler.Checkout()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusCreated, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"status":"pending"`)
		mockOrderService.AssertExpectations(t)
	})

	t.Run("Failure - Ordering Paused", func(t *testing.T) {
		// Arrange
		mockOrderService, orderHandler := setupOrderTest()
		req := testutils.NewPublicRequest("POST", "/api/v1/orders", checkoutBody(), nil)
		req.Header.Set(handlers.SessionHeader, "session-42")
		recorder := httptest.NewRecorder()

		mockOrderService.On("Checkout", mock.Anything, "session-42", mock.Anything).
			Return(nil, appErrors.ForbiddenError("Ordering is currently paused")).Once()

		// Act
		orderHandler.Checkout()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusForbidden, recorder.Code)
		mockOrderService.AssertExpectations(t)
	})

	t.Run("Failure - Missing Session Header", func(t *testing.T) {
		// Arrange
		mockOrderService, orderHandler := setupOrderTest()
		req := testutils.NewPublicRequest("POST", "/api/v1/orders", checkoutBody(), nil)
		recorder := httptest.NewRecorder()

		// Act
		orderHandler.Checkout()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockOrderService.AssertNotCalled(t, "Checkout")
	})
}

func TestGetOrderHandler(t *testing.T) {
	t.Run("Success - Retrieve Order", func(t *testing.T) {
		// Arrange
		mockOrderService, orderHandler := setupOrderTest()
		orderID := uuid.New()
		req := testutils.NewAdminRequest("GET", "/api/v1/admin/orders/"+orderID.String(), nil,
			map[string]string{"id": orderID.String()})
		recorder := httptest.NewRecorder()

		mockOrderService.On("GetOrder", mock.Anything, orderID).
			Return(&models.Order{ID: orderID, Status: models.OrderStatusConfirmed}, nil).Once()

		// Act
		orderHandler.GetOrder()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		mockOrderService.AssertExpectations(t)
	})

	t.Run("Failure - Invalid ID Format", func(t *testing.T) {
		// Arrange
		mockOrderService, orderHandler := setupOrderTest()
		req := testutils.NewAdminRequest("GET", "/api/v1/admin/orders/not-a-uuid", nil,
			map[string]string{"id": "not-a-uuid"})
		recorder := httptest.NewRecorder()

		// Act
		orderHandler.GetOrder()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockOrderService.AssertNotCalled(t, "GetOrder")
	})
}

func TestRequestPaymentHandler(t *testing.T) {
	t.Run("Success - Payment Intent Created", func(t *testing.T) {
		// Arrange
		mockOrderService, orderHandler := setupOrderTest()
		orderID := uuid.New()
		req := testutils.NewAdminRequest("POST", "/api/v1/admin/orders/"+orderID.String()+"/payment", nil,
			map[string]string{"id": orderID.String()})
		recorder := httptest.NewRecorder()

		mockOrderService.On("RequestPayment", mock.Anything, orderID).
			Return(&models.PaymentRequestResponse{
				OrderID:         orderID,
				PaymentIntentID: "pi_123",
				ClientSecret:    "pi_123_secret",
				Amount:          68000,
				Currency:        "inr",
			}, nil).Once()

		// Act
		orderHandler.RequestPayment()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "pi_123_secret")
		mockOrderService.AssertExpectations(t)
	})

	t.Run("Failure - Already Paid", func(t *testing.T) {
		// Arrange
		mockOrderService, orderHandler := setupOrderTest()
		orderID := uuid.New()
		req := testutils.NewAdminRequest("POST", "/api/v1/admin/orders/"+orderID.String()+"/payment", nil,
			map[string]string{"id": orderID.String()})
		recorder := httptest.NewRecorder()

		mockOrderService.On("RequestPayment", mock.Anything, orderID).
			Return(nil, appErrors.ConflictError("Order is already paid")).Once()

		// Act
		orderHandler.RequestPayment()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusConflict, recorder.Code)
		mockOrderService.AssertExpectations(t)
	})
}

func TestStripeWebhookHandler(t *testing.T) {
	t.Run("Success - Event Accepted", func(t *testing.T) {
		// Arrange
		mockOrderService, orderHandler := setupOrderTest()
		payload := []byte(`{"type":"payment_intent.succeeded"}`)
		req := testutils.NewPublicRequest("POST", "/api/v1/payments/webhook", bytes.NewBuffer(payload), nil)
		req.Header.Set("Stripe-Signature", "t=1,v1=abc")
		recorder := httptest.NewRecorder()

		mockOrderService.On("HandleWebhookEvent", mock.Anything, payload, "t=1,v1=abc").Return(nil).Once()

		// Act
		orderHandler.StripeWebhook()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"received":true`)
		mockOrderService.AssertExpectations(t)
	})

	t.Run("Failure - Bad Signature", func(t *testing.T) {
		// Arrange
		mockOrderService, orderHandler := setupOrderTest()
		payload := []byte(`{}`)
		req := testutils.NewPublicRequest("POST", "/api/v1/payments/webhook", bytes.NewBuffer(payload), nil)
		req.Header.Set("Stripe-Signature", "bogus")
		recorder := httptest.NewRecorder()

		mockOrderService.On("HandleWebhookEvent", mock.Anything, payload, "bogus").
			Return(appErrors.UnauthorizedError("Webhook signature verification failed")).Once()

		// Act
		orderHandler.StripeWebhook()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		mockOrderService.AssertExpectations(t)
	})
}
