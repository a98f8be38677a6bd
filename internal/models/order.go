package models

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

type PaymentStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"

	PaymentStatusUnpaid    PaymentStatus = "unpaid"
	PaymentStatusRequested PaymentStatus = "requested"
	PaymentStatusPaid      PaymentStatus = "paid"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

type OrderItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Unit      string `json:"unit"`
	Quantity  int    `json:"quantity"`
}

type Order struct {
	ID              uuid.UUID     `json:"id"`
	SessionID       string        `json:"session_id"`
	CustomerName    string        `json:"customer_name"`
	CustomerPhone   string        `json:"customer_phone"`
	CustomerAddress string        `json:"customer_address"`
	DeliveryDate    time.Time     `json:"delivery_date"`
	Items           []OrderItem   `json:"items"`
	TotalAmount     int64         `json:"total_amount"`
	Status          OrderStatus   `json:"status"`
	PaymentStatus   PaymentStatus `json:"payment_status"`
	PaymentIntentID string        `json:"payment_intent_id,omitempty"`
	Notes           string        `json:"notes,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

type CreateOrderRequest struct {
	CustomerName    string    `json:"customer_name" validate:"required,min=2,max=100"`
	CustomerPhone   string    `json:"customer_phone" validate:"required,min=10,max=15"`
	CustomerAddress string    `json:"customer_address" validate:"required,min=10"`
	DeliveryDate    time.Time `json:"delivery_date" validate:"required"`
	Notes           string    `json:"notes,omitempty" validate:"omitempty,max=500"`
}

type UpdateOrderRequest struct {
	Status        *OrderStatus   `json:"status,omitempty" validate:"omitempty,oneof=pending confirmed preparing ready delivered cancelled"`
	PaymentStatus *PaymentStatus `json:"payment_status,omitempty" validate:"omitempty,oneof=unpaid requested paid failed refunded"`
	Notes         *string        `json:"notes,omitempty" validate:"omitempty,max=500"`
}

type OrderListResponse struct {
	Orders []Order `json:"orders"`
	Total  int     `json:"total"`
	Page   int     `json:"page"`
	Size   int     `json:"size"`
}

// PaymentRequestResponse carries the Stripe reference the admin forwards
// to the customer when asking for an online payment.
type PaymentRequestResponse struct {
	OrderID         uuid.UUID `json:"order_id"`
	PaymentIntentID string    `json:"payment_intent_id"`
	ClientSecret    string    `json:"client_secret"`
	Amount          int64     `json:"amount"`
	Currency        string    `json:"currency"`
}
