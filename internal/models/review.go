package models

import (
	"time"

	"github.com/google/uuid"
)

type ReviewRequestMethod string

const (
	ReviewRequestMethodWhatsApp ReviewRequestMethod = "whatsapp"
	ReviewRequestMethodEmail    ReviewRequestMethod = "email"
)

// ReviewRequest tracks that a delivered order was asked for a review.
// At most one request exists per order.
type ReviewRequest struct {
	ID            uuid.UUID           `json:"id"`
	OrderID       uuid.UUID           `json:"order_id"`
	CustomerName  string              `json:"customer_name"`
	CustomerPhone string              `json:"customer_phone"`
	CustomerEmail string              `json:"customer_email,omitempty"`
	Products      []string            `json:"products"`
	Method        ReviewRequestMethod `json:"method"`
	Token         string              `json:"token"`
	Status        string              `json:"status"`
	SentAt        time.Time           `json:"sent_at"`
}

type CustomerReview struct {
	ID           uuid.UUID `json:"id"`
	OrderID      uuid.UUID `json:"order_id,omitempty"`
	CustomerName string    `json:"customer_name"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment,omitempty"`
	Products     []string  `json:"products,omitempty"`
	Hidden       bool      `json:"hidden"`
	CreatedAt    time.Time `json:"created_at"`
}

type SendReviewRequestsRequest struct {
	OrderIDs []uuid.UUID         `json:"order_ids" validate:"required,min=1"`
	Method   ReviewRequestMethod `json:"method" validate:"required,oneof=whatsapp email"`
}

type SubmitReviewRequest struct {
	Token        string `json:"token" validate:"required"`
	CustomerName string `json:"customer_name" validate:"required,min=2,max=100"`
	Rating       int    `json:"rating" validate:"required,min=1,max=5"`
	Comment      string `json:"comment,omitempty" validate:"omitempty,max=1000"`
}

// EligibleOrder is a delivered order that has not been asked for a review yet.
type EligibleOrder struct {
	OrderID       uuid.UUID `json:"order_id"`
	CustomerName  string    `json:"customer_name"`
	CustomerPhone string    `json:"customer_phone"`
	OrderDate     time.Time `json:"order_date"`
	TotalAmount   int64     `json:"total_amount"`
	Products      []string  `json:"products"`
}

type ReviewSummary struct {
	TotalOrders     int             `json:"total_orders"`
	RequestsSent    int             `json:"requests_sent"`
	PendingRequests int             `json:"pending_requests"`
	ReviewsReceived int             `json:"reviews_received"`
	AverageRating   float64         `json:"average_rating"`
	EligibleOrders  []EligibleOrder `json:"eligible_orders"`
}

// SentRequestResult reports the outcome of one order in a batch send.
type SentRequestResult struct {
	OrderID uuid.UUID `json:"order_id"`
	Sent    bool      `json:"sent"`
	Reason  string    `json:"reason,omitempty"`
	// For WhatsApp requests the admin sends the text manually; the
	// service hands back the prefilled compose link.
	ShareText string `json:"share_text,omitempty"`
	ShareLink string `json:"share_link,omitempty"`
}
