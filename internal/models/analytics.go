package models

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventPageView        EventType = "page_view"
	EventItemAdded       EventType = "item_added"
	EventCheckoutStarted EventType = "checkout_started"
	EventOrderPlaced     EventType = "order_placed"
)

// VisitorEvent is one tracked storefront action, keyed by the same
// session ID the cart uses.
type VisitorEvent struct {
	ID        uuid.UUID `json:"id"`
	SessionID string    `json:"session_id"`
	EventType EventType `json:"event_type"`
	PageURL   string    `json:"page_url,omitempty"`
	ProductID string    `json:"product_id,omitempty"`
	UserAgent string    `json:"user_agent,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type TrackEventRequest struct {
	SessionID string    `json:"session_id" validate:"required"`
	EventType EventType `json:"event_type" validate:"required,oneof=page_view item_added checkout_started order_placed"`
	PageURL   string    `json:"page_url,omitempty" validate:"omitempty,max=500"`
	ProductID string    `json:"product_id,omitempty" validate:"omitempty,max=100"`
}

// DashboardSummary aggregates storefront activity for the admin
// dashboard. Revenue comes from delivered and confirmed orders only;
// abandonment counts sessions that added items but never placed an order.
type DashboardSummary struct {
	Visitors          int       `json:"visitors"`
	Customers         int       `json:"customers"`
	Orders            int       `json:"orders"`
	Revenue           int64     `json:"revenue"`
	AbandonedSessions int       `json:"abandoned_sessions"`
	ReviewsReceived   int       `json:"reviews_received"`
	WindowDays        int       `json:"window_days"`
	GeneratedAt       time.Time `json:"generated_at"`
	// Fallback is set when the live aggregates were unavailable and a
	// static sample was served instead.
	Fallback bool `json:"fallback,omitempty"`
}
