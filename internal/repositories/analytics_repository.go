package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/nairmahesh/diwali-delights/internal/models"
	"github.com/nairmahesh/diwali-delights/internal/utils"
)

type AnalyticsRepository interface {
	RecordEvent(ctx context.Context, event *models.VisitorEvent) error
	CountDistinctSessions(ctx context.Context, eventType models.EventType, since time.Time) (int, error)
	CountAbandonedSessions(ctx context.Context, since time.Time) (int, error)
	OrderStatsSince(ctx context.Context, since time.Time) (orders int, revenue int64, customers int, err error)
}

type analyticsRepository struct {
	DB *sql.DB
}

func NewAnalyticsRepo(db *sql.DB) AnalyticsRepository {
	return &analyticsRepository{DB: db}
}

func (r *analyticsRepository) RecordEvent(ctx context.Context, event *models.VisitorEvent) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO visitor_events (id, session_id, event_type, page_url, product_id, user_agent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING created_at
	`

	return r.DB.QueryRowContext(dbCtx, query,
		event.ID, event.SessionID, event.EventType, event.PageURL, event.ProductID, event.UserAgent,
	).Scan(&event.CreatedAt)
}

func (r *analyticsRepository) CountDistinctSessions(ctx context.Context, eventType models.EventType, since time.Time) (int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT COUNT(DISTINCT session_id)
		FROM visitor_events
		WHERE event_type = $1 AND created_at >= $2
	`

	var count int
	if err := r.DB.QueryRowContext(dbCtx, query, eventType, since).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting sessions: %w", err)
	}

	return count, nil
}

// Abandoned sessions added items but never started checkout.
func (r *analyticsRepository) CountAbandonedSessions(ctx context.Context, since time.Time) (int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT COUNT(DISTINCT a.session_id)
		FROM visitor_events a
		WHERE a.event_type = $1 AND a.created_at >= $2
		AND NOT EXISTS (
			SELECT 1 FROM visitor_events b
			WHERE b.session_id = a.session_id AND b.event_type = $3 AND b.created_at >= $2
		)
	`

	var count int
	err := r.DB.QueryRowContext(dbCtx, query, models.EventItemAdded, since, models.EventCheckoutStarted).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting abandoned sessions: %w", err)
	}

	return count, nil
}

func (r *analyticsRepository) OrderStatsSince(ctx context.Context, since time.Time) (int, int64, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT COUNT(*), COALESCE(SUM(total_amount), 0), COUNT(DISTINCT customer_phone)
		FROM orders
		WHERE created_at >= $1 AND status != $2
	`

	var (
		orders    int
		revenue   int64
		customers int
	)

	err := r.DB.QueryRowContext(dbCtx, query, since, models.OrderStatusCancelled).Scan(&orders, &revenue, &customers)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("querying order stats: %w", err)
	}

	return orders, revenue, customers, nil
}
