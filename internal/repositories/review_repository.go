package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/nairmahesh/diwali-delights/internal/models"
	"github.com/nairmahesh/diwali-delights/internal/utils"
)

type ReviewRepository interface {
	CreateRequest(ctx context.Context, request *models.ReviewRequest) error
	GetRequestByToken(ctx context.Context, token string) (*models.ReviewRequest, error)
	MarkRequestCompleted(ctx context.Context, id uuid.UUID) error
	ListRequests(ctx context.Context) ([]models.ReviewRequest, error)
	RequestedOrderIDs(ctx context.Context) (map[uuid.UUID]bool, error)
	CreateReview(ctx context.Context, review *models.CustomerReview) error
	ListReviews(ctx context.Context, includeHidden bool) ([]models.CustomerReview, error)
	SetReviewHidden(ctx context.Context, id uuid.UUID, hidden bool) error
	CountReviewsSince(ctx context.Context, since time.Time) (int, error)
}

type reviewRepository struct {
	DB *sql.DB
}

func NewReviewRepo(db *sql.DB) ReviewRepository {
	return &reviewRepository{DB: db}
}

const reviewRequestColumns = `id, order_id, customer_name, customer_phone, customer_email, products, method, token, status, sent_at`

func (r *reviewRepository) CreateRequest(ctx context.Context, request *models.ReviewRequest) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO review_requests (` + reviewRequestColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		RETURNING sent_at
	`

	return r.DB.QueryRowContext(dbCtx, query,
		request.ID, request.OrderID, request.CustomerName, request.CustomerPhone, request.CustomerEmail,
		pq.Array(request.Products), request.Method, request.Token, request.Status,
	).Scan(&request.SentAt)
}

func (r *reviewRepository) GetRequestByToken(ctx context.Context, token string) (*models.ReviewRequest, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + reviewRequestColumns + ` FROM review_requests WHERE token = $1`

	request := &models.ReviewRequest{}

	err := r.DB.QueryRowContext(dbCtx, query, token).Scan(
		&request.ID, &request.OrderID, &request.CustomerName, &request.CustomerPhone, &request.CustomerEmail,
		pq.Array(&request.Products), &request.Method, &request.Token, &request.Status, &request.SentAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}

		return nil, fmt.Errorf("scanning review request: %w", err)
	}

	return request, nil
}

func (r *reviewRepository) MarkRequestCompleted(ctx context.Context, id uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `UPDATE review_requests SET status = 'completed' WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to complete review request: %w", err)
	}

	updatedRows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get updated rows: %w", err)
	}

	if updatedRows == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *reviewRepository) ListRequests(ctx context.Context) ([]models.ReviewRequest, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + reviewRequestColumns + ` FROM review_requests ORDER BY sent_at DESC`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, fmt.Errorf("querying review requests: %w", err)
	}
	defer rows.Close()

	var requests []models.ReviewRequest

	for rows.Next() {
		var request models.ReviewRequest
		if err := rows.Scan(
			&request.ID, &request.OrderID, &request.CustomerName, &request.CustomerPhone, &request.CustomerEmail,
			pq.Array(&request.Products), &request.Method, &request.Token, &request.Status, &request.SentAt,
		); err != nil {
			return nil, fmt.Errorf("scanning review request: %w", err)
		}

		requests = append(requests, request)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating review requests: %w", err)
	}

	return requests, nil
}

func (r *reviewRepository) RequestedOrderIDs(ctx context.Context) (map[uuid.UUID]bool, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	rows, err := r.DB.QueryContext(dbCtx, `SELECT order_id FROM review_requests`)
	if err != nil {
		return nil, fmt.Errorf("querying requested order ids: %w", err)
	}
	defer rows.Close()

	requested := make(map[uuid.UUID]bool)

	for rows.Next() {
		var orderID uuid.UUID
		if err := rows.Scan(&orderID); err != nil {
			return nil, fmt.Errorf("scanning order id: %w", err)
		}

		requested[orderID] = true
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order ids: %w", err)
	}

	return requested, nil
}

func (r *reviewRepository) CreateReview(ctx context.Context, review *models.CustomerReview) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO customer_reviews (id, order_id, customer_name, rating, comment, products, hidden, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE, NOW())
		RETURNING created_at
	`

	return r.DB.QueryRowContext(dbCtx, query,
		review.ID, review.OrderID, review.CustomerName, review.Rating, review.Comment, pq.Array(review.Products),
	).Scan(&review.CreatedAt)
}

func (r *reviewRepository) ListReviews(ctx context.Context, includeHidden bool) ([]models.CustomerReview, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, order_id, customer_name, rating, comment, products, hidden, created_at
		FROM customer_reviews
	`
	if !includeHidden {
		query += ` WHERE hidden = FALSE`
	}

	query += ` ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, fmt.Errorf("querying reviews: %w", err)
	}
	defer rows.Close()

	var reviews []models.CustomerReview

	for rows.Next() {
		var review models.CustomerReview
		if err := rows.Scan(&review.ID, &review.OrderID, &review.CustomerName, &review.Rating, &review.Comment, pq.Array(&review.Products), &review.Hidden, &review.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning review: %w", err)
		}

		reviews = append(reviews, review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating reviews: %w", err)
	}

	return reviews, nil
}

func (r *reviewRepository) SetReviewHidden(ctx context.Context, id uuid.UUID, hidden bool) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `UPDATE customer_reviews SET hidden = $1 WHERE id = $2`, hidden, id)
	if err != nil {
		return fmt.Errorf("failed to update review visibility: %w", err)
	}

	updatedRows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get updated rows: %w", err)
	}

	if updatedRows == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *reviewRepository) CountReviewsSince(ctx context.Context, since time.Time) (int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var count int
	if err := r.DB.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM customer_reviews WHERE created_at >= $1`, since).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting reviews: %w", err)
	}

	return count, nil
}
