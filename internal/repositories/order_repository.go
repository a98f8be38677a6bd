package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nairmahesh/diwali-delights/internal/models"
	"github.com/nairmahesh/diwali-delights/internal/utils"
)

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *models.Order) error
	GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	ListOrders(ctx context.Context, page, size int) ([]models.Order, int, error)
	UpdateOrder(ctx context.Context, order *models.Order) error
	ListDeliveredSince(ctx context.Context, since time.Time) ([]models.Order, error)
	GetOrderByPaymentIntent(ctx context.Context, paymentIntentID string) (*models.Order, error)
}

type orderRepository struct {
	DB *sql.DB
}

func NewOrderRepo(db *sql.DB) OrderRepository {
	return &orderRepository{DB: db}
}

const orderColumns = `id, session_id, customer_name, customer_phone, customer_address, delivery_date, items, total_amount, status, payment_status, payment_intent_id, notes, created_at, updated_at`

func (r *orderRepository) CreateOrder(ctx context.Context, order *models.Order) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	itemsJSON, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("failed to marshal order items: %w", err)
	}

	query := `
		INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query,
		order.ID, order.SessionID, order.CustomerName, order.CustomerPhone, order.CustomerAddress,
		order.DeliveryDate, itemsJSON, order.TotalAmount, order.Status, order.PaymentStatus,
		order.PaymentIntentID, order.Notes,
	).Scan(&order.CreatedAt, &order.UpdatedAt)
}

func (r *orderRepository) GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	return scanOrder(r.DB.QueryRowContext(dbCtx, query, id))
}

func (r *orderRepository) GetOrderByPaymentIntent(ctx context.Context, paymentIntentID string) (*models.Order, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + orderColumns + ` FROM orders WHERE payment_intent_id = $1`

	return scanOrder(r.DB.QueryRowContext(dbCtx, query, paymentIntentID))
}

func (r *orderRepository) ListOrders(ctx context.Context, page, size int) ([]models.Order, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int
	if err := r.DB.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM orders`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting orders: %w", err)
	}

	query := `
		SELECT ` + orderColumns + `
		FROM orders
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.DB.QueryContext(dbCtx, query, size, (page-1)*size)
	if err != nil {
		return nil, 0, fmt.Errorf("querying orders: %w", err)
	}
	defer rows.Close()

	orders, err := collectOrders(rows)
	if err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

func (r *orderRepository) ListDeliveredSince(ctx context.Context, since time.Time) ([]models.Order, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE status = $1 AND created_at >= $2
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(dbCtx, query, models.OrderStatusDelivered, since)
	if err != nil {
		return nil, fmt.Errorf("querying delivered orders: %w", err)
	}
	defer rows.Close()

	return collectOrders(rows)
}

func (r *orderRepository) UpdateOrder(ctx context.Context, order *models.Order) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE orders
		SET status = $1, payment_status = $2, payment_intent_id = $3, notes = $4, updated_at = $5
		WHERE id = $6
	`

	result, err := r.DB.ExecContext(dbCtx, query,
		order.Status, order.PaymentStatus, order.PaymentIntentID, order.Notes, time.Now(), order.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
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

func scanOrder(row rowScanner) (*models.Order, error) {
	order := &models.Order{}

	var itemsJSON []byte

	err := row.Scan(
		&order.ID, &order.SessionID, &order.CustomerName, &order.CustomerPhone, &order.CustomerAddress,
		&order.DeliveryDate, &itemsJSON, &order.TotalAmount, &order.Status, &order.PaymentStatus,
		&order.PaymentIntentID, &order.Notes, &order.CreatedAt, &order.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}

		return nil, fmt.Errorf("scanning order: %w", err)
	}

	if err := json.Unmarshal(itemsJSON, &order.Items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal order items: %w", err)
	}

	return order, nil
}

func collectOrders(rows *sql.Rows) ([]models.Order, error) {
	var orders []models.Order

	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}

		orders = append(orders, *order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating orders: %w", err)
	}

	return orders, nil
}
