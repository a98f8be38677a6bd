package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nairmahesh/diwali-delights/internal/models"
	"github.com/nairmahesh/diwali-delights/internal/utils"
)

type ProductRepository interface {
	CreateProduct(ctx context.Context, product *models.Product) error
	GetProductByID(ctx context.Context, id string) (*models.Product, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
	UpdateProduct(ctx context.Context, product *models.Product) error
	DeleteProduct(ctx context.Context, id string) error
}

type productRepository struct {
	DB *sql.DB
}

func NewProductRepo(db *sql.DB) ProductRepository {
	return &productRepository{DB: db}
}

func (r *productRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	imagesJSON, err := json.Marshal(product.Images)
	if err != nil {
		return fmt.Errorf("failed to marshal product images: %w", err)
	}

	query := `
		INSERT INTO products (id, category_id, name, description, note, images, base_price, discount_percentage, offer_price, unit, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query,
		product.ID, product.CategoryID, product.Name, product.Description, product.Note,
		imagesJSON, product.BasePrice, product.DiscountPercentage, product.OfferPrice,
		product.Unit, product.Status,
	).Scan(&product.CreatedAt, &product.UpdatedAt)
}

func (r *productRepository) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, category_id, name, description, note, images, base_price, discount_percentage, offer_price, unit, status, created_at, updated_at
		FROM products
		WHERE id = $1
	`

	return scanProduct(r.DB.QueryRowContext(dbCtx, query, id))
}

func (r *productRepository) ListProducts(ctx context.Context) ([]models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, category_id, name, description, note, images, base_price, discount_percentage, offer_price, unit, status, created_at, updated_at
		FROM products
		ORDER BY category_id, name
	`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}
	defer rows.Close()

	var products []models.Product

	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}

		products = append(products, *product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating products: %w", err)
	}

	return products, nil
}

func (r *productRepository) UpdateProduct(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	imagesJSON, err := json.Marshal(product.Images)
	if err != nil {
		return fmt.Errorf("failed to marshal product images: %w", err)
	}

	query := `
		UPDATE products
		SET category_id = $1, name = $2, description = $3, note = $4, images = $5,
		    base_price = $6, discount_percentage = $7, offer_price = $8, unit = $9, status = $10, updated_at = $11
		WHERE id = $12
	`

	result, err := r.DB.ExecContext(dbCtx, query,
		product.CategoryID, product.Name, product.Description, product.Note, imagesJSON,
		product.BasePrice, product.DiscountPercentage, product.OfferPrice,
		product.Unit, product.Status, time.Now(), product.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
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

func (r *productRepository) DeleteProduct(ctx context.Context, id string) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	deletedRows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get deleted rows: %w", err)
	}

	if deletedRows == 0 {
		return sql.ErrNoRows
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*models.Product, error) {
	product := &models.Product{}

	var imagesJSON []byte

	err := row.Scan(
		&product.ID, &product.CategoryID, &product.Name, &product.Description, &product.Note,
		&imagesJSON, &product.BasePrice, &product.DiscountPercentage, &product.OfferPrice,
		&product.Unit, &product.Status, &product.CreatedAt, &product.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}

		return nil, fmt.Errorf("scanning product: %w", err)
	}

	if err := json.Unmarshal(imagesJSON, &product.Images); err != nil {
		return nil, fmt.Errorf("failed to unmarshal product images: %w", err)
	}

	return product, nil
}
