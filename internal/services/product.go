package service

import (
	"context"
	"strings"
	"unicode"

	"github.com/nairmahesh/diwali-delights/internal/errors"
	"github.com/nairmahesh/diwali-delights/internal/models"
	repository "github.com/nairmahesh/diwali-delights/internal/repositories"
)

type ProductService interface {
	CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error)
	GetProductByID(ctx context.Context, id string) (*models.Product, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
	UpdateProduct(ctx context.Context, id string, req *models.UpdateProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

type productService struct {
	repo    repository.ProductRepository
	catalog CatalogService
}

func NewProductService(repo repository.ProductRepository, catalog CatalogService) ProductService {
	return &productService{repo: repo, catalog: catalog}
}

func (s *productService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	product := &models.Product{
		ID:                 productID(req.Name),
		CategoryID:         req.CategoryID,
		Name:               req.Name,
		Description:        req.Description,
		Note:               req.Note,
		Images:             req.Images,
		BasePrice:          req.BasePrice,
		DiscountPercentage: req.DiscountPercentage,
		OfferPrice:         req.OfferPrice,
		Unit:               req.Unit,
		Status:             models.ProductStatusActive,
	}

	if err := s.repo.CreateProduct(ctx, product); err != nil {
		return nil, errors.DatabaseError("Failed to create product").WithError(err)
	}

	s.catalog.InvalidateCatalog(ctx)

	return product, nil
}

func (s *productService) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Product not found").WithError(err)
	}

	return product, nil
}

func (s *productService) ListProducts(ctx context.Context) ([]models.Product, error) {
	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch products").WithError(err)
	}

	return products, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id string, req *models.UpdateProductRequest) (*models.Product, error) {
	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Product not found").WithError(err)
	}

	if req.CategoryID != nil {
		product.CategoryID = *req.CategoryID
	}

	if req.Name != nil {
		product.Name = *req.Name
	}

	if req.Description != nil {
		product.Description = *req.Description
	}

	if req.Note != nil {
		product.Note = *req.Note
	}

	if req.BasePrice != nil {
		product.BasePrice = *req.BasePrice
	}

	if req.Unit != nil {
		product.Unit = *req.Unit
	}

	if req.Images != nil {
		product.Images = req.Images
	}

	if req.DiscountPercentage != nil {
		product.DiscountPercentage = req.DiscountPercentage
	}

	if req.OfferPrice != nil {
		product.OfferPrice = req.OfferPrice
	}

	if req.Status != nil {
		product.Status = *req.Status
	}

	if err := s.repo.UpdateProduct(ctx, product); err != nil {
		return nil, errors.DatabaseError("Failed to update product").WithError(err)
	}

	s.catalog.InvalidateCatalog(ctx)

	return product, nil
}

// productID slugifies the product name so catalog IDs stay readable and
// stable across the seed menu and admin-created products.
func productID(name string) string {
	var b strings.Builder

	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r) || r == '-':
			b.WriteRune('-')
		}
	}

	return strings.Trim(b.String(), "-")
}

func (s *productService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.repo.DeleteProduct(ctx, id); err != nil {
		return errors.NotFoundError("Product not found").WithError(err)
	}

	s.catalog.InvalidateCatalog(ctx)

	return nil
}
