package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/nairmahesh/diwali-delights/internal/cache"
	"github.com/nairmahesh/diwali-delights/internal/errors"
	"github.com/nairmahesh/diwali-delights/internal/models"
	repository "github.com/nairmahesh/diwali-delights/internal/repositories"
)

type CatalogService interface {
	GetCategories(ctx context.Context) ([]models.Category, error)
	GetItem(ctx context.Context, itemID string) (*models.CatalogItem, error)
	InvalidateCatalog(ctx context.Context)
}

type catalogService struct {
	productRepo repository.ProductRepository
	settings    SettingsService
	cache       cache.Cache
	cacheTTL    time.Duration
	logger      *slog.Logger
}

func NewCatalogService(productRepo repository.ProductRepository, settings SettingsService, cacheClient cache.Cache, cacheTTL time.Duration, logger *slog.Logger) CatalogService {
	return &catalogService{
		productRepo: productRepo,
		settings:    settings,
		cache:       cacheClient,
		cacheTTL:    cacheTTL,
		logger:      logger,
	}
}

const catalogCacheKey = "categories"

// GetCategories merges the built-in menu with admin-managed products and
// applies visibility settings. A database outage degrades to the built-in
// menu instead of an empty storefront.
func (s *catalogService) GetCategories(ctx context.Context) ([]models.Category, error) {
	cacheKey := cache.Key(cache.CatalogKeyPrefix, catalogCacheKey)

	if s.cache != nil {
		var cached []models.Category

		found, err := s.cache.Get(ctx, cacheKey, &cached)
		if err != nil {
			s.logger.Warn("catalog cache read failed", slog.Any("error", err))
		} else if found {
			return cached, nil
		}
	}

	categories := repository.SeedCategories()

	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		s.logger.Warn("product listing failed, serving built-in menu", slog.Any("error", err))
	} else {
		categories = overlayProducts(categories, products)
	}

	categories = s.filterHidden(ctx, categories)

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, categories, s.cacheTTL); err != nil {
			s.logger.Warn("catalog cache write failed", slog.Any("error", err))
		}
	}

	return categories, nil
}

func (s *catalogService) GetItem(ctx context.Context, itemID string) (*models.CatalogItem, error) {
	categories, err := s.GetCategories(ctx)
	if err != nil {
		return nil, err
	}

	for _, category := range categories {
		for _, item := range category.Items {
			if item.ID == itemID {
				return &item, nil
			}
		}
	}

	return nil, errors.NotFoundError("Item not found in the catalog")
}

func (s *catalogService) InvalidateCatalog(ctx context.Context) {
	if s.cache == nil {
		return
	}

	if err := s.cache.Delete(ctx, cache.Key(cache.CatalogKeyPrefix, catalogCacheKey)); err != nil {
		s.logger.Warn("catalog cache invalidation failed", slog.Any("error", err))
	}
}

// overlayProducts replaces seeded entries that share an ID with an
// admin-managed product and appends new products to their category.
// Inactive products disappear from the menu.
func overlayProducts(categories []models.Category, products []models.Product) []models.Category {
	byID := make(map[string]models.Product, len(products))
	for _, product := range products {
		byID[product.ID] = product
	}

	seeded := make(map[string]bool)

	for ci := range categories {
		items := categories[ci].Items[:0]

		for _, item := range categories[ci].Items {
			seeded[item.ID] = true

			if product, ok := byID[item.ID]; ok {
				if product.Status != models.ProductStatusActive {
					continue
				}

				items = append(items, product.CatalogItem())

				continue
			}

			items = append(items, item)
		}

		categories[ci].Items = items
	}

	for _, product := range products {
		if seeded[product.ID] || product.Status != models.ProductStatusActive {
			continue
		}

		for ci := range categories {
			if categories[ci].ID == product.CategoryID {
				categories[ci].Items = append(categories[ci].Items, product.CatalogItem())

				break
			}
		}
	}

	return categories
}

// filterHidden drops items the admin toggled off in website settings.
func (s *catalogService) filterHidden(ctx context.Context, categories []models.Category) []models.Category {
	if s.settings == nil {
		return categories
	}

	settings, err := s.settings.GetSettings(ctx)
	if err != nil || len(settings.HiddenProducts) == 0 {
		return categories
	}

	hidden := make(map[string]bool, len(settings.HiddenProducts))
	for _, id := range settings.HiddenProducts {
		hidden[id] = true
	}

	for ci := range categories {
		items := categories[ci].Items[:0]

		for _, item := range categories[ci].Items {
			if !hidden[item.ID] {
				items = append(items, item)
			}
		}

		categories[ci].Items = items
	}

	return categories
}
