package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	appErrors "github.com/nairmahesh/diwali-delights/internal/errors"
	"github.com/nairmahesh/diwali-delights/internal/models"
	repository "github.com/nairmahesh/diwali-delights/internal/repositories"
	"github.com/nairmahesh/diwali-delights/internal/repositories/mocks"
	service "github.com/nairmahesh/diwali-delights/internal/services"
	serviceMocks "github.com/nairmahesh/diwali-delights/internal/services/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCatalogServiceTest() (*mocks.ProductRepository, *serviceMocks.SettingsService, service.CatalogService) {
	repo := new(mocks.ProductRepository)
	settings := new(serviceMocks.SettingsService)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	// Cache is nil'd out so the tests exercise the merge path directly.
	return repo, settings, service.NewCatalogService(repo, settings, nil, time.Minute, logger)
}

func visibleSettings() *models.WebsiteSettings {
	return &models.WebsiteSettings{ShopName: "Aparna's Diwali Delights", OrderingEnabled: true}
}

func TestGetCategories(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Built-In Menu With No Products", func(t *testing.T) {
		// Arrange
		repo, settings, catalogService := setupCatalogServiceTest()
		repo.On("ListProducts", ctx).Return([]models.Product{}, nil).Once()
		settings.On("GetSettings", ctx).Return(visibleSettings(), nil).Once()

		// Act
		categories, err := catalogService.GetCategories(ctx)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, len(repository.SeedCategories()), len(categories))
	})

	t.Run("Success - Admin Product Overrides Seeded Item", func(t *testing.T) {
		// Arrange
		repo, settings, catalogService := setupCatalogServiceTest()
		repo.On("ListProducts", ctx).Return([]models.Product{
			{
				ID:         "poha-chivda",
				CategoryID: "chivda",
				Name:       "Poha Chivda (Special)",
				BasePrice:  650,
				Unit:       "per kg",
				Status:     models.ProductStatusActive,
			},
		}, nil).Once()
		settings.On("GetSettings", ctx).Return(visibleSettings(), nil).Once()

		// Act
		categories, err := catalogService.GetCategories(ctx)

		// Assert
		require.NoError(t, err)
		item := findItem(t, categories, "poha-chivda")
		assert.Equal(t, "Poha Chivda (Special)", item.Name)
		assert.Equal(t, int64(650), item.Price)
	})

	t.Run("Success - Inactive Product Disappears", func(t *testing.T) {
		// Arrange
		repo, settings, catalogService := setupCatalogServiceTest()
		repo.On("ListProducts", ctx).Return([]models.Product{
			{ID: "poha-chivda", CategoryID: "chivda", Name: "Poha Chivda", Status: models.ProductStatusInactive},
		}, nil).Once()
		settings.On("GetSettings", ctx).Return(visibleSettings(), nil).Once()

		// Act
		categories, err := catalogService.GetCategories(ctx)

		// Assert
		require.NoError(t, err)
		assert.Nil(t, lookupItem(categories, "poha-chivda"))
	})

	t.Run("Success - Hidden Products Filtered Out", func(t *testing.T) {
		// Arrange
		repo, settings, catalogService := setupCatalogServiceTest()
		repo.On("ListProducts", ctx).Return([]models.Product{}, nil).Once()
		hidden := visibleSettings()
		hidden.HiddenProducts = []string{"poha-chivda"}
		settings.On("GetSettings", ctx).Return(hidden, nil).Once()

		// Act
		categories, err := catalogService.GetCategories(ctx)

		// Assert
		require.NoError(t, err)
		assert.Nil(t, lookupItem(categories, "poha-chivda"))
	})

	t.Run("Success - Database Outage Degrades To Built-In Menu", func(t *testing.T) {
		// Arrange
		repo, settings, catalogService := setupCatalogServiceTest()
		repo.On("ListProducts", ctx).Return(nil, errors.New("connection refused")).Once()
		settings.On("GetSettings", ctx).Return(visibleSettings(), nil).Once()

		// Act
		categories, err := catalogService.GetCategories(ctx)

		// Assert
		assert.NoError(t, err, "a database outage must not empty the storefront")
		assert.NotEmpty(t, categories)
		assert.NotNil(t, lookupItem(categories, "poha-chivda"))
	})
}

func TestGetItem(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		repo, settings, catalogService := setupCatalogServiceTest()
		repo.On("ListProducts", ctx).Return([]models.Product{}, nil).Once()
		settings.On("GetSettings", ctx).Return(visibleSettings(), nil).Once()

		// Act
		item, err := catalogService.GetItem(ctx, "poha-chivda")

		// Assert
		assert.NoError(t, err)
		require.NotNil(t, item)
		assert.Equal(t, "Poha Chivda", item.Name)
	})

	t.Run("Failure - Unknown Item", func(t *testing.T) {
		// Arrange
		repo, settings, catalogService := setupCatalogServiceTest()
		repo.On("ListProducts", ctx).Return([]models.Product{}, nil).Once()
		settings.On("GetSettings", ctx).Return(visibleSettings(), nil).Once()

		// Act
		item, err := catalogService.GetItem(ctx, "no-such-item")

		// Assert
		assert.Error(t, err)
		assert.Nil(t, item)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
	})
}

func findItem(t *testing.T, categories []models.Category, id string) *models.CatalogItem {
	t.Helper()

	item := lookupItem(categories, id)
	require.NotNil(t, item, "expected item %q in catalog", id)

	return item
}

func lookupItem(categories []models.Category, id string) *models.CatalogItem {
	for _, category := range categories {
		for _, item := range category.Items {
			if item.ID == id {
				return &item
			}
		}
	}

	return nil
}
