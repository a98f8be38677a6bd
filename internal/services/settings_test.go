package service_test

import (
	"context"
	"testing"

	"github.com/nairmahesh/diwali-delights/internal/kvstore"
	"github.com/nairmahesh/diwali-delights/internal/models"
	service "github.com/nairmahesh/diwali-delights/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSettings(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Defaults Before First Save", func(t *testing.T) {
		// Arrange
		settingsService := service.NewSettingsService(kvstore.NewMemoryStore())

		// Act
		settings, err := settingsService.GetSettings(ctx)

		// Assert
		assert.NoError(t, err)
		require.NotNil(t, settings)
		assert.Equal(t, "Aparna's Diwali Delights", settings.ShopName)
		assert.Equal(t, "+91 9920632654", settings.ContactPhone)
		assert.True(t, settings.OrderingEnabled)
	})
}

func TestUpdateSettings(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Patch Persists Across Reads", func(t *testing.T) {
		// Arrange
		settingsService := service.NewSettingsService(kvstore.NewMemoryStore())
		banner := "Closed Nov 1-2 for Lakshmi Puja"
		paused := false

		// Act
		updated, err := settingsService.UpdateSettings(ctx, &models.UpdateSettingsRequest{
			BannerMessage:   &banner,
			OrderingEnabled: &paused,
			HiddenProducts:  []string{"karanji"},
		})

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, banner, updated.BannerMessage)
		assert.False(t, updated.OrderingEnabled)

		reread, err := settingsService.GetSettings(ctx)
		require.NoError(t, err)
		assert.Equal(t, banner, reread.BannerMessage)
		assert.Equal(t, []string{"karanji"}, reread.HiddenProducts)
		assert.Equal(t, "Aparna's Diwali Delights", reread.ShopName, "untouched fields keep their values")
	})

	t.Run("Success - Nil Fields Leave Settings Unchanged", func(t *testing.T) {
		// Arrange
		settingsService := service.NewSettingsService(kvstore.NewMemoryStore())

		// Act
		updated, err := settingsService.UpdateSettings(ctx, &models.UpdateSettingsRequest{})

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, "Aparna's Diwali Delights", updated.ShopName)
		assert.True(t, updated.OrderingEnabled)
	})
}
