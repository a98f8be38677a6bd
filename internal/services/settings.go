package service

import (
	"context"
	"encoding/json"

	"github.com/nairmahesh/diwali-delights/internal/errors"
	"github.com/nairmahesh/diwali-delights/internal/kvstore"
	"github.com/nairmahesh/diwali-delights/internal/models"
	repository "github.com/nairmahesh/diwali-delights/internal/repositories"
)

type SettingsService interface {
	GetSettings(ctx context.Context) (*models.WebsiteSettings, error)
	UpdateSettings(ctx context.Context, req *models.UpdateSettingsRequest) (*models.WebsiteSettings, error)
}

type settingsService struct {
	store kvstore.Store
}

func NewSettingsService(store kvstore.Store) SettingsService {
	return &settingsService{store: store}
}

// GetSettings falls back to the built-in shop profile until an admin has
// saved anything.
func (s *settingsService) GetSettings(ctx context.Context) (*models.WebsiteSettings, error) {
	raw, found, err := s.store.Get(ctx, kvstore.KeySiteSettings)
	if err != nil {
		return nil, errors.DatabaseError("Failed to load settings").WithError(err)
	}

	if !found {
		settings := repository.DefaultSettings()

		return &settings, nil
	}

	var settings models.WebsiteSettings
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		return nil, errors.InternalError("Stored settings are corrupt").WithError(err)
	}

	return &settings, nil
}

func (s *settingsService) UpdateSettings(ctx context.Context, req *models.UpdateSettingsRequest) (*models.WebsiteSettings, error) {
	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	if req.ShopName != nil {
		settings.ShopName = *req.ShopName
	}

	if req.Tagline != nil {
		settings.Tagline = *req.Tagline
	}

	if req.Description != nil {
		settings.Description = *req.Description
	}

	if req.ContactPhone != nil {
		settings.ContactPhone = *req.ContactPhone
	}

	if req.ContactEmail != nil {
		settings.ContactEmail = *req.ContactEmail
	}

	if req.ContactAddress != nil {
		settings.ContactAddress = *req.ContactAddress
	}

	if req.BannerMessage != nil {
		settings.BannerMessage = *req.BannerMessage
	}

	if req.HiddenProducts != nil {
		settings.HiddenProducts = req.HiddenProducts
	}

	if req.OrderingEnabled != nil {
		settings.OrderingEnabled = *req.OrderingEnabled
	}

	encoded, err := json.Marshal(settings)
	if err != nil {
		return nil, errors.InternalError("Failed to encode settings").WithError(err)
	}

	if err := s.store.Set(ctx, kvstore.KeySiteSettings, string(encoded)); err != nil {
		return nil, errors.DatabaseError("Failed to save settings").WithError(err)
	}

	return settings, nil
}
