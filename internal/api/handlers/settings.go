package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/nairmahesh/diwali-delights/internal/api/middleware"
	"github.com/nairmahesh/diwali-delights/internal/models"
	service "github.com/nairmahesh/diwali-delights/internal/services"
	"github.com/nairmahesh/diwali-delights/internal/utils"
	"github.com/nairmahesh/diwali-delights/internal/utils/response"
)

type SettingsHandler struct {
	settingsService service.SettingsService
	validator       *validator.Validate
}

func NewSettingsHandler(settingsService service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService, validator: validator.New()}
}

func (h *SettingsHandler) GetSettings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		settings, err := h.settingsService.GetSettings(r.Context())
		if err != nil {
			logger.Error("Failed to load settings", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, settings)
	}
}

// UpdateSettings godoc
//	@Summary		Update shop settings
//	@Description	Partial update of banner, contact info, hidden products and the ordering pause switch.
//	@Tags			Settings
//	@Accept			json
//	@Produce		json
//	@Param			settings	body		models.UpdateSettingsRequest	true	"Fields to change"
//	@Success		200			{object}	models.WebsiteSettings
//	@Failure		400			{object}	response.ErrorResponse	"Validation error"
//	@Security		BearerAuth
//	@Router			/admin/settings [put]
func (h *SettingsHandler) UpdateSettings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.UpdateSettingsRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid settings input")

			return
		}

		settings, err := h.settingsService.UpdateSettings(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to update settings", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Settings updated")
		response.Success(w, http.StatusOK, settings)
	}
}
