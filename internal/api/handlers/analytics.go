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

type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
	validator        *validator.Validate
}

func NewAnalyticsHandler(analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService, validator: validator.New()}
}

// Track records a storefront event. Failures are deliberately swallowed
// into a 200 so a broken analytics store never degrades browsing.
func (h *AnalyticsHandler) Track() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.TrackEventRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid track event input")

			return
		}

		if err := h.analyticsService.TrackEvent(r.Context(), &req, r.UserAgent()); err != nil {
			logger.Warn("Failed to record event", slog.String("eventType", string(req.EventType)), slog.Any("error", err))
		}

		response.Success(w, http.StatusOK, map[string]bool{"tracked": true})
	}
}

// Dashboard godoc
//	@Summary		Admin analytics dashboard
//	@Description	30-day visitor, order, revenue and abandonment aggregates. Serves a static sample with fallback=true when the live stores are unreachable.
//	@Tags			Analytics
//	@Produce		json
//	@Success		200	{object}	models.DashboardSummary
//	@Security		BearerAuth
//	@Router			/admin/analytics/dashboard [get]
func (h *AnalyticsHandler) Dashboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		summary, err := h.analyticsService.Dashboard(r.Context())
		if err != nil {
			logger.Error("Failed to build dashboard", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, summary)
	}
}
