package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/nairmahesh/diwali-delights/internal/api/middleware"
	"github.com/nairmahesh/diwali-delights/internal/models"
	service "github.com/nairmahesh/diwali-delights/internal/services"
	"github.com/nairmahesh/diwali-delights/internal/utils"
	"github.com/nairmahesh/diwali-delights/internal/utils/response"
)

type GreetingHandler struct {
	greetingService service.GreetingService
	cardService     service.CardService
	validator       *validator.Validate
}

func NewGreetingHandler(greetingService service.GreetingService, cardService service.CardService) *GreetingHandler {
	return &GreetingHandler{
		greetingService: greetingService,
		cardService:     cardService,
		validator:       validator.New(),
	}
}

func (h *GreetingHandler) Relationships() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, h.greetingService.Relationships())
	}
}

func (h *GreetingHandler) Templates() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		relationship := r.PathValue("relationship")

		templates, err := h.greetingService.Templates(relationship)
		if err != nil {
			logger.Warn("Template lookup failed", slog.String("relationship", relationship))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, templates)
	}
}

func (h *GreetingHandler) Artworks() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, h.greetingService.Artworks())
	}
}

// Preview godoc
//	@Summary		Preview a greeting
//	@Description	Resolves the effective message (custom text wins over a chosen template, which wins over the relationship default) and reports whether the card is complete enough to share.
//	@Tags			Greetings
//	@Accept			json
//	@Produce		json
//	@Param			greeting	body		models.GreetingRequest	true	"Greeting under composition"
//	@Success		200			{object}	models.GreetingPreview
//	@Failure		400			{object}	response.ErrorResponse	"Unknown relationship or artwork"
//	@Router			/greetings/preview [post]
func (h *GreetingHandler) Preview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.GreetingRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid greeting preview input")

			return
		}

		preview, err := h.greetingService.Preview(&req)
		if err != nil {
			logger.Warn("Greeting preview failed", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, preview)
	}
}

// DownloadCard godoc
//	@Summary		Download the greeting as a PNG card
//	@Description	Renders the completed greeting at 3x resolution. Only one render per greeting runs at a time; concurrent requests for the same card are rejected.
//	@Tags			Greetings
//	@Accept			json
//	@Produce		png
//	@Param			greeting	body	models.GreetingRequest	true	"Completed greeting"
//	@Success		200			{file}	file					"PNG image"
//	@Failure		400			{object}	response.ErrorResponse	"Card is incomplete"
//	@Failure		409			{object}	response.ErrorResponse	"A render for this card is already running"
//	@Failure		500			{object}	response.ErrorResponse	"Render failed"
//	@Router			/greetings/card [post]
func (h *GreetingHandler) DownloadCard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.GreetingRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid card download input")

			return
		}

		png, filename, err := h.cardService.Render(r.Context(), &req)
		if err != nil {
			logger.Error("Card render failed", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Card rendered", slog.String("filename", filename), slog.Int("bytes", len(png)))

		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		w.Header().Set("Content-Length", strconv.Itoa(len(png)))
		w.WriteHeader(http.StatusOK)

		if _, err := w.Write(png); err != nil {
			logger.Warn("Failed to stream card", slog.Any("error", err))
		}
	}
}
