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

type AuthHandler struct {
	authService service.AuthService
	validator   *validator.Validate
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService, validator: validator.New()}
}

// Login godoc
//	@Summary		Admin login
//	@Description	Exchanges admin credentials for a short-lived bearer token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			credentials	body		models.LoginRequest	true	"Admin credentials"
//	@Success		200			{object}	models.LoginResponse
//	@Failure		401			{object}	response.ErrorResponse	"Invalid credentials"
//	@Router			/admin/login [post]
func (h *AuthHandler) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.LoginRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid login input")

			return
		}

		resp, err := h.authService.Login(r.Context(), &req)
		if err != nil {
			logger.Warn("Login rejected", slog.String("username", req.Username))
			response.Error(w, err)

			return
		}

		logger.Info("Admin logged in", slog.String("username", req.Username))
		response.Success(w, http.StatusOK, resp)
	}
}
