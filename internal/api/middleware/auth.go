package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/nairmahesh/diwali-delights/internal/errors"
	"github.com/nairmahesh/diwali-delights/internal/models"
	service "github.com/nairmahesh/diwali-delights/internal/services"
	"github.com/nairmahesh/diwali-delights/internal/utils/response"
)

type contextKey uuid.UUID

var UserContextKey = contextKey(uuid.New())

type AuthMiddleware struct {
	auth service.AuthService
}

func NewAuthMiddleware(auth service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

// Authenticate admits admin requests carrying either a "Bearer <token>"
// Authorization header or an ?admin_key= query parameter. The API key
// path exists for scripted access where a login round-trip is awkward.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := LoggerFromContext(r.Context())

		authHeader := r.Header.Get("Authorization")

		if authHeader == "" {

			if key := r.URL.Query().Get("admin_key"); key != "" {
				if !m.auth.ValidateAPIKey(key) {
					logger.Warn("Invalid admin API key")
					response.Error(w, errors.UnauthorizedError("Invalid admin key"))

					return
				}

				claims := &models.Claims{Username: "api-key", Role: "admin"}
				ctx := context.WithValue(r.Context(), UserContextKey, claims)

				logger.Info("Admin authenticated via API key")
				next.ServeHTTP(w, r.WithContext(ctx))

				return
			}

			logger.Warn("Missing authorization header")
			response.Error(w, errors.UnauthorizedError("Authorization header is required"))

			return
		}

		// Token is of format : "Bearer <token>"
		tokenParts := strings.Split(authHeader, " ")

		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			logger.Warn("Invalid authorization header format", slog.String("header", authHeader))
			response.Error(w, errors.UnauthorizedError("Invalid authorization format"))

			return
		}

		claims, err := m.auth.ValidateToken(tokenParts[1])
		if err != nil {
			logger.Warn("Token validation failed", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, claims)

		requestScopedLogger := logger.With(slog.String("username", claims.Username))
		ctx = context.WithValue(ctx, LoggerKey, requestScopedLogger)

		requestScopedLogger.Info("Admin authenticated")

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}
