package middleware_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nairmahesh/diwali-delights/internal/api/middleware"
	appErrors "github.com/nairmahesh/diwali-delights/internal/errors"
	"github.com/nairmahesh/diwali-delights/internal/models"
	"github.com/nairmahesh/diwali-delights/internal/services/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthMiddlewareTest() (*mocks.AuthService, *middleware.AuthMiddleware) {
	mockAuthService := new(mocks.AuthService)
	authMiddleware := middleware.NewAuthMiddleware(mockAuthService)

	return mockAuthService, authMiddleware
}

func TestAuthenticate(t *testing.T) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))

	adminClaims := &models.Claims{Username: "aparna", Role: "admin"}

	newNextHandler := func(t *testing.T, called *bool, wantUsername string) http.HandlerFunc {
		t.Helper()

		return func(w http.ResponseWriter, r *http.Request) {
			*called = true

			claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
			require.True(t, ok, "claims should be in context")
			assert.Equal(t, wantUsername, claims.Username)
			assert.Equal(t, "admin", claims.Role)

			w.WriteHeader(http.StatusOK)
		}
	}

	t.Run("Success - Valid Bearer Token", func(t *testing.T) {
		// Arrange
		mockAuthService, authMiddleware := setupAuthMiddlewareTest()
		mockAuthService.On("ValidateToken", "good-token").Return(adminClaims, nil).Once()

		req := httptest.NewRequest("GET", "/api/v1/admin/orders", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		recorder := httptest.NewRecorder()

		var nextCalled bool

		// Act
		authMiddleware.Authenticate(newNextHandler(t, &nextCalled, "aparna"))(recorder, req)

		// Assert
		assert.True(t, nextCalled)
		assert.Equal(t, http.StatusOK, recorder.Code)
		mockAuthService.AssertExpectations(t)
	})

	t.Run("Success - Valid Admin Key", func(t *testing.T) {
		// Arrange
		mockAuthService, authMiddleware := setupAuthMiddlewareTest()
		mockAuthService.On("ValidateAPIKey", "script-key-123").Return(true).Once()

		req := httptest.NewRequest("GET", "/api/v1/admin/orders?admin_key=script-key-123", nil)
		recorder := httptest.NewRecorder()

		var nextCalled bool

		// Act
		authMiddleware.Authenticate(newNextHandler(t, &nextCalled, "api-key"))(recorder, req)

		// Assert
		assert.True(t, nextCalled)
		assert.Equal(t, http.StatusOK, recorder.Code)
		mockAuthService.AssertExpectations(t)
	})

	t.Run("Failure - Invalid Admin Key", func(t *testing.T) {
		// Arrange
		mockAuthService, authMiddleware := setupAuthMiddlewareTest()
		mockAuthService.On("ValidateAPIKey", "wrong-key").Return(false).Once()

		req := httptest.NewRequest("GET", "/api/v1/admin/orders?admin_key=wrong-key", nil)
		recorder := httptest.NewRecorder()

		var nextCalled bool

		// Act
		authMiddleware.Authenticate(newNextHandler(t, &nextCalled, ""))(recorder, req)

		// Assert
		assert.False(t, nextCalled)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Invalid admin key")
		mockAuthService.AssertExpectations(t)
	})

	t.Run("Failure - Missing Authorization Header", func(t *testing.T) {
		// Arrange
		_, authMiddleware := setupAuthMiddlewareTest()

		req := httptest.NewRequest("GET", "/api/v1/admin/orders", nil)
		recorder := httptest.NewRecorder()

		var nextCalled bool

		// Act
		authMiddleware.Authenticate(newNextHandler(t, &nextCalled, ""))(recorder, req)

		// Assert
		assert.False(t, nextCalled)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Authorization header is required")
	})

	t.Run("Failure - Invalid Authorization Format", func(t *testing.T) {
		// Arrange
		_, authMiddleware := setupAuthMiddlewareTest()

		req := httptest.NewRequest("GET", "/api/v1/admin/orders", nil)
		req.Header.Set("Authorization", "NotBearerToken")
		recorder := httptest.NewRecorder()

		var nextCalled bool

		// Act
		authMiddleware.Authenticate(newNextHandler(t, &nextCalled, ""))(recorder, req)

		// Assert
		assert.False(t, nextCalled)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Invalid authorization format")
	})

	t.Run("Failure - Expired Token", func(t *testing.T) {
		// Arrange
		mockAuthService, authMiddleware := setupAuthMiddlewareTest()
		mockAuthService.On("ValidateToken", "stale-token").
			Return(nil, appErrors.UnauthorizedError("Invalid or expired token")).Once()

		req := httptest.NewRequest("GET", "/api/v1/admin/orders", nil)
		req.Header.Set("Authorization", "Bearer stale-token")
		recorder := httptest.NewRecorder()

		var nextCalled bool

		// Act
		authMiddleware.Authenticate(newNextHandler(t, &nextCalled, ""))(recorder, req)

		// Assert
		assert.False(t, nextCalled)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Invalid or expired token")
		mockAuthService.AssertExpectations(t)
	})
}
