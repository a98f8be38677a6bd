package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nairmahesh/diwali-delights/internal/api/handlers"
	"github.com/nairmahesh/diwali-delights/internal/models"
	"github.com/nairmahesh/diwali-delights/internal/services/mocks"
	"github.com/nairmahesh/diwali-delights/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupSettingsTest() (*mocks.SettingsService, *handlers.SettingsHandler) {
	mockSettingsService := new(mocks.SettingsService)
	settingsHandler := handlers.NewSettingsHandler(mockSettingsService)

	return mockSettingsService, settingsHandler
}

func TestGetSettingsHandler(t *testing.T) {
	t.Run("Success - Current Settings", func(t *testing.T) {
		// Arrange
		mockSettingsService, settingsHandler := setupSettingsTest()
		req := testutils.NewPublicRequest("GET", "/api/v1/settings", nil, nil)
		recorder := httptest.NewRecorder()

		mockSettingsService.On("GetSettings", mock.Anything).Return(&models.WebsiteSettings{
			ShopName:        "Aparna's Diwali Delights",
			OrderingEnabled: true,
		}, nil).Once()

		// Act
		settingsHandler.GetSettings()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Aparna's Diwali Delights")
		mockSettingsService.AssertExpectations(t)
	})
}

func TestUpdateSettingsHandler(t *testing.T) {
	t.Run("Success - Pause Ordering", func(t *testing.T) {
		// Arrange
		mockSettingsService, settingsHandler := setupSettingsTest()
		body := bytes.NewBufferString(`{"ordering_enabled":false,"banner_message":"Back after Bhai Dooj!"}`)
		req := testutils.NewAdminRequest("PUT", "/api/v1/admin/settings", body, nil)
		recorder := httptest.NewRecorder()

		mockSettingsService.On("UpdateSettings", mock.Anything, mock.MatchedBy(func(r *models.UpdateSettingsRequest) bool {
			return r.OrderingEnabled != nil && !*r.OrderingEnabled
		})).Return(&models.WebsiteSettings{
			ShopName:        "Aparna's Diwali Delights",
			BannerMessage:   "Back after Bhai Dooj!",
			OrderingEnabled: false,
		}, nil).Once()

		// Act
		settingsHandler.UpdateSettings()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"ordering_enabled":false`)
		mockSettingsService.AssertExpectations(t)
	})

	t.Run("Failure - Invalid Email", func(t *testing.T) {
		// Arrange
		mockSettingsService, settingsHandler := setupSettingsTest()
		body := bytes.NewBufferString(`{"contact_email":"not-an-email"}`)
		req := testutils.NewAdminRequest("PUT", "/api/v1/admin/settings", body, nil)
		recorder := httptest.NewRecorder()

		// Act
		settingsHandler.UpdateSettings()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockSettingsService.AssertNotCalled(t, "UpdateSettings")
	})
}
