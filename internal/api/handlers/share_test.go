package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nairmahesh/diwali-delights/internal/api/handlers"
	service "github.com/nairmahesh/diwali-delights/internal/services"
	"github.com/nairmahesh/diwali-delights/internal/testutils"
	"github.com/stretchr/testify/assert"
)

// Uses the real share codec so the test covers the full decode and
// meta-building path instead of a mock round-trip.
func setupShareTest() *handlers.ShareHandler {
	shareService := service.NewShareService("https://delights.example.com")

	return handlers.NewShareHandler(shareService)
}

func TestSharedGreetingHandler(t *testing.T) {
	t.Run("Success - HTML Page With Social Meta", func(t *testing.T) {
		// Arrange
		shareHandler := setupShareTest()
		target := "/greetings/shared?to=Meera&from=Arjun" +
			"&message=Shubh+Deepavali+%F0%9F%AA%94&artwork=https%3A%2F%2Fcdn.example.com%2Fdiya.jpg"
		req := testutils.NewPublicRequest("GET", target, nil, nil)
		recorder := httptest.NewRecorder()

		// Act
		shareHandler.SharedGreeting()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Header().Get("Content-Type"), "text/html")

		body := recorder.Body.String()
		assert.Contains(t, body, `property="og:title"`)
		assert.Contains(t, body, `name="twitter:card"`)
		assert.Contains(t, body, "🪔 Diwali Greeting from Arjun")
		assert.Contains(t, body, "Dear Meera,")
		assert.Contains(t, body, "Shubh Deepavali 🪔")
		assert.Contains(t, body, "With love, Arjun")
		assert.Contains(t, body, "https://cdn.example.com/diya.jpg")
	})

	t.Run("Failure - Missing Parameter", func(t *testing.T) {
		// Arrange
		shareHandler := setupShareTest()
		req := testutils.NewPublicRequest("GET", "/greetings/shared?to=Meera&from=Arjun&message=Hi", nil, nil)
		recorder := httptest.NewRecorder()

		// Act
		shareHandler.SharedGreeting()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Missing greeting parameters")
	})

	t.Run("Failure - Empty Parameter Counts As Missing", func(t *testing.T) {
		// Arrange
		shareHandler := setupShareTest()
		target := "/greetings/shared?to=Meera&from=&message=Hi&artwork=https%3A%2F%2Fcdn.example.com%2Fdiya.jpg"
		req := testutils.NewPublicRequest("GET", target, nil, nil)
		recorder := httptest.NewRecorder()

		// Act
		shareHandler.SharedGreeting()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}
