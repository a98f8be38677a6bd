package service_test

import (
	"net/url"
	"strings"
	"testing"

	appErrors "github.com/nairmahesh/diwali-delights/internal/errors"
	"github.com/nairmahesh/diwali-delights/internal/models"
	service "github.com/nairmahesh/diwali-delights/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShareRoundTrip(t *testing.T) {
	shareService := service.NewShareService("https://delights.example.com")

	payloads := []*models.SharePayload{
		{
			RecipientName: "Meera",
			SenderName:    "Arjun",
			Message:       "Happy Diwali!",
			ArtworkURL:    "https://images.unsplash.com/photo-1605021154853?w=800",
		},
		{
			RecipientName: "Ma & Baba",
			SenderName:    "अर्जुन",
			Message:       "Shubh Deepavali 🪔✨ May the lights guide you home! 100% love & sweets = happiness?",
			ArtworkURL:    "https://images.unsplash.com/photo-1574265933395?w=800&h=600&fit=crop",
		},
	}

	for _, payload := range payloads {
		// Act
		link := shareService.Encode(payload)

		parsed, err := url.Parse(link)
		require.NoError(t, err)
		assert.Equal(t, "/greetings/shared", parsed.Path)

		decoded, err := shareService.Decode(parsed.Query())

		// Assert
		require.NoError(t, err)
		assert.Equal(t, payload, decoded, "emoji and punctuation must survive the round trip untouched")
	}
}

func TestShareDecode(t *testing.T) {
	shareService := service.NewShareService("https://delights.example.com")

	full := url.Values{
		"to":      {"Meera"},
		"from":    {"Arjun"},
		"message": {"Happy Diwali!"},
		"artwork": {"https://images.unsplash.com/photo?w=800"},
	}

	t.Run("Success - All Parameters Present", func(t *testing.T) {
		decoded, err := shareService.Decode(full)

		assert.NoError(t, err)
		require.NotNil(t, decoded)
		assert.Equal(t, "Meera", decoded.RecipientName)
		assert.Equal(t, "Arjun", decoded.SenderName)
	})

	for _, param := range []string{"to", "from", "message", "artwork"} {
		t.Run("Failure - Missing "+param, func(t *testing.T) {
			// Arrange
			query := url.Values{}
			for key, value := range full {
				if key != param {
					query[key] = value
				}
			}

			// Act
			decoded, err := shareService.Decode(query)

			// Assert
			assert.Error(t, err)
			assert.Nil(t, decoded)
			appErr, ok := appErrors.IsAppError(err)
			require.True(t, ok)
			assert.Equal(t, appErrors.ErrCodeMissingParams, appErr.Code)
			assert.Equal(t, "Missing greeting parameters", appErr.Message)
		})
	}

	t.Run("Failure - Empty Parameter Counts As Missing", func(t *testing.T) {
		// Arrange
		query := url.Values{}
		for key, value := range full {
			query[key] = value
		}
		query.Set("message", "")

		// Act
		decoded, err := shareService.Decode(query)

		// Assert
		assert.Error(t, err)
		assert.Nil(t, decoded)
	})
}

func TestBuildMeta(t *testing.T) {
	shareService := service.NewShareService("https://delights.example.com")

	t.Run("Success - Short Message Untouched", func(t *testing.T) {
		// Arrange
		payload := &models.SharePayload{
			RecipientName: "Meera",
			SenderName:    "Arjun",
			Message:       "Happy Diwali!",
			ArtworkURL:    "https://images.unsplash.com/photo?w=800",
		}

		// Act
		meta := shareService.BuildMeta(payload, "https://delights.example.com/greetings/shared?to=Meera")

		// Assert
		assert.Equal(t, "🪔 Diwali Greeting from Arjun", meta.Title)
		assert.Equal(t, "Happy Diwali!", meta.Description)
		assert.Equal(t, payload.ArtworkURL, meta.Image)
		assert.Equal(t, "https://delights.example.com/greetings/shared?to=Meera", meta.URL)
	})

	t.Run("Success - Long Message Truncated On Rune Boundary", func(t *testing.T) {
		// Arrange
		payload := &models.SharePayload{
			SenderName: "Arjun",
			Message:    strings.Repeat("🪔", 120),
			ArtworkURL: "https://images.unsplash.com/photo?w=800",
		}

		// Act
		meta := shareService.BuildMeta(payload, "")

		// Assert
		assert.True(t, strings.HasSuffix(meta.Description, "..."))
		runes := []rune(strings.TrimSuffix(meta.Description, "..."))
		assert.Len(t, runes, 100)
		for _, r := range runes {
			assert.Equal(t, '🪔', r, "truncation must never split a multi-byte character")
		}
	})
}
